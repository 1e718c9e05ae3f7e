package tokenizer

import (
	"testing"
)

func TestNFKCCompose(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ﬁ", "fi"},
		{"ﬂ", "fl"},
		{"Ｈｅｌｌｏ", "Hello"},
		{"é", "é"},
		{"hello", "hello"},
	}

	for _, tt := range tests {
		result := NFKCCompose(tt.input)
		if result != tt.expected {
			t.Errorf("NFKCCompose(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestRemoveControlChars(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello\x00world", "helloworld"},
		{"test\x1fstring", "teststring"},
		{"keep\nlines\tand tabs", "keep\nlines\tand tabs"},
		{"normal", "normal"},
	}

	for _, tt := range tests {
		result := RemoveControlChars(tt.input)
		if result != tt.expected {
			t.Errorf("RemoveControlChars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestLowercase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HELLO", "hello"},
		{"Café", "café"},
		{"N'T", "n't"},
	}

	for _, tt := range tests {
		result := Lowercase(tt.input)
		if result != tt.expected {
			t.Errorf("Lowercase(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"“word”", "\"word\""},
		{"«text»", "\"text\""},
		{"‘single’", "'single'"},
		{"don’t", "don't"},
	}

	for _, tt := range tests {
		result := NormalizeQuotes(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeQuotes(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestExpandLigatures(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"æther", "aether"},
		{"Œuvre", "OEuvre"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		result := ExpandLigatures(tt.input)
		if result != tt.expected {
			t.Errorf("ExpandLigatures(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestStemEnglish(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"running", "run"},
		{"cats", "cat"},
		{"Jumps", "jump"},
	}

	for _, tt := range tests {
		result := StemEnglish(tt.input)
		if result != tt.expected {
			t.Errorf("StemEnglish(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizer_Pipeline(t *testing.T) {
	n := NewNormalizerWithSteps(NormalizeQuotes, Lowercase)

	result := n.Normalize("“HELLO”")
	if result != "\"hello\"" {
		t.Errorf("Normalize() = %q, want %q", result, "\"hello\"")
	}
}

func TestNewNormalizerFromConfig(t *testing.T) {
	if n := NewNormalizerFromConfig(NormalizerConfig{}); n.Len() != 0 {
		t.Errorf("empty config has %d steps, want 0", n.Len())
	}
	if n := NewNormalizerFromConfig(allNormalizersEnabled()); n.Len() != 5 {
		t.Errorf("full config has %d steps, want 5", n.Len())
	}

	n := NewNormalizer()
	if got := n.Normalize("it’s\x07"); got != "it's" {
		t.Errorf("default Normalize() = %q, want %q", got, "it's")
	}
}
