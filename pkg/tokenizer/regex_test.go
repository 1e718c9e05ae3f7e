package tokenizer

import (
	"reflect"
	"testing"
)

func TestRegexTokenizer_Split(t *testing.T) {
	tok, err := NewSplitTokenizer(`[,;]`)
	if err != nil {
		t.Fatalf("NewSplitTokenizer: %v", err)
	}

	result := tok.Tokenize(" a, b ;;c ,")
	expected := []string{"a", "b", "c"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Tokenize = %q, want %q", result, expected)
	}
}

func TestRegexTokenizer_Match(t *testing.T) {
	tok, err := NewMatchTokenizer(`\p{Lu}\pL*`)
	if err != nil {
		t.Fatalf("NewMatchTokenizer: %v", err)
	}

	result := tok.Tokenize("Alice met Bob in Zürich")
	expected := []string{"Alice", "Bob", "Zürich"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Tokenize = %q, want %q", result, expected)
	}
}

func TestRegexTokenizer_MultiLine(t *testing.T) {
	tok := MustMatchTokenizer(`^\w+`)

	result := tok.Tokenize("first line\nsecond line\nthird")
	expected := []string{"first", "second", "third"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Tokenize = %q, want %q", result, expected)
	}
}

func TestRegexTokenizer_BadPattern(t *testing.T) {
	if _, err := NewSplitTokenizer(`(`); err == nil {
		t.Error("Expected error for bad split pattern")
	}
	if _, err := NewMatchTokenizer(`[`); err == nil {
		t.Error("Expected error for bad match pattern")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustSplitTokenizer did not panic on a bad pattern")
		}
	}()
	MustSplitTokenizer(`(`)
}

func TestWhitespaceTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"a b\tc\nd", []string{"a", "b", "c", "d"}},
		{"no break", []string{"no", "break"}},
		{"a\vb\u0085c\u2028d", []string{"a", "b", "c", "d"}},
		{"   ", []string{}},
	}

	for _, tt := range tests {
		result := WhitespaceTokenize(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("WhitespaceTokenize(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestBlanklineTokenize(t *testing.T) {
	input := "First paragraph\nstill first.\n\n  \nSecond.\n\nThird."
	expected := []string{"First paragraph\nstill first.", "Second.", "Third."}

	result := BlanklineTokenize(input)
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("BlanklineTokenize(%q) = %q, want %q", input, result, expected)
	}
}

func TestWordPunctTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Good muffins cost $3.88", []string{"Good", "muffins", "cost", "$", "3", ".", "88"}},
		{"can't", []string{"can", "'", "t"}},
		{"naïve?!", []string{"naïve", "?!"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		result := WordPunctTokenize(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("WordPunctTokenize(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
