package tokenizer

import (
	"reflect"
	"testing"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []RawToken
	}{
		{
			input: "The café!",
			expected: []RawToken{
				{Text: "The", Type: TokenWord, Start: 0, End: 3},
				{Text: " ", Type: TokenSeparator, Start: 3, End: 4},
				{Text: "café", Type: TokenWord, Start: 4, End: 9},
				{Text: "!", Type: TokenSeparator, Start: 9, End: 10},
			},
		},
		{
			input:    "",
			expected: []RawToken{},
		},
		{
			input: "hello world",
			expected: []RawToken{
				{Text: "hello", Type: TokenWord, Start: 0, End: 5},
				{Text: " ", Type: TokenSeparator, Start: 5, End: 6},
				{Text: "world", Type: TokenWord, Start: 6, End: 11},
			},
		},
		{
			input: "123abc",
			expected: []RawToken{
				{Text: "123abc", Type: TokenWord, Start: 0, End: 6},
			},
		},
		{
			input: "  ",
			expected: []RawToken{
				{Text: "  ", Type: TokenSeparator, Start: 0, End: 2},
			},
		},
	}

	for _, tt := range tests {
		result := SplitWords(tt.input)
		if len(result) != len(tt.expected) {
			t.Errorf("SplitWords(%q) returned %d tokens, want %d", tt.input, len(result), len(tt.expected))
			continue
		}
		for i, tok := range result {
			if tok != tt.expected[i] {
				t.Errorf("SplitWords(%q)[%d] = %+v, want %+v", tt.input, i, tok, tt.expected[i])
			}
		}
	}
}

func TestSplitWords_Offsets(t *testing.T) {
	input := "Ünïcödé, “quoted” text."
	for _, tok := range SplitWords(input) {
		if got := input[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("input[%d:%d] = %q, want %q", tok.Start, tok.End, got, tok.Text)
		}
	}
}

func TestGetTokenType(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"a", TokenWord},
		{"Z", TokenWord},
		{"é", TokenWord},
		{"5", TokenWord},
		{"can't", TokenWord},
		{" ", TokenSeparator},
		{".", TokenSeparator},
		{",", TokenSeparator},
		{"!", TokenSeparator},
		{"-", TokenSeparator},
	}

	for _, tt := range tests {
		result := getTokenType(tt.input)
		if result != tt.expected {
			t.Errorf("getTokenType(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Hello, world!", []string{"Hello", ",", "world", "!"}},
		{"  can't stop  ", []string{"can't", "stop"}},
		{"", []string{}},
		{"\t\n", []string{}},
	}

	for _, tt := range tests {
		result := Words(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("Words(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"One. Two? Three!", []string{"One.", "Two?", "Three!"}},
		{"  Only one  ", []string{"Only one"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		result := Sentences(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("Sentences(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"a\nb", []string{"a", "b"}},
		{"a\r\n\r\n  b  \n", []string{"a", "b"}},
		{"   ", []string{}},
	}

	for _, tt := range tests {
		result := Lines(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("Lines(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
