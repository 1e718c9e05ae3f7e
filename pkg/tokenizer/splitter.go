package tokenizer

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// TokenType identifies the type of token.
type TokenType int

const (
	TokenWord TokenType = iota
	TokenSeparator
)

// RawToken is one word-boundary segment of the input.
// Start and End are byte offsets: text[Start:End] == Text.
type RawToken struct {
	Text  string
	Type  TokenType
	Start int
	End   int
}

// SplitWords splits text at Unicode word boundaries (UAX #29).
// Segments holding a letter or number are TokenWord, everything else
// (whitespace, punctuation, symbols) is TokenSeparator.
func SplitWords(text string) []RawToken {
	tokens := []RawToken{}
	rest := text
	state := -1
	offset := 0

	for len(rest) > 0 {
		var segment string
		segment, rest, state = uniseg.FirstWordInString(rest, state)
		tokens = append(tokens, RawToken{
			Text:  segment,
			Type:  getTokenType(segment),
			Start: offset,
			End:   offset + len(segment),
		})
		offset += len(segment)
	}

	return tokens
}

// getTokenType determines if a segment is a word or separator.
func getTokenType(segment string) TokenType {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return TokenWord
		}
	}
	return TokenSeparator
}

// Words returns the non-blank word-boundary segments of text.
// Unlike TreebankWords it never rewrites the text: every token is a
// substring of the input.
func Words(text string) []string {
	var words []string
	for _, tok := range SplitWords(strings.TrimSpace(text)) {
		if w := strings.TrimSpace(tok.Text); w != "" {
			words = append(words, w)
		}
	}
	return orEmpty(words)
}

// Sentences splits text at Unicode sentence boundaries (UAX #29).
func Sentences(text string) []string {
	var sentences []string
	rest := strings.TrimSpace(text)
	state := -1

	for len(rest) > 0 {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		if s := strings.TrimSpace(sentence); s != "" {
			sentences = append(sentences, s)
		}
	}

	return orEmpty(sentences)
}

// Lines splits text on line feeds. A trailing carriage return is part of
// the line ending. Blank lines are dropped.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if l := strings.TrimSpace(line); l != "" {
			lines = append(lines, l)
		}
	}
	return orEmpty(lines)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
