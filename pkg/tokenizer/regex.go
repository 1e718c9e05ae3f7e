package tokenizer

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	// WhitespacePattern separates tokens on runs of Unicode whitespace.
	// RE2's \s is ASCII-only and omits \v; \p{Z} omits NEL.
	WhitespacePattern = `[\s\p{Z}\x{0B}\x{85}]+`
	// BlanklinePattern separates paragraphs on blank lines.
	BlanklinePattern = `\s*\n\s*\n\s*`
	// WordPunctPattern matches runs of word characters or runs of punctuation.
	WordPunctPattern = `[\pL\pM\p{Nd}\p{Pc}]+|[^\pL\pM\p{Nd}\p{Pc}\s\p{Z}]+`
)

// RegexTokenizer splits text by a pattern, or extracts its matches.
type RegexTokenizer struct {
	re    *regexp.Regexp
	split bool
}

// NewSplitTokenizer returns a tokenizer whose tokens are the text between
// matches of pattern. Patterns are compiled in multi-line mode.
func NewSplitTokenizer(pattern string) (*RegexTokenizer, error) {
	re, err := compileTokenPattern(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexTokenizer{re: re, split: true}, nil
}

// NewMatchTokenizer returns a tokenizer whose tokens are the matches of
// pattern. Patterns are compiled in multi-line mode.
func NewMatchTokenizer(pattern string) (*RegexTokenizer, error) {
	re, err := compileTokenPattern(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexTokenizer{re: re, split: false}, nil
}

// MustSplitTokenizer is like NewSplitTokenizer but panics on a bad pattern.
func MustSplitTokenizer(pattern string) *RegexTokenizer {
	t, err := NewSplitTokenizer(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

// MustMatchTokenizer is like NewMatchTokenizer but panics on a bad pattern.
func MustMatchTokenizer(pattern string) *RegexTokenizer {
	t, err := NewMatchTokenizer(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

func compileTokenPattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compile token pattern %q", pattern)
	}
	return re, nil
}

// Tokenize trims text and returns its non-blank pieces, each trimmed.
func (t *RegexTokenizer) Tokenize(text string) []string {
	text = strings.TrimSpace(text)

	var pieces []string
	if t.split {
		pieces = t.re.Split(text, -1)
	} else {
		pieces = t.re.FindAllString(text, -1)
	}

	tokens := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Pattern returns the source of the compiled pattern.
func (t *RegexTokenizer) Pattern() string {
	return t.re.String()
}

var (
	whitespaceTokenizer = MustSplitTokenizer(WhitespacePattern)
	blanklineTokenizer  = MustSplitTokenizer(BlanklinePattern)
	wordPunctTokenizer  = MustMatchTokenizer(WordPunctPattern)
)

// WhitespaceTokenize splits text on whitespace.
func WhitespaceTokenize(text string) []string {
	return whitespaceTokenizer.Tokenize(text)
}

// BlanklineTokenize splits text into paragraphs separated by blank lines.
func BlanklineTokenize(text string) []string {
	return blanklineTokenizer.Tokenize(text)
}

// WordPunctTokenize splits text into alternating runs of word characters and
// punctuation: "can't" -> "can", "'", "t".
func WordPunctTokenize(text string) []string {
	return wordPunctTokenizer.Tokenize(text)
}
