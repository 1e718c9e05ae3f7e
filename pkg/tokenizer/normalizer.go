package tokenizer

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer with the default pipeline.
func NewNormalizer() *Normalizer {
	return NewNormalizerFromConfig(DefaultConfig().Normalizers)
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// NewNormalizerFromConfig creates a normalizer running the enabled steps.
func NewNormalizerFromConfig(cfg NormalizerConfig) *Normalizer {
	var steps []NormalizerFunc
	if cfg.NFKC {
		steps = append(steps, NFKCCompose)
	}
	if cfg.RemoveControlChars {
		steps = append(steps, RemoveControlChars)
	}
	if cfg.NormalizeQuotes {
		steps = append(steps, NormalizeQuotes)
	}
	if cfg.ExpandLigatures {
		steps = append(steps, ExpandLigatures)
	}
	if cfg.Lowercase {
		steps = append(steps, Lowercase)
	}
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// Len returns the number of steps.
func (n *Normalizer) Len() int {
	return len(n.steps)
}

// NFKCCompose applies Unicode NFKC normalization.
// Folds compatibility forms: ﬁ → fi, full-width letters → ASCII, etc.
func NFKCCompose(s string) string {
	return norm.NFKC.String(s)
}

// RemoveControlChars removes Unicode control characters other than whitespace,
// so line structure survives.
func RemoveControlChars(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// Lowercase converts to lowercase.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// quoteReplacements maps typographic quotes to the ASCII forms the treebank
// rules understand.
var quoteReplacements = map[rune]rune{
	'“': '"',  // left double quote
	'”': '"',  // right double quote
	'„': '"',  // double low-9 quote
	'‟': '"',  // double high-reversed-9 quote
	'«': '"',  // « left-pointing double angle
	'»': '"',  // » right-pointing double angle
	'‘': '\'', // left single quote
	'’': '\'', // right single quote, also the typographic apostrophe
	'‚': '\'', // single low-9 quote
	'‛': '\'', // single high-reversed-9 quote
	'′': '\'', // prime
}

// NormalizeQuotes converts typographic quotes to ASCII.
func NormalizeQuotes(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if replacement, ok := quoteReplacements[r]; ok {
			result.WriteRune(replacement)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

var ligatureReplacer = strings.NewReplacer(
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
)

// ExpandLigatures expands æ→ae, œ→oe. NFKC leaves these alone.
func ExpandLigatures(s string) string {
	return ligatureReplacer.Replace(s)
}

// StemEnglish applies the English Snowball stemmer. The result is lowercase.
func StemEnglish(s string) string {
	stemmed, err := snowball.Stem(s, "english", true)
	if err != nil {
		return s
	}
	return stemmed
}
