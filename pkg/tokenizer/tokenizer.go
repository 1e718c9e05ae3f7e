package tokenizer

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// Mode selects how a Tokenizer splits text.
type Mode string

const (
	ModeTreebank   Mode = "treebank"
	ModeWords      Mode = "words"
	ModeSentences  Mode = "sentences"
	ModeLines      Mode = "lines"
	ModeWhitespace Mode = "whitespace"
	ModeBlankline  Mode = "blankline"
	ModeWordPunct  Mode = "wordpunct"
)

// Modes lists every supported mode.
var Modes = []Mode{
	ModeTreebank, ModeWords, ModeSentences, ModeLines,
	ModeWhitespace, ModeBlankline, ModeWordPunct,
}

var splitters = map[Mode]func(string) []string{
	ModeTreebank:   TreebankWords,
	ModeWords:      Words,
	ModeSentences:  Sentences,
	ModeLines:      Lines,
	ModeWhitespace: WhitespaceTokenize,
	ModeBlankline:  BlanklineTokenize,
	ModeWordPunct:  WordPunctTokenize,
}

// ParseMode maps a mode name to a Mode. The empty string means ModeTreebank.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeTreebank, nil
	}
	m := Mode(strings.ToLower(s))
	if _, ok := splitters[m]; !ok {
		return "", errors.Errorf("unknown tokenize mode %q", s)
	}
	return m, nil
}

// markers are the placeholder tokens the treebank rules emit. They are never
// lowercased or stemmed.
var markers = map[string]struct{}{
	"-LRB-": {}, "-RRB-": {},
	"-LSB-": {}, "-RSB-": {},
	"-LCB-": {}, "-RCB-": {},
	"``": {}, "''": {},
}

// Tokenizer normalizes text, splits it into tokens and post-processes them.
// It is safe for concurrent use.
type Tokenizer struct {
	cfg        Config
	normalizer *Normalizer
	cache      *lru.Cache[string, []string]
}

// NewTokenizer creates a tokenizer from cfg. The cache is used when cfg.Cache is set.
func NewTokenizer(cfg Config) *Tokenizer {
	t := &Tokenizer{
		cfg:        cfg,
		normalizer: NewNormalizerFromConfig(cfg.Normalizers),
	}
	if cfg.Cache {
		size := cfg.CacheSize
		if size <= 0 {
			size = DefaultCacheSize
		}
		t.cache, _ = lru.New[string, []string](size)
	}
	return t
}

// NewTokenizerNoCache creates a tokenizer with caching disabled.
// Use this when inputs are rarely repeated.
func NewTokenizerNoCache(cfg Config) *Tokenizer {
	cfg.Cache = false
	return NewTokenizer(cfg)
}

// Tokenize splits text into Penn Treebank tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	return t.tokenize(ModeTreebank, text)
}

// TokenizeMode splits text with the given mode.
func (t *Tokenizer) TokenizeMode(mode Mode, text string) ([]string, error) {
	if _, ok := splitters[mode]; !ok {
		return nil, errors.Errorf("unknown tokenize mode %q", mode)
	}
	return t.tokenize(mode, text), nil
}

func (t *Tokenizer) tokenize(mode Mode, text string) []string {
	if t.cache == nil {
		return t.tokenizeUncached(mode, text)
	}

	key := string(mode) + "\x00" + text
	if cached, ok := t.cache.Get(key); ok {
		return copyTokens(cached)
	}

	tokens := t.tokenizeUncached(mode, text)
	t.cache.Add(key, tokens)
	return copyTokens(tokens)
}

func (t *Tokenizer) tokenizeUncached(mode Mode, text string) []string {
	tokens := splitters[mode](t.normalizer.Normalize(text))

	// Only word-level modes are post-processed.
	if mode == ModeSentences || mode == ModeLines || mode == ModeBlankline {
		return tokens
	}
	for i, tok := range tokens {
		if _, ok := markers[tok]; ok {
			continue
		}
		if t.cfg.Stem && isAlphabetic(tok) {
			tokens[i] = StemEnglish(tok)
		} else if t.cfg.Lowercase {
			tokens[i] = strings.ToLower(tok)
		}
	}
	return tokens
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func copyTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}

// Config returns the configuration the tokenizer was built with.
func (t *Tokenizer) Config() Config {
	return t.cfg
}

// CacheSize returns the number of cached inputs (0 if cache is disabled).
func (t *Tokenizer) CacheSize() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}

// ClearCache clears the result cache.
func (t *Tokenizer) ClearCache() {
	if t.cache != nil {
		t.cache.Purge()
	}
}

// CacheEnabled returns true if caching is enabled.
func (t *Tokenizer) CacheEnabled() bool {
	return t.cache != nil
}
