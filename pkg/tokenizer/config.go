package tokenizer

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultCacheSize is the number of tokenized inputs kept when Config.CacheSize is unset.
const DefaultCacheSize = 10_000

// NormalizerConfig selects the normalization steps run before tokenization.
// Steps run in field order.
type NormalizerConfig struct {
	NFKC               bool `yaml:"nfkc"`
	RemoveControlChars bool `yaml:"remove_control_chars"`
	NormalizeQuotes    bool `yaml:"normalize_quotes"`
	ExpandLigatures    bool `yaml:"expand_ligatures"`
	Lowercase          bool `yaml:"lowercase"`
}

// Config controls a Tokenizer.
type Config struct {
	// Cache enables the LRU cache of tokenized inputs.
	Cache     bool `yaml:"cache"`
	CacheSize int  `yaml:"cache_size"`

	// Lowercase lowercases word tokens after tokenization. Bracket and quote
	// markers keep their case.
	Lowercase bool `yaml:"lowercase"`

	// Stem replaces alphabetic tokens with their English Snowball stem.
	Stem bool `yaml:"stem"`

	Normalizers NormalizerConfig `yaml:"normalizers"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Cache:     true,
		CacheSize: DefaultCacheSize,
		Normalizers: NormalizerConfig{
			RemoveControlChars: true,
			NormalizeQuotes:    true,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read tokenizer config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse tokenizer config %s", path)
	}
	if cfg.CacheSize < 0 {
		return cfg, errors.Errorf("cache_size must not be negative, got %d", cfg.CacheSize)
	}
	return cfg, nil
}
