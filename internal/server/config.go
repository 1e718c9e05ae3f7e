package server

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kerem-kaynak/treebank-tokenizer/pkg/tokenizer"
)

// Config holds the server settings and the tokenizer it serves.
type Config struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	// LogFile, when set, receives a copy of the log, rotated at 10 MB.
	LogFile   string           `yaml:"log_file"`
	Tokenizer tokenizer.Config `yaml:"tokenizer"`
}

// DefaultConfig listens on :8080 and logs at info level to stderr only.
func DefaultConfig() Config {
	return Config{
		Addr:      ":8080",
		LogLevel:  "info",
		Tokenizer: tokenizer.DefaultConfig(),
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read server config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse server config %s", path)
	}
	return cfg, nil
}
