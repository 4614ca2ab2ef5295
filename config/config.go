package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the name matcher.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Match  MatchConfig  `yaml:"match"`
	Import ImportConfig `yaml:"import"`
}

// DataConfig selects where the corpus is persisted.
type DataConfig struct {
	Backend string `yaml:"backend"` // "json" or "bolt"
	Path    string `yaml:"path"`
}

// MatchConfig holds query defaults. The combined-metric weights are fixed
// design constants and deliberately not configurable here.
type MatchConfig struct {
	Method string `yaml:"method"` // combined, sequence, levenshtein, tfidf
	TopK   int    `yaml:"top_k"`
}

// ImportConfig holds bulk-import configuration.
type ImportConfig struct {
	Includes []string `yaml:"includes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Backend: "json",
			Path:    filepath.Join("data", "names.json"),
		},
		Match: MatchConfig{
			Method: "combined",
			TopK:   5,
		},
		Import: ImportConfig{
			Includes: []string{"**/*.txt"},
		},
	}
}

// Load loads configuration from a YAML file, returning defaults if the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// namematch.yaml, then .namematch/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "namematch.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".namematch", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DataPath resolves the corpus path relative to dir unless it is absolute.
func (c *Config) DataPath(dir string) string {
	if filepath.IsAbs(c.Data.Path) {
		return c.Data.Path
	}
	return filepath.Join(dir, c.Data.Path)
}
