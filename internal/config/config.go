package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spendlog-dev/spendlog/internal/categories"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "spendlog.yaml"

// Config represents the top-level spendlog.yaml configuration.
type Config struct {
	Store      StoreConfig  `yaml:"store"`
	Chart      ChartConfig  `yaml:"chart"`
	Export     ExportConfig `yaml:"export"`
	Categories []string     `yaml:"categories,omitempty"`
}

// StoreConfig locates the transactions file.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// ChartConfig controls the chart output.
type ChartConfig struct {
	Path string `yaml:"path"`
}

// ExportConfig controls the spreadsheet export.
type ExportConfig struct {
	Path string `yaml:"path"`
}

// Load reads a spendlog.yaml file from disk. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Store:      StoreConfig{Path: "transactions.csv"},
		Chart:      ChartConfig{Path: "spending_chart.pdf"},
		Export:     ExportConfig{Path: "spending.xlsx"},
		Categories: categories.Defaults(),
	}
}
