// Package config loads scan settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/xlscan/pkg/xlscan"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a scan can take from a file.
type Config struct {
	// Mode is the scan mode: light, standard, or verbose.
	Mode string `yaml:"mode"`
	// Keywords replaces the default keyword set when present.
	Keywords []string `yaml:"keywords"`
	// Sheets restricts the scan to the named sheets.
	Sheets []string `yaml:"sheets"`
	// IncludeLiterals overrides the mode default for listing literal cells.
	IncludeLiterals *bool `yaml:"include_literals"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Mode: string(xlscan.ModeStandard),
	}
}

// LoadConfig reads and parses a YAML config file. Returns DefaultConfig merged with the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that values are sane.
func (c *Config) Validate() error {
	if _, ok := xlscan.ParseMode(c.Mode); !ok {
		return fmt.Errorf("unsupported mode %q (use light, standard, or verbose)", c.Mode)
	}
	for i, kw := range c.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("keywords[%d]: empty keyword", i)
		}
	}
	for i, name := range c.Sheets {
		if name == "" {
			return fmt.Errorf("sheets[%d]: empty sheet name", i)
		}
	}
	return nil
}

// Options converts the config to scan options.
func (c *Config) Options() xlscan.Options {
	mode, ok := xlscan.ParseMode(c.Mode)
	if !ok {
		mode = xlscan.ModeStandard
	}
	return xlscan.Options{
		Mode:            mode,
		Keywords:        c.Keywords,
		IncludeLiterals: c.IncludeLiterals,
		Sheets:          c.Sheets,
	}
}
