package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level steuerlink.yaml configuration.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Rates   RatesConfig   `yaml:"rates"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProjectConfig identifies the declaration project.
type ProjectConfig struct {
	Name    string `yaml:"name"`
	Canton  string `yaml:"canton"`
	TaxYear int    `yaml:"tax_year"`
}

// RatesConfig points at the municipality rate reference data.
type RatesConfig struct {
	CSVPath string `yaml:"csv_path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Load reads a steuerlink.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new project.
func Default(name string) *Config {
	return &Config{
		Project: ProjectConfig{
			Name:    name,
			Canton:  "ZH",
			TaxYear: 2024,
		},
		Rates: RatesConfig{
			CSVPath: "rates/steuerfuesse.csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
