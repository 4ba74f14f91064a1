package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration. The comparison library itself takes
// everything per call; this only feeds the command-line surface.
type Config struct {
	Log          LogConfig         `yaml:"log"`
	DisplayNames map[string]string `yaml:"display_names"`
	Palette      []string          `yaml:"palette"`
}

// LogConfig controls log level and optional log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}
