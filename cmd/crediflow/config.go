package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's connection settings, loaded from a YAML file with
// environment-variable overrides for the credentials.
type Config struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	APIKey   string `yaml:"api_key"`
	Log      struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// LoadConfig reads the configuration from path. A missing file is not an
// error when path is empty; the environment can carry everything.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base_url is required (config file or CREDIFLOW_BASE_URL)")
	}

	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file, so credentials
// can stay out of checked-in configs.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CREDIFLOW_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CREDIFLOW_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("CREDIFLOW_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("CREDIFLOW_API_KEY"); v != "" {
		cfg.APIKey = v
	}
}
