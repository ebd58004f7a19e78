// Package config loads chronicle configuration from a TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// LLMConfig selects the optional external classification provider. An empty
// provider disables LLM classification entirely.
type LLMConfig struct {
	Provider string `toml:"provider" env:"LLM_PROVIDER"`
	Model    string `toml:"model" env:"LLM_MODEL"`
	APIKey   string `toml:"api_key" env:"LLM_API_KEY"`
	BaseURL  string `toml:"base_url" env:"LLM_BASE_URL"`
}

// CategoryConfig is one emotional tone override.
type CategoryConfig struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
}

// ClassifierConfig overrides the built-in taxonomy. An empty category list
// keeps the ten default tones.
type ClassifierConfig struct {
	Fallback   string           `toml:"fallback"`
	Categories []CategoryConfig `toml:"categories"`
}

// TraversalConfig overrides the thematic-question stopword set.
type TraversalConfig struct {
	Stopwords []string `toml:"stopwords"`
}

type ServerConfig struct {
	Port string `toml:"port" env:"PORT" envDefault:"8080"`
}

type Config struct {
	LLM        LLMConfig        `toml:"llm"`
	Classifier ClassifierConfig `toml:"classifier"`
	Traversal  TraversalConfig  `toml:"traversal"`
	Server     ServerConfig     `toml:"server"`
}

// Default returns a configuration with no overrides: built-in taxonomy,
// default stopwords, no LLM provider, port 8080.
func Default() *Config {
	return &Config{Server: ServerConfig{Port: "8080"}}
}

// Load reads a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto the config.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
