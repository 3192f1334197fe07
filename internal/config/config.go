// Package config loads the Marai configuration from a TOML file, applying
// defaults for anything unset. API keys are taken from the environment, not
// the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Environment variable names for the web search credentials.
const (
	EnvSearchAPIKey   = "GOOGLE_API_KEY"
	EnvSearchEngineID = "GOOGLE_SEARCH_CX"
	EnvInferenceToken = "INFERENCE_API_TOKEN"
)

// Corpus configures the on-disk document store.
type Corpus struct {
	Dir string `toml:"dir"`
}

// Search configures the web fallback's scoped search.
type Search struct {
	// Site restricts fallback searches to one encyclopedia domain.
	Site string `toml:"site"`

	// MaxResults caps the number of result URLs requested.
	MaxResults int `toml:"max_results"`

	// RequestsPerSecond throttles search API calls.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// Fetch configures page retrieval.
type Fetch struct {
	TimeoutSecs int `toml:"timeout_secs"`
}

// Paraphrase configures the rephrasing endpoint.
type Paraphrase struct {
	Endpoint    string `toml:"endpoint"`
	TimeoutSecs int    `toml:"timeout_secs"`
}

// Config is the root configuration.
type Config struct {
	Corpus     Corpus     `toml:"corpus"`
	Search     Search     `toml:"search"`
	Fetch      Fetch      `toml:"fetch"`
	Paraphrase Paraphrase `toml:"paraphrase"`
}

// Load reads the config from path. A missing file yields the defaults; any
// other read or parse failure is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default()
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// DefaultPath returns ~/.marai/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".marai", "config.toml"), nil
}

// Default returns the configuration used when no file exists.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Corpus: Corpus{Dir: filepath.Join(home, ".marai", "corpora")},
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Search.Site == "" {
		cfg.Search.Site = "mr.wikipedia.org"
	}
	if cfg.Search.MaxResults <= 0 {
		cfg.Search.MaxResults = 3
	}
	if cfg.Search.RequestsPerSecond <= 0 {
		cfg.Search.RequestsPerSecond = 1.0
	}
	if cfg.Fetch.TimeoutSecs <= 0 {
		cfg.Fetch.TimeoutSecs = 20
	}
	if cfg.Paraphrase.TimeoutSecs <= 0 {
		cfg.Paraphrase.TimeoutSecs = 30
	}
}
