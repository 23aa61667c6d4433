package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of GAMENEXUS_CONFIG. It deliberately has no
// fields for the client id or secret.
type fileConfig struct {
	Port            string `yaml:"port"`
	CatalogProvider string `yaml:"catalog_provider"`
	UpstreamTimeout string `yaml:"upstream_timeout"`
	Twitch          struct {
		TokenURL   string `yaml:"token_url"`
		TokenCache bool   `yaml:"token_cache"`
	} `yaml:"twitch"`
	IGDB struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"igdb"`
	News struct {
		FeedURL string `yaml:"feed_url"`
		Limit   int    `yaml:"limit"`
	} `yaml:"news"`
	Metrics struct {
		Enabled *bool  `yaml:"enabled"`
		Port    string `yaml:"port"`
	} `yaml:"metrics"`
	Tracing struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"tracing"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

func fileDuration(raw string, defaultValue time.Duration) time.Duration {
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}
