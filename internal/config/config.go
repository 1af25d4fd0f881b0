// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CTA configures the consultation call-to-action attached to low-score
// recommendations.
type CTA struct {
	URL  string `yaml:"url"`
	Text string `yaml:"text"`
}

// Config is the full server configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// DBPath is the SQLite analytics database file.
	DBPath string `yaml:"db_path"`
	// Analytics toggles usage tracking. Off means no database is opened.
	Analytics bool `yaml:"analytics"`
	CTA       CTA  `yaml:"cta"`
}

// Default returns the configuration used when no file or overrides are
// present.
func Default() Config {
	return Config{
		Addr:      ":8080",
		DBPath:    "uqual-analytics.db",
		Analytics: true,
	}
}

// Load reads the YAML file at path, if any, then applies environment
// overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("UQUAL_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("UQUAL_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("UQUAL_ANALYTICS"); v != "" {
		c.Analytics = v != "false" && v != "0" && v != "no"
	}
	if v := os.Getenv("UQUAL_CTA_URL"); v != "" {
		c.CTA.URL = v
	}
	if v := os.Getenv("UQUAL_CTA_TEXT"); v != "" {
		c.CTA.Text = v
	}
}
