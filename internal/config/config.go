// Package config loads server settings from an optional YAML file, a
// local .env file and LAVE1_* environment variables, in that order of
// precedence (environment wins).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Port the API server listens on.
	Port int `yaml:"port"`
	// DatabasePath is the sqlite file holding parse-run history.
	DatabasePath string `yaml:"database_path"`
	// StaticDir serves the dashboard frontend when set.
	StaticDir string `yaml:"static_dir"`
	// MaxUploadMB caps the size of one uploaded report.
	MaxUploadMB int `yaml:"max_upload_mb"`
}

func defaults() *Config {
	return &Config{
		Port:         8080,
		DatabasePath: "lave1.db",
		MaxUploadMB:  16,
	}
}

// Load reads the configuration. A missing file path is fine; defaults
// plus environment are enough to run.
func Load(path string) (*Config, error) {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = defaults().MaxUploadMB
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LAVE1_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("LAVE1_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("LAVE1_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
}
