// Package config loads application configuration from an optional YAML file
// with environment variable overrides on top.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Notification NotificationConfig `yaml:"notification"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig holds the path of the single-file store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig holds token settings for the caller layer.
type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret"`
	ExpireHours int    `yaml:"expire_hours"`
}

// NotificationConfig holds the injected delivery destination and the local
// gate policy. The destination deliberately has no in-code default; it is
// deployment configuration, not a constant.
type NotificationConfig struct {
	Destination string `yaml:"destination"`
	Grant       bool   `yaml:"grant"`
}

// Load reads the YAML file at path (missing file is fine, defaults apply)
// and then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Path: "weighttracker.db"},
		Auth:     AuthConfig{JWTSecret: "dev-secret-change-me", ExpireHours: 24},
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRE_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Auth.ExpireHours = n
		}
	}
	if v := os.Getenv("NOTIFY_DESTINATION"); v != "" {
		cfg.Notification.Destination = v
	}
	if v := os.Getenv("NOTIFY_GRANT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Notification.Grant = b
		}
	}
}
