package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the shared service configuration. Each binary reads the file
// named by KALAVERSE_CONFIG (or a -config flag) and then applies
// environment overrides, so container deployments can stay file-free.
type Config struct {
	Addr        string  `yaml:"addr"`
	JWTSecret   string  `yaml:"jwt_secret"`
	PostgresDSN string  `yaml:"postgres_dsn"`
	RedisAddr   string  `yaml:"redis_addr"`
	CartDir     string  `yaml:"cart_dir"`
	AuthURL     string  `yaml:"auth_url"`
	CatalogURL  string  `yaml:"catalog_url"`
	CartURL     string  `yaml:"cart_url"`
	Metrics     Metrics `yaml:"metrics"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
}

// Load merges, in increasing precedence: defaults, the YAML file at path
// (skipped when path is empty or the file is absent), and environment
// variables.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults

	if path == "" {
		path = os.Getenv("KALAVERSE_CONFIG")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Optional file; env and defaults carry the config.
		case err != nil:
			return Config{}, err
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	override("ADDR", &cfg.Addr)
	override("JWT_SECRET", &cfg.JWTSecret)
	override("POSTGRES_DSN", &cfg.PostgresDSN)
	override("REDIS_ADDR", &cfg.RedisAddr)
	override("CART_DIR", &cfg.CartDir)
	override("AUTH_URL", &cfg.AuthURL)
	override("CATALOG_URL", &cfg.CatalogURL)
	override("CART_URL", &cfg.CartURL)
	override("METRICS_TOKEN", &cfg.Metrics.Token)

	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = v == "1" || v == "true"
	}
}

func override(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
