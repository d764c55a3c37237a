package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.yaml")
	data := []byte("addr: \":9090\"\nredis_addr: \"redis:6379\"\nmetrics:\n  enabled: true\n  token: \"tok\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, Config{Addr: ":8080", CartDir: "/var/lib/kalaverse"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Addr != ":9090" || cfg.RedisAddr != "redis:6379" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Token != "tok" {
		t.Fatalf("metrics=%+v", cfg.Metrics)
	}
	// Defaults survive when the file is silent.
	if cfg.CartDir != "/var/lib/kalaverse" {
		t.Fatalf("cart_dir=%q", cfg.CartDir)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svc.yaml")
	if err := os.WriteFile(path, []byte("jwt_secret: from-file\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PORT", "7070")

	cfg, err := Load(path, Config{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWTSecret != "from-env" || cfg.Addr != ":7070" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), Config{Addr: ":8080"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path, Config{}); err == nil {
		t.Fatalf("expected parse error")
	}
}
