package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.API.Model != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[api]\nmodel = \"openai/gpt-oss-120b\"\ntimeout-seconds = 15\n\n[training]\nlengths = [100, 300]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.API.Model == nil || *cfg.API.Model != "openai/gpt-oss-120b" {
		t.Fatalf("unexpected model: %+v", cfg.API.Model)
	}
	if cfg.API.TimeoutSeconds == nil || *cfg.API.TimeoutSeconds != 15 {
		t.Fatalf("unexpected timeout: %+v", cfg.API.TimeoutSeconds)
	}
	if cfg.Training.Lengths == nil || len(*cfg.Training.Lengths) != 2 {
		t.Fatalf("unexpected lengths: %+v", cfg.Training.Lengths)
	}
}

func TestSaveAPIKeyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.toml")
	if err := SaveAPIKey(path, "gsk-test-key"); err != nil {
		t.Fatalf("save key: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat credentials: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}
	key, err := LoadAPIKey(path)
	if err != nil {
		t.Fatalf("load key: %v", err)
	}
	if key != "gsk-test-key" {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestLoadAPIKeyMissingFile(t *testing.T) {
	key, err := LoadAPIKey(filepath.Join(t.TempDir(), "credentials.toml"))
	if err != nil {
		t.Fatalf("missing credentials should not error: %v", err)
	}
	if key != "" {
		t.Fatalf("expected empty key, got %q", key)
	}
}
