package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := "server:\n  port: 5000\njwt:\n  secret: segredo-de-teste\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// nested keys are overridable through the environment
	t.Setenv("OF_SERVER_PORT", "9000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000 (env override)", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "segredo-de-teste" {
		t.Errorf("JWT.Secret = %q", cfg.JWT.Secret)
	}

	// keys absent from the file fall back to defaults
	if cfg.App.DemoUsername != "joaosilva" {
		t.Errorf("App.DemoUsername = %q, want joaosilva", cfg.App.DemoUsername)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want :memory:", cfg.Database.Path)
	}

	if Get() != cfg {
		t.Error("Get() did not return the loaded config")
	}
}
