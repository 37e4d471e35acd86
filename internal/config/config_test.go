package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/Dave-London/pare/internal/errors"
)

func loadFrom(t *testing.T, content string) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return Load(path)
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init()

	// Run from an empty directory so no stray config.yaml is picked up.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if len(cfg.DefaultClients) != 4 {
		t.Errorf("DefaultClients = %v, want all four clients", cfg.DefaultClients)
	}
}

func TestLoad_File(t *testing.T) {
	cfg, err := loadFrom(t, `
version: 1
default_clients:
  - vscode
  - codex
clients:
  codex:
    config_path: /custom/codex.toml
`)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.DefaultClients) != 2 {
		t.Errorf("DefaultClients = %v, want [vscode codex]", cfg.DefaultClients)
	}

	got, err := cfg.ConfigPathFor("codex", "")
	if err != nil {
		t.Fatalf("ConfigPathFor() error = %v", err)
	}
	if got != "/custom/codex.toml" {
		t.Errorf("ConfigPathFor(codex) = %q, want override", got)
	}

	// Clients without an override fall back to the default location.
	got, err = cfg.ConfigPathFor("vscode", "/work/repo")
	if err != nil {
		t.Fatalf("ConfigPathFor() error = %v", err)
	}
	if want := filepath.Join("/work/repo", ".vscode", "mcp.json"); got != want {
		t.Errorf("ConfigPathFor(vscode) = %q, want %q", got, want)
	}
}

func TestLoad_UnknownClient(t *testing.T) {
	_, err := loadFrom(t, `
default_clients:
  - vscode
  - emacs
`)
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() error = nil for missing explicit path")
	}
}
