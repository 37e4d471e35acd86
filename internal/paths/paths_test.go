package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dave-London/pare/internal/errors"
)

func TestClients(t *testing.T) {
	clients := Clients()
	if len(clients) != 4 {
		t.Fatalf("Clients() returned %d, want 4", len(clients))
	}
	for _, c := range clients {
		if !ValidClient(c) {
			t.Errorf("ValidClient(%q) = false", c)
		}
	}
	if ValidClient("emacs") {
		t.Error("ValidClient(emacs) = true")
	}
}

func TestConfigPath_ProjectScoped(t *testing.T) {
	got, err := ConfigPath(ClientVSCode, "/work/repo")
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	want := filepath.Join("/work/repo", ".vscode", "mcp.json")
	if got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestConfigPath_HomeScoped(t *testing.T) {
	tests := []struct {
		client string
		suffix string
	}{
		{ClientCursor, filepath.Join(".cursor", "mcp.json")},
		{ClientContinue, filepath.Join(".continue", "config.yaml")},
		{ClientCodex, filepath.Join(".codex", "config.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.client, func(t *testing.T) {
			got, err := ConfigPath(tt.client, "")
			if err != nil {
				t.Fatalf("ConfigPath() error = %v", err)
			}
			if !strings.HasSuffix(got, tt.suffix) {
				t.Errorf("ConfigPath() = %q, want suffix %q", got, tt.suffix)
			}
			if !filepath.IsAbs(got) {
				t.Errorf("ConfigPath() = %q, want absolute", got)
			}
		})
	}
}

func TestConfigPath_Unknown(t *testing.T) {
	_, err := ConfigPath("emacs", "")
	if !errors.Is(err, errors.ErrUnknownClient) {
		t.Errorf("ConfigPath(emacs) error = %v, want ErrUnknownClient", err)
	}
}
