// Package paths resolves where each supported client keeps its config file.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/Dave-London/pare/internal/errors"
)

// Client identifiers for supported MCP clients.
const (
	ClientVSCode   = "vscode"
	ClientCursor   = "cursor"
	ClientContinue = "continue"
	ClientCodex    = "codex"
)

// clientConfigFiles maps client names to their config file paths relative
// to the user's home directory. VS Code is absent: its config is
// project-scoped (see ProjectConfigPath).
var clientConfigFiles = map[string]string{
	ClientCursor:   filepath.Join(".cursor", "mcp.json"),
	ClientContinue: filepath.Join(".continue", "config.yaml"),
	ClientCodex:    filepath.Join(".codex", "config.toml"),
}

// projectConfigFiles maps client names to their config file paths relative
// to a project root.
var projectConfigFiles = map[string]string{
	ClientVSCode: filepath.Join(".vscode", "mcp.json"),
}

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// Clients returns all supported client names in stable display order.
func Clients() []string {
	return []string{ClientVSCode, ClientCursor, ClientContinue, ClientCodex}
}

// ValidClient reports whether name is a supported client.
func ValidClient(name string) bool {
	for _, c := range Clients() {
		if c == name {
			return true
		}
	}
	return false
}

// ConfigPath returns the default config file path for the given client.
// Project-scoped clients resolve against projectRoot; home-scoped clients
// resolve against the user's home directory.
func ConfigPath(client, projectRoot string) (string, error) {
	if rel, ok := projectConfigFiles[client]; ok {
		if projectRoot == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return "", errors.Wrap(err, "getting working directory")
			}
			projectRoot = cwd
		}
		return filepath.Join(projectRoot, rel), nil
	}

	rel, ok := clientConfigFiles[client]
	if !ok {
		return "", errors.Wrapf(errors.ErrUnknownClient, "%q", client)
	}

	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rel), nil
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory, where pare's own
// config file lives under a "pare" subdirectory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}
