package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dave-London/pare/internal/errors"
	"github.com/Dave-London/pare/internal/registry"
	"github.com/Dave-London/pare/internal/runner"
	"github.com/Dave-London/pare/internal/store"
)

func TestWriteClients_AllClients(t *testing.T) {
	st := store.NewMem(nil)
	var out bytes.Buffer

	entries, err := registry.Select([]string{"pare-git", "pare-test"})
	require.NoError(t, err)

	err = writeClients(&out, st, entries, []string{"vscode", "cursor", "continue", "codex"},
		"/work/repo", runner.PlatformLinux, false)
	require.NoError(t, err)

	paths := st.Paths()
	require.Len(t, paths, 4, "one config file per client")

	for _, name := range []string{"vscode", "cursor", "continue", "codex"} {
		assert.Contains(t, out.String(), "Updated "+name)
	}
	assert.Contains(t, out.String(), "Registered 2 server(s) with 4 client(s).")

	// The vscode file lands under the given project root.
	text, ok, err := st.Read("/work/repo/.vscode/mcp.json")
	require.NoError(t, err)
	require.True(t, ok, "vscode config missing; wrote %v", paths)
	assert.Contains(t, text, `"pare-git"`)
	assert.Contains(t, text, `"@paretools/test"`)
}

func TestWriteClients_DryRun(t *testing.T) {
	st := store.NewMem(nil)
	var out bytes.Buffer

	entries, err := registry.Select([]string{"pare-git"})
	require.NoError(t, err)

	err = writeClients(&out, st, entries, []string{"codex"}, "", runner.PlatformLinux, true)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "--- codex")
	assert.Contains(t, out.String(), "[mcp_servers.pare-git]")
	assert.NotContains(t, out.String(), "Registered")
}

func TestWriteClients_UnknownClient(t *testing.T) {
	st := store.NewMem(nil)
	var out bytes.Buffer

	err := writeClients(&out, st, registry.All()[:1], []string{"emacs"}, "", runner.PlatformLinux, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownClient))

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, errors.ExitUser, exitErr.Code)
}

func TestSelectEntries_FlagDriven(t *testing.T) {
	t.Cleanup(func() { initServers = nil })

	initServers = []string{"pare-test", "pare-git"}
	entries, err := selectEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "pare-test", entries[0].ID)
	assert.Equal(t, "pare-git", entries[1].ID)
}

func TestSelectEntries_UnknownServer(t *testing.T) {
	t.Cleanup(func() { initServers = nil })

	initServers = []string{"bogus"}
	_, err := selectEntries()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownServer))
}

func TestRunList_JSON(t *testing.T) {
	t.Cleanup(func() { listJSON = false })

	listJSON = true
	var out bytes.Buffer
	require.NoError(t, runList(&out))

	var servers []struct {
		ID           string   `json:"id"`
		Pkg          string   `json:"pkg"`
		Capabilities []string `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &servers))
	require.NotEmpty(t, servers)
	assert.Equal(t, "pare-git", servers[0].ID)
	assert.Equal(t, "@paretools/git", servers[0].Pkg)
	assert.NotEmpty(t, servers[0].Capabilities)
}

func TestRunList_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runList(&out))

	assert.Contains(t, out.String(), "pare-git")
	assert.Contains(t, out.String(), "@paretools/git")
	assert.Contains(t, out.String(), "git_status")
}
