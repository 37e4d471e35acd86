// Package registry holds the immutable catalog of pare tool servers.
//
// Each entry describes one distributable MCP server: its stable id (used as
// the record key in client config files), the npm package that implements
// it, and the tool capabilities it declares. Entries are never mutated by
// config writers.
package registry

import (
	"github.com/Dave-London/pare/internal/errors"
)

// ServerEntry describes one tool server available for installation.
type ServerEntry struct {
	// ID is the stable, unique, kebab-case identifier. Client config
	// records are keyed by this value.
	ID string

	// Pkg is the distributable npm package reference.
	Pkg string

	// Description is a one-line summary shown in CLI listings.
	Description string

	// Capabilities names the tools the server exposes.
	Capabilities []string
}

// entries is the compiled-in catalog, in display order.
var entries = []ServerEntry{
	{
		ID:           "pare-git",
		Pkg:          "@paretools/git",
		Description:  "Git operations: status, log, diff, branch, commit",
		Capabilities: []string{"git_status", "git_log", "git_diff", "git_branch", "git_commit"},
	},
	{
		ID:           "pare-docker",
		Pkg:          "@paretools/docker",
		Description:  "Docker containers, images, and compose",
		Capabilities: []string{"docker_ps", "docker_images", "docker_logs", "docker_compose"},
	},
	{
		ID:           "pare-npm",
		Pkg:          "@paretools/npm",
		Description:  "npm package queries and script runner",
		Capabilities: []string{"npm_info", "npm_outdated", "npm_run", "npm_audit"},
	},
	{
		ID:           "pare-fs",
		Pkg:          "@paretools/fs",
		Description:  "Filesystem search and inspection",
		Capabilities: []string{"fs_find", "fs_grep", "fs_stat", "fs_tree"},
	},
	{
		ID:           "pare-test",
		Pkg:          "@paretools/test",
		Description:  "Test runner adapters with structured results",
		Capabilities: []string{"test_run", "test_list", "test_coverage"},
	},
	{
		ID:           "pare-gh",
		Pkg:          "@paretools/gh",
		Description:  "GitHub CLI: issues, pull requests, checks",
		Capabilities: []string{"gh_issue", "gh_pr", "gh_checks"},
	},
}

// All returns every catalog entry in stable display order.
// The returned slice is a copy; mutating it does not affect the catalog.
func All() []ServerEntry {
	out := make([]ServerEntry, len(entries))
	copy(out, entries)
	return out
}

// Get returns the entry with the given id.
func Get(id string) (ServerEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return ServerEntry{}, false
}

// Select resolves ids to entries, preserving the requested order.
// Returns ErrUnknownServer if any id is not in the catalog.
func Select(ids []string) ([]ServerEntry, error) {
	out := make([]ServerEntry, 0, len(ids))
	for _, id := range ids {
		e, ok := Get(id)
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnknownServer, "%q", id)
		}
		out = append(out, e)
	}
	return out, nil
}
