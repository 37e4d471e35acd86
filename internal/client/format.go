// Package client implements the per-client config writers.
//
// Each supported client is described by a Format: which codec its file
// uses, where the server container lives, whether that container is a map
// keyed by server id or a list of records matched by an identifying field,
// and how a server record is shaped. One shared merge algorithm (Writer)
// consumes these descriptors, so the format differences stay declarative.
package client

import (
	"github.com/Dave-London/pare/internal/codec"
	"github.com/Dave-London/pare/internal/document"
	"github.com/Dave-London/pare/internal/errors"
	"github.com/Dave-London/pare/internal/runner"
)

// Shape describes how a Format's container addresses server records.
type Shape int

const (
	// ShapeKeyedMap is a map/table of records keyed by server id.
	ShapeKeyedMap Shape = iota

	// ShapeList is a list of records carrying an identifying field.
	ShapeList
)

// Format declaratively describes one client's config file.
type Format struct {
	// Client is the client name (vscode, cursor, continue, codex).
	Client string

	// Codec is the file format codec.
	Codec codec.Codec

	// ContainerKey is the top-level key holding server records.
	ContainerKey string

	// Shape is the container's addressing rule.
	Shape Shape

	// IdentifyField names the record field holding the server id.
	// Only used for ShapeList.
	IdentifyField string

	// Template builds the starting document for an absent or
	// unreadable file.
	Template func() document.Map

	// Record builds the fields this writer owns for one server.
	Record func(id string, cmd runner.Command) document.Map
}

func emptyTemplate() document.Map {
	return document.Map{}
}

// VSCode is the .vscode/mcp.json format: JSON with comments, a top-level
// "servers" object keyed by id, records shaped {type, command, args}.
func VSCode() Format {
	return Format{
		Client:       "vscode",
		Codec:        codec.NewJSONC(),
		ContainerKey: "servers",
		Shape:        ShapeKeyedMap,
		Template:     emptyTemplate,
		Record: func(id string, cmd runner.Command) document.Map {
			return document.Map{
				"type":    "stdio",
				"command": cmd.Command,
				"args":    cmd.Args,
			}
		},
	}
}

// Cursor is the .cursor/mcp.json format: a top-level "mcpServers" object
// keyed by id, records shaped {command, args}. Cursor tolerates the same
// comment dialect as VS Code, so it shares the JSONC codec.
func Cursor() Format {
	return Format{
		Client:       "cursor",
		Codec:        codec.NewJSONC(),
		ContainerKey: "mcpServers",
		Shape:        ShapeKeyedMap,
		Template:     emptyTemplate,
		Record: func(id string, cmd runner.Command) document.Map {
			return document.Map{
				"command": cmd.Command,
				"args":    cmd.Args,
			}
		},
	}
}

// Continue is the .continue/config.yaml format: a fixed name/version/schema
// banner plus an "mcpServers" list of records identified by their "name"
// field.
func Continue() Format {
	return Format{
		Client:        "continue",
		Codec:         codec.NewYAML(),
		ContainerKey:  "mcpServers",
		Shape:         ShapeList,
		IdentifyField: "name",
		Template: func() document.Map {
			return document.Map{
				"name":    "Local Assistant",
				"version": "1.0.0",
				"schema":  "v1",
			}
		},
		Record: func(id string, cmd runner.Command) document.Map {
			return document.Map{
				"name":    id,
				"type":    "stdio",
				"command": cmd.Command,
				"args":    cmd.Args,
			}
		},
	}
}

// Codex is the ~/.codex/config.toml format: an "mcp_servers" table with one
// sub-table per id, shaped {command, args}.
func Codex() Format {
	return Format{
		Client:       "codex",
		Codec:        codec.NewTOML(),
		ContainerKey: "mcp_servers",
		Shape:        ShapeKeyedMap,
		Template:     emptyTemplate,
		Record: func(id string, cmd runner.Command) document.Map {
			return document.Map{
				"command": cmd.Command,
				"args":    cmd.Args,
			}
		},
	}
}

// Formats returns every supported client format in stable display order.
func Formats() []Format {
	return []Format{VSCode(), Cursor(), Continue(), Codex()}
}

// ForClient returns the Format for the given client name.
// Returns ErrUnknownClient if the name is not supported.
func ForClient(name string) (Format, error) {
	for _, f := range Formats() {
		if f.Client == name {
			return f, nil
		}
	}
	return Format{}, errors.Wrapf(errors.ErrUnknownClient, "%q", name)
}
