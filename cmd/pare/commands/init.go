package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/Dave-London/pare/internal/client"
	"github.com/Dave-London/pare/internal/config"
	"github.com/Dave-London/pare/internal/errors"
	"github.com/Dave-London/pare/internal/logging"
	"github.com/Dave-London/pare/internal/registry"
	"github.com/Dave-London/pare/internal/runner"
	"github.com/Dave-London/pare/internal/store"
)

var (
	initServers []string
	initProject string
	initDryRun  bool
)

func init() {
	initCmd.Flags().StringSliceVarP(&initServers, "server", "s", nil,
		"server id(s) to register (default: choose interactively)")
	initCmd.Flags().StringVar(&initProject, "project", "",
		"project root for project-scoped clients like vscode (default: current directory)")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false,
		"print the resulting config files without writing them")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Register tool servers with your MCP clients",
	Long: `Register pare tool servers with the selected clients.

Servers are chosen with --server flags, or interactively when the flag is
omitted and stdin is a terminal. Each client's config file is updated in
place: existing pare entries are refreshed, other servers and unrelated
settings are preserved.`,
	Example: `  # Choose servers interactively, write all configured clients
  pare init

  # Register git and test servers with VS Code only
  pare init --server pare-git --server pare-test --client vscode

  # Preview without touching any file
  pare init --server pare-git --dry-run`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	entries, err := selectEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing selected.")
		return nil
	}

	var st store.Store
	if initDryRun {
		st = store.NewMem(nil)
	} else {
		st = store.NewOS()
	}

	return writeClients(cmd.OutOrStdout(), st, entries, targetClients(), initProject, runner.Current(), initDryRun)
}

// selectEntries resolves the --server flags, falling back to interactive
// selection when stdin is a terminal.
func selectEntries() ([]registry.ServerEntry, error) {
	if len(initServers) > 0 {
		entries, err := registry.Select(initServers)
		if err != nil {
			return nil, errors.NewUserError(err, "Run 'pare list' to see available servers")
		}
		return entries, nil
	}

	if !logging.IsTTY(os.Stdin) {
		return nil, errors.NewUserError(
			errors.New("no servers specified"),
			"Pass --server <id> (repeatable), or run interactively from a terminal")
	}

	return pickEntries(registry.All())
}

// pickEntries runs the fuzzyfinder multi-select over the catalog.
func pickEntries(catalog []registry.ServerEntry) ([]registry.ServerEntry, error) {
	idxs, err := fuzzyfinder.FindMulti(
		catalog,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", catalog[i].ID, catalog[i].Pkg)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			e := catalog[i]
			return fmt.Sprintf("%s\n\n%s\n\nTools:\n  %s",
				e.Pkg,
				e.Description,
				strings.Join(e.Capabilities, "\n  "),
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	entries := make([]registry.ServerEntry, 0, len(idxs))
	for _, i := range idxs {
		entries = append(entries, catalog[i])
	}
	return entries, nil
}

// writeClients merges entries into each target client's config file through
// the given store and reports the results to w.
func writeClients(w io.Writer, st store.Store, entries []registry.ServerEntry, clients []string, projectRoot string, platform runner.Platform, dryRun bool) error {
	pathColor := color.New(color.FgCyan)

	for _, name := range clients {
		format, err := client.ForClient(name)
		if err != nil {
			return errors.NewUserError(err, "Run 'pare --help' to see valid clients")
		}

		path, err := cfgOrDefault().ConfigPathFor(name, projectRoot)
		if err != nil {
			return err
		}

		writer := client.NewWriter(format, st, slog.Default())
		text, err := writer.Write(path, entries, platform)
		if err != nil {
			return errors.NewSystemError(
				errors.Wrapf(err, "updating %s config", name),
				"Check that the file and its directory are writable")
		}

		if dryRun {
			fmt.Fprintf(w, "--- %s (%s)\n%s\n", name, pathColor.Sprint(path), text)
			continue
		}
		fmt.Fprintf(w, "Updated %s: %s\n", name, pathColor.Sprint(path))
	}

	if !dryRun {
		fmt.Fprintf(w, "Registered %d server(s) with %d client(s).\n", len(entries), len(clients))
	}
	return nil
}

// cfgOrDefault returns the loaded config, or an empty one when running
// before initConfig (as in tests).
func cfgOrDefault() *config.Config {
	if cfg != nil {
		return cfg
	}
	return &config.Config{}
}
