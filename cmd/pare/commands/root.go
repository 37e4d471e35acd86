// Package commands implements the CLI commands for pare.
package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dave-London/pare/internal/config"
	"github.com/Dave-London/pare/internal/errors"
	"github.com/Dave-London/pare/internal/logging"
	"github.com/Dave-London/pare/internal/paths"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// clientFlag holds the value of the --client flag.
var clientFlag []string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// cfg holds the loaded pare configuration.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringSliceVarP(&clientFlag, "client", "c", nil,
		`target client(s): vscode, cursor, continue, codex (default: configured clients)`)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("pare version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "pare",
	Short: "Register pare tool servers with your MCP clients",
	Long: `pare manages the @paretools family of MCP tool servers and registers
them with the clients you use: VS Code, Cursor, Continue, and Codex.

Each client keeps its server list in a different file format. pare merges
server entries into those files idempotently: existing entries are updated
in place, unrelated settings are left untouched, and running the same
command twice changes nothing.`,
	Example: `  # Register servers interactively
  pare init

  # Register specific servers with specific clients
  pare init --server pare-git --server pare-test --client vscode

  # See what is available
  pare list`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateClientFlag(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("PARE_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// validateClientFlag checks that all specified clients are valid.
func validateClientFlag(cmd *cobra.Command, _ []string) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	// Check for config load errors first
	if configLoadErr != nil {
		return errors.NewUserError(configLoadErr, "Check your pare config.yaml")
	}

	if len(clientFlag) == 0 {
		return nil
	}

	var invalid []string
	for _, c := range clientFlag {
		if !paths.ValidClient(c) {
			invalid = append(invalid, c)
		}
	}

	if len(invalid) > 0 {
		err := errors.Newf("invalid client(s): %s (valid: %s)",
			strings.Join(invalid, ", "),
			strings.Join(paths.Clients(), ", "))
		return errors.NewUserError(err, "Run 'pare --help' to see valid clients")
	}

	return nil
}

// targetClients returns the clients selected via --client, falling back to
// the configured default set.
func targetClients() []string {
	if len(clientFlag) > 0 {
		return clientFlag
	}
	if cfg != nil && len(cfg.DefaultClients) > 0 {
		return cfg.DefaultClients
	}
	return paths.Clients()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
