package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Dave-London/pare/internal/errors"
	"github.com/Dave-London/pare/internal/registry"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available tool servers",
	Long:  `List the pare tool servers that can be registered with a client.`,
	Example: `  pare list
  pare list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd.OutOrStdout())
	},
}

func runList(w io.Writer) error {
	entries := registry.All()

	if listJSON {
		type serverJSON struct {
			ID           string   `json:"id"`
			Pkg          string   `json:"pkg"`
			Description  string   `json:"description"`
			Capabilities []string `json:"capabilities"`
		}
		out := make([]serverJSON, 0, len(entries))
		for _, e := range entries {
			out = append(out, serverJSON{
				ID:           e.ID,
				Pkg:          e.Pkg,
				Description:  e.Description,
				Capabilities: e.Capabilities,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(out), "encoding server list")
	}

	idColor := color.New(color.FgCyan, color.Bold)
	pkgColor := color.New(color.FgHiBlack)

	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\n", idColor.Sprint(e.ID), pkgColor.Sprint(e.Pkg))
		fmt.Fprintf(w, "  %s\n", e.Description)
		fmt.Fprintf(w, "  tools: %s\n", strings.Join(e.Capabilities, ", "))
	}
	return nil
}
