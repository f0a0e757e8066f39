package cmd

import (
	"errors"
	"fmt"

	"fscmd/internal/domain"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var findCmd = &cobra.Command{
	Use:   "find [path]",
	Short: "Find files and directories matching criteria",
	Long: `Recursively find entries under a root. Filters combine: a name glob
(e.g. '*.go'), a size spec (e.g. '>1MB', binary units), and an entry
type (file, dir or link). Size specs only constrain plain files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringP("name", "n", "", "Glob pattern for the entry name (e.g. '*.py')")
	findCmd.Flags().StringP("size", "s", "", "Filter by size (e.g. '>1MB', '<100KB')")
	findCmd.Flags().StringP("type", "t", "", "Filter by type (file, dir, link)")
	findCmd.Flags().String("format", formatText, "Output format: text, json or yaml")
}

func runFind(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	name, _ := cmd.Flags().GetString("name")
	size, _ := cmd.Flags().GetString("size")
	kind, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")

	if kind != "" && !domain.IsValidEntryKind(kind) {
		return fmt.Errorf("unsupported type: %s (want file, dir or link)", kind)
	}
	if !validFormat(format) {
		return fmt.Errorf("unsupported format: %s", format)
	}

	entries := app.Search.Find(cmd.Context(), path, domain.FindOptions{
		Name: name,
		Size: size,
		Kind: domain.EntryKind(kind),
	})

	if format != formatText {
		return renderStructured(cmd, format, entries)
	}

	if len(entries) == 0 {
		warnf(cmd, "No files found")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintln(cmd.OutOrStdout(), e.Path)
	}
	boldf(cmd, "\nFound %d items", len(entries))
	return nil
}
