package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var searchCmd = &cobra.Command{
	Use:   "search <pattern> [path]",
	Short: "Search for a text pattern in files",
	Long: `Search file contents line by line for a case-insensitive regular
expression. An invalid pattern is matched as literal text instead of
failing. Files are selected by the include glob (default from config)
and skipped when their name matches the exclude glob.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSearch,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("include", "", "Glob pattern for files to include (default from config)")
	searchCmd.Flags().String("exclude", "", "Glob pattern for files to exclude")
	searchCmd.Flags().String("format", formatText, "Output format: text, json or yaml")
}

func runSearch(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	pattern := args[0]
	path := "."
	if len(args) > 1 {
		path = args[1]
	}

	include, _ := cmd.Flags().GetString("include")
	exclude, _ := cmd.Flags().GetString("exclude")
	format, _ := cmd.Flags().GetString("format")
	if !validFormat(format) {
		return fmt.Errorf("unsupported format: %s", format)
	}
	if include == "" {
		include = app.Settings.SearchInclude
	}

	matches := app.Search.SearchText(cmd.Context(), pattern, path, include, exclude)

	if format != formatText {
		return renderStructured(cmd, format, matches)
	}

	if len(matches) == 0 {
		warnf(cmd, "No matches found")
		return nil
	}

	for _, m := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d\n", m.File, m.Line)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", strings.TrimSpace(m.Content))
	}
	boldf(cmd, "\nFound %d matches", len(matches))
	return nil
}
