package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List directory contents",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolP("all", "a", false, "Include hidden files")
	lsCmd.Flags().BoolP("long", "l", false, "Detailed listing")
	lsCmd.Flags().String("format", formatText, "Output format: text, json or yaml")
}

func runLs(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	all, _ := cmd.Flags().GetBool("all")
	long, _ := cmd.Flags().GetBool("long")
	format, _ := cmd.Flags().GetString("format")
	if !validFormat(format) {
		return fmt.Errorf("unsupported format: %s", format)
	}

	entries := app.DirOps.List(path, all, long)

	if format != formatText {
		return renderStructured(cmd, format, entries)
	}

	if !long {
		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), e.Name)
		}
		return nil
	}

	boldf(cmd, "Contents of %s", path)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED")
	for _, e := range entries {
		size, modified := e.Size, e.Modified
		if size == "" {
			size = "-"
		}
		if modified == "" {
			modified = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, size, modified)
	}
	return w.Flush()
}
