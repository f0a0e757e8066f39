package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Display directory tree structure",
	Long: `Render a directory tree with folder and file markers. Hidden entries
are never shown. The default depth comes from the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().IntP("depth", "d", 0, "Maximum depth to display (default from config)")
}

func runTree(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	depth, _ := cmd.Flags().GetInt("depth")
	if depth < 1 {
		depth = app.Settings.TreeDepth
	}

	app.DirOps.Tree(cmd.OutOrStdout(), path, depth)
	return nil
}
