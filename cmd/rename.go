package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var renameCmd = &cobra.Command{
	Use:   "rename <path> <new_name>",
	Short: "Rename a file within its directory",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	path, newName := args[0], args[1]

	if !app.FileOps.Rename(path, newName) {
		failf(cmd, "Failed to rename: %s", path)
		return errOperationFailed
	}

	successf(cmd, "Renamed: %s → %s", path, newName)
	return nil
}
