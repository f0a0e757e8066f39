package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a new directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runMkdir,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(mkdirCmd)
	mkdirCmd.Flags().BoolP("parents", "p", false, "Create parent directories as needed")
}

func runMkdir(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	path := args[0]
	parents, _ := cmd.Flags().GetBool("parents")

	if !app.DirOps.CreateDirectory(path, parents) {
		failf(cmd, "Failed to create: %s", path)
		return errOperationFailed
	}

	successf(cmd, "Created directory: %s", path)
	return nil
}
