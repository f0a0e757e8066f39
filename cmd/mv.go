package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var mvCmd = &cobra.Command{
	Use:   "mv <source> <dest>",
	Short: "Move or rename a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runMv,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(mvCmd)
	mvCmd.Flags().BoolP("force", "f", false, "Overwrite an existing destination")
}

func runMv(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	source, dest := args[0], args[1]
	force, _ := cmd.Flags().GetBool("force")

	if !app.FileOps.Move(source, dest, force) {
		failf(cmd, "Failed to move: %s → %s", source, dest)
		return errOperationFailed
	}

	successf(cmd, "Moved: %s → %s", source, dest)
	return nil
}
