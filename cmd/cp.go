package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var cpCmd = &cobra.Command{
	Use:   "cp <source> <dest>",
	Short: "Copy a file from source to destination",
	Long: `Copy a file from source to destination, creating missing parent
directories. An existing destination is only replaced with --force.`,
	Args: cobra.ExactArgs(2),
	RunE: runCp,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(cpCmd)
	cpCmd.Flags().BoolP("force", "f", false, "Overwrite an existing destination")
}

func runCp(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	source, dest := args[0], args[1]
	force, _ := cmd.Flags().GetBool("force")

	if !app.FileOps.Copy(source, dest, force) {
		failf(cmd, "Failed to copy: %s → %s", source, dest)
		return errOperationFailed
	}

	successf(cmd, "Copied: %s → %s", source, dest)
	return nil
}
