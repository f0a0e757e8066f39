package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Remove a file or directory",
	Long: `Remove a file or an empty directory. Non-empty directories require
--recursive. With --force a missing path counts as success.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolP("recursive", "r", false, "Remove directories recursively")
	rmCmd.Flags().BoolP("force", "f", false, "Ignore non-existent paths")
}

func runRm(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	path := args[0]
	recursive, _ := cmd.Flags().GetBool("recursive")
	force, _ := cmd.Flags().GetBool("force")

	if !app.FileOps.Remove(path, recursive, force) {
		failf(cmd, "Failed to remove: %s", path)
		return errOperationFailed
	}

	successf(cmd, "Removed: %s", path)
	return nil
}
