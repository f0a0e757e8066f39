package cmd

import (
	"errors"
	"fmt"

	"fscmd/internal/domain"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var syncCmd = &cobra.Command{
	Use:   "sync <source> <dest>",
	Short: "Synchronize two directories",
	Long: `Copy files present in source but absent in destination. Existing
destination files are never overwritten. With --delete, destination
files without a source counterpart are removed. --dry-run reports the
counts without touching the filesystem.`,
	Args: cobra.ExactArgs(2),
	RunE: runSync,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().Bool("delete", false, "Delete extra files in destination")
	syncCmd.Flags().BoolP("dry-run", "n", false, "Show what would be done")
}

func runSync(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	source, dest := args[0], args[1]
	deleteExtra, _ := cmd.Flags().GetBool("delete")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	result, err := app.DirOps.Sync(cmd.Context(), source, dest, domain.SyncOptions{
		Delete: deleteExtra,
		DryRun: dryRun,
	})
	if err != nil {
		// Sync is the one fail-hard operation; surface the structured
		// error instead of a bare failure marker.
		failf(cmd, "Sync failed: %v", err)
		return errOperationFailed
	}

	if dryRun {
		warnf(cmd, "Dry run - no changes made")
	}

	successf(cmd, "Synced: %s → %s", source, dest)
	fmt.Fprintf(cmd.OutOrStdout(), "  Files copied: %d\n", result.Copied)
	fmt.Fprintf(cmd.OutOrStdout(), "  Files skipped: %d\n", result.Skipped)
	if deleteExtra {
		fmt.Fprintf(cmd.OutOrStdout(), "  Files deleted: %d\n", result.Deleted)
	}
	return nil
}
