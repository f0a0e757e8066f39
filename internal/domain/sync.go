package domain

// SyncOptions controls a single sync invocation.
type SyncOptions struct {
	// Delete removes destination files that have no counterpart in the
	// source tree.
	Delete bool
	// DryRun reports what would happen without touching the filesystem.
	DryRun bool
}

// SyncResult accumulates counters over one sync pass. Counters never
// decrease during a pass and are reported even under dry-run.
type SyncResult struct {
	Copied  int `json:"copied" yaml:"copied"`
	Skipped int `json:"skipped" yaml:"skipped"`
	Deleted int `json:"deleted" yaml:"deleted"`
}
