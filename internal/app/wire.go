package app

import (
	"context"
	"log/slog"
	"os"

	"fscmd/internal/services/dirops"
	"fscmd/internal/services/fileops"
	"fscmd/internal/services/search"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	loggerOpts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, loggerOpts))

	logger.DebugContext(ctx, "Initializing fscmd",
		"logLevel", cfg.LogLevel.String(),
		"verbose", cfg.Verbose,
		"treeDepth", cfg.Settings.TreeDepth,
		"searchInclude", cfg.Settings.SearchInclude)

	return &App{
		FileOps:  fileops.New(logger),
		DirOps:   dirops.New(logger),
		Search:   search.New(logger),
		Logger:   logger,
		Settings: cfg.Settings,
		Config:   cfg,
	}, nil
}
