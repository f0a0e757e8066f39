package app

import (
	"context"
	"log/slog"

	"fscmd/internal/config"
	"fscmd/internal/domain"
)

// App contains all application dependencies.
type App struct {
	// Core services behind domain interfaces.
	FileOps domain.FileOperator
	DirOps  domain.DirOperator
	Search  domain.Searcher

	// Logging
	Logger *slog.Logger

	// Resolved tool settings (config file + env).
	Settings config.Settings

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel slog.Level
	Verbose  bool
	Settings config.Settings
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level slog.Level) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
	}
}

// WithSettings supplies the resolved tool settings.
func WithSettings(settings config.Settings) Option {
	return func(cfg *Config) {
		cfg.Settings = settings
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel: slog.LevelInfo,
		Verbose:  false,
		Settings: config.Settings{
			TreeDepth:     config.DefaultTreeDepth,
			SearchInclude: config.DefaultSearchInclude,
			Color:         config.ColorAuto,
		},
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
