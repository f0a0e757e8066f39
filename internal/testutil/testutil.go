// Package testutil provides test utilities with pre-injected dependencies.
package testutil

import (
	"log/slog"

	"fscmd/internal/logging"
)

// Logger returns a silent logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}
