package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"fscmd/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// errOperationFailed signals a boolean-false operation result after the
// failure marker has already been printed; Execute maps it to exit 1.
//
//nolint:gochecknoglobals // Package-level sentinel for CLI exit handling
var errOperationFailed = errors.New("operation failed")

// ANSI escape sequences for result markers.
const (
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiBold   = "\033[1m"
	ansiReset  = "\033[0m"
)

// Output formats for listing commands.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// useColor decides whether to emit ANSI sequences, honoring the
// configured color mode and whether stdout is a terminal.
func useColor() bool {
	mode := config.ColorAuto
	if a := GetApp(); a != nil {
		mode = a.Settings.Color
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// colorize wraps s in the given ANSI sequence when color is enabled.
func colorize(code, s string) string {
	if !useColor() {
		return s
	}
	return code + s + ansiReset
}

// successf prints a green success marker with a one-line summary.
func successf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", colorize(ansiGreen, "✓"), fmt.Sprintf(format, args...))
}

// failf prints a red failure marker; callers then return
// errOperationFailed so the process exits non-zero.
func failf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", colorize(ansiRed, "✗"), fmt.Sprintf(format, args...))
}

// warnf prints a yellow informational line (dry-run notices, empty
// result sets).
func warnf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), colorize(ansiYellow, fmt.Sprintf(format, args...)))
}

// boldf prints a bold summary line.
func boldf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), colorize(ansiBold, fmt.Sprintf(format, args...)))
}

// validFormat checks a --format flag value.
func validFormat(format string) bool {
	switch format {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

// renderStructured encodes v as JSON or YAML to the command's stdout.
func renderStructured(cmd *cobra.Command, format string, v any) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	}
	return nil
}
