// Package config holds the user-tunable defaults for fscmd, loaded from
// the config file and FSCMD_* environment variables via viper.
package config

import (
	"github.com/spf13/viper"
)

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Defaults applied when the config file does not set a key.
const (
	DefaultTreeDepth     = 3
	DefaultSearchInclude = "*.txt"
)

// Settings represents the resolved tool configuration.
type Settings struct {
	// TreeDepth is the default maximum depth for the tree command.
	TreeDepth int `yaml:"tree_depth"`
	// SearchInclude is the default include glob for the search command.
	SearchInclude string `yaml:"search_include"`
	// Color controls ANSI output: auto, always or never.
	Color string `yaml:"color"`
	// LogLevel is the slog level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// validColorModes contains all supported color modes.
//
//nolint:gochecknoglobals // Package-level constants for color validation
var validColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// IsValidColorMode checks if the provided color mode is supported.
func IsValidColorMode(mode string) bool {
	for _, valid := range validColorModes {
		if valid == mode {
			return true
		}
	}
	return false
}

// SetDefaults registers the fallback values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tree_depth", DefaultTreeDepth)
	v.SetDefault("search_include", DefaultSearchInclude)
	v.SetDefault("color", ColorAuto)
	v.SetDefault("log_level", "info")
}

// FromViper resolves Settings from a viper instance, repairing invalid
// values instead of failing: configuration problems must never block a
// plain file operation.
func FromViper(v *viper.Viper) Settings {
	s := Settings{
		TreeDepth:     v.GetInt("tree_depth"),
		SearchInclude: v.GetString("search_include"),
		Color:         v.GetString("color"),
		LogLevel:      v.GetString("log_level"),
	}

	if s.TreeDepth < 1 {
		s.TreeDepth = DefaultTreeDepth
	}
	if s.SearchInclude == "" {
		s.SearchInclude = DefaultSearchInclude
	}
	if !IsValidColorMode(s.Color) {
		s.Color = ColorAuto
	}

	return s
}
