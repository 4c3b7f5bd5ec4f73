// Package config provides configuration types and defaults for codeblock.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/codeblock/internal/flags"
	"github.com/zjrosen/codeblock/internal/log"
	"github.com/zjrosen/codeblock/internal/tracing"
)

// Config holds all configuration options for codeblock.
type Config struct {
	ShowLineNumbers bool           `mapstructure:"show_line_numbers"`
	Language        string         `mapstructure:"language"`  // badge label when --lang is not given
	TabWidth        int            `mapstructure:"tab_width"` // display width of a tab in the terminal renderer
	Cache           CacheConfig    `mapstructure:"cache"`
	Watch           WatchConfig    `mapstructure:"watch"`
	Theme           ThemeConfig    `mapstructure:"theme"`
	Tracing         tracing.Config `mapstructure:"tracing"`
	Flags           map[string]bool `mapstructure:"flags"`
}

// CacheConfig controls memoization of highlight results.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// WatchConfig controls the viewer's file watcher.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     code:
	//       tag: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "code.tag": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/codeblock/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "codeblock", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tc := tracing.DefaultConfig()
	tc.FilePath = DefaultTracesFilePath()

	return Config{
		ShowLineNumbers: true,
		Language:        "",
		TabWidth:        4,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
		Theme: ThemeConfig{
			Preset: "",
		},
		Tracing: tc,
		Flags:   flags.Defaults(),
	}
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width must be between 1 and 16, got %d", c.TabWidth)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return ValidateTracing(c.Tracing)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing tracing.Config) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# codeblock configuration

# Show the line number gutter
show_line_numbers: true

# Language label shown in the toolbar badge (display only)
# language: html

# Width of a tab character in the terminal renderer
tab_width: 4

# Memoize highlight results by source content
cache:
  enabled: true
  ttl: 10m

# File watching for 'codeblock view --watch'
watch:
  debounce: 100ms

# Theme configuration
theme:
  # Use a preset (run 'codeblock theme' to list them):
  # preset: dracula
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   code.tag: "#FF79C6"
  #   code.string: "#F1FA8C"
  #   gutter.line_number: "#6272A4"

# Distributed tracing of the highlight pipeline
tracing:
  enabled: false
  exporter: file          # none, file, stdout, otlp
  # file_path: ~/.config/codeblock/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0

# Feature flags
flags:
  viewer-mouse: true      # click the copy button in 'codeblock view'
  osc52-clipboard: true   # copy through the terminal when no system clipboard exists
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
