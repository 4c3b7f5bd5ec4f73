// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

// PresetNames returns the built-in preset names, sorted.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

func applyColors(colors map[ColorToken]string) {
	// A configured hex is used for both light and dark terminals.
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenCodePlain:          &CodePlainColor,
		TokenCodeTag:            &CodeTagColor,
		TokenCodeString:         &CodeStringColor,
		TokenCodeLineComment:    &CodeLineCommentColor,
		TokenCodeBlockComment:   &CodeBlockCommentColor,
		TokenGutterLineNumber:   &GutterLineNumberColor,
		TokenGutterSeparator:    &GutterSeparatorColor,
		TokenToolbarDotClose:    &ToolbarDotCloseColor,
		TokenToolbarDotMinimize: &ToolbarDotMinimizeColor,
		TokenToolbarDotMaximize: &ToolbarDotMaximizeColor,
		TokenToolbarBadge:       &ToolbarBadgeColor,
		TokenToolbarButton:      &ToolbarButtonColor,
		TokenBorderDefault:      &BorderDefaultColor,
		TokenStatusSuccess:      &StatusSuccessColor,
		TokenStatusError:        &StatusErrorColor,
		TokenTextMuted:          &TextMutedColor,
	}
	for token, target := range targets {
		if c, ok := colors[token]; ok {
			*target = makeColor(c)
		}
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
