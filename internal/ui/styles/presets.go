// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// windowDots are shared by every preset.
var windowDots = map[ColorToken]string{
	TokenToolbarDotClose:    "#FF5F56",
	TokenToolbarDotMinimize: "#FFBD2E",
	TokenToolbarDotMaximize: "#27C93F",
}

func withDots(colors map[ColorToken]string) map[ColorToken]string {
	for k, v := range windowDots {
		if _, ok := colors[k]; !ok {
			colors[k] = v
		}
	}
	return colors
}

// DefaultPreset is the built-in scheme, matching the Dark values in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default codeblock theme",
	Colors: withDots(map[ColorToken]string{
		TokenCodePlain:        "#CDD6F4",
		TokenCodeTag:          "#89B4FA",
		TokenCodeString:       "#A6E3A1",
		TokenCodeLineComment:  "#7F849C",
		TokenCodeBlockComment: "#7F849C",

		TokenGutterLineNumber: "#6C7086",
		TokenGutterSeparator:  "#313244",

		TokenToolbarBadge:  "#CBA6F7",
		TokenToolbarButton: "#BAC2DE",

		TokenBorderDefault: "#696969",
		TokenStatusSuccess: "#73F59F",
		TokenStatusError:   "#FF8787",
		TokenTextMuted:     "#696969",
	}),
}

// CatppuccinMochaPreset is the dark Catppuccin flavor.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - dark",
	Colors: withDots(map[ColorToken]string{
		TokenCodePlain:        "#CDD6F4",
		TokenCodeTag:          "#F38BA8",
		TokenCodeString:       "#A6E3A1",
		TokenCodeLineComment:  "#6C7086",
		TokenCodeBlockComment: "#6C7086",

		TokenGutterLineNumber: "#585B70",
		TokenGutterSeparator:  "#313244",

		TokenToolbarBadge:  "#CBA6F7",
		TokenToolbarButton: "#BAC2DE",

		TokenBorderDefault: "#45475A",
		TokenStatusSuccess: "#A6E3A1",
		TokenStatusError:   "#F38BA8",
		TokenTextMuted:     "#6C7086",
	}),
}

// CatppuccinLattePreset is the light Catppuccin flavor.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - light",
	Colors: withDots(map[ColorToken]string{
		TokenCodePlain:        "#4C4F69",
		TokenCodeTag:          "#D20F39",
		TokenCodeString:       "#40A02B",
		TokenCodeLineComment:  "#9CA0B0",
		TokenCodeBlockComment: "#9CA0B0",

		TokenGutterLineNumber: "#ACB0BE",
		TokenGutterSeparator:  "#CCD0DA",

		TokenToolbarBadge:  "#8839EF",
		TokenToolbarButton: "#5C5F77",

		TokenBorderDefault: "#BCC0CC",
		TokenStatusSuccess: "#40A02B",
		TokenStatusError:   "#D20F39",
		TokenTextMuted:     "#9CA0B0",
	}),
}

// DraculaPreset is the Dracula theme.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark purple",
	Colors: withDots(map[ColorToken]string{
		TokenCodePlain:        "#F8F8F2",
		TokenCodeTag:          "#FF79C6",
		TokenCodeString:       "#F1FA8C",
		TokenCodeLineComment:  "#6272A4",
		TokenCodeBlockComment: "#6272A4",

		TokenGutterLineNumber: "#6272A4",
		TokenGutterSeparator:  "#44475A",

		TokenToolbarBadge:  "#BD93F9",
		TokenToolbarButton: "#F8F8F2",

		TokenBorderDefault: "#44475A",
		TokenStatusSuccess: "#50FA7B",
		TokenStatusError:   "#FF5555",
		TokenTextMuted:     "#6272A4",
	}),
}

// NordPreset is the Nord theme.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic blue",
	Colors: withDots(map[ColorToken]string{
		TokenCodePlain:        "#D8DEE9",
		TokenCodeTag:          "#81A1C1",
		TokenCodeString:       "#A3BE8C",
		TokenCodeLineComment:  "#616E88",
		TokenCodeBlockComment: "#616E88",

		TokenGutterLineNumber: "#4C566A",
		TokenGutterSeparator:  "#3B4252",

		TokenToolbarBadge:  "#B48EAD",
		TokenToolbarButton: "#E5E9F0",

		TokenBorderDefault: "#4C566A",
		TokenStatusSuccess: "#A3BE8C",
		TokenStatusError:   "#BF616A",
		TokenTextMuted:     "#616E88",
	}),
}

// HighContrastPreset maximizes legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: withDots(map[ColorToken]string{
		TokenCodePlain:        "#FFFFFF",
		TokenCodeTag:          "#00FFFF",
		TokenCodeString:       "#FFFF00",
		TokenCodeLineComment:  "#00FF00",
		TokenCodeBlockComment: "#00FF00",

		TokenGutterLineNumber: "#FFFFFF",
		TokenGutterSeparator:  "#FFFFFF",

		TokenToolbarBadge:  "#FF00FF",
		TokenToolbarButton: "#FFFFFF",

		TokenBorderDefault: "#FFFFFF",
		TokenStatusSuccess: "#00FF00",
		TokenStatusError:   "#FF0000",
		TokenTextMuted:     "#C0C0C0",
	}),
}
