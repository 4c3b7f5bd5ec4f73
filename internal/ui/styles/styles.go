// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Code colors (Catppuccin Mocha by default)
	CodePlainColor        = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"} // text
	CodeTagColor          = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	CodeStringColor       = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"} // green
	CodeLineCommentColor  = lipgloss.AdaptiveColor{Light: "#8C8FA1", Dark: "#7F849C"} // overlay1
	CodeBlockCommentColor = lipgloss.AdaptiveColor{Light: "#8C8FA1", Dark: "#7F849C"} // overlay1

	// Gutter
	GutterLineNumberColor = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"}
	GutterSeparatorColor  = lipgloss.AdaptiveColor{Light: "#CCD0DA", Dark: "#313244"}

	// Toolbar dots follow the familiar window controls
	ToolbarDotCloseColor    = lipgloss.AdaptiveColor{Light: "#FF5F56", Dark: "#FF5F56"}
	ToolbarDotMinimizeColor = lipgloss.AdaptiveColor{Light: "#FFBD2E", Dark: "#FFBD2E"}
	ToolbarDotMaximizeColor = lipgloss.AdaptiveColor{Light: "#27C93F", Dark: "#27C93F"}
	ToolbarBadgeColor       = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	ToolbarButtonColor      = lipgloss.AdaptiveColor{Light: "#5C5F77", Dark: "#BAC2DE"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"}
)

// Styles built from the colors above. Rebuilt by ApplyTheme.
var (
	CodePlainStyle        lipgloss.Style
	CodeTagStyle          lipgloss.Style
	CodeStringStyle       lipgloss.Style
	CodeLineCommentStyle  lipgloss.Style
	CodeBlockCommentStyle lipgloss.Style

	LineNumberStyle  lipgloss.Style
	GutterStyle      lipgloss.Style
	DotCloseStyle    lipgloss.Style
	DotMinimizeStyle lipgloss.Style
	DotMaximizeStyle lipgloss.Style
	BadgeStyle       lipgloss.Style
	CopyButtonStyle  lipgloss.Style
	CopiedStyle      lipgloss.Style
	ErrorStyle       lipgloss.Style
	MutedStyle       lipgloss.Style
	BlockBorderStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	CodePlainStyle = lipgloss.NewStyle().Foreground(CodePlainColor)
	CodeTagStyle = lipgloss.NewStyle().Foreground(CodeTagColor)
	CodeStringStyle = lipgloss.NewStyle().Foreground(CodeStringColor)
	CodeLineCommentStyle = lipgloss.NewStyle().Foreground(CodeLineCommentColor).Italic(true)
	CodeBlockCommentStyle = lipgloss.NewStyle().Foreground(CodeBlockCommentColor).Italic(true)

	LineNumberStyle = lipgloss.NewStyle().Foreground(GutterLineNumberColor)
	GutterStyle = lipgloss.NewStyle().Foreground(GutterSeparatorColor)

	DotCloseStyle = lipgloss.NewStyle().Foreground(ToolbarDotCloseColor)
	DotMinimizeStyle = lipgloss.NewStyle().Foreground(ToolbarDotMinimizeColor)
	DotMaximizeStyle = lipgloss.NewStyle().Foreground(ToolbarDotMaximizeColor)
	BadgeStyle = lipgloss.NewStyle().Foreground(ToolbarBadgeColor).Bold(true)
	CopyButtonStyle = lipgloss.NewStyle().Foreground(ToolbarButtonColor)
	CopiedStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	BlockBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderDefaultColor).
		Padding(0, 1)
}
