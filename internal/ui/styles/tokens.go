// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Code kinds
	TokenCodePlain        ColorToken = "code.plain"
	TokenCodeTag          ColorToken = "code.tag"
	TokenCodeString       ColorToken = "code.string"
	TokenCodeLineComment  ColorToken = "code.comment.line"
	TokenCodeBlockComment ColorToken = "code.comment.block"

	// Gutter
	TokenGutterLineNumber ColorToken = "gutter.line_number"
	TokenGutterSeparator  ColorToken = "gutter.separator"

	// Toolbar
	TokenToolbarDotClose    ColorToken = "toolbar.dot.close"
	TokenToolbarDotMinimize ColorToken = "toolbar.dot.minimize"
	TokenToolbarDotMaximize ColorToken = "toolbar.dot.maximize"
	TokenToolbarBadge       ColorToken = "toolbar.badge"
	TokenToolbarButton      ColorToken = "toolbar.button"

	// Chrome
	TokenBorderDefault ColorToken = "border.default"
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusError   ColorToken = "status.error"
	TokenTextMuted     ColorToken = "text.muted"
)

// AllTokens returns every valid color token.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenCodePlain,
		TokenCodeTag,
		TokenCodeString,
		TokenCodeLineComment,
		TokenCodeBlockComment,

		TokenGutterLineNumber,
		TokenGutterSeparator,

		TokenToolbarDotClose,
		TokenToolbarDotMinimize,
		TokenToolbarDotMaximize,
		TokenToolbarBadge,
		TokenToolbarButton,

		TokenBorderDefault,
		TokenStatusSuccess,
		TokenStatusError,
		TokenTextMuted,
	}
}
