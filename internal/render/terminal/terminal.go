// Package terminal renders highlighted lines as styled text for a terminal.
package terminal

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wrap"

	"github.com/zjrosen/codeblock/internal/markup"
	"github.com/zjrosen/codeblock/internal/ui/styles"
)

const (
	toolbarDot  = "●"
	copyLabel   = "⧉ copy"
	copiedLabel = "✓ copied"
	ellipsis    = "…"

	// frameWidth is the horizontal space taken by the border and its padding.
	frameWidth = 4
)

// Options controls how a block is drawn.
type Options struct {
	ShowLineNumbers bool

	// Language is shown in the toolbar badge. Empty hides the badge.
	Language string

	// Width is the total width including the frame. 0 = no limit.
	Width int

	// TabWidth expands tabs to the next multiple of this many columns. 0 = 4.
	TabWidth int

	// Copied swaps the copy button label for a confirmation.
	Copied bool

	// Wrap soft-wraps long lines instead of truncating them. Continuation
	// rows get a blank gutter.
	Wrap bool

	// Bare omits the toolbar and border.
	Bare bool
}

// Render draws lines as a framed block with a toolbar.
func Render(lines []markup.Line, opts Options) string {
	body := RenderBody(lines, opts)
	if opts.Bare {
		return body
	}

	inner := lipgloss.Width(body)
	if opts.Width > 0 {
		inner = max(inner, opts.Width-frameWidth)
	}
	toolbar := RenderToolbar(opts, inner)

	return styles.BlockBorderStyle.Render(toolbar + "\n" + body)
}

// RenderBody draws the code lines with an optional line-number gutter.
func RenderBody(lines []markup.Line, opts Options) string {
	gutterWidth := 0
	if opts.ShowLineNumbers && len(lines) > 0 {
		gutterWidth = runewidth.StringWidth(strconv.Itoa(lines[len(lines)-1].Number))
	}

	limit := 0
	if opts.Width > 0 {
		limit = opts.Width
		if !opts.Bare {
			limit -= frameWidth
		}
		limit = max(limit, 1)
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		gutter := ""
		if opts.ShowLineNumbers {
			gutter = Gutter(line.Number, gutterWidth)
		}
		code := RenderLine(line, opts.TabWidth)

		switch {
		case limit <= 0:
			out = append(out, gutter+code)
		case opts.Wrap:
			out = append(out, wrapLine(gutter, code, limit)...)
		default:
			out = append(out, ansi.Truncate(gutter+code, limit, ellipsis))
		}
	}
	return strings.Join(out, "\n")
}

// wrapLine splits code into rows that fit limit next to the gutter.
func wrapLine(gutter, code string, limit int) []string {
	gw := lipgloss.Width(gutter)
	avail := limit - gw
	if avail < 1 || lipgloss.Width(code) <= avail {
		return []string{ansi.Truncate(gutter+code, limit, ellipsis)}
	}

	rows := strings.Split(wrap.String(code, avail), "\n")
	blank := ""
	if gw > 0 {
		blank = strings.Repeat(" ", gw-3) + styles.GutterStyle.Render(" │ ")
	}
	for i := range rows {
		if i == 0 {
			rows[i] = gutter + rows[i]
			continue
		}
		rows[i] = blank + rows[i]
	}
	return rows
}

// Gutter returns the right-aligned line number and separator.
func Gutter(number, width int) string {
	n := runewidth.FillLeft(strconv.Itoa(number), width)
	return styles.LineNumberStyle.Render(n) + styles.GutterStyle.Render(" │ ")
}

// RenderLine styles each fragment of line by kind.
func RenderLine(line markup.Line, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = 4
	}

	var (
		sb  strings.Builder
		col int
	)
	write := func(kind markup.Kind, escaped string) {
		text := expandTabs(markup.Unescape(escaped), col, tabWidth)
		col += runewidth.StringWidth(text)
		if text == "" {
			return
		}
		sb.WriteString(StyleFor(kind).Render(text))
	}

	for _, f := range line.Fragments {
		if f.Kind == markup.KindTag && len(f.Parts) > 0 {
			for _, p := range f.Parts {
				write(p.Kind, p.Text)
			}
			continue
		}
		write(f.Kind, f.Text)
	}
	return sb.String()
}

// StyleFor returns the style for a token kind.
func StyleFor(kind markup.Kind) lipgloss.Style {
	switch kind {
	case markup.KindTag:
		return styles.CodeTagStyle
	case markup.KindString:
		return styles.CodeStringStyle
	case markup.KindLineComment:
		return styles.CodeLineCommentStyle
	case markup.KindBlockComment:
		return styles.CodeBlockCommentStyle
	default:
		return styles.CodePlainStyle
	}
}

// RenderToolbar draws the window dots, the language badge and the copy
// button, with the button pushed to the right edge of width.
func RenderToolbar(opts Options, width int) string {
	left, right := ToolbarParts(opts)
	return JoinToolbar(left, right, width)
}

// ToolbarParts returns the left group (dots and badge) and the copy button
// separately so callers can decorate the button.
func ToolbarParts(opts Options) (left, right string) {
	left = strings.Join([]string{
		styles.DotCloseStyle.Render(toolbarDot),
		styles.DotMinimizeStyle.Render(toolbarDot),
		styles.DotMaximizeStyle.Render(toolbarDot),
	}, " ")
	if opts.Language != "" {
		left += "  " + styles.BadgeStyle.Render(opts.Language)
	}
	return left, CopyButton(opts.Copied)
}

// JoinToolbar places right at the right edge of width, keeping at least one
// space between the groups.
func JoinToolbar(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// CopyButton returns the styled copy button label.
func CopyButton(copied bool) string {
	if copied {
		return styles.CopiedStyle.Render(copiedLabel)
	}
	return styles.CopyButtonStyle.Render(copyLabel)
}

// expandTabs replaces tabs with spaces up to the next tab stop, given the
// column the text starts at.
func expandTabs(s string, col, tabWidth int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}
