// Package html renders highlighted lines as an HTML code block with a copy
// button. Fragment text from the engine is already escaped and is written
// as-is; only attribute values are escaped here.
package html

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/zjrosen/codeblock/internal/markup"
	"github.com/zjrosen/codeblock/internal/ui/styles"
)

// Options controls the generated markup.
type Options struct {
	ShowLineNumbers bool
	Language        string

	// ID is the figure element id. Empty generates a random one.
	ID string
}

// Render returns a <figure class="codeblock"> element for lines.
func Render(lines []markup.Line, opts Options) string {
	id := opts.ID
	if id == "" {
		id = "codeblock-" + uuid.NewString()
	}
	id = html.EscapeString(id)
	srcID := id + "-source"

	var sb strings.Builder

	sb.WriteString(`<figure class="codeblock" id="` + id + `"`)
	if opts.Language != "" {
		sb.WriteString(` data-language="` + html.EscapeString(opts.Language) + `"`)
	}
	sb.WriteString(">\n")

	sb.WriteString(`<div class="codeblock-toolbar">`)
	sb.WriteString(`<span class="dot dot-close"></span><span class="dot dot-minimize"></span><span class="dot dot-maximize"></span>`)
	if opts.Language != "" {
		sb.WriteString(`<span class="badge">` + html.EscapeString(opts.Language) + `</span>`)
	}
	sb.WriteString(`<button type="button" class="copy" data-copy-target="` + srcID + `">Copy</button>`)
	sb.WriteString("</div>\n")

	sb.WriteString("<pre><code>")
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeLine(&sb, line, opts.ShowLineNumbers)
	}
	sb.WriteString("</code></pre>\n")

	sb.WriteString(`<textarea id="` + srcID + `" class="codeblock-source" hidden readonly>`)
	sb.WriteString(EscapedSource(lines))
	sb.WriteString("</textarea>\n")

	sb.WriteString("</figure>\n")
	return sb.String()
}

func writeLine(sb *strings.Builder, line markup.Line, showLineNumbers bool) {
	sb.WriteString(`<span class="line">`)
	if showLineNumbers {
		sb.WriteString(`<span class="ln">` + strconv.Itoa(line.Number) + `</span>`)
	}
	for _, f := range coalesce(line.Fragments) {
		sb.WriteString(`<span class="` + TokenClass(f.Kind) + `">`)
		if f.Kind == markup.KindTag && len(f.Parts) > 0 {
			for _, p := range f.Parts {
				if p.Kind == markup.KindString {
					sb.WriteString(`<span class="` + TokenClass(p.Kind) + `">` + p.Text + `</span>`)
					continue
				}
				sb.WriteString(p.Text)
			}
		} else {
			sb.WriteString(f.Text)
		}
		sb.WriteString("</span>")
	}
	sb.WriteString("</span>")
}

// coalesce merges adjacent fragments of the same kind, except tags, and
// drops empty ones. Scanning emits plain text one character at a time.
func coalesce(frags []markup.Fragment) []markup.Fragment {
	out := make([]markup.Fragment, 0, len(frags))
	for _, f := range frags {
		if f.Text == "" {
			continue
		}
		if n := len(out); n > 0 && f.Kind != markup.KindTag && out[n-1].Kind == f.Kind {
			out[n-1].Text += f.Text
			continue
		}
		out = append(out, f)
	}
	return out
}

// TokenClass returns the CSS class for a kind.
func TokenClass(kind markup.Kind) string {
	return "tok-" + kind.String()
}

// carriageReturns encodes CR as a character reference. HTML parsing turns a
// literal CR or CRLF into LF, a reference is decoded after that step.
var carriageReturns = strings.NewReplacer("\r", "&#13;")

// EscapedSource joins the escaped fragment text of every line. Browsers
// decode it back to the exact source when reading the textarea's value.
func EscapedSource(lines []markup.Line) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, f := range line.Fragments {
			carriageReturns.WriteString(&sb, f.Text)
		}
	}
	return sb.String()
}

// Stylesheet returns CSS for the current theme colors.
func Stylesheet(dark bool) string {
	pick := func(c lipgloss.AdaptiveColor) string {
		if dark {
			return c.Dark
		}
		return c.Light
	}

	rules := []struct {
		selector string
		decl     string
	}{
		{".codeblock", "border: 1px solid " + pick(styles.BorderDefaultColor) + "; border-radius: 8px; margin: 0; overflow: hidden"},
		{".codeblock-toolbar", "display: flex; align-items: center; gap: 6px; padding: 6px 10px"},
		{".codeblock .dot", "width: 10px; height: 10px; border-radius: 50%; display: inline-block"},
		{".codeblock .dot-close", "background: " + pick(styles.ToolbarDotCloseColor)},
		{".codeblock .dot-minimize", "background: " + pick(styles.ToolbarDotMinimizeColor)},
		{".codeblock .dot-maximize", "background: " + pick(styles.ToolbarDotMaximizeColor)},
		{".codeblock .badge", "color: " + pick(styles.ToolbarBadgeColor) + "; font-weight: bold; margin-left: 8px"},
		{".codeblock .copy", "color: " + pick(styles.ToolbarButtonColor) + "; margin-left: auto; background: none; border: none; cursor: pointer"},
		{".codeblock pre", "margin: 0; padding: 8px 12px; overflow-x: auto"},
		{".codeblock .line", "display: block"},
		{".codeblock .ln", "color: " + pick(styles.GutterLineNumberColor) + "; display: inline-block; min-width: 2em; margin-right: 1em; text-align: right; user-select: none"},
		{"." + TokenClass(markup.KindPlain), "color: " + pick(styles.CodePlainColor)},
		{"." + TokenClass(markup.KindTag), "color: " + pick(styles.CodeTagColor)},
		{"." + TokenClass(markup.KindString), "color: " + pick(styles.CodeStringColor)},
		{"." + TokenClass(markup.KindLineComment), "color: " + pick(styles.CodeLineCommentColor) + "; font-style: italic"},
		{"." + TokenClass(markup.KindBlockComment), "color: " + pick(styles.CodeBlockCommentColor) + "; font-style: italic"},
	}

	var sb strings.Builder
	for _, r := range rules {
		fmt.Fprintf(&sb, "%s { %s; }\n", r.selector, r.decl)
	}
	return sb.String()
}

// CopyScript is the inline script that wires every copy button to the
// clipboard API.
const CopyScript = `document.querySelectorAll(".codeblock .copy").forEach(function (btn) {
  btn.addEventListener("click", function () {
    var src = document.getElementById(btn.dataset.copyTarget);
    navigator.clipboard.writeText(src.value).then(function () {
      btn.textContent = "Copied";
      setTimeout(function () { btn.textContent = "Copy"; }, 1500);
    });
  });
});`

// Page wraps a rendered block in a standalone HTML document.
func Page(title, block string, dark bool) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	sb.WriteString("<style>\n" + Stylesheet(dark) + "</style>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(block)
	sb.WriteString("<script>\n" + CopyScript + "\n</script>\n")
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}
