package markup

// Result is the output of Highlight.
type Result struct {
	// Source is the dedented text. It is what a copy action must yield.
	Source string
	Tokens []Token
	Lines  []Line
}

// Highlight runs the full pipeline: dedent, scan, then split into lines.
func Highlight(source string) Result {
	text := Dedent(source)
	tokens := Scan(text)
	return Result{
		Source: text,
		Tokens: tokens,
		Lines:  SplitLines(tokens),
	}
}

// Reconstruct unescapes every fragment and joins the lines with newlines.
// For any Result produced by Highlight it returns Result.Source.
func Reconstruct(lines []Line) string {
	n := 0
	for _, l := range lines {
		for _, f := range l.Fragments {
			n += len(f.Text)
		}
		n++
	}
	buf := make([]byte, 0, n)
	for i, l := range lines {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, l.Raw()...)
	}
	return string(buf)
}
