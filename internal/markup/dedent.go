package markup

import "strings"

// Dedent strips leading and trailing blank lines and removes the indentation
// shared by every non-blank line. Indentation is a run of spaces and tabs
// counted in characters, so mixed indentation is not normalized.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	first, last := 0, len(lines)-1
	for first <= last && isBlank(lines[first]) {
		first++
	}
	for last >= first && isBlank(lines[last]) {
		last--
	}
	if first > last {
		return ""
	}
	lines = lines[first : last+1]

	indent := -1
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		if n := leadingWhitespace(line); indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		lines[i] = line[min(indent, len(line)):]
	}
	return strings.Join(lines, "\n")
}

// isBlank reports whether a line holds only spaces, tabs or carriage returns.
func isBlank(line string) bool {
	return strings.TrimLeft(line, " \t\r") == ""
}

func leadingWhitespace(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}
