package markup

import (
	"strings"
	"unicode/utf8"
)

const (
	lineCommentStart  = "//"
	blockCommentStart = "/*"
	blockCommentEnd   = "*/"
)

// Lexer scans markup source with a single forward cursor. Each rule consumes
// a deterministic span starting at the cursor; nothing is ever re-read.
type Lexer struct {
	input string
	pos   int // start of the next token
}

// NewLexer creates a new lexer for the input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Scan tokenizes text in one pass. The concatenation of the returned token
// texts always equals text.
func Scan(text string) []Token {
	l := NewLexer(text)
	var tokens []Token
	for {
		tok, ok := l.NextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// NextToken returns the token at the cursor and advances past it.
// ok is false once the input is exhausted.
func (l *Lexer) NextToken() (tok Token, ok bool) {
	if l.pos >= len(l.input) {
		return Token{}, false
	}

	start := l.pos
	rest := l.input[l.pos:]

	switch {
	case strings.HasPrefix(rest, lineCommentStart):
		tok.Kind = KindLineComment
		l.pos = l.lineEnd(start)
	case strings.HasPrefix(rest, blockCommentStart):
		tok.Kind = KindBlockComment
		l.pos = l.blockCommentEnd(start + len(blockCommentStart))
	case isTagStart(rest):
		tok.Kind = KindTag
		l.pos, tok.Strings = l.tagEnd(start)
	case rest[0] == '"' || rest[0] == '\'':
		tok.Kind = KindString
		l.pos = l.stringEnd(start)
	case rest[0] == '\n':
		tok.Kind = KindNewline
		l.pos++
	default:
		tok.Kind = KindPlain
		_, size := utf8.DecodeRuneInString(rest)
		l.pos += size
	}

	tok.Text = l.input[start:l.pos]
	return tok, true
}

// lineEnd returns the offset of the next newline at or after from, or the
// end of input.
func (l *Lexer) lineEnd(from int) int {
	if i := strings.IndexByte(l.input[from:], '\n'); i >= 0 {
		return from + i
	}
	return len(l.input)
}

// blockCommentEnd returns the offset just past the first "*/" at or after
// from. Unterminated comments run to the end of input.
func (l *Lexer) blockCommentEnd(from int) int {
	if i := strings.Index(l.input[from:], blockCommentEnd); i >= 0 {
		return from + i + len(blockCommentEnd)
	}
	return len(l.input)
}

// stringEnd returns the offset just past the quote that closes the string
// opening at from. A backslash escapes the byte that follows it.
func (l *Lexer) stringEnd(from int) int {
	quote := l.input[from]
	i := from + 1
	for i < len(l.input) {
		switch l.input[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		}
		i++
	}
	return len(l.input)
}

// tagEnd returns the offset just past the '>' that closes the tag opening at
// from, together with the quoted strings found on the way (relative to from).
// Quoted strings are skipped whole so a '>' inside an attribute value does not
// close the tag.
func (l *Lexer) tagEnd(from int) (int, []Span) {
	var strs []Span
	i := from + 1
	for i < len(l.input) {
		switch c := l.input[i]; c {
		case '\\':
			i += 2
			continue
		case '"', '\'':
			end := l.stringEnd(i)
			strs = append(strs, Span{Start: i - from, End: end - from})
			i = end
			continue
		case '>':
			return i + 1, strs
		}
		i++
	}
	return len(l.input), strs
}

// isTagStart reports whether s opens a tag: '<' followed by '/', '!' or an
// ASCII letter.
func isTagStart(s string) bool {
	if len(s) < 2 || s[0] != '<' {
		return false
	}
	c := s[1]
	return c == '/' || c == '!' || isLetter(c)
}

// isLetter returns true if c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
