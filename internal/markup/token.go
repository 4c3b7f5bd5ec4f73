// Package markup tokenizes hybrid template markup and folds the token stream
// into line records for line-numbered display.
//
// The package is pure: every exported function is deterministic and safe for
// concurrent use.
package markup

// Kind is the structural category of a token or fragment.
type Kind int

const (
	KindPlain Kind = iota
	KindNewline
	KindLineComment  // // to end of line
	KindBlockComment // /* ... */
	KindTag          // <name ...>, </name>, <!...>
	KindString       // "..." or '...'
)

// String returns the string representation of the kind.
// The names double as CSS class suffixes and theme keys.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindNewline:
		return "newline"
	case KindLineComment:
		return "line-comment"
	case KindBlockComment:
		return "block-comment"
	case KindTag:
		return "tag"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range.
type Span struct {
	Start int
	End   int
}

// Token is a classified slice of the dedented source.
type Token struct {
	Kind Kind
	Text string

	// Strings holds the quoted attribute strings owned by a tag, as byte
	// ranges relative to Text. Only set for KindTag.
	Strings []Span
}

// Join concatenates the text of every token.
func Join(tokens []Token) string {
	n := 0
	for _, tok := range tokens {
		n += len(tok.Text)
	}
	buf := make([]byte, 0, n)
	for _, tok := range tokens {
		buf = append(buf, tok.Text...)
	}
	return string(buf)
}
