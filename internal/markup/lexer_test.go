package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func plain(s string) Token { return Token{Kind: KindPlain, Text: s} }

var newline = Token{Kind: KindNewline, Text: "\n"}

func TestLexer_BasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "plain characters are single tokens",
			input: "ab",
			expected: []Token{
				plain("a"),
				plain("b"),
			},
		},
		{
			name:  "line comment stops before newline",
			input: "// note\nx",
			expected: []Token{
				{Kind: KindLineComment, Text: "// note"},
				newline,
				plain("x"),
			},
		},
		{
			name:  "line comment at end of input",
			input: "x // tail",
			expected: []Token{
				plain("x"),
				plain(" "),
				{Kind: KindLineComment, Text: "// tail"},
			},
		},
		{
			name:  "block comment",
			input: "/* a */b",
			expected: []Token{
				{Kind: KindBlockComment, Text: "/* a */"},
				plain("b"),
			},
		},
		{
			name:  "block comment spans lines",
			input: "/* line1\nline2 */",
			expected: []Token{
				{Kind: KindBlockComment, Text: "/* line1\nline2 */"},
			},
		},
		{
			name:  "unterminated block comment runs to end",
			input: "/* never closed",
			expected: []Token{
				{Kind: KindBlockComment, Text: "/* never closed"},
			},
		},
		{
			name:  "block comment end is not reused as opener",
			input: "/*/ x */",
			expected: []Token{
				{Kind: KindBlockComment, Text: "/*/ x */"},
			},
		},
		{
			name:  "double quoted string with escaped quote",
			input: `"a\"b" c`,
			expected: []Token{
				{Kind: KindString, Text: `"a\"b"`},
				plain(" "),
				plain("c"),
			},
		},
		{
			name:  "single quoted string",
			input: `'x'`,
			expected: []Token{
				{Kind: KindString, Text: `'x'`},
			},
		},
		{
			name:  "other quote does not close string",
			input: `"it's"`,
			expected: []Token{
				{Kind: KindString, Text: `"it's"`},
			},
		},
		{
			name:  "unterminated string runs to end",
			input: "'open\nstill",
			expected: []Token{
				{Kind: KindString, Text: "'open\nstill"},
			},
		},
		{
			name:  "trailing backslash in string",
			input: `"a\`,
			expected: []Token{
				{Kind: KindString, Text: `"a\`},
			},
		},
		{
			name:  "closing tag",
			input: "</div>",
			expected: []Token{
				{Kind: KindTag, Text: "</div>"},
			},
		},
		{
			name:  "declaration tag",
			input: "<!doctype html>",
			expected: []Token{
				{Kind: KindTag, Text: "<!doctype html>"},
			},
		},
		{
			name:  "less-than without tag name is plain",
			input: "a < b",
			expected: []Token{
				plain("a"),
				plain(" "),
				plain("<"),
				plain(" "),
				plain("b"),
			},
		},
		{
			name:  "unterminated tag runs to end",
			input: "<div class=x",
			expected: []Token{
				{Kind: KindTag, Text: "<div class=x"},
			},
		},
		{
			name:  "tag spans lines",
			input: "<div\n  id=a>",
			expected: []Token{
				{Kind: KindTag, Text: "<div\n  id=a>"},
			},
		},
		{
			name:  "escaped angle bracket inside tag",
			input: `<a \>b>`,
			expected: []Token{
				{Kind: KindTag, Text: `<a \>b>`},
			},
		},
		{
			name:  "comment markers inside tag are tag text",
			input: "<a href=//x>",
			expected: []Token{
				{Kind: KindTag, Text: "<a href=//x>"},
			},
		},
		{
			name:  "multi-byte characters stay whole",
			input: "é→",
			expected: []Token{
				plain("é"),
				plain("→"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Scan(tt.input))
		})
	}
}

func TestLexer_TagContainsQuotedAngleBracket(t *testing.T) {
	tokens := Scan(`<span class="a>b">x</span>`)

	require.Equal(t, []Token{
		{Kind: KindTag, Text: `<span class="a>b">`, Strings: []Span{{Start: 12, End: 17}}},
		plain("x"),
		{Kind: KindTag, Text: "</span>"},
	}, tokens)

	tag := tokens[0]
	require.Equal(t, `"a>b"`, tag.Text[tag.Strings[0].Start:tag.Strings[0].End])
}

func TestLexer_TagStrings(t *testing.T) {
	tokens := Scan(`<input value='it\'s' title="a` + "\n" + `b">`)

	require.Len(t, tokens, 1)
	tag := tokens[0]
	require.Equal(t, KindTag, tag.Kind)
	require.Len(t, tag.Strings, 2)

	var got []string
	for _, sp := range tag.Strings {
		got = append(got, tag.Text[sp.Start:sp.End])
	}
	require.Equal(t, []string{`'it\'s'`, "\"a\nb\""}, got)
}

func TestLexer_UnterminatedStringInTag(t *testing.T) {
	input := `<a title="oops>` + "\nrest"
	tokens := Scan(input)

	require.Len(t, tokens, 1)
	require.Equal(t, KindTag, tokens[0].Kind)
	require.Equal(t, input, tokens[0].Text)
	require.Equal(t, []Span{{Start: 9, End: len(input)}}, tokens[0].Strings)
}

func TestLexer_NextTokenExhausted(t *testing.T) {
	l := NewLexer("a")

	tok, ok := l.NextToken()
	require.True(t, ok)
	require.Equal(t, plain("a"), tok)

	_, ok = l.NextToken()
	require.False(t, ok)
	_, ok = l.NextToken()
	require.False(t, ok, "exhausted lexer should stay exhausted")
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "plain", KindPlain.String())
	require.Equal(t, "newline", KindNewline.String())
	require.Equal(t, "line-comment", KindLineComment.String())
	require.Equal(t, "block-comment", KindBlockComment.String())
	require.Equal(t, "tag", KindTag.String())
	require.Equal(t, "string", KindString.String())
	require.Equal(t, "unknown", Kind(99).String())
}

// markupRunes biases generated input toward the characters the scanner
// branches on.
var markupRunes = []rune("<>/!*\"'\\\n \tab=é")

func TestProperty_ScanLossless(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.StringOfN(rapid.RuneFrom(markupRunes), 0, 80, -1).Draw(rt, "input")

		tokens := Scan(input)
		require.Equal(rt, input, Join(tokens), "token concatenation should equal input")
		for _, tok := range tokens {
			require.NotEmpty(rt, tok.Text, "tokens should never be empty")
			if tok.Kind == KindNewline {
				require.Equal(rt, "\n", tok.Text)
			}
			if tok.Kind == KindLineComment {
				require.NotContains(rt, tok.Text, "\n")
			}
		}
	})
}

func TestProperty_TagStringSpansInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.StringOfN(rapid.RuneFrom(markupRunes), 0, 80, -1).Draw(rt, "input")

		for _, tok := range Scan(input) {
			if tok.Kind != KindTag {
				require.Empty(rt, tok.Strings)
				continue
			}
			last := 0
			for _, sp := range tok.Strings {
				require.GreaterOrEqual(rt, sp.Start, last, "spans should be ordered")
				require.Less(rt, sp.Start, sp.End)
				require.LessOrEqual(rt, sp.End, len(tok.Text))
				last = sp.End
			}
		}
	})
}
