package markup

import "strings"

// Part is a piece of a tag fragment. Kind is KindTag or KindString.
type Part struct {
	Kind Kind
	Text string // escaped
}

// Fragment is the portion of one token that falls on one physical line.
type Fragment struct {
	Kind Kind
	Text string // escaped, never contains a newline

	// Parts partitions a tag fragment into tag text and the attribute
	// strings it owns, in order. Only set for KindTag; the part texts
	// concatenate to Text.
	Parts []Part
}

// Raw returns the unescaped fragment text.
func (f Fragment) Raw() string {
	return Unescape(f.Text)
}

// Line is one physical line of output.
type Line struct {
	Number    int // 1-based
	Fragments []Fragment
}

// Raw returns the unescaped text of the line.
func (l Line) Raw() string {
	var sb strings.Builder
	for _, f := range l.Fragments {
		sb.WriteString(f.Raw())
	}
	return sb.String()
}

// SplitLines folds a token stream into line records. A token containing
// newlines yields one fragment of its own kind on every line it touches, so
// multi-line comments, strings and tags keep their classification. The
// number of lines is always the number of newlines plus one.
func SplitLines(tokens []Token) []Line {
	s := &splitter{}
	for _, tok := range tokens {
		switch tok.Kind {
		case KindNewline:
			s.breakLine()
		case KindTag:
			s.addTag(tok)
		default:
			s.add(tok.Kind, tok.Text)
		}
	}
	s.breakLine()
	return s.lines
}

type splitter struct {
	lines []Line
	cur   []Fragment
}

// breakLine closes the current line and opens the next one.
func (s *splitter) breakLine() {
	s.lines = append(s.lines, Line{Number: len(s.lines) + 1, Fragments: s.cur})
	s.cur = nil
}

// add emits raw as fragments of kind, breaking lines on embedded newlines.
func (s *splitter) add(kind Kind, raw string) {
	for i, piece := range strings.Split(raw, "\n") {
		if i > 0 {
			s.breakLine()
		}
		s.cur = append(s.cur, Fragment{Kind: kind, Text: Escape(piece)})
	}
}

// addTag emits a tag token. Each line the tag touches gets one tag fragment
// whose parts carry the nested attribute strings.
func (s *splitter) addTag(tok Token) {
	frag := Fragment{Kind: KindTag}
	flush := func() {
		var sb strings.Builder
		for _, p := range frag.Parts {
			sb.WriteString(p.Text)
		}
		frag.Text = sb.String()
		s.cur = append(s.cur, frag)
		frag = Fragment{Kind: KindTag}
	}

	for _, seg := range tagSegments(tok) {
		for i, piece := range strings.Split(seg.text, "\n") {
			if i > 0 {
				flush()
				s.breakLine()
			}
			if piece != "" {
				frag.Parts = append(frag.Parts, Part{Kind: seg.kind, Text: Escape(piece)})
			}
		}
	}
	flush()
}

type segment struct {
	kind Kind
	text string
}

// tagSegments cuts a tag token into alternating tag and string segments.
func tagSegments(tok Token) []segment {
	segs := make([]segment, 0, 2*len(tok.Strings)+1)
	last := 0
	for _, sp := range tok.Strings {
		if sp.Start > last {
			segs = append(segs, segment{kind: KindTag, text: tok.Text[last:sp.Start]})
		}
		segs = append(segs, segment{kind: KindString, text: tok.Text[sp.Start:sp.End]})
		last = sp.End
	}
	if last < len(tok.Text) {
		segs = append(segs, segment{kind: KindTag, text: tok.Text[last:]})
	}
	return segs
}
