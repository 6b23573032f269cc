package editor

import "strings"

type SpanStyle int

const (
	StyleText SpanStyle = iota
	StyleHeading
	StyleBold
	StyleCode
	StyleBullet
	StyleQuote
)

// Span is one styled run of a rendered line. Hidden spans carry markdown
// syntax markers that are suppressed on inactive lines: they keep their text
// so the document can be reconstructed, but they occupy no width as far as
// caret translation is concerned. Marker spans are syntax markers that stay
// visible (faded) on the active line.
type Span struct {
	Text   string
	Hidden bool
	Marker bool
	Style  SpanStyle
	Level  int
}

// LineFragment is the rendered form of one logical line.
type LineFragment struct {
	Spans []Span
}

// Fragment is the rendered form of a whole document: one LineFragment per
// logical line, joined by newline leaves. It is recomputed wholesale on every
// state-changing event and never patched incrementally.
type Fragment struct {
	Lines []LineFragment
}

// Leaf is a text-bearing node in the flattened rendered tree, the unit the
// caret translator walks over.
type Leaf struct {
	Text   string
	Hidden bool
}

// Leaves flattens the fragment into document order: the spans of each line
// followed by an unhidden newline leaf between consecutive lines.
func (f Fragment) Leaves() []Leaf {
	var leaves []Leaf
	for i, line := range f.Lines {
		if i > 0 {
			leaves = append(leaves, Leaf{Text: "\n"})
		}
		for _, span := range line.Spans {
			if span.Text == "" {
				continue
			}
			leaves = append(leaves, Leaf{Text: span.Text, Hidden: span.Hidden})
		}
	}
	return leaves
}

// VisibleLen counts the runes a reader actually sees: every leaf except the
// hidden markers.
func (f Fragment) VisibleLen() int {
	n := 0
	for _, leaf := range f.Leaves() {
		if leaf.Hidden {
			continue
		}
		n += runeLen(leaf.Text)
	}
	return n
}

// VisibleText concatenates the non-hidden leaves.
func (f Fragment) VisibleText() string {
	var b strings.Builder
	for _, leaf := range f.Leaves() {
		if leaf.Hidden {
			continue
		}
		b.WriteString(leaf.Text)
	}
	return b.String()
}
