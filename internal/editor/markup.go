package editor

import "strings"

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeMarkup escapes markup-significant characters for presentation
// targets. The escaping is purely presentational: it never alters the
// document string or any offset computed against it.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// Markup renders the fragment as an HTML snippet, mirroring what a reader of
// the hybrid surface sees: hidden markers are dropped, visible markers are
// faded, and the remaining constructs carry their styles.
func (f Fragment) Markup() string {
	var b strings.Builder
	for i, line := range f.Lines {
		if i > 0 {
			b.WriteString("<br>\n")
		}
		for _, span := range line.Spans {
			writeSpanMarkup(&b, span)
		}
	}
	return b.String()
}

func writeSpanMarkup(b *strings.Builder, span Span) {
	if span.Hidden || span.Text == "" {
		return
	}

	text := EscapeMarkup(span.Text)
	if span.Marker {
		b.WriteString(`<span class="marker">`)
		b.WriteString(text)
		b.WriteString(`</span>`)
		return
	}

	switch span.Style {
	case StyleHeading:
		b.WriteString(`<span class="heading">`)
		b.WriteString(text)
		b.WriteString(`</span>`)
	case StyleBold:
		b.WriteString(`<strong>`)
		b.WriteString(text)
		b.WriteString(`</strong>`)
	case StyleCode:
		b.WriteString(`<code>`)
		b.WriteString(text)
		b.WriteString(`</code>`)
	default:
		b.WriteString(text)
	}
}
