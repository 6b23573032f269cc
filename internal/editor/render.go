package editor

import "regexp"

var (
	headingRe = regexp.MustCompile(`^(#{1,6})[ \t]`)
	bulletRe  = regexp.MustCompile(`^[ \t]*(?:[-*+]|\d+\.) `)
	quoteRe   = regexp.MustCompile(`^(?:> )+`)
)

const renderCacheSize = 512

// Renderer turns lines of markdown into styled span sequences. Only the
// active line reveals its raw syntax markers; on every other line heading
// markers become hidden zero-width spans and bold/code delimiters are not
// materialized at all. Malformed constructs are left as literal text.
type Renderer struct {
	memo *lruCache
}

func NewRenderer() *Renderer {
	return &Renderer{memo: newLRUCache(renderCacheSize)}
}

// Render recomputes the presentation of the whole document. activeLine is
// clamped into the current line range.
func (r *Renderer) Render(document string, activeLine int) Fragment {
	lines := SplitLines(document)
	activeLine = clamp(activeLine, 0, len(lines)-1)

	frag := Fragment{Lines: make([]LineFragment, len(lines))}
	for i, line := range lines {
		frag.Lines[i] = LineFragment{Spans: r.RenderLine(line, i == activeLine)}
	}
	return frag
}

// RenderInactive renders every line as inactive, for exports and previews
// that have no caret.
func (r *Renderer) RenderInactive(document string) Fragment {
	lines := SplitLines(document)
	frag := Fragment{Lines: make([]LineFragment, len(lines))}
	for i, line := range lines {
		frag.Lines[i] = LineFragment{Spans: r.RenderLine(line, false)}
	}
	return frag
}

// RenderLine renders a single line. Results are memoized on (line, active);
// callers must treat the returned spans as read-only.
func (r *Renderer) RenderLine(line string, active bool) []Span {
	key := renderKey{line: line, active: active}
	if spans, ok := r.memo.Get(key); ok {
		return spans
	}

	spans := renderLine(line, active)
	r.memo.Put(key, spans)
	return spans
}

func renderLine(line string, active bool) []Span {
	if m := headingRe.FindString(line); m != "" {
		level := len(m) - 1
		spans := []Span{{
			Text:   m,
			Hidden: !active,
			Marker: true,
			Style:  StyleHeading,
			Level:  level,
		}}
		return append(spans, renderInline(line[len(m):], active, StyleHeading, level)...)
	}

	if m := bulletRe.FindString(line); m != "" {
		spans := []Span{{Text: m, Marker: true, Style: StyleBullet}}
		return append(spans, renderInline(line[len(m):], active, StyleText, 0)...)
	}

	if m := quoteRe.FindString(line); m != "" {
		spans := []Span{{Text: m, Marker: true, Style: StyleQuote}}
		return append(spans, renderInline(line[len(m):], active, StyleQuote, 0)...)
	}

	return renderInline(line, active, StyleText, 0)
}

// renderInline recognizes **bold** and `code` pairs. Active lines keep the
// delimiters as faded marker spans; inactive lines drop them from the tree
// entirely, leaving the caret translator unaware of their document width.
// Unterminated delimiters fall through into the surrounding literal text.
func renderInline(text string, active bool, base SpanStyle, level int) []Span {
	rs := []rune(text)
	var out []Span

	start := 0
	flush := func(end int) {
		if end > start {
			out = append(out, Span{Text: string(rs[start:end]), Style: base, Level: level})
		}
	}

	i := 0
	for i < len(rs) {
		switch {
		case rs[i] == '`':
			close := findRune(rs, i+1, '`')
			if close > i+1 {
				flush(i)
				if active {
					out = append(out, Span{Text: "`", Marker: true, Style: StyleCode})
				}
				out = append(out, Span{Text: string(rs[i+1 : close]), Style: StyleCode, Level: level})
				if active {
					out = append(out, Span{Text: "`", Marker: true, Style: StyleCode})
				}
				i = close + 1
				start = i
				continue
			}
			i++

		case rs[i] == '*' && i+1 < len(rs) && rs[i+1] == '*':
			close := findDoubleStar(rs, i+2)
			if close > i+2 {
				flush(i)
				if active {
					out = append(out, Span{Text: "**", Marker: true, Style: StyleBold})
				}
				out = append(out, Span{Text: string(rs[i+2 : close]), Style: StyleBold, Level: level})
				if active {
					out = append(out, Span{Text: "**", Marker: true, Style: StyleBold})
				}
				i = close + 2
				start = i
				continue
			}
			i += 2

		default:
			i++
		}
	}
	flush(len(rs))

	return out
}

func findRune(rs []rune, from int, want rune) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == want {
			return i
		}
	}
	return -1
}

func findDoubleStar(rs []rune, from int) int {
	for i := from; i+1 < len(rs); i++ {
		if rs[i] == '*' && rs[i+1] == '*' {
			return i
		}
	}
	return -1
}
