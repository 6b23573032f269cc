package editor

import (
	"strings"
	"unicode/utf8"
)

// SplitLines breaks a document into its logical lines. Empty lines are
// preserved and a trailing newline yields a trailing empty line, so
// JoinLines(SplitLines(s)) == s for every s.
func SplitLines(document string) []string {
	return strings.Split(document, "\n")
}

// JoinLines is the exact inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// InsertRunes splices text into document at a rune offset. Out-of-range
// offsets are clamped rather than rejected.
func InsertRunes(document string, offset int, text string) string {
	rs := []rune(document)
	offset = clamp(offset, 0, len(rs))

	var b strings.Builder
	b.Grow(len(document) + len(text))
	b.WriteString(string(rs[:offset]))
	b.WriteString(text)
	b.WriteString(string(rs[offset:]))
	return b.String()
}

// DeleteRuneBefore removes the rune preceding a rune offset and returns the
// new document along with the new caret offset.
func DeleteRuneBefore(document string, offset int) (string, int) {
	rs := []rune(document)
	offset = clamp(offset, 0, len(rs))
	if offset == 0 {
		return document, 0
	}
	return string(rs[:offset-1]) + string(rs[offset:]), offset - 1
}

// LineIndexAtOffset returns the index of the line whose span, including its
// trailing newline, contains the rune offset. Offsets past the end of the
// document resolve to the last line.
func LineIndexAtOffset(document string, offset int) int {
	if offset < 0 {
		offset = 0
	}

	lines := SplitLines(document)
	acc := 0
	for i, line := range lines {
		span := runeLen(line) + 1
		if offset < acc+span {
			return i
		}
		acc += span
	}
	return len(lines) - 1
}

// LineColForOffset resolves a rune offset into a (line, column) pair, both
// zero-based and counted in runes.
func LineColForOffset(document string, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}

	lines := SplitLines(document)
	acc := 0
	for i, line := range lines {
		n := runeLen(line)
		if offset <= acc+n {
			return i, offset - acc
		}
		acc += n + 1
	}

	last := len(lines) - 1
	return last, runeLen(lines[last])
}

// LineStartOffset returns the rune offset at which the given line begins.
func LineStartOffset(document string, index int) int {
	lines := SplitLines(document)
	if index < 0 {
		index = 0
	}
	if index >= len(lines) {
		index = len(lines) - 1
	}

	acc := 0
	for i := 0; i < index; i++ {
		acc += runeLen(lines[i]) + 1
	}
	return acc
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
