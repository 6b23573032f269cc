package editor

// Point addresses a position inside the rendered tree: a leaf index in
// document order plus a rune offset within that leaf. A Point is only
// meaningful against the Fragment it was computed from; after any re-render
// it must be rebuilt from the flat offset.
type Point struct {
	Leaf   int
	Offset int
}

// Offset walks the leaves in document order, summing the rune length of
// every non-hidden leaf before the point, and returns the flat plain-text
// offset. Hidden marker leaves contribute nothing even though their text
// occupies characters in the document.
func (f Fragment) Offset(p Point) int {
	leaves := f.Leaves()
	if len(leaves) == 0 {
		return 0
	}
	if p.Leaf < 0 {
		return 0
	}
	if p.Leaf >= len(leaves) {
		p.Leaf = len(leaves) - 1
		p.Offset = runeLen(leaves[p.Leaf].Text)
	}

	sum := 0
	for i := 0; i < p.Leaf; i++ {
		if leaves[i].Hidden {
			continue
		}
		sum += runeLen(leaves[i].Text)
	}

	leaf := leaves[p.Leaf]
	if !leaf.Hidden {
		sum += clamp(p.Offset, 0, runeLen(leaf.Text))
	}
	return sum
}

// Point performs the inverse walk: consume non-hidden leaves until the
// accumulated length reaches the requested offset and place the point inside
// that leaf. A stale offset that outruns the leaves falls back to the end of
// the last visible leaf; this is recovery, not an error.
func (f Fragment) Point(offset int) Point {
	leaves := f.Leaves()
	if len(leaves) == 0 {
		return Point{}
	}
	if offset < 0 {
		offset = 0
	}

	acc := 0
	lastVisible := -1
	for i, leaf := range leaves {
		if leaf.Hidden {
			continue
		}
		n := runeLen(leaf.Text)
		if acc+n >= offset {
			return Point{Leaf: i, Offset: offset - acc}
		}
		acc += n
		lastVisible = i
	}

	if lastVisible < 0 {
		return Point{}
	}
	return Point{Leaf: lastVisible, Offset: runeLen(leaves[lastVisible].Text)}
}
