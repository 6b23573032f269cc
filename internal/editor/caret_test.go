package editor

import "testing"

func TestOffsetStabilityPlainDocument(t *testing.T) {
	r := NewRenderer()
	doc := "alpha\nbeta\n\ngamma"

	for active := 0; active < 4; active++ {
		frag := r.Render(doc, active)
		for o := 0; o <= runeLen(doc); o++ {
			if got := frag.Offset(frag.Point(o)); got != o {
				t.Fatalf("active %d: offset %d round-tripped to %d", active, o, got)
			}
		}
	}
}

func TestOffsetStabilityActiveLine(t *testing.T) {
	// The caret lives on the active line, where every marker is visible, so
	// offsets there must round-trip exactly even with constructs present.
	r := NewRenderer()
	doc := "# Title with **bold** and `code`"

	frag := r.Render(doc, 0)
	for o := 0; o <= runeLen(doc); o++ {
		if got := frag.Offset(frag.Point(o)); got != o {
			t.Fatalf("offset %d round-tripped to %d", o, got)
		}
	}
}

func TestHiddenHeadingMarkerSkippedByWalk(t *testing.T) {
	r := NewRenderer()
	frag := r.Render("# A\nB", 1)

	// Offset 0 must land in the heading content, never inside the hidden
	// marker leaf.
	p := frag.Point(0)
	leaves := frag.Leaves()
	if leaves[p.Leaf].Hidden {
		t.Fatalf("point for offset 0 landed in a hidden leaf: %#v", p)
	}
	if leaves[p.Leaf].Text != "A" || p.Offset != 0 {
		t.Fatalf("unexpected point for offset 0: leaf %q offset %d", leaves[p.Leaf].Text, p.Offset)
	}
}

func TestStaleOffsetFallsBackToLastLeaf(t *testing.T) {
	r := NewRenderer()
	frag := r.Render("# A\nB", 1)

	// Visible surface is "A\nB" (3 runes): the hidden heading marker is not
	// counted, so a document-length offset outruns the walk and clamps.
	p := frag.Point(99)
	if got := frag.Offset(p); got != 3 {
		t.Fatalf("stale offset should clamp to visible end 3, got %d", got)
	}
}

func TestOffsetClampsOutOfRangePoints(t *testing.T) {
	r := NewRenderer()
	frag := r.Render("ab", 0)

	if got := frag.Offset(Point{Leaf: -1, Offset: 5}); got != 0 {
		t.Fatalf("negative leaf should clamp to 0, got %d", got)
	}
	if got := frag.Offset(Point{Leaf: 99, Offset: 99}); got != 2 {
		t.Fatalf("overlarge leaf should clamp to end, got %d", got)
	}
	if got := frag.Offset(Point{Leaf: 0, Offset: 99}); got != 2 {
		t.Fatalf("overlarge in-leaf offset should clamp, got %d", got)
	}
}

func TestPointOnEmptyFragment(t *testing.T) {
	var frag Fragment
	if p := frag.Point(5); p != (Point{}) {
		t.Fatalf("empty fragment should yield the zero point, got %#v", p)
	}
	if got := frag.Offset(Point{Leaf: 3, Offset: 1}); got != 0 {
		t.Fatalf("empty fragment offset should be 0, got %d", got)
	}
}

func TestVisibleLenMatchesHiddenMarkerInvariant(t *testing.T) {
	r := NewRenderer()

	inactive := Fragment{Lines: []LineFragment{{Spans: r.RenderLine("# Heading", false)}}}
	if got := inactive.VisibleLen(); got != len("Heading") {
		t.Fatalf("inactive visible length: got %d, want %d", got, len("Heading"))
	}

	active := Fragment{Lines: []LineFragment{{Spans: r.RenderLine("# Heading", true)}}}
	if got := active.VisibleLen(); got != len("# Heading") {
		t.Fatalf("active visible length: got %d, want %d", got, len("# Heading"))
	}
}
