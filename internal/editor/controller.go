package editor

import (
	"regexp"
	"strconv"
	"strings"
)

// Notifier receives the current document after each mutating transition,
// typically to schedule a debounced autosave.
type Notifier interface {
	Notify(document string)
}

// Controller owns the authoritative in-memory document and drives the
// render/caret cycle: every input, caret move, Enter and blur recomputes the
// active line, regenerates the rendered fragment wholesale and re-homes the
// caret. Nothing in here can fail toward the host; out-of-range offsets are
// clamped and malformed markdown renders as literal text.
type Controller struct {
	renderer *Renderer

	document string
	active   int
	caret    int
	frag     Fragment

	// lastEmitted guards against the host echoing our own output back as an
	// external document swap, which would clobber in-flight edits. The guard
	// only arms once something has actually been emitted.
	lastEmitted string
	emitted     bool

	onChange      func(string)
	notifier      Notifier
	reactive      bool
	continueLists bool
}

func NewController() *Controller {
	c := &Controller{renderer: NewRenderer()}
	c.render()
	return c
}

func (c *Controller) SetOnChange(fn func(string)) { c.onChange = fn }
func (c *Controller) SetNotifier(n Notifier)      { c.notifier = n }

// SetReactive makes the controller fire onChange on every keystroke instead
// of only on blur.
func (c *Controller) SetReactive(v bool) { c.reactive = v }

// SetContinueLists enables list and blockquote prefix continuation on Enter.
func (c *Controller) SetContinueLists(v bool) { c.continueLists = v }

func (c *Controller) Document() string   { return c.document }
func (c *Controller) ActiveLine() int    { return c.active }
func (c *Controller) Caret() int         { return c.caret }
func (c *Controller) Fragment() Fragment { return c.frag }

// Load replaces the document unconditionally. Used for the initial string a
// host hands over when the controller is created.
func (c *Controller) Load(document string) {
	c.document = document
	c.active = 0
	c.render()
	c.caret = runeLen(document)
}

// Swap replaces the document with a new, unrelated one, e.g. when the host
// switches files. It is guarded: an incoming string equal to the last string
// this controller itself produced is a stale echo and is silently ignored.
// Reports whether the swap was applied.
func (c *Controller) Swap(document string) bool {
	if c.emitted && document == c.lastEmitted {
		return false
	}
	c.Load(document)
	return true
}

// Input applies a text-changing event: the host hands over the new surface
// text plus the caret offset it captured before touching anything. The
// controller recomputes the active line from the caret, re-renders and
// restores the caret to the captured offset.
func (c *Controller) Input(document string, caret int) {
	caret = clamp(caret, 0, runeLen(document))

	c.document = document
	c.active = LineIndexAtOffset(document, caret)
	c.render()
	c.caret = caret

	c.changed()
}

// MoveCaret applies a caret move without a text change. The active line is
// recomputed and, if it changed, the document is re-rendered to reveal and
// hide markers; the caret itself is not forced anywhere else, so the move
// never fights a click or arrow-key intent.
func (c *Controller) MoveCaret(offset int) {
	offset = clamp(offset, 0, runeLen(c.document))
	c.caret = offset

	if active := LineIndexAtOffset(c.document, offset); active != c.active {
		c.active = active
		c.render()
	}
}

// Enter splices a line break into the document at the caret. The break is
// fully owned here instead of being left to the presentation surface, which
// was found to corrupt marker spans straddling the break. With list
// continuation enabled, a list or quote prefix carries onto the new line and
// an empty item terminates the list instead.
func (c *Controller) Enter() {
	caret := clamp(c.caret, 0, runeLen(c.document))

	lines := SplitLines(c.document)
	lineIdx := LineIndexAtOffset(c.document, caret)
	line := lines[lineIdx]

	if c.continueLists {
		if prefix := continuationPrefix(line); prefix != "" {
			rest := line[len(linePrefix(line)):]
			if strings.TrimSpace(rest) == "" && caret == LineStartOffset(c.document, lineIdx)+runeLen(line) {
				// Empty item: drop the prefix and stay on this line.
				lines[lineIdx] = ""
				c.document = JoinLines(lines)
				c.caret = LineStartOffset(c.document, lineIdx)
				c.active = lineIdx
				c.render()
				c.changed()
				return
			}

			c.document = InsertRunes(c.document, caret, "\n"+prefix)
			c.caret = caret + 1 + runeLen(prefix)
			c.active = LineIndexAtOffset(c.document, c.caret)
			c.render()
			c.changed()
			return
		}
	}

	c.document = InsertRunes(c.document, caret, "\n")
	c.caret = caret + 1
	c.active = LineIndexAtOffset(c.document, c.caret)
	c.render()
	c.changed()
}

// Blur flushes the current document to the host and the autosave
// side-channel. No state transition occurs.
func (c *Controller) Blur() {
	c.emit()
	if c.notifier != nil {
		c.notifier.Notify(c.document)
	}
}

func (c *Controller) render() {
	c.frag = c.renderer.Render(c.document, c.active)
}

func (c *Controller) changed() {
	if c.notifier != nil {
		c.notifier.Notify(c.document)
	}
	if c.reactive {
		c.emit()
	}
}

func (c *Controller) emit() {
	c.lastEmitted = c.document
	c.emitted = true
	if c.onChange != nil {
		c.onChange(c.document)
	}
}

var orderedPrefixRe = regexp.MustCompile(`^([ \t]*)(\d+)\. `)

// linePrefix returns the literal list or quote prefix of a line, or "".
func linePrefix(line string) string {
	if m := bulletRe.FindString(line); m != "" {
		return m
	}
	return quoteRe.FindString(line)
}

// continuationPrefix returns the prefix the next line should start with.
// Ordered list markers increment; bullets and quotes repeat verbatim.
func continuationPrefix(line string) string {
	if m := orderedPrefixRe.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return m[0]
		}
		return m[1] + strconv.Itoa(n+1) + ". "
	}
	return linePrefix(line)
}
