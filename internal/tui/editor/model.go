package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/inklet/inklet/internal/autosave"
	"github.com/inklet/inklet/internal/config"
	ed "github.com/inklet/inklet/internal/editor"
	"github.com/inklet/inklet/internal/handler"
)

type statusMsg autosave.Status

// Model is the terminal editing surface for a single note. It owns an
// engine controller for the hybrid markdown rendering and caret handling,
// and feeds document changes into the autosave scheduler.
type Model struct {
	keys    *editorKeyMap
	ctrl    *ed.Controller
	sched   *autosave.Scheduler
	handler *handler.FileHandler

	path  string
	title string
	theme string

	statusCh chan autosave.Status
	status   autosave.Status

	width  int
	height int

	previewing bool
	preview    string

	recovered bool
	done      bool
	err       error
}

func NewModel(
	h *handler.FileHandler,
	sched *autosave.Scheduler,
	ws *config.Workspace,
	path string,
	title string,
	content string,
) Model {
	ctrl := ed.NewController()
	ctrl.SetReactive(ws.Editor.ReactiveChange)
	ctrl.SetContinueLists(ws.Editor.ContinueLists)
	if ws.Autosave.Enable {
		ctrl.SetNotifier(sched)
	}

	recovered := false
	if ws.Autosave.Recover {
		if doc, adopted := sched.Recover(content); adopted {
			content = doc
			recovered = true
		}
	}

	ctrl.Load(content)
	// Reveal the line the caret landed on.
	ctrl.MoveCaret(ctrl.Caret())

	statusCh := make(chan autosave.Status, 8)
	sched.SetOnStatus(func(st autosave.Status) {
		select {
		case statusCh <- st:
		default:
		}
	})

	return Model{
		keys:      newEditorKeyMap(),
		ctrl:      ctrl,
		sched:     sched,
		handler:   h,
		path:      path,
		title:     title,
		theme:     ws.Editor.Theme,
		statusCh:  statusCh,
		recovered: recovered,
		width:     80,
		height:    24,
	}
}

// Done reports whether the session ended through save-and-exit, for hosts
// embedding the editor inside a larger program.
func (m Model) Done() bool { return m.done }

// Document returns the current markdown source.
func (m Model) Document() string { return m.ctrl.Document() }

// Close releases the session's autosave scheduler, flushing any pending
// snapshot. The note file itself is not written.
func (m Model) Close() { m.sched.Close() }

func (m Model) Init() tea.Cmd {
	return m.waitStatus()
}

func (m Model) waitStatus() tea.Cmd {
	ch := m.statusCh
	return func() tea.Msg {
		return statusMsg(<-ch)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusMsg:
		m.status = autosave.Status(msg)
		return m, m.waitStatus()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.sched.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.exit):
			m.ctrl.Blur()
			m.save()
			m.sched.Close()
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.save):
			m.save()
			m.sched.Flush()
			return m, nil

		case key.Matches(msg, m.keys.togglePreview):
			m.previewing = !m.previewing
			if m.previewing {
				m.preview = renderPreview(m.ctrl.Document(), m.theme, m.width)
			}
			return m, nil

		case key.Matches(msg, m.keys.reload):
			content, err := m.handler.ReadNote(m.path)
			if err != nil {
				m.err = err
				return m, nil
			}
			if m.ctrl.Swap(content) {
				m.ctrl.MoveCaret(m.ctrl.Caret())
			}
			return m, nil
		}

		if m.previewing {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEnter:
			m.ctrl.Enter()
		case tea.KeyBackspace:
			doc, caret := ed.DeleteRuneBefore(m.ctrl.Document(), m.ctrl.Caret())
			m.ctrl.Input(doc, caret)
		case tea.KeyLeft:
			m.ctrl.MoveCaret(m.ctrl.Caret() - 1)
		case tea.KeyRight:
			m.ctrl.MoveCaret(m.ctrl.Caret() + 1)
		case tea.KeyUp:
			m.moveVertical(-1)
		case tea.KeyDown:
			m.moveVertical(1)
		case tea.KeyHome:
			m.ctrl.MoveCaret(ed.LineStartOffset(m.ctrl.Document(), m.ctrl.ActiveLine()))
		case tea.KeyEnd:
			doc := m.ctrl.Document()
			line := ed.SplitLines(doc)[m.ctrl.ActiveLine()]
			start := ed.LineStartOffset(doc, m.ctrl.ActiveLine())
			m.ctrl.MoveCaret(start + utf8.RuneCountInString(line))
		case tea.KeySpace:
			m.insert(" ")
		case tea.KeyTab:
			m.insert("\t")
		case tea.KeyRunes:
			m.insert(string(msg.Runes))
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) insert(text string) {
	doc := ed.InsertRunes(m.ctrl.Document(), m.ctrl.Caret(), text)
	m.ctrl.Input(doc, m.ctrl.Caret()+utf8.RuneCountInString(text))
}

func (m *Model) moveVertical(delta int) {
	doc := m.ctrl.Document()
	line, col := ed.LineColForOffset(doc, m.ctrl.Caret())
	lines := ed.SplitLines(doc)

	target := line + delta
	if target < 0 || target >= len(lines) {
		return
	}

	start := ed.LineStartOffset(doc, target)
	width := utf8.RuneCountInString(lines[target])
	if col > width {
		col = width
	}
	m.ctrl.MoveCaret(start + col)
}

func (m *Model) save() {
	if err := m.handler.WriteNote(m.path, m.ctrl.Document()); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Editing %s", m.title)))
	b.WriteString("\n\n")

	if m.previewing {
		b.WriteString(m.preview)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("(ctrl+p to return to editing)"))
		return appStyle.Render(b.String())
	}

	frag := m.ctrl.Fragment()
	active := m.ctrl.ActiveLine()
	_, col := ed.LineColForOffset(m.ctrl.Document(), m.ctrl.Caret())

	top, bottom := m.visibleWindow(len(frag.Lines))
	for i := top; i < bottom; i++ {
		b.WriteString(renderLine(frag.Lines[i], i == active, col))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("(esc save+exit · ctrl+s save · ctrl+p preview · ctrl+r reload)"))

	return appStyle.Render(b.String())
}

// visibleWindow centers the active line in the viewport when the document
// overflows it. The window is a pure function of the active line, so no
// scroll offset is carried between renders.
func (m Model) visibleWindow(lineCount int) (int, int) {
	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}
	if lineCount <= rows {
		return 0, lineCount
	}

	top := m.ctrl.ActiveLine() - rows/2
	if top+rows > lineCount {
		top = lineCount - rows
	}
	if top < 0 {
		top = 0
	}
	return top, top + rows
}

func (m Model) statusLine() string {
	parts := []string{statusStyle.Render("autosave: " + m.status.String())}
	if m.recovered {
		parts = append(parts, statusStyle.Render("recovered from snapshot"))
	}
	if m.err != nil {
		parts = append(parts, statusStyle.Render(fmt.Sprintf("error: %v", m.err)))
	}
	return strings.Join(parts, "  ")
}

// renderLine turns one rendered line into styled terminal output. On the
// active line the caret column is drawn with the cursor style.
func renderLine(line ed.LineFragment, active bool, caretCol int) string {
	var b strings.Builder
	runeIdx := 0
	drew := false

	for _, span := range line.Spans {
		if span.Hidden {
			continue
		}

		style := spanStyle(span)
		if !active {
			b.WriteString(style.Render(span.Text))
			continue
		}

		rs := []rune(span.Text)
		n := len(rs)
		if caretCol >= runeIdx && caretCol < runeIdx+n {
			at := caretCol - runeIdx
			if at > 0 {
				b.WriteString(style.Render(string(rs[:at])))
			}
			b.WriteString(cursorStyle.Render(string(rs[at])))
			if at+1 < n {
				b.WriteString(style.Render(string(rs[at+1:])))
			}
			drew = true
		} else {
			b.WriteString(style.Render(span.Text))
		}
		runeIdx += n
	}

	if active && !drew {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

func renderPreview(document, theme string, width int) string {
	if width <= 0 || width > 100 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "Error rendering markdown"
	}
	out, err := r.Render(document)
	if err != nil {
		return "Error rendering markdown"
	}
	return out
}
