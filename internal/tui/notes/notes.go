package notes

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inklet/inklet/internal/constants"
	"github.com/inklet/inklet/internal/parser"
	"github.com/inklet/inklet/internal/state"
	editortui "github.com/inklet/inklet/internal/tui/editor"
)

type NoteListModel struct {
	list         list.Model
	keys         *listKeyMap
	delegateKeys *delegateKeyMap
	state        *state.State
	viewName     string
	editor       editortui.Model
	editing      bool
	showFullPath bool
	width        int
	height       int
}

func NewNoteListModel(s *state.State, viewName string) (*NoteListModel, error) {
	items, err := loadItems(s, viewName, false)
	if err != nil {
		return nil, err
	}

	dkeys := newDelegateKeyMap()
	lkeys := newListKeyMap()
	delegate := newItemDelegate(dkeys, s.Handler, viewName)

	l := list.New(items, delegate, 0, 0)
	l.Title = titleForView(viewName, s.WorkspaceName)
	l.Styles.Title = titleStyle

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			lkeys.openNote,
			lkeys.create,
			lkeys.switchToTrashView,
		}
	}

	return &NoteListModel{
		state:        s,
		list:         l,
		viewName:     viewName,
		keys:         lkeys,
		delegateKeys: dkeys,
	}, nil
}

func (m NoteListModel) Init() tea.Cmd {
	return nil
}

func (m NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEditor(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.openNote):
			return m.openSelectedNote()

		case key.Matches(msg, m.keys.create):
			if m.viewName == "default" {
				return m.createNote()
			}

		case key.Matches(msg, m.keys.toggleFullPath):
			m.showFullPath = !m.showFullPath
			if err := m.refresh(); err != nil {
				return m, m.list.NewStatusMessage(statusStyle("Failed to refresh list"))
			}
			return m, nil

		case key.Matches(msg, m.keys.switchToDefaultView):
			return m.switchView("default")

		case key.Matches(msg, m.keys.switchToTrashView):
			return m.switchView("trash")
		}
	}

	newList, cmd := m.list.Update(msg)
	m.list = newList
	return m, cmd
}

func (m NoteListModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
		// Abandon the session without saving the note. The pending
		// snapshot still flushes, so the draft stays recoverable.
		m.editor.Close()
		m.editing = false
		return m, nil
	}

	next, cmd := m.editor.Update(msg)
	m.editor = next.(editortui.Model)

	if m.editor.Done() {
		m.editing = false
		if err := m.refresh(); err != nil {
			return m, m.list.NewStatusMessage(statusStyle("Failed to refresh list"))
		}
		return m, nil
	}

	return m, cmd
}

func (m NoteListModel) openSelectedNote() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return m, nil
	}

	content, err := m.state.Handler.ReadNote(item.path)
	if err != nil {
		return m, m.list.NewStatusMessage(statusStyle("Failed to open " + item.fileName))
	}

	return m.openNote(item.path, item.fileName, content)
}

// createNote seeds a fresh timestamped note and opens it for editing.
func (m NoteListModel) createNote() (tea.Model, tea.Cmd) {
	name := "untitled-" + time.Now().Format("20060102-150405")
	content := "# " + name + "\n\n"

	path := m.state.Handler.NotePath(name)
	if err := m.state.Handler.CreateNote(path, content); err != nil {
		return m, m.list.NewStatusMessage(statusStyle("Failed to create note"))
	}
	if err := m.refresh(); err != nil {
		return m, m.list.NewStatusMessage(statusStyle("Failed to refresh list"))
	}

	return m.openNote(path, filepath.Base(path), content)
}

func (m NoteListModel) openNote(path, title, content string) (tea.Model, tea.Cmd) {
	rel, err := filepath.Rel(m.state.Vault, path)
	if err != nil {
		rel = title
	}

	sched := m.state.NewScheduler(rel)
	m.editor = editortui.NewModel(
		m.state.Handler,
		sched,
		m.state.Workspace,
		path,
		title,
		content,
	)
	m.editing = true

	cmd := m.editor.Init()
	if m.width > 0 {
		next, _ := m.editor.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.editor = next.(editortui.Model)
	}
	return m, cmd
}

func (m NoteListModel) switchView(viewName string) (tea.Model, tea.Cmd) {
	m.viewName = viewName
	m.list.Title = titleForView(viewName, m.state.WorkspaceName)
	m.list.SetDelegate(newItemDelegate(m.delegateKeys, m.state.Handler, viewName))
	if err := m.refresh(); err != nil {
		return m, m.list.NewStatusMessage(statusStyle("Failed to load " + viewName + " view"))
	}
	return m, nil
}

func (m *NoteListModel) refresh() error {
	items, err := loadItems(m.state, m.viewName, m.showFullPath)
	if err != nil {
		return err
	}
	m.list.SetItems(items)
	return nil
}

func (m NoteListModel) View() string {
	if m.editing {
		return m.editor.View()
	}
	return appStyle.Render(m.list.View())
}

func titleForView(viewName, workspace string) string {
	switch viewName {
	case "trash":
		return "Trash - " + workspace
	default:
		return "Notes - " + workspace
	}
}

// loadItems walks the view's directory and builds list items from each
// note's parsed metadata.
func loadItems(s *state.State, viewName string, showFullPath bool) ([]list.Item, error) {
	var (
		files []string
		err   error
		root  string
	)

	switch viewName {
	case "trash":
		root = filepath.Join(s.Vault, constants.TrashDir)
		if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
			return nil, nil
		}
		files, err = s.Handler.WalkFiles(nil, nil)
		if err == nil {
			files = filterByPrefix(files, root)
		}
	default:
		root = s.Vault
		files, err = s.Handler.WalkFiles([]string{constants.TrashDir}, nil)
	}
	if err != nil {
		return nil, err
	}

	var items []list.Item
	for _, file := range files {
		meta, err := parser.ParseFile(file)
		if err != nil {
			log.Printf("Skipping unreadable note %s: %v", file, err)
			continue
		}

		sub := ""
		if rel, relErr := filepath.Rel(root, filepath.Dir(file)); relErr == nil && rel != "." {
			sub = rel
		}

		items = append(items, ListItem{
			fileName:     filepath.Base(file),
			path:         file,
			title:        meta.Title,
			subdirectory: sub,
			openTasks:    meta.OpenTasks,
			doneTasks:    meta.DoneTasks,
			showFullPath: showFullPath,
		})
	}

	return items, nil
}

func filterByPrefix(files []string, prefix string) []string {
	var out []string
	for _, f := range files {
		if strings.HasPrefix(f, prefix+string(filepath.Separator)) {
			out = append(out, f)
		}
	}
	return out
}

func Run(s *state.State, viewFlag string) error {
	m, err := NewNoteListModel(s, viewFlag)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	return nil
}
