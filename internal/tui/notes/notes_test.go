package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inklet/inklet/internal/autosave"
	"github.com/inklet/inklet/internal/config"
	"github.com/inklet/inklet/internal/handler"
	"github.com/inklet/inklet/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()

	vaultDir := t.TempDir()
	store, err := autosave.NewFileStore(filepath.Join(t.TempDir(), "autosave"))
	if err != nil {
		t.Fatalf("failed to create snapshot store: %v", err)
	}

	ws := &config.Workspace{
		VaultDir: vaultDir,
		Editor:   config.EditorConfig{Theme: "dark"},
	}

	return &state.State{
		Workspace:     ws,
		WorkspaceName: "test",
		Handler:       handler.NewFileHandler(vaultDir),
		Snapshots:     store,
		Vault:         vaultDir,
	}
}

func seedNote(t *testing.T, s *state.State, name, content string) string {
	t.Helper()
	path := filepath.Join(s.Vault, name)
	if err := s.Handler.WriteNote(path, content); err != nil {
		t.Fatalf("failed to seed note %s: %v", name, err)
	}
	return path
}

func TestLoadItemsBuildsMetadata(t *testing.T) {
	s := newTestState(t)
	seedNote(t, s, "alpha.md", "# Alpha\n\n- [ ] task\n")
	seedNote(t, s, filepath.Join("project", "beta.md"), "# Beta\n")
	seedNote(t, s, filepath.Join("trash", "old.md"), "# Old\n")

	items, err := loadItems(s, "default", false)
	if err != nil {
		t.Fatalf("loadItems returned error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	byTitle := map[string]ListItem{}
	for _, item := range items {
		li := item.(ListItem)
		byTitle[li.title] = li
	}

	alpha, ok := byTitle["Alpha"]
	if !ok {
		t.Fatalf("missing Alpha item: %v", byTitle)
	}
	if alpha.openTasks != 1 {
		t.Fatalf("unexpected open tasks: %d", alpha.openTasks)
	}

	beta, ok := byTitle["Beta"]
	if !ok {
		t.Fatalf("missing Beta item: %v", byTitle)
	}
	if beta.subdirectory != "project" {
		t.Fatalf("unexpected subdirectory: %q", beta.subdirectory)
	}
}

func TestLoadItemsTrashView(t *testing.T) {
	s := newTestState(t)
	seedNote(t, s, "keep.md", "# Keep\n")
	seedNote(t, s, filepath.Join("trash", "old.md"), "# Old\n")

	items, err := loadItems(s, "trash", false)
	if err != nil {
		t.Fatalf("loadItems returned error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if got := items[0].(ListItem).title; got != "Old" {
		t.Fatalf("unexpected item: %q", got)
	}
}

func TestLoadItemsTrashViewWithoutTrashDir(t *testing.T) {
	s := newTestState(t)
	seedNote(t, s, "keep.md", "# Keep\n")

	items, err := loadItems(s, "trash", false)
	if err != nil {
		t.Fatalf("loadItems returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty trash, got %d items", len(items))
	}
}

func TestOpenNoteEntersEditingSession(t *testing.T) {
	s := newTestState(t)
	seedNote(t, s, "alpha.md", "# Alpha\ncontent")

	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := next.(NoteListModel)

	if !model.editing {
		t.Fatalf("expected editing session after enter")
	}
	if got := model.editor.Document(); got != "# Alpha\ncontent" {
		t.Fatalf("unexpected editor document: %q", got)
	}
}

func TestEditorExitReturnsToListAndSaves(t *testing.T) {
	s := newTestState(t)
	path := seedNote(t, s, "alpha.md", "draft")

	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := next.(NoteListModel)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}})
	model = next.(NoteListModel)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = next.(NoteListModel)

	if model.editing {
		t.Fatalf("expected editing session to end")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved note: %v", err)
	}
	if string(content) != "draft!" {
		t.Fatalf("unexpected saved content: %q", content)
	}
}

func TestCtrlCAbandonsEditingSession(t *testing.T) {
	s := newTestState(t)
	path := seedNote(t, s, "alpha.md", "draft")

	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := next.(NoteListModel)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}})
	model = next.(NoteListModel)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model = next.(NoteListModel)

	if model.editing {
		t.Fatalf("expected editing session to end")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read note: %v", err)
	}
	if string(content) != "draft" {
		t.Fatalf("abandoned session must not save, got %q", content)
	}
}

func TestCreateKeySeedsAndOpensNote(t *testing.T) {
	s := newTestState(t)
	seedNote(t, s, "alpha.md", "# Alpha\n")

	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'C'}})
	model := next.(NoteListModel)

	if !model.editing {
		t.Fatalf("expected editing session after create")
	}
	if got := len(model.list.Items()); got != 2 {
		t.Fatalf("expected 2 items after create, got %d", got)
	}

	doc := model.editor.Document()
	if !strings.HasPrefix(doc, "# untitled-") {
		t.Fatalf("unexpected seeded document: %q", doc)
	}
}

func TestCreateKeyIgnoredInTrashView(t *testing.T) {
	s := newTestState(t)
	seedNote(t, s, filepath.Join("trash", "old.md"), "# Old\n")

	m, err := NewNoteListModel(s, "trash")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'C'}})
	model := next.(NoteListModel)

	if model.editing {
		t.Fatalf("create must not start a session in the trash view")
	}
}

func TestSwitchViewLoadsTrash(t *testing.T) {
	s := newTestState(t)
	seedNote(t, s, "keep.md", "# Keep\n")
	seedNote(t, s, filepath.Join("trash", "old.md"), "# Old\n")

	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	model := next.(NoteListModel)

	if model.viewName != "trash" {
		t.Fatalf("unexpected view: %q", model.viewName)
	}
	if got := len(model.list.Items()); got != 1 {
		t.Fatalf("expected 1 trash item, got %d", got)
	}
}

func TestRemoveItemByPath(t *testing.T) {
	s := newTestState(t)
	seedNote(t, s, "alpha.md", "# Alpha\n")
	seedNote(t, s, "beta.md", "# Beta\n")

	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	target := filepath.Join(s.Vault, "alpha.md")
	removeItemByPath(&m.list, target)

	for _, item := range m.list.Items() {
		if item.(ListItem).path == target {
			t.Fatalf("item was not removed")
		}
	}
	if got := len(m.list.Items()); got != 1 {
		t.Fatalf("expected 1 remaining item, got %d", got)
	}
}
