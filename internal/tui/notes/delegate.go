package notes

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inklet/inklet/internal/handler"
)

func newItemDelegate(
	keys *delegateKeyMap,
	h *handler.FileHandler,
	view string,
) list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		var (
			n string
			p string
		)

		if i, ok := m.SelectedItem().(ListItem); ok {
			n = i.fileName
			p = i.path
		} else {
			return nil
		}

		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.trash):
				if view != "default" {
					return nil
				}
				if err := h.Trash(p); err != nil {
					return m.NewStatusMessage(statusStyle("Failed to move " + n + " to trash"))
				}
				removeItemByPath(m, p)
				return m.NewStatusMessage(statusStyle("Moved " + n + " to trash"))

			case key.Matches(msg, keys.undo):
				if view != "trash" {
					return nil
				}
				if err := h.Untrash(p); err != nil {
					return m.NewStatusMessage(statusStyle("Failed to restore " + n))
				}
				removeItemByPath(m, p)
				return m.NewStatusMessage(statusStyle("Restored " + n))

			case key.Matches(msg, keys.delete):
				if view != "trash" {
					return nil
				}
				if err := os.Remove(p); err != nil {
					return m.NewStatusMessage(statusStyle("Failed to delete " + n))
				}
				removeItemByPath(m, p)
				return m.NewStatusMessage(statusStyle("Deleted " + n))
			}
		}

		return nil
	}

	var (
		longHelp  [][]key.Binding
		shortHelp []key.Binding
	)

	switch view {
	case "trash":
		shortHelp = []key.Binding{keys.undo, keys.delete}
		longHelp = [][]key.Binding{{keys.undo, keys.delete}}
	default:
		shortHelp = []key.Binding{keys.trash}
		longHelp = [][]key.Binding{{keys.trash}}
	}

	d.ShortHelpFunc = func() []key.Binding { return shortHelp }
	d.FullHelpFunc = func() [][]key.Binding { return longHelp }

	return d
}

func removeItemByPath(m *list.Model, path string) {
	for idx, item := range m.Items() {
		if li, ok := item.(ListItem); ok && li.path == path {
			m.RemoveItem(idx)
			return
		}
	}
}
