package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	openNote            key.Binding
	create              key.Binding
	toggleFullPath      key.Binding
	switchToDefaultView key.Binding
	switchToTrashView   key.Binding
	quit                key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		create: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "create"),
		),
		toggleFullPath: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "toggle path"),
		),
		switchToDefaultView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "notes view"),
		),
		switchToTrashView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "trash view"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type delegateKeyMap struct {
	trash  key.Binding
	undo   key.Binding
	delete key.Binding
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		trash: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "trash"),
		),
		undo: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "restore"),
		),
		delete: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "delete forever"),
		),
	}
}
