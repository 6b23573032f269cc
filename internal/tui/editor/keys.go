package editor

import "github.com/charmbracelet/bubbles/key"

type editorKeyMap struct {
	save          key.Binding
	exit          key.Binding
	quit          key.Binding
	togglePreview key.Binding
	reload        key.Binding
}

func newEditorKeyMap() *editorKeyMap {
	return &editorKeyMap{
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "save and exit"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		togglePreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload from disk"),
		),
	}
}
