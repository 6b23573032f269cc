/*
Copyright © 2026 The inklet authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	editortui "github.com/inklet/inklet/internal/tui/editor"
)

var editCmd = &cobra.Command{
	Use:     "edit [name]",
	Aliases: []string{"e"},
	Short:   "Open a note in the editor.",
	Long: heredoc.Doc(`
		Opens the named note from the active workspace's vault in the
		editor. The name is resolved relative to the vault root, with
		the markdown extension added when missing.

		  inklet edit ideas
		  inklet edit project/roadmap
	`),
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("no note given, try again with: inklet edit [name]")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if stateError != nil {
			return stateError
		}

		path := appState.Handler.NotePath(args[0])
		rel, relErr := filepath.Rel(appState.Vault, path)
		if relErr != nil {
			rel = filepath.Base(path)
		}

		return openEditorSession(path, rel)
	},
}

// openEditorSession runs a standalone editor program for one note.
func openEditorSession(path, rel string) error {
	content, err := appState.Handler.ReadNote(path)
	if err != nil {
		return err
	}

	sched := appState.NewScheduler(rel)
	defer sched.Close()

	m := editortui.NewModel(
		appState.Handler,
		sched,
		appState.Workspace,
		path,
		filepath.Base(path),
		content,
	)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
