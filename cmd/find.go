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
	"github.com/spf13/cobra"

	"github.com/inklet/inklet/internal/fzf"
)

var findCmd = &cobra.Command{
	Use:     "find [query]",
	Aliases: []string{"f"},
	Short:   "Fuzzy find a note and open it in the editor.",
	Long: heredoc.Doc(`
		Opens a fuzzy finder over the vault's notes with a rendered
		markdown preview. The selected note opens in the editor.

		  inklet find
		  inklet find roadmap
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		if stateError != nil {
			return stateError
		}

		finder := fzf.NewFuzzyFinder(
			appState.Vault,
			appState.Workspace.Editor.Theme,
			"Select a note to edit",
		)

		var path string
		var err error
		if len(args) > 0 {
			path, err = finder.RunWithQuery(args[0])
		} else {
			path, err = finder.Run()
		}
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(appState.Vault, path)
		if relErr != nil {
			rel = filepath.Base(path)
		}

		fmt.Println("Opening", rel)
		return openEditorSession(path, rel)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
