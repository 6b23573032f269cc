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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/inklet/inklet/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"cfg"},
	Short:   "Adjust workspace settings.",
	Long: heredoc.Doc(`
		Interactively adjusts the active workspace's settings and saves
		them back to the config file. Currently covers the editor theme
		and list continuation.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		if stateError != nil {
			return stateError
		}

		themeSel := selection.New("Select an editor theme.", config.Themes())
		themeSel.Filter = nil

		theme, err := themeSel.RunPrompt()
		if err != nil {
			return err
		}
		if err := config.ValidateTheme(theme); err != nil {
			return err
		}
		appState.Workspace.Editor.Theme = theme

		listSel := selection.New(
			"Continue lists and blockquotes on enter?",
			[]string{"yes", "no"},
		)
		listSel.Filter = nil

		continueLists, err := listSel.RunPrompt()
		if err != nil {
			return err
		}
		appState.Workspace.Editor.ContinueLists = continueLists == "yes"

		if err := appState.Config.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Println("Updated and saved workspace", appState.WorkspaceName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
