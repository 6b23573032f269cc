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
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:     "new [title]",
	Aliases: []string{"n"},
	Short:   "Create a new note in the vault.",
	Long: heredoc.Doc(`
		Creates a new markdown note in the active workspace's vault and
		seeds it with a heading. With --paste the clipboard content is
		appended below the heading.

		  inklet new "meeting notes"
		  inklet new ideas --paste
	`),
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("no title given, try again with: inklet new [title]")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if stateError != nil {
			return stateError
		}

		title := args[0]
		content := fmt.Sprintf("# %s\n\n", title)

		paste, _ := cmd.Flags().GetBool("paste")
		if paste {
			clip, err := clipboard.ReadAll()
			if err != nil {
				return fmt.Errorf("failed to read clipboard: %w", err)
			}
			content += clip
			if clip != "" && clip[len(clip)-1] != '\n' {
				content += "\n"
			}
		}

		path := appState.Handler.NotePath(title)
		if err := appState.Handler.CreateNote(path, content); err != nil {
			return err
		}

		fmt.Println("Created", path)
		return nil
	},
}

func init() {
	newCmd.Flags().
		BoolP("paste", "p", false, "seed the note with the clipboard content")
	rootCmd.AddCommand(newCmd)
}
