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
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/inklet/inklet/internal/editor"
)

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export a note's formatted view as HTML fragment.",
	Long: heredoc.Doc(`
		Renders the note the way the editor displays inactive lines,
		with syntax markers hidden, and prints the result as an HTML
		fragment. With --plain the marker-stripped text is printed
		without any markup. With --out the result is written to a file
		instead.

		  inklet export ideas
		  inklet export ideas --plain
		  inklet export project/roadmap --out roadmap.html
	`),
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("no note given, try again with: inklet export [name]")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if stateError != nil {
			return stateError
		}

		path := appState.Handler.NotePath(args[0])
		content, err := appState.Handler.ReadNote(path)
		if err != nil {
			return err
		}

		// Every marker stays hidden in the exported fragment.
		frag := editor.NewRenderer().RenderInactive(content)

		var markup string
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			markup = frag.VisibleText()
		} else {
			markup = frag.Markup()
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Println(markup)
			return nil
		}

		if err := os.WriteFile(out, []byte(markup+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Println("Exported", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().
		StringP("out", "o", "", "write the fragment to a file")
	exportCmd.Flags().
		Bool("plain", false, "print marker-stripped text instead of markup")
	rootCmd.AddCommand(exportCmd)
}
