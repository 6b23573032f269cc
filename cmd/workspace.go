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
	"github.com/spf13/cobra"

	"github.com/inklet/inklet/internal/config"
)

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Manage workspaces.",
	Long: heredoc.Doc(`
		Lists, switches and adds workspaces. Each workspace points at its
		own vault directory and carries its own editor and autosave
		settings.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		if stateError != nil {
			return stateError
		}

		for _, name := range appState.Config.WorkspaceNames() {
			marker := "  "
			if name == appState.Config.CurrentWorkspace {
				marker = "* "
			}
			ws := appState.Config.Workspaces[name]
			fmt.Printf("%s%s\t%s\n", marker, name, ws.VaultDir)
		}
		return nil
	},
}

var workspaceSwitchCmd = &cobra.Command{
	Use:   "switch [name]",
	Short: "Switch the current workspace.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("no workspace given, try again with: inklet workspace switch [name]")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if stateError != nil {
			return stateError
		}

		if err := appState.Config.SwitchWorkspace(args[0]); err != nil {
			return err
		}

		fmt.Println("Switched to workspace", args[0])
		return nil
	},
}

var workspaceAddCmd = &cobra.Command{
	Use:   "add [name] [vaultdir]",
	Short: "Add a new workspace.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf(
				"missing arguments, try again with: inklet workspace add [name] [vaultdir]",
			)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if stateError != nil {
			return stateError
		}

		makeCurrent, _ := cmd.Flags().GetBool("switch")

		ws := config.NewWorkspace(args[1])
		if err := appState.Config.AddWorkspace(args[0], ws, makeCurrent); err != nil {
			return err
		}

		fmt.Println("Added workspace", args[0])
		return nil
	},
}

func init() {
	workspaceAddCmd.Flags().
		BoolP("switch", "s", false, "switch to the new workspace")
	workspaceCmd.AddCommand(workspaceSwitchCmd)
	workspaceCmd.AddCommand(workspaceAddCmd)
	rootCmd.AddCommand(workspaceCmd)
}
