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
	"github.com/spf13/viper"

	"github.com/inklet/inklet/internal/constants"
	"github.com/inklet/inklet/internal/state"
	"github.com/inklet/inklet/internal/tui/notes"
)

var (
	cfgFile       string
	workspaceFlag string

	appState   *state.State
	stateError error
)

var rootCmd = &cobra.Command{
	Use:     "inklet",
	Version: constants.Version,
	Short:   "A terminal markdown notebook with live formatting cues.",
	Long: heredoc.Doc(`
		inklet keeps your notes as plain markdown files and edits them in the
		terminal. Headings, bold text and inline code are shown formatted;
		the raw syntax markers fade into view only on the line you are
		editing. Notes autosave as you type.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		if stateError != nil {
			return stateError
		}
		return notes.Run(appState, "default")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initState)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.inklet/cfg.yaml)")
	rootCmd.PersistentFlags().
		StringVarP(&workspaceFlag, "workspace", "w", "", "workspace to operate in for this command")
}

func initState() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home + constants.ConfigDir)
		viper.SetConfigName(constants.ConfigFile)
		viper.SetConfigType(constants.ConfigFileType)
	}

	viper.ReadInConfig()

	appState, stateError = state.NewState(workspaceFlag)
	if stateError != nil {
		fmt.Printf("failed to initialize: %v\n", stateError)
	}
}
