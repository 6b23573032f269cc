package state

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/inklet/inklet/internal/autosave"
	"github.com/inklet/inklet/internal/config"
	"github.com/inklet/inklet/internal/constants"
	"github.com/inklet/inklet/internal/handler"
)

// State bundles the loaded configuration with the services the commands
// share: the vault file handler and the autosave snapshot store.
type State struct {
	Config        *config.Config
	Workspace     *config.Workspace
	WorkspaceName string
	Handler       *handler.FileHandler
	Snapshots     *autosave.FileStore
	Home          string
	Vault         string
}

func NewState(workspaceOverride string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	if workspaceOverride != "" {
		if err := cfg.ActivateWorkspace(workspaceOverride); err != nil {
			return nil, err
		}
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return nil, err
	}

	h := handler.NewFileHandler(ws.VaultDir)

	snapshots, err := autosave.NewFileStore(config.GetAutosaveDir(home))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare autosave store: %w", err)
	}

	return &State{
		Config:        cfg,
		Workspace:     ws,
		WorkspaceName: cfg.CurrentWorkspace,
		Handler:       h,
		Snapshots:     snapshots,
		Home:          home,
		Vault:         ws.VaultDir,
	}, nil
}

// NewScheduler builds an autosave scheduler for a note keyed by its
// vault-relative name, using the workspace's debounce settings.
func (s *State) NewScheduler(key string) *autosave.Scheduler {
	delay := time.Duration(s.Workspace.Autosave.DebounceMS) * time.Millisecond
	return autosave.NewScheduler(s.Snapshots, key, delay)
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}
