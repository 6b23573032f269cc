package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spf13/viper"
)

// AutosaveConfig controls the engine's debounced snapshot side-channel.
// Debounce is expressed in milliseconds so the config file stays plain.
type AutosaveConfig struct {
	Enable     bool `yaml:"enable"      json:"enable"`
	DebounceMS int  `yaml:"debounce_ms" json:"debounce_ms"`
	Recover    bool `yaml:"recover"     json:"recover"`
	enabledSet bool `yaml:"-"           json:"-"`
}

func (cfg *AutosaveConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain AutosaveConfig
	var raw plain
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*cfg = AutosaveConfig(raw)
	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content); i += 2 {
			if strings.EqualFold(value.Content[i].Value, "enable") {
				cfg.enabledSet = true
				break
			}
		}
	}
	return nil
}

type EditorConfig struct {
	Theme string `yaml:"theme" json:"theme"`
	// ReactiveChange fires the host onChange callback on every keystroke
	// instead of only on blur.
	ReactiveChange bool `yaml:"reactive_change" json:"reactive_change"`
	ContinueLists  bool `yaml:"continue_lists"  json:"continue_lists"`
}

type Workspace struct {
	VaultDir string         `yaml:"vaultdir" json:"vault_dir"`
	SubDirs  []string       `yaml:"subdirs"  json:"sub_dirs"`
	Editor   EditorConfig   `yaml:"editor"   json:"editor"`
	Autosave AutosaveConfig `yaml:"autosave" json:"autosave"`
}

type Config struct {
	Workspaces       map[string]*Workspace `yaml:"workspaces"        json:"workspaces"`
	CurrentWorkspace string                `yaml:"current_workspace" json:"current_workspace"`

	active *Workspace `yaml:"-"`
}

const (
	defaultWorkspaceName = "default"
	defaultDebounceMS    = 1000
)

var validThemeNames = []string{"dracula", "dark", "light", "notty", "ascii", "auto"}

var ValidThemes = func() map[string]bool {
	themes := make(map[string]bool, len(validThemeNames))
	for _, theme := range validThemeNames {
		themes[theme] = true
	}

	return themes
}()

// Themes lists the selectable style names.
func Themes() []string {
	return append([]string(nil), validThemeNames...)
}

func ValidateTheme(theme string) error {
	if _, valid := ValidThemes[theme]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid theme: %q. Please choose from %s.",
		theme,
		validThemeList(),
	)
}

func validThemeList() string {
	quoted := make([]string, len(validThemeNames))
	for i, name := range validThemeNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	if len(quoted) == 1 {
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// NewWorkspace builds a workspace with defaults pointed at the given vault.
func NewWorkspace(vaultDir string) *Workspace {
	ws := newWorkspace()
	ws.VaultDir = vaultDir
	return ws
}

func newWorkspace() *Workspace {
	return &Workspace{
		Editor: EditorConfig{
			Theme:         "dracula",
			ContinueLists: true,
		},
		Autosave: AutosaveConfig{
			Enable:     true,
			DebounceMS: defaultDebounceMS,
		},
	}
}

func (ws *Workspace) ensureDefaults() {
	if strings.TrimSpace(ws.Editor.Theme) == "" {
		ws.Editor.Theme = "dracula"
	}
	if ws.Autosave.DebounceMS <= 0 {
		ws.Autosave.DebounceMS = defaultDebounceMS
	}
	if !ws.Autosave.enabledSet && !ws.Autosave.Enable {
		ws.Autosave.Enable = true
	}
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) == 0 {
		cfg.Workspaces = map[string]*Workspace{
			defaultWorkspaceName: newWorkspace(),
		}
		cfg.CurrentWorkspace = defaultWorkspaceName
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.ensureInitialized(); err != nil {
		return nil, err
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return nil, err
	}

	if ws.Editor.Theme != "" {
		if err := ValidateTheme(ws.Editor.Theme); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (cfg *Config) ensureInitialized() error {
	if cfg.Workspaces == nil {
		cfg.Workspaces = make(map[string]*Workspace)
	}

	if cfg.CurrentWorkspace == "" {
		if len(cfg.Workspaces) == 0 {
			cfg.Workspaces[defaultWorkspaceName] = newWorkspace()
			cfg.CurrentWorkspace = defaultWorkspaceName
		} else {
			for name := range cfg.Workspaces {
				cfg.CurrentWorkspace = name
				break
			}
		}
	}

	return cfg.setActiveWorkspace(cfg.CurrentWorkspace)
}

func (cfg *Config) setActiveWorkspace(name string) error {
	if name == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}
	ws, ok := cfg.Workspaces[name]
	if !ok {
		return fmt.Errorf("workspace %q does not exist", name)
	}
	if ws == nil {
		ws = newWorkspace()
		cfg.Workspaces[name] = ws
	}

	ws.ensureDefaults()
	cfg.CurrentWorkspace = name
	cfg.active = ws

	cfg.syncViperWithActiveWorkspace()

	return nil
}

func (cfg *Config) syncViperWithActiveWorkspace() {
	if cfg.active == nil {
		return
	}

	ws := cfg.active
	viper.Set("vaultdir", ws.VaultDir)
	viper.Set("theme", ws.Editor.Theme)
	viper.Set("reactive_change", ws.Editor.ReactiveChange)
	viper.Set("continue_lists", ws.Editor.ContinueLists)
	viper.Set("autosave", ws.Autosave)
	if ws.SubDirs == nil {
		viper.Set("subdirs", []string{})
	} else {
		viper.Set("subdirs", append([]string(nil), ws.SubDirs...))
	}
}

func (cfg *Config) ActiveWorkspace() (*Workspace, error) {
	if cfg.active != nil {
		return cfg.active, nil
	}

	if cfg.CurrentWorkspace == "" {
		return nil, fmt.Errorf("no workspace is currently selected")
	}

	if err := cfg.setActiveWorkspace(cfg.CurrentWorkspace); err != nil {
		return nil, err
	}

	return cfg.active, nil
}

func (cfg *Config) ActivateWorkspace(name string) error {
	return cfg.setActiveWorkspace(name)
}

func (cfg *Config) SwitchWorkspace(name string) error {
	if err := cfg.setActiveWorkspace(name); err != nil {
		return err
	}
	return cfg.Save()
}

func (cfg *Config) AddWorkspace(name string, ws *Workspace, makeCurrent bool) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}

	if cfg.Workspaces == nil {
		cfg.Workspaces = make(map[string]*Workspace)
	}

	if _, exists := cfg.Workspaces[trimmed]; exists {
		return fmt.Errorf("workspace %q already exists", trimmed)
	}

	if ws == nil {
		ws = newWorkspace()
	}
	ws.ensureDefaults()
	cfg.Workspaces[trimmed] = ws

	if cfg.CurrentWorkspace == "" || makeCurrent {
		if err := cfg.setActiveWorkspace(trimmed); err != nil {
			return err
		}
	}

	return cfg.Save()
}

func (cfg *Config) WorkspaceNames() []string {
	names := make([]string, 0, len(cfg.Workspaces))
	for name := range cfg.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (cfg *Config) Save() error {
	path := cfg.GetConfigPath()
	if path == "" {
		return fmt.Errorf("could not resolve config path")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	cfg.syncViperWithActiveWorkspace()
	return nil
}

func (cfg *Config) GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}
