package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/inklet/inklet/internal/config"
)

func writeConfig(t *testing.T, home string, data map[string]any) {
	t.Helper()

	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}

	if err := os.WriteFile(configPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadEmptyFileCreatesDefaultWorkspace(t *testing.T) {
	home := t.TempDir()
	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	if err := os.WriteFile(configPath, nil, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if cfg.CurrentWorkspace != "default" {
		t.Fatalf("unexpected current workspace: %q", cfg.CurrentWorkspace)
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		t.Fatalf("ActiveWorkspace returned error: %v", err)
	}
	if ws.Editor.Theme != "dracula" {
		t.Fatalf("unexpected default theme: %q", ws.Editor.Theme)
	}
	if !ws.Autosave.Enable {
		t.Fatalf("autosave should default to enabled")
	}
	if ws.Autosave.DebounceMS != 1000 {
		t.Fatalf("unexpected default debounce: %d", ws.Autosave.DebounceMS)
	}
	if !ws.Editor.ContinueLists {
		t.Fatalf("list continuation should default to enabled")
	}
}

func TestLoadReadsWorkspaces(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"current_workspace": "work",
		"workspaces": map[string]any{
			"work": map[string]any{
				"vaultdir": filepath.Join(home, "work-vault"),
				"editor": map[string]any{
					"theme":           "dark",
					"reactive_change": true,
				},
				"autosave": map[string]any{
					"enable":      true,
					"debounce_ms": 250,
				},
			},
			"personal": map[string]any{
				"vaultdir": filepath.Join(home, "personal-vault"),
			},
		},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		t.Fatalf("ActiveWorkspace returned error: %v", err)
	}
	if ws.Editor.Theme != "dark" {
		t.Fatalf("unexpected theme: %q", ws.Editor.Theme)
	}
	if !ws.Editor.ReactiveChange {
		t.Fatalf("expected reactive change to be set")
	}
	if ws.Autosave.DebounceMS != 250 {
		t.Fatalf("unexpected debounce: %d", ws.Autosave.DebounceMS)
	}

	names := cfg.WorkspaceNames()
	if !slices.Equal(names, []string{"personal", "work"}) {
		t.Fatalf("unexpected workspace names: %v", names)
	}
}

func TestLoadRejectsUnsupportedTheme(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"current_workspace": "default",
		"workspaces": map[string]any{
			"default": map[string]any{
				"vaultdir": filepath.Join(home, "vault"),
				"editor":   map[string]any{"theme": "solarized"},
			},
		},
	})

	if _, err := config.Load(home); err == nil {
		t.Fatalf("expected load to fail for unsupported theme")
	}
}

func TestExplicitAutosaveDisableSurvivesDefaults(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"current_workspace": "default",
		"workspaces": map[string]any{
			"default": map[string]any{
				"vaultdir": filepath.Join(home, "vault"),
				"autosave": map[string]any{"enable": false},
			},
		},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		t.Fatalf("ActiveWorkspace returned error: %v", err)
	}
	if ws.Autosave.Enable {
		t.Fatalf("explicit disable must not be overridden by defaults")
	}
}

func TestActivateWorkspaceRejectsUnknownName(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"current_workspace": "default",
		"workspaces": map[string]any{
			"default": map[string]any{
				"vaultdir": filepath.Join(home, "vault"),
			},
		},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.ActivateWorkspace("missing"); err == nil {
		t.Fatalf("expected error for unknown workspace")
	}
}

func TestAddWorkspaceAndSwitch(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, map[string]any{
		"current_workspace": "default",
		"workspaces": map[string]any{
			"default": map[string]any{
				"vaultdir": filepath.Join(home, "vault"),
			},
		},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	ws := config.NewWorkspace(filepath.Join(home, "second-vault"))
	if err := cfg.AddWorkspace("second", ws, true); err != nil {
		t.Fatalf("AddWorkspace returned error: %v", err)
	}

	if cfg.CurrentWorkspace != "second" {
		t.Fatalf("unexpected current workspace: %q", cfg.CurrentWorkspace)
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if reloaded.CurrentWorkspace != "second" {
		t.Fatalf("switch was not persisted, got %q", reloaded.CurrentWorkspace)
	}

	active, err := reloaded.ActiveWorkspace()
	if err != nil {
		t.Fatalf("ActiveWorkspace returned error: %v", err)
	}
	if active.VaultDir != filepath.Join(home, "second-vault") {
		t.Fatalf("unexpected vault dir: %q", active.VaultDir)
	}
}
