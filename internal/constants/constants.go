package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.inklet/`

	// AutosaveDir holds debounced document snapshots, relative to ConfigDir.
	AutosaveDir = `autosave`

	// TrashDir is the vault subdirectory discarded notes are moved into.
	TrashDir = `trash`
)
