package handler

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FileHandler owns all note file operations inside a single vault directory.
type FileHandler struct {
	vaultDir string
}

func NewFileHandler(vaultDir string) *FileHandler {
	return &FileHandler{vaultDir: vaultDir}
}

func (h *FileHandler) VaultDir() string {
	return h.vaultDir
}

// NotePath resolves a vault-relative name to an absolute note path, adding
// the markdown extension when missing.
func (h *FileHandler) NotePath(name string) string {
	if filepath.Ext(name) != ".md" {
		name += ".md"
	}
	return filepath.Join(h.vaultDir, name)
}

// ReadNote returns the note's markdown content.
func (h *FileHandler) ReadNote(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read note %s: %w", path, err)
	}
	return string(data), nil
}

// WriteNote saves the note through a temp file and a rename so an
// interrupted save never truncates the original.
func (h *FileHandler) WriteNote(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create note directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".note-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write note %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close note %s: %w", path, err)
	}

	return os.Rename(tmp.Name(), path)
}

// CreateNote writes a new note, failing if one already exists at the path.
func (h *FileHandler) CreateNote(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("note already exists: %s", path)
	}
	return h.WriteNote(path, content)
}

// Trash moves a note file to the trash subdirectory, keeping its position
// relative to the vault root.
func (h *FileHandler) Trash(path string) error {
	subDir, err := filepath.Rel(h.vaultDir, filepath.Dir(path))
	if err != nil {
		return err
	}

	trashDir := filepath.Join(h.vaultDir, "trash", subDir)
	if err := os.MkdirAll(trashDir, os.ModePerm); err != nil {
		return err
	}

	newPath := filepath.Join(trashDir, filepath.Base(path))
	return os.Rename(path, newPath)
}

// Untrash moves a note file from the trash subdirectory back to its original
// location.
func (h *FileHandler) Untrash(path string) error {
	subDir, err := filepath.Rel(filepath.Join(h.vaultDir, "trash"), filepath.Dir(path))
	if err != nil {
		return err
	}

	originalDir := filepath.Join(h.vaultDir, subDir)
	if err := os.MkdirAll(originalDir, os.ModePerm); err != nil {
		return err
	}

	newPath := filepath.Join(originalDir, filepath.Base(path))
	return os.Rename(path, newPath)
}

// WalkFiles collects the markdown notes under the vault, skipping dotfiles
// and any excluded directories or file names.
func (h *FileHandler) WalkFiles(
	excludeDirs []string,
	excludeFiles []string,
) ([]string, error) {
	var files []string

	var excludePaths []string
	for _, d := range excludeDirs {
		excludePaths = append(excludePaths, filepath.Clean(filepath.Join(h.vaultDir, d)))
	}

	err := filepath.Walk(
		h.vaultDir,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			cleanedPath := filepath.Clean(path)

			for _, excludePath := range excludePaths {
				if info.IsDir() {
					if cleanedPath == excludePath {
						return filepath.SkipDir
					}
					continue
				}

				if filepath.Dir(cleanedPath) == excludePath {
					return nil
				}
			}

			file := filepath.Base(path)
			for _, f := range excludeFiles {
				if file == f {
					return nil
				}
			}

			if strings.HasPrefix(file, ".") {
				if info.IsDir() && cleanedPath != filepath.Clean(h.vaultDir) {
					return filepath.SkipDir
				}
				if !info.IsDir() {
					return nil
				}
			}

			if !info.IsDir() && filepath.Ext(file) == ".md" {
				files = append(files, path)
			}

			return nil
		},
	)

	return files, err
}

// GetSubdirectories lists the vault's immediate subdirectories, excluding
// the given name.
func (h *FileHandler) GetSubdirectories(directory, excludeDir string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		log.Printf("Failed to read directory %s: %v", directory, err)
		return nil, err
	}

	var subDirs []string
	for _, f := range entries {
		if f.IsDir() && f.Name() != excludeDir {
			subDir := strings.TrimPrefix(filepath.Join(directory, f.Name()), directory)
			subDir = strings.TrimPrefix(subDir, string(os.PathSeparator))
			subDirs = append(subDirs, subDir)
		}
	}
	return subDirs, nil
}
