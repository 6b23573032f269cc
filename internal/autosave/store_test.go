package autosave

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Write("daily.md", "# Daily\n\n- [ ] task\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, ok, err := store.Read("daily.md")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !ok {
		t.Fatalf("expected snapshot to exist")
	}
	if doc != "# Daily\n\n- [ ] task\n" {
		t.Fatalf("unexpected document: %q", doc)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	doc, ok, err := store.Read("nothing")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ok || doc != "" {
		t.Fatalf("expected missing snapshot, got %q (%v)", doc, ok)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Write("note", "first"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Write("note", "second"); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, ok, err := store.Read("note")
	if err != nil || !ok {
		t.Fatalf("read: %q (%v) err=%v", doc, ok, err)
	}
	if doc != "second" {
		t.Fatalf("expected latest write, got %q", doc)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Write("note", "content"); err != nil {
		t.Fatalf("write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".snapshot-") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single snapshot file, got %d entries", len(entries))
	}
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Write("work/projects/roadmap.md", "plan"); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "work_projects_roadmap.md")); err != nil {
		t.Fatalf("expected sanitized snapshot name: %v", err)
	}

	doc, ok, err := store.Read("work/projects/roadmap.md")
	if err != nil || !ok || doc != "plan" {
		t.Fatalf("read through sanitized key failed: %q (%v) err=%v", doc, ok, err)
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "autosave")
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Write("note", "content"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected directory to be created: %v", err)
	}
}
