package fzf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/inklet/inklet/internal/constants"
	"github.com/inklet/inklet/internal/handler"
	"github.com/inklet/inklet/internal/parser"
)

// FuzzyFinder selects a note from the vault with a rendered markdown preview.
type FuzzyFinder struct {
	handler  *handler.FileHandler
	vaultDir string
	theme    string
	Header   string
	files    []string
}

func NewFuzzyFinder(vaultDir, theme, header string) *FuzzyFinder {
	h := handler.NewFileHandler(vaultDir)
	return &FuzzyFinder{vaultDir: vaultDir, theme: theme, Header: header, handler: h}
}

// Run opens the finder and returns the selected note path.
func (f *FuzzyFinder) Run() (string, error) {
	return f.RunWithQuery("")
}

// RunWithQuery opens the finder with an initial query.
func (f *FuzzyFinder) RunWithQuery(query string) (string, error) {
	idx, err := f.find(query)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", fmt.Errorf("no file selected")
		}
		return "", err
	}
	if idx == -1 {
		return "", fmt.Errorf("no file selected")
	}
	return f.files[idx], nil
}

func (f *FuzzyFinder) find(query string) (int, error) {
	files, err := f.handler.WalkFiles([]string{constants.TrashDir}, nil)
	if err != nil {
		return -1, fmt.Errorf("error listing files: %w", err)
	}

	f.files = files

	return f.fuzzySelectFile(query)
}

func (f *FuzzyFinder) fuzzySelectFile(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	var labels []string
	for _, file := range f.files {
		content, err := os.ReadFile(file)
		if err != nil {
			return -1, err
		}

		meta := parser.Parse(content)
		title := meta.Title
		if title == "" {
			title = filepath.Base(file)
		}

		label := title
		if total := meta.OpenTasks + meta.DoneTasks; total > 0 {
			label = fmt.Sprintf("%s [%d/%d tasks]", title, meta.DoneTasks, total)
		}

		labels = append(labels, label)
	}

	return fuzzyfinder.Find(f.files, func(i int) string {
		return labels[i]
	}, options...)
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	content, err := os.ReadFile(f.files[i])
	if err != nil {
		return "Error reading file"
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(f.theme),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}
