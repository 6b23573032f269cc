package parser

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Metadata is the summary shown for a note in list views.
type Metadata struct {
	Title     string
	OpenTasks int
	DoneTasks int
	Links     []string
}

var wikiLinkRe = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

func HasNoteLinks(content []byte) bool {
	return wikiLinkRe.Match(content)
}

// ParseFile reads a note and extracts its metadata.
func ParseFile(path string) (Metadata, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("error reading file: %w", err)
	}
	return Parse(source), nil
}

// Parse extracts a note's title, task counts and wiki links from its
// markdown source. The title is the first heading; notes without one fall
// back to an empty title and the caller supplies the file name.
func Parse(source []byte) Metadata {
	var meta Metadata

	md := goldmark.DefaultParser()
	reader := text.NewReader(source)
	document := md.Parse(reader)

	ast.Walk(
		document,
		func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			switch n := n.(type) {
			case *ast.Heading:
				if meta.Title == "" {
					meta.Title = strings.TrimSpace(string(n.Text(source)))
				}
			case *ast.ListItem:
				content := strings.TrimSpace(string(n.Text(source)))
				switch {
				case strings.HasPrefix(content, "[ ]"):
					meta.OpenTasks++
				case strings.HasPrefix(content, "[x]"), strings.HasPrefix(content, "[X]"):
					meta.DoneTasks++
				}
			}
			return ast.WalkContinue, nil
		},
	)

	for _, match := range wikiLinkRe.FindAllSubmatch(source, -1) {
		link := strings.TrimSpace(string(match[1]))
		if link != "" {
			meta.Links = append(meta.Links, link)
		}
	}

	return meta
}
