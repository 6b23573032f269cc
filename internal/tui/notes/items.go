package notes

import (
	"fmt"
	"strings"
)

type ListItem struct {
	fileName     string
	path         string
	title        string
	subdirectory string
	openTasks    int
	doneTasks    int
	showFullPath bool
}

func (i ListItem) Title() string {
	if i.showFullPath {
		return i.path
	}
	if i.title == "" {
		return strings.TrimSuffix(i.fileName, ".md")
	}
	return i.title
}

func (i ListItem) Description() string {
	description := ""

	if i.subdirectory != "" {
		description += fmt.Sprintf("[%s] ", i.subdirectory)
	}

	if total := i.openTasks + i.doneTasks; total > 0 {
		description += fmt.Sprintf("%d/%d tasks done", i.doneTasks, total)
	} else {
		description += "No tasks"
	}

	return description
}

func (i ListItem) FilterValue() string {
	return strings.Join([]string{i.Title(), "[" + i.subdirectory + "]"}, " ")
}

func (i ListItem) Path() string {
	return i.path
}
