package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jensotto/projektor/internal/domain"
)

// treeItem is one rendered row of a hierarchy display.
type treeItem struct {
	title  string
	level  int
	isLast bool
	status domain.TaskStatus
	badge  string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// FormatProjectTree renders a materialized project with its
// sub-projects and task trees as an indented box-drawing tree.
func FormatProjectTree(p *domain.Project) string {
	var items []treeItem
	items = append(items, treeItem{
		title: Bold(p.Title),
		badge: fmt.Sprintf("%s est / %s logged", FormatHours(p.EstimatedHours()), FormatHours(p.ActualHours())),
	})
	items = appendProjectChildren(items, p, 1)
	return renderTree(items)
}

func appendProjectChildren(items []treeItem, p *domain.Project, level int) []treeItem {
	// Tasks first, then sub-projects, matching creation-time ordering
	// within each group.
	total := len(p.Tasks) + len(p.SubProjects)
	n := 0
	for _, t := range p.Tasks {
		n++
		items = appendTaskItems(items, t, level, n == total)
	}
	for _, sub := range p.SubProjects {
		n++
		items = append(items, treeItem{
			title:  Bold(sub.Title),
			level:  level,
			isLast: n == total,
			badge:  FormatHours(sub.EstimatedHours()) + " est",
		})
		items = appendProjectChildren(items, sub, level+1)
	}
	return items
}

// FormatTaskTree renders a materialized task with its sub-tasks.
func FormatTaskTree(t *domain.Task) string {
	return renderTree(appendTaskItems(nil, t, 0, true))
}

func appendTaskItems(items []treeItem, t *domain.Task, level int, isLast bool) []treeItem {
	items = append(items, treeItem{
		title:  t.Title,
		level:  level,
		isLast: isLast,
		status: t.Status,
		badge:  fmt.Sprintf("%s est / %s logged", FormatHours(t.EffectiveEstimatedHours()), FormatHours(t.EffectiveActualHours())),
	})
	for i, sub := range t.SubTasks {
		items = appendTaskItems(items, sub, level+1, i == len(t.SubTasks)-1)
	}
	return items
}

// renderTree lays out the rows with box-drawing connectors and
// right-aligned hour badges. Done tasks are dimmed with a check mark,
// in-progress tasks highlighted.
func renderTree(items []treeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	maxWidth := 0
	for i, item := range items {
		var prefix string
		if item.level > 0 {
			prefix = strings.Repeat(treePipe, item.level-1)
			if item.isLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.title
		switch item.status {
		case domain.TaskDone:
			title = StyleGreen.Render("✔ ") + Dim(title)
		case domain.TaskInProgress:
			title = StyleYellowBold.Render("▶ " + title)
		}

		contents[i] = prefix + title
		if w := lipgloss.Width(contents[i]); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	for i, item := range items {
		line := contents[i]
		if item.badge != "" {
			pad := maxWidth - lipgloss.Width(line)
			line += strings.Repeat(" ", pad) + "  " + StyleBlue.Render("[ "+item.badge+" ]")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
