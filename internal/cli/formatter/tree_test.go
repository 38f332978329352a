package formatter

import (
	"strings"
	"testing"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatTaskTreeConnectors(t *testing.T) {
	root := &domain.Task{Title: "Backend", EstimatedHours: 10}
	root.SubTasks = []*domain.Task{
		{Title: "API", EstimatedHours: 4, Status: domain.TaskDone},
		{Title: "Storage", EstimatedHours: 6, Status: domain.TaskInProgress},
	}

	out := FormatTaskTree(root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Backend")
	assert.Contains(t, lines[1], treeBranch)
	assert.Contains(t, lines[1], "API")
	assert.Contains(t, lines[2], treeCorner)
	assert.Contains(t, lines[2], "Storage")
}

func TestFormatTaskTreeCompositeBadgeIgnoresOwnEstimate(t *testing.T) {
	root := &domain.Task{Title: "Parent", EstimatedHours: 99}
	root.SubTasks = []*domain.Task{{Title: "Child", EstimatedHours: 4}}

	out := FormatTaskTree(root)
	first := strings.SplitN(out, "\n", 2)[0]
	assert.Contains(t, first, "4h est")
}

func TestFormatProjectTreeNestsTasksAndSubProjects(t *testing.T) {
	p := &domain.Project{Title: "Platform"}
	p.Tasks = []*domain.Task{{Title: "Setup", EstimatedHours: 2}}
	p.SubProjects = []*domain.Project{{
		Title: "Phase 2",
		Tasks: []*domain.Task{{Title: "Rollout", EstimatedHours: 8}},
	}}

	out := FormatProjectTree(p)
	assert.Contains(t, out, "Platform")
	assert.Contains(t, out, "Setup")
	assert.Contains(t, out, "Phase 2")
	assert.Contains(t, out, "Rollout")
	assert.Contains(t, out, "10h est", "root estimate folds in the sub-project")
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"Name", "Role"},
		[][]string{{"Ada", "OWNER"}, {"Grace", "READ_ONLY"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[3], "READ_ONLY")
}
