package service

import (
	"context"
	"testing"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/hierarchy"
	"github.com/jensotto/projektor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreateRequiresEditRole(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")
	reader := ts.registerUser(t, "reader")

	p := testutil.NewTestProject("", "Project")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p))
	require.NoError(t, ts.projects.AddMember(ctx, owner.ID, p.ID, reader.Email, domain.RoleReadOnly, false))

	task := testutil.NewTestTask(p.ID, "Design")
	err := ts.tasks.Create(ctx, reader.ID, task)
	assert.ErrorIs(t, err, hierarchy.ErrAccessDenied)

	require.NoError(t, ts.tasks.Create(ctx, owner.ID, task))
	stored, err := ts.tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskTodo, stored.Status)
}

func TestTaskCreateRejectsForeignParent(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")

	p1 := testutil.NewTestProject("", "One")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p1))
	p2 := testutil.NewTestProject("", "Two")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p2))

	parent := testutil.NewTestTask(p1.ID, "Parent")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, parent))

	child := testutil.NewTestTask(p2.ID, "Child", testutil.WithParentTask(parent.ID))
	err := ts.tasks.Create(ctx, owner.ID, child)
	assert.ErrorIs(t, err, hierarchy.ErrInvalidMove)
}

func TestTaskUpdateKeepsStructure(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")

	p := testutil.NewTestProject("", "Project")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p))
	parent := testutil.NewTestTask(p.ID, "Parent")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, parent))
	task := testutil.NewTestTask(p.ID, "Child", testutil.WithParentTask(parent.ID))
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, task))

	edited := *task
	edited.Title = "Renamed"
	edited.Status = domain.TaskInProgress
	edited.ParentID = nil
	edited.ProjectID = "somewhere-else"
	require.NoError(t, ts.tasks.Update(ctx, owner.ID, &edited))

	stored, err := ts.tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, domain.TaskInProgress, stored.Status)
	assert.Equal(t, p.ID, stored.ProjectID)
	require.NotNil(t, stored.ParentID)
	assert.Equal(t, parent.ID, *stored.ParentID)
}

func TestTaskUpdateRejectsUnknownStatus(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")

	p := testutil.NewTestProject("", "Project")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p))
	task := testutil.NewTestTask(p.ID, "Task")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, task))

	edited := *task
	edited.Status = "BLOCKED"
	err := ts.tasks.Update(ctx, owner.ID, &edited)
	assert.Error(t, err)
}

func TestTaskDeleteRemovesSubTasks(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")

	p := testutil.NewTestProject("", "Project")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p))
	parent := testutil.NewTestTask(p.ID, "Parent")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, parent))
	child := testutil.NewTestTask(p.ID, "Child", testutil.WithParentTask(parent.ID))
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, child))

	require.NoError(t, ts.tasks.Delete(ctx, owner.ID, parent.ID))
	_, err := ts.tasks.Get(ctx, child.ID)
	assert.ErrorIs(t, err, hierarchy.ErrTaskNotFound)
}

func TestTaskMoveToProjectThroughService(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")
	editor := ts.registerUser(t, "editor")

	source := testutil.NewTestProject("", "Source")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, source))
	target := testutil.NewTestProject("", "Target")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, target))
	require.NoError(t, ts.projects.AddMember(ctx, owner.ID, source.ID, editor.Email, domain.RoleFullAccess, false))

	task := testutil.NewTestTask(source.ID, "Task")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, task))

	// Editor may edit the source but holds nothing on the target.
	err := ts.tasks.MoveToProject(ctx, editor.ID, task.ID, target.ID)
	assert.ErrorIs(t, err, hierarchy.ErrAccessDenied)

	require.NoError(t, ts.tasks.MoveToProject(ctx, owner.ID, task.ID, target.ID))
	stored, err := ts.tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, target.ID, stored.ProjectID)
}

func TestTaskLogTimeAndActualHours(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")

	p := testutil.NewTestProject("", "Project")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p))
	task := testutil.NewTestTask(p.ID, "Task")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, task))

	require.NoError(t, ts.tasks.LogTime(ctx, owner.ID, testutil.NewTestTimeEntry(task.ID, owner.ID, 2.5)))
	require.NoError(t, ts.tasks.LogTime(ctx, owner.ID, testutil.NewTestTimeEntry(task.ID, owner.ID, 1.5)))

	stored, err := ts.tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, stored.ActualHours, 1e-9)

	entries, err := ts.tasks.TimeEntries(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTaskLogTimeDefaultsToActingUser(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")

	p := testutil.NewTestProject("", "Project")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p))
	task := testutil.NewTestTask(p.ID, "Task")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, task))

	entry := testutil.NewTestTimeEntry(task.ID, "", 1.0)
	require.NoError(t, ts.tasks.LogTime(ctx, owner.ID, entry))
	assert.Equal(t, owner.ID, entry.UserID)
}

func TestTaskLogTimeValidation(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")

	p := testutil.NewTestProject("", "Project")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p))
	task := testutil.NewTestTask(p.ID, "Task")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, task))

	entry := testutil.NewTestTimeEntry(task.ID, owner.ID, 0)
	assert.Error(t, ts.tasks.LogTime(ctx, owner.ID, entry))
}

func TestTaskReparentThroughService(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")

	p := testutil.NewTestProject("", "Project")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p))
	a := testutil.NewTestTask(p.ID, "A")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, a))
	b := testutil.NewTestTask(p.ID, "B")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, b))

	require.NoError(t, ts.tasks.Reparent(ctx, owner.ID, b.ID, &a.ID))
	stored, err := ts.tasks.Get(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ParentID)
	assert.Equal(t, a.ID, *stored.ParentID)

	require.NoError(t, ts.tasks.Reparent(ctx, owner.ID, b.ID, nil))
	stored, err = ts.tasks.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ParentID)
}

func TestTaskGetTreeRequiresView(t *testing.T) {
	ts := setupServices(t)
	ctx := context.Background()
	owner := ts.registerUser(t, "owner")
	stranger := ts.registerUser(t, "stranger")

	p := testutil.NewTestProject("", "Project")
	require.NoError(t, ts.projects.Create(ctx, owner.ID, p))
	parent := testutil.NewTestTask(p.ID, "Parent")
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, parent))
	child := testutil.NewTestTask(p.ID, "Child", testutil.WithParentTask(parent.ID))
	require.NoError(t, ts.tasks.Create(ctx, owner.ID, child))

	_, err := ts.tasks.GetTree(ctx, stranger.ID, parent.ID)
	assert.ErrorIs(t, err, hierarchy.ErrAccessDenied)

	tree, err := ts.tasks.GetTree(ctx, owner.ID, parent.ID)
	require.NoError(t, err)
	require.Len(t, tree.SubTasks, 1)
	assert.Equal(t, child.ID, tree.SubTasks[0].ID)
}
