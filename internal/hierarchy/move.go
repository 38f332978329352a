package hierarchy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jensotto/projektor/internal/repository"
)

// WouldCreateCycle reports whether making candidateParentID the parent
// of taskID would create a cycle in the task tree. A nil candidate
// (becoming a top-level task) is always safe; a task can never parent
// itself; and moving under any of its own descendants is a cycle.
func (e *Engine) WouldCreateCycle(ctx context.Context, taskID string, candidateParentID *string) (bool, error) {
	if candidateParentID == nil {
		return false, nil
	}
	if *candidateParentID == taskID {
		return true, nil
	}

	descendants := make(map[string]struct{})
	if err := e.collectDescendantTaskIDs(ctx, taskID, descendants); err != nil {
		return false, err
	}
	_, found := descendants[*candidateParentID]
	return found, nil
}

// collectDescendantTaskIDs enumerates all sub-task ids below taskID
// via repeated direct-children queries. The accumulator set doubles as
// the guard against revisiting ids in malformed data.
func (e *Engine) collectDescendantTaskIDs(ctx context.Context, taskID string, acc map[string]struct{}) error {
	subs, err := e.tasks.ListDirectSubTasks(ctx, taskID)
	if err != nil {
		return fmt.Errorf("enumerating sub-tasks of %s: %w", taskID, err)
	}
	for _, sub := range subs {
		if _, seen := acc[sub.ID]; seen {
			continue
		}
		acc[sub.ID] = struct{}{}
		if err := e.collectDescendantTaskIDs(ctx, sub.ID, acc); err != nil {
			return err
		}
	}
	return nil
}

// ReparentTask moves a task under a new parent task within its
// project (nil makes it top-level), after validating that the move
// does not create a cycle and that the new parent belongs to the same
// project.
func (e *Engine) ReparentTask(ctx context.Context, taskID string, newParentID *string) error {
	task, err := e.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("reparenting task %s: %w", taskID, ErrTaskNotFound)
		}
		return fmt.Errorf("loading task %s: %w", taskID, err)
	}

	if newParentID != nil {
		parent, err := e.tasks.GetByID(ctx, *newParentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("reparenting task %s: parent: %w", taskID, ErrTaskNotFound)
			}
			return fmt.Errorf("loading task %s: %w", *newParentID, err)
		}
		if parent.ProjectID != task.ProjectID {
			return fmt.Errorf("parent task %s belongs to another project: %w", parent.ID, ErrInvalidMove)
		}
	}

	cycle, err := e.WouldCreateCycle(ctx, taskID, newParentID)
	if err != nil {
		return err
	}
	if cycle {
		return fmt.Errorf("moving task %s under its own descendant: %w", taskID, ErrInvalidMove)
	}

	if err := e.tasks.UpdateParent(ctx, taskID, newParentID); err != nil {
		return err
	}
	return nil
}

// MoveTaskToProject moves a task and its whole sub-tree to another
// project. The acting user needs an editing role on both the source
// and the destination project; moving to the task's current project is
// rejected. Parent pointers inside the moved sub-tree are untouched;
// only the owning project changes. The sub-tree is fetched fresh from
// the store during the move, never from a cached materialization.
func (e *Engine) MoveTaskToProject(ctx context.Context, taskID, targetProjectID, actingUserID string) error {
	task, err := e.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("moving task %s: %w", taskID, ErrTaskNotFound)
		}
		return fmt.Errorf("loading task %s: %w", taskID, err)
	}
	if task.ProjectID == targetProjectID {
		return fmt.Errorf("task %s already belongs to project %s: %w", taskID, targetProjectID, ErrInvalidMove)
	}
	if _, err := e.projects.GetByID(ctx, targetProjectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("moving task %s: target: %w", taskID, ErrProjectNotFound)
		}
		return fmt.Errorf("loading project %s: %w", targetProjectID, err)
	}

	for _, projectID := range []string{task.ProjectID, targetProjectID} {
		role, ok, err := e.ResolveRole(ctx, projectID, actingUserID)
		if err != nil {
			return err
		}
		if !ok || !role.CanEdit() {
			return fmt.Errorf("user %s may not move tasks on project %s: %w", actingUserID, projectID, ErrAccessDenied)
		}
	}

	return e.moveSubtreeToProject(ctx, taskID, targetProjectID)
}

// moveSubtreeToProject reassigns the task and every descendant to the
// target project, descending over the live tree. A store failure mid-
// recursion is propagated; rollback is the adapter's concern.
func (e *Engine) moveSubtreeToProject(ctx context.Context, taskID, targetProjectID string) error {
	if err := e.tasks.UpdateProject(ctx, taskID, targetProjectID); err != nil {
		return err
	}
	subs, err := e.tasks.ListDirectSubTasks(ctx, taskID)
	if err != nil {
		return fmt.Errorf("enumerating sub-tasks of %s: %w", taskID, err)
	}
	for _, sub := range subs {
		if err := e.moveSubtreeToProject(ctx, sub.ID, targetProjectID); err != nil {
			return err
		}
	}
	return nil
}
