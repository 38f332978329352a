package hierarchy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/repository"
)

// MaterializeProjectTree loads the project and all of its descendants
// into memory: first the sub-project tree, then the task tree of every
// project node. A store failure at any node aborts the whole
// materialization; partial trees are never returned.
func (e *Engine) MaterializeProjectTree(ctx context.Context, projectID string) (*domain.Project, error) {
	root, err := e.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("materializing project %s: %w", projectID, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("loading project %s: %w", projectID, err)
	}

	visited := make(map[string]struct{})
	if err := e.loadSubProjects(ctx, root, visited); err != nil {
		return nil, err
	}

	// Task identifiers live in their own namespace, so the task walk
	// gets a fresh visited set.
	taskVisited := make(map[string]struct{})
	if err := e.attachTaskTrees(ctx, root, taskVisited); err != nil {
		return nil, err
	}
	return root, nil
}

// MaterializeTaskTree loads the task and all of its sub-tasks.
func (e *Engine) MaterializeTaskTree(ctx context.Context, taskID string) (*domain.Task, error) {
	root, err := e.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("materializing task %s: %w", taskID, ErrTaskNotFound)
		}
		return nil, fmt.Errorf("loading task %s: %w", taskID, err)
	}

	visited := make(map[string]struct{})
	if err := e.loadSubTasks(ctx, root, visited); err != nil {
		return nil, err
	}
	return root, nil
}

// loadSubProjects recursively attaches sub-projects. A node whose id
// is already in the visited set is not expanded again, which bounds
// the recursion even over corrupted cyclic data.
func (e *Engine) loadSubProjects(ctx context.Context, p *domain.Project, visited map[string]struct{}) error {
	if _, seen := visited[p.ID]; seen {
		return nil
	}
	visited[p.ID] = struct{}{}

	subs, err := e.projects.ListDirectSubProjects(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("loading sub-projects of %s: %w", p.ID, err)
	}
	p.SubProjects = subs
	for _, sub := range subs {
		if err := e.loadSubProjects(ctx, sub, visited); err != nil {
			return err
		}
	}
	return nil
}

// attachTaskTrees loads the task tree for every project node in an
// already-assembled sub-project tree, sharing one task visited set
// across the whole project tree.
func (e *Engine) attachTaskTrees(ctx context.Context, p *domain.Project, visited map[string]struct{}) error {
	tasks, err := e.tasks.ListDirectProjectTasks(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("loading tasks of project %s: %w", p.ID, err)
	}
	p.Tasks = tasks
	for _, t := range tasks {
		if err := e.loadSubTasks(ctx, t, visited); err != nil {
			return err
		}
	}
	for _, sub := range p.SubProjects {
		if err := e.attachTaskTrees(ctx, sub, visited); err != nil {
			return err
		}
	}
	return nil
}

// loadSubTasks recursively attaches sub-tasks under the same
// visited-set discipline as loadSubProjects.
func (e *Engine) loadSubTasks(ctx context.Context, t *domain.Task, visited map[string]struct{}) error {
	if _, seen := visited[t.ID]; seen {
		return nil
	}
	visited[t.ID] = struct{}{}

	subs, err := e.tasks.ListDirectSubTasks(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("loading sub-tasks of %s: %w", t.ID, err)
	}
	t.SubTasks = subs
	for _, sub := range subs {
		if err := e.loadSubTasks(ctx, sub, visited); err != nil {
			return err
		}
	}
	return nil
}
