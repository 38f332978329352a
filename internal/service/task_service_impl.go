package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/hierarchy"
	"github.com/jensotto/projektor/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	entries  repository.TimeEntryRepo
	engine   *hierarchy.Engine
	observer UseCaseObserver
}

// NewTaskService creates the task application service.
func NewTaskService(
	tasks repository.TaskRepo,
	entries repository.TimeEntryRepo,
	engine *hierarchy.Engine,
	observer UseCaseObserver,
) TaskService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &taskService{
		tasks:    tasks,
		entries:  entries,
		engine:   engine,
		observer: observer,
	}
}

func (s *taskService) Create(ctx context.Context, actingUserID string, t *domain.Task) error {
	if err := requireEdit(ctx, s.engine, t.ProjectID, actingUserID); err != nil {
		return err
	}
	if t.ParentID != nil {
		parent, err := s.Get(ctx, *t.ParentID)
		if err != nil {
			return err
		}
		if parent.ProjectID != t.ProjectID {
			return fmt.Errorf("parent task %s belongs to another project: %w", parent.ID, hierarchy.ErrInvalidMove)
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("task %s: %w", id, hierarchy.ErrTaskNotFound)
		}
		return nil, fmt.Errorf("loading task %s: %w", id, err)
	}
	return t, nil
}

func (s *taskService) GetTree(ctx context.Context, actingUserID, id string) (*domain.Task, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireView(ctx, s.engine, t.ProjectID, actingUserID); err != nil {
		return nil, err
	}
	return s.engine.MaterializeTaskTree(ctx, id)
}

func (s *taskService) Update(ctx context.Context, actingUserID string, t *domain.Task) error {
	existing, err := s.Get(ctx, t.ID)
	if err != nil {
		return err
	}
	if err := requireEdit(ctx, s.engine, existing.ProjectID, actingUserID); err != nil {
		return err
	}
	if t.Status != "" && !domain.ValidTaskStatuses[string(t.Status)] {
		return fmt.Errorf("invalid task status %q", t.Status)
	}
	// Project and parent pointers are immutable through this path;
	// Reparent and MoveToProject own structural changes.
	t.ProjectID = existing.ProjectID
	t.ParentID = existing.ParentID
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, actingUserID, id string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "task_delete", start, err, map[string]any{"task_id": id})
	}()

	t, gerr := s.Get(ctx, id)
	if gerr != nil {
		err = gerr
		return err
	}
	if err = requireEdit(ctx, s.engine, t.ProjectID, actingUserID); err != nil {
		return err
	}
	affected, derr := s.tasks.Delete(ctx, id)
	if derr != nil {
		err = derr
		return err
	}
	if affected == 0 {
		err = fmt.Errorf("task %s: %w", id, hierarchy.ErrTaskNotFound)
		return err
	}
	return nil
}

func (s *taskService) Reparent(ctx context.Context, actingUserID, taskID string, newParentID *string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "task_reparent", start, err, map[string]any{"task_id": taskID})
	}()

	t, gerr := s.Get(ctx, taskID)
	if gerr != nil {
		err = gerr
		return err
	}
	if err = requireEdit(ctx, s.engine, t.ProjectID, actingUserID); err != nil {
		return err
	}
	err = s.engine.ReparentTask(ctx, taskID, newParentID)
	return err
}

func (s *taskService) MoveToProject(ctx context.Context, actingUserID, taskID, targetProjectID string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "task_move", start, err, map[string]any{
			"task_id":    taskID,
			"project_id": targetProjectID,
		})
	}()

	err = s.engine.MoveTaskToProject(ctx, taskID, targetProjectID, actingUserID)
	return err
}

func (s *taskService) DistributedHours(ctx context.Context, actingUserID, id string) (hierarchy.Schedule, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireView(ctx, s.engine, t.ProjectID, actingUserID); err != nil {
		return nil, err
	}
	return s.engine.DistributedTaskHours(ctx, id)
}

func (s *taskService) LogTime(ctx context.Context, actingUserID string, e *domain.TimeEntry) error {
	t, err := s.Get(ctx, e.TaskID)
	if err != nil {
		return err
	}
	if err := requireEdit(ctx, s.engine, t.ProjectID, actingUserID); err != nil {
		return err
	}
	if e.UserID == "" {
		e.UserID = actingUserID
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now().UTC()
	return s.entries.Create(ctx, e)
}

func (s *taskService) TimeEntries(ctx context.Context, actingUserID, taskID string) ([]*domain.TimeEntry, error) {
	t, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireView(ctx, s.engine, t.ProjectID, actingUserID); err != nil {
		return nil, err
	}
	return s.entries.ListByTask(ctx, taskID)
}
