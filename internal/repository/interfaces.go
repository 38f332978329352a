package repository

import (
	"context"

	"github.com/jensotto/projektor/internal/domain"
)

// ProjectRepo is the project side of the hierarchy store adapter.
// Getters return ErrNotFound when the id does not resolve.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListRootsByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	ListAssignedRoots(ctx context.Context, userID string) ([]*domain.Project, error)
	ListDirectSubProjects(ctx context.Context, parentID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) (int64, error)
}

// TaskRepo is the task side of the hierarchy store adapter. Scanned
// tasks carry aggregated actual hours (summed from time entries) but
// no sub-task tree; materialization is the engine's job.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListDirectSubTasks(ctx context.Context, parentID string) ([]*domain.Task, error)
	ListDirectProjectTasks(ctx context.Context, projectID string) ([]*domain.Task, error)
	ListAllProjectTasks(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	UpdateParent(ctx context.Context, taskID string, newParentID *string) error
	UpdateProject(ctx context.Context, taskID, newProjectID string) error
	Delete(ctx context.Context, id string) (int64, error)
}

// MembershipRepo stores the role-assignment edges between projects and
// users. At most one row exists per (project, user) pair.
type MembershipRepo interface {
	IsUserAssigned(ctx context.Context, projectID, userID string) (bool, error)
	// GetRole returns the direct role assignment on exactly this
	// project, with ok=false when no row exists.
	GetRole(ctx context.Context, projectID, userID string) (domain.Role, bool, error)
	ListMembers(ctx context.Context, projectID string) ([]domain.Member, error)
	Add(ctx context.Context, projectID, userID string, role domain.Role) error
	UpdateRole(ctx context.Context, projectID, userID string, role domain.Role) error
	Remove(ctx context.Context, projectID, userID string) error
}

type TimeEntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	ListByTask(ctx context.Context, taskID string) ([]*domain.TimeEntry, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
