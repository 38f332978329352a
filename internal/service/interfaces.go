package service

import (
	"context"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/hierarchy"
)

// Every operation takes the acting user's id explicitly; there is no
// ambient session state anywhere below the CLI.

type ProjectService interface {
	// Create stores a new project. A root project gets an OWNER role
	// row for its owner; a sub-project inherits the parent's owner and
	// requires an editing role on the parent.
	Create(ctx context.Context, actingUserID string, p *domain.Project) error
	Get(ctx context.Context, id string) (*domain.Project, error)
	// GetTree materializes the full project tree after an access check.
	GetTree(ctx context.Context, actingUserID, id string) (*domain.Project, error)
	ListOwned(ctx context.Context, userID string) ([]*domain.Project, error)
	ListAssigned(ctx context.Context, userID string) ([]*domain.Project, error)
	// Update edits title, description and dates. Owner and parent are
	// immutable.
	Update(ctx context.Context, actingUserID string, p *domain.Project) error
	// Delete removes the project and all descendants. Owner only.
	Delete(ctx context.Context, actingUserID, id string) error
	DistributedHours(ctx context.Context, actingUserID, id string) (hierarchy.Schedule, error)

	DirectTeam(ctx context.Context, actingUserID, projectID string) ([]domain.Member, error)
	InheritedTeam(ctx context.Context, actingUserID, projectID string) ([]domain.Member, error)
	// AddMember assigns a role to the user with the given email,
	// optionally propagating the assignment to every sub-project.
	AddMember(ctx context.Context, actingUserID, projectID, email string, role domain.Role, propagate bool) error
	// UpdateMemberRole changes an existing assignment. The owner's
	// role cannot be changed.
	UpdateMemberRole(ctx context.Context, actingUserID, projectID, userID string, role domain.Role) error
	// RemoveMember drops an assignment. The owner cannot be removed.
	RemoveMember(ctx context.Context, actingUserID, projectID, userID string) error
}

type TaskService interface {
	Create(ctx context.Context, actingUserID string, t *domain.Task) error
	Get(ctx context.Context, id string) (*domain.Task, error)
	// GetTree materializes the task with all sub-tasks after an access
	// check on the owning project.
	GetTree(ctx context.Context, actingUserID, id string) (*domain.Task, error)
	Update(ctx context.Context, actingUserID string, t *domain.Task) error
	Delete(ctx context.Context, actingUserID, id string) error
	// Reparent moves a task under another task of the same project,
	// or to top level when newParentID is nil.
	Reparent(ctx context.Context, actingUserID, taskID string, newParentID *string) error
	// MoveToProject moves the task and its whole sub-tree to another
	// project.
	MoveToProject(ctx context.Context, actingUserID, taskID, targetProjectID string) error
	DistributedHours(ctx context.Context, actingUserID, id string) (hierarchy.Schedule, error)

	LogTime(ctx context.Context, actingUserID string, e *domain.TimeEntry) error
	TimeEntries(ctx context.Context, actingUserID, taskID string) ([]*domain.TimeEntry, error)
}

type UserService interface {
	Register(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
