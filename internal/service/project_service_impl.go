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

type projectService struct {
	projects    repository.ProjectRepo
	memberships repository.MembershipRepo
	users       repository.UserRepo
	engine      *hierarchy.Engine
	observer    UseCaseObserver
}

// NewProjectService creates the project application service.
func NewProjectService(
	projects repository.ProjectRepo,
	memberships repository.MembershipRepo,
	users repository.UserRepo,
	engine *hierarchy.Engine,
	observer UseCaseObserver,
) ProjectService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &projectService{
		projects:    projects,
		memberships: memberships,
		users:       users,
		engine:      engine,
		observer:    observer,
	}
}

func (s *projectService) Create(ctx context.Context, actingUserID string, p *domain.Project) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "project_create", start, err, map[string]any{"project_id": p.ID})
	}()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if p.ParentID == nil {
		p.OwnerID = actingUserID
		if err = s.projects.Create(ctx, p); err != nil {
			return err
		}
		// The creator of a root project gets an explicit OWNER row on
		// top of the implicit ownership relation.
		if err = s.memberships.Add(ctx, p.ID, actingUserID, domain.RoleOwner); err != nil {
			return err
		}
		return nil
	}

	parent, perr := s.projects.GetByID(ctx, *p.ParentID)
	if perr != nil {
		if errors.Is(perr, repository.ErrNotFound) {
			err = fmt.Errorf("creating sub-project: parent: %w", hierarchy.ErrProjectNotFound)
			return err
		}
		err = fmt.Errorf("loading parent project %s: %w", *p.ParentID, perr)
		return err
	}
	if err = requireEdit(ctx, s.engine, parent.ID, actingUserID); err != nil {
		return err
	}
	// Sub-projects belong to the same owner as their parent.
	p.OwnerID = parent.OwnerID
	err = s.projects.Create(ctx, p)
	return err
}

func (s *projectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("project %s: %w", id, hierarchy.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("loading project %s: %w", id, err)
	}
	return p, nil
}

func (s *projectService) GetTree(ctx context.Context, actingUserID, id string) (p *domain.Project, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "project_tree", start, err, map[string]any{"project_id": id})
	}()

	if err = requireView(ctx, s.engine, id, actingUserID); err != nil {
		return nil, err
	}
	p, err = s.engine.MaterializeProjectTree(ctx, id)
	return p, err
}

func (s *projectService) ListOwned(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.projects.ListRootsByOwner(ctx, userID)
}

func (s *projectService) ListAssigned(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.projects.ListAssignedRoots(ctx, userID)
}

func (s *projectService) Update(ctx context.Context, actingUserID string, p *domain.Project) error {
	existing, err := s.Get(ctx, p.ID)
	if err != nil {
		return err
	}
	if err := requireEdit(ctx, s.engine, p.ID, actingUserID); err != nil {
		return err
	}
	// Owner and parent are immutable through this path; the mover owns
	// structural changes.
	p.OwnerID = existing.OwnerID
	p.ParentID = existing.ParentID
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, actingUserID, id string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "project_delete", start, err, map[string]any{"project_id": id})
	}()

	p, gerr := s.Get(ctx, id)
	if gerr != nil {
		err = gerr
		return err
	}
	if p.OwnerID != actingUserID {
		err = fmt.Errorf("only the owner may delete project %s: %w", id, hierarchy.ErrAccessDenied)
		return err
	}
	affected, derr := s.projects.Delete(ctx, id)
	if derr != nil {
		err = derr
		return err
	}
	if affected == 0 {
		err = fmt.Errorf("project %s: %w", id, hierarchy.ErrProjectNotFound)
		return err
	}
	return nil
}

func (s *projectService) DistributedHours(ctx context.Context, actingUserID, id string) (hierarchy.Schedule, error) {
	if err := requireView(ctx, s.engine, id, actingUserID); err != nil {
		return nil, err
	}
	return s.engine.DistributedProjectHours(ctx, id)
}

func (s *projectService) DirectTeam(ctx context.Context, actingUserID, projectID string) ([]domain.Member, error) {
	if err := requireView(ctx, s.engine, projectID, actingUserID); err != nil {
		return nil, err
	}
	return s.engine.DirectTeam(ctx, projectID)
}

func (s *projectService) InheritedTeam(ctx context.Context, actingUserID, projectID string) ([]domain.Member, error) {
	if err := requireView(ctx, s.engine, projectID, actingUserID); err != nil {
		return nil, err
	}
	return s.engine.InheritedTeam(ctx, projectID)
}

func (s *projectService) AddMember(ctx context.Context, actingUserID, projectID, email string, role domain.Role, propagate bool) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "team_add", start, err, map[string]any{"project_id": projectID})
	}()

	if err = requireEdit(ctx, s.engine, projectID, actingUserID); err != nil {
		return err
	}
	user, uerr := s.users.GetByEmail(ctx, email)
	if uerr != nil {
		if errors.Is(uerr, repository.ErrNotFound) {
			err = fmt.Errorf("no user with email %s: %w", email, ErrUserNotFound)
			return err
		}
		err = fmt.Errorf("looking up user by email: %w", uerr)
		return err
	}

	assigned, aerr := s.memberships.IsUserAssigned(ctx, projectID, user.ID)
	if aerr != nil {
		err = aerr
		return err
	}
	if assigned {
		err = fmt.Errorf("user %s on project %s: %w", user.ID, projectID, ErrAlreadyMember)
		return err
	}
	if err = s.memberships.Add(ctx, projectID, user.ID, role); err != nil {
		return err
	}
	if !propagate {
		return nil
	}

	tree, terr := s.engine.MaterializeProjectTree(ctx, projectID)
	if terr != nil {
		err = terr
		return err
	}
	err = s.addMemberToSubtree(ctx, tree, user.ID, role)
	return err
}

// addMemberToSubtree assigns the role on every sub-project below p,
// skipping nodes where the user already holds one.
func (s *projectService) addMemberToSubtree(ctx context.Context, p *domain.Project, userID string, role domain.Role) error {
	for _, sub := range p.SubProjects {
		assigned, err := s.memberships.IsUserAssigned(ctx, sub.ID, userID)
		if err != nil {
			return err
		}
		if !assigned {
			if err := s.memberships.Add(ctx, sub.ID, userID, role); err != nil {
				return err
			}
		}
		if err := s.addMemberToSubtree(ctx, sub, userID, role); err != nil {
			return err
		}
	}
	return nil
}

func (s *projectService) UpdateMemberRole(ctx context.Context, actingUserID, projectID, userID string, role domain.Role) error {
	if err := requireEdit(ctx, s.engine, projectID, actingUserID); err != nil {
		return err
	}
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return err
	}
	if p.OwnerID == userID {
		return fmt.Errorf("project %s: %w", projectID, ErrOwnerImmutable)
	}
	return s.memberships.UpdateRole(ctx, projectID, userID, role)
}

func (s *projectService) RemoveMember(ctx context.Context, actingUserID, projectID, userID string) error {
	if err := requireEdit(ctx, s.engine, projectID, actingUserID); err != nil {
		return err
	}
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return err
	}
	if p.OwnerID == userID {
		return fmt.Errorf("project %s: %w", projectID, ErrOwnerImmutable)
	}
	return s.memberships.Remove(ctx, projectID, userID)
}
