package hierarchy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/repository"
)

// maxAncestorDepth bounds parent-chain walks so that cyclic parent
// pointers in corrupted data cannot loop forever. Exceeding it is
// treated as "no inherited role found", not an error.
const maxAncestorDepth = 1000

// HasAccess reports whether the user owns the project or holds a
// direct role assignment on it. It checks this project node only and
// never walks ancestors; EffectiveRole is the inheriting lookup.
// A missing project yields false, not an error.
func (e *Engine) HasAccess(ctx context.Context, projectID, userID string) (bool, error) {
	p, err := e.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("loading project %s: %w", projectID, err)
	}
	if p.OwnerID == userID {
		return true, nil
	}
	assigned, err := e.memberships.IsUserAssigned(ctx, projectID, userID)
	if err != nil {
		return false, fmt.Errorf("checking assignment on project %s: %w", projectID, err)
	}
	return assigned, nil
}

// EffectiveRole resolves the user's role on the project: a direct
// assignment wins; otherwise the walk goes strictly upward and the
// nearest ancestor carrying an assignment wins. ok is false when no
// assignment exists anywhere on the chain. The project owner's
// implicit OWNER role is the caller's concern; see ResolveRole.
func (e *Engine) EffectiveRole(ctx context.Context, projectID, userID string) (domain.Role, bool, error) {
	role, ok, err := e.memberships.GetRole(ctx, projectID, userID)
	if err != nil {
		return "", false, fmt.Errorf("reading role on project %s: %w", projectID, err)
	}
	if ok {
		return role, true, nil
	}

	p, err := e.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, fmt.Errorf("resolving role on project %s: %w", projectID, ErrProjectNotFound)
		}
		return "", false, fmt.Errorf("loading project %s: %w", projectID, err)
	}

	for depth := 0; p.ParentID != nil && depth < maxAncestorDepth; depth++ {
		parent, err := e.projects.GetByID(ctx, *p.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// Dangling parent pointer; the chain ends here.
				return "", false, nil
			}
			return "", false, fmt.Errorf("loading ancestor project %s: %w", *p.ParentID, err)
		}
		role, ok, err := e.memberships.GetRole(ctx, parent.ID, userID)
		if err != nil {
			return "", false, fmt.Errorf("reading role on project %s: %w", parent.ID, err)
		}
		if ok {
			return role, true, nil
		}
		p = parent
	}
	return "", false, nil
}

// ResolveRole is EffectiveRole with the owner fallback applied: when
// no assignment exists on the chain but the user owns the project, the
// implicit OWNER role is returned.
func (e *Engine) ResolveRole(ctx context.Context, projectID, userID string) (domain.Role, bool, error) {
	role, ok, err := e.EffectiveRole(ctx, projectID, userID)
	if err != nil || ok {
		return role, ok, err
	}
	p, err := e.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, fmt.Errorf("resolving role on project %s: %w", projectID, ErrProjectNotFound)
		}
		return "", false, fmt.Errorf("loading project %s: %w", projectID, err)
	}
	if p.OwnerID == userID {
		return domain.RoleOwner, true, nil
	}
	return "", false, nil
}

// DirectTeam lists the users holding a role assignment on exactly this
// project.
func (e *Engine) DirectTeam(ctx context.Context, projectID string) ([]domain.Member, error) {
	members, err := e.memberships.ListMembers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing team of project %s: %w", projectID, err)
	}
	return members, nil
}

// InheritedTeam lists the users whose role on this project is implied
// by an assignment on an ancestor. The walk goes strictly upward; the
// nearest assignment per user wins, and users already counted at a
// lower level (including the direct team) are skipped further up.
func (e *Engine) InheritedTeam(ctx context.Context, projectID string) ([]domain.Member, error) {
	p, err := e.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("listing inherited team of project %s: %w", projectID, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("loading project %s: %w", projectID, err)
	}

	seen := make(map[string]struct{})
	direct, err := e.memberships.ListMembers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing team of project %s: %w", projectID, err)
	}
	for _, m := range direct {
		seen[m.User.ID] = struct{}{}
	}

	var inherited []domain.Member
	for depth := 0; p.ParentID != nil && depth < maxAncestorDepth; depth++ {
		parent, err := e.projects.GetByID(ctx, *p.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				break
			}
			return nil, fmt.Errorf("loading ancestor project %s: %w", *p.ParentID, err)
		}
		members, err := e.memberships.ListMembers(ctx, parent.ID)
		if err != nil {
			return nil, fmt.Errorf("listing team of project %s: %w", parent.ID, err)
		}
		for _, m := range members {
			if _, counted := seen[m.User.ID]; counted {
				continue
			}
			seen[m.User.ID] = struct{}{}
			inherited = append(inherited, m)
		}
		p = parent
	}
	return inherited, nil
}
