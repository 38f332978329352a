package service

import (
	"context"
	"fmt"

	"github.com/jensotto/projektor/internal/hierarchy"
)

// requireView gates read operations: direct access on the node, or a
// role inherited from an ancestor.
func requireView(ctx context.Context, engine *hierarchy.Engine, projectID, userID string) error {
	ok, err := engine.HasAccess(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	_, ok, err = engine.EffectiveRole(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %s may not view project %s: %w", userID, projectID, hierarchy.ErrAccessDenied)
	}
	return nil
}

// requireEdit gates mutating operations: the resolved role (direct,
// inherited, or implicit owner) must permit editing.
func requireEdit(ctx context.Context, engine *hierarchy.Engine, projectID, userID string) error {
	role, ok, err := engine.ResolveRole(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !ok || !role.CanEdit() {
		return fmt.Errorf("user %s may not edit project %s: %w", userID, projectID, hierarchy.ErrAccessDenied)
	}
	return nil
}
