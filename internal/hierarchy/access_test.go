package hierarchy

import (
	"context"
	"testing"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAccess_OwnerWithoutRoleRow(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	p := env.createProject(t, owner.ID, "P")

	ok, err := env.engine.HasAccess(ctx, p.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, ok, "ownership implies access with no assignment row")
}

func TestHasAccess_DirectAssignment(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	member := env.createUser(t, "member")
	p := env.createProject(t, owner.ID, "P")
	require.NoError(t, env.memberships.Add(ctx, p.ID, member.ID, domain.RoleReadOnly))

	ok, err := env.engine.HasAccess(ctx, p.ID, member.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasAccess_DoesNotInheritFromAncestors(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	member := env.createUser(t, "member")
	parent := env.createProject(t, owner.ID, "Parent")
	child := env.createProject(t, owner.ID, "Child", testutil.WithParentProject(parent.ID))
	require.NoError(t, env.memberships.Add(ctx, parent.ID, member.ID, domain.RoleFullAccess))

	// HasAccess is a single-node predicate; inheritance is
	// EffectiveRole's job.
	ok, err := env.engine.HasAccess(ctx, child.ID, member.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasAccess_MissingProjectFailsClosed(t *testing.T) {
	env := setupEngine(t)

	ok, err := env.engine.HasAccess(context.Background(), "no-such-id", "anyone")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEffectiveRole_DirectBeatsInherited(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	member := env.createUser(t, "member")
	parent := env.createProject(t, owner.ID, "Parent")
	child := env.createProject(t, owner.ID, "Child", testutil.WithParentProject(parent.ID))
	require.NoError(t, env.memberships.Add(ctx, parent.ID, member.ID, domain.RoleFullAccess))
	require.NoError(t, env.memberships.Add(ctx, child.ID, member.ID, domain.RoleReadOnly))

	role, ok, err := env.engine.EffectiveRole(ctx, child.ID, member.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.RoleReadOnly, role)
}

func TestEffectiveRole_NearestAncestorWins(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	member := env.createUser(t, "member")
	top := env.createProject(t, owner.ID, "Top")
	mid := env.createProject(t, owner.ID, "Mid", testutil.WithParentProject(top.ID))
	leaf := env.createProject(t, owner.ID, "Leaf", testutil.WithParentProject(mid.ID))
	require.NoError(t, env.memberships.Add(ctx, top.ID, member.ID, domain.RoleReadOnly))
	require.NoError(t, env.memberships.Add(ctx, mid.ID, member.ID, domain.RoleFullAccess))

	role, ok, err := env.engine.EffectiveRole(ctx, leaf.ID, member.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.RoleFullAccess, role, "nearest ancestor's assignment wins")
}

func TestEffectiveRole_NoAssignmentAnywhere(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	stranger := env.createUser(t, "stranger")
	parent := env.createProject(t, owner.ID, "Parent")
	child := env.createProject(t, owner.ID, "Child", testutil.WithParentProject(parent.ID))

	_, ok, err := env.engine.EffectiveRole(ctx, child.ID, stranger.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveRole_OwnerFallback(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	p := env.createProject(t, owner.ID, "P")

	role, ok, err := env.engine.ResolveRole(ctx, p.ID, owner.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.RoleOwner, role)
}

func TestEffectiveRole_CyclicParentChainIsBounded(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	stranger := env.createUser(t, "stranger")
	p1 := env.createProject(t, owner.ID, "P1")
	p2 := env.createProject(t, owner.ID, "P2", testutil.WithParentProject(p1.ID))
	_, err := env.db.Exec(`UPDATE projects SET parent_project_id = ? WHERE id = ?`, p2.ID, p1.ID)
	require.NoError(t, err)

	// The depth guard turns a cyclic walk into "no inherited role".
	_, ok, err := env.engine.EffectiveRole(ctx, p2.ID, stranger.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDirectTeam_ListsOnlyThisProject(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	a := env.createUser(t, "alice")
	b := env.createUser(t, "bob")
	parent := env.createProject(t, owner.ID, "Parent")
	child := env.createProject(t, owner.ID, "Child", testutil.WithParentProject(parent.ID))
	require.NoError(t, env.memberships.Add(ctx, parent.ID, a.ID, domain.RoleFullAccess))
	require.NoError(t, env.memberships.Add(ctx, child.ID, b.ID, domain.RoleReadOnly))

	team, err := env.engine.DirectTeam(ctx, child.ID)
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, b.ID, team[0].User.ID)
}

func TestInheritedTeam_NearestLevelWinsAndDedupes(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	a := env.createUser(t, "alice")
	b := env.createUser(t, "bob")
	top := env.createProject(t, owner.ID, "Top")
	mid := env.createProject(t, owner.ID, "Mid", testutil.WithParentProject(top.ID))
	leaf := env.createProject(t, owner.ID, "Leaf", testutil.WithParentProject(mid.ID))

	require.NoError(t, env.memberships.Add(ctx, top.ID, a.ID, domain.RoleReadOnly))
	require.NoError(t, env.memberships.Add(ctx, mid.ID, a.ID, domain.RoleFullAccess))
	require.NoError(t, env.memberships.Add(ctx, top.ID, b.ID, domain.RoleFullAccess))
	// Alice also has a direct role on the leaf; she must not appear as
	// inherited at all.
	require.NoError(t, env.memberships.Add(ctx, leaf.ID, a.ID, domain.RoleReadOnly))

	inherited, err := env.engine.InheritedTeam(ctx, leaf.ID)
	require.NoError(t, err)
	require.Len(t, inherited, 1)
	assert.Equal(t, b.ID, inherited[0].User.ID)
	assert.Equal(t, domain.RoleFullAccess, inherited[0].Role)
}

func TestInheritedTeam_MultipleAncestorLevels(t *testing.T) {
	env := setupEngine(t)
	ctx := context.Background()

	owner := env.createUser(t, "owner")
	a := env.createUser(t, "alice")
	top := env.createProject(t, owner.ID, "Top")
	mid := env.createProject(t, owner.ID, "Mid", testutil.WithParentProject(top.ID))
	leaf := env.createProject(t, owner.ID, "Leaf", testutil.WithParentProject(mid.ID))

	require.NoError(t, env.memberships.Add(ctx, top.ID, a.ID, domain.RoleReadOnly))
	require.NoError(t, env.memberships.Add(ctx, mid.ID, a.ID, domain.RoleFullAccess))

	inherited, err := env.engine.InheritedTeam(ctx, leaf.ID)
	require.NoError(t, err)
	require.Len(t, inherited, 1, "a user is counted once, at the nearest level")
	assert.Equal(t, domain.RoleFullAccess, inherited[0].Role)
}
