// Package hierarchy implements the tree engine of the tracker:
// materializing project and task trees, resolving effective roles up
// the ancestor chain, spreading estimated hours over business days,
// and validating structural moves.
//
// The engine holds no state of its own; every call reads fresh from
// the store adapter. Concurrent calls over overlapping trees can race
// between validation and mutation; callers needing stronger guarantees
// must serialize at a higher level.
package hierarchy

import (
	"github.com/jensotto/projektor/internal/repository"
)

// Engine wires the hierarchy algorithms to the store adapter.
type Engine struct {
	projects    repository.ProjectRepo
	tasks       repository.TaskRepo
	memberships repository.MembershipRepo
}

// NewEngine creates an Engine over the given store adapter repos.
func NewEngine(projects repository.ProjectRepo, tasks repository.TaskRepo, memberships repository.MembershipRepo) *Engine {
	return &Engine{
		projects:    projects,
		tasks:       tasks,
		memberships: memberships,
	}
}
