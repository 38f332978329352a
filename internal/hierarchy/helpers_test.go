package hierarchy

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/repository"
	"github.com/jensotto/projektor/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	engine      *Engine
	db          *sql.DB
	projects    repository.ProjectRepo
	tasks       repository.TaskRepo
	memberships repository.MembershipRepo
	users       repository.UserRepo
}

func setupEngine(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	memberships := repository.NewSQLiteMembershipRepo(database)
	users := repository.NewSQLiteUserRepo(database)
	return &testEnv{
		engine:      NewEngine(projects, tasks, memberships),
		db:          database,
		projects:    projects,
		tasks:       tasks,
		memberships: memberships,
		users:       users,
	}
}

func (env *testEnv) createUser(t *testing.T, name string) *domain.User {
	t.Helper()
	u := testutil.NewTestUser(name)
	require.NoError(t, env.users.Create(context.Background(), u))
	return u
}

func (env *testEnv) createProject(t *testing.T, ownerID, title string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(ownerID, title, opts...)
	require.NoError(t, env.projects.Create(context.Background(), p))
	return p
}

func (env *testEnv) createTask(t *testing.T, projectID, title string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(projectID, title, opts...)
	require.NoError(t, env.tasks.Create(context.Background(), task))
	return task
}

// countProjectNodes counts every project in a materialized tree,
// root included.
func countProjectNodes(p *domain.Project) int {
	count := 1
	for _, sub := range p.SubProjects {
		count += countProjectNodes(sub)
	}
	return count
}

// countTaskNodes counts every task in a materialized tree, root included.
func countTaskNodes(task *domain.Task) int {
	count := 1
	for _, sub := range task.SubTasks {
		count += countTaskNodes(sub)
	}
	return count
}
