package service

import (
	"context"
	"testing"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/hierarchy"
	"github.com/jensotto/projektor/internal/repository"
	"github.com/jensotto/projektor/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	projects ProjectService
	tasks    TaskService
	users    UserService

	projectRepo    repository.ProjectRepo
	taskRepo       repository.TaskRepo
	membershipRepo repository.MembershipRepo
	userRepo       repository.UserRepo
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	membershipRepo := repository.NewSQLiteMembershipRepo(database)
	entryRepo := repository.NewSQLiteTimeEntryRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	engine := hierarchy.NewEngine(projectRepo, taskRepo, membershipRepo)

	return &testServices{
		projects:       NewProjectService(projectRepo, membershipRepo, userRepo, engine, nil),
		tasks:          NewTaskService(taskRepo, entryRepo, engine, nil),
		users:          NewUserService(userRepo),
		projectRepo:    projectRepo,
		taskRepo:       taskRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
	}
}

func (ts *testServices) registerUser(t *testing.T, name string) *domain.User {
	t.Helper()
	u := testutil.NewTestUser(name)
	require.NoError(t, ts.users.Register(context.Background(), u))
	return u
}
