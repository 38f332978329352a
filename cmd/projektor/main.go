package main

import (
	"fmt"
	"os"

	"github.com/jensotto/projektor/internal/cli"
	"github.com/jensotto/projektor/internal/cli/formatter"
	"github.com/jensotto/projektor/internal/config"
	"github.com/jensotto/projektor/internal/db"
	"github.com/jensotto/projektor/internal/hierarchy"
	"github.com/jensotto/projektor/internal/repository"
	"github.com/jensotto/projektor/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("PROJEKTOR_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if cfg.Color == "never" || (cfg.Color == "auto" && !stdoutTTY) {
		formatter.DisableColor()
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	membershipRepo := repository.NewSQLiteMembershipRepo(database)
	entryRepo := repository.NewSQLiteTimeEntryRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	engine := hierarchy.NewEngine(projectRepo, taskRepo, membershipRepo)

	var observer service.UseCaseObserver
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo, membershipRepo, userRepo, engine, observer),
		Tasks:     service.NewTaskService(taskRepo, entryRepo, engine, observer),
		Users:     service.NewUserService(userRepo),
		UserEmail: cfg.UserEmail,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
