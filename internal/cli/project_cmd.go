package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jensotto/projektor/internal/cli/formatter"
	"github.com/jensotto/projektor/internal/domain"
	"github.com/spf13/cobra"
)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectTreeCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
		newProjectHoursCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var title, description, start, end, parent string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project or sub-project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			if title == "" && app.interactive() {
				if err := projectForm(&title, &description, &start, &end).Run(); err != nil {
					return err
				}
			}
			if title == "" || start == "" || end == "" {
				return fmt.Errorf("--title, --start and --end are required")
			}

			startDate, err := parseDate(start)
			if err != nil {
				return err
			}
			endDate, err := parseDate(end)
			if err != nil {
				return err
			}

			p := &domain.Project{
				Title:       title,
				Description: description,
				StartDate:   startDate,
				EndDate:     endDate,
			}
			if parent != "" {
				p.ParentID = &parent
			}

			if err := app.Projects.Create(ctx, actor, p); err != nil {
				return err
			}

			fmt.Printf("Created project %s (%s)\n", p.Title, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&description, "desc", "", "Project description")
	addScheduleFlags(cmd.Flags(), &start, &end)
	cmd.Flags().StringVar(&parent, "parent", "", "Parent project ID for a sub-project")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var assigned bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			var projects []*domain.Project
			if assigned {
				projects, err = app.Projects.ListAssigned(ctx, actor)
			} else {
				projects, err = app.Projects.ListOwned(ctx, actor)
			}
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Print(formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&assigned, "assigned", false, "List projects shared with you instead of owned ones")

	return cmd
}

func newProjectTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <project-id>",
		Short: "Show a project with its sub-projects and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			tree, err := app.Projects.GetTree(ctx, actor, args[0])
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatProjectTree(tree))
			fmt.Printf("\n%s business days, %s avg per day\n",
				strconv.Itoa(tree.BusinessDays()),
				formatter.FormatHours(tree.AvgDailyEstimatedHours()))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var title, description, start, end string

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Edit a project's title, description or dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			p, err := app.Projects.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if title != "" {
				p.Title = title
			}
			if cmd.Flags().Changed("desc") {
				p.Description = description
			}
			if start != "" {
				if p.StartDate, err = parseDate(start); err != nil {
					return err
				}
			}
			if end != "" {
				if p.EndDate, err = parseDate(end); err != nil {
					return err
				}
			}

			if err := app.Projects.Update(ctx, actor, p); err != nil {
				return err
			}

			fmt.Printf("Updated project %s\n", p.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (YYYY-MM-DD)")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <project-id>",
		Short: "Delete a project and everything below it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete without --force")
				}
				var confirmed bool
				if err := confirmForm("Delete this project and all sub-projects and tasks?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Projects.Delete(ctx, actor, args[0]); err != nil {
				return err
			}

			fmt.Println("Project deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

func newProjectHoursCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hours <project-id>",
		Short: "Show estimated hours spread over business days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			schedule, err := app.Projects.DistributedHours(ctx, actor, args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Scheduled hours"))
			fmt.Print(formatter.FormatSchedule(schedule))
			return nil
		},
	}
}
