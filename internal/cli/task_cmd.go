package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jensotto/projektor/internal/cli/formatter"
	"github.com/jensotto/projektor/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskTreeCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
		newTaskReparentCmd(app),
		newTaskMoveCmd(app),
		newTaskHoursCmd(app),
		newTaskLogCmd(app),
		newTaskEntriesCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var project, parent, title, description, start, end string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task or sub-task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}
			if project == "" {
				return fmt.Errorf("--project is required")
			}

			if title == "" && app.interactive() {
				var hoursStr string
				if err := taskForm(&title, &description, &start, &end, &hoursStr).Run(); err != nil {
					return err
				}
				if hoursStr != "" {
					if hours, err = strconv.ParseFloat(hoursStr, 64); err != nil {
						return fmt.Errorf("invalid hours %q: %w", hoursStr, err)
					}
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

			t := &domain.Task{
				ProjectID:      project,
				Title:          title,
				Description:    description,
				StartDate:      startDate,
				EndDate:        endDate,
				EstimatedHours: hours,
			}
			if parent != "" {
				t.ParentID = &parent
			}

			if err := app.Tasks.Create(ctx, actor, t); err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", t.Title, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project ID")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent task ID for a sub-task")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "desc", "", "Task description")
	addScheduleFlags(cmd.Flags(), &start, &end)
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <task-id>",
		Short: "Show a task with its sub-tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			tree, err := app.Tasks.GetTree(ctx, actor, args[0])
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatTaskTree(tree))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, description, start, end, status string
	var hours float64

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			t, err := app.Tasks.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if title != "" {
				t.Title = title
			}
			if cmd.Flags().Changed("desc") {
				t.Description = description
			}
			if start != "" {
				if t.StartDate, err = parseDate(start); err != nil {
					return err
				}
			}
			if end != "" {
				if t.EndDate, err = parseDate(end); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("hours") {
				t.EstimatedHours = hours
			}
			if status != "" {
				t.Status = domain.TaskStatus(status)
			}

			if err := app.Tasks.Update(ctx, actor, t); err != nil {
				return err
			}

			fmt.Printf("Updated task %s %s\n", t.Title, formatter.StatusIndicator(t.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "desc", "", "New description")
	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "New estimated hours")
	cmd.Flags().StringVar(&status, "status", "", "New status (TODO, IN_PROGRESS, DONE)")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task and its sub-tasks",
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
				if err := confirmForm("Delete this task and all sub-tasks?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Tasks.Delete(ctx, actor, args[0]); err != nil {
				return err
			}

			fmt.Println("Task deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

func newTaskReparentCmd(app *App) *cobra.Command {
	var parent string
	var top bool

	cmd := &cobra.Command{
		Use:   "reparent <task-id>",
		Short: "Move a task under another task in the same project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}
			if top == (parent != "") {
				return fmt.Errorf("pass exactly one of --parent or --top")
			}

			var newParent *string
			if !top {
				newParent = &parent
			}
			if err := app.Tasks.Reparent(ctx, actor, args[0], newParent); err != nil {
				return err
			}

			fmt.Println("Task moved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "New parent task ID")
	cmd.Flags().BoolVar(&top, "top", false, "Move the task to the project's top level")

	return cmd
}

func newTaskMoveCmd(app *App) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task and its sub-tree to another project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			if err := app.Tasks.MoveToProject(ctx, actor, args[0], target); err != nil {
				return err
			}

			fmt.Printf("Task moved to project %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to-project", "", "Target project ID")
	_ = cmd.MarkFlagRequired("to-project")

	return cmd
}

func newTaskHoursCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hours <task-id>",
		Short: "Show estimated hours spread over business days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			schedule, err := app.Tasks.DistributedHours(ctx, actor, args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Scheduled hours"))
			fmt.Print(formatter.FormatSchedule(schedule))
			return nil
		},
	}
}

func newTaskLogCmd(app *App) *cobra.Command {
	var hours float64
	var note string

	cmd := &cobra.Command{
		Use:   "log <task-id>",
		Short: "Log hours worked on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			e := &domain.TimeEntry{
				TaskID:      args[0],
				Hours:       hours,
				Description: note,
			}
			if err := app.Tasks.LogTime(ctx, actor, e); err != nil {
				return err
			}

			fmt.Printf("Logged %s\n", formatter.FormatHours(hours))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours worked")
	cmd.Flags().StringVar(&note, "note", "", "What was done")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("note")

	return cmd
}

func newTaskEntriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "entries <task-id>",
		Short: "List logged work for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			entries, err := app.Tasks.TimeEntries(ctx, actor, args[0])
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No time logged yet.")
				return nil
			}

			fmt.Print(formatter.FormatTimeEntries(entries))
			return nil
		},
	}
}
