package cli

import (
	"context"
	"fmt"

	"github.com/jensotto/projektor/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage project teams",
	}

	cmd.AddCommand(
		newTeamListCmd(app),
		newTeamAddCmd(app),
		newTeamRoleCmd(app),
		newTeamRemoveCmd(app),
	)

	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	var inherited bool

	cmd := &cobra.Command{
		Use:   "list <project-id>",
		Short: "Show who works on a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			members, err := app.Projects.DirectTeam(ctx, actor, args[0])
			if inherited {
				members, err = app.Projects.InheritedTeam(ctx, actor, args[0])
			}
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Println("Nobody is assigned.")
				return nil
			}

			fmt.Print(formatter.FormatMembers(members))
			return nil
		},
	}

	cmd.Flags().BoolVar(&inherited, "inherited", false, "Include members inherited from ancestor projects")

	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	var email, role string
	var propagate bool

	cmd := &cobra.Command{
		Use:   "add <project-id>",
		Short: "Assign a user to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			if role == "" && app.interactive() {
				if err := roleSelect(&role).Run(); err != nil {
					return err
				}
			}
			parsed, err := parseRole(role)
			if err != nil {
				return err
			}

			if err := app.Projects.AddMember(ctx, actor, args[0], email, parsed, propagate); err != nil {
				return err
			}

			fmt.Printf("Added %s as %s\n", email, formatter.RoleBadge(parsed))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "User's email")
	cmd.Flags().StringVar(&role, "role", "", "Role to grant (FULL_ACCESS or READ_ONLY)")
	cmd.Flags().BoolVar(&propagate, "propagate", false, "Also assign on every sub-project")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newTeamRoleCmd(app *App) *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "role <project-id>",
		Short: "Change a member's role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			parsed, err := parseRole(role)
			if err != nil {
				return err
			}
			userID, err := app.resolveUserID(ctx, email)
			if err != nil {
				return err
			}

			if err := app.Projects.UpdateMemberRole(ctx, actor, args[0], userID, parsed); err != nil {
				return err
			}

			fmt.Printf("%s is now %s\n", email, formatter.RoleBadge(parsed))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "User's email")
	cmd.Flags().StringVar(&role, "role", "", "New role (FULL_ACCESS or READ_ONLY)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "rm <project-id>",
		Short: "Remove a member from a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			actor, err := app.actor(ctx)
			if err != nil {
				return err
			}

			userID, err := app.resolveUserID(ctx, email)
			if err != nil {
				return err
			}

			if err := app.Projects.RemoveMember(ctx, actor, args[0], userID); err != nil {
				return err
			}

			fmt.Printf("Removed %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "User's email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
