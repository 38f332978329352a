package cli

import (
	"context"
	"fmt"

	"github.com/jensotto/projektor/internal/cli/formatter"
	"github.com/jensotto/projektor/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(
		newUserRegisterCmd(app),
		newUserListCmd(app),
	)

	return cmd
}

func newUserRegisterCmd(app *App) *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" && app.interactive() {
				if err := registerForm(&email, &name).Run(); err != nil {
					return err
				}
			}
			if email == "" || name == "" {
				return fmt.Errorf("--email and --name are required")
			}

			u := &domain.User{Email: email, Name: name}
			if err := app.Users.Register(context.Background(), u); err != nil {
				return err
			}

			fmt.Printf("Registered %s <%s>\n", u.Name, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Display name")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Println("No users registered.")
				return nil
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{u.Name, u.Email, formatter.Dim(u.ID)})
			}
			fmt.Print(formatter.RenderTable([]string{"Name", "Email", "ID"}, rows))
			return nil
		},
	}
}
