package cli

import (
	"context"
	"fmt"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addScheduleFlags registers the date-range flags shared by project
// and task commands.
func addScheduleFlags(fs *pflag.FlagSet, start, end *string) {
	fs.StringVar(start, "start", "", "Start date (YYYY-MM-DD)")
	fs.StringVar(end, "end", "", "End date (YYYY-MM-DD)")
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Tasks    service.TaskService
	Users    service.UserService

	// UserEmail identifies the acting user. Populated from config and
	// overridable per invocation with --as.
	UserEmail string

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

// actor resolves the acting user's id from the configured email.
func (app *App) actor(ctx context.Context) (string, error) {
	if app.UserEmail == "" {
		return "", fmt.Errorf("no acting user configured; set user_email in the config or pass --as")
	}
	u, err := app.Users.GetByEmail(ctx, app.UserEmail)
	if err != nil {
		return "", fmt.Errorf("resolving acting user %s: %w", app.UserEmail, err)
	}
	return u.ID, nil
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// resolveUserID turns a member email into a user id.
func (app *App) resolveUserID(ctx context.Context, email string) (string, error) {
	u, err := app.Users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

func parseRole(s string) (domain.Role, error) {
	role := domain.Role(s)
	if role != domain.RoleFullAccess && role != domain.RoleReadOnly {
		return "", fmt.Errorf("invalid role %q (want FULL_ACCESS or READ_ONLY)", s)
	}
	return role, nil
}

// NewRootCmd creates the top-level "projektor" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "projektor",
		Short:         "Hierarchical project and task tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.UserEmail, "as", app.UserEmail, "Act as the user with this email")

	root.AddCommand(
		newUserCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newTeamCmd(app),
	)

	return root
}
