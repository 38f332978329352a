package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jensotto/projektor/internal/cli/formatter"
	"github.com/jensotto/projektor/internal/domain"
)

// projektorHuhTheme returns a custom huh theme using the existing
// Gruvbox palette.
func projektorHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateDate requires a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalHours accepts empty or a positive decimal number.
func validateOptionalHours(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number of hours")
	}
	return nil
}

func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("%s is required", title)
			}
			return nil
		})
}

func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-06-30").
		Value(value).
		Validate(validateDate)
}

// projectForm collects the fields for a new project.
func projectForm(title, description, start, end *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			requiredInput("Title", "Website relaunch", title),
			huh.NewInput().Title("Description").Value(description),
			dateInput("Start Date", start),
			dateInput("End Date", end),
		),
	).WithTheme(projektorHuhTheme()).WithShowHelp(false)
}

// taskForm collects the fields for a new task.
func taskForm(title, description, start, end, hours *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			requiredInput("Title", "Design schema", title),
			huh.NewInput().Title("Description").Value(description),
			dateInput("Start Date", start),
			dateInput("End Date", end),
			huh.NewInput().
				Title("Estimated Hours").
				Placeholder("8").
				Value(hours).
				Validate(validateOptionalHours),
		),
	).WithTheme(projektorHuhTheme()).WithShowHelp(false)
}

// registerForm collects the fields for a new user.
func registerForm(email, name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			requiredInput("Email", "ada@example.com", email),
			requiredInput("Name", "Ada Lovelace", name),
		),
	).WithTheme(projektorHuhTheme()).WithShowHelp(false)
}

// confirmForm asks a yes/no question.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(projektorHuhTheme()).WithShowHelp(false)
}

// roleSelect picks an assignable role.
func roleSelect(value *string) *huh.Form {
	*value = string(domain.RoleReadOnly)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Role").
				Options(
					huh.NewOption("Read only", string(domain.RoleReadOnly)),
					huh.NewOption("Full access", string(domain.RoleFullAccess)),
				).
				Value(value),
		),
	).WithTheme(projektorHuhTheme()).WithShowHelp(false)
}
