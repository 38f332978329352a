package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jensotto/projektor/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor replaces every style with an unstyled one. Used for the
// "never" color mode and for non-terminal output.
func DisableColor() {
	plain := lipgloss.NewStyle()
	StyleGreen = plain
	StyleYellow = plain
	StyleYellowBold = plain
	StyleRed = plain
	StyleBlue = plain
	StylePurple = plain
	StyleDim = plain
	StyleFg = plain
	StyleHeader = plain
	StyleBold = plain
}

// StatusColor returns the lipgloss style for a task status.
func StatusColor(status domain.TaskStatus) lipgloss.Style {
	switch status {
	case domain.TaskDone:
		return StyleGreen
	case domain.TaskInProgress:
		return StyleYellow
	case domain.TaskTodo:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status marker such as "● IN_PROGRESS".
func StatusIndicator(status domain.TaskStatus) string {
	return StatusColor(status).Render("● " + string(status))
}

// RoleBadge returns a colored role label.
func RoleBadge(role domain.Role) string {
	switch role {
	case domain.RoleOwner:
		return StylePurple.Render(string(role))
	case domain.RoleFullAccess:
		return StyleGreen.Render(string(role))
	case domain.RoleReadOnly:
		return StyleDim.Render(string(role))
	default:
		return StyleDim.Render(string(role))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
