package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jensotto/projektor/internal/domain"
	"github.com/jensotto/projektor/internal/hierarchy"
)

// FormatHours renders an hour count compactly: "8h", "2.5h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatProjectList renders projects as a table of title, timeframe and
// estimated hours.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.Title,
			FormatDate(p.StartDate) + " → " + FormatDate(p.EndDate),
			FormatHours(p.EstimatedHours()),
			Dim(p.ID),
		})
	}
	return RenderTable([]string{"Project", "Timeframe", "Est", "ID"}, rows)
}

// FormatMembers renders a project team as a table.
func FormatMembers(members []domain.Member) string {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{m.User.Name, m.User.Email, RoleBadge(m.Role)})
	}
	return RenderTable([]string{"Name", "Email", "Role"}, rows)
}

// FormatSchedule renders a per-day hour schedule with a total line.
// Weekend days never appear; the engine only schedules business days.
func FormatSchedule(s hierarchy.Schedule) string {
	if len(s) == 0 {
		return Dim("No scheduled hours.") + "\n"
	}
	var b strings.Builder
	rows := make([][]string, 0, len(s))
	for _, day := range s.Dates() {
		rows = append(rows, []string{
			FormatDate(day),
			Dim(day.Format("Mon")),
			FormatHours(s[day]),
		})
	}
	b.WriteString(RenderTable([]string{"Date", "Day", "Hours"}, rows))
	b.WriteString(fmt.Sprintf("\n%s %s\n", Bold("Total:"), FormatHours(s.Total())))
	return b.String()
}

// FormatTimeEntries renders logged work for a task.
func FormatTimeEntries(entries []*domain.TimeEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			FormatDate(e.CreatedAt),
			FormatHours(e.Hours),
			e.Description,
		})
	}
	return RenderTable([]string{"Date", "Hours", "Description"}, rows)
}
