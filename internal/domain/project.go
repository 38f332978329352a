package domain

import "time"

// Project is a node in the project tree. SubProjects and Tasks are
// populated only after materialization; a freshly scanned project has
// both slices empty.
type Project struct {
	ID          string
	OwnerID     string
	ParentID    *string // nil means root project
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	SubProjects []*Project
	Tasks       []*Task
}

// IsRoot reports whether the project has no parent.
func (p *Project) IsRoot() bool {
	return p.ParentID == nil
}

// EstimatedHours sums the effective estimated hours of the project's
// tasks plus all sub-projects, recursively. Only meaningful on a
// materialized tree.
func (p *Project) EstimatedHours() float64 {
	var total float64
	for _, t := range p.Tasks {
		total += t.EffectiveEstimatedHours()
	}
	for _, sub := range p.SubProjects {
		total += sub.EstimatedHours()
	}
	return total
}

// ActualHours sums the effective actual hours of the project's tasks
// plus all sub-projects, recursively.
func (p *Project) ActualHours() float64 {
	var total float64
	for _, t := range p.Tasks {
		total += t.EffectiveActualHours()
	}
	for _, sub := range p.SubProjects {
		total += sub.ActualHours()
	}
	return total
}

// Days returns the inclusive calendar-day span of the project.
func (p *Project) Days() int {
	return DaysBetween(p.StartDate, p.EndDate)
}

// BusinessDays returns the inclusive weekday count of the project span.
func (p *Project) BusinessDays() int {
	return BusinessDaysBetween(p.StartDate, p.EndDate)
}

// AvgDailyEstimatedHours returns estimated hours per business day,
// or 0 when the span holds no business days.
func (p *Project) AvgDailyEstimatedHours() float64 {
	bd := p.BusinessDays()
	if bd == 0 {
		return 0
	}
	return p.EstimatedHours() / float64(bd)
}
