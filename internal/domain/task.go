package domain

import "time"

// Task is a node in a project's task tree. SubTasks are populated only
// after materialization.
type Task struct {
	ID          string
	ParentID    *string // nil means top-level task of its project
	ProjectID   string
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time

	// EstimatedHours is the task's own stored estimate. Once the task
	// has sub-tasks it is ignored; see EffectiveEstimatedHours.
	EstimatedHours float64

	// ActualHours is time logged directly against this task,
	// independent of sub-tasks.
	ActualHours float64

	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	SubTasks []*Task
}

// EffectiveEstimatedHours returns the task's own estimate for a leaf,
// or the recursive sum over sub-tasks for a composite task. A
// composite task's own EstimatedHours field does not contribute.
func (t *Task) EffectiveEstimatedHours() float64 {
	if len(t.SubTasks) == 0 {
		return t.EstimatedHours
	}
	var total float64
	for _, sub := range t.SubTasks {
		total += sub.EffectiveEstimatedHours()
	}
	return total
}

// EffectiveActualHours returns the task's own logged hours plus the
// recursive sum over sub-tasks. Unlike estimates, a parent's own
// logged time always counts.
func (t *Task) EffectiveActualHours() float64 {
	total := t.ActualHours
	for _, sub := range t.SubTasks {
		total += sub.EffectiveActualHours()
	}
	return total
}

// BusinessDays returns the inclusive weekday count of the task span.
func (t *Task) BusinessDays() int {
	return BusinessDaysBetween(t.StartDate, t.EndDate)
}
