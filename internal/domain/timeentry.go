package domain

import (
	"fmt"
	"time"
)

const maxTimeEntryDescription = 150

// TimeEntry is an append-only record of hours worked on a task. It is
// never mutated after creation; it disappears only when its task is
// deleted.
type TimeEntry struct {
	ID          string
	TaskID      string
	UserID      string
	Hours       float64
	Description string
	CreatedAt   time.Time
}

// Validate checks that the entry has positive hours and a non-empty
// description within the length limit.
func (e *TimeEntry) Validate() error {
	if e.Hours <= 0 {
		return fmt.Errorf("hours worked must be greater than 0, got %v", e.Hours)
	}
	if e.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(e.Description) > maxTimeEntryDescription {
		return fmt.Errorf("description must be at most %d characters", maxTimeEntryDescription)
	}
	return nil
}
