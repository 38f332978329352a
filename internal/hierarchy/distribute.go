package hierarchy

import (
	"context"
	"sort"
	"time"

	"github.com/jensotto/projektor/internal/domain"
)

// Schedule maps business days (midnight UTC) to estimated hours.
// Weekend days never appear as keys.
type Schedule map[time.Time]float64

// Dates returns the schedule's dates in ascending order. Downstream
// consumers (calendar views) require chronological iteration.
func (s Schedule) Dates() []time.Time {
	dates := make([]time.Time, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Total returns the sum of all scheduled hours.
func (s Schedule) Total() float64 {
	var total float64
	for _, h := range s {
		total += h
	}
	return total
}

// DistributeTask spreads a materialized task tree's effective
// estimated hours evenly across the business days of each leaf's date
// range. A leaf spanning no business days contributes nothing. A
// composite task is the date-summed union of its sub-tasks; its own
// estimate is ignored. No rounding is applied.
func DistributeTask(t *domain.Task) Schedule {
	s := make(Schedule)
	distributeTask(t, s)
	return s
}

// DistributeProject folds DistributeTask over a materialized project
// tree: all of its own tasks plus all sub-projects, recursively.
func DistributeProject(p *domain.Project) Schedule {
	s := make(Schedule)
	distributeProject(p, s)
	return s
}

func distributeTask(t *domain.Task, acc Schedule) {
	if len(t.SubTasks) > 0 {
		for _, sub := range t.SubTasks {
			distributeTask(sub, acc)
		}
		return
	}

	businessDays := domain.BusinessDaysBetween(t.StartDate, t.EndDate)
	if businessDays == 0 {
		return
	}
	perDay := t.EstimatedHours / float64(businessDays)
	for cur := domain.Day(t.StartDate); !cur.After(domain.Day(t.EndDate)); cur = cur.AddDate(0, 0, 1) {
		if domain.IsBusinessDay(cur) {
			acc[cur] += perDay
		}
	}
}

func distributeProject(p *domain.Project, acc Schedule) {
	for _, t := range p.Tasks {
		distributeTask(t, acc)
	}
	for _, sub := range p.SubProjects {
		distributeProject(sub, acc)
	}
}

// DistributedProjectHours materializes the project tree and returns
// its hour distribution.
func (e *Engine) DistributedProjectHours(ctx context.Context, projectID string) (Schedule, error) {
	p, err := e.MaterializeProjectTree(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return DistributeProject(p), nil
}

// DistributedTaskHours materializes the task tree and returns its hour
// distribution.
func (e *Engine) DistributedTaskHours(ctx context.Context, taskID string) (Schedule, error) {
	t, err := e.MaterializeTaskTree(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return DistributeTask(t), nil
}
