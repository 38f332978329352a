package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jensotto/projektor/internal/domain"
)

var testEmailCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithParentProject(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ParentID = &id
	}
}

func WithProjectDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = start
		p.EndDate = end
	}
}

func NewTestProject(ownerID, title string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		StartDate: domain.Day(now),
		EndDate:   domain.Day(now.AddDate(0, 1, 0)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithParentTask(id string) TaskOption {
	return func(t *domain.Task) {
		t.ParentID = &id
	}
}

func WithTaskDates(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = start
		t.EndDate = end
	}
}

func WithEstimatedHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = h
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func NewTestTask(projectID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		StartDate: domain.Day(now),
		EndDate:   domain.Day(now.AddDate(0, 0, 7)),
		Status:    domain.TaskTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestUser(name string) *domain.User {
	n := testEmailCounter.Add(1)
	return &domain.User{
		ID:        uuid.New().String(),
		Email:     fmt.Sprintf("%s%d@example.com", name, n),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestTimeEntry(taskID, userID string, hours float64) *domain.TimeEntry {
	return &domain.TimeEntry{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		UserID:      userID,
		Hours:       hours,
		Description: "logged work",
		CreatedAt:   time.Now().UTC(),
	}
}
