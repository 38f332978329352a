package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_EffectiveEstimatedHours_Leaf(t *testing.T) {
	task := &Task{EstimatedHours: 8}
	assert.Equal(t, 8.0, task.EffectiveEstimatedHours())
}

func TestTask_EffectiveEstimatedHours_CompositeIgnoresOwnEstimate(t *testing.T) {
	// A stale estimate on a parent must not leak into the total once
	// sub-tasks exist.
	task := &Task{
		EstimatedHours: 99,
		SubTasks: []*Task{
			{EstimatedHours: 4},
			{EstimatedHours: 2, SubTasks: []*Task{
				{EstimatedHours: 1},
				{EstimatedHours: 3},
			}},
		},
	}
	assert.Equal(t, 8.0, task.EffectiveEstimatedHours())
}

func TestTask_EffectiveActualHours_ParentLoggedTimeIsAdditive(t *testing.T) {
	task := &Task{
		ActualHours: 5,
		SubTasks: []*Task{
			{ActualHours: 2},
			{ActualHours: 1, SubTasks: []*Task{
				{ActualHours: 0.5},
			}},
		},
	}
	assert.Equal(t, 8.5, task.EffectiveActualHours())
}

func TestProject_EstimatedHours_FoldsTasksAndSubProjects(t *testing.T) {
	p := &Project{
		Tasks: []*Task{
			{EstimatedHours: 10},
			{EstimatedHours: 99, SubTasks: []*Task{{EstimatedHours: 5}}},
		},
		SubProjects: []*Project{
			{Tasks: []*Task{{EstimatedHours: 3}}},
		},
	}
	assert.Equal(t, 18.0, p.EstimatedHours())
}

func TestProject_ActualHours_FoldsTasksAndSubProjects(t *testing.T) {
	p := &Project{
		Tasks: []*Task{
			{ActualHours: 1, SubTasks: []*Task{{ActualHours: 2}}},
		},
		SubProjects: []*Project{
			{Tasks: []*Task{{ActualHours: 4}}},
		},
	}
	assert.Equal(t, 7.0, p.ActualHours())
}
