package formatter

import (
	"testing"
	"time"

	"github.com/jensotto/projektor/internal/hierarchy"
	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8h", FormatHours(8))
	assert.Equal(t, "2.5h", FormatHours(2.5))
	assert.Equal(t, "0h", FormatHours(0))
}

func TestFormatScheduleEmpty(t *testing.T) {
	assert.Contains(t, FormatSchedule(hierarchy.Schedule{}), "No scheduled hours")
}

func TestFormatScheduleTotal(t *testing.T) {
	mon := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	s := hierarchy.Schedule{
		mon:                  2,
		mon.AddDate(0, 0, 1): 3.5,
	}
	out := FormatSchedule(s)
	assert.Contains(t, out, "2025-12-01")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "5.5h")
}
