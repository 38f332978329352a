package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"full work week", date(2025, 12, 1), date(2025, 12, 5), 5},
		{"weekend only", date(2025, 12, 6), date(2025, 12, 7), 0},
		{"spanning a weekend", date(2025, 12, 5), date(2025, 12, 8), 2},
		{"single weekday", date(2025, 12, 3), date(2025, 12, 3), 1},
		{"single saturday", date(2025, 12, 6), date(2025, 12, 6), 0},
		{"end before start", date(2025, 12, 5), date(2025, 12, 1), 0},
		{"two full weeks", date(2025, 12, 1), date(2025, 12, 14), 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BusinessDaysBetween(tc.start, tc.end))
		})
	}
}

func TestDaysBetween_Inclusive(t *testing.T) {
	assert.Equal(t, 1, DaysBetween(date(2025, 12, 1), date(2025, 12, 1)))
	assert.Equal(t, 7, DaysBetween(date(2025, 12, 1), date(2025, 12, 7)))
	assert.Equal(t, 0, DaysBetween(date(2025, 12, 7), date(2025, 12, 1)))
}

func TestDay_NormalizesToMidnightUTC(t *testing.T) {
	noisy := time.Date(2025, 12, 3, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, date(2025, 12, 3), Day(noisy))
}
