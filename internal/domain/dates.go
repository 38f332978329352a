package domain

import "time"

// Day truncates t to midnight UTC so dates compare and hash cleanly
// as map keys.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay reports whether t falls on a weekday. There is no
// holiday calendar; only Saturday and Sunday are excluded.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// DaysBetween counts calendar days from start to end, both inclusive.
// Returns 0 when end precedes start.
func DaysBetween(start, end time.Time) int {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// BusinessDaysBetween counts weekdays from start to end, both inclusive.
func BusinessDaysBetween(start, end time.Time) int {
	days := 0
	for cur := Day(start); !cur.After(Day(end)); cur = cur.AddDate(0, 0, 1) {
		if IsBusinessDay(cur) {
			days++
		}
	}
	return days
}
