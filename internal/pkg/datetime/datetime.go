package datetime

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar-day key format. Lexicographic order
	// equals chronological order, which the listing filters rely on.
	DateLayout = "2006-01-02"

	// ClockLayout formats wall-clock times for user-facing messages
	ClockLayout = "15:04:05"
)

// Today returns the calendar-day key for the current instant, local time.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Day truncates an instant to its calendar-day key, local time.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// Clock formats an instant as a wall-clock time for messages.
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

// HoursBetween returns the hours worked between a check-in and an optional
// check-out, formatted to two decimals. An absent check-out yields "0".
func HoursBetween(start time.Time, end *time.Time) string {
	if end == nil {
		return "0"
	}
	return fmt.Sprintf("%.2f", end.Sub(start).Hours())
}
