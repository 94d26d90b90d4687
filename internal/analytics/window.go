// ABOUTME: Time-window filtering over history snapshots.
// ABOUTME: All aggregation here is pure: same inputs, same outputs, no caching.
package analytics

import (
	"fmt"
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

// TimeRange selects how far back from the anchor a window reaches.
type TimeRange string

const (
	Range7D  TimeRange = "7d"
	Range30D TimeRange = "30d"
	Range1Y  TimeRange = "1y"
	RangeAll TimeRange = "all"
)

// ParseRange validates a range tag.
func ParseRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case Range7D, Range30D, Range1Y, RangeAll:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("unknown time range: %q (use 7d, 30d, 1y, or all)", s)
}

// startDay returns the earliest calendar day inside the window, or ""
// for an unbounded range. Day strings compare lexicographically in
// date order, which keeps the filter a string comparison.
func (r TimeRange) startDay(anchor time.Time) string {
	switch r {
	case Range7D:
		return models.DayKey(anchor.AddDate(0, 0, -7))
	case Range30D:
		return models.DayKey(anchor.AddDate(0, 0, -30))
	case Range1Y:
		return models.DayKey(anchor.AddDate(-1, 0, 0))
	default:
		return ""
	}
}

// Window returns the sessions whose calendar day falls within
// [anchor-range, anchor], inclusive on both ends. Input order is
// preserved; the input slice is never mutated.
func Window(history []models.WorkoutSession, rng TimeRange, anchor time.Time) []models.WorkoutSession {
	from := rng.startDay(anchor)
	to := models.DayKey(anchor)

	var out []models.WorkoutSession
	for _, w := range history {
		d := w.Day()
		if d >= from && d <= to {
			out = append(out, w)
		}
	}
	return out
}

// TotalSets counts every set across a history snapshot, completed or
// not. Dashboard display only.
func TotalSets(history []models.WorkoutSession) int {
	n := 0
	for _, w := range history {
		n += w.TotalSets()
	}
	return n
}

// SessionsOn returns the sessions logged on one calendar day.
func SessionsOn(history []models.WorkoutSession, day string) []models.WorkoutSession {
	var out []models.WorkoutSession
	for _, w := range history {
		if w.Day() == day {
			out = append(out, w)
		}
	}
	return out
}
