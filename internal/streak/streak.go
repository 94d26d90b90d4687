// ABOUTME: Pure streak engine: walks backward from today counting workout days.
// ABOUTME: Rest days freeze the walk; the first unmarked day ends it.
package streak

import (
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

// MaxLookback bounds the walk-back at one year. Streaks longer than
// this recompute as 365.
const MaxLookback = 365

// Compute returns the consecutive-activity streak ending at today.
//
// The walk starts at today's calendar day. A day with no workout and
// no rest marking does not count against an in-progress today, so the
// cursor steps back once before the walk when today is blank. From
// there, each workout day increments the streak, each rest day is
// skipped without incrementing, and the first day with neither stops
// the count.
//
// Compute is a full recompute from {history, restDays}; it must be
// invoked after every mutation that touches either. The caller
// supplies today so backdated scenarios stay deterministic.
func Compute(history []models.WorkoutSession, restDays models.RestDays, today time.Time) int {
	workoutDays := make(map[string]struct{}, len(history))
	for _, w := range history {
		workoutDays[w.Day()] = struct{}{}
	}

	cursor := midnight(today)

	day := models.DayKey(cursor)
	if _, ok := workoutDays[day]; !ok && !restDays.Has(day) {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for i := 0; i < MaxLookback; i++ {
		day := models.DayKey(cursor)
		if _, ok := workoutDays[day]; ok {
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		} else if restDays.Has(day) {
			cursor = cursor.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	return streak
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
