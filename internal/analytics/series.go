// ABOUTME: Per-exercise progression series and global stats.
// ABOUTME: Strength tracks session max weight; cardio tracks distance/time totals.
package analytics

import (
	"sort"
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

// LogsPerPage is the page size for session-log pagination.
const LogsPerPage = 15

// SeriesPoint is one session's aggregate for a tracked exercise, in
// chronological order within a Series.
type SeriesPoint struct {
	Day       string  `json:"day"`
	MaxWeight float64 `json:"max_weight,omitempty"`
	Volume    float64 `json:"volume,omitempty"`
	Distance  float64 `json:"distance,omitempty"`
	Minutes   float64 `json:"minutes,omitempty"`
	Anchor    bool    `json:"anchor,omitempty"`
}

// SessionLog is one session's raw sets for a tracked exercise, used
// by the paginated history listing (most recent first).
type SessionLog struct {
	SessionID string       `json:"session_id"`
	Date      time.Time    `json:"date"`
	Day       string       `json:"day"`
	MaxWeight float64      `json:"max_weight"`
	Sets      []models.Set `json:"sets"`
	Anchor    bool         `json:"anchor,omitempty"`
}

// ExerciseStats are all-time aggregates up to the anchor, independent
// of the selected window.
type ExerciseStats struct {
	PR            float64 `json:"pr"`         // max single-set weight (kg) or distance (km) for cardio
	MaxVolume     float64 `json:"max_volume"` // max single-session volume
	TotalSets     int     `json:"total_sets"` // completed sets
	Sessions      int     `json:"sessions"`
	TotalDistance float64 `json:"total_distance,omitempty"`
	TotalMinutes  float64 `json:"total_minutes,omitempty"`
}

// Series is the full per-exercise report.
type Series struct {
	Name   string             `json:"name"`
	Group  models.MuscleGroup `json:"group"`
	Points []SeriesPoint      `json:"points"`
	Logs   []SessionLog       `json:"logs"`
	Stats  ExerciseStats      `json:"stats"`
}

// ExerciseSeries builds the progression report for one exercise name.
// Sessions after the anchor day are ignored entirely; stats cover all
// remaining history while points and logs are limited to the window.
// The session matching the anchor day is flagged for display.
func ExerciseSeries(history []models.WorkoutSession, name string, rng TimeRange, anchor time.Time) Series {
	out := Series{Name: name, Group: models.GroupOutros}
	anchorDay := models.DayKey(anchor)
	fromDay := rng.startDay(anchor)

	type entry struct {
		log   SessionLog
		point SeriesPoint
	}
	var entries []entry

	for _, w := range history {
		day := w.Day()
		if day > anchorDay {
			continue
		}
		for _, ex := range w.Exercises {
			if ex.Name != name {
				continue
			}
			out.Group = ex.Group

			var maxWeight, volume, distance, minutes float64
			completed := 0
			for _, s := range ex.Sets {
				if !s.Completed {
					continue
				}
				completed++
				if s.Cardio != nil {
					distance += s.Cardio.Distance
					minutes += s.Cardio.Minutes()
				} else {
					if s.Weight() > maxWeight {
						maxWeight = s.Weight()
					}
					volume += s.Volume()
				}
			}

			out.Stats.Sessions++
			out.Stats.TotalSets += completed
			out.Stats.TotalDistance += distance
			out.Stats.TotalMinutes += minutes
			if ex.Group.IsCardio() {
				if distance > out.Stats.PR {
					out.Stats.PR = distance
				}
			} else if maxWeight > out.Stats.PR {
				out.Stats.PR = maxWeight
			}
			if volume > out.Stats.MaxVolume {
				out.Stats.MaxVolume = volume
			}

			if day >= fromDay {
				sets := make([]models.Set, len(ex.Sets))
				for i, s := range ex.Sets {
					sets[i] = s.Clone()
				}
				entries = append(entries, entry{
					log: SessionLog{
						SessionID: w.ID,
						Date:      w.Date,
						Day:       day,
						MaxWeight: maxWeight,
						Sets:      sets,
						Anchor:    day == anchorDay,
					},
					point: SeriesPoint{
						Day:       day,
						MaxWeight: maxWeight,
						Volume:    volume,
						Distance:  distance,
						Minutes:   minutes,
						Anchor:    day == anchorDay,
					},
				})
			}
			break // one log per session per exercise name
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].log.Date.Before(entries[j].log.Date)
	})
	for _, e := range entries {
		out.Points = append(out.Points, e.point)
	}
	for i := len(entries) - 1; i >= 0; i-- {
		out.Logs = append(out.Logs, entries[i].log)
	}
	return out
}

// Paginate slices session logs into 1-based pages of LogsPerPage and
// reports whether more pages remain.
func Paginate(logs []SessionLog, page int) ([]SessionLog, bool) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * LogsPerPage
	if start >= len(logs) {
		return nil, false
	}
	end := start + LogsPerPage
	if end > len(logs) {
		end = len(logs)
	}
	return logs[start:end], end < len(logs)
}
