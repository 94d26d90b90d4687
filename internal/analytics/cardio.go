// ABOUTME: Cardio distance and time totals per activity name.
// ABOUTME: Only completed sets under the Cardio group contribute.
package analytics

import (
	"sort"
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

// ActivityTotals aggregates one cardio activity over a window.
type ActivityTotals struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"` // km
	Minutes  float64 `json:"minutes"`
	Sets     int     `json:"sets"`
}

// CardioSummary is the full cardio breakdown plus grand totals.
type CardioSummary struct {
	Activities    []ActivityTotals `json:"activities"`
	TotalDistance float64          `json:"total_distance"`
	TotalMinutes  float64          `json:"total_minutes"`
	TotalSets     int              `json:"total_sets"`
}

// CardioBreakdown sums distance and effective minutes per cardio
// activity name over the window, most-distance first (name-ordered on
// ties for deterministic output).
func CardioBreakdown(history []models.WorkoutSession, rng TimeRange, anchor time.Time) CardioSummary {
	var out CardioSummary
	byName := make(map[string]*ActivityTotals)

	for _, w := range Window(history, rng, anchor) {
		for _, ex := range w.Exercises {
			if !ex.Group.IsCardio() {
				continue
			}
			for _, s := range ex.Sets {
				if !s.Completed || s.Cardio == nil {
					continue
				}
				a := byName[ex.Name]
				if a == nil {
					a = &ActivityTotals{Name: ex.Name}
					byName[ex.Name] = a
				}
				a.Distance += s.Cardio.Distance
				a.Minutes += s.Cardio.Minutes()
				a.Sets++
				out.TotalDistance += s.Cardio.Distance
				out.TotalMinutes += s.Cardio.Minutes()
				out.TotalSets++
			}
		}
	}

	for _, a := range byName {
		out.Activities = append(out.Activities, *a)
	}
	sort.Slice(out.Activities, func(i, j int) bool {
		if out.Activities[i].Distance != out.Activities[j].Distance {
			return out.Activities[i].Distance > out.Activities[j].Distance
		}
		return out.Activities[i].Name < out.Activities[j].Name
	})
	return out
}
