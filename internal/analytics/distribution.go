// ABOUTME: Muscle-group set distribution over a time window.
// ABOUTME: Cardio is excluded; shares are proportional to completed sets.
package analytics

import (
	"sort"
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

// GroupShare is one muscle group's slice of the distribution.
type GroupShare struct {
	Group models.MuscleGroup `json:"group"`
	Sets  int                `json:"sets"`
	Share float64            `json:"share"` // 0..1
}

// Distribution is the per-group completed-set breakdown for a window.
type Distribution struct {
	Groups    []GroupShare                          `json:"groups"`
	TotalSets int                                   `json:"total_sets"`
	Exercises map[models.MuscleGroup]map[string]int `json:"exercises"` // group -> exercise name -> completed sets
}

// MuscleDistribution sums completed sets per non-cardio muscle group
// over the window, sorted most-trained first. Ties sort by group name
// to keep identical inputs producing identical output.
func MuscleDistribution(history []models.WorkoutSession, rng TimeRange, anchor time.Time) Distribution {
	out := Distribution{
		Exercises: make(map[models.MuscleGroup]map[string]int),
	}
	counts := make(map[models.MuscleGroup]int)

	for _, w := range Window(history, rng, anchor) {
		for _, ex := range w.Exercises {
			if ex.Group.IsCardio() {
				continue
			}
			group := ex.Group
			if group == "" {
				group = models.GroupOutros
			}
			sets := ex.CompletedSets()
			if sets == 0 {
				continue
			}
			counts[group] += sets
			out.TotalSets += sets
			if out.Exercises[group] == nil {
				out.Exercises[group] = make(map[string]int)
			}
			out.Exercises[group][ex.Name] += sets
		}
	}

	for group, sets := range counts {
		share := 0.0
		if out.TotalSets > 0 {
			share = float64(sets) / float64(out.TotalSets)
		}
		out.Groups = append(out.Groups, GroupShare{Group: group, Sets: sets, Share: share})
	}
	sort.Slice(out.Groups, func(i, j int) bool {
		if out.Groups[i].Sets != out.Groups[j].Sets {
			return out.Groups[i].Sets > out.Groups[j].Sets
		}
		return out.Groups[i].Group < out.Groups[j].Group
	})
	return out
}
