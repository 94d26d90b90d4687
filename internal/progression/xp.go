// ABOUTME: XP accumulation and level derivation rules.
// ABOUTME: Runs on workout completion; level is always derived from total XP.
package progression

import "github.com/JaumCarvalho/iron-tracker/internal/models"

const (
	// SessionBaselineXP is awarded once per finished session that has
	// at least one completed set.
	SessionBaselineXP = 50

	// StrengthSetXP is awarded per completed strength set.
	StrengthSetXP = 15

	// CardioDistanceXP and CardioMinuteXP price a completed cardio set
	// at distance*5 + minutes*2, with no flat per-set bonus.
	CardioDistanceXP = 5
	CardioMinuteXP   = 2

	// XPPerLevel is the size of one level.
	XPPerLevel = 1000

	// SeedSessionXP is the flat award the bulk seeder stamps on every
	// generated session.
	SeedSessionXP = 150
)

// XPForSession computes the XP a finished workout earns. Sessions with
// no completed set earn nothing (they are rejected upstream anyway).
func XPForSession(exercises []models.ExerciseLog) int {
	xp := 0
	completed := 0
	for _, ex := range exercises {
		for _, s := range ex.Sets {
			if !s.Completed {
				continue
			}
			completed++
			if s.Cardio != nil {
				xp += int(s.Cardio.Distance*CardioDistanceXP + s.Cardio.Minutes()*CardioMinuteXP)
			} else {
				xp += StrengthSetXP
			}
		}
	}
	if completed == 0 {
		return 0
	}
	return xp + SessionBaselineXP
}

// Level derives the level from total XP: floor(totalXP/1000)+1.
func Level(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/XPPerLevel + 1
}

// LevelProgress returns XP accumulated inside the current level and
// the XP still needed to reach the next one.
func LevelProgress(totalXP int) (current, needed int) {
	if totalXP < 0 {
		totalXP = 0
	}
	current = totalXP % XPPerLevel
	return current, XPPerLevel - current
}
