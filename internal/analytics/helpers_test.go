// ABOUTME: Shared fixtures for analytics tests.
// ABOUTME: Builds synthetic histories with fixed dates.
package analytics

import (
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func strengthSession(id, date, name string, group models.MuscleGroup, sets ...models.Set) models.WorkoutSession {
	return models.WorkoutSession{
		ID:   id,
		Date: day(date).Add(7 * time.Hour),
		Exercises: []models.ExerciseLog{{
			Name:  name,
			Group: group,
			Sets:  sets,
		}},
	}
}

func cardioSession(id, date, name string, distance, minutes float64) models.WorkoutSession {
	return models.WorkoutSession{
		ID:   id,
		Date: day(date).Add(7 * time.Hour),
		Exercises: []models.ExerciseLog{{
			Name:  name,
			Group: models.GroupCardio,
			Sets:  []models.Set{models.NewCardioSet(distance, minutes)},
		}},
	}
}
