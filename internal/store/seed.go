// ABOUTME: Deterministic history seeding for development and demos.
// ABOUTME: Generates a fixed rotation of workouts with every 7th day rest.
package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/progression"
)

var seedCardio = []string{"Esteira", "Bicicleta", "Elíptico", "Remo", "Pular Corda"}

// SeedData replaces history and rest days with a deterministic
// simulation of the last days+1 calendar days. Offsets divisible by 7
// become rest days; the rest rotate through a push pair, a pull pair,
// and a cardio session. Every generated session carries the flat seed
// XP so two seeds of the same length always agree on totals.
func (s *Store) SeedData(days int) error {
	if days < 0 {
		return fmt.Errorf("invalid seed length %d", days)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	history := make([]models.WorkoutSession, 0, days)
	restDays := make(models.RestDays)

	for i := days; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)

		if i%7 == 0 {
			restDays[models.DayKey(date)] = struct{}{}
			continue
		}

		var exercises []models.ExerciseLog
		switch i % 3 {
		case 0:
			exercises = []models.ExerciseLog{
				seedStrength("Supino Reto (Barra)", models.GroupPeito, 40, 10),
				seedStrength("Tríceps Corda", models.GroupBracos, 15, 12),
			}
		case 1:
			exercises = []models.ExerciseLog{
				seedStrength("Puxada Alta", models.GroupCostas, 35, 12),
				seedStrength("Agachamento Livre", models.GroupPernas, 50, 10),
			}
		default:
			exercises = []models.ExerciseLog{{
				ExerciseID: uuid.New().String(),
				Name:       seedCardio[i%len(seedCardio)],
				Group:      models.GroupCardio,
				Sets:       []models.Set{models.NewCardioSet(5, 30)},
			}}
		}

		w := models.NewWorkoutSession(date, 3600, exercises, progression.SeedSessionXP)
		// Prepend keeps history most recent first as i counts down.
		history = append([]models.WorkoutSession{w}, history...)
	}

	totalXP := 0
	for _, w := range history {
		totalXP += w.XPEarned
	}

	s.state.History = history
	s.state.RestDays = restDays
	s.state.User.Name = "Giga Chad Pro"
	s.state.User.AccentColor = "#ea580c"
	s.state.User.TotalXP = totalXP
	s.state.User.Level = progression.Level(totalXP)
	s.state.User.LastActivityDate = &now
	s.recomputeStreak()

	s.logf("Seed de %d dias aplicado.", days)
	return s.persist()
}

func seedStrength(name string, group models.MuscleGroup, weight float64, reps int) models.ExerciseLog {
	return models.ExerciseLog{
		ExerciseID: uuid.New().String(),
		Name:       name,
		Group:      group,
		Sets:       []models.Set{models.NewStrengthSet(weight, reps)},
	}
}
