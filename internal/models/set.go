// ABOUTME: Muscle-group enumeration and the two-variant Set model.
// ABOUTME: A set is strength or cardio, decided by its exercise's group.
package models

// MuscleGroup tags an exercise with its target muscle group. The
// Cardio tag is distinguished: sets under it carry distance and
// duration instead of weight and reps.
type MuscleGroup string

const (
	GroupPeito   MuscleGroup = "Peito"
	GroupCostas  MuscleGroup = "Costas"
	GroupPernas  MuscleGroup = "Pernas"
	GroupOmbros  MuscleGroup = "Ombros"
	GroupBracos  MuscleGroup = "Braços"
	GroupAbdomen MuscleGroup = "Abdômen"
	GroupCardio  MuscleGroup = "Cardio"
	GroupOutros  MuscleGroup = "Outros"
)

// AllGroups lists every valid group in display order.
var AllGroups = []MuscleGroup{
	GroupPeito, GroupCostas, GroupPernas, GroupOmbros,
	GroupBracos, GroupAbdomen, GroupCardio, GroupOutros,
}

// IsValidGroup reports whether g is a known group tag.
func IsValidGroup(g MuscleGroup) bool {
	for _, known := range AllGroups {
		if g == known {
			return true
		}
	}
	return false
}

// IsCardio reports whether the group selects the cardio set variant.
func (g MuscleGroup) IsCardio() bool {
	return g == GroupCardio
}

// StrengthSet carries the weight-and-reps variant of a set.
type StrengthSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// CardioSet carries the distance-and-duration variant. Duration is
// tracked automatically by a running timer; ManualDuration is the
// user-entered fallback when no timer ran.
type CardioSet struct {
	Distance       float64 `json:"distance"`
	Duration       float64 `json:"duration,omitempty"`
	ManualDuration float64 `json:"manual_duration,omitempty"`
}

// Minutes returns the effective duration: the tracked value when
// present, the manual entry otherwise.
func (c CardioSet) Minutes() float64 {
	if c.Duration > 0 {
		return c.Duration
	}
	return c.ManualDuration
}

// Set is one performed set. Exactly one variant pointer is non-nil,
// matching the parent exercise's group.
type Set struct {
	Completed bool         `json:"completed"`
	Strength  *StrengthSet `json:"strength,omitempty"`
	Cardio    *CardioSet   `json:"cardio,omitempty"`
}

// NewStrengthSet returns a completed strength set.
func NewStrengthSet(weight float64, reps int) Set {
	return Set{Completed: true, Strength: &StrengthSet{Weight: weight, Reps: reps}}
}

// NewCardioSet returns a completed cardio set with a tracked duration.
func NewCardioSet(distance, minutes float64) Set {
	return Set{Completed: true, Cardio: &CardioSet{Distance: distance, Duration: minutes}}
}

// IsCardio reports whether the set carries the cardio variant.
func (s Set) IsCardio() bool {
	return s.Cardio != nil
}

// Weight returns the strength weight, zero for cardio sets.
func (s Set) Weight() float64 {
	if s.Strength == nil {
		return 0
	}
	return s.Strength.Weight
}

// Volume returns weight times reps, zero for cardio sets.
func (s Set) Volume() float64 {
	if s.Strength == nil {
		return 0
	}
	return s.Strength.Weight * float64(s.Strength.Reps)
}

// Clone returns a copy with fresh variant pointers.
func (s Set) Clone() Set {
	out := s
	if s.Strength != nil {
		v := *s.Strength
		out.Strength = &v
	}
	if s.Cardio != nil {
		v := *s.Cardio
		out.Cardio = &v
	}
	return out
}
