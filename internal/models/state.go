// ABOUTME: Persisted application state blob and the rest-day set.
// ABOUTME: Serializes as plain JSON; rest days round-trip as a sorted array.
package models

import (
	"encoding/json"
	"sort"
)

// StateVersion is stamped into persisted blobs. Blobs without a
// version (from before versioning) load as version 1.
const StateVersion = 1

// RestDays is the set of calendar days explicitly marked as
// intentional rest. Membership is binary per day.
type RestDays map[string]struct{}

// Has reports membership of a day.
func (r RestDays) Has(day string) bool {
	_, ok := r[day]
	return ok
}

// Toggle flips membership of a day and reports whether the day is
// marked after the call.
func (r RestDays) Toggle(day string) bool {
	if r.Has(day) {
		delete(r, day)
		return false
	}
	r[day] = struct{}{}
	return true
}

// Remove unmarks a day. Removing an absent day is a no-op.
func (r RestDays) Remove(day string) {
	delete(r, day)
}

// Days returns the marked days in ascending order.
func (r RestDays) Days() []string {
	out := make([]string, 0, len(r))
	for d := range r {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Clone returns a copy of the set.
func (r RestDays) Clone() RestDays {
	out := make(RestDays, len(r))
	for d := range r {
		out[d] = struct{}{}
	}
	return out
}

// MarshalJSON serializes the set as a sorted array of day strings.
func (r RestDays) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Days())
}

// UnmarshalJSON loads an array of day strings, deduplicating. The
// stored form is an array, so duplicates from older writers collapse
// back into set membership here.
func (r *RestDays) UnmarshalJSON(data []byte) error {
	var days []string
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	set := make(RestDays, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	*r = set
	return nil
}

// MarshalYAML serializes the set the same way as JSON, a sorted array.
func (r RestDays) MarshalYAML() (interface{}, error) {
	return r.Days(), nil
}

// State is the full persisted blob: profile, workout history, rest
// days, and templates. History is kept most-recent-first in memory;
// consumers must not rely on order beyond day partitioning.
type State struct {
	Version   int               `json:"version"`
	User      UserProfile       `json:"user"`
	History   []WorkoutSession  `json:"history"`
	RestDays  RestDays          `json:"rest_days"`
	Templates []WorkoutTemplate `json:"templates"`
	DevLog    []string          `json:"dev_log,omitempty"`
}

// DefaultState returns a factory-fresh state.
func DefaultState() *State {
	return &State{
		Version:  StateVersion,
		User:     DefaultProfile(),
		RestDays: make(RestDays),
	}
}

// Normalize repairs a freshly-loaded state: versionless blobs become
// version 1 and a nil rest-day set becomes empty.
func (s *State) Normalize() {
	if s.Version == 0 {
		s.Version = StateVersion
	}
	if s.RestDays == nil {
		s.RestDays = make(RestDays)
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	out := &State{
		Version:  s.Version,
		User:     s.User.Clone(),
		RestDays: s.RestDays.Clone(),
	}
	if s.History != nil {
		out.History = make([]WorkoutSession, len(s.History))
		for i, w := range s.History {
			out.History[i] = w.Clone()
		}
	}
	if s.Templates != nil {
		out.Templates = make([]WorkoutTemplate, len(s.Templates))
		for i, t := range s.Templates {
			out.Templates[i] = t.Clone()
		}
	}
	if s.DevLog != nil {
		out.DevLog = make([]string, len(s.DevLog))
		copy(out.DevLog, s.DevLog)
	}
	return out
}
