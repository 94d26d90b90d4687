// ABOUTME: Tests for the persistence backends and export formats.
// ABOUTME: Exercises round-trips, first-run defaults, and corrupt-blob recovery.
package storage

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/session"
)

func openBadgerT(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := OpenBadger(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func openSQLiteT(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "iron.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleState(t *testing.T) *models.State {
	t.Helper()
	st := models.DefaultState()
	st.User.Name = "Ana"
	st.User.TotalXP = 1200
	st.User.Level = 2
	st.RestDays.Toggle("2026-08-10")
	st.RestDays.Toggle("2026-08-17")

	exercises := []models.ExerciseLog{
		{
			Name:  "Supino Reto (Barra)",
			Group: models.GroupPeito,
			Sets: []models.Set{
				models.NewStrengthSet(40, 10),
				models.NewStrengthSet(40, 10),
				models.NewStrengthSet(42.5, 8),
			},
		},
	}
	w := models.NewWorkoutSession(time.Date(2026, 8, 20, 18, 0, 0, 0, time.Local), 3600, exercises, 95)
	st.History = []models.WorkoutSession{w}
	return st
}

func TestBadgerFirstRunDefaults(t *testing.T) {
	store := openBadgerT(t)

	st, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st.Version != models.StateVersion {
		t.Errorf("Version = %d, want %d", st.Version, models.StateVersion)
	}
	if st.User.Name != "Usuário" || st.User.Level != 1 {
		t.Errorf("unexpected default profile: %+v", st.User)
	}
	if len(st.History) != 0 || len(st.RestDays) != 0 {
		t.Errorf("default state should be empty, got %d sessions, %d rest days",
			len(st.History), len(st.RestDays))
	}
}

func TestBadgerRoundTrip(t *testing.T) {
	store := openBadgerT(t)
	want := sampleState(t)

	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.User.Name != "Ana" || got.User.TotalXP != 1200 {
		t.Errorf("profile did not survive round-trip: %+v", got.User)
	}
	if len(got.History) != 1 {
		t.Fatalf("History length = %d, want 1", len(got.History))
	}
	w := got.History[0]
	if w.ID != want.History[0].ID {
		t.Errorf("session ID = %q, want %q", w.ID, want.History[0].ID)
	}
	if w.Exercises[0].Sets[2].Strength.Weight != 42.5 {
		t.Errorf("set weight = %v, want 42.5", w.Exercises[0].Sets[2].Strength.Weight)
	}
	if !got.RestDays.Has("2026-08-10") || !got.RestDays.Has("2026-08-17") {
		t.Errorf("rest days did not survive round-trip: %v", got.RestDays.Days())
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := openSQLiteT(t)
	want := sampleState(t)

	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.History) != 1 || got.History[0].XPEarned != 95 {
		t.Errorf("history did not survive round-trip: %+v", got.History)
	}
	if got.User.Level != 2 {
		t.Errorf("Level = %d, want 2", got.User.Level)
	}
}

func TestSQLiteFirstRunDefaults(t *testing.T) {
	store := openSQLiteT(t)

	st, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st.User.Level != 1 || len(st.History) != 0 {
		t.Errorf("unexpected first-run state: %+v", st)
	}
}

func TestDecodeStateCorrupt(t *testing.T) {
	st, err := decodeState([]byte("{not json"))
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("decodeState error = %v, want ErrCorruptState", err)
	}
	if st == nil {
		t.Fatal("decodeState should still return a usable default state")
	}
	if st.User.Level != 1 {
		t.Errorf("fallback state Level = %d, want 1", st.User.Level)
	}
}

func TestDecodeStateVersionless(t *testing.T) {
	blob := []byte(`{"user":{"name":"Ana","level":3,"total_xp":2500},"history":[],"rest_days":["2026-08-10","2026-08-10"]}`)
	st, err := decodeState(blob)
	if err != nil {
		t.Fatalf("decodeState() error = %v", err)
	}
	if st.Version != models.StateVersion {
		t.Errorf("Version = %d, want %d after normalization", st.Version, models.StateVersion)
	}
	if len(st.RestDays) != 1 {
		t.Errorf("duplicate rest days should collapse, got %v", st.RestDays.Days())
	}
	if st.User.Level != 3 {
		t.Errorf("Level = %d, want 3", st.User.Level)
	}
}

func TestSessionPersistence(t *testing.T) {
	for name, open := range map[string]func(t *testing.T) Backend{
		"badger": func(t *testing.T) Backend { return openBadgerT(t) },
		"sqlite": func(t *testing.T) Backend { return openSQLiteT(t) },
	} {
		t.Run(name, func(t *testing.T) {
			store := open(t)

			if _, err := store.LoadSession(); !errors.Is(err, ErrNoSession) {
				t.Fatalf("LoadSession() on empty store error = %v, want ErrNoSession", err)
			}

			w := session.Start(time.Date(2026, 8, 20, 18, 0, 0, 0, time.Local))
			w.AddExercise("Supino Reto (Barra)", models.GroupPeito, 3)
			if err := w.CompleteStrengthSet(0, 0, 40, 10, w.StartedAt.Add(2*time.Minute)); err != nil {
				t.Fatalf("CompleteStrengthSet() error = %v", err)
			}

			if err := store.SaveSession(w); err != nil {
				t.Fatalf("SaveSession() error = %v", err)
			}
			got, err := store.LoadSession()
			if err != nil {
				t.Fatalf("LoadSession() error = %v", err)
			}
			if got.CompletedSets() != 1 {
				t.Errorf("CompletedSets() = %d, want 1", got.CompletedSets())
			}
			if got.Exercises[0].Name != "Supino Reto (Barra)" {
				t.Errorf("exercise name = %q", got.Exercises[0].Name)
			}

			if err := store.ClearSession(); err != nil {
				t.Fatalf("ClearSession() error = %v", err)
			}
			if _, err := store.LoadSession(); !errors.Is(err, ErrNoSession) {
				t.Errorf("LoadSession() after clear error = %v, want ErrNoSession", err)
			}
			if err := store.ClearSession(); err != nil {
				t.Errorf("ClearSession() on empty store error = %v", err)
			}
		})
	}
}

func TestExportJSON(t *testing.T) {
	st := sampleState(t)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	data, err := ExportJSON(st, now)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	var ex ExportData
	if err := json.Unmarshal(data, &ex); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if ex.Tool != "iron-tracker" || ex.Version != models.StateVersion {
		t.Errorf("envelope = %+v", ex)
	}
	if !ex.ExportedAt.Equal(now) {
		t.Errorf("ExportedAt = %v, want %v", ex.ExportedAt, now)
	}
	if ex.State.User.Name != "Ana" {
		t.Errorf("state name = %q, want Ana", ex.State.User.Name)
	}
}

func TestExportYAML(t *testing.T) {
	st := sampleState(t)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	data, err := ExportYAML(st, now)
	if err != nil {
		t.Fatalf("ExportYAML() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"tool: iron-tracker", "Ana", "2026-08-10", "2026-08-17"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML export missing %q:\n%s", want, out)
		}
	}
}

func TestDataDirFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/test")
	if got := DataDir(); got != "/home/test/.local/share/iron" {
		t.Errorf("DataDir() = %q", got)
	}

	t.Setenv("XDG_DATA_HOME", "/custom/data")
	if got := DataDir(); got != "/custom/data/iron" {
		t.Errorf("DataDir() with XDG = %q", got)
	}
}
