// ABOUTME: Backend interface for durable state persistence.
// ABOUTME: Any key-value capable store works; badger and sqlite ship built in.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/session"
)

var (
	// ErrCorruptState marks a persisted blob that failed to parse.
	// Load returns a fresh default state alongside it so callers can
	// warn and continue instead of crashing.
	ErrCorruptState = errors.New("corrupted state blob")

	// ErrNoSession means no active workout is persisted.
	ErrNoSession = errors.New("no active session")
)

// Backend persists the application state blob and the in-progress
// workout. Load is called once on start; Save after every mutation.
type Backend interface {
	Load() (*models.State, error)
	Save(*models.State) error

	LoadSession() (*session.ActiveWorkout, error)
	SaveSession(*session.ActiveWorkout) error
	ClearSession() error

	Close() error
}

const (
	stateKey   = "state"
	sessionKey = "session"
)

// decodeState parses a persisted blob, falling back to a default
// state (with ErrCorruptState) on malformed input.
func decodeState(data []byte) (*models.State, error) {
	var st models.State
	if err := json.Unmarshal(data, &st); err != nil {
		return models.DefaultState(), fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	st.Normalize()
	return &st, nil
}

func encodeState(st *models.State) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

func encodeSession(w *session.ActiveWorkout) ([]byte, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return data, nil
}

func decodeSession(data []byte) (*session.ActiveWorkout, error) {
	var w session.ActiveWorkout
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &w, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "iron")
}
