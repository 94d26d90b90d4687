// ABOUTME: SQLite-backed persistence, the alternate backend.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/session"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS blobs (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SQLiteStore persists the state blob in a single-table SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) get(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLiteStore) put(key string, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(data), time.Now().Format(time.RFC3339))
	return err
}

// Load reads the state blob, defaulting on first run and falling back
// with ErrCorruptState on a malformed blob.
func (s *SQLiteStore) Load() (*models.State, error) {
	data, err := s.get(stateKey)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return decodeState(data)
}

// Save writes the full state blob.
func (s *SQLiteStore) Save(st *models.State) error {
	data, err := encodeState(st)
	if err != nil {
		return err
	}
	if err := s.put(stateKey, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// LoadSession reads the persisted active workout.
func (s *SQLiteStore) LoadSession() (*session.ActiveWorkout, error) {
	data, err := s.get(sessionKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decodeSession(data)
}

// SaveSession writes the active workout.
func (s *SQLiteStore) SaveSession(w *session.ActiveWorkout) error {
	data, err := encodeSession(w)
	if err != nil {
		return err
	}
	if err := s.put(sessionKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearSession discards the active workout.
func (s *SQLiteStore) ClearSession() error {
	_, err := s.db.Exec("DELETE FROM blobs WHERE key = ?", sessionKey)
	return err
}
