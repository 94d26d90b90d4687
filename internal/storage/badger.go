// ABOUTME: Badger-backed persistence, the default backend.
// ABOUTME: Stores the state blob and active session as JSON values in KV.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/session"
)

// BadgerStore persists state in a badger database directory.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates a badger database at the given directory.
func OpenBadger(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(filepath.Dir(dir), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the database.
func (b *BadgerStore) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *BadgerStore) get(key string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	return data, err
}

func (b *BadgerStore) put(key string, data []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Load reads the state blob. A missing key is a fresh install; a
// malformed blob yields a default state with ErrCorruptState.
func (b *BadgerStore) Load() (*models.State, error) {
	data, err := b.get(stateKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.DefaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return decodeState(data)
}

// Save writes the full state blob.
func (b *BadgerStore) Save(st *models.State) error {
	data, err := encodeState(st)
	if err != nil {
		return err
	}
	if err := b.put(stateKey, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// LoadSession reads the persisted active workout.
func (b *BadgerStore) LoadSession() (*session.ActiveWorkout, error) {
	data, err := b.get(sessionKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decodeSession(data)
}

// SaveSession writes the active workout.
func (b *BadgerStore) SaveSession(w *session.ActiveWorkout) error {
	data, err := encodeSession(w)
	if err != nil {
		return err
	}
	if err := b.put(sessionKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ClearSession discards the active workout. Clearing an absent
// session is a no-op.
func (b *BadgerStore) ClearSession() error {
	return b.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(sessionKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}
