// ABOUTME: Data export in JSON and YAML for backup and portability.
// ABOUTME: Wraps the full state in a versioned envelope with metadata.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

// ExportData is the envelope written by the export command.
type ExportData struct {
	Version    int           `json:"version" yaml:"version"`
	ExportedAt time.Time     `json:"exported_at" yaml:"exported_at"`
	Tool       string        `json:"tool" yaml:"tool"`
	State      *models.State `json:"state" yaml:"state"`
}

func newExport(st *models.State, now time.Time) *ExportData {
	return &ExportData{
		Version:    models.StateVersion,
		ExportedAt: now,
		Tool:       "iron-tracker",
		State:      st,
	}
}

// ExportJSON renders the state as indented JSON.
func ExportJSON(st *models.State, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(newExport(st, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ExportYAML renders the state as YAML.
func ExportYAML(st *models.State, now time.Time) ([]byte, error) {
	data, err := yaml.Marshal(newExport(st, now))
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}
