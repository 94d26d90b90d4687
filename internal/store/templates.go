// ABOUTME: Template manager: CRUD over reusable workout plans.
// ABOUTME: Templates are independent of streak and XP bookkeeping.
package store

import (
	"github.com/google/uuid"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

// SaveTemplate upserts a template by ID, assigning a fresh UUID when
// none is set. The stored copy is returned.
func (s *Store) SaveTemplate(t models.WorkoutTemplate) (models.WorkoutTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	replaced := false
	for i, existing := range s.state.Templates {
		if existing.ID == t.ID {
			s.state.Templates[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.Templates = append(s.state.Templates, t)
	}

	s.logf("Template salvo: %s.", t.Name)
	if err := s.persist(); err != nil {
		return models.WorkoutTemplate{}, err
	}
	return t.Clone(), nil
}

// Template looks up a template by ID.
func (s *Store) Template(id string) (models.WorkoutTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.state.Templates {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return models.WorkoutTemplate{}, ErrTemplateNotFound
}

// DeleteTemplate removes a template by ID.
func (s *Store) DeleteTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.Templates {
		if t.ID == id {
			s.state.Templates = append(s.state.Templates[:i], s.state.Templates[i+1:]...)
			s.logf("Template removido: %s.", t.Name)
			return s.persist()
		}
	}
	return ErrTemplateNotFound
}

// MarkTemplateUsed stamps a template's last-used time with now.
func (s *Store) MarkTemplateUsed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Templates {
		if s.state.Templates[i].ID == id {
			now := s.clock()
			s.state.Templates[i].LastUsed = &now
			return s.persist()
		}
	}
	return ErrTemplateNotFound
}
