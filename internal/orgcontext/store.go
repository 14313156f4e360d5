// Package orgcontext holds the tenant the current session is scoped to.
// The value is owned independently of the session: global admins change it
// repeatedly within one login, non-admins have it fixed by the service.
package orgcontext

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/openpos/poscon/internal/storage"
)

const keySelectedOrganizer = "selected_organizer_id"

// Store is the organization context: the selected organizer id, written
// through to durable storage on every mutation. It performs no validation
// that the id refers to an accessible tenant; only ids the authentication
// service has already approved are ever written here.
type Store struct {
	kv       storage.KV
	selected string
}

// New creates a context store backed by kv and restores any persisted
// selection.
func New(kv storage.KV) (*Store, error) {
	data, ok, err := kv.Get(keySelectedOrganizer)
	if err != nil {
		return nil, fmt.Errorf("failed to read selected organizer: %w", err)
	}

	s := &Store{kv: kv}
	if ok {
		s.selected = string(data)
		log.Debug().Str("organizerID", s.selected).Msg("organizer selection restored")
	}

	return s, nil
}

// SelectedOrganizer returns the selected organizer id, or the empty string
// when none is selected.
func (s *Store) SelectedOrganizer() string {
	return s.selected
}

// SetSelectedOrganizer stores id as the current tenant scope. An empty id
// clears the selection.
func (s *Store) SetSelectedOrganizer(id string) error {
	if id == "" {
		return s.ClearSelectedOrganizer()
	}

	if err := s.kv.Set(keySelectedOrganizer, []byte(id)); err != nil {
		return fmt.Errorf("failed to persist selected organizer: %w", err)
	}

	s.selected = id
	log.Debug().Str("organizerID", id).Msg("organizer selected")
	return nil
}

// ClearSelectedOrganizer removes the selection from memory and storage.
func (s *Store) ClearSelectedOrganizer() error {
	if err := s.kv.Delete(keySelectedOrganizer); err != nil {
		return fmt.Errorf("failed to clear selected organizer: %w", err)
	}

	s.selected = ""
	return nil
}
