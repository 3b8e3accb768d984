package config

import "sync/atomic"

// Store holds the live Settings snapshot. Readers get a consistent value
// for the whole request; Replace swaps the snapshot atomically on
// configuration change.
type Store struct {
	current atomic.Pointer[Settings]
}

// NewStore creates a store seeded with the given settings.
func NewStore(settings Settings) *Store {
	store := &Store{}
	store.Replace(settings)
	return store
}

// Snapshot returns the current settings value.
func (s *Store) Snapshot() Settings {
	return *s.current.Load()
}

// Replace installs a new settings snapshot.
func (s *Store) Replace(settings Settings) {
	s.current.Store(&settings)
}
