// Package memory provides in-memory implementations of driven ports.
// They hold state for the process lifetime only and suit tests and
// ephemeral runs.
package memory

import (
	"sync"

	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore for testing.
type ConfigStore struct {
	mu       sync.RWMutex
	settings domain.AppSettings
	saved    bool
	loadErr  error
}

// NewConfigStore creates a new in-memory config store holding defaults.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{settings: domain.DefaultAppSettings()}
}

// Load returns the stored settings.
func (s *ConfigStore) Load() (domain.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return domain.DefaultAppSettings(), s.loadErr
	}
	return s.settings, nil
}

// Save replaces the stored settings.
func (s *ConfigStore) Save(settings domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.saved = true
	return nil
}

// Path returns a placeholder, as nothing is written to disk.
func (s *ConfigStore) Path() string {
	return "memory"
}

// Saved reports whether Save has succeeded at least once.
func (s *ConfigStore) Saved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved
}

// SetLoadError makes subsequent Load calls fail with err.
func (s *ConfigStore) SetLoadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}
