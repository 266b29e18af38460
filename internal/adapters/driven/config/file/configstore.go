package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultFileName is the settings file name inside the config directory.
const DefaultFileName = "config.toml"

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Settings are stored in a TOML file within the hie config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.hie/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".hie")
	}
	return &ConfigStore{filePath: filepath.Join(configDir, DefaultFileName)}, nil
}

// NewConfigStoreFromFile creates a store backed by an explicit file path.
func NewConfigStoreFromFile(path string) *ConfigStore {
	return &ConfigStore{filePath: path}
}

// Load reads settings from the TOML file. Keys absent from the file keep
// their defaults; a missing file yields domain.DefaultAppSettings().
func (s *ConfigStore) Load() (domain.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := domain.DefaultAppSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file yet - that's fine, use defaults
			return settings, nil
		}
		return settings, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		return domain.DefaultAppSettings(), fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, s.filePath, err)
	}

	if err := settings.Validate(); err != nil {
		return domain.DefaultAppSettings(), fmt.Errorf("%s: %w", s.filePath, err)
	}
	return settings, nil
}

// Save validates and writes settings, creating the directory if needed.
func (s *ConfigStore) Save(settings domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
