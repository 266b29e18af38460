package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/ports/driven"
	"github.com/custodia-labs/hie/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys accepted by Set.
const (
	KeyRulesPath              = "rules.path"
	KeyClassificationFallback = "classification.fallback"
	KeyOutputFormat           = "output.format"
	KeyOutputSummary          = "output.summary"
	KeyMCPPort                = "mcp.port"
	KeyLogVerbose             = "log.verbose"
)

// settingSetters parse a textual value into the matching field.
var settingSetters = map[string]func(s *domain.AppSettings, value string) error{
	KeyRulesPath: func(s *domain.AppSettings, v string) error {
		s.Rules.Path = v
		return nil
	},
	KeyClassificationFallback: func(s *domain.AppSettings, v string) error {
		s.Classification.Fallback = domain.FallbackPolicy(v)
		return nil
	},
	KeyOutputFormat: func(s *domain.AppSettings, v string) error {
		s.Output.Format = domain.OutputFormat(v)
		return nil
	},
	KeyOutputSummary: func(s *domain.AppSettings, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		s.Output.Summary = b
		return nil
	},
	KeyMCPPort: func(s *domain.AppSettings, v string) error {
		port, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		s.MCP.Port = port
		return nil
	},
	KeyLogVerbose: func(s *domain.AppSettings, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		s.Log.Verbose = b
		return nil
	},
}

// SettingKeys returns the keys accepted by Set, sorted.
func SettingKeys() []string {
	keys := make([]string, 0, len(settingSetters))
	for k := range settingSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (domain.AppSettings, error) {
	return s.configStore.Load()
}

// Save persists application settings.
func (s *SettingsService) Save(settings domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.configStore.Save(settings)
}

// Set updates a single key and saves.
func (s *SettingsService) Set(key, value string) error {
	setter, ok := settingSetters[key]
	if !ok {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidConfig, key)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	if err := setter(&settings, value); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, key, err)
	}
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
