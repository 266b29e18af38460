package driving

import "github.com/custodia-labs/hie/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults applied.
	Get() (domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings domain.AppSettings) error

	// Set updates one dotted key (e.g. "classification.fallback") from its
	// textual value and persists the result.
	Set(key, value string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are stored.
	Path() string
}
