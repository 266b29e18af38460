package driven

import "github.com/custodia-labs/hie/internal/core/domain"

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and defaulting.
type ConfigStore interface {
	// Load reads settings, applying defaults for anything unset.
	// A missing configuration file is not an error.
	Load() (domain.AppSettings, error)

	// Save persists settings.
	Save(settings domain.AppSettings) error

	// Path returns the configuration file path.
	Path() string
}
