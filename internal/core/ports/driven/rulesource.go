package driven

import "github.com/custodia-labs/hie/internal/core/domain"

// RuleSource loads the rule table.
// A failed load is fatal to the engine; errors wrap domain.ErrRuleLoad.
type RuleSource interface {
	// Load reads, validates and decodes the rule table.
	Load() (*domain.RuleTable, error)

	// Describe identifies the source for diagnostics (a path or "built-in").
	Describe() string
}
