package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrRuleLoad indicates the rule table could not be read, decoded or
	// validated. It is fatal to the engine's availability.
	ErrRuleLoad = errors.New("rule table load failed")

	// ErrRulesUnavailable indicates an evaluation was attempted without a
	// loaded rule table.
	ErrRulesUnavailable = errors.New("rule table unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates a configuration value is not recognised.
	ErrInvalidConfig = errors.New("invalid configuration")
)
