package tui

import "errors"

// ErrMissingEvaluationService is returned when the evaluation service is not provided.
var ErrMissingEvaluationService = errors.New("tui: evaluation service is required")

// ErrInvalidPorts is returned when no ports are provided.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
