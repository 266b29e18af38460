// Package tui provides an interactive terminal user interface for hie.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/hie/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Evaluation assesses samples and exposes the rule table.
	Evaluation driving.EvaluationService
}

// NewPorts creates a new Ports aggregate.
func NewPorts(evaluation driving.EvaluationService) *Ports {
	return &Ports{Evaluation: evaluation}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Evaluation == nil {
		return ErrMissingEvaluationService
	}
	return nil
}
