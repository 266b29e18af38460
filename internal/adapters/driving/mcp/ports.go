package mcp

import (
	"net/http"

	"github.com/custodia-labs/hie/internal/core/ports/driving"
)

// Ports aggregates the dependencies of the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Evaluation assesses samples and exposes the rule table.
	Evaluation driving.EvaluationService

	// Metrics is served at /metrics in HTTP mode when set.
	Metrics http.Handler
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Evaluation == nil {
		return ErrMissingEvaluationService
	}
	return nil
}
