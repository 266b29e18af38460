// Package mcp provides an MCP (Model Context Protocol) server adapter for hie.
// It lets AI assistants evaluate water samples and inspect the loaded rules.
package mcp

import "errors"

// ErrMissingEvaluationService is returned when the evaluation service is not provided.
var ErrMissingEvaluationService = errors.New("mcp: evaluation service is required")
