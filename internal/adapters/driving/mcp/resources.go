package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for hie resources.
	uriScheme = "hie://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "rules",
		Name:        "rules",
		Description: "The loaded health rule table",
		MIMEType:    mimeJSON,
	}, s.handleRulesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "elements",
		Name:        "elements",
		Description: "Elements that can be classified",
		MIMEType:    mimeJSON,
	}, s.handleElementsResource)
}

// handleRulesResource returns the rule table as JSON.
func (s *Server) handleRulesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	rules := s.ports.Evaluation.Rules()
	if rules == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, rules)
}

// handleElementsResource returns the supported elements as JSON.
func (s *Server) handleElementsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Evaluation.Elements())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}
