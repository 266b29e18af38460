package mcp

import (
	"context"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hie/internal/adapters/driving/sample"
	"github.com/custodia-labs/hie/internal/core/domain"
)

// EvaluateInput is the input schema for the evaluate_sample tool.
type EvaluateInput struct {
	Sample         map[string]any `json:"sample" jsonschema:"sample fields such as Location and Fe_ppm or Fe (ppm); use \"-\" for unmeasured elements"`
	IncludeSummary *bool          `json:"include_summary,omitempty" jsonschema:"attach summary statistics (default true)"`
}

// EvaluateOutput is the output schema for the evaluate_sample tool.
type EvaluateOutput struct {
	Location       any             `json:"location"`
	State          any             `json:"state"`
	District       any             `json:"district"`
	Year           any             `json:"year"`
	Latitude       *float64        `json:"latitude,omitempty"`
	Longitude      *float64        `json:"longitude,omitempty"`
	Status         string          `json:"status,omitempty"`
	OverallRisk    string          `json:"overall_risk,omitempty"`
	ElementsTested int             `json:"elements_tested"`
	Results        []ElementOutput `json:"results"`
	Summary        *SummaryOutput  `json:"summary,omitempty"`
}

// ElementOutput is the classification of one element.
type ElementOutput struct {
	Element          string   `json:"element"`
	Concentration    float64  `json:"concentration"`
	Unit             string   `json:"unit"`
	PermissibleLimit *float64 `json:"permissible_limit,omitempty"`
	RiskLevel        string   `json:"risk_level"`
	Diseases         []string `json:"diseases"`
	HealthEffects    []string `json:"health_effects"`
	Symptoms         []string `json:"symptoms"`
}

// SummaryOutput holds summary statistics for an evaluation.
type SummaryOutput struct {
	RiskLevelCounts     map[string]int           `json:"risk_level_counts"`
	ElementsAboveLimit  []domain.LimitExceedance `json:"elements_above_permissible_limit"`
	TotalElementsTested int                      `json:"total_elements_tested"`
}

// ListElementsInput is the input schema for the list_elements tool.
type ListElementsInput struct{}

// ListElementsOutput is the output schema for the list_elements tool.
type ListElementsOutput struct {
	Elements []ElementInfoOutput `json:"elements"`
	Count    int                 `json:"count"`
}

// ElementInfoOutput describes one supported element.
type ElementInfoOutput struct {
	Element          string   `json:"element"`
	Name             string   `json:"name"`
	Unit             string   `json:"unit"`
	PermissibleLimit *float64 `json:"permissible_limit,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "evaluate_sample",
		Description: "Evaluate a groundwater sample for heavy metal health risk. " +
			"Returns per-element risk levels with diseases, health effects and symptoms, " +
			"and the overall risk of the sample.",
	}, s.handleEvaluateSample)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_elements",
		Description: "List the elements that can be classified, with units and permissible limits",
	}, s.handleListElements)
}

// handleEvaluateSample handles the evaluate_sample tool invocation.
func (s *Server) handleEvaluateSample(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	raw := sample.Remap(domain.RawSample(input.Sample))

	result, err := s.ports.Evaluation.Evaluate(raw)
	if err != nil {
		return nil, EvaluateOutput{}, fmt.Errorf("evaluating sample: %w", err)
	}

	output := toEvaluateOutput(result)
	if input.IncludeSummary == nil || *input.IncludeSummary {
		summary := s.ports.Evaluation.Summarize(result)
		output.Summary = &SummaryOutput{
			RiskLevelCounts:     summary.RiskLevelCounts,
			ElementsAboveLimit:  summary.ElementsAboveLimit,
			TotalElementsTested: summary.TotalElementsTested,
		}
	}
	return nil, output, nil
}

// handleListElements handles the list_elements tool invocation.
func (s *Server) handleListElements(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListElementsInput,
) (*mcp.CallToolResult, ListElementsOutput, error) {
	elements := s.ports.Evaluation.Elements()

	output := ListElementsOutput{
		Elements: make([]ElementInfoOutput, len(elements)),
		Count:    len(elements),
	}
	for i, e := range elements {
		output.Elements[i] = ElementInfoOutput{
			Element:          e.Element,
			Name:             e.Name,
			Unit:             e.Unit,
			PermissibleLimit: e.PermissibleLimit,
		}
	}
	return nil, output, nil
}

func toEvaluateOutput(result *domain.EvaluationResult) EvaluateOutput {
	output := EvaluateOutput{
		Location:       result.Location,
		State:          result.State,
		District:       result.District,
		Year:           result.Year,
		Latitude:       result.Coordinates.Latitude,
		Longitude:      result.Coordinates.Longitude,
		Status:         result.Status,
		OverallRisk:    result.OverallRisk,
		ElementsTested: result.ElementsTested,
		Results:        make([]ElementOutput, 0, len(result.Results)),
	}

	symbols := make([]string, 0, len(result.Results))
	for symbol := range result.Results {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		er := result.Results[symbol]
		output.Results = append(output.Results, ElementOutput{
			Element:          symbol,
			Concentration:    er.Concentration,
			Unit:             er.Unit,
			PermissibleLimit: er.PermissibleLimit,
			RiskLevel:        er.Level,
			Diseases:         nonNil(er.Diseases),
			HealthEffects:    nonNil(er.HealthEffects),
			Symptoms:         nonNil(er.Symptoms),
		})
	}
	return output
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
