package mcp

import (
	"github.com/custodia-labs/hie/internal/core/domain"
)

// mockEvaluationService is a mock implementation of driving.EvaluationService.
type mockEvaluationService struct {
	result   *domain.EvaluationResult
	summary  domain.Summary
	rules    *domain.RuleTable
	elements []domain.ElementInfo
	err      error

	lastSample domain.RawSample
	summarized int
}

func (m *mockEvaluationService) Evaluate(raw domain.RawSample) (*domain.EvaluationResult, error) {
	m.lastSample = raw
	return m.result, m.err
}

func (m *mockEvaluationService) Summarize(_ *domain.EvaluationResult) domain.Summary {
	m.summarized++
	return m.summary
}

func (m *mockEvaluationService) Rules() *domain.RuleTable {
	return m.rules
}

func (m *mockEvaluationService) Elements() []domain.ElementInfo {
	return m.elements
}

func f64(v float64) *float64 { return &v }
