package services

import (
	"sync"

	"github.com/custodia-labs/hie/internal/core/domain"
)

func f64(v float64) *float64 { return &v }

// testRules builds a small rule table:
//   - Fe: contiguous tiers in mg/L with a 0.3 limit
//   - As: expressed in ppb so raw ppb values are not rescaled
//   - Pb: a gap between 0.05 and 0.1 to exercise the fallback
//   - Hg: known but without tiers
//   - U, Cd, Cr: absent
func testRules() *domain.RuleTable {
	return &domain.RuleTable{HeavyMetals: map[string]domain.ElementRule{
		"Fe": {
			Name:             "Iron",
			Unit:             "mg/L",
			PermissibleLimit: f64(0.3),
			RiskLevels: []domain.RiskTier{
				{MinValue: 0, MaxValue: f64(0.6), Level: domain.RiskSafe,
					HealthEffects: []string{"No adverse effects expected."}},
				{MinValue: 0.6, MaxValue: f64(1.0), Level: domain.RiskElevated,
					HealthEffects: []string{"Metallic taste"}},
				{MinValue: 1.0, MaxValue: f64(3.0), Level: domain.RiskHigh,
					Diseases: []string{"Haemochromatosis"}},
				{MinValue: 3.0, Level: domain.RiskSevere,
					Diseases: []string{"Iron overload"}, Symptoms: []string{"Fatigue"}},
			},
		},
		"As": {
			Name:             "Arsenic",
			Unit:             "ppb",
			PermissibleLimit: f64(10),
			RiskLevels: []domain.RiskTier{
				{MinValue: 0, MaxValue: f64(10), Level: domain.RiskSafe},
				{MinValue: 10, MaxValue: f64(100), Level: domain.RiskHigh,
					Diseases:      []string{"Arsenicosis", "Skin cancer"},
					HealthEffects: []string{"Skin lesions"},
					Symptoms:      []string{"Hyperpigmentation"}},
				{MinValue: 100, Level: domain.RiskSevere,
					Diseases: []string{"Bladder cancer"}},
			},
		},
		"Pb": {
			Name:             "Lead",
			PermissibleLimit: f64(0.01),
			RiskLevels: []domain.RiskTier{
				{MinValue: 0, MaxValue: f64(0.01), Level: domain.RiskSafe},
				{MinValue: 0.01, MaxValue: f64(0.05), Level: domain.RiskElevated},
				{MinValue: 0.1, Level: domain.RiskSevere,
					Diseases: []string{"Lead poisoning"}},
			},
		},
		"Hg": {
			Name: "Mercury",
		},
	}}
}

// mockRecorder implements driven.EvaluationRecorder for testing.
type mockRecorder struct {
	mu          sync.Mutex
	evaluations []*domain.EvaluationResult
	summaries   []domain.Summary
}

func (m *mockRecorder) RecordEvaluation(result *domain.EvaluationResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluations = append(m.evaluations, result)
}

func (m *mockRecorder) RecordSummary(summary domain.Summary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries = append(m.summaries, summary)
}
