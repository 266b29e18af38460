package services

import "github.com/custodia-labs/hie/internal/core/domain"

// RiskAggregator reduces per-element levels to one overall verdict.
type RiskAggregator struct {
	ranking []domain.RankedLevel
}

// NewRiskAggregator creates an aggregator over the canonical severity ranking.
func NewRiskAggregator() *RiskAggregator {
	return &RiskAggregator{ranking: domain.SeverityRanking()}
}

// Aggregate returns the label of the highest severity present.
// Labels sharing a score resolve to the first one in ranking order,
// so a sample whose worst score is 0 is reported as "Safe".
func (a *RiskAggregator) Aggregate(levels []string) string {
	if len(levels) == 0 {
		return domain.RiskNoData
	}

	maxSeverity := 0
	for _, level := range levels {
		if s := domain.Severity(level); s > maxSeverity {
			maxSeverity = s
		}
	}

	for _, r := range a.ranking {
		if r.Severity == maxSeverity {
			return r.Level
		}
	}
	return domain.RiskNoData
}
