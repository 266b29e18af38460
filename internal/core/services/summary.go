package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/hie/internal/core/domain"
)

// SummaryBuilder derives distribution and limit statistics from results.
type SummaryBuilder struct{}

// NewSummaryBuilder creates a SummaryBuilder.
func NewSummaryBuilder() *SummaryBuilder {
	return &SummaryBuilder{}
}

// Summarize counts risk levels and lists elements strictly above a positive
// permissible limit, sorted by element symbol.
func (b *SummaryBuilder) Summarize(results map[string]domain.ElementResult) domain.Summary {
	summary := domain.EmptySummary()
	if len(results) == 0 {
		return summary
	}

	for element, r := range results {
		summary.RiskLevelCounts[r.Level]++

		if !r.ExceedsLimit() {
			continue
		}
		limit := *r.PermissibleLimit
		summary.ElementsAboveLimit = append(summary.ElementsAboveLimit, domain.LimitExceedance{
			Element:         element,
			Concentration:   r.Concentration,
			Limit:           limit,
			TimesAboveLimit: timesAbove(r.Concentration, limit),
		})
	}

	sort.Slice(summary.ElementsAboveLimit, func(i, j int) bool {
		return summary.ElementsAboveLimit[i].Element < summary.ElementsAboveLimit[j].Element
	})
	summary.TotalElementsTested = len(results)
	return summary
}

// timesAbove returns concentration/limit rounded to two decimal places,
// ties to even (1.125 becomes 1.12). The ratio is exact in decimal, so a
// tie is a tie of the shortest decimal form of the inputs, not of their
// binary approximations.
func timesAbove(concentration, limit float64) float64 {
	ratio := decimal.NewFromFloat(concentration).Div(decimal.NewFromFloat(limit))
	return ratio.RoundBank(2).InexactFloat64()
}
