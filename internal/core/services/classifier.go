package services

import (
	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/logger"
)

// RiskClassifier maps an element concentration to its risk tier.
type RiskClassifier struct {
	rules    *domain.RuleTable
	fallback domain.FallbackPolicy
}

// NewRiskClassifier creates a classifier. An invalid or empty policy
// selects domain.FallbackLastTier.
func NewRiskClassifier(rules *domain.RuleTable, fallback domain.FallbackPolicy) *RiskClassifier {
	if !fallback.IsValid() {
		fallback = domain.FallbackLastTier
	}
	return &RiskClassifier{rules: rules, fallback: fallback}
}

// Classify returns the first tier whose [min, max) interval holds the
// concentration. Tiers are scanned in rule order and are not assumed to be
// contiguous; when none matches the fallback policy decides the result.
func (c *RiskClassifier) Classify(element string, concentration float64) domain.RiskClassification {
	rule, ok := c.rules.Lookup(element)
	if !ok {
		return domain.RiskClassification{
			Level:         domain.RiskUnknownElement,
			Diseases:      []string{},
			HealthEffects: []string{domain.UnknownElementEffect},
			Symptoms:      []string{},
		}
	}

	tiers := rule.RiskLevels
	if len(tiers) == 0 {
		return noClassification()
	}

	for _, tier := range tiers {
		if tier.Contains(concentration) {
			return tier.Classification()
		}
	}

	if c.fallback == domain.FallbackNone {
		logger.Warn("%s concentration %v matches no tier", element, concentration)
		return noClassification()
	}

	last := tiers[len(tiers)-1]
	logger.Warn("%s concentration %v matches no tier, assuming %s", element, concentration, last.Label())
	return last.Classification()
}

func noClassification() domain.RiskClassification {
	return domain.RiskClassification{
		Level:         domain.RiskNoClassification,
		Diseases:      []string{},
		HealthEffects: []string{},
		Symptoms:      []string{},
	}
}
