package driving

import "github.com/custodia-labs/hie/internal/core/domain"

// EvaluationService assesses water samples against the loaded rule table.
// Implementations are safe for concurrent use.
type EvaluationService interface {
	// Evaluate produces the assessment for one raw sample.
	// Malformed fields never produce an error; only a missing rule table does.
	Evaluate(raw domain.RawSample) (*domain.EvaluationResult, error)

	// Summarize derives summary statistics from an assessment.
	// It is a separate pass so callers decide whether to attach it.
	Summarize(result *domain.EvaluationResult) domain.Summary

	// Rules returns the loaded rule table.
	Rules() *domain.RuleTable

	// Elements lists the elements the rule table can classify.
	Elements() []domain.ElementInfo
}
