package driven

import "github.com/custodia-labs/hie/internal/core/domain"

// EvaluationRecorder observes evaluation outcomes, typically for metrics.
type EvaluationRecorder interface {
	// RecordEvaluation is called once per completed evaluation.
	RecordEvaluation(result *domain.EvaluationResult)

	// RecordSummary is called when a caller derives a summary.
	RecordSummary(summary domain.Summary)
}
