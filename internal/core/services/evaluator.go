package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/ports/driven"
	"github.com/custodia-labs/hie/internal/core/ports/driving"
	"github.com/custodia-labs/hie/internal/logger"
)

// Ensure Evaluator implements the interface.
var _ driving.EvaluationService = (*Evaluator)(nil)

// Evaluator orchestrates sanitising, classification and aggregation for
// one sample at a time. It holds no per-call state, so a single instance
// may serve concurrent evaluations over its read-only rule table.
type Evaluator struct {
	rules      *domain.RuleTable
	sanitizer  *InputSanitizer
	classifier *RiskClassifier
	aggregator *RiskAggregator
	summaries  *SummaryBuilder
	recorder   driven.EvaluationRecorder
}

// NewEvaluator wires the engine stages around a loaded rule table.
func NewEvaluator(rules *domain.RuleTable, fallback domain.FallbackPolicy) *Evaluator {
	return &Evaluator{
		rules:      rules,
		sanitizer:  NewInputSanitizer(NewUnitConverter(rules)),
		classifier: NewRiskClassifier(rules, fallback),
		aggregator: NewRiskAggregator(),
		summaries:  NewSummaryBuilder(),
	}
}

// SetRecorder sets the optional evaluation recorder.
func (e *Evaluator) SetRecorder(recorder driven.EvaluationRecorder) {
	e.recorder = recorder
}

// Evaluate produces the assessment for one raw sample.
func (e *Evaluator) Evaluate(raw domain.RawSample) (*domain.EvaluationResult, error) {
	if e.rules == nil {
		return nil, domain.ErrRulesUnavailable
	}

	result := newResult(raw)
	cleaned := e.sanitizer.Clean(raw)

	if len(cleaned) == 0 {
		logger.Info("Sample for %s has no heavy metal measurements", result.Location)
		result.Status = domain.StatusNoHeavyMetals
		e.record(result)
		return result, nil
	}

	logger.Section("Classification")
	symbols := make([]string, 0, len(cleaned))
	for symbol := range cleaned {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	levels := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		concentration := cleaned[symbol]
		classification := e.classifier.Classify(symbol, concentration)

		rule, _ := e.rules.Lookup(symbol)
		result.Results[symbol] = domain.NewElementResult(
			concentration,
			rule.CanonicalUnit(),
			rule.PermissibleLimit,
			classification,
		)
		levels = append(levels, classification.Level)
		logger.Debug("%s = %v %s: %s", symbol, concentration, rule.CanonicalUnit(), classification.Level)
	}

	result.OverallRisk = e.aggregator.Aggregate(levels)
	result.ElementsTested = len(result.Results)
	logger.Info("Overall risk for %s: %s (%d elements)", result.Location, result.OverallRisk, result.ElementsTested)

	e.record(result)
	return result, nil
}

// Summarize derives summary statistics from an assessment.
func (e *Evaluator) Summarize(result *domain.EvaluationResult) domain.Summary {
	if result == nil {
		return domain.EmptySummary()
	}
	summary := e.summaries.Summarize(result.Results)
	if e.recorder != nil {
		e.recorder.RecordSummary(summary)
	}
	return summary
}

// Rules returns the loaded rule table.
func (e *Evaluator) Rules() *domain.RuleTable {
	return e.rules
}

// Elements lists the elements the rule table can classify.
func (e *Evaluator) Elements() []domain.ElementInfo {
	return e.rules.Elements()
}

func (e *Evaluator) record(result *domain.EvaluationResult) {
	if e.recorder != nil {
		e.recorder.RecordEvaluation(result)
	}
}

// newResult copies location metadata from the raw sample.
func newResult(raw domain.RawSample) *domain.EvaluationResult {
	return &domain.EvaluationResult{
		Location: metadataValue(raw, domain.FieldLocation),
		State:    metadataValue(raw, domain.FieldState),
		District: metadataValue(raw, domain.FieldDistrict),
		Year:     metadataValue(raw, domain.FieldYear),
		Coordinates: domain.Coordinates{
			Latitude:  metadataNumber(raw, domain.FieldLatitude),
			Longitude: metadataNumber(raw, domain.FieldLongitude),
		},
		Results: make(map[string]domain.ElementResult),
	}
}

// metadataValue copies a descriptive field as is. Only an absent key
// becomes "Unknown".
func metadataValue(raw domain.RawSample, key string) any {
	v, ok := raw[key]
	if !ok {
		return domain.UnknownLocation
	}
	return v
}

// metadataNumber reads an optional coordinate; unreadable values are nil.
func metadataNumber(raw domain.RawSample, key string) *float64 {
	v, ok := raw[key]
	if !ok || isMissing(v) {
		return nil
	}
	f, err := coerceNumber(v)
	if err != nil {
		logger.Warn("Ignoring %s value %q: %v", key, fmt.Sprint(v), err)
		return nil
	}
	return &f
}
