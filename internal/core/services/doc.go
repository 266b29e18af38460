// Package services implements the driving port interfaces.
// Services contain the evaluation engine and orchestrate
// calls to driven ports (adapters).
//
// Every stage is a pure function of the rule table and its inputs:
//
//	raw sample -> InputSanitizer -> UnitConverter -> RiskClassifier
//	           -> RiskAggregator -> EvaluationResult -> SummaryBuilder
//
// Services are pure Go with no CGO or external dependencies beyond
// numeric helpers.
package services
