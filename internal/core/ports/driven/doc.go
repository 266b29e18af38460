// Package driven holds the ports the engine calls out through: where the
// rule table comes from, where settings are kept and who observes
// evaluations.
//
//   - RuleSource: loads the rule table once at startup
//   - ConfigStore: reads and writes AppSettings
//   - EvaluationRecorder: optional; a nil recorder disables metrics
//
// Implementations live under internal/adapters/driven. This package may
// import domain and nothing else from internal/.
package driven
