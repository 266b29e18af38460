// Package domain holds the value types of the health impact engine.
//
// A RuleTable maps element symbols to canonical units, permissible limits
// and ordered risk tiers. A RawSample is one loosely typed water-sample
// record; cleaning it yields a CleanedSample of canonical-unit
// concentrations, and evaluation yields an EvaluationResult with an
// optional Summary attached afterwards.
//
// The package depends on the standard library only, and every other
// internal package may import it.
package domain
