// Package rules loads health rule tables for the evaluation engine.
//
// Rule documents may be JSON, YAML or TOML. Every document is checked
// against an embedded CUE schema before it is decoded, so a malformed
// table fails at startup rather than during classification.
package rules
