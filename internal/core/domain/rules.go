package domain

import (
	"math"
	"sort"
)

// UnitMilligramsPerLitre is the canonical unit for tier bounds and limits.
const UnitMilligramsPerLitre = "mg/L"

// unknownTierLevel is reported for tiers that carry no level label.
const unknownTierLevel = "Unknown"

// RuleTable maps element symbols to their classification rules.
// It is loaded once and treated as read-only for the process lifetime.
type RuleTable struct {
	// HeavyMetals holds the rules keyed by element symbol (e.g. "As").
	HeavyMetals map[string]ElementRule `json:"heavy_metals" yaml:"heavy_metals" toml:"heavy_metals"`
}

// ElementRule describes how one element is measured and classified.
type ElementRule struct {
	// Name is the display name (e.g. "Arsenic").
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Unit is the canonical unit; empty means mg/L.
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty" toml:"unit,omitempty"`

	// PermissibleLimit is the regulatory limit in the canonical unit, if any.
	PermissibleLimit *float64 `json:"permissible_limit" yaml:"permissible_limit" toml:"permissible_limit,omitempty"`

	// RiskLevels is ordered ascending by concentration.
	RiskLevels []RiskTier `json:"risk_levels" yaml:"risk_levels" toml:"risk_levels"`
}

// RiskTier is a half-open concentration interval [MinValue, MaxValue)
// mapped to a qualitative risk label and its health information.
type RiskTier struct {
	MinValue float64 `json:"min_value" yaml:"min_value" toml:"min_value"`

	// MaxValue is the exclusive upper bound. Nil means unbounded.
	MaxValue *float64 `json:"max_value,omitempty" yaml:"max_value,omitempty" toml:"max_value,omitempty"`

	Level         string   `json:"level" yaml:"level" toml:"level"`
	Diseases      []string `json:"diseases" yaml:"diseases" toml:"diseases"`
	HealthEffects []string `json:"health_effects" yaml:"health_effects" toml:"health_effects"`
	Symptoms      []string `json:"symptoms" yaml:"symptoms" toml:"symptoms"`
}

// ElementInfo is the discovery view of an element rule.
type ElementInfo struct {
	Element          string   `json:"element"`
	Name             string   `json:"name"`
	Unit             string   `json:"unit"`
	PermissibleLimit *float64 `json:"permissible_limit"`
}

// Lookup returns the rule for an element symbol.
func (t *RuleTable) Lookup(symbol string) (ElementRule, bool) {
	if t == nil || t.HeavyMetals == nil {
		return ElementRule{}, false
	}
	rule, ok := t.HeavyMetals[symbol]
	return rule, ok
}

// Symbols returns the element symbols in sorted order.
func (t *RuleTable) Symbols() []string {
	if t == nil {
		return []string{}
	}
	symbols := make([]string, 0, len(t.HeavyMetals))
	for symbol := range t.HeavyMetals {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Elements returns discovery information for every element, sorted by symbol.
func (t *RuleTable) Elements() []ElementInfo {
	symbols := t.Symbols()
	infos := make([]ElementInfo, 0, len(symbols))
	for _, symbol := range symbols {
		rule := t.HeavyMetals[symbol]
		infos = append(infos, ElementInfo{
			Element:          symbol,
			Name:             rule.DisplayName(symbol),
			Unit:             rule.CanonicalUnit(),
			PermissibleLimit: rule.PermissibleLimit,
		})
	}
	return infos
}

// CanonicalUnit returns the rule's unit, defaulting to mg/L.
func (r ElementRule) CanonicalUnit() string {
	if r.Unit == "" {
		return UnitMilligramsPerLitre
	}
	return r.Unit
}

// DisplayName returns the rule's name, falling back to the symbol.
func (r ElementRule) DisplayName(symbol string) string {
	if r.Name == "" {
		return symbol
	}
	return r.Name
}

// HasLimit reports whether a positive permissible limit is configured.
func (r ElementRule) HasLimit() bool {
	return r.PermissibleLimit != nil && *r.PermissibleLimit > 0
}

// Upper returns the exclusive upper bound, +Inf when unbounded.
func (t RiskTier) Upper() float64 {
	if t.MaxValue == nil {
		return math.Inf(1)
	}
	return *t.MaxValue
}

// Contains reports whether MinValue <= c < MaxValue.
func (t RiskTier) Contains(c float64) bool {
	return t.MinValue <= c && c < t.Upper()
}

// Label returns the tier level, or "Unknown" when the rule omits it.
func (t RiskTier) Label() string {
	if t.Level == "" {
		return unknownTierLevel
	}
	return t.Level
}

// Classification returns the tier's payload. The lists are copied so
// callers never alias the rule table.
func (t RiskTier) Classification() RiskClassification {
	return RiskClassification{
		Level:         t.Label(),
		Diseases:      cloneStrings(t.Diseases),
		HealthEffects: cloneStrings(t.HealthEffects),
		Symptoms:      cloneStrings(t.Symptoms),
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
