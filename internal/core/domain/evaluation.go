package domain

// RiskClassification is the qualitative payload of a matched risk tier.
type RiskClassification struct {
	Level         string   `json:"Risk Level"`
	Diseases      []string `json:"Diseases"`
	HealthEffects []string `json:"Health Effects"`
	Symptoms      []string `json:"Symptoms"`
}

// ElementResult is the per-element outcome of an evaluation.
type ElementResult struct {
	Concentration    float64  `json:"Concentration"`
	Unit             string   `json:"Unit"`
	PermissibleLimit *float64 `json:"Permissible_Limit"`
	Level            string   `json:"Risk Level"`
	Diseases         []string `json:"Diseases"`
	HealthEffects    []string `json:"Health Effects"`
	Symptoms         []string `json:"Symptoms"`
}

// NewElementResult combines a measurement with its classification.
func NewElementResult(concentration float64, unit string, limit *float64, c RiskClassification) ElementResult {
	return ElementResult{
		Concentration:    concentration,
		Unit:             unit,
		PermissibleLimit: limit,
		Level:            c.Level,
		Diseases:         c.Diseases,
		HealthEffects:    c.HealthEffects,
		Symptoms:         c.Symptoms,
	}
}

// ExceedsLimit reports whether the concentration is strictly above a
// positive permissible limit.
func (r ElementResult) ExceedsLimit() bool {
	return r.PermissibleLimit != nil && *r.PermissibleLimit > 0 &&
		r.Concentration > *r.PermissibleLimit
}

// EvaluationResult is the assessment of a single sample.
//
// When the sample carried no usable measurements, Status is set to
// StatusNoHeavyMetals and OverallRisk / ElementsTested are left empty.
// Location metadata keeps the raw sample value and type; absent fields
// hold UnknownLocation.
type EvaluationResult struct {
	Location    any         `json:"Location"`
	State       any         `json:"State"`
	District    any         `json:"District"`
	Year        any         `json:"Year"`
	Coordinates Coordinates `json:"Coordinates"`

	Status         string                   `json:"Status,omitempty"`
	OverallRisk    string                   `json:"Overall_Risk,omitempty"`
	ElementsTested int                      `json:"Elements_Tested,omitempty"`
	Results        map[string]ElementResult `json:"Results"`

	// Summary is attached by callers as a second pass.
	Summary *Summary `json:"Summary,omitempty"`
}

// HasAssessment reports whether an overall verdict was computed.
func (r *EvaluationResult) HasAssessment() bool {
	return r != nil && r.OverallRisk != ""
}

// LimitExceedance records an element found above its permissible limit.
type LimitExceedance struct {
	Element         string  `json:"element"`
	Concentration   float64 `json:"concentration"`
	Limit           float64 `json:"limit"`
	TimesAboveLimit float64 `json:"times_above_limit"`
}

// Summary holds distribution statistics for an evaluation.
type Summary struct {
	RiskLevelCounts     map[string]int    `json:"Risk_Level_Counts"`
	ElementsAboveLimit  []LimitExceedance `json:"Elements_Above_Permissible_Limit"`
	TotalElementsTested int               `json:"Total_Elements_Tested"`
}

// EmptySummary returns a summary with initialised, empty collections.
func EmptySummary() Summary {
	return Summary{
		RiskLevelCounts:    map[string]int{},
		ElementsAboveLimit: []LimitExceedance{},
	}
}
