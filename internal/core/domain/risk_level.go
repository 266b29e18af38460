package domain

// Risk level labels produced by classification and aggregation.
const (
	RiskSafe             = "Safe"
	RiskElevated         = "Elevated Risk"
	RiskHigh             = "High Risk"
	RiskSevere           = "Severe Risk"
	RiskUnknownElement   = "Unknown Element"
	RiskNoClassification = "No Classification Available"

	// RiskNoData is the overall verdict when no levels were collected.
	RiskNoData = "No Data"
)

// StatusNoHeavyMetals marks an evaluation with no usable measurements.
const StatusNoHeavyMetals = "No heavy metals data available"

// UnknownElementEffect is the health effect reported for elements that
// have no rule.
const UnknownElementEffect = "Element not in database."

// RankedLevel pairs a risk label with its severity score.
type RankedLevel struct {
	Level    string
	Severity int
}

// severityRanking is the canonical severity order. Labels sharing a score
// are tie-broken by their position here.
var severityRanking = []RankedLevel{
	{Level: RiskSafe, Severity: 0},
	{Level: RiskUnknownElement, Severity: 0},
	{Level: RiskNoClassification, Severity: 0},
	{Level: RiskElevated, Severity: 1},
	{Level: RiskHigh, Severity: 2},
	{Level: RiskSevere, Severity: 3},
}

// SeverityRanking returns a copy of the canonical ranking in declaration order.
func SeverityRanking() []RankedLevel {
	out := make([]RankedLevel, len(severityRanking))
	copy(out, severityRanking)
	return out
}

// Severity returns the score for a label. Unrecognised labels score 0.
func Severity(level string) int {
	for _, r := range severityRanking {
		if r.Level == level {
			return r.Severity
		}
	}
	return 0
}

// IsKnownLevel reports whether the label appears in the ranking.
func IsKnownLevel(level string) bool {
	for _, r := range severityRanking {
		if r.Level == level {
			return true
		}
	}
	return false
}
