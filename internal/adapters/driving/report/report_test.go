package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/hie/internal/core/domain"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0.53", formatNumber(0.53))
	assert.Equal(t, "50", formatNumber(50))
	assert.Equal(t, "1.77", formatNumber(1.77))
}

func TestFormatLimit(t *testing.T) {
	assert.Equal(t, "-", formatLimit(nil))
	assert.Equal(t, "0.01", formatLimit(f64(0.01)))
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "Unknown", formatCoordinates(domain.Coordinates{}))
	assert.Equal(t, "30.2, 74.9", formatCoordinates(domain.Coordinates{Latitude: f64(30.2), Longitude: f64(74.9)}))
	assert.Equal(t, "?, 74.9", formatCoordinates(domain.Coordinates{Longitude: f64(74.9)}))
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "Well 7", formatMetadata("Well 7"))
	assert.Equal(t, "2023", formatMetadata(float64(2023)))
	assert.Equal(t, "-", formatMetadata(nil))
	assert.Equal(t, "true", formatMetadata(true))
}

func TestRenderer_EvaluationNumericYear(t *testing.T) {
	buf := new(bytes.Buffer)
	New(buf, nil).Evaluation(&domain.EvaluationResult{
		Location: "Well 8",
		State:    "Unknown",
		District: nil,
		Year:     float64(2021),
		Status:   domain.StatusNoHeavyMetals,
		Results:  map[string]domain.ElementResult{},
	})

	assert.Contains(t, buf.String(), "State: Unknown  District: -  Year: 2021")
}

func TestOrderedLevels(t *testing.T) {
	got := orderedLevels(map[string]int{
		domain.RiskSevere:         1,
		"Unknown":                 2,
		domain.RiskSafe:           3,
		domain.RiskUnknownElement: 1,
	})

	assert.Equal(t, []string{domain.RiskSafe, domain.RiskUnknownElement, domain.RiskSevere, "Unknown"}, got)
}

func TestForWriter_PlainForNonTerminal(t *testing.T) {
	buf := new(bytes.Buffer)
	r := ForWriter(buf)

	assert.True(t, r.Styles().IsPlain())
}

func TestNew_NilStylesArePlain(t *testing.T) {
	assert.True(t, New(new(bytes.Buffer), nil).Styles().IsPlain())
}

func TestRenderer_ElementsEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	ForWriter(buf).Elements(nil)

	assert.Equal(t, "No elements configured.\n", buf.String())
}

func TestRenderer_SummaryWithoutExceedances(t *testing.T) {
	buf := new(bytes.Buffer)
	ForWriter(buf).summary(domain.Summary{
		RiskLevelCounts:     map[string]int{domain.RiskSafe: 2},
		ElementsAboveLimit:  []domain.LimitExceedance{},
		TotalElementsTested: 2,
	})

	out := buf.String()
	assert.Contains(t, out, "Elements tested: 2")
	assert.Contains(t, out, "Risk levels: Safe 2")
	assert.Contains(t, out, "No element exceeds its permissible limit.")
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "[0, 0.6)", formatRange(domain.RiskTier{MinValue: 0, MaxValue: f64(0.6)}))
	assert.Equal(t, "[3, ∞)", formatRange(domain.RiskTier{MinValue: 3}))
}

func TestRenderer_Evaluation(t *testing.T) {
	buf := new(bytes.Buffer)
	summary := domain.Summary{
		RiskLevelCounts: map[string]int{domain.RiskHigh: 1},
		ElementsAboveLimit: []domain.LimitExceedance{
			{Element: "As", Concentration: 0.05, Limit: 0.01, TimesAboveLimit: 5},
		},
		TotalElementsTested: 1,
	}
	New(buf, nil).Evaluation(&domain.EvaluationResult{
		Location:       "Well 7",
		State:          "Punjab",
		District:       "Bathinda",
		Year:           "2023",
		OverallRisk:    domain.RiskHigh,
		ElementsTested: 1,
		Results: map[string]domain.ElementResult{
			"As": {
				Concentration:    0.05,
				Unit:             domain.UnitMilligramsPerLitre,
				PermissibleLimit: f64(0.01),
				Level:            domain.RiskHigh,
				Diseases:         []string{"Arsenicosis"},
				HealthEffects:    []string{},
				Symptoms:         []string{"Skin lesions"},
			},
		},
		Summary: &summary,
	})

	out := buf.String()
	assert.Contains(t, out, "Sample: Well 7")
	assert.Contains(t, out, "State: Punjab  District: Bathinda  Year: 2023")
	assert.Contains(t, out, "Coordinates: Unknown")
	assert.Contains(t, out, "Overall risk: High Risk (1 elements tested)")
	assert.Contains(t, out, "| As ")
	assert.Contains(t, out, "Diseases: Arsenicosis")
	assert.Contains(t, out, "Symptoms: Skin lesions")
	assert.NotContains(t, out, "Health effects:")
	assert.Contains(t, out, "As: 0.05 (limit 0.01, 5x)")
}

func TestRenderer_EvaluationNoData(t *testing.T) {
	buf := new(bytes.Buffer)
	New(buf, nil).Evaluation(&domain.EvaluationResult{
		Location: "Unknown",
		Status:   domain.StatusNoHeavyMetals,
		Results:  map[string]domain.ElementResult{},
	})

	assert.Contains(t, buf.String(), "Status: No heavy metals data available")
	assert.NotContains(t, buf.String(), "Overall risk")
}

func TestRenderer_Tiers(t *testing.T) {
	buf := new(bytes.Buffer)
	New(buf, nil).Tiers("Fe", domain.ElementRule{
		Name:             "Iron",
		PermissibleLimit: f64(0.3),
		RiskLevels: []domain.RiskTier{
			{MinValue: 0, MaxValue: f64(0.6), Level: domain.RiskSafe},
			{MinValue: 0.6, Level: domain.RiskSevere, Diseases: []string{"Haemochromatosis"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Fe Iron")
	assert.Contains(t, out, "Unit: mg/L  Limit: 0.3")
	assert.Contains(t, out, "[0, 0.6)")
	assert.Contains(t, out, "[0.6, ∞)")
	assert.Contains(t, out, "Haemochromatosis")
}

func TestRenderer_TiersEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	New(buf, nil).Tiers("Hg", domain.ElementRule{})

	assert.Contains(t, buf.String(), "Hg Hg")
	assert.Contains(t, buf.String(), "Limit: -")
	assert.Contains(t, buf.String(), "No risk tiers configured.")
}

func f64(v float64) *float64 { return &v }
