package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementResult_ExceedsLimit(t *testing.T) {
	tests := []struct {
		name   string
		result ElementResult
		want   bool
	}{
		{name: "no limit", result: ElementResult{Concentration: 5}, want: false},
		{name: "zero limit", result: ElementResult{Concentration: 5, PermissibleLimit: ptr(0)}, want: false},
		{name: "equal to limit", result: ElementResult{Concentration: 1, PermissibleLimit: ptr(1)}, want: false},
		{name: "above limit", result: ElementResult{Concentration: 1.01, PermissibleLimit: ptr(1)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.ExceedsLimit())
		})
	}
}

func TestNewElementResult(t *testing.T) {
	c := RiskClassification{
		Level:         RiskHigh,
		Diseases:      []string{"Arsenicosis"},
		HealthEffects: []string{"Skin lesions"},
		Symptoms:      []string{},
	}

	r := NewElementResult(0.05, "mg/L", ptr(0.01), c)

	assert.Equal(t, 0.05, r.Concentration)
	assert.Equal(t, "mg/L", r.Unit)
	assert.Equal(t, RiskHigh, r.Level)
	assert.Equal(t, c.Diseases, r.Diseases)
}

func TestEvaluationResult_NoDataOmitsVerdict(t *testing.T) {
	r := EvaluationResult{
		Location: UnknownLocation,
		State:    UnknownLocation,
		District: UnknownLocation,
		Year:     UnknownLocation,
		Status:   StatusNoHeavyMetals,
		Results:  map[string]ElementResult{},
	}

	assert.False(t, r.HasAssessment())

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotContains(t, doc, "Overall_Risk")
	assert.NotContains(t, doc, "Elements_Tested")
	assert.NotContains(t, doc, "Summary")
	assert.Equal(t, StatusNoHeavyMetals, doc["Status"])
	assert.Equal(t, map[string]any{"Latitude": nil, "Longitude": nil}, doc["Coordinates"])
}

func TestEvaluationResult_JSONFieldNames(t *testing.T) {
	r := EvaluationResult{
		OverallRisk:    RiskSafe,
		ElementsTested: 1,
		Results: map[string]ElementResult{
			"Fe": NewElementResult(0.53, "mg/L", ptr(0.3), RiskClassification{Level: RiskSafe}),
		},
	}
	assert.True(t, r.HasAssessment())

	data, err := json.Marshal(r)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"Overall_Risk":"Safe"`)
	assert.Contains(t, s, `"Elements_Tested":1`)
	assert.Contains(t, s, `"Risk Level":"Safe"`)
	assert.Contains(t, s, `"Permissible_Limit":0.3`)
	assert.NotContains(t, s, `"Status"`)
}

func TestEmptySummary(t *testing.T) {
	s := EmptySummary()

	assert.NotNil(t, s.RiskLevelCounts)
	assert.NotNil(t, s.ElementsAboveLimit)
	assert.Zero(t, s.TotalElementsTested)
}
