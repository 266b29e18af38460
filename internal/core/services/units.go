package services

import (
	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/logger"
)

type unitPair struct {
	from string
	to   string
}

// conversionFactors maps (input unit, canonical unit) to a multiplier.
var conversionFactors = map[unitPair]float64{
	{"ppm", domain.UnitMilligramsPerLitre}:                         1.0,
	{"ppb", domain.UnitMilligramsPerLitre}:                         0.001,
	{"µg/L", domain.UnitMilligramsPerLitre}:                        0.001,
	{domain.UnitMilligramsPerLitre, domain.UnitMilligramsPerLitre}: 1.0,
}

// UnitConverter normalises measured values to each element's canonical unit.
type UnitConverter struct {
	rules *domain.RuleTable
}

// NewUnitConverter creates a converter backed by the rule table.
func NewUnitConverter(rules *domain.RuleTable) *UnitConverter {
	return &UnitConverter{rules: rules}
}

// ConversionFactor returns the multiplier for an ordered unit pair and
// whether the pair is known. Identical units are always known with factor 1.
func ConversionFactor(from, to string) (float64, bool) {
	if from == to {
		return 1.0, true
	}
	factor, ok := conversionFactors[unitPair{from, to}]
	return factor, ok
}

// Convert returns value expressed in the element's canonical unit.
// Unknown elements are returned unchanged. Unknown unit pairs are treated
// as already canonical (factor 1.0) and reported as a warning.
func (c *UnitConverter) Convert(element string, value float64, inputUnit string) float64 {
	rule, ok := c.rules.Lookup(element)
	if !ok {
		return value
	}

	canonical := rule.CanonicalUnit()
	factor, known := ConversionFactor(inputUnit, canonical)
	if !known {
		logger.Warn("No conversion factor for %s: %s -> %s, assuming canonical", element, inputUnit, canonical)
		factor = 1.0
	}

	converted := value * factor
	logger.Debug("Converted %s: %v %s -> %v %s", element, value, inputUnit, converted, canonical)
	return converted
}
