package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/logger"
)

// errNotNumeric is returned by coerceNumber for unsupported values.
var errNotNumeric = errors.New("not a number")

// InputSanitizer extracts recognised measurements from a raw sample.
type InputSanitizer struct {
	converter *UnitConverter
	fields    []domain.RecognizedField
}

// NewInputSanitizer creates a sanitizer over the fixed recognised fields.
func NewInputSanitizer(converter *UnitConverter) *InputSanitizer {
	return &InputSanitizer{
		converter: converter,
		fields:    domain.RecognizedFields(),
	}
}

// Clean returns the recognised concentrations in canonical units.
// Absent, null, empty and "-" values are skipped, as are values that
// cannot be read as a finite number. Other fields are ignored.
func (s *InputSanitizer) Clean(raw domain.RawSample) domain.CleanedSample {
	logger.Section("Input Cleaning")
	cleaned := make(domain.CleanedSample)

	for _, field := range s.fields {
		value, ok := raw[field.Key]
		if !ok {
			continue
		}
		if isMissing(value) {
			logger.Info("No data for %s", field.Element)
			continue
		}

		number, err := coerceNumber(value)
		if err != nil {
			logger.Warn("Could not convert %s value %q: %v", field.Element, fmt.Sprint(value), err)
			continue
		}

		cleaned[field.Element] = s.converter.Convert(field.Element, number, field.Unit)
	}

	return cleaned
}

// isMissing reports whether a raw value denotes "no measurement".
func isMissing(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == "" || t == domain.MissingValueSentinel
	default:
		return false
	}
}

// coerceNumber reads a finite float64 from any numeric kind or a numeric string.
// Booleans are rejected instead of being read as 1 or 0, and NaN or ±Inf
// are rejected instead of falling through to the last risk tier, so such
// fields are skipped rather than classified.
func coerceNumber(v any) (float64, error) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, err
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", errNotNumeric, v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: non-finite value", errNotNumeric)
	}
	return f, nil
}
