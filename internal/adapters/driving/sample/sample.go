// Package sample decodes water sample documents for the evaluation engine.
package sample

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/custodia-labs/hie/internal/core/domain"
)

// Decode reads one sample object encoded as JSON or YAML.
// Numbers keep their decoded kind; the engine coerces them.
func Decode(r io.Reader) (domain.RawSample, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("%w: empty sample", domain.ErrInvalidInput)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	switch t := doc.(type) {
	case map[string]any:
		return domain.RawSample(t), nil
	case map[any]any:
		raw := make(domain.RawSample, len(t))
		for k, v := range t {
			raw[fmt.Sprint(k)] = v
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: sample must be an object, got %T", domain.ErrInvalidInput, doc)
	}
}

// Remap translates outward-facing measurement keys such as "Fe_ppm" to the
// internal "Fe (ppm)" form. An internal key already present wins over its
// external alias. Other fields are copied unchanged.
func Remap(raw domain.RawSample) domain.RawSample {
	out := make(domain.RawSample, len(raw))
	for k, v := range raw {
		out[k] = v
	}

	for _, f := range domain.RecognizedFields() {
		v, ok := out[f.ExternalKey]
		if !ok {
			continue
		}
		delete(out, f.ExternalKey)
		if _, exists := out[f.Key]; !exists {
			out[f.Key] = v
		}
	}
	return out
}
