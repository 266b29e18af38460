package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/ports/driven"
	"github.com/custodia-labs/hie/internal/logger"
)

//go:embed schema.cue
var schemaSource string

//go:embed default_rules.json
var defaultRules []byte

// Ensure Source implements the interface.
var _ driven.RuleSource = (*Source)(nil)

// Format identifies a rule document encoding.
type Format string

// Supported rule document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unsupported rule file extension %q", domain.ErrRuleLoad, filepath.Ext(path))
	}
}

// Source loads a rule table from a file or the built-in defaults.
type Source struct {
	name   string
	format Format
	read   func() ([]byte, error)
}

// NewFileSource creates a source reading the rule file at path.
// The format is chosen by extension when the table is loaded.
func NewFileSource(path string) *Source {
	return &Source{
		name: path,
		read: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// NewEmbeddedSource creates a source over the built-in rule table.
func NewEmbeddedSource() *Source {
	return &Source{
		name:   "built-in",
		format: FormatJSON,
		read:   func() ([]byte, error) { return defaultRules, nil },
	}
}

// Describe names where the rules come from.
func (s *Source) Describe() string {
	return s.name
}

// Load reads, validates and decodes the rule table.
// Every failure wraps domain.ErrRuleLoad.
func (s *Source) Load() (*domain.RuleTable, error) {
	format := s.format
	if format == "" {
		f, err := FormatFromPath(s.name)
		if err != nil {
			return nil, err
		}
		format = f
	}

	data, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleLoad, err)
	}

	table, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}

	logger.Info("Loaded %d element rules from %s", len(table.HeavyMetals), s.name)
	return table, nil
}

// Parse decodes a rule document. Non-finite numbers are read as null, so
// an infinite max_value means unbounded while a non-finite min_value or
// limit is rejected by the schema.
func Parse(data []byte, format Format) (*domain.RuleTable, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleLoad, err)
	}
	doc = normalize(doc)

	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleLoad, err)
	}

	// The document is schema-valid, so this only maps it onto the typed table.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleLoad, err)
	}
	var table domain.RuleTable
	if err := json.Unmarshal(encoded, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleLoad, err)
	}
	if table.HeavyMetals == nil {
		table.HeavyMetals = map[string]domain.ElementRule{}
	}
	return &table, nil
}

func decodeDocument(data []byte, format Format) (any, error) {
	var doc any
	switch format {
	case FormatJSON, FormatYAML:
		// YAML is a superset of JSON.
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		doc = table
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if doc == nil {
		return nil, fmt.Errorf("empty rule document")
	}
	return doc, nil
}

// normalize converts decoded values into JSON-compatible shapes.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return t
	case float32:
		return normalize(float64(t))
	default:
		return v
	}
}

func validate(doc any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource)
	if err := schema.Err(); err != nil {
		return err
	}
	def := schema.LookupPath(cue.ParsePath("#RuleTable"))

	value := ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return err
	}

	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema: %s", strings.TrimSpace(cueerrors.Details(err, nil)))
	}
	return nil
}
