package domain

import "fmt"

const unknownDescription = "Unknown"

// FallbackPolicy decides what the classifier reports when a concentration
// falls outside every tier of a known element.
type FallbackPolicy string

// Available fallback policies.
const (
	// FallbackLastTier reports the last tier, treated as the most severe.
	FallbackLastTier FallbackPolicy = "last_tier"

	// FallbackNone reports "No Classification Available".
	FallbackNone FallbackPolicy = "none"
)

// IsValid returns true if the policy is recognised.
func (p FallbackPolicy) IsValid() bool {
	switch p {
	case FallbackLastTier, FallbackNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p FallbackPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p FallbackPolicy) Description() string {
	switch p {
	case FallbackLastTier:
		return "Last tier (over-classify out-of-range readings)"
	case FallbackNone:
		return "None (report no classification)"
	default:
		return unknownDescription
	}
}

// OutputFormat selects how the CLI renders results.
type OutputFormat string

// Available output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
)

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	return f == OutputTable || f == OutputJSON
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// RuleSettings locates the rule table.
type RuleSettings struct {
	// Path is a JSON, YAML or TOML rule file. Empty uses the built-in table.
	Path string `toml:"path"`
}

// ClassificationSettings tunes the classifier.
type ClassificationSettings struct {
	Fallback FallbackPolicy `toml:"fallback"`
}

// OutputSettings controls CLI rendering.
type OutputSettings struct {
	Format OutputFormat `toml:"format"`

	// Summary attaches summary statistics to each evaluation.
	Summary bool `toml:"summary"`
}

// MCPSettings controls the MCP server.
type MCPSettings struct {
	// Port serves over HTTP when positive, stdio otherwise.
	Port int `toml:"port"`
}

// LogSettings controls diagnostic output.
type LogSettings struct {
	Verbose bool `toml:"verbose"`
}

// AppSettings holds all application settings.
type AppSettings struct {
	Rules          RuleSettings           `toml:"rules"`
	Classification ClassificationSettings `toml:"classification"`
	Output         OutputSettings         `toml:"output"`
	MCP            MCPSettings            `toml:"mcp"`
	Log            LogSettings            `toml:"log"`
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Classification: ClassificationSettings{Fallback: FallbackLastTier},
		Output: OutputSettings{
			Format:  OutputTable,
			Summary: true,
		},
	}
}

// Validate checks enumerated values.
func (s AppSettings) Validate() error {
	if !s.Classification.Fallback.IsValid() {
		return fmt.Errorf("%w: classification.fallback %q", ErrInvalidConfig, s.Classification.Fallback)
	}
	if !s.Output.Format.IsValid() {
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, s.Output.Format)
	}
	if s.MCP.Port < 0 || s.MCP.Port > 65535 {
		return fmt.Errorf("%w: mcp.port %d", ErrInvalidConfig, s.MCP.Port)
	}
	return nil
}

// AllFallbackPolicies returns all available fallback policies.
func AllFallbackPolicies() []FallbackPolicy {
	return []FallbackPolicy{FallbackLastTier, FallbackNone}
}
