// Package styles provides colour themes and styling for the TUI and for
// CLI reports.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hie/internal/core/domain"
)

// Theme defines the colour palette for rendered reports.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Border is the table and panel border colour.
	Border lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Safe through Severe colour the risk levels.
	Safe     lipgloss.Color
	Elevated lipgloss.Color
	High     lipgloss.Color
	Severe   lipgloss.Color

	// Unknown colours unknown and unclassified elements.
	Unknown lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Border:     lipgloss.Color("#45475A"), // Border gray
		Error:      lipgloss.Color("#F38BA8"), // Red
		Safe:       lipgloss.Color("#A6E3A1"), // Green
		Elevated:   lipgloss.Color("#F9E2AF"), // Yellow
		High:       lipgloss.Color("#FAB387"), // Orange
		Severe:     lipgloss.Color("#EB6F92"), // Rose
		Unknown:    lipgloss.Color("#89B4FA"), // Blue
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme
	plain bool

	// Title style for headers.
	Title lipgloss.Style

	// Header style for table header cells.
	Header lipgloss.Style

	// Cell style for table body cells.
	Cell lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the focused row or field label.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Border style for table borders.
	Border lipgloss.Style

	// Panel style for bordered containers.
	Panel lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	risk map[string]lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	level := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(c)
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Padding(0, 1),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Border: lipgloss.NewStyle().
			Foreground(theme.Border),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		InputField: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		risk: map[string]lipgloss.Style{
			domain.RiskSafe:             level(theme.Safe),
			domain.RiskElevated:         level(theme.Elevated),
			domain.RiskHigh:             level(theme.High),
			domain.RiskSevere:           level(theme.Severe),
			domain.RiskUnknownElement:   level(theme.Unknown),
			domain.RiskNoClassification: level(theme.Unknown),
		},
	}
}

// PlainStyles returns styles that add no colour or emphasis, for output
// that is not a terminal.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		theme:      DefaultTheme(),
		plain:      true,
		Title:      plain,
		Header:     plain.Padding(0, 1),
		Cell:       plain.Padding(0, 1),
		Normal:     plain,
		Muted:      plain,
		Selected:   plain,
		Error:      plain,
		Border:     plain,
		Panel:      plain,
		InputField: plain,
		StatusBar:  plain,
		Help:       plain,
		risk:       map[string]lipgloss.Style{},
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// IsPlain reports whether the styles render without colour.
func (s *Styles) IsPlain() bool {
	return s.plain
}

// Risk returns the style for a risk level label.
func (s *Styles) Risk(level string) lipgloss.Style {
	if style, ok := s.risk[level]; ok {
		return style
	}
	return s.Muted
}
