// Package report renders assessments and rule tables as text for the
// CLI and the TUI.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/custodia-labs/hie/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hie/internal/core/domain"
)

// Renderer writes human-readable reports.
type Renderer struct {
	w      io.Writer
	styles *styles.Styles
}

// New returns a renderer that writes to w with the given styles.
func New(w io.Writer, s *styles.Styles) *Renderer {
	if s == nil {
		s = styles.PlainStyles()
	}
	return &Renderer{w: w, styles: s}
}

// ForWriter returns a renderer that uses colour only when w is a terminal.
func ForWriter(w io.Writer) *Renderer {
	st := styles.PlainStyles()
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		st = styles.DefaultStyles()
	}
	return New(w, st)
}

// Styles returns the styles in use.
func (r *Renderer) Styles() *styles.Styles {
	return r.styles
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) table(headers []string, rows [][]string, styleCell func(row, col int) (lipgloss.Style, bool)) string {
	border := lipgloss.RoundedBorder()
	if r.styles.IsPlain() {
		border = lipgloss.ASCIIBorder()
	}

	t := table.New().
		Border(border).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			if styleCell != nil {
				if s, ok := styleCell(row, col); ok {
					return s.Padding(0, 1)
				}
			}
			return r.styles.Cell
		})
	return t.Render()
}

// Evaluation renders one assessment.
func (r *Renderer) Evaluation(result *domain.EvaluationResult) {
	r.printf("%s\n", r.styles.Title.Render("Sample: "+formatMetadata(result.Location)))
	r.printf("  State: %s  District: %s  Year: %s\n",
		formatMetadata(result.State), formatMetadata(result.District), formatMetadata(result.Year))
	r.printf("  Coordinates: %s\n", formatCoordinates(result.Coordinates))
	r.printf("\n")

	if !result.HasAssessment() {
		r.printf("Status: %s\n", result.Status)
		return
	}

	r.printf("Overall risk: %s (%d elements tested)\n\n",
		r.styles.Risk(result.OverallRisk).Render(result.OverallRisk), result.ElementsTested)

	symbols := sortedKeys(result.Results)
	rows := make([][]string, 0, len(symbols))
	for _, symbol := range symbols {
		er := result.Results[symbol]
		rows = append(rows, []string{
			symbol,
			formatNumber(er.Concentration),
			er.Unit,
			formatLimit(er.PermissibleLimit),
			er.Level,
		})
	}
	r.printf("%s\n", r.table(
		[]string{"Element", "Concentration", "Unit", "Limit", "Risk Level"},
		rows,
		func(row, col int) (lipgloss.Style, bool) {
			if col != 4 || row < 0 || row >= len(rows) {
				return lipgloss.Style{}, false
			}
			return r.styles.Risk(rows[row][4]), true
		},
	))

	for _, symbol := range symbols {
		r.healthInfo(symbol, result.Results[symbol])
	}

	if result.Summary != nil {
		r.summary(*result.Summary)
	}
}

func (r *Renderer) healthInfo(symbol string, er domain.ElementResult) {
	if len(er.Diseases) == 0 && len(er.HealthEffects) == 0 && len(er.Symptoms) == 0 {
		return
	}

	r.printf("\n%s %s\n", r.styles.Title.Render(symbol), r.styles.Risk(er.Level).Render("("+er.Level+")"))
	writeList := func(label string, items []string) {
		if len(items) > 0 {
			r.printf("  %s %s\n", r.styles.Muted.Render(label+":"), strings.Join(items, ", "))
		}
	}
	writeList("Diseases", er.Diseases)
	writeList("Health effects", er.HealthEffects)
	writeList("Symptoms", er.Symptoms)
}

func (r *Renderer) summary(s domain.Summary) {
	r.printf("\n%s\n", r.styles.Title.Render("Summary"))
	r.printf("  Elements tested: %d\n", s.TotalElementsTested)

	counts := make([]string, 0, len(s.RiskLevelCounts))
	for _, level := range orderedLevels(s.RiskLevelCounts) {
		counts = append(counts, fmt.Sprintf("%s %d", r.styles.Risk(level).Render(level), s.RiskLevelCounts[level]))
	}
	if len(counts) > 0 {
		r.printf("  Risk levels: %s\n", strings.Join(counts, ", "))
	}

	if len(s.ElementsAboveLimit) == 0 {
		r.printf("  No element exceeds its permissible limit.\n")
		return
	}
	r.printf("  Above permissible limit:\n")
	for _, e := range s.ElementsAboveLimit {
		r.printf("    %s: %s (limit %s, %sx)\n",
			e.Element, formatNumber(e.Concentration), formatNumber(e.Limit), formatNumber(e.TimesAboveLimit))
	}
}

// Tiers renders the risk tiers of one element rule.
func (r *Renderer) Tiers(symbol string, rule domain.ElementRule) {
	r.printf("%s %s\n", r.styles.Title.Render(symbol), r.styles.Muted.Render(rule.DisplayName(symbol)))
	r.printf("  Unit: %s  Limit: %s\n", rule.CanonicalUnit(), formatLimit(rule.PermissibleLimit))

	if len(rule.RiskLevels) == 0 {
		r.printf("  No risk tiers configured.\n")
		return
	}

	rows := make([][]string, 0, len(rule.RiskLevels))
	for _, tier := range rule.RiskLevels {
		rows = append(rows, []string{
			formatRange(tier),
			tier.Label(),
			strings.Join(tier.Diseases, ", "),
		})
	}
	r.printf("%s\n", r.table(
		[]string{"Range", "Risk Level", "Diseases"},
		rows,
		func(row, col int) (lipgloss.Style, bool) {
			if col != 1 || row < 0 || row >= len(rows) {
				return lipgloss.Style{}, false
			}
			return r.styles.Risk(rows[row][1]), true
		},
	))
}

// Elements renders the supported element list.
func (r *Renderer) Elements(elements []domain.ElementInfo) {
	if len(elements) == 0 {
		r.printf("No elements configured.\n")
		return
	}

	rows := make([][]string, 0, len(elements))
	for _, e := range elements {
		rows = append(rows, []string{e.Element, e.Name, e.Unit, formatLimit(e.PermissibleLimit)})
	}
	r.printf("%s\n", r.table([]string{"Element", "Name", "Unit", "Limit"}, rows, nil))
}

// orderedLevels lists count labels in severity order, then any others sorted.
func orderedLevels(counts map[string]int) []string {
	out := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(counts))
	for _, ranked := range domain.SeverityRanking() {
		if _, ok := counts[ranked.Level]; ok {
			out = append(out, ranked.Level)
			seen[ranked.Level] = true
		}
	}

	var rest []string
	for level := range counts {
		if !seen[level] {
			rest = append(rest, level)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func sortedKeys(m map[string]domain.ElementResult) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatLimit(limit *float64) string {
	if limit == nil {
		return "-"
	}
	return formatNumber(*limit)
}

// formatRange renders a tier as a half-open interval.
func formatRange(t domain.RiskTier) string {
	upper := "∞"
	if t.MaxValue != nil {
		upper = formatNumber(*t.MaxValue)
	}
	return "[" + formatNumber(t.MinValue) + ", " + upper + ")"
}

// formatMetadata prints a location field; numbers use the shortest form.
func formatMetadata(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		return t
	case float64:
		return formatNumber(t)
	default:
		return fmt.Sprint(t)
	}
}

func formatCoordinates(c domain.Coordinates) string {
	if c.Latitude == nil && c.Longitude == nil {
		return domain.UnknownLocation
	}
	part := func(v *float64) string {
		if v == nil {
			return "?"
		}
		return formatNumber(*v)
	}
	return part(c.Latitude) + ", " + part(c.Longitude)
}
