// Package result provides the assessment view for the TUI.
package result

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hie/internal/adapters/driving/report"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hie/internal/core/domain"
)

// View shows the last assessment as a scrollable report.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	result *domain.EvaluationResult
	lines  []string
	offset int

	width  int
	height int
	ready  bool
}

// NewView creates an empty result view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.ListHelp())

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: bar,
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult replaces the displayed assessment and scrolls to the top.
func (v *View) SetResult(result *domain.EvaluationResult) {
	v.result = result
	v.offset = 0
	v.lines = nil
	v.statusbar.Clear()

	if result == nil {
		return
	}

	var b strings.Builder
	report.New(&b, v.styles).Evaluation(result)
	v.lines = strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

	v.statusbar.SetState(status.StateResult)
	if result.HasAssessment() {
		v.statusbar.SetVerdict(result.OverallRisk)
	} else {
		v.statusbar.SetMessage(result.Status)
	}
}

// Update handles messages for the result view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSample}
			}
		case keymap.Matches(k, v.keymap.Up):
			if v.offset > 0 {
				v.offset--
			}
		case keymap.Matches(k, v.keymap.Down):
			if v.offset < v.maxOffset() {
				v.offset++
			}
		case keymap.Matches(k, v.keymap.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

// pageSize is the number of report lines that fit above the status bar.
func (v *View) pageSize() int {
	if n := v.height - 2; n > 0 {
		return n
	}
	return 1
}

func (v *View) maxOffset() int {
	if n := len(v.lines) - v.pageSize(); n > 0 {
		return n
	}
	return 0
}

// View renders the visible part of the report.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	if v.result == nil {
		b.WriteString(v.styles.Muted.Render("No sample evaluated yet."))
		b.WriteString("\n\n")
	} else {
		end := v.offset + v.pageSize()
		if end > len(v.lines) {
			end = len(v.lines)
		}
		b.WriteString(strings.Join(v.lines[v.offset:end], "\n"))
		b.WriteString("\n\n")
	}
	b.WriteString(v.statusbar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Result returns the displayed assessment.
func (v *View) Result() *domain.EvaluationResult {
	return v.result
}

// Offset returns the first visible report line.
func (v *View) Offset() int {
	return v.offset
}
