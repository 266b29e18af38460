// Package elements provides the rule table browser for the TUI.
package elements

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hie/internal/adapters/driving/report"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/ports/driving"
)

// View lists the supported elements and the tiers of the selected one.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	evaluation driving.EvaluationService
	elements   []domain.ElementInfo
	rules      *domain.RuleTable
	selected   int

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates the elements view.
func NewView(s *styles.Styles, km *keymap.KeyMap, evaluation driving.EvaluationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.ListHelp())

	return &View{
		styles:     s,
		keymap:     km,
		statusbar:  bar,
		evaluation: evaluation,
		width:      80,
		height:     24,
	}
}

// Init loads the rule table.
func (v *View) Init() tea.Cmd {
	if v.evaluation == nil {
		return nil
	}
	svc := v.evaluation
	return func() tea.Msg {
		rules := svc.Rules()
		if rules == nil {
			return messages.ElementsLoaded{Err: domain.ErrRulesUnavailable}
		}
		return messages.ElementsLoaded{Elements: svc.Elements(), Rules: rules}
	}
}

// Update handles messages for the elements view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ElementsLoaded:
		v.selected = 0
		v.statusbar.Clear()
		if msg.Err != nil {
			v.err = msg.Err
			v.elements = nil
			v.rules = nil
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.elements = msg.Elements
		v.rules = msg.Rules
		v.statusbar.SetMessage(fmt.Sprintf("%d elements", len(msg.Elements)))
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(k, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(k, v.keymap.Down):
			if v.selected < len(v.elements)-1 {
				v.selected++
			}
		case keymap.Matches(k, v.keymap.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

// View renders the element list and the selected element's tiers.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Elements"))
	b.WriteString("\n\n")

	if len(v.elements) == 0 {
		b.WriteString(v.styles.Muted.Render("No elements configured."))
		b.WriteString("\n\n")
		b.WriteString(v.statusbar.View())
		return b.String()
	}

	for i, e := range v.elements {
		line := fmt.Sprintf("%-3s %s", e.Element, e.Name)
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(line))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if e, ok := v.Selected(); ok {
		if rule, found := v.rules.Lookup(e.Element); found {
			report.New(&b, v.styles).Tiers(e.Element, rule)
			b.WriteString("\n")
		}
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

// Selected returns the highlighted element.
func (v *View) Selected() (domain.ElementInfo, bool) {
	if v.selected < 0 || v.selected >= len(v.elements) {
		return domain.ElementInfo{}, false
	}
	return v.elements[v.selected], true
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
