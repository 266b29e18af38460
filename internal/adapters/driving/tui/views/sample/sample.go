// Package sample provides the sample entry form for the TUI.
package sample

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hie/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/ports/driving"
)

// metadataFields are the descriptive fields shown above the measurements.
var metadataFields = []string{
	domain.FieldLocation,
	domain.FieldState,
	domain.FieldDistrict,
	domain.FieldYear,
	domain.FieldLatitude,
	domain.FieldLongitude,
}

// View is a form with one input per location field and per recognised
// measurement. Blank inputs are left out of the sample.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	fields    []*input.FieldInput
	statusbar *status.Bar
	focus     int

	evaluation driving.EvaluationService

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates the sample form.
func NewView(s *styles.Styles, km *keymap.KeyMap, evaluation driving.EvaluationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	fields := make([]*input.FieldInput, 0, len(metadataFields)+len(domain.RecognizedFields()))
	for _, name := range metadataFields {
		fields = append(fields, input.NewFieldInput(s, name, name, ""))
	}
	for _, f := range domain.RecognizedFields() {
		fields = append(fields, input.NewFieldInput(s, f.Key, f.Key, "not measured"))
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.FormHelp())

	v := &View{
		styles:     s,
		keymap:     km,
		fields:     fields,
		statusbar:  bar,
		evaluation: evaluation,
		width:      80,
		height:     24,
	}
	v.fields[0].Focus()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.fields[v.focus].Init()
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.EvaluationCompleted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.statusbar.Clear()
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(k, v.keymap.Clear):
		v.Reset()
		return v, nil
	case keymap.Matches(k, v.keymap.NextField):
		return v, v.moveFocus(1)
	case keymap.Matches(k, v.keymap.PrevField):
		return v, v.moveFocus(-1)
	case keymap.Matches(k, v.keymap.Evaluate):
		if v.evaluation == nil {
			return v, nil
		}
		v.statusbar.SetState(status.StateEvaluating)
		return v, Evaluate(v.evaluation, v.Sample())
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

// moveFocus shifts focus by delta, wrapping at both ends.
func (v *View) moveFocus(delta int) tea.Cmd {
	v.fields[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.fields)) % len(v.fields)
	return v.fields[v.focus].Focus()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// Evaluate returns a command that assesses raw and attaches the summary.
func Evaluate(svc driving.EvaluationService, raw domain.RawSample) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.Evaluate(raw)
		if err != nil {
			return messages.EvaluationCompleted{Err: err}
		}
		summary := svc.Summarize(result)
		result.Summary = &summary
		return messages.EvaluationCompleted{Result: result}
	}
}

// Sample builds the raw sample from the non-blank inputs. Values stay
// strings; the engine coerces measurements and coordinates itself.
func (v *View) Sample() domain.RawSample {
	raw := make(domain.RawSample)
	for _, f := range v.fields {
		if value := f.Value(); value != "" {
			raw[f.Key()] = value
		}
	}
	return raw
}

// View renders the form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Evaluate sample"))
	b.WriteString("\n\n")

	for i, f := range v.fields {
		if i == len(metadataFields) {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render("Measurements (\"-\" = not measured)"))
			b.WriteString("\n")
		}
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
	for _, f := range v.fields {
		f.SetWidth(width)
	}
}

// Reset clears every input and returns focus to the first one.
func (v *View) Reset() {
	for _, f := range v.fields {
		f.Reset()
		f.Blur()
	}
	v.focus = 0
	v.fields[0].Focus()
	v.err = nil
	v.statusbar.Clear()
}

// Focus returns the index of the focused input.
func (v *View) Focus() int {
	return v.focus
}

// Fields returns the form inputs in display order.
func (v *View) Fields() []*input.FieldInput {
	return v.fields
}

// Err returns the last evaluation error.
func (v *View) Err() error {
	return v.err
}
