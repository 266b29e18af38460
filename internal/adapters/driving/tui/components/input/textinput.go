// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hie/internal/adapters/driving/tui/styles"
)

// labelWidth aligns every field label in a form column.
const labelWidth = 12

// FieldInput is a labelled single-line input bound to one sample field.
type FieldInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	key       string
	label     string
	width     int
}

// NewFieldInput creates an unfocused input for the sample field key.
// The label is what the user sees; key is what ends up in the sample.
func NewFieldInput(s *styles.Styles, key, label, placeholder string) *FieldInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 24
	ti.Prompt = ""

	return &FieldInput{
		textinput: ti,
		styles:    s,
		key:       key,
		label:     label,
		width:     24,
	}
}

// Init initialises the input.
func (f *FieldInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *FieldInput) Update(msg tea.Msg) (*FieldInput, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label and input on one line.
func (f *FieldInput) View() string {
	cursor := "  "
	labelStyle := f.styles.Muted
	if f.Focused() {
		cursor = "> "
		labelStyle = f.styles.Selected
	}

	label := labelStyle.Render(padRight(f.label, labelWidth))
	value := f.styles.InputField.Render(f.textinput.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, cursor, label, " ", value)
}

// Key returns the sample field this input fills.
func (f *FieldInput) Key() string {
	return f.key
}

// Label returns the displayed label.
func (f *FieldInput) Label() string {
	return f.label
}

// Value returns the current input value with surrounding space removed.
func (f *FieldInput) Value() string {
	return strings.TrimSpace(f.textinput.Value())
}

// SetValue sets the input value.
func (f *FieldInput) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *FieldInput) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *FieldInput) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *FieldInput) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the input.
func (f *FieldInput) SetWidth(width int) {
	f.width = width
	// Account for cursor, label and padding
	inputWidth := width - labelWidth - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *FieldInput) Width() int {
	return f.width
}

// Reset clears the input.
func (f *FieldInput) Reset() {
	f.textinput.Reset()
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
