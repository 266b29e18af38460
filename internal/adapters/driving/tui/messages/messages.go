// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/hie/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSample is the sample entry form.
	ViewSample
	// ViewResult shows the last assessment.
	ViewResult
	// ViewElements lists the rule table.
	ViewElements
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSample:
		return "sample"
	case ViewResult:
		return "result"
	case ViewElements:
		return "elements"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// EvaluationCompleted carries an assessment, summary attached, back to
// the model.
type EvaluationCompleted struct {
	Result *domain.EvaluationResult
	Err    error
}

// ElementsLoaded carries the rule table for the elements view.
type ElementsLoaded struct {
	Elements []domain.ElementInfo
	Rules    *domain.RuleTable
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
