package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hie/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/views/elements"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/views/result"
	"github.com/custodia-labs/hie/internal/adapters/driving/tui/views/sample"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	menuView     *menu.View
	sampleView   *sample.View
	resultView   *result.View
	elementsView *elements.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	h := help.New()
	h.ShowAll = true

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		help:         h,
		menuView:     menu.NewView(s, km),
		sampleView:   sample.NewView(s, km, ports.Evaluation),
		resultView:   result.NewView(s, km),
		elementsView: elements.NewView(s, km, ports.Evaluation),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("hie - Health Impact Evaluator"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if keymap.Matches(msg.String(), a.keymap.Back) {
				a.currentView = messages.ViewMenu
			} else if keymap.Matches(msg.String(), a.keymap.Quit) {
				return a, tea.Quit
			}
			return a, nil
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSample:
			return a, a.sampleView.Init()
		case messages.ViewElements:
			return a, a.elementsView.Init()
		case messages.ViewMenu, messages.ViewResult, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.EvaluationCompleted:
		a.sampleView, cmd = a.sampleView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			return a, cmd
		}
		a.err = nil
		a.resultView.SetResult(msg.Result)
		a.currentView = messages.ViewResult
		return a, cmd

	case messages.ElementsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.elementsView, cmd = a.elementsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSample {
			a.sampleView, cmd = a.sampleView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink and the like) to the active view
	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSample:
		a.sampleView, cmd = a.sampleView.Update(msg)
	case messages.ViewResult:
		a.resultView, cmd = a.resultView.Update(msg)
	case messages.ViewElements:
		a.elementsView, cmd = a.elementsView.Update(msg)
	case messages.ViewHelp:
		// Help view has no state
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSample:
		return a.sampleView.View()
	case messages.ViewResult:
		return a.resultView.View()
	case messages.ViewElements:
		return a.elementsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the keybinding reference.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.help.View(a.keymap))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render(
		`Enter one sample in the form. Blank fields are left out and "-" marks
an element that was not measured. Each reading is converted to its
rule unit, classified and folded into the overall verdict.`))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.menuView.SetDimensions(width, height)
	a.sampleView.SetDimensions(width, height)
	a.resultView.SetDimensions(width, height)
	a.elementsView.SetDimensions(width, height)
}
