package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hie/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hie/internal/core/domain"
)

func testRules() *domain.RuleTable {
	return &domain.RuleTable{HeavyMetals: map[string]domain.ElementRule{
		"As": {
			Name:             "Arsenic",
			PermissibleLimit: f64(0.01),
			RiskLevels: []domain.RiskTier{
				{MinValue: 0, MaxValue: f64(0.01), Level: domain.RiskSafe},
				{MinValue: 0.01, Level: domain.RiskHigh, Diseases: []string{"Arsenicosis"}},
			},
		},
	}}
}

func newTestApp(t *testing.T, svc *MockEvaluationService) *App {
	t.Helper()
	if svc == nil {
		svc = &MockEvaluationService{RulesTable: testRules()}
	}
	app, err := NewApp(NewPorts(svc))
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app
}

// run feeds msg to the app and then every message its commands produce,
// skipping batches and other terminal commands.
func run(app *App, msg tea.Msg) {
	for msg != nil {
		_, cmd := app.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
		switch msg.(type) {
		case messages.ViewChanged, messages.EvaluationCompleted, messages.ElementsLoaded:
		default:
			return
		}
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(NewPorts(&MockEvaluationService{}))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingEvaluationService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, nil)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	assert.NotNil(t, newTestApp(t, nil).Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(NewPorts(&MockEvaluationService{}))

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Evaluate sample")
}

func TestApp_Update_CtrlC(t *testing.T) {
	app := newTestApp(t, nil)
	run(app, messages.ViewChanged{View: messages.ViewSample})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	_, cmd := newTestApp(t, nil).Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_MenuNavigatesToSample(t *testing.T) {
	app := newTestApp(t, nil)

	run(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, messages.ViewSample, app.CurrentView())
	assert.Contains(t, app.View(), "Evaluate sample")
	assert.Contains(t, app.View(), "Measurements")
}

func TestApp_EvaluateFlow(t *testing.T) {
	var got domain.RawSample
	svc := &MockEvaluationService{
		RulesTable: testRules(),
		EvaluateFunc: func(raw domain.RawSample) (*domain.EvaluationResult, error) {
			got = raw
			return &domain.EvaluationResult{
				Location:       "Well 7",
				State:          domain.UnknownLocation,
				District:       domain.UnknownLocation,
				Year:           domain.UnknownLocation,
				OverallRisk:    domain.RiskHigh,
				ElementsTested: 1,
				Results: map[string]domain.ElementResult{
					"As": {Concentration: 0.05, Unit: "mg/L", Level: domain.RiskHigh},
				},
			}, nil
		},
	}
	app := newTestApp(t, svc)
	run(app, messages.ViewChanged{View: messages.ViewSample})

	for _, r := range "Well 7" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	run(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, domain.RawSample{domain.FieldLocation: "Well 7"}, got)
	assert.Equal(t, messages.ViewResult, app.CurrentView())
	assert.NoError(t, app.Err())
	out := app.View()
	assert.Contains(t, out, "Sample: Well 7")
	assert.Contains(t, out, "High Risk")

	// esc returns to the form with its values kept
	run(app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewSample, app.CurrentView())
	assert.Contains(t, app.View(), "Well 7")
}

func TestApp_EvaluateFailure(t *testing.T) {
	svc := &MockEvaluationService{
		EvaluateFunc: func(domain.RawSample) (*domain.EvaluationResult, error) {
			return nil, domain.ErrRulesUnavailable
		},
	}
	app := newTestApp(t, svc)
	run(app, messages.ViewChanged{View: messages.ViewSample})

	run(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, messages.ViewSample, app.CurrentView())
	assert.ErrorIs(t, app.Err(), domain.ErrRulesUnavailable)
	assert.Contains(t, app.View(), "Error:")
}

func TestApp_ElementsView(t *testing.T) {
	app := newTestApp(t, nil)

	run(app, messages.ViewChanged{View: messages.ViewElements})

	assert.Equal(t, messages.ViewElements, app.CurrentView())
	out := app.View()
	assert.Contains(t, out, "Arsenic")
	assert.Contains(t, out, "Arsenicosis")

	run(app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_ElementsView_RulesUnavailable(t *testing.T) {
	app := newTestApp(t, &MockEvaluationService{})

	run(app, messages.ViewChanged{View: messages.ViewElements})

	assert.ErrorIs(t, app.Err(), domain.ErrRulesUnavailable)
}

func TestApp_ResultViewBeforeEvaluation(t *testing.T) {
	app := newTestApp(t, nil)

	run(app, messages.ViewChanged{View: messages.ViewResult})

	assert.Contains(t, app.View(), "No sample evaluated yet.")
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t, nil)

	run(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	out := app.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "evaluate")
	assert.Contains(t, out, "not measured")

	// Typed keys other than back and quit are ignored
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, nil)
	run(app, messages.ViewChanged{View: messages.ViewSample})

	app.Update(messages.ErrorOccurred{Err: domain.ErrInvalidInput})

	assert.ErrorIs(t, app.Err(), domain.ErrInvalidInput)
	assert.Contains(t, app.View(), "Error:")
}
