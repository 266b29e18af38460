package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hie/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The TUI offers a form for entering one sample, a scrollable report of the
assessment and a browser for the loaded rule table.

Controls:
  tab/shift+tab  Move between form fields
  Enter          Evaluate / Select
  ↑/k, ↓/j       Navigate lists and scroll reports
  ctrl+r         Clear the form
  Esc            Back
  ?              Help
  q              Quit (outside the form)`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	svc, err := requireEvaluation()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(svc))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
