package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hie/internal/adapters/driving/report"
	"github.com/custodia-labs/hie/internal/adapters/driving/sample"
	"github.com/custodia-labs/hie/internal/core/domain"
)

var (
	evaluateJSON      bool
	evaluateNoSummary bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [file|-]",
	Short: "Evaluate a water sample",
	Long: `Evaluate one water sample read from a JSON or YAML file, or stdin.

Measurement fields use either the internal names ("Fe (ppm)", "As (ppb)",
"U (ppb)", "Pb (ppm)", "Cd (ppb)", "Cr (ppm)", "Hg (ppb)") or their
underscore aliases ("Fe_ppm", "As_ppb", ...). A value of "-" means the
element was not measured. Location, State, District, Year, Latitude and
Longitude are copied into the report.

Examples:
  hie evaluate sample.json
  echo '{"Fe_ppm": 0.53, "As_ppb": "-"}' | hie evaluate --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().BoolVar(&evaluateJSON, "json", false, "output the report as JSON")
	evaluateCmd.Flags().BoolVar(&evaluateNoSummary, "no-summary", false, "omit summary statistics")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	svc, err := requireEvaluation()
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeInput()

	raw, err := sample.Decode(in)
	if err != nil {
		return fmt.Errorf("reading sample: %w", err)
	}

	result, err := svc.Evaluate(sample.Remap(raw))
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if settings.Output.Summary && !evaluateNoSummary {
		summary := svc.Summarize(result)
		result.Summary = &summary
	}

	if evaluateJSON || settings.Output.Format == domain.OutputJSON {
		return outputJSON(cmd, result)
	}
	report.ForWriter(cmd.OutOrStdout()).Evaluation(result)
	return nil
}

// openInput returns the sample reader: a named file, or stdin for "-" or
// no argument.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening sample: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
