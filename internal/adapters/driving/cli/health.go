package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the engine is ready",
	Long:  `Load settings and rules and report the rule source and element count.`,
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	svc, err := requireEvaluation()
	if err != nil {
		return err
	}

	source := "injected"
	if ruleSource != nil {
		source = ruleSource.Describe()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Status: healthy")
	fmt.Fprintln(out, "Engine: loaded")
	fmt.Fprintf(out, "Rules: %s\n", source)
	fmt.Fprintf(out, "Elements: %d\n", len(svc.Elements()))
	return nil
}
