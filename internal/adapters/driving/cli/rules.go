package cli

import (
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the loaded rule table",
	Long:  `Print the loaded rule table as JSON, after validation and decoding.`,
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, _ []string) error {
	svc, err := requireEvaluation()
	if err != nil {
		return err
	}
	return outputJSON(cmd, svc.Rules())
}
