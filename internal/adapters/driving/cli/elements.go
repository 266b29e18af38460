package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hie/internal/adapters/driving/report"
)

var elementsJSON bool

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List supported elements",
	Long:  `List the elements the loaded rule table can classify, with units and permissible limits.`,
	Args:  cobra.NoArgs,
	RunE:  runElements,
}

func init() {
	elementsCmd.Flags().BoolVar(&elementsJSON, "json", false, "output elements as JSON")
	rootCmd.AddCommand(elementsCmd)
}

func runElements(cmd *cobra.Command, _ []string) error {
	svc, err := requireEvaluation()
	if err != nil {
		return err
	}

	elements := svc.Elements()
	if elementsJSON {
		return outputJSON(cmd, elements)
	}
	report.ForWriter(cmd.OutOrStdout()).Elements(elements)
	return nil
}
