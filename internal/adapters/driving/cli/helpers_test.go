package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hie/internal/adapters/driven/metrics"
	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/services"
	"github.com/custodia-labs/hie/internal/logger"
)

func f64(v float64) *float64 { return &v }

func testRules() *domain.RuleTable {
	return &domain.RuleTable{HeavyMetals: map[string]domain.ElementRule{
		"As": {
			Name:             "Arsenic",
			Unit:             "ppb",
			PermissibleLimit: f64(10),
			RiskLevels: []domain.RiskTier{
				{MinValue: 0, MaxValue: f64(10), Level: domain.RiskSafe},
				{MinValue: 10, MaxValue: f64(100), Level: domain.RiskHigh,
					Diseases: []string{"Arsenicosis"}, Symptoms: []string{"Skin lesions"}},
				{MinValue: 100, Level: domain.RiskSevere},
			},
		},
		"Fe": {
			Name:             "Iron",
			PermissibleLimit: f64(0.3),
			RiskLevels: []domain.RiskTier{
				{MinValue: 0, MaxValue: f64(1), Level: domain.RiskSafe},
				{MinValue: 1, Level: domain.RiskHigh},
			},
		},
		"Hg": {Name: "Mercury"},
	}}
}

// setupTestServices injects an engine over testRules and returns a cleanup
// that restores the package state.
func setupTestServices() func() {
	evaluator := services.NewEvaluator(testRules(), domain.FallbackLastTier)
	recorder := metrics.NewRecorder()
	evaluator.SetRecorder(recorder)

	evaluationService = evaluator
	metricsRecorder = recorder
	settings = domain.DefaultAppSettings()
	return resetCLI
}

// resetCLI clears wired services and every flag back to its default.
func resetCLI() {
	evaluationService = nil
	metricsRecorder = nil
	ruleSource = nil
	settingsService = nil
	settings = domain.DefaultAppSettings()
	logger.SetVerbose(false)

	var reset func(cmd *cobra.Command)
	reset = func(cmd *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{cmd.PersistentFlags(), cmd.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		for _, c := range cmd.Commands() {
			reset(c)
		}
	}
	reset(rootCmd)

	rootCmd.SetArgs(nil)
	rootCmd.SetIn(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	if stdin != "" {
		rootCmd.SetIn(strings.NewReader(stdin))
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
