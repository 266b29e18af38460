// Package cli implements the hie command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hie/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hie/internal/adapters/driven/metrics"
	"github.com/custodia-labs/hie/internal/adapters/driven/rules"
	"github.com/custodia-labs/hie/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hie/internal/core/domain"
	"github.com/custodia-labs/hie/internal/core/ports/driven"
	"github.com/custodia-labs/hie/internal/core/ports/driving"
	"github.com/custodia-labs/hie/internal/core/services"
	"github.com/custodia-labs/hie/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose      bool
	configPath   string
	rulesPath    string
	fallbackFlag string
)

// Wired services. They are built once per process by initServices, or
// injected directly by tests.
var (
	settings          = domain.DefaultAppSettings()
	settingsService   driving.SettingsService
	ruleSource        driven.RuleSource
	evaluationService driving.EvaluationService
	metricsRecorder   *metrics.Recorder
)

var rootCmd = &cobra.Command{
	Use:   "hie",
	Short: "Heavy metal health impact evaluator",
	Long: `hie evaluates groundwater samples for heavy metal contamination.

Each recognised measurement is converted to the unit of its rule,
classified against the configured risk tiers and folded into an overall
verdict. Results can be printed as a table or JSON, or served to AI
assistants over the Model Context Protocol.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "trace each evaluation step on stderr")
	flags.StringVar(&configPath, "config", "", "settings file (default ~/.hie/config.toml)")
	flags.StringVar(&rulesPath, "rules", "", "rule file (JSON, YAML or TOML); overrides rules.path")
	flags.StringVar(&fallbackFlag, "fallback", "", "policy for out-of-range readings: last_tier or none")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which long-running
// commands such as "mcp serve" stop on.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// initServices loads settings and rules and builds the evaluation service.
// Commands that do not evaluate skip it; already wired services are kept.
func initServices(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}
	if skipsServices(cmd) || evaluationService != nil {
		return nil
	}

	if err := loadSettings(cmd); err != nil {
		return err
	}
	logger.SetVerbose(settings.Log.Verbose)

	source := ruleSourceFor(settings.Rules.Path)
	table, err := source.Load()
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	evaluator := services.NewEvaluator(table, settings.Classification.Fallback)
	recorder := metrics.NewRecorder()
	evaluator.SetRecorder(recorder)

	ruleSource = source
	evaluationService = evaluator
	metricsRecorder = recorder
	return nil
}

// loadSettings reads the settings file and applies flag overrides.
func loadSettings(cmd *cobra.Command) error {
	svc, err := newSettingsService()
	if err != nil {
		return err
	}

	loaded, err := svc.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("rules") {
		loaded.Rules.Path = rulesPath
	}
	if flags.Changed("fallback") {
		loaded.Classification.Fallback = domain.FallbackPolicy(fallbackFlag)
	}
	if flags.Changed("verbose") {
		loaded.Log.Verbose = verbose
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	settingsService = svc
	settings = loaded
	return nil
}

// newSettingsService opens the settings file named by --config, or the
// default one. Without a home directory settings live in memory only.
func newSettingsService() (driving.SettingsService, error) {
	if configPath != "" {
		return services.NewSettingsService(file.NewConfigStoreFromFile(configPath)), nil
	}
	store, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("No settings file available, using defaults: %v", err)
		return services.NewSettingsService(memory.NewConfigStore()), nil
	}
	return services.NewSettingsService(store), nil
}

func ruleSourceFor(path string) driven.RuleSource {
	if path == "" {
		return rules.NewEmbeddedSource()
	}
	return rules.NewFileSource(path)
}

// skipsServices reports whether cmd runs without a rule table.
func skipsServices(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoServices] == "true" {
			return true
		}
	}
	return false
}

const annotationNoServices = "hie.no-services"

// requireEvaluation returns the wired service or an error.
func requireEvaluation() (driving.EvaluationService, error) {
	if evaluationService == nil {
		return nil, errors.New("evaluation service not configured")
	}
	return evaluationService, nil
}
