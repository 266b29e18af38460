package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hie/internal/core/services"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long: `Inspect or create the TOML settings file.

Keys:
  rules.path               rule file (JSON, YAML or TOML); empty uses the built-in table
  classification.fallback  last_tier or none
  output.format            table or json
  output.summary           attach summary statistics (default true)
  mcp.port                 HTTP port for "mcp serve" (0 = stdio)
  log.verbose              trace evaluations on stderr`,
	Annotations: map[string]string{annotationNoServices: "true"},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update one setting",
	Long: `Update one setting and save the file.

Example:
  hie config set classification.fallback none`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing settings file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := loadSettings(cmd); err != nil {
		return err
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", settingsService.Path())
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	svc, err := newSettingsService()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), svc.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := newSettingsService()
	if err != nil {
		return err
	}

	if err := svc.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("%w (keys: %s)", err, strings.Join(services.SettingKeys(), ", "))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], svc.Path())
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	svc, err := newSettingsService()
	if err != nil {
		return err
	}

	if _, err := os.Stat(svc.Path()); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := svc.Save(svc.GetDefaults()); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
	return nil
}
