package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hie/internal/core/domain"
)

func TestConfigCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(configCmd.Commands()))
	for _, c := range configCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "path", "set", "init"}, names)
}

func TestConfigPathCmd(t *testing.T) {
	defer resetCLI()
	path := filepath.Join(t.TempDir(), "settings.toml")

	out, err := execute(t, "", "--config", path, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestConfigInitCmd(t *testing.T) {
	defer resetCLI()
	path := filepath.Join(t.TempDir(), "hie", "config.toml")

	out, err := execute(t, "", "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "last_tier")
	assert.Contains(t, string(data), "table")
}

func TestConfigInitCmd_RefusesOverwrite(t *testing.T) {
	defer resetCLI()
	path := writeTempFile(t, "config.toml", "[mcp]\nport = 9000\n")

	_, err := execute(t, "", "--config", path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	resetCLI()
	_, err = execute(t, "", "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "9000")
}

func TestConfigShowCmd(t *testing.T) {
	defer resetCLI()
	path := writeTempFile(t, "config.toml", "[mcp]\nport = 9000\n")

	out, err := execute(t, "", "--config", path, "--fallback", "none", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "# "+path)
	assert.Contains(t, out, "9000")
	assert.Contains(t, out, "none")
	assert.Nil(t, evaluationService, "config commands do not load rules")
}

func TestConfigSetCmd(t *testing.T) {
	defer resetCLI()
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := execute(t, "", "--config", path, "config", "set", "classification.fallback", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Set classification.fallback = none")

	resetCLI()
	out, err = execute(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "none")
}

func TestConfigSetCmd_Errors(t *testing.T) {
	defer resetCLI()
	path := filepath.Join(t.TempDir(), "config.toml")

	_, err := execute(t, "", "--config", path, "config", "set", "output.colour", "red")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "rules.path")

	resetCLI()
	_, err = execute(t, "", "--config", path, "config", "set", "mcp.port", "high")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewSettingsService_WithoutHomeUsesMemory(t *testing.T) {
	defer resetCLI()
	t.Setenv("HOME", "")

	svc, err := newSettingsService()

	require.NoError(t, err)
	assert.Equal(t, "memory", svc.Path())
	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), got)
}
