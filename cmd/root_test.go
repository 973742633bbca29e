package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/gitex/internal/controller"
	"github.com/mouse-blink/gitex/internal/domain"
)

// resetWiring restores the package-level wiring once the test ends.
func resetWiring(t *testing.T, w domain.Workflow) {
	t.Helper()

	originalWorkflow, originalUI, originalLogger, originalSettings := workflow, ui, logger, settings
	workflow = w

	t.Cleanup(func() {
		workflow, ui, logger, settings = originalWorkflow, originalUI, originalLogger, originalSettings
	})
}

func newTestRootCmd(sub ...func() *cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	for _, newSub := range sub {
		cmd.AddCommand(newSub())
	}

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "gitex", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{"config", "repo", "hints-dir", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	assert.Equal(t, ".gitex.yaml", cmd.PersistentFlags().Lookup("config").DefValue)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"verify", "hook", "list", "hints"})
}

func TestRootCmd_Setup(t *testing.T) {
	t.Run("explicit config must exist", func(t *testing.T) {
		resetWiring(t, nil)

		cmd := newTestRootCmd(newListCmd)
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "list"})

		err := cmd.Execute()
		require.ErrorContains(t, err, "failed to read config")
		assert.Nil(t, workflow)
	})

	t.Run("invalid log level is rejected", func(t *testing.T) {
		resetWiring(t, nil)

		cmd := newTestRootCmd(newListCmd)
		cmd.SetArgs([]string{"--log-level", "loud", "list"})

		err := cmd.Execute()
		require.ErrorContains(t, err, "invalid configuration")
	})

	t.Run("settings file is applied", func(t *testing.T) {
		resetWiring(t, nil)

		path := filepath.Join(t.TempDir(), "gitex.yaml")
		require.NoError(t, os.WriteFile(path, []byte("parallel: 7\nlog_level: error\n"), 0o600))

		cmd := newTestRootCmd(newListCmd)
		cmd.SetArgs([]string{"--config", path, "--repo", t.TempDir(), "list"})

		require.NoError(t, cmd.Execute())
		require.NotNil(t, settings)
		assert.Equal(t, 7, settings.Parallel)
		assert.NotNil(t, workflow)
		assert.NotNil(t, logger)
	})

	t.Run("lists bundled exercises", func(t *testing.T) {
		if controller.IsTTY(os.Stdout) {
			t.Skip("stdout is a terminal")
		}

		resetWiring(t, nil)

		var out bytes.Buffer

		cmd := newTestRootCmd(newListCmd)
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--repo", t.TempDir(), "list"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "FixTypo")
		assert.Contains(t, out.String(), "CaseSensitiveFilename")
		assert.Contains(t, out.String(), "TOTAL 8")
	})
}
