// Package cmd provides the root command and CLI setup for gitex.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/gitex/internal/adapter"
	"github.com/mouse-blink/gitex/internal/config"
	"github.com/mouse-blink/gitex/internal/controller"
	"github.com/mouse-blink/gitex/internal/domain"
	"github.com/mouse-blink/gitex/internal/domain/exercises"
	"github.com/mouse-blink/gitex/internal/logging"
)

var settings *config.Config
var logger *zap.Logger
var ui controller.UI
var workflow domain.Workflow

var configFlag string
var repoFlag string
var hintsDirFlag string
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitex",
		Short: "Verify git exercise solutions",
		Long: `Gitex checks that a range of pushed commits solves a git exercise.

The exercise is picked from the branch name: refs/heads/fix-typo is verified
by the FixTypo exercise. Run it directly with "verify" or install it as a
pre-receive hook with "hook".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if workflow != nil {
				return nil
			}

			return setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultPath, "path to the settings file")
	cmd.PersistentFlags().StringVarP(&repoFlag, "repo", "r", "", "git directory to read commits from")
	cmd.PersistentFlags().StringVar(&hintsDirFlag, "hints-dir", "", "directory with <Exercise>.txt hint files")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

// setup loads the settings and wires the workflow with its adapters.
func setup(cmd *cobra.Command) error {
	cfg, err := config.Load(configFlag, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	if repoFlag != "" {
		cfg.Repo = repoFlag
	}

	if hintsDirFlag != "" {
		cfg.HintsDir = hintsDirFlag
	}

	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	var hints adapter.HintStore = adapter.NewFSHintStore(exercises.Hints())
	if cfg.HintsDir != "" {
		hints = adapter.NewDirHintStore(cfg.HintsDir)
	}

	registry := domain.NewRegistry()
	exercises.Register(registry)

	vcs := adapter.NewLocalGitAdapter(cfg.Repo, cfg.GitBinary)
	ui = controller.NewUI(cmd.Root(), controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(domain.NewFactory(registry, vcs, hints), registry, ui, logger)
	settings = cfg

	logger.Debug("configured",
		zap.String("repo", cfg.Repo),
		zap.String("hints_dir", cfg.HintsDir),
		zap.Int("parallel", cfg.Parallel))

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
