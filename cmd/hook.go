package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gitex/internal/domain"
)

var hookParallelFlag int

// hookCmd represents the hook command.
var hookCmd = newHookCmd()

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Verify pushed refs as a git pre-receive hook",
		Long: `Hook reads "<old> <new> <ref>" lines from standard input, as git passes them
to a pre-receive hook, and verifies each updated branch against the exercise
named after it. Deleted refs are skipped.

The push is rejected (non-zero exit) when any exercise fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			updates, err := domain.ParseRefUpdates(cmd.InOrStdin())
			if err != nil {
				return err
			}

			return workflow.Hook(domain.HookArgs{
				Updates: updates,
				Threads: hookThreads(),
			})
		},
	}
	cmd.Flags().IntVarP(&hookParallelFlag, "parallel", "p", 0, "number of refs verified at once (default from settings)")

	return cmd
}

func hookThreads() int {
	if hookParallelFlag > 0 {
		return hookParallelFlag
	}

	if settings != nil {
		return settings.Parallel
	}

	return 1
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
