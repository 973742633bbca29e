package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gitex/internal/domain"
	m "github.com/mouse-blink/gitex/internal/model"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <exercise> <old-revision> <new-revision>",
		Short: "Verify one revision range against an exercise",
		Long: `Verify runs the rule-set of an exercise against the commits reachable from
<new-revision> but not from <old-revision>.

The exercise may be given as a branch name (fix-typo, refs/heads/fix-typo) or
by its registered name (FixTypo). Use an all-zero old revision to verify
every commit reachable from the new one.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Verify(domain.VerifyArgs{
				Exercise: args[0],
				Old:      m.Revision(args[1]),
				New:      m.Revision(args[2]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
