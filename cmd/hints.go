package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/gitex/internal/domain"
)

// hintsCmd represents the hints command.
var hintsCmd = newHintsCmd()

func newHintsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hints <exercise>",
		Short: "Show the hints of an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Hints(domain.HintsArgs{Exercise: args[0]})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(hintsCmd)
}
