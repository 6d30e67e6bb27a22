package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Print the approved and rejected libraries of an output root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.State(cmd.Context(), commonOptions(cmd))
		},
	}
	addOutFlag(cmd)
	return cmd
}
