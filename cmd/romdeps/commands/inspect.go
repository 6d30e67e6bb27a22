package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect binary",
		Short: "Show the dynamic section of a binary and how each dependency resolves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Inspect(cmd.Context(), args[0], commonOptions(cmd))
		},
	}
	addRootFlag(cmd)
	return cmd
}
