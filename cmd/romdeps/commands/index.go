package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/romdeps/internal/app"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [libraries...]",
		Short: "List the binaries that declare each library",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			includeAll, _ := cmd.Flags().GetBool("all-files")
			parallelism, _ := cmd.Flags().GetInt("jobs")
			return c.app.Index(cmd.Context(), args, app.IndexOptions{
				CommonOptions: commonOptions(cmd),
				IncludeAll:    includeAll,
				Parallelism:   parallelism,
			})
		},
	}
	addRootFlag(cmd)
	cmd.Flags().Bool("all-files", false, "Read every regular file, not only binary-looking ones")
	cmd.Flags().IntP("jobs", "j", 0, "Concurrent metadata reads (default from config, else one per CPU)")
	return cmd
}
