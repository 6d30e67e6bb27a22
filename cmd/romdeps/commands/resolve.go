package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/romdeps/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [binaries...]",
		Short: "Resolve, approve and copy the transitive dependencies of binaries",
		Long: "Resolve walks the NEEDED libraries of each binary inside the search root, asks for\n" +
			"a decision on every library seen for the first time, mirrors approved libraries\n" +
			"into the output root and writes dependencies.dot, missing_deps.txt and references.txt.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
			policy, _ := cmd.Flags().GetString("policy")
			approve, _ := cmd.Flags().GetStringSlice("approve")
			reject, _ := cmd.Flags().GetStringSlice("reject")
			copyRefs, _ := cmd.Flags().GetBool("copy-references")
			noIndex, _ := cmd.Flags().GetBool("no-index")

			return c.app.Resolve(cmd.Context(), args, app.ResolveOptions{
				CommonOptions:  commonOptions(cmd),
				NonInteractive: nonInteractive,
				Policy:         policy,
				Approve:        approve,
				Reject:         reject,
				CopyReferences: copyRefs,
				NoIndex:        noIndex,
			})
		},
	}
	addRootFlag(cmd)
	addOutFlag(cmd)
	cmd.Flags().BoolP("non-interactive", "n", false, "Never prompt; apply the non-interactive policy")
	cmd.Flags().String("policy", "", "Non-interactive policy: defer, approve or reject (default from config, else defer)")
	cmd.Flags().StringSlice("approve", nil, "Approve libraries matching these globs without asking")
	cmd.Flags().StringSlice("reject", nil, "Reject libraries matching these globs without asking")
	cmd.Flags().Bool("copy-references", false, "Mirror binaries referencing approved libraries into _references")
	cmd.Flags().Bool("no-index", false, "Skip the reference sweep; references.txt lists no referrers")
	return cmd
}
