// Package commands implements the CLI commands for romdeps.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/romdeps/internal/app"
	"go.trai.ch/romdeps/internal/build"
)

// CLI represents the command line interface for romdeps.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(verbose, jsonLog bool)
	Resolve(ctx context.Context, binaries []string, opts app.ResolveOptions) error
	Index(ctx context.Context, libraries []string, opts app.IndexOptions) error
	Inspect(ctx context.Context, binary string, opts app.CommonOptions) error
	State(ctx context.Context, opts app.CommonOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "romdeps",
		Short:         "Resolve and package the shared library dependencies of firmware binaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to romdeps.yaml (default: searched upward from the working directory)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		a.ConfigureLogging(verbose, jsonLog)
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newStateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func addRootFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("root", "r", "", "Search root: the extracted firmware image (default from config, else .)")
}

func addOutFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "Output root (default from config, else romdeps-out)")
}

func commonOptions(cmd *cobra.Command) app.CommonOptions {
	configPath, _ := cmd.Flags().GetString("config")
	root, _ := cmd.Flags().GetString("root")
	out, _ := cmd.Flags().GetString("out")
	return app.CommonOptions{
		ConfigPath: configPath,
		SearchRoot: root,
		OutputRoot: out,
	}
}
