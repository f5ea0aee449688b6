// Package commands implements the CLI commands for the vmb build driver.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/vmb/internal/build"
	"go.trai.ch/vmb/internal/core/domain"
)

// CLI represents the command line interface for vmb.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	flags   *rootFlags
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts domain.Options, action domain.Action) error
	ProjectConfig(projectDir string) (*domain.ProjectConfig, error)
	SetupLogging(verbosity int, asJSON bool)
}

// flagAliases maps alternative flag spellings to their canonical names.
var flagAliases = map[string]string{
	"ui-framework": "swift",
	"mobile":       "ios",
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vmb",
		Short:         "Configure, build and test vm projects with cmake",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if canonical, ok := flagAliases[name]; ok {
			name = canonical
		}
		return pflag.NormalizedName(name)
	})

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		flags:   newRootFlags(),
	}
	c.flags.register(rootCmd)

	// -v counts verbosity, so the version flag takes no shorthand.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.run(cmd, domain.BuildAction{Mode: domain.BuildDefault})
	}

	rootCmd.AddCommand(c.newBuildCmd("incremental", "Build updating only what changed", domain.BuildIncremental))
	rootCmd.AddCommand(c.newBuildCmd("clean", "Remove the build directory, then build", domain.BuildClean))
	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newLintCmd())
	rootCmd.AddCommand(c.newVcpkgCmd())
	rootCmd.AddCommand(c.newModInfoCmd())
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

// run resolves the options of cmd and hands action to the application.
func (c *CLI) run(cmd *cobra.Command, action domain.Action) error {
	opts, _, err := c.options(cmd)
	if err != nil {
		return err
	}
	return c.app.Run(cmd.Context(), opts, action)
}
