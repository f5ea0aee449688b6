package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vmb/internal/core/domain"
)

// newBuildCmd creates a build variant. The optional positional argument is accepted
// and ignored.
func (c *CLI) newBuildCmd(use, short string, mode domain.BuildMode) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [dummy]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, domain.BuildAction{Mode: mode})
		},
	}
}

func (c *CLI) newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove artifacts installed by the last build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, domain.UninstallAction{})
		},
	}
}
