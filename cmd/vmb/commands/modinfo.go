package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vmb/internal/core/domain"
)

func (c *CLI) newModInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modinfo",
		Short: "Print git metadata of the project and its submodules as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, domain.ModuleInfoAction{})
		},
	}
}
