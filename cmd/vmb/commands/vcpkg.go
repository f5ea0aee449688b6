package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vmb/internal/core/domain"
)

func (c *CLI) newVcpkgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vcpkg",
		Short: "Build foundational c++ libraries with vcpkg",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, cfg, err := c.options(cmd)
			if err != nil {
				return err
			}

			configPath, _ := cmd.Flags().GetString("vcpkg-json")
			if !cmd.Flags().Changed("vcpkg-json") && cfg != nil {
				setString(&configPath, cfg.VcpkgConfig, true)
			}

			return c.app.Run(cmd.Context(), opts, domain.VcpkgAction{ConfigPath: configPath})
		},
	}
	cmd.Flags().String("vcpkg-json", domain.DefaultVcpkgConfig, "Path to the vcpkg json config")
	return cmd
}
