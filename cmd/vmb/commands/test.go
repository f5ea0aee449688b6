package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vmb/internal/core/domain"
)

func (c *CLI) newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test [pattern]",
		Short: "Run tests whose id matches the optional regular expression",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pattern string
			if len(args) == 1 {
				pattern = args[0]
			}
			return c.run(cmd, domain.TestAction{Pattern: pattern})
		},
	}
}

func (c *CLI) newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <path>",
		Short: "Run pylint on a python module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, domain.LintAction{Path: args[0]})
		},
	}
}
