package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Render every locale into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.builder.Build(cmd.Context()); err != nil {
				return fmt.Errorf("build: %w", err)
			}
			return nil
		},
	}
}
