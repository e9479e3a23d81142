package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *CLI) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild whenever content, data, translations or templates change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if err := c.builder.Build(ctx); err != nil {
				// An initial broken build should not kill the watch loop;
				// the next save gets another chance.
				c.log.Error("initial build failed", zap.Error(err))
			}

			w, err := NewWatcher([]string{
				c.config.Paths.Content,
				c.config.Paths.Data,
				c.config.Paths.I18n,
				c.config.Paths.Templates,
			}, c.log)
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer w.Close()

			return w.Run(ctx, func() {
				if err := c.builder.Build(ctx); err != nil {
					c.log.Error("rebuild failed", zap.Error(err))
				}
			})
		},
	}
}
