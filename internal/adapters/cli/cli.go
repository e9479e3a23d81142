package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sitegen/internal/config"
	"sitegen/internal/ports/input"
)

// CLI is the command-line adapter, the only surface this tool has.
type CLI struct {
	config    *config.Config
	builder   input.BuildUseCase
	validator input.ValidateUseCase
	log       *zap.Logger
	root      *cobra.Command
}

// New wires the use cases into the cobra command tree.
func New(cfg *config.Config, builder input.BuildUseCase, validator input.ValidateUseCase, log *zap.Logger) *CLI {
	c := &CLI{
		config:    cfg,
		builder:   builder,
		validator: validator,
		log:       log,
	}

	root := &cobra.Command{
		Use:           "sitegen",
		Short:         "Build a localized static marketing site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(c.buildCmd(), c.checkCmd(), c.watchCmd())
	c.root = root
	return c
}

// Execute runs the command line with the given base context.
func (c *CLI) Execute(ctx context.Context) error {
	return c.root.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, for tests.
func (c *CLI) SetArgs(args ...string) {
	c.root.SetArgs(args)
}

// SetOut redirects command output, for tests.
func (c *CLI) SetOut(w io.Writer) {
	c.root.SetOut(w)
}
