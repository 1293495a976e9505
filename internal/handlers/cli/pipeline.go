package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// Pipeline is the long running wallet sync process.
type Pipeline interface {
	Start(ctx context.Context) error
	Close()
}

// startPipelineCommand returns a CLI command that loads every configured
// wallet and keeps its state in sync.
//
// Usage example:
//
//	walletsync start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or ctx is
// done.
func startPipelineCommand(p Pipeline) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Loads the configured wallets and keeps their state in sync.",
		Usage:       "Runs the wallet sync process. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := p.Start(ctx); err != nil {
				return err
			}
			defer p.Close()

			<-ctx.Done()
			return nil
		},
	}
}
