package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the walletsync CLI application.
//
// It registers all available commands:
//
//   - `start`: Watches every configured wallet until interrupted.
//   - `accounts`: Lists the wallets found in the keystore.
//   - `select`: Persists the account to select on the next start.
//
// Parameters:
//   - ctx: controls cancellation of the running command.
//   - p: the pipeline driven by `start`.
//   - catalog: the wallets listed by `accounts`.
//   - selection: where `select` writes; nil when no durable store is
//     configured, in which case `select` fails.
//
// Returns:
//   - The error of the executed command, if any.
func Run(ctx context.Context, p Pipeline, catalog WalletCatalog, selection Selector) error {
	return newApp(p, catalog, selection).Run(ctx, os.Args)
}

func newApp(p Pipeline, catalog WalletCatalog, selection Selector) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletsync",
		Description:           "Keeps the state of local, injected and remote wallets in sync.",
		Usage:                 "walletsync [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(p),
			listAccountsCommand(catalog),
			selectAccountCommand(selection),
		},
	}
}
