package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/walletsync/internal/wallet"
)

// WalletCatalog lists the wallets available without a running session.
type WalletCatalog interface {
	Wallets(ctx context.Context) ([]wallet.Provider, error)
}

// listAccountsCommand returns a CLI command printing the id and kind of every
// wallet in the catalog.
//
// Usage example:
//
//	walletsync accounts
func listAccountsCommand(catalog WalletCatalog) *cli.Command {
	return &cli.Command{
		Name:        "accounts",
		Description: "Lists the wallets found in the configured keystore.",
		Usage:       "Prints one line per wallet with its account id and kind.",
		Action: func(ctx context.Context, c *cli.Command) error {
			wallets, err := catalog.Wallets(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND")
			for _, p := range wallets {
				fmt.Fprintf(w, "%s\t%s\n", p.ID(), p.Kind())
			}

			return w.Flush()
		},
	}
}
