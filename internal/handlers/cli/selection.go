package cli

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
)

// ErrSelectionNotPersisted is returned by the select command when no durable
// selection store is configured, since the choice would be lost on exit.
var ErrSelectionNotPersisted = errors.New("no durable selection store configured")

// Selector persists the account selected on start.
type Selector interface {
	// SaveSelected persists accountID as the account to select once loaded.
	SaveSelected(ctx context.Context, accountID string) error
}

// selectAccountCommand returns a CLI command that persists the account to
// select once it is loaded.
//
// A nil selection means nothing outlives the process: the command then fails
// with ErrSelectionNotPersisted instead of silently discarding the choice.
//
// Usage example:
//
//	walletsync select --account keystore:0xabc...
func selectAccountCommand(selection Selector) *cli.Command {
	return &cli.Command{
		Name:        "select",
		Description: "Persists the account selected the next time it is loaded.",
		Usage:       "Saves the selected account. Must provide the account id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "account",
				Usage:    "Account id, as printed by the accounts command",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if selection == nil {
				return ErrSelectionNotPersisted
			}
			return selection.SaveSelected(ctx, c.String("account"))
		},
	}
}
