package main

import (
	"context"
	"sync"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"

	"github.com/gabapcia/walletsync/internal/handlers/cli"
	"github.com/gabapcia/walletsync/internal/infra/wallet/extension"
	"github.com/gabapcia/walletsync/internal/infra/wallet/keystore"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletsync/internal/pkg/x/chflow"
	"github.com/gabapcia/walletsync/internal/wallet"
	"github.com/gabapcia/walletsync/internal/walletsession"
	"github.com/gabapcia/walletsync/internal/walletstore"
	"github.com/gabapcia/walletsync/internal/walletwatch"
)

// keystoreCatalog lists the wallets of the configured keystore directory.
type keystoreCatalog struct {
	ks    *gethkeystore.KeyStore
	chain keystore.ChainClient
}

var _ cli.WalletCatalog = (*keystoreCatalog)(nil)

func (c *keystoreCatalog) Wallets(context.Context) ([]wallet.Provider, error) {
	if c.ks == nil {
		return nil, nil
	}

	wallets := keystore.Load(c.ks, c.chain)

	providers := make([]wallet.Provider, 0, len(wallets))
	for _, w := range wallets {
		providers = append(providers, w)
	}

	return providers, nil
}

// app is the process run by the start command: it loads every configured
// wallet into the engine and logs the resulting state changes.
type app struct {
	engine    walletwatch.Service
	session   walletsession.Service
	store     *walletstore.Store
	catalog   cli.WalletCatalog
	extension jsonrpc.Client

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ cli.Pipeline = (*app)(nil)

func (a *app) Start(ctx context.Context) error {
	if err := a.engine.Start(ctx); err != nil {
		return err
	}

	ctx, a.cancel = context.WithCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.logChanges(ctx)
	}()

	providers, err := a.catalog.Wallets(ctx)
	if err != nil {
		a.Close()
		return err
	}

	if a.extension != nil {
		if extension.Supported(ctx, a.extension) {
			providers = append(providers, extension.New(a.extension))
		} else {
			logger.Warn(ctx, "injected signer unreachable, extension wallet not loaded")
		}
	}

	if err := a.session.LoadAll(ctx, providers...); err != nil {
		logger.Error(ctx, "failed to load some wallets", "error", err)
	}

	logger.Info(ctx, "wallet sync started", "wallets", len(providers))
	return nil
}

func (a *app) Close() {
	a.engine.Close()
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
}

// logChanges logs every account whose state differs from the previous
// snapshot, until ctx is done.
func (a *app) logChanges(ctx context.Context) {
	var (
		previous walletstore.State
		changes  = a.store.Subscribe(ctx)
	)
	for {
		state, ok := chflow.Receive(ctx, changes)
		if !ok {
			return
		}

		if state.SelectedAccountID != previous.SelectedAccountID {
			logger.Info(ctx, "selected account changed", "account.id", state.SelectedAccountID)
		}

		for id, snap := range state.Accounts {
			if old, ok := previous.Account(id); ok && sameSnapshot(old, snap) {
				continue
			}

			logger.Info(ctx, "wallet state changed",
				"account.id", id,
				"account.locked", snap.IsLocked,
				"account.address", snap.Address,
				"account.balance", snap.Balance.String(),
				"account.network", snap.NetworkID,
				"account.selected", id == state.SelectedAccountID,
			)
		}

		previous = state
	}
}

func sameSnapshot(a, b wallet.Snapshot) bool {
	return a.IsLocked == b.IsLocked &&
		a.Address == b.Address &&
		a.NetworkID == b.NetworkID &&
		a.Balance.Cmp(b.Balance) == 0
}
