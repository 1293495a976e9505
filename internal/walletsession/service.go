// Package walletsession maps user actions (load, select, lock, unlock,
// remove) and remote session notifications onto the wallet watch engine and
// the store.
//
// The engine only polls; it never changes a wallet. Everything a user does to
// a wallet goes through this package, which performs the change on the
// provider and publishes the matching event, so the store reflects it without
// waiting for the next poll round.
package walletsession

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/walletsync/internal/infra/wallet/remote"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// Watcher starts and stops the poll cycles of an account.
//
// It is satisfied by the walletwatch engine.
type Watcher interface {
	// Watch starts, or restarts, the poll cycles of account.
	Watch(ctx context.Context, account wallet.Account) error

	// Unwatch stops the poll cycles of accountID.
	Unwatch(accountID string)
}

// Store is the account state the coordinator publishes to.
type Store interface {
	// Account returns the snapshot of accountID, or an error matching
	// wallet.ErrAccountNotFound.
	Account(ctx context.Context, accountID string) (wallet.Snapshot, error)

	// Publish applies event.
	Publish(ctx context.Context, event wallet.Event) error
}

// SelectionStore persists explicit selections.
type SelectionStore interface {
	// SaveSelected persists accountID as the last selected account.
	SaveSelected(ctx context.Context, accountID string) error
}

// Locker is implemented by providers whose key can be decrypted locally.
type Locker interface {
	// Unlock decrypts the key with password.
	Unlock(password string) error

	// Lock drops the decrypted key.
	Lock() error
}

// Service defines the actions a user, or a remote signer, performs on the
// wallets of the process.
//
// Implementations keep track of the accounts they loaded; actions on any other
// account fail with wallet.ErrAccountNotFound.
type Service interface {
	// Load starts watching the account backed by a provider.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - p: the provider; its ID and Kind identify the account.
	//
	// Returns:
	//   - A validation error if p does not describe a valid account, or the
	//     error returned by the engine.
	Load(ctx context.Context, p wallet.Provider) error

	// LoadAll loads every provider.
	//
	// A failing provider does not prevent the others from loading.
	//
	// Returns:
	//   - The errors of the failed providers, joined; nil if all loaded.
	LoadAll(ctx context.Context, providers ...wallet.Provider) error

	// Select makes an account the selected one and persists the choice.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - accountID: the account to select; it must be known to the store.
	//
	// Returns:
	//   - An error matching wallet.ErrAccountNotFound for unknown accounts, or
	//     the error of the selection store or of the publish.
	Select(ctx context.Context, accountID string) error

	// Unlock decrypts the key of a loaded account.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - accountID: the account to unlock.
	//   - password: the key's passphrase.
	//
	// Returns:
	//   - An error matching wallet.ErrNotSupported when the provider has no
	//     local key, or the provider's unlock error.
	Unlock(ctx context.Context, accountID, password string) error

	// Lock drops the decrypted key of a loaded account.
	//
	// Returns:
	//   - An error matching wallet.ErrNotSupported when the provider has no
	//     local key, or the provider's lock error.
	Lock(ctx context.Context, accountID string) error

	// Remove stops watching an account and marks it locked.
	//
	// The account is forgotten: later actions on it fail until it is loaded
	// again.
	Remove(ctx context.Context, accountID string) error

	// HandleSessionEvent applies a remote session notification to w.
	HandleSessionEvent(ctx context.Context, w *remote.Wallet, event remote.Event) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	watcher   Watcher
	store     Store
	selection SelectionStore

	mu       sync.Mutex // protects accounts
	accounts map[string]wallet.Account
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a coordinator that drives watcher and publishes to store.
//
// Parameters:
//   - watcher: the engine polling the loaded accounts.
//   - store: the account state every action is published to.
//   - selection: where explicit selections are persisted.
func New(watcher Watcher, store Store, selection SelectionStore) *service {
	return &service{
		watcher:   watcher,
		store:     store,
		selection: selection,
		accounts:  make(map[string]wallet.Account),
	}
}

// Load validates the account described by p, watches it and remembers it.
// The account is remembered only once the engine accepted it.
func (s *service) Load(ctx context.Context, p wallet.Provider) error {
	account, err := wallet.NewAccount(p)
	if err != nil {
		return err
	}

	if err := s.watcher.Watch(ctx, account); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[account.ID] = account
	return nil
}

// LoadAll calls Load for every provider, in order.
func (s *service) LoadAll(ctx context.Context, providers ...wallet.Provider) error {
	var errs []error
	for _, p := range providers {
		if err := s.Load(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// account returns the loaded account accountID.
func (s *service) account(accountID string) (wallet.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return wallet.Account{}, wallet.ErrAccountNotFound
	}

	return account, nil
}

// forget drops accountID from the loaded accounts.
func (s *service) forget(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.accounts, accountID)
}
