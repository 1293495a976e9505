package walletsession

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// Select rejects accounts unknown to the store. The choice is persisted before
// it is published, so a selection in the store always survives a restart.
func (s *service) Select(ctx context.Context, accountID string) error {
	if _, err := s.store.Account(ctx, accountID); err != nil {
		return err
	}

	if err := s.selection.SaveSelected(ctx, accountID); err != nil {
		return fmt.Errorf("persist selection: %w", err)
	}

	return s.store.Publish(ctx, wallet.SelectAccountEvent(accountID))
}

// Unlock republishes the provider before the unlock so readers of the store
// observe the unlocked handle together with the state change.
func (s *service) Unlock(ctx context.Context, accountID, password string) error {
	account, locker, err := s.locker(accountID)
	if err != nil {
		return err
	}

	if err := locker.Unlock(password); err != nil {
		return err
	}

	if err := s.store.Publish(ctx, wallet.UpdateProviderEvent(accountID, account.Provider)); err != nil {
		return err
	}

	logger.Info(ctx, "wallet unlocked", "account.id", accountID)
	return s.store.Publish(ctx, wallet.LockStateEvent(accountID, false))
}

// Lock locks the provider first and publishes Lock only once it succeeded.
func (s *service) Lock(ctx context.Context, accountID string) error {
	_, locker, err := s.locker(accountID)
	if err != nil {
		return err
	}

	if err := locker.Lock(); err != nil {
		return err
	}

	logger.Info(ctx, "wallet locked", "account.id", accountID)
	return s.store.Publish(ctx, wallet.LockStateEvent(accountID, true))
}

// Remove also locks keys that can be locked. It is the process counterpart of
// disconnecting a wallet.
func (s *service) Remove(ctx context.Context, accountID string) error {
	account, err := s.account(accountID)
	if err != nil {
		return err
	}

	s.watcher.Unwatch(accountID)
	s.forget(accountID)

	if locker, ok := account.Provider.(Locker); ok {
		if err := locker.Lock(); err != nil {
			logger.Warn(ctx, "failed to lock removed wallet", "account.id", accountID, "error", err)
		}
	}

	logger.Info(ctx, "wallet removed", "account.id", accountID)
	return s.store.Publish(ctx, wallet.LockStateEvent(accountID, true))
}

// locker returns the loaded account accountID and its provider as a Locker.
func (s *service) locker(accountID string) (wallet.Account, Locker, error) {
	account, err := s.account(accountID)
	if err != nil {
		return wallet.Account{}, nil, err
	}

	locker, ok := account.Provider.(Locker)
	if !ok {
		return wallet.Account{}, nil, fmt.Errorf("%s wallets cannot be unlocked locally: %w", account.Kind, wallet.ErrNotSupported)
	}

	return account, locker, nil
}
