package walletwatch

import (
	"context"
	"errors"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/validator"
	"github.com/gabapcia/walletsync/internal/timerreg"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// Watch (re)starts the poll cycles of account:
//
//  1. cancels any cycle already running for the account;
//  2. registers the account in the store, or swaps its provider if known;
//  3. restores the persisted selection when nothing is selected yet;
//  4. activates the provider when its kind requires it;
//  5. launches the address, balance and network cycles.
//
// Calls for the same account are serialized; calls for different accounts,
// including a slow activation, do not wait for each other.
func (s *service) Watch(ctx context.Context, account wallet.Account) error {
	if err := validator.Validate(account); err != nil {
		return err
	}

	rootCtx, err := s.root()
	if err != nil {
		return err
	}

	unlock := s.accounts.lock(account.ID)
	defer unlock()

	ctx = logger.Derive(ctx, "account.id", account.ID, "account.kind", string(account.Kind))

	if s.timers.Exists(account.ID) {
		s.timers.CancelAll(account.ID)
		logger.Debug(ctx, "restarting wallet watch")
	}

	if err := s.register(ctx, account); err != nil {
		return err
	}

	if err := s.restoreSelection(ctx, account.ID); err != nil {
		return err
	}

	if account.Kind.RequiresActivation() {
		s.activate(ctx, account)
	}

	cycleCtx := logger.Derive(rootCtx, "account.id", account.ID, "account.kind", string(account.Kind))
	for _, attr := range wallet.Attributes() {
		key := timerreg.Key{AccountID: account.ID, Attribute: attr}
		s.timers.Schedule(cycleCtx, key, 0, s.cycle(account, attr))
	}

	logger.Info(ctx, "watching wallet")
	return nil
}

// Unwatch cancels every cycle of accountID. It waits for a Watch of the same
// account that is in progress, and only for that one.
func (s *service) Unwatch(accountID string) {
	unlock := s.accounts.lock(accountID)
	defer unlock()

	s.timers.CancelAll(accountID)
}

// register publishes InitAccount for unknown accounts and UpdateProvider for
// known ones.
func (s *service) register(ctx context.Context, account wallet.Account) error {
	_, err := s.store.Account(ctx, account.ID)
	switch {
	case errors.Is(err, wallet.ErrAccountNotFound):
		return s.store.Publish(ctx, wallet.InitAccountEvent(account.ID, account.Provider))
	case err != nil:
		return err
	default:
		return s.store.Publish(ctx, wallet.UpdateProviderEvent(account.ID, account.Provider))
	}
}

// restoreSelection selects accountID when no account is selected and it is the
// persisted last selection.
func (s *service) restoreSelection(ctx context.Context, accountID string) error {
	current, err := s.store.SelectedAccountID(ctx)
	if err != nil {
		return err
	}

	if current != "" {
		return nil
	}

	last, err := s.selection.LastSelected(ctx)
	if err != nil {
		return err
	}

	if last != accountID {
		return nil
	}

	logger.Info(ctx, "restoring last selected account")
	return s.store.Publish(ctx, wallet.SelectAccountEvent(accountID))
}

// activate runs the provider's one-time activation. Failures are logged; the
// cycles still start and report the provider's state as it is.
func (s *service) activate(ctx context.Context, account wallet.Account) {
	activator, ok := account.Provider.(wallet.Activator)
	if !ok {
		logger.Warn(ctx, "wallet kind requires activation but provider cannot be activated")
		return
	}

	err := s.activationRetry.Execute(ctx, func() error {
		return activator.Activate(ctx)
	})
	if err != nil {
		logger.Warn(ctx, "wallet activation failed", "error", err)
	}
}
