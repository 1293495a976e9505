package walletsession

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletsync/internal/infra/wallet/remote"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// ErrUnknownSessionEvent is returned for session events of an unknown type.
var ErrUnknownSessionEvent = errors.New("unknown session event")

// HandleSessionEvent keeps the store in line with the session of w:
//   - connect unlocks and selects the account, then publishes its address and
//     network, loading the wallet first if needed;
//   - session_update publishes the new address and network;
//   - disconnect removes the account.
//
// The event is applied to w's session first, so the published values are the
// session's own state.
//
// Parameters:
//   - ctx: controls cancellation and timeout.
//   - w: the remote wallet the event belongs to.
//   - event: the session event reported by the remote signer.
//
// Returns:
//   - ErrUnknownSessionEvent for an unknown event type, or the error of the
//     store, engine or selection call that failed.
func (s *service) HandleSessionEvent(ctx context.Context, w *remote.Wallet, event remote.Event) error {
	accountID := w.ID()
	ctx = logger.Derive(ctx, "account.id", accountID, "session.event", event.Type.String())

	w.Session().Apply(event)

	switch event.Type {
	case remote.EventConnect:
		if _, err := s.account(accountID); errors.Is(err, wallet.ErrAccountNotFound) {
			if err := s.Load(ctx, w); err != nil {
				return err
			}
		}

		if err := s.store.Publish(ctx, wallet.LockStateEvent(accountID, false)); err != nil {
			return err
		}

		if err := s.Select(ctx, accountID); err != nil {
			return err
		}

		logger.Info(ctx, "remote session connected")
		return s.publishSession(ctx, accountID, w.Session())
	case remote.EventUpdate:
		return s.publishSession(ctx, accountID, w.Session())
	case remote.EventDisconnect:
		logger.Info(ctx, "remote session disconnected")

		err := s.Remove(ctx, accountID)
		if errors.Is(err, wallet.ErrAccountNotFound) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("%w: %d", ErrUnknownSessionEvent, event.Type)
	}
}

// publishSession publishes the first account of session and its chain id, as
// left by the last applied event. A zero chain id is unknown and left out.
func (s *service) publishSession(ctx context.Context, accountID string, session *remote.Session) error {
	var address string
	if accounts := session.Accounts(); len(accounts) > 0 {
		address = accounts[0]
	}

	if err := s.store.Publish(ctx, wallet.LoadAddressEvent(accountID, address)); err != nil {
		return err
	}

	chainID := session.ChainID()
	if chainID == 0 {
		return nil
	}

	return s.store.Publish(ctx, wallet.LoadNetworkEvent(accountID, chainID))
}
