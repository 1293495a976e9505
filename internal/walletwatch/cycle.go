package walletwatch

import (
	"context"
	"errors"
	"math/big"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/timerreg"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// syncFunc runs one iteration of a cycle. publish must be used for every event
// the iteration emits; it fails once the cycle's handle is no longer live.
// Liveness is checked before each event, so a cancellation between two events
// of the same iteration drops the remaining ones.
type syncFunc func(ctx context.Context, publish publishFunc) error

type publishFunc func(ctx context.Context, events ...wallet.Event) error

var errCycleStopped = errors.New("poll cycle stopped")

// cycle returns the timer callback driving attr for account. Each run performs
// one iteration and, unless it failed unexpectedly or was cancelled meanwhile,
// reschedules itself after the poll interval. A failed cycle is halted in the
// registry and stays so until the account is watched again.
func (s *service) cycle(account wallet.Account, attr wallet.Attribute) timerreg.Func {
	var step syncFunc
	switch attr {
	case wallet.AttributeAddress:
		step = s.syncAddress(account)
	case wallet.AttributeBalance:
		step = s.syncBalance(account)
	case wallet.AttributeNetwork:
		step = s.syncNetwork(account)
	}

	var run timerreg.Func
	run = func(ctx context.Context, h *timerreg.Handle) {
		if err := s.iterate(ctx, h, attr, step); err != nil {
			s.timers.Halt(h)
			return
		}
		s.timers.Reschedule(h, s.pollInterval, run)
	}

	return run
}

// iterate runs step once. Expected provider conditions are swallowed; any
// other error is reported to the failure handler and returned.
func (s *service) iterate(ctx context.Context, h *timerreg.Handle, attr wallet.Attribute, step syncFunc) error {
	key := h.Key()

	ctx, span := s.metrics.tracer.Start(ctx, "walletwatch.sync_"+attr.String(),
		trace.WithAttributes(
			attribute.String("account.id", key.AccountID),
			attribute.String("cycle.attribute", attr.String()),
		),
	)
	defer span.End()

	publish := func(ctx context.Context, events ...wallet.Event) error {
		for _, event := range events {
			var err error
			ran := h.Guard(func() {
				err = s.store.Publish(ctx, event)
			})
			if !ran {
				return stoppedErr(ctx)
			}
			if err != nil {
				return err
			}
			s.metrics.eventPublished(ctx, event)
		}
		return nil
	}

	err := step(ctx, publish)
	switch {
	case err == nil:
		return nil
	case wallet.IsExpected(err):
		span.SetAttributes(attribute.String("cycle.skipped", err.Error()))
		logger.Debug(ctx, "wallet poll skipped", "cycle.attribute", attr.String(), "reason", err)
		return nil
	case !h.Live():
		// Errors raised after cancellation belong to a cycle nobody watches.
		return err
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.cycleFailed(ctx, attr)
	s.failureHandler(ctx, CycleFailure{
		AccountID: key.AccountID,
		Attribute: attr,
		Err:       err,
	})

	return err
}

// stoppedErr is returned by publish once the cycle's handle is no longer live.
func stoppedErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errCycleStopped
}

// syncAddress reconciles the lock state and the first address reported by the
// provider. The lock event is published before the address one.
func (s *service) syncAddress(account wallet.Account) syncFunc {
	return func(ctx context.Context, publish publishFunc) error {
		addresses, err := account.Provider.Addresses(ctx)
		if err != nil {
			return err
		}

		var address string
		if len(addresses) > 0 {
			address = wallet.NormalizeAddress(addresses[0])
		}
		locked := account.Provider.IsLocked(address)

		stored, err := s.store.Account(ctx, account.ID)
		if err != nil {
			return err
		}

		var events []wallet.Event
		if locked != stored.IsLocked {
			events = append(events, wallet.LockStateEvent(account.ID, locked))
		}
		if address != stored.Address {
			events = append(events, wallet.LoadAddressEvent(account.ID, address))
		}

		if len(events) == 0 {
			return nil
		}

		return publish(ctx, events...)
	}
}

// syncBalance reconciles the balance of the stored address. It does not query
// the provider while no address is known.
func (s *service) syncBalance(account wallet.Account) syncFunc {
	return func(ctx context.Context, publish publishFunc) error {
		stored, err := s.store.Account(ctx, account.ID)
		if err != nil {
			return err
		}

		if stored.Address == "" {
			return nil
		}

		balance, err := account.Provider.Balance(ctx, stored.Address)
		if err != nil {
			return err
		}

		if balance == nil {
			balance = new(big.Int)
		}

		if stored.Balance != nil && stored.Balance.Cmp(balance) == 0 {
			return nil
		}

		return publish(ctx, wallet.LoadBalanceEvent(account.ID, balance))
	}
}

// syncNetwork reconciles the network id. A zero id is treated as unknown and
// never published.
func (s *service) syncNetwork(account wallet.Account) syncFunc {
	return func(ctx context.Context, publish publishFunc) error {
		networkID, err := account.Provider.NetworkID(ctx)
		if err != nil {
			return err
		}

		if networkID == 0 {
			return nil
		}

		stored, err := s.store.Account(ctx, account.ID)
		if err != nil {
			return err
		}

		if stored.NetworkID == networkID {
			return nil
		}

		return publish(ctx, wallet.LoadNetworkEvent(account.ID, networkID))
	}
}
