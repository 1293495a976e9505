// Package walletwatch keeps the store in sync with the live state of every
// watched wallet.
//
// Watching an account starts three independent poll cycles (address, balance,
// network). Each iteration queries the provider, compares the canonical value
// with the store and publishes an event only when they differ, then schedules
// the next iteration through the timer registry. Expected provider conditions
// (wallet.ErrNeedsUnlock, wallet.ErrNotSupported) skip the round; any other
// error stops the cycle that raised it and is handed to the failure handler.
package walletwatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletsync/internal/timerreg"
	"github.com/gabapcia/walletsync/internal/wallet"
)

var (
	// ErrServiceAlreadyStarted is returned when Start is called twice.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrServiceNotStarted is returned by Watch before Start.
	ErrServiceNotStarted = errors.New("service not started")
)

// defaultPollInterval is the delay between two iterations of a cycle.
const defaultPollInterval = 3 * time.Second

// Store is the read/write view of account state the engine reconciles against.
//
// Implementations must be safe for concurrent use: every cycle of every
// account reads and publishes from its own goroutine.
type Store interface {
	// Account returns the last known snapshot of an account.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - accountID: the account to look up.
	//
	// Returns:
	//   - The snapshot, or an error matching wallet.ErrAccountNotFound when
	//     the account was never initialised.
	Account(ctx context.Context, accountID string) (wallet.Snapshot, error)

	// SelectedAccountID returns the selected account, "" when none is.
	SelectedAccountID(ctx context.Context) (string, error)

	// Publish applies event.
	//
	// Publish may call back into the engine when the event comes from a poll
	// cycle, for instance to Unwatch an account that got locked: cycles do not
	// hold engine locks while publishing. Events published by Watch itself
	// (InitAccount, UpdateProvider, SelectAccount) are applied while Watch
	// holds the account's lock, so a Publish reacting to those must not call
	// Watch or Unwatch for the same account synchronously.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - event: the change to apply.
	//
	// Returns:
	//   - An error if the event could not be applied.
	Publish(ctx context.Context, event wallet.Event) error
}

// SelectionStore persists the last account explicitly selected by the user.
type SelectionStore interface {
	// LastSelected returns the persisted account id, "" when none was saved.
	LastSelected(ctx context.Context) (string, error)

	// SaveSelected persists accountID as the last selected account.
	SaveSelected(ctx context.Context, accountID string) error
}

// CycleFailure describes a poll cycle stopped by an unexpected error.
type CycleFailure struct {
	AccountID string           // account whose cycle stopped
	Attribute wallet.Attribute // the cycle that stopped
	Err       error            // the error that stopped it
}

// FailureHandler receives every CycleFailure.
//
// It runs on the cycle's goroutine, after the cycle has been halted; other
// cycles of the account keep running. A halted cycle resumes only when the
// account is watched again.
type FailureHandler func(ctx context.Context, failure CycleFailure)

// Service is the reconciliation engine.
type Service interface {
	// Start binds the engine to ctx. Cycles stop when ctx is done.
	//
	// Parameters:
	//   - ctx: root of every cycle started afterwards.
	//
	// Returns:
	//   - ErrServiceAlreadyStarted if the engine is already running.
	Start(ctx context.Context) error

	// Close stops every cycle of every account. It is safe to call more than
	// once, and the engine may be started again afterwards.
	Close()

	// Watch starts, or restarts from scratch, the poll cycles of account.
	//
	// Parameters:
	//   - ctx: bounds registration and activation; the cycles themselves are
	//     bound to the context given to Start.
	//   - account: the account to watch.
	//
	// Returns:
	//   - A validation error for an invalid account, ErrServiceNotStarted
	//     before Start, or the error of the store or selection store.
	Watch(ctx context.Context, account wallet.Account) error

	// Unwatch cancels the poll cycles of accountID. It is a no-op when the
	// account is not watched.
	Unwatch(accountID string)
}

// service is the concrete implementation of the Service interface.
type service struct {
	mu        sync.Mutex // protects the lifecycle fields below
	isStarted bool
	rootCtx   context.Context
	closeFunc func()

	// accounts serializes Watch and Unwatch per account so a restart is never
	// interleaved with a stop of the same account.
	accounts *accountLocks

	store     Store
	selection SelectionStore
	timers    *timerreg.Registry

	pollInterval    time.Duration
	activationRetry retry.Retry
	failureHandler  FailureHandler
	metrics         instruments
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Start records ctx as the root of every cycle. Nothing runs until Watch.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	s.rootCtx = ctx
	s.closeFunc = cancel
	s.isStarted = true
	return nil
}

// Close cancels the root context and every timer, including timers scheduled
// on a registry shared through WithRegistry.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.timers.Close()

	s.isStarted = false
	s.closeFunc = nil
	s.rootCtx = nil
}

// root returns the context cycles are bound to.
func (s *service) root() (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isStarted {
		return nil, ErrServiceNotStarted
	}

	return s.rootCtx, nil
}

// config holds the settings applied by Option.
type config struct {
	pollInterval    time.Duration
	registry        *timerreg.Registry
	activationRetry retry.Retry
	failureHandler  FailureHandler
}

// Option configures the engine built by New.
type Option func(*config)

// New returns an engine reconciling store against the watched providers.
//
// Defaults: 3s poll interval, a private timer registry, three activation
// attempts 500ms apart that skip wallet.ErrNotSupported, and a failure
// handler that logs at error level.
//
// Parameters:
//   - store: the account state the cycles compare against and publish to.
//   - selection: provides the persisted selection restored on Watch.
//   - opts: optional settings.
func New(store Store, selection SelectionStore, opts ...Option) *service {
	cfg := config{
		pollInterval: defaultPollInterval,
		activationRetry: retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(500*time.Millisecond),
			retry.WithRetryIf(func(err error) bool {
				return !errors.Is(err, wallet.ErrNotSupported)
			}),
		),
		failureHandler: defaultOnCycleFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.registry == nil {
		cfg.registry = timerreg.New()
	}

	return &service{
		store:           store,
		selection:       selection,
		timers:          cfg.registry,
		pollInterval:    cfg.pollInterval,
		activationRetry: cfg.activationRetry,
		failureHandler:  cfg.failureHandler,
		metrics:         newInstruments(),
		accounts:        newAccountLocks(),
	}
}

// defaultOnCycleFailure logs failure at error level.
func defaultOnCycleFailure(ctx context.Context, failure CycleFailure) {
	logger.Error(ctx, "wallet poll cycle stopped",
		"account.id", failure.AccountID,
		"cycle.attribute", failure.Attribute.String(),
		"error", failure.Err,
	)
}

// WithPollInterval sets the delay between two iterations of a cycle.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithRegistry makes the engine schedule its timers on r.
func WithRegistry(r *timerreg.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithActivationRetry sets the retry policy of provider activation.
func WithActivationRetry(r retry.Retry) Option {
	return func(c *config) {
		c.activationRetry = r
	}
}

// WithFailureHandler replaces the default handler, which logs the failure.
func WithFailureHandler(f FailureHandler) Option {
	return func(c *config) {
		c.failureHandler = f
	}
}
