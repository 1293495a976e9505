// Package walletstore is the in-memory observable store holding the last known
// state of every tracked account and the current selection.
//
// State only changes through Publish, which applies one wallet.Event at a time.
// Subscribers receive a full, self-consistent copy of the state after each
// applied event; a slow subscriber skips intermediate states but always ends up
// with the latest one.
package walletstore

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"sync"

	"github.com/gabapcia/walletsync/internal/pkg/x/chflow"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// ErrUnknownEvent is returned by Publish for events it cannot apply.
var ErrUnknownEvent = errors.New("unknown event type")

// State is a point-in-time copy of the store.
type State struct {
	SelectedAccountID string
	Accounts          map[string]wallet.Snapshot
}

// Account returns the snapshot of id and whether it exists.
func (st State) Account(id string) (wallet.Snapshot, bool) {
	snap, ok := st.Accounts[id]
	return snap, ok
}

func (st State) clone() State {
	c := State{
		SelectedAccountID: st.SelectedAccountID,
		Accounts:          make(map[string]wallet.Snapshot, len(st.Accounts)),
	}
	for id, snap := range st.Accounts {
		c.Accounts[id] = snap.Clone()
	}
	return c
}

// Store is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[chan State]struct{}
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		state:       State{Accounts: make(map[string]wallet.Snapshot)},
		subscribers: make(map[chan State]struct{}),
	}
}

// Account returns the snapshot of accountID, or wallet.ErrAccountNotFound.
func (s *Store) Account(_ context.Context, accountID string) (wallet.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.state.Accounts[accountID]
	if !ok {
		return wallet.Snapshot{}, fmt.Errorf("%w: %s", wallet.ErrAccountNotFound, accountID)
	}

	return snap.Clone(), nil
}

// SelectedAccountID returns the selected account, "" when none is selected.
func (s *Store) SelectedAccountID(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.SelectedAccountID, nil
}

// Accounts returns every snapshot ordered by account id.
func (s *Store) Accounts(_ context.Context) []wallet.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(s.state.Accounts))
	snaps := make([]wallet.Snapshot, 0, len(ids))
	for _, id := range ids {
		snaps = append(snaps, s.state.Accounts[id].Clone())
	}

	return snaps
}

// State returns a copy of the whole store.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.clone()
}

// Publish applies event and notifies subscribers.
func (s *Store) Publish(_ context.Context, event wallet.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := apply(&s.state, event); err != nil {
		return err
	}

	for ch := range s.subscribers {
		chflow.SendLatest(ch, s.state.clone())
	}

	return nil
}

// Subscribe returns a channel receiving the state after every applied event.
// The channel is closed once ctx is done.
func (s *Store) Subscribe(ctx context.Context) <-chan State {
	ch := make(chan State, 1)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		delete(s.subscribers, ch)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// apply mutates st according to event.
func apply(st *State, event wallet.Event) error {
	if event.Type == wallet.EventInitAccount {
		if snap, ok := st.Accounts[event.AccountID]; ok {
			snap.Provider = event.Provider
			st.Accounts[event.AccountID] = snap
			return nil
		}

		st.Accounts[event.AccountID] = wallet.NewSnapshot(event.AccountID, event.Provider)
		return nil
	}

	snap, ok := st.Accounts[event.AccountID]
	if !ok {
		return fmt.Errorf("%w: %s", wallet.ErrAccountNotFound, event.AccountID)
	}

	switch event.Type {
	case wallet.EventUpdateProvider:
		snap.Provider = event.Provider
	case wallet.EventLoadAddress:
		snap.Address = wallet.NormalizeAddress(event.Address)
	case wallet.EventLoadBalance:
		snap.Balance = new(big.Int)
		if event.Balance != nil {
			snap.Balance.Set(event.Balance)
		}
	case wallet.EventLoadNetwork:
		snap.NetworkID = event.NetworkID
	case wallet.EventLock:
		snap.IsLocked = true
	case wallet.EventUnlock:
		snap.IsLocked = false
	case wallet.EventSelectAccount:
		st.SelectedAccountID = event.AccountID
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownEvent, event.Type)
	}

	st.Accounts[event.AccountID] = snap
	return nil
}
