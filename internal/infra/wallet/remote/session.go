// Package remote backs wallets with a remote signer reached through an
// established session.
package remote

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// EventType enumerates the session lifecycle notifications.
type EventType uint8

const (
	EventConnect EventType = iota + 1
	EventUpdate
	EventDisconnect
)

// String returns the name the remote signer uses for t.
func (t EventType) String() string {
	switch t {
	case EventConnect:
		return "connect"
	case EventUpdate:
		return "session_update"
	case EventDisconnect:
		return "disconnect"
	default:
		return "unknown"
	}
}

// Event is a session notification. Accounts and ChainID are empty for
// EventDisconnect.
type Event struct {
	Type     EventType
	Accounts []string
	ChainID  uint64
}

// Session is the live state of a remote signer session.
type Session struct {
	id string

	mu        sync.RWMutex
	connected bool
	accounts  []string
	chainID   uint64
}

// NewSession returns a disconnected session with a random id.
func NewSession() *Session {
	return &Session{
		id: uuid.NewString(),
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Apply updates the session with event. Connect and update replace the shared
// accounts and chain; disconnect clears them.
func (s *Session) Apply(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Type {
	case EventConnect, EventUpdate:
		s.connected = true
		s.accounts = slices.Clone(event.Accounts)
		s.chainID = event.ChainID
	case EventDisconnect:
		s.connected = false
		s.accounts = nil
		s.chainID = 0
	}
}

// Connected reports whether the session is established.
func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.connected
}

// Accounts returns the accounts shared by the remote signer.
func (s *Session) Accounts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.accounts)
}

// ChainID returns the chain the remote signer is connected to, zero when
// unknown.
func (s *Session) ChainID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.chainID
}
