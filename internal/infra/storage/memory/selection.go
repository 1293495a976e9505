// Package memory keeps walletsync state for the lifetime of the process.
package memory

import (
	"context"
	"sync"
)

// Selection keeps the last selected account in memory. It stands in for the
// Redis store when no server is configured.
type Selection struct {
	mu        sync.RWMutex
	accountID string
}

// NewSelection returns a Selection holding accountID, "" for none.
func NewSelection(accountID string) *Selection {
	return &Selection{accountID: accountID}
}

func (s *Selection) LastSelected(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accountID, nil
}

func (s *Selection) SaveSelected(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accountID = accountID
	return nil
}
