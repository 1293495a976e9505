package walletwatch

import "sync"

// accountLocks serializes Watch and Unwatch per account. Entries live only
// while someone holds or waits for them.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*accountLock
}

type accountLock struct {
	sync.Mutex
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*accountLock)}
}

// lock blocks until accountID is free and returns the matching unlock.
func (l *accountLocks) lock(accountID string) (unlock func()) {
	l.mu.Lock()
	al, ok := l.locks[accountID]
	if !ok {
		al = &accountLock{}
		l.locks[accountID] = al
	}
	al.refs++
	l.mu.Unlock()

	al.Lock()

	return func() {
		al.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()

		al.refs--
		if al.refs == 0 {
			delete(l.locks, accountID)
		}
	}
}
