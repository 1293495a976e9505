package wallet

import "errors"

var (
	// ErrNeedsUnlock is returned by a provider that requires authentication
	// before it can answer.
	ErrNeedsUnlock = errors.New("wallet needs unlocking")

	// ErrNotSupported is returned by a provider that does not implement the
	// requested capability.
	ErrNotSupported = errors.New("operation not supported by wallet")
)

// IsExpected reports whether err is one of the steady-state provider
// conditions (ErrNeedsUnlock, ErrNotSupported). Every other non-nil error is
// unexpected.
//
// Providers may wrap or join the sentinels with their own cause; the check
// goes through errors.Is.
func IsExpected(err error) bool {
	return errors.Is(err, ErrNeedsUnlock) || errors.Is(err, ErrNotSupported)
}

// ErrAccountNotFound is returned by stores and by the session coordinator for
// identifiers they do not track.
var ErrAccountNotFound = errors.New("account not found")
