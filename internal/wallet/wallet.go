// Package wallet defines the capability contract every wallet backend satisfies,
// together with the account state that the reconciliation engine keeps in sync
// with it.
//
// Backends form a closed set of kinds (keystore, extension, remote). Each kind
// answers the same four queries, and any query may fail with ErrNeedsUnlock or
// ErrNotSupported, which callers treat as "no usable value this round".
package wallet

import (
	"context"
	"math/big"
	"strings"
)

// Kind identifies the backend family of a Provider.
type Kind string

const (
	KindKeystore  Kind = "keystore"  // local encrypted keystore
	KindExtension Kind = "extension" // browser-injected signer
	KindRemote    Kind = "remote"    // remote session-based signer
)

// RequiresActivation reports whether providers of this kind must be activated
// once (see Activator) before they answer queries.
func (k Kind) RequiresActivation() bool {
	return k == KindExtension
}

// Attribute names one of the independently polled values of an account.
type Attribute uint8

const (
	AttributeAddress Attribute = iota + 1
	AttributeBalance
	AttributeNetwork
)

// Attributes returns every polled attribute in launch order.
func Attributes() []Attribute {
	return []Attribute{AttributeAddress, AttributeBalance, AttributeNetwork}
}

// String returns the lower-case name of a, used in logs and span names.
func (a Attribute) String() string {
	switch a {
	case AttributeAddress:
		return "address"
	case AttributeBalance:
		return "balance"
	case AttributeNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Provider is the query contract of a wallet backend.
//
// Addresses, Balance and NetworkID may fail with ErrNeedsUnlock or
// ErrNotSupported. Any other error is unexpected.
type Provider interface {
	// ID returns the account identifier, unique per backend and address scheme.
	ID() string

	// Kind returns the backend family.
	Kind() Kind

	// IsLocked reports the backend's own locked-state predicate given the
	// address observed in the current round ("" when none was usable).
	IsLocked(address string) bool

	// Addresses returns the addresses exposed by the wallet. Only the first one
	// is significant.
	Addresses(ctx context.Context) ([]string, error)

	// Balance returns the balance of address in the smallest unit.
	Balance(ctx context.Context, address string) (*big.Int, error)

	// NetworkID returns the network the wallet is connected to. Zero means the
	// wallet did not report one.
	NetworkID(ctx context.Context) (uint64, error)
}

// Activator is implemented by providers whose Kind requires activation.
type Activator interface {
	// Activate asks the backend for access to its accounts, typically
	// prompting the user. It is called once per watch, before polling starts.
	Activate(ctx context.Context) error
}

// NormalizeAddress returns the canonical lower-case form of address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
