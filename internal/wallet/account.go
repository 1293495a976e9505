package wallet

import (
	"math/big"

	"github.com/gabapcia/walletsync/internal/pkg/validator"
)

// Account is a tracked wallet: its identifier, backend kind and the live
// provider handle used to query it.
type Account struct {
	ID       string   `validate:"required"`                                 // unique across kinds, e.g. "keystore:0xabc..."
	Kind     Kind     `validate:"required,oneof=keystore extension remote"` // backend family
	Provider Provider `validate:"required"`                                 // handle the cycles query
}

// NewAccount builds and validates the Account backed by p.
//
// Parameters:
//   - p: the provider; ID and Kind are read from it.
//
// Returns:
//   - The account, and an error wrapping validator.ErrValidationFailed when p
//     is nil, has an empty ID or an unknown Kind.
func NewAccount(p Provider) (Account, error) {
	if p == nil {
		return Account{}, validator.Validate(Account{})
	}

	account := Account{
		ID:       p.ID(),
		Kind:     p.Kind(),
		Provider: p,
	}

	return account, validator.Validate(account)
}

// Snapshot is the last known state of an account as held by the store.
//
// Address is always lower-case; "" means no address is known. NetworkID zero
// means no network is known. Balance is never nil.
type Snapshot struct {
	ID        string
	Provider  Provider // latest handle registered for the account
	IsLocked  bool
	Address   string
	Balance   *big.Int
	NetworkID uint64
}

// NewSnapshot returns the state of an account that was just registered: locked,
// without address or network and with a zero balance.
func NewSnapshot(id string, p Provider) Snapshot {
	return Snapshot{
		ID:       id,
		Provider: p,
		IsLocked: true,
		Balance:  new(big.Int),
	}
}

// Clone returns a copy of s that shares no mutable state with it.
func (s Snapshot) Clone() Snapshot {
	c := s
	if s.Balance != nil {
		c.Balance = new(big.Int).Set(s.Balance)
	} else {
		c.Balance = new(big.Int)
	}
	return c
}
