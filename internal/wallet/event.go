package wallet

import "math/big"

// EventType enumerates the state changes that can be published to the store.
type EventType uint8

const (
	EventInitAccount    EventType = iota + 1 // first registration of an account
	EventUpdateProvider                      // provider handle swapped for a known account
	EventLoadAddress                         // new first address, "" when none
	EventLoadBalance                         // new balance of the stored address
	EventLoadNetwork                         // new network id
	EventSelectAccount                       // account became the selected one
	EventLock                                // account became locked
	EventUnlock                              // account became unlocked
)

// String returns the snake_case name of t, used in logs and metric attributes.
func (t EventType) String() string {
	switch t {
	case EventInitAccount:
		return "init_account"
	case EventUpdateProvider:
		return "update_provider"
	case EventLoadAddress:
		return "load_address"
	case EventLoadBalance:
		return "load_balance"
	case EventLoadNetwork:
		return "load_network"
	case EventSelectAccount:
		return "select_account"
	case EventLock:
		return "lock"
	case EventUnlock:
		return "unlock"
	default:
		return "unknown"
	}
}

// Event is a single state change for one account. Only the field matching Type
// is meaningful.
//
// Events are built with the constructors below rather than by hand, so that
// each carries exactly the payload its type requires.
type Event struct {
	Type      EventType
	AccountID string
	Provider  Provider
	Address   string
	Balance   *big.Int
	NetworkID uint64
}

// InitAccountEvent registers account id, backed by p. Applying it to an
// account the store already holds only swaps the provider.
func InitAccountEvent(id string, p Provider) Event {
	return Event{Type: EventInitAccount, AccountID: id, Provider: p}
}

// UpdateProviderEvent replaces the provider handle of account id, for instance
// after re-authentication.
func UpdateProviderEvent(id string, p Provider) Event {
	return Event{Type: EventUpdateProvider, AccountID: id, Provider: p}
}

// LoadAddressEvent sets the address of account id. The store normalizes it.
func LoadAddressEvent(id, address string) Event {
	return Event{Type: EventLoadAddress, AccountID: id, Address: address}
}

// LoadBalanceEvent sets the balance of account id. balance is copied, so the
// caller may keep mutating it.
func LoadBalanceEvent(id string, balance *big.Int) Event {
	return Event{Type: EventLoadBalance, AccountID: id, Balance: new(big.Int).Set(balance)}
}

// LoadNetworkEvent sets the network id of account id.
func LoadNetworkEvent(id string, networkID uint64) Event {
	return Event{Type: EventLoadNetwork, AccountID: id, NetworkID: networkID}
}

// SelectAccountEvent makes account id the selected one.
func SelectAccountEvent(id string) Event {
	return Event{Type: EventSelectAccount, AccountID: id}
}

// LockStateEvent returns a Lock event when locked is true and an Unlock event
// otherwise.
func LockStateEvent(id string, locked bool) Event {
	if locked {
		return Event{Type: EventLock, AccountID: id}
	}
	return Event{Type: EventUnlock, AccountID: id}
}
