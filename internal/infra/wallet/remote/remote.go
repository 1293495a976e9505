package remote

import (
	"context"
	"math/big"

	"github.com/gabapcia/walletsync/internal/wallet"
)

// ChainClient reads balances from the chain the session is bound to.
type ChainClient interface {
	BalanceAt(ctx context.Context, address string) (*big.Int, error)
}

// Wallet is the account shared through a remote session.
type Wallet struct {
	session *Session
	chain   ChainClient
}

var _ wallet.Provider = (*Wallet)(nil)

// New returns the wallet exposed through session.
func New(session *Session, chain ChainClient) *Wallet {
	return &Wallet{
		session: session,
		chain:   chain,
	}
}

// Session returns the session backing the wallet.
func (w *Wallet) Session() *Session {
	return w.session
}

// ID returns "remote:" followed by the session id.
func (w *Wallet) ID() string {
	return "remote:" + w.session.ID()
}

// Kind returns wallet.KindRemote.
func (w *Wallet) Kind() wallet.Kind {
	return wallet.KindRemote
}

// IsLocked reports a disconnected session, or one sharing no account, as
// locked.
func (w *Wallet) IsLocked(address string) bool {
	return address == "" || !w.session.Connected()
}

// Addresses returns the accounts shared by the session. A disconnected session
// needs to be established again.
func (w *Wallet) Addresses(context.Context) ([]string, error) {
	if !w.session.Connected() {
		return nil, wallet.ErrNeedsUnlock
	}

	return w.session.Accounts(), nil
}

// Balance returns the balance of address as seen by the chain node.
func (w *Wallet) Balance(ctx context.Context, address string) (*big.Int, error) {
	return w.chain.BalanceAt(ctx, address)
}

// NetworkID is not supported: the network is only known from session events.
func (w *Wallet) NetworkID(context.Context) (uint64, error) {
	return 0, wallet.ErrNotSupported
}
