// Package keystore backs wallets with the accounts of a local go-ethereum
// keystore directory.
//
// Every key of the directory is a separate wallet. Keys stay encrypted until
// Unlock; the address is readable either way, while balance and network come
// from the chain node through a ChainClient.
package keystore

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"

	"github.com/gabapcia/walletsync/internal/wallet"
)

// statusUnlocked is the status reported by go-ethereum for unlocked keys.
const statusUnlocked = "Unlocked"

// ErrInvalidPassword is returned by Unlock when the password does not decrypt
// the key.
var ErrInvalidPassword = errors.New("invalid keystore password")

// ChainClient reads account state from the chain the keystore keys live on.
type ChainClient interface {
	// BalanceAt returns the latest balance of address, in wei.
	BalanceAt(ctx context.Context, address string) (*big.Int, error)

	// ChainID returns the id of the chain the node serves.
	ChainID(ctx context.Context) (uint64, error)
}

// Wallet is a single keystore account.
type Wallet struct {
	ks      *gethkeystore.KeyStore
	account accounts.Account
	chain   ChainClient
}

// Ensure compile-time compliance with wallet.Provider.
var _ wallet.Provider = (*Wallet)(nil)

// Open returns the keystore stored in dir. Keys are decrypted with the
// standard scrypt parameters.
func Open(dir string) *gethkeystore.KeyStore {
	return gethkeystore.NewKeyStore(dir, gethkeystore.StandardScryptN, gethkeystore.StandardScryptP)
}

// Load returns a Wallet for every account of ks.
func Load(ks *gethkeystore.KeyStore, chain ChainClient) []*Wallet {
	list := ks.Accounts()

	wallets := make([]*Wallet, 0, len(list))
	for _, account := range list {
		wallets = append(wallets, &Wallet{
			ks:      ks,
			account: account,
			chain:   chain,
		})
	}

	return wallets
}

// ID returns "keystore:" followed by the lower-case key address.
func (w *Wallet) ID() string {
	return "keystore:" + wallet.NormalizeAddress(w.account.Address.Hex())
}

// Kind returns wallet.KindKeystore.
func (w *Wallet) Kind() wallet.Kind {
	return wallet.KindKeystore
}

// IsLocked reports whether the key is still encrypted. address is ignored: a
// keystore wallet holds exactly one key.
func (w *Wallet) IsLocked(string) bool {
	for _, candidate := range w.ks.Wallets() {
		if !candidate.Contains(w.account) {
			continue
		}

		status, err := candidate.Status()
		return err != nil || status != statusUnlocked
	}

	return true
}

// Addresses returns the key address. It is readable without unlocking.
func (w *Wallet) Addresses(context.Context) ([]string, error) {
	return []string{w.account.Address.Hex()}, nil
}

// Balance returns the balance of address as seen by the chain node. It does
// not require the key to be unlocked.
func (w *Wallet) Balance(ctx context.Context, address string) (*big.Int, error) {
	return w.chain.BalanceAt(ctx, address)
}

// NetworkID returns the chain id of the node the keystore is used with.
func (w *Wallet) NetworkID(ctx context.Context) (uint64, error) {
	return w.chain.ChainID(ctx)
}

// Unlock decrypts the key with password until Lock is called.
//
// Returns:
//   - ErrInvalidPassword when password does not decrypt the key, or the
//     keystore error, wrapped, for anything else.
func (w *Wallet) Unlock(password string) error {
	err := w.ks.Unlock(w.account, password)
	switch {
	case errors.Is(err, gethkeystore.ErrDecrypt):
		return ErrInvalidPassword
	case err != nil:
		return fmt.Errorf("unlock %s: %w", w.account.Address.Hex(), err)
	}

	return nil
}

// Lock removes the decrypted key from memory.
func (w *Wallet) Lock() error {
	return w.ks.Lock(w.account.Address)
}
