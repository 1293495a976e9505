// Package extension backs a wallet with an injected signer (EIP-1193 style)
// reachable over JSON-RPC.
//
// The signer is asked for access once (eth_requestAccounts) and then polled
// with read-only calls. Signer error codes are mapped onto the wallet error
// taxonomy: a rejected or unauthorized request needs unlocking, an unknown
// method is not supported.
package extension

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/gabapcia/walletsync/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletsync/internal/wallet"
)

// ID is the account id of the extension wallet. A process talks to a single
// injected signer.
const ID = "extension"

// EIP-1193 and JSON-RPC error codes the signer may answer with.
const (
	codeUserRejected   = 4001
	codeUnauthorized   = 4100
	codeUnsupported    = 4200
	codeDisconnected   = 4900
	codeMethodNotFound = -32601
)

// Wallet is the account currently exposed by the injected signer.
type Wallet struct {
	conn jsonrpc.Client
}

var (
	_ wallet.Provider  = (*Wallet)(nil)
	_ wallet.Activator = (*Wallet)(nil)
)

// New returns the wallet exposed by the signer behind conn.
func New(conn jsonrpc.Client) *Wallet {
	return &Wallet{
		conn: conn,
	}
}

// Supported reports whether a signer answering account queries is reachable
// behind conn. A locked signer is supported.
func Supported(ctx context.Context, conn jsonrpc.Client) bool {
	_, err := conn.Fetch(ctx, "eth_accounts")
	return err == nil || errors.Is(classify(err), wallet.ErrNeedsUnlock)
}

// ID returns the constant ID.
func (w *Wallet) ID() string {
	return ID
}

// Kind returns wallet.KindExtension.
func (w *Wallet) Kind() wallet.Kind {
	return wallet.KindExtension
}

// IsLocked reports a signer that exposes no account as locked.
func (w *Wallet) IsLocked(address string) bool {
	return address == ""
}

// Activate asks the signer to expose its accounts. The signer usually prompts
// the user; a refusal is reported as wallet.ErrNeedsUnlock.
func (w *Wallet) Activate(ctx context.Context) error {
	var addresses []string
	return w.call(ctx, &addresses, "eth_requestAccounts")
}

// Addresses returns the accounts the signer currently exposes, none while it
// is locked.
func (w *Wallet) Addresses(ctx context.Context) ([]string, error) {
	var addresses []string
	if err := w.call(ctx, &addresses, "eth_accounts"); err != nil {
		return nil, err
	}

	return addresses, nil
}

// Balance returns the balance of address through the signer's own node.
func (w *Wallet) Balance(ctx context.Context, address string) (*big.Int, error) {
	var balance hexutil.Big
	if err := w.call(ctx, &balance, "eth_getBalance", address, "latest"); err != nil {
		return nil, err
	}

	return balance.ToInt(), nil
}

// NetworkID returns the net_version reported by the signer.
func (w *Wallet) NetworkID(ctx context.Context) (uint64, error) {
	var version json.Number
	if err := w.call(ctx, &version, "net_version"); err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(version.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse net_version %q: %w", version, err)
	}

	return id, nil
}

func (w *Wallet) call(ctx context.Context, out any, method string, params ...any) error {
	return classify(jsonrpc.Call(ctx, w.conn, out, method, params...))
}

// classify maps signer error codes onto the wallet error taxonomy.
func classify(err error) error {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		return err
	}

	switch rpcErr.Code {
	case codeUnauthorized, codeUserRejected, codeDisconnected:
		return errors.Join(wallet.ErrNeedsUnlock, err)
	case codeUnsupported, codeMethodNotFound:
		return errors.Join(wallet.ErrNotSupported, err)
	default:
		return err
	}
}
