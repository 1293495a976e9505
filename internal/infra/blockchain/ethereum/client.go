// Package ethereum reads account state from Ethereum-compatible nodes over
// JSON-RPC.
package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/gabapcia/walletsync/internal/pkg/transport/jsonrpc"
)

// blockTag is the block every query is evaluated at.
const blockTag = "latest"

// Client queries balances and chain identity from a node.
type Client struct {
	conn jsonrpc.Client
}

// NewClient returns a Client that talks to the node behind conn.
func NewClient(conn jsonrpc.Client) *Client {
	return &Client{
		conn: conn,
	}
}

// BalanceAt returns the balance, in wei, of address at the latest block.
func (c *Client) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address %q", address)
	}

	var balance hexutil.Big
	if err := jsonrpc.Call(ctx, c.conn, &balance, "eth_getBalance", common.HexToAddress(address).Hex(), blockTag); err != nil {
		return nil, err
	}

	return balance.ToInt(), nil
}

// ChainID returns the EIP-155 chain id of the node.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	var id hexutil.Uint64
	if err := jsonrpc.Call(ctx, c.conn, &id, "eth_chainId"); err != nil {
		return 0, err
	}

	return uint64(id), nil
}
