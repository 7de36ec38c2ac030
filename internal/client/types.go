package client

import (
	"context"
	"errors"
	"fmt"

	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	cmttypes "github.com/cometbft/cometbft/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ErrConnect is returned when the RPC endpoint cannot be reached or does not serve the configured chain.
	ErrConnect = errors.New("failed to connect to chain")
	// ErrPrefixMismatch is returned when the signer's bech32 prefix differs from the network's.
	ErrPrefixMismatch = errors.New("address prefix mismatch")
	// ErrSenderMismatch is returned when a tx sender is not the session's signer.
	ErrSenderMismatch = errors.New("sender is not the signer")
	// ErrTxRejected is returned when the chain rejects a tx at check or deliver time.
	ErrTxRejected = errors.New("transaction rejected")
	// ErrTxTimeout is returned when a broadcast tx is not committed within the confirm timeout.
	ErrTxTimeout = errors.New("transaction not committed in time")
	// ErrQueryFailed is returned when a smart query is answered with a non-zero code.
	ErrQueryFailed = errors.New("query failed")
	// ErrClosed is returned by every call made after Close.
	ErrClosed = errors.New("signing client is closed")
)

// OfflineSigner is the signing capability a session is bound to.
type OfflineSigner interface {
	Address() string
	Prefix() string
	PubKey() cryptotypes.PubKey
	Sign(msg []byte) ([]byte, error)
}

// rpcClient is the subset of the CometBFT RPC client the session uses.
type rpcClient interface {
	Status(ctx context.Context) (*coretypes.ResultStatus, error)
	ABCIQuery(ctx context.Context, path string, data cmtbytes.HexBytes) (*coretypes.ResultABCIQuery, error)
	BroadcastTxSync(ctx context.Context, tx cmttypes.Tx) (*coretypes.ResultBroadcastTx, error)
	Tx(ctx context.Context, hash []byte, prove bool) (*coretypes.ResultTx, error)
}

// StdFee is a fixed gas limit with the fee paid for it.
// An empty Amount is computed from the session gas price.
type StdFee struct {
	Gas    uint64
	Amount sdk.Coins
}

// ExecuteResult describes a committed transaction.
type ExecuteResult struct {
	TransactionHash string
	Height          int64
	GasWanted       int64
	GasUsed         int64
	Events          []abci.Event
}

// InstantiateResult is an ExecuteResult plus the address of the new contract.
type InstantiateResult struct {
	ExecuteResult
	ContractAddress string
}

// TxError carries the chain's answer for a rejected transaction.
type TxError struct {
	Hash      string
	Code      uint32
	Codespace string
	Log       string
}

func (e *TxError) Error() string {
	return fmt.Sprintf("tx %s failed with code %d (codespace %s); %s", e.Hash, e.Code, e.Codespace, e.Log)
}

func (e *TxError) Unwrap() error {
	return ErrTxRejected
}
