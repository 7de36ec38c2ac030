package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	sdkclient "github.com/cosmos/cosmos-sdk/client"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	authsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"go.uber.org/zap"

	"github.com/AlexZinkM/cw721-wallet/internal/config"
)

const (
	accountQueryPath = "/cosmos.auth.v1beta1.Query/Account"
	smartQueryPath   = "/cosmwasm.wasm.v1.Query/SmartContractState"

	// DefaultConfirmTimeout bounds the wait for a broadcast tx to be committed.
	DefaultConfirmTimeout = 60 * time.Second
	// DefaultPollInterval is the delay between tx lookups while waiting for a commit.
	DefaultPollInterval = time.Second
)

// SigningClient is a session bound to one RPC endpoint and one signer.
// It never reconnects; create a new one after a connection failure.
type SigningClient struct {
	rpc            rpcClient
	signer         OfflineSigner
	network        config.NetworkConfig
	gasPrice       sdk.DecCoin
	txConfig       sdkclient.TxConfig
	registry       codectypes.InterfaceRegistry
	confirmTimeout time.Duration
	pollInterval   time.Duration
	logger         *zap.Logger
	closed         atomic.Bool
}

// Option configures SigningClient.
type Option func(*SigningClient)

// WithRPCClient replaces the CometBFT HTTP client.
func WithRPCClient(rpc rpcClient) Option {
	return func(c *SigningClient) {
		c.rpc = rpc
	}
}

// WithConfirmTimeout sets how long Instantiate and Execute wait for a commit.
func WithConfirmTimeout(d time.Duration) Option {
	return func(c *SigningClient) {
		if d > 0 {
			c.confirmTimeout = d
		}
	}
}

// WithPollInterval sets the delay between tx lookups.
func WithPollInterval(d time.Duration) Option {
	return func(c *SigningClient) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *SigningClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Connect opens a session against network.RPCURL for signer.
// It fails if the endpoint is unreachable, serves another chain, or the signer
// prefix does not match the network's address prefix.
func Connect(ctx context.Context, network config.NetworkConfig, signer OfflineSigner, opts ...Option) (*SigningClient, error) {
	if err := network.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid network config: %w", ErrConnect, err)
	}
	if signer.Prefix() != network.AddressPrefix {
		return nil, fmt.Errorf("%w: signer uses %q, network %s expects %q",
			ErrPrefixMismatch, signer.Prefix(), network.ChainID, network.AddressPrefix)
	}

	gasPrice, err := ParseGasPrice(network.GasPrice, network.FeeToken)
	if err != nil {
		return nil, err
	}

	txConfig, registry, err := newTxConfig(network.AddressPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to build tx config: %w", err)
	}

	c := &SigningClient{
		signer:         signer,
		network:        network,
		gasPrice:       gasPrice,
		txConfig:       txConfig,
		registry:       registry,
		confirmTimeout: DefaultConfirmTimeout,
		pollInterval:   DefaultPollInterval,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.rpc == nil {
		httpClient, err := rpchttp.New(network.RPCURL, "/websocket")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnect, err)
		}
		c.rpc = httpClient
	}

	status, err := c.rpc.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnect, network.RPCURL, err)
	}
	if status.NodeInfo.Network != network.ChainID {
		return nil, fmt.Errorf("%w: node at %s serves chain %q, expected %q",
			ErrConnect, network.RPCURL, status.NodeInfo.Network, network.ChainID)
	}

	c.logger.Info("signing client connected",
		zap.String("rpc", network.RPCURL),
		zap.String("chain_id", network.ChainID),
		zap.String("signer", signer.Address()),
		zap.String("gas_price", gasPrice.String()),
	)
	return c, nil
}

// ParseGasPrice builds the gas price coin from a decimal amount and a denom, e.g. 0.025 and "ucosm".
func ParseGasPrice(price float64, denom string) (sdk.DecCoin, error) {
	raw := strconv.FormatFloat(price, 'f', -1, 64) + denom
	gasPrice, err := sdk.ParseDecCoin(raw)
	if err != nil {
		return sdk.DecCoin{}, fmt.Errorf("invalid gas price %q: %w", raw, err)
	}
	return gasPrice, nil
}

// CalculateFee returns ceil(gasPrice * gas) in the fee token.
func CalculateFee(gasPrice sdk.DecCoin, gas uint64) sdk.Coins {
	amount := gasPrice.Amount.MulInt64(int64(gas)).Ceil().TruncateInt()
	return sdk.NewCoins(sdk.NewCoin(gasPrice.Denom, amount))
}

// CalculateFee returns the fee for gas at the session gas price.
func (c *SigningClient) CalculateFee(gas uint64) sdk.Coins {
	return CalculateFee(c.gasPrice, gas)
}

// FeeDenom returns the network's fee token.
func (c *SigningClient) FeeDenom() string {
	return c.network.FeeToken
}

// SignerAddress returns the address every tx of this session is signed by.
func (c *SigningClient) SignerAddress() string {
	return c.signer.Address()
}

// Network returns the network the session is bound to.
func (c *SigningClient) Network() config.NetworkConfig {
	return c.network
}

// Close ends the session. Later calls return ErrClosed.
func (c *SigningClient) Close() error {
	c.closed.Store(true)
	return nil
}

// Instantiate creates a contract from codeID with the JSON-encoded msg and waits for the commit.
func (c *SigningClient) Instantiate(ctx context.Context, sender string, codeID uint64, msg any, label string, fee StdFee) (*InstantiateResult, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal instantiate msg: %w", err)
	}

	res, err := c.signAndBroadcast(ctx, sender, fee, &wasmtypes.MsgInstantiateContract{
		Sender: sender,
		CodeID: codeID,
		Label:  label,
		Msg:    raw,
	})
	if err != nil {
		return nil, err
	}

	contractAddress, err := contractAddressFromEvents(res.Events)
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", res.TransactionHash, err)
	}
	return &InstantiateResult{ExecuteResult: *res, ContractAddress: contractAddress}, nil
}

// Execute runs the JSON-encoded msg against contract and waits for the commit.
func (c *SigningClient) Execute(ctx context.Context, sender, contract string, msg any, fee StdFee) (*ExecuteResult, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execute msg: %w", err)
	}

	return c.signAndBroadcast(ctx, sender, fee, &wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: contract,
		Msg:      raw,
	})
}

// QueryContractSmart runs a read-only smart query and decodes the JSON answer into out.
func (c *SigningClient) QueryContractSmart(ctx context.Context, contract string, query any, out any) error {
	if c.closed.Load() {
		return ErrClosed
	}

	raw, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	req := &wasmtypes.QuerySmartContractStateRequest{Address: contract, QueryData: raw}
	data, err := req.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode query request: %w", err)
	}

	res, err := c.rpc.ABCIQuery(ctx, smartQueryPath, data)
	if err != nil {
		return fmt.Errorf("failed to query contract %s: %w", contract, err)
	}
	if res.Response.Code != 0 {
		return fmt.Errorf("%w: contract %s; %s", ErrQueryFailed, contract, res.Response.Log)
	}

	var resp wasmtypes.QuerySmartContractStateResponse
	if err := resp.Unmarshal(res.Response.Value); err != nil {
		return fmt.Errorf("failed to decode query response: %w", err)
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal query result: %w", err)
	}
	return nil
}

func (c *SigningClient) signAndBroadcast(ctx context.Context, sender string, fee StdFee, msgs ...sdk.Msg) (*ExecuteResult, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	if sender != c.signer.Address() {
		return nil, fmt.Errorf("%w: sender %s, signer %s", ErrSenderMismatch, sender, c.signer.Address())
	}

	accountNumber, sequence, err := c.account(ctx, sender)
	if err != nil {
		return nil, err
	}

	builder := c.txConfig.NewTxBuilder()
	if err := builder.SetMsgs(msgs...); err != nil {
		return nil, fmt.Errorf("failed to set msgs: %w", err)
	}
	amount := fee.Amount
	if amount.Empty() {
		amount = c.CalculateFee(fee.Gas)
	}
	builder.SetGasLimit(fee.Gas)
	builder.SetFeeAmount(amount)

	txBytes, err := c.sign(ctx, builder, accountNumber, sequence)
	if err != nil {
		return nil, err
	}

	res, err := c.rpc.BroadcastTxSync(ctx, txBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to broadcast tx: %w", err)
	}
	if res.Code != 0 {
		return nil, &TxError{Hash: res.Hash.String(), Code: res.Code, Codespace: res.Codespace, Log: res.Log}
	}

	c.logger.Debug("tx broadcast",
		zap.String("hash", res.Hash.String()),
		zap.Uint64("sequence", sequence),
		zap.Uint64("gas", fee.Gas),
		zap.String("fee", amount.String()),
	)
	return c.waitForTx(ctx, res.Hash)
}

func (c *SigningClient) account(ctx context.Context, address string) (accountNumber, sequence uint64, err error) {
	req := &authtypes.QueryAccountRequest{Address: address}
	data, err := req.Marshal()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to encode account request: %w", err)
	}

	res, err := c.rpc.ABCIQuery(ctx, accountQueryPath, data)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query account: %w", err)
	}
	if res.Response.Code != 0 {
		return 0, 0, fmt.Errorf("account %s not found on chain, fund it first; %s", address, res.Response.Log)
	}

	var resp authtypes.QueryAccountResponse
	if err := resp.Unmarshal(res.Response.Value); err != nil {
		return 0, 0, fmt.Errorf("failed to decode account response: %w", err)
	}
	var acc sdk.AccountI
	if err := c.registry.UnpackAny(resp.Account, &acc); err != nil {
		return 0, 0, fmt.Errorf("failed to unpack account: %w", err)
	}
	return acc.GetAccountNumber(), acc.GetSequence(), nil
}

// sign fills a SIGN_MODE_DIRECT signature for the session signer and encodes the tx.
func (c *SigningClient) sign(ctx context.Context, builder sdkclient.TxBuilder, accountNumber, sequence uint64) ([]byte, error) {
	pub := c.signer.PubKey()
	signMode := signing.SignMode_SIGN_MODE_DIRECT

	// signer infos must be present before the sign bytes are computed
	sig := signing.SignatureV2{
		PubKey:   pub,
		Data:     &signing.SingleSignatureData{SignMode: signMode},
		Sequence: sequence,
	}
	if err := builder.SetSignatures(sig); err != nil {
		return nil, fmt.Errorf("failed to set signer info: %w", err)
	}

	signerData := authsigning.SignerData{
		Address:       c.signer.Address(),
		ChainID:       c.network.ChainID,
		AccountNumber: accountNumber,
		Sequence:      sequence,
		PubKey:        pub,
	}
	signBytes, err := authsigning.GetSignBytesAdapter(ctx, c.txConfig.SignModeHandler(), signMode, signerData, builder.GetTx())
	if err != nil {
		return nil, fmt.Errorf("failed to compute sign bytes: %w", err)
	}

	signature, err := c.signer.Sign(signBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to sign tx: %w", err)
	}
	sig.Data = &signing.SingleSignatureData{SignMode: signMode, Signature: signature}
	if err := builder.SetSignatures(sig); err != nil {
		return nil, fmt.Errorf("failed to set signature: %w", err)
	}

	txBytes, err := c.txConfig.TxEncoder()(builder.GetTx())
	if err != nil {
		return nil, fmt.Errorf("failed to encode tx: %w", err)
	}
	return txBytes, nil
}

// waitForTx polls the node until the tx is found in a block or the confirm timeout expires.
func (c *SigningClient) waitForTx(ctx context.Context, hash cmtbytes.HexBytes) (*ExecuteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		res, err := c.rpc.Tx(ctx, hash, false)
		if err == nil {
			if res.TxResult.Code != 0 {
				return nil, &TxError{
					Hash:      hash.String(),
					Code:      res.TxResult.Code,
					Codespace: res.TxResult.Codespace,
					Log:       res.TxResult.Log,
				}
			}
			return &ExecuteResult{
				TransactionHash: hash.String(),
				Height:          res.Height,
				GasWanted:       res.TxResult.GasWanted,
				GasUsed:         res.TxResult.GasUsed,
				Events:          res.TxResult.Events,
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: tx %s: %w", ErrTxTimeout, hash.String(), ctx.Err())
		case <-ticker.C:
		}
	}
}

func contractAddressFromEvents(events []abci.Event) (string, error) {
	for _, event := range events {
		if event.Type != wasmtypes.EventTypeInstantiate {
			continue
		}
		for _, attr := range event.Attributes {
			if attr.Key == wasmtypes.AttributeKeyContractAddr {
				return attr.Value, nil
			}
		}
	}
	return "", fmt.Errorf("no %s attribute in %s events", wasmtypes.AttributeKeyContractAddr, wasmtypes.EventTypeInstantiate)
}
