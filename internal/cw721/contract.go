package cw721

import (
	"context"
	"fmt"
	"math/rand/v2"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
)

const (
	contractName   = "contract"
	contractSymbol = "some_symbol"

	labelAlphabet = "0123456789abcdefghij"
	labelLength   = 4
)

// Fixed fee allocations. Gas is not simulated.
const (
	InstantiateGas = 200000
	InstantiateFee = 5000
	MintGas        = 200000
	MintFee        = 10000
	TransferGas    = 200000
	TransferFee    = 5000
)

// SigningClient is the part of a signing session the binding calls through.
type SigningClient interface {
	Instantiate(ctx context.Context, sender string, codeID uint64, msg any, label string, fee client.StdFee) (*client.InstantiateResult, error)
	Execute(ctx context.Context, sender, contract string, msg any, fee client.StdFee) (*client.ExecuteResult, error)
	QueryContractSmart(ctx context.Context, contract string, query any, out any) error
	FeeDenom() string
}

// Contract binds one deployed NFT contract to a signing session.
// It keeps no token state; every read goes to the chain.
type Contract struct {
	contractAddress string
	client          SigningClient
}

// New creates a binding for contractAddress
func New(contractAddress string, session SigningClient) *Contract {
	return &Contract{
		contractAddress: contractAddress,
		client:          session,
	}
}

// Address returns the bound contract address
func (c *Contract) Address() string {
	return c.contractAddress
}

// Instantiate creates a new contract from codeID with sender as minter and returns its address.
func Instantiate(ctx context.Context, sender string, session SigningClient, codeID uint64) (string, error) {
	msg := InstantiateMsg{
		Name:   contractName,
		Symbol: contractSymbol,
		Minter: sender,
	}

	res, err := session.Instantiate(ctx, sender, codeID, msg, randomLabel(), fixedFee(session.FeeDenom(), InstantiateGas, InstantiateFee))
	if err != nil {
		return "", fmt.Errorf("failed to instantiate code %d: %w", codeID, err)
	}
	return res.ContractAddress, nil
}

// GetOwnedTokens returns the tokens of owner in contract order.
func (c *Contract) GetOwnedTokens(ctx context.Context, owner string) ([]Token, error) {
	var resp TokensResponse
	if err := c.query(ctx, QueryMsg{Tokens: &TokensQuery{Owner: owner}}, &resp); err != nil {
		return nil, err
	}
	return resp.Tokens, nil
}

// AllTokens pages through every token of the contract.
func (c *Contract) AllTokens(ctx context.Context, startAfter *string, limit *uint32) ([]Token, error) {
	var resp TokensResponse
	if err := c.query(ctx, QueryMsg{AllTokens: &AllTokensQuery{StartAfter: startAfter, Limit: limit}}, &resp); err != nil {
		return nil, err
	}
	return resp.Tokens, nil
}

// MintToken mints tokenID to owner and returns the tx hash.
// Duplicate ids and missing minter rights are rejected by the contract.
func (c *Contract) MintToken(ctx context.Context, sender, owner, tokenID string, tokenURI *string) (string, error) {
	msg := ExecuteMsg{Mint: &MintMsg{Token: Token{
		Owner:    owner,
		TokenID:  tokenID,
		TokenURI: tokenURI,
	}}}
	return c.execute(ctx, sender, msg, fixedFee(c.client.FeeDenom(), MintGas, MintFee))
}

// TransferToken moves tokenID to receiver and returns the tx hash.
func (c *Contract) TransferToken(ctx context.Context, sender, tokenID, receiver string) (string, error) {
	msg := ExecuteMsg{TransferNft: &TransferNftMsg{TokenID: tokenID, To: receiver}}
	return c.execute(ctx, sender, msg, fixedFee(c.client.FeeDenom(), TransferGas, TransferFee))
}

// SendNft moves tokenID to contract and triggers its receive hook with payload.
func (c *Contract) SendNft(ctx context.Context, sender, tokenID, contract string, payload []byte) (string, error) {
	msg := ExecuteMsg{SendNft: &SendNftMsg{TokenID: tokenID, Contract: contract, Msg: payload}}
	return c.execute(ctx, sender, msg, fixedFee(c.client.FeeDenom(), TransferGas, TransferFee))
}

func (c *Contract) OwnerOf(ctx context.Context, tokenID string) (string, error) {
	var resp OwnerOfResponse
	if err := c.query(ctx, QueryMsg{OwnerOf: &TokenQuery{TokenID: tokenID}}, &resp); err != nil {
		return "", err
	}
	return resp.Owner, nil
}

func (c *Contract) NftInfo(ctx context.Context, tokenID string) (*NftInfoResponse, error) {
	var resp NftInfoResponse
	if err := c.query(ctx, QueryMsg{NftInfo: &TokenQuery{TokenID: tokenID}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Contract) NumTokens(ctx context.Context) (uint64, error) {
	var resp NumTokensResponse
	if err := c.query(ctx, QueryMsg{NumTokens: &struct{}{}}, &resp); err != nil {
		return 0, err
	}
	return resp.Number, nil
}

func (c *Contract) ContractInfo(ctx context.Context) (*ContractInfoResponse, error) {
	var resp ContractInfoResponse
	if err := c.query(ctx, QueryMsg{ContractInfo: &struct{}{}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Contract) execute(ctx context.Context, sender string, msg ExecuteMsg, fee client.StdFee) (string, error) {
	res, err := c.client.Execute(ctx, sender, c.contractAddress, msg, fee)
	if err != nil {
		return "", err
	}
	return res.TransactionHash, nil
}

func (c *Contract) query(ctx context.Context, msg QueryMsg, out any) error {
	return c.client.QueryContractSmart(ctx, c.contractAddress, msg, out)
}

func fixedFee(denom string, gas uint64, amount int64) client.StdFee {
	return client.StdFee{
		Gas:    gas,
		Amount: sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewInt(amount))),
	}
}

// randomLabel is a display label only, not a secret.
func randomLabel() string {
	b := make([]byte, labelLength)
	for i := range b {
		b[i] = labelAlphabet[rand.IntN(len(labelAlphabet))]
	}
	return string(b)
}
