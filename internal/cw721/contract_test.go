package cw721

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
	"github.com/AlexZinkM/cw721-wallet/internal/cw721/cw721test"
)

const testContract = "wasm14hj2tavq8fpesdwxxcu44rty3hh90vhujrvcmstl4zr3txmfvw9s0phg4d"

func TestInstantiate(t *testing.T) {
	fake := cw721test.New("umlg")
	fake.ContractAddress = testContract

	addr, err := Instantiate(context.Background(), "wasm1sender", fake, 42)
	require.NoError(t, err)
	assert.Equal(t, testContract, addr)

	call := fake.LastCall()
	assert.Equal(t, "instantiate", call.Method)
	assert.Equal(t, "wasm1sender", call.Sender)
	assert.Equal(t, uint64(42), call.CodeID)
	assert.JSONEq(t, `{"name":"contract","symbol":"some_symbol","minter":"wasm1sender"}`, string(call.Msg))
	assert.Len(t, call.Label, 4)
	assert.Equal(t, uint64(InstantiateGas), call.Fee.Gas)
	assert.Equal(t, "5000umlg", call.Fee.Amount.String())
}

func TestInstantiate_Error(t *testing.T) {
	fake := cw721test.New("umlg")
	fake.Err = &client.TxError{Code: 5, Log: "insufficient funds"}

	_, err := Instantiate(context.Background(), "wasm1sender", fake, 42)
	assert.ErrorIs(t, err, client.ErrTxRejected)
}

func TestRandomLabel(t *testing.T) {
	for range 100 {
		label := randomLabel()
		require.Len(t, label, labelLength)
		for _, r := range label {
			assert.Contains(t, labelAlphabet, string(r))
		}
	}
}

func TestMintToken(t *testing.T) {
	fake := cw721test.New("umlg")
	fake.TxHash = "5F1E0B"
	contract := New(testContract, fake)
	uri := "ipfs12345"

	hash, err := contract.MintToken(context.Background(), "wasm1minter", "wasm1owner", "1", &uri)
	require.NoError(t, err)
	assert.Equal(t, "5F1E0B", hash)

	call := fake.LastCall()
	assert.Equal(t, "execute", call.Method)
	assert.Equal(t, "wasm1minter", call.Sender)
	assert.Equal(t, testContract, call.Contract)
	assert.JSONEq(t, `{"mint":{"token":{"owner":"wasm1owner","token_id":"1","token_uri":"ipfs12345"}}}`, string(call.Msg))
	assert.Equal(t, uint64(MintGas), call.Fee.Gas)
	assert.Equal(t, "10000umlg", call.Fee.Amount.String())
}

func TestMintToken_WithoutURI(t *testing.T) {
	fake := cw721test.New("ucosm")
	contract := New(testContract, fake)

	_, err := contract.MintToken(context.Background(), "wasm1minter", "wasm1owner", "2", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mint":{"token":{"owner":"wasm1owner","token_id":"2"}}}`, string(fake.LastCall().Msg))
	assert.Equal(t, "10000ucosm", fake.LastCall().Fee.Amount.String())
}

func TestMintToken_DuplicateIDReported(t *testing.T) {
	fake := cw721test.New("umlg")
	fake.Err = &client.TxError{Code: 5, Codespace: "wasm", Log: "failed to execute message; message index: 0: token_id already claimed"}
	contract := New(testContract, fake)

	_, err := contract.MintToken(context.Background(), "wasm1minter", "wasm1owner", "1", nil)
	var txErr *client.TxError
	require.True(t, errors.As(err, &txErr))
	assert.Contains(t, txErr.Log, "token_id already claimed")
}

func TestTransferToken(t *testing.T) {
	fake := cw721test.New("umlg")
	fake.TxHash = "C0FFEE"
	contract := New(testContract, fake)

	hash, err := contract.TransferToken(context.Background(), "wasm1owner", "1", "wasm1receiver")
	require.NoError(t, err)
	assert.Equal(t, "C0FFEE", hash)

	call := fake.LastCall()
	assert.Equal(t, "wasm1owner", call.Sender)
	assert.JSONEq(t, `{"transfer_nft":{"token_id":"1","to":"wasm1receiver"}}`, string(call.Msg))
	assert.Equal(t, uint64(TransferGas), call.Fee.Gas)
	assert.Equal(t, "5000umlg", call.Fee.Amount.String())
}

func TestSendNft(t *testing.T) {
	fake := cw721test.New("umlg")
	contract := New(testContract, fake)

	_, err := contract.SendNft(context.Background(), "wasm1owner", "1", "wasm1market", []byte(`{"list":{}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"send_nft":{"token_id":"1","contract":"wasm1market","msg":"eyJsaXN0Ijp7fX0="}}`, string(fake.LastCall().Msg))
}

func TestGetOwnedTokens(t *testing.T) {
	fake := cw721test.New("umlg")
	fake.Responses["tokens"] = `{"tokens":[
		{"owner":"minter","token_id":"2","token_uri":"ipfs2"},
		{"owner":"minter","token_id":"1","token_uri":"ipfs1"}
	]}`
	contract := New(testContract, fake)

	tokens, err := contract.GetOwnedTokens(context.Background(), "minter")
	require.NoError(t, err)

	call := fake.LastCall()
	assert.Equal(t, "query", call.Method)
	assert.Equal(t, testContract, call.Contract)
	assert.JSONEq(t, `{"tokens":{"owner":"minter"}}`, string(call.Msg))

	require.Len(t, tokens, 2)
	assert.Equal(t, "2", tokens[0].TokenID)
	assert.Equal(t, "ipfs2", *tokens[0].TokenURI)
	assert.Equal(t, "minter", tokens[0].Owner)
	assert.Equal(t, "1", tokens[1].TokenID)
	assert.Equal(t, "ipfs1", *tokens[1].TokenURI)
}

func TestGetOwnedTokens_Empty(t *testing.T) {
	fake := cw721test.New("umlg")
	fake.Responses["tokens"] = `{"tokens":[]}`

	tokens, err := New(testContract, fake).GetOwnedTokens(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestAllTokens(t *testing.T) {
	fake := cw721test.New("umlg")
	fake.Responses["all_tokens"] = `{"tokens":[{"owner":"a","token_id":"3"}]}`
	start := "2"
	limit := uint32(10)

	tokens, err := New(testContract, fake).AllTokens(context.Background(), &start, &limit)
	require.NoError(t, err)
	assert.JSONEq(t, `{"all_tokens":{"start_after":"2","limit":10}}`, string(fake.LastCall().Msg))
	require.Len(t, tokens, 1)
	assert.Nil(t, tokens[0].TokenURI)
}

func TestReadQueries(t *testing.T) {
	fake := cw721test.New("umlg")
	fake.Responses["owner_of"] = `{"owner":"wasm1owner"}`
	fake.Responses["nft_info"] = `{"token_uri":"ipfs1"}`
	fake.Responses["num_tokens"] = `{"number":3}`
	fake.Responses["contract_info"] = `{"name":"contract","symbol":"some_symbol"}`
	contract := New(testContract, fake)
	ctx := context.Background()

	owner, err := contract.OwnerOf(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "wasm1owner", owner)
	assert.JSONEq(t, `{"owner_of":{"token_id":"1"}}`, string(fake.LastCall().Msg))

	info, err := contract.NftInfo(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "ipfs1", *info.TokenURI)

	n, err := contract.NumTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)
	assert.JSONEq(t, `{"num_tokens":{}}`, string(fake.LastCall().Msg))

	ci, err := contract.ContractInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "some_symbol", ci.Symbol)
	assert.JSONEq(t, `{"contract_info":{}}`, string(fake.LastCall().Msg))
}

func TestQueryError(t *testing.T) {
	fake := cw721test.New("umlg")
	contract := New(testContract, fake)

	_, err := contract.OwnerOf(context.Background(), "404")
	assert.ErrorIs(t, err, client.ErrQueryFailed)
}
