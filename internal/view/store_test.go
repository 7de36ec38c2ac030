package view

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
	"github.com/AlexZinkM/cw721-wallet/internal/config"
	"github.com/AlexZinkM/cw721-wallet/internal/cw721"
	"github.com/AlexZinkM/cw721-wallet/internal/cw721/cw721test"
	"github.com/AlexZinkM/cw721-wallet/internal/storage"
	"github.com/AlexZinkM/cw721-wallet/internal/wallet"
)

type fakeSession struct {
	*cw721test.Client
	address string
	closed  bool
}

func (s *fakeSession) SignerAddress() string { return s.address }

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type failingStorage struct {
	storage.Storage
}

func (failingStorage) Get(key string) (string, error) {
	return "", errors.New("permission denied")
}

func testNetwork(t *testing.T) config.NetworkConfig {
	t.Helper()
	network, err := config.SelectNetwork(config.BuiltinNetworks(), "malaga")
	require.NoError(t, err)
	return network
}

func openStore(t *testing.T) storage.Storage {
	t.Helper()
	s, err := storage.OpenFile(filepath.Join(t.TempDir(), "wallet.json"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func connectFake(session **fakeSession) ConnectFunc {
	return func(ctx context.Context, network config.NetworkConfig, signer client.OfflineSigner) (Session, error) {
		s := &fakeSession{Client: cw721test.New(network.FeeToken), address: signer.Address()}
		*session = s
		return s, nil
	}
}

func TestNewStore_StartsLoading(t *testing.T) {
	store := NewStore()
	st := store.Snapshot()
	assert.Equal(t, PhaseLoading, st.Phase)
	assert.Nil(t, st.Ready)

	_, err := store.Ready()
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestRun_Ready(t *testing.T) {
	var session *fakeSession
	kv := openStore(t)
	store := NewStore()

	err := store.Run(context.Background(), &Bootstrapper{
		Storage:         kv,
		Network:         testNetwork(t),
		ContractAddress: "wasm1contract",
		Connect:         connectFake(&session),
	})
	require.NoError(t, err)

	st := store.Snapshot()
	require.Equal(t, PhaseReady, st.Phase)
	assert.Empty(t, st.Message)
	assert.Equal(t, "wasm1contract", st.Ready.Contract.Address())
	assert.Equal(t, session.address, st.Ready.Address)
	assert.Regexp(t, `^wasm1`, st.Ready.Address)

	mnemonic, err := kv.Get(wallet.MnemonicKey)
	require.NoError(t, err)
	signer, err := wallet.NewSigner(mnemonic, "wasm")
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), st.Ready.Address)

	assert.ErrorIs(t, store.Run(context.Background(), &Bootstrapper{}), ErrAlreadyStarted)

	require.NoError(t, store.Close())
	assert.True(t, session.closed)
}

func TestRun_ConnectErrorLeavesErrorState(t *testing.T) {
	store := NewStore()
	connectErr := fmt.Errorf("%w: http://localhost:26657; dial tcp: connection refused", client.ErrConnect)

	err := store.Run(context.Background(), &Bootstrapper{
		Storage: openStore(t),
		Network: testNetwork(t),
		Connect: func(ctx context.Context, network config.NetworkConfig, signer client.OfflineSigner) (Session, error) {
			return nil, connectErr
		},
	})
	require.ErrorIs(t, err, client.ErrConnect)

	st := store.Snapshot()
	assert.Equal(t, PhaseError, st.Phase)
	assert.Equal(t, "dial tcp: connection refused", st.Message)
	assert.Nil(t, st.Ready)

	_, err = store.Ready()
	require.ErrorIs(t, err, ErrNotReady)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, store.Close())
}

func TestRun_StorageErrorSkipsConnect(t *testing.T) {
	store := NewStore()
	connected := false

	err := store.Run(context.Background(), &Bootstrapper{
		Storage: failingStorage{},
		Network: testNetwork(t),
		Connect: func(ctx context.Context, network config.NetworkConfig, signer client.OfflineSigner) (Session, error) {
			connected = true
			return nil, nil
		},
	})
	require.Error(t, err)
	assert.False(t, connected)
	assert.Equal(t, PhaseError, store.Snapshot().Phase)
	assert.Contains(t, store.Snapshot().Message, "permission denied")
}

func TestRun_WrapDecoratesContractClient(t *testing.T) {
	var session *fakeSession
	var wrapped cw721.SigningClient
	store := NewStore()

	err := store.Run(context.Background(), &Bootstrapper{
		Storage: openStore(t),
		Network: testNetwork(t),
		Connect: connectFake(&session),
		Wrap: func(inner cw721.SigningClient) cw721.SigningClient {
			wrapped = inner
			return inner
		},
	})
	require.NoError(t, err)
	assert.Same(t, session, wrapped)
}

func TestUseContract(t *testing.T) {
	var session *fakeSession
	store := NewStore()
	require.ErrorIs(t, store.UseContract("wasm1new"), ErrNotReady)

	require.NoError(t, store.Run(context.Background(), &Bootstrapper{
		Storage:         openStore(t),
		Network:         testNetwork(t),
		ContractAddress: "wasm1old",
		Connect:         connectFake(&session),
	}))
	before := store.Snapshot()

	require.NoError(t, store.UseContract("wasm1new"))
	assert.Equal(t, "wasm1new", store.Snapshot().Ready.Contract.Address())
	assert.Equal(t, "wasm1old", before.Ready.Contract.Address())
}
