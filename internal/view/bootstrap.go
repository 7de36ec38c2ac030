package view

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
	"github.com/AlexZinkM/cw721-wallet/internal/config"
	"github.com/AlexZinkM/cw721-wallet/internal/cw721"
	"github.com/AlexZinkM/cw721-wallet/internal/storage"
	"github.com/AlexZinkM/cw721-wallet/internal/wallet"
)

// ConnectFunc opens a signing session for signer on network.
type ConnectFunc func(ctx context.Context, network config.NetworkConfig, signer client.OfflineSigner) (Session, error)

// Bootstrapper runs the startup sequence: load or create the wallet,
// connect the session, bind the contract.
type Bootstrapper struct {
	Storage         storage.Storage
	Network         config.NetworkConfig
	ContractAddress string
	Connect         ConnectFunc
	// Wrap decorates the session before the contract is bound to it. Optional.
	Wrap   func(cw721.SigningClient) cw721.SigningClient
	Logger *zap.Logger
}

func (b *Bootstrapper) Run(ctx context.Context) (*Ready, error) {
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if b.Storage == nil || b.Connect == nil {
		return nil, errors.New("bootstrapper is missing storage or connect")
	}

	signer, err := wallet.LoadOrCreateWallet(b.Storage, b.Network.AddressPrefix)
	if err != nil {
		logger.Error("failed to load wallet", zap.Error(err))
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}

	session, err := b.Connect(ctx, b.Network, signer)
	if err != nil {
		logger.Error("failed to connect",
			zap.String("rpc", b.Network.RPCURL),
			zap.String("address", signer.Address()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to connect to %s: %w", b.Network.ChainID, err)
	}

	var signingClient cw721.SigningClient = session
	if b.Wrap != nil {
		signingClient = b.Wrap(session)
	}

	logger.Info("wallet ready",
		zap.String("address", signer.Address()),
		zap.String("chain_id", b.Network.ChainID),
		zap.String("contract", b.ContractAddress),
	)
	return &Ready{
		Address:  signer.Address(),
		Network:  b.Network,
		Session:  session,
		Client:   signingClient,
		Contract: cw721.New(b.ContractAddress, signingClient),
	}, nil
}
