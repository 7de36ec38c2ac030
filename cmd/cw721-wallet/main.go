// Command cw721-wallet runs a local wallet for a CW721 NFT contract.
//
// @title           cw721 wallet API
// @version         1.0
// @description     Local wallet for a CW721 NFT contract on a CosmWasm chain.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
	"github.com/AlexZinkM/cw721-wallet/internal/config"
	"github.com/AlexZinkM/cw721-wallet/internal/storage"
	"github.com/AlexZinkM/cw721-wallet/internal/view"
)

// app is the state shared by all subcommands, set up before any of them runs.
type app struct {
	logger  *zap.Logger
	network config.NetworkConfig
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "cw721-wallet",
		Short:         "Local wallet for a CW721 NFT contract",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}

	root.AddCommand(
		newServeCmd(a),
		newInstantiateCmd(a),
		newAddressCmd(a),
		newFaucetCmd(a),
		newForgetCmd(a),
	)
	return root
}

// setup loads configuration and resolves the network. Both fail hard.
func (a *app) setup() error {
	if err := config.Init(); err != nil {
		return err
	}

	logger, err := newLogger(config.Get().LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	network, err := config.SelectedNetwork()
	if err != nil {
		logger.Error("invalid network", zap.String("network", config.Get().Network), zap.Error(err))
		return err
	}
	a.network = network
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// openStorage opens the configured backend, sealed with a prompted password when SEAL_MNEMONIC is set.
func (a *app) openStorage() (storage.Storage, error) {
	cfg := config.Get()

	store, err := storage.Open(cfg.StorageBackend, cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	if !cfg.SealMnemonic {
		return store, nil
	}

	if err := config.PromptForPassword(); err != nil {
		store.Close()
		return nil, err
	}
	password, err := config.GetPasswordBytes()
	if err != nil {
		store.Close()
		return nil, err
	}
	defer clear(password)

	return storage.NewSealed(store, password), nil
}

func (a *app) connect(ctx context.Context, network config.NetworkConfig, signer client.OfflineSigner) (view.Session, error) {
	session, err := client.Connect(ctx, network, signer,
		client.WithConfirmTimeout(config.GetTxConfirmTimeout()),
		client.WithLogger(a.logger.Named("client")),
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// bootstrap runs the startup sequence once, outside the server.
func (a *app) bootstrap(ctx context.Context, kv storage.Storage) (*view.Ready, error) {
	b := &view.Bootstrapper{
		Storage:         kv,
		Network:         a.network,
		ContractAddress: config.GetContract(),
		Connect:         a.connect,
		Logger:          a.logger,
	}
	return b.Run(ctx)
}

var errAborted = errors.New("aborted")
