package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlexZinkM/cw721-wallet/internal/api"
	"github.com/AlexZinkM/cw721-wallet/internal/config"
	"github.com/AlexZinkM/cw721-wallet/internal/cw721"
	"github.com/AlexZinkM/cw721-wallet/internal/handler"
	"github.com/AlexZinkM/cw721-wallet/internal/metrics"
	"github.com/AlexZinkM/cw721-wallet/internal/view"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the wallet form, JSON API and swagger UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, err := a.openStorage()
	if err != nil {
		return err
	}
	defer kv.Close()

	m := metrics.NewMetrics("")
	store := view.NewStore()
	defer store.Close()

	h, err := handler.NewCW721Handler(store, config.GetMinter(), a.logger.Named("handler"))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", config.GetPort()),
		Handler:           api.SetupRouter(h, m.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// The form reports "loading" until startup finishes.
	go func() {
		err := store.Run(ctx, &view.Bootstrapper{
			Storage:         kv,
			Network:         a.network,
			ContractAddress: config.GetContract(),
			Connect:         a.connect,
			Wrap: func(inner cw721.SigningClient) cw721.SigningClient {
				return metrics.Instrument(inner, m)
			},
			Logger: a.logger.Named("bootstrap"),
		})
		m.SetReady(err == nil)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("chain_id", a.network.ChainID),
			zap.String("contract", config.GetContract()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
