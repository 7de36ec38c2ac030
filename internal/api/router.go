package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/AlexZinkM/cw721-wallet/docs"
	"github.com/AlexZinkM/cw721-wallet/internal/handler"
)

// SetupRouter sets up router with handlers. metrics may be nil.
func SetupRouter(cw721Handler *handler.CW721Handler, metrics http.Handler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}

	// Form
	mux.HandleFunc("/", cw721Handler.Index)

	// Wallet endpoints
	mux.HandleFunc("/api/state", cw721Handler.State)
	mux.HandleFunc("/api/wallet", cw721Handler.Wallet)
	mux.HandleFunc("/api/faucet", cw721Handler.Faucet)

	// Contract endpoints
	mux.HandleFunc("/api/tokens", cw721Handler.Tokens)
	mux.HandleFunc("/api/tokens/all", cw721Handler.AllTokens)
	mux.HandleFunc("/api/nft", cw721Handler.Nft)
	mux.HandleFunc("/api/contract", cw721Handler.Contract)
	mux.HandleFunc("/api/mint", cw721Handler.Mint)
	mux.HandleFunc("/api/transfer", cw721Handler.Transfer)
	mux.HandleFunc("/api/instantiate", cw721Handler.Instantiate)

	return mux
}
