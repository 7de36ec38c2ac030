package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
	"github.com/AlexZinkM/cw721-wallet/internal/common"
	"github.com/AlexZinkM/cw721-wallet/internal/cw721"
	"github.com/AlexZinkM/cw721-wallet/internal/model"
	"github.com/AlexZinkM/cw721-wallet/internal/view"
)

// CW721Handler serves the wallet form and the JSON API on top of the view store.
type CW721Handler struct {
	store  *view.Store
	minter string
	logger *zap.Logger
	page   *template.Template
}

// NewCW721Handler creates a new CW721Handler. An empty minter makes the wallet itself mint.
func NewCW721Handler(store *view.Store, minter string, logger *zap.Logger) (*CW721Handler, error) {
	if store == nil {
		return nil, errors.New("view store is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	page, err := parsePage()
	if err != nil {
		return nil, err
	}

	return &CW721Handler{
		store:  store,
		minter: minter,
		logger: logger,
		page:   page,
	}, nil
}

// State handles GET /api/state
// @Summary      Wallet state
// @Description  Reports whether startup finished, failed or is still running
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.StateResponse
// @Router       /api/state [get]
func (h *CW721Handler) State(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(h.store.Snapshot()))
}

// Wallet handles GET /api/wallet
// @Summary      Wallet address
// @Description  Returns the wallet address with a base64 PNG QR code
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletResponse
// @Failure      503  {object}  model.ErrorResponse
// @Router       /api/wallet [get]
func (h *CW721Handler) Wallet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	ready, err := h.store.Ready()
	if err != nil {
		writeError(w, err)
		return
	}

	qr, err := common.GenerateQRCode(ready.Address)
	if err != nil {
		h.logger.Warn("failed to generate qr code", zap.Error(err))
	}
	writeJSON(w, http.StatusOK, model.WalletResponse{
		Address: ready.Address,
		ChainID: ready.Network.ChainID,
		QRCode:  qr,
	})
}

// Tokens handles GET /api/tokens
// @Summary      Owned tokens
// @Description  Lists the tokens of owner, or of the wallet when owner is empty
// @Tags         cw721
// @Produce      json
// @Param        owner  query     string  false  "Owner address"
// @Success      200    {object}  model.TokensResponse
// @Failure      422    {object}  model.ErrorResponse
// @Failure      503    {object}  model.ErrorResponse
// @Router       /api/tokens [get]
func (h *CW721Handler) Tokens(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	ready, err := h.store.Ready()
	if err != nil {
		writeError(w, err)
		return
	}

	owner := r.URL.Query().Get("owner")
	if owner == "" {
		owner = ready.Address
	}
	tokens, err := h.ownedTokens(r.Context(), ready, owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TokensResponse{Owner: owner, Tokens: tokens})
}

// AllTokens handles GET /api/tokens/all
// @Summary      All tokens
// @Description  Pages through every token of the contract
// @Tags         cw721
// @Produce      json
// @Param        startAfter  query     string   false  "Token id to start after"
// @Param        limit       query     integer  false  "Page size"
// @Success      200         {object}  model.TokensResponse
// @Failure      400         {object}  model.ErrorResponse
// @Failure      503         {object}  model.ErrorResponse
// @Router       /api/tokens/all [get]
func (h *CW721Handler) AllTokens(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	ready, err := h.store.Ready()
	if err != nil {
		writeError(w, err)
		return
	}

	var startAfter *string
	if s := r.URL.Query().Get("startAfter"); s != "" {
		startAfter = &s
	}
	var limit *uint32
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			writeError(w, fmt.Errorf("%w: invalid limit %q", errBadRequest, s))
			return
		}
		l := uint32(n)
		limit = &l
	}

	tokens, err := ready.Contract.AllTokens(r.Context(), startAfter, limit)
	if err != nil {
		h.logger.Error("all tokens query failed", zap.String("contract", ready.Contract.Address()), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TokensResponse{Tokens: toModelTokens(tokens)})
}

// Nft handles GET /api/nft
// @Summary      Token details
// @Description  Returns owner and uri of one token
// @Tags         cw721
// @Produce      json
// @Param        id   query     string  true  "Token id"
// @Success      200  {object}  model.NftResponse
// @Failure      400  {object}  model.ErrorResponse
// @Failure      422  {object}  model.ErrorResponse
// @Router       /api/nft [get]
func (h *CW721Handler) Nft(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	ready, err := h.store.Ready()
	if err != nil {
		writeError(w, err)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, fmt.Errorf("%w: id is required", errBadRequest))
		return
	}

	owner, err := ready.Contract.OwnerOf(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	info, err := ready.Contract.NftInfo(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NftResponse{TokenID: id, Owner: owner, TokenURI: info.TokenURI})
}

// Contract handles GET /api/contract
// @Summary      Contract info
// @Description  Returns name, symbol and token count of the bound contract
// @Tags         cw721
// @Produce      json
// @Success      200  {object}  model.ContractResponse
// @Failure      422  {object}  model.ErrorResponse
// @Router       /api/contract [get]
func (h *CW721Handler) Contract(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	ready, err := h.store.Ready()
	if err != nil {
		writeError(w, err)
		return
	}

	info, err := ready.Contract.ContractInfo(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	count, err := ready.Contract.NumTokens(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ContractResponse{
		Address:   ready.Contract.Address(),
		Name:      info.Name,
		Symbol:    info.Symbol,
		NumTokens: count,
	})
}

// Mint handles POST /api/mint
// @Summary      Mint token
// @Description  Mints a token to owner. Returns after the transaction is committed
// @Tags         cw721
// @Accept       json
// @Produce      json
// @Param        request  body      model.MintRequest  true  "Mint data"
// @Success      200      {object}  model.TxResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Failure      504      {object}  model.ErrorResponse
// @Router       /api/mint [post]
func (h *CW721Handler) Mint(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.MintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	ready, err := h.store.Ready()
	if err != nil {
		writeError(w, err)
		return
	}

	txHash, err := h.mint(r.Context(), ready, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TxResponse{TxHash: txHash})
}

// Transfer handles POST /api/transfer
// @Summary      Transfer token
// @Description  Transfers a token to receiver. Returns after the transaction is committed
// @Tags         cw721
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  model.TxResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Failure      504      {object}  model.ErrorResponse
// @Router       /api/transfer [post]
func (h *CW721Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	ready, err := h.store.Ready()
	if err != nil {
		writeError(w, err)
		return
	}

	txHash, err := h.transfer(r.Context(), ready, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TxResponse{TxHash: txHash})
}

// Instantiate handles POST /api/instantiate
// @Summary      Instantiate contract
// @Description  Creates a new contract with the wallet as minter and binds the wallet to it
// @Tags         cw721
// @Accept       json
// @Produce      json
// @Param        request  body      model.InstantiateRequest  false  "Code id, defaults to the network's"
// @Success      200      {object}  model.InstantiateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /api/instantiate [post]
func (h *CW721Handler) Instantiate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.InstantiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	ready, err := h.store.Ready()
	if err != nil {
		writeError(w, err)
		return
	}

	codeID := req.CodeID
	if codeID == 0 {
		codeID = ready.Network.CodeID
	}
	if codeID == 0 {
		writeError(w, fmt.Errorf("%w: codeId is required, network %s has none configured", errBadRequest, ready.Network.ChainID))
		return
	}

	contractAddress, err := cw721.Instantiate(r.Context(), ready.Address, ready.Client, codeID)
	if err != nil {
		h.logger.Error("instantiate failed", zap.Uint64("code_id", codeID), zap.Error(err))
		writeError(w, err)
		return
	}
	h.logger.Info("contract instantiated", zap.Uint64("code_id", codeID), zap.String("contract", contractAddress))

	if err := h.store.UseContract(contractAddress); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.InstantiateResponse{ContractAddress: contractAddress, CodeID: codeID})
}

// Faucet handles POST /api/faucet
// @Summary      Request test tokens
// @Description  Asks the network faucet to credit the wallet with the fee token
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.FaucetResponse
// @Failure      400  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /api/faucet [post]
func (h *CW721Handler) Faucet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	ready, err := h.store.Ready()
	if err != nil {
		writeError(w, err)
		return
	}
	if ready.Network.FaucetURL == "" {
		writeError(w, fmt.Errorf("%w: network %s has no faucet", errBadRequest, ready.Network.ChainID))
		return
	}

	denom := ready.Network.FeeToken
	if err := client.NewFaucetClient(ready.Network.FaucetURL).Credit(r.Context(), ready.Address, denom); err != nil {
		h.logger.Error("faucet request failed", zap.String("faucet", ready.Network.FaucetURL), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.FaucetResponse{
		Success: true,
		Message: "Credit requested",
		Address: ready.Address,
		Denom:   denom,
	})
}

func (h *CW721Handler) ownedTokens(ctx context.Context, ready *view.Ready, owner string) ([]model.Token, error) {
	tokens, err := ready.Contract.GetOwnedTokens(ctx, owner)
	if err != nil {
		h.logger.Error("tokens query failed",
			zap.String("contract", ready.Contract.Address()),
			zap.String("owner", owner),
			zap.Error(err),
		)
		return nil, err
	}
	return toModelTokens(tokens), nil
}

func (h *CW721Handler) mint(ctx context.Context, ready *view.Ready, req model.MintRequest) (string, error) {
	req.Owner = strings.TrimSpace(req.Owner)
	req.TokenID = strings.TrimSpace(req.TokenID)
	if req.Owner == "" || req.TokenID == "" {
		return "", fmt.Errorf("%w: owner and tokenId are required", errBadRequest)
	}

	sender := req.Sender
	if sender == "" {
		sender = h.minter
	}
	if sender == "" {
		sender = ready.Address
	}

	txHash, err := ready.Contract.MintToken(ctx, sender, req.Owner, req.TokenID, req.TokenURI)
	if err != nil {
		h.logger.Error("mint failed",
			zap.String("sender", sender),
			zap.String("owner", req.Owner),
			zap.String("token_id", req.TokenID),
			zap.Error(err),
		)
		return "", err
	}
	h.logger.Info("token minted",
		zap.String("owner", req.Owner),
		zap.String("token_id", req.TokenID),
		zap.String("tx_hash", txHash),
	)
	return txHash, nil
}

func (h *CW721Handler) transfer(ctx context.Context, ready *view.Ready, req model.TransferRequest) (string, error) {
	req.TokenID = strings.TrimSpace(req.TokenID)
	req.Receiver = strings.TrimSpace(req.Receiver)
	if req.TokenID == "" || req.Receiver == "" {
		return "", fmt.Errorf("%w: tokenId and receiver are required", errBadRequest)
	}

	from := strings.TrimSpace(req.From)
	if from == "" {
		from = ready.Address
	}

	txHash, err := ready.Contract.TransferToken(ctx, from, req.TokenID, req.Receiver)
	if err != nil {
		h.logger.Error("transfer failed",
			zap.String("from", from),
			zap.String("to", req.Receiver),
			zap.String("token_id", req.TokenID),
			zap.Error(err),
		)
		return "", err
	}
	h.logger.Info("token transferred",
		zap.String("to", req.Receiver),
		zap.String("token_id", req.TokenID),
		zap.String("tx_hash", txHash),
	)
	return txHash, nil
}

func stateResponse(st view.State) model.StateResponse {
	resp := model.StateResponse{Phase: string(st.Phase), Message: st.Message}
	if st.Ready != nil {
		resp.Address = st.Ready.Address
		resp.Contract = st.Ready.Contract.Address()
		resp.ChainID = st.Ready.Network.ChainID
	}
	return resp
}

func toModelTokens(tokens []cw721.Token) []model.Token {
	out := make([]model.Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, model.Token{Owner: t.Owner, TokenID: t.TokenID, TokenURI: t.TokenURI})
	}
	return out
}
