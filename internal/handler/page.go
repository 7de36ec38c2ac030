package handler

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/AlexZinkM/cw721-wallet/internal/common"
	"github.com/AlexZinkM/cw721-wallet/internal/model"
	"github.com/AlexZinkM/cw721-wallet/internal/view"
)

//go:embed templates/index.html
var templates embed.FS

const (
	actionTokens   = "tokens"
	actionMint     = "mint"
	actionTransfer = "transfer"
)

type formValues struct {
	Address  string
	Receiver string
	ID       string
	URI      string
}

type pageData struct {
	State  model.StateResponse
	Form   formValues
	Action string
	TxHash string
	Tokens []model.Token
	Error  string
}

func parsePage() (*template.Template, error) {
	page, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return page, nil
}

// Index handles GET / and POST /
// GET renders the form. POST runs one action ("tokens", "mint" or "transfer")
// and renders the form again with its result or error.
func (h *CW721Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, http.StatusOK, pageData{State: stateResponse(h.store.Snapshot())})
	case http.MethodPost:
		h.submit(w, r)
	default:
		http.Error(w, "Method not allowed. Should be GET or POST", http.StatusMethodNotAllowed)
	}
}

func (h *CW721Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := pageData{
		State:  stateResponse(h.store.Snapshot()),
		Action: r.PostFormValue("action"),
		Form: formValues{
			Address:  strings.TrimSpace(r.PostFormValue("address")),
			Receiver: strings.TrimSpace(r.PostFormValue("receiver")),
			ID:       strings.TrimSpace(r.PostFormValue("id")),
			URI:      strings.TrimSpace(r.PostFormValue("uri")),
		},
	}

	ready, err := h.store.Ready()
	if err != nil {
		data.Error = common.ErrorMessage(err)
		h.render(w, http.StatusServiceUnavailable, data)
		return
	}

	ctx := r.Context()
	switch data.Action {
	case actionTokens:
		owner := data.Form.Address
		if owner == "" {
			owner = ready.Address
		}
		data.Tokens, err = h.ownedTokens(ctx, ready, owner)
	case actionMint:
		req := model.MintRequest{Owner: data.Form.Receiver, TokenID: data.Form.ID}
		if data.Form.URI != "" {
			uri := data.Form.URI
			req.TokenURI = &uri
		}
		data.TxHash, err = h.mint(ctx, ready, req)
	case actionTransfer:
		data.TxHash, err = h.transfer(ctx, ready, model.TransferRequest{
			From:     data.Form.Address,
			TokenID:  data.Form.ID,
			Receiver: data.Form.Receiver,
		})
	default:
		h.logger.Warn("unknown form action", zap.String("action", data.Action))
		err = fmt.Errorf("%w: unknown action %q", errBadRequest, data.Action)
	}

	status := http.StatusOK
	if err != nil {
		status, _ = statusFor(err)
		data.Error = common.ErrorMessage(err)
	}
	h.render(w, status, data)
}

func (h *CW721Handler) render(w http.ResponseWriter, status int, data pageData) {
	if data.State.Phase == string(view.PhaseReady) && data.Form.Address == "" {
		data.Form.Address = data.State.Address
	}

	var buf strings.Builder
	if err := h.page.Execute(&buf, data); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, buf.String())
}
