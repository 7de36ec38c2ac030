package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
	"github.com/AlexZinkM/cw721-wallet/internal/common"
	"github.com/AlexZinkM/cw721-wallet/internal/model"
	"github.com/AlexZinkM/cw721-wallet/internal/view"
)

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps err to a status and writes model.ErrorResponse with the flattened message.
func writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeJSON(w, status, model.ErrorResponse{
		Error: common.ErrorMessage(err),
		Code:  code,
	})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, view.ErrNotReady):
		return http.StatusServiceUnavailable, "not_ready"
	case errors.Is(err, client.ErrClosed):
		return http.StatusServiceUnavailable, "session_closed"
	case errors.Is(err, client.ErrSenderMismatch):
		return http.StatusForbidden, "sender_mismatch"
	case errors.Is(err, client.ErrTxTimeout):
		return http.StatusGatewayTimeout, "tx_timeout"
	case errors.Is(err, client.ErrTxRejected):
		return http.StatusUnprocessableEntity, "tx_rejected"
	case errors.Is(err, client.ErrQueryFailed):
		return http.StatusUnprocessableEntity, "query_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed. Should be "+method, http.StatusMethodNotAllowed)
		return false
	}
	return true
}
