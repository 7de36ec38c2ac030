package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/cw721-wallet/internal/handler"
	"github.com/AlexZinkM/cw721-wallet/internal/metrics"
	"github.com/AlexZinkM/cw721-wallet/internal/view"
)

func TestSetupRouter(t *testing.T) {
	h, err := handler.NewCW721Handler(view.NewStore(), "", nil)
	require.NoError(t, err)
	router := SetupRouter(h, metrics.NewMetrics("").Handler())

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/state", http.StatusOK},
		{http.MethodGet, "/api/tokens", http.StatusServiceUnavailable},
		{http.MethodPost, "/api/mint", http.StatusBadRequest},
		{http.MethodGet, "/api/transfer", http.StatusMethodNotAllowed},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
