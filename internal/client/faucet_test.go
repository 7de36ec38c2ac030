package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaucetClient_Credit(t *testing.T) {
	var got creditRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/credit", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	faucet := NewFaucetClient(server.URL + "/")
	err := faucet.Credit(context.Background(), "wasm1receiver", "umlg")
	require.NoError(t, err)

	assert.Equal(t, "wasm1receiver", got.Address)
	assert.Equal(t, "umlg", got.Denom)
}

func TestFaucetClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too many requests for the same address", http.StatusMethodNotAllowed)
	}))
	defer server.Close()

	err := NewFaucetClient(server.URL).Credit(context.Background(), "wasm1receiver", "umlg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "405")
	assert.Contains(t, err.Error(), "Too many requests")
}

func TestFaucetClient_NotConfigured(t *testing.T) {
	err := NewFaucetClient("").Credit(context.Background(), "wasm1receiver", "umlg")
	assert.Error(t, err)
}
