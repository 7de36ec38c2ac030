package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// FaucetClient requests test tokens from a CosmJS-style faucet.
type FaucetClient struct {
	baseURL string
	client  *http.Client
}

// NewFaucetClient creates a new faucet client for baseURL
func NewFaucetClient(baseURL string) *FaucetClient {
	return &FaucetClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// creditRequest is the body of POST /credit
type creditRequest struct {
	Denom   string `json:"denom"`
	Address string `json:"address"`
}

// Credit asks the faucet to send denom to address.
func (c *FaucetClient) Credit(ctx context.Context, address, denom string) error {
	if c.baseURL == "" {
		return fmt.Errorf("faucet url is not configured")
	}

	body, err := json.Marshal(creditRequest{Denom: denom, Address: address})
	if err != nil {
		return fmt.Errorf("failed to marshal credit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/credit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create credit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request credit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("failed to request credit: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
