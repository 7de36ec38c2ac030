// Package cw721test provides an in-memory signing client for tests of code built on cw721.
package cw721test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
)

// Call records one request made through Client.
type Call struct {
	Method   string
	Sender   string
	Contract string
	CodeID   uint64
	Label    string
	Msg      json.RawMessage
	Fee      client.StdFee
}

// Client answers queries from canned JSON keyed by query variant, e.g. "tokens".
// Execute and Instantiate return TxHash and ContractAddress, or Err if set.
type Client struct {
	mu sync.Mutex

	Denom           string
	TxHash          string
	ContractAddress string
	Responses       map[string]string
	Err             error

	calls []Call
}

func New(denom string) *Client {
	return &Client{
		Denom:     denom,
		TxHash:    "A1B2C3",
		Responses: make(map[string]string),
	}
}

func (c *Client) Instantiate(ctx context.Context, sender string, codeID uint64, msg any, label string, fee client.StdFee) (*client.InstantiateResult, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	c.record(Call{Method: "instantiate", Sender: sender, CodeID: codeID, Label: label, Msg: raw, Fee: fee})
	if c.Err != nil {
		return nil, c.Err
	}
	return &client.InstantiateResult{
		ExecuteResult:   client.ExecuteResult{TransactionHash: c.TxHash},
		ContractAddress: c.ContractAddress,
	}, nil
}

func (c *Client) Execute(ctx context.Context, sender, contract string, msg any, fee client.StdFee) (*client.ExecuteResult, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	c.record(Call{Method: "execute", Sender: sender, Contract: contract, Msg: raw, Fee: fee})
	if c.Err != nil {
		return nil, c.Err
	}
	return &client.ExecuteResult{TransactionHash: c.TxHash}, nil
}

func (c *Client) QueryContractSmart(ctx context.Context, contract string, query any, out any) error {
	raw, err := json.Marshal(query)
	if err != nil {
		return err
	}
	c.record(Call{Method: "query", Contract: contract, Msg: raw})
	if c.Err != nil {
		return c.Err
	}

	var variant map[string]json.RawMessage
	if err := json.Unmarshal(raw, &variant); err != nil {
		return err
	}
	for name := range variant {
		resp, ok := c.Responses[name]
		if !ok {
			return fmt.Errorf("%w: no canned response for %s", client.ErrQueryFailed, name)
		}
		return json.Unmarshal([]byte(resp), out)
	}
	return fmt.Errorf("%w: empty query", client.ErrQueryFailed)
}

func (c *Client) FeeDenom() string {
	return c.Denom
}

// Calls returns a copy of the recorded calls in order.
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// LastCall returns the most recent call, or the zero Call.
func (c *Client) LastCall() Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) == 0 {
		return Call{}
	}
	return c.calls[len(c.calls)-1]
}

func (c *Client) record(call Call) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}
