package metrics

import (
	"context"
	"time"

	"github.com/AlexZinkM/cw721-wallet/internal/client"
	"github.com/AlexZinkM/cw721-wallet/internal/cw721"
)

// InstrumentedClient records every call made through a cw721.SigningClient.
type InstrumentedClient struct {
	inner   cw721.SigningClient
	metrics *Metrics
}

// Instrument wraps inner so its calls are counted and timed.
func Instrument(inner cw721.SigningClient, m *Metrics) *InstrumentedClient {
	return &InstrumentedClient{inner: inner, metrics: m}
}

func (c *InstrumentedClient) Instantiate(ctx context.Context, sender string, codeID uint64, msg any, label string, fee client.StdFee) (*client.InstantiateResult, error) {
	start := time.Now()
	res, err := c.inner.Instantiate(ctx, sender, codeID, msg, label, fee)
	c.metrics.RecordCall("instantiate", time.Since(start).Seconds(), err)
	if err == nil {
		c.metrics.RecordGas("instantiate", res.GasUsed)
	}
	return res, err
}

func (c *InstrumentedClient) Execute(ctx context.Context, sender, contract string, msg any, fee client.StdFee) (*client.ExecuteResult, error) {
	start := time.Now()
	res, err := c.inner.Execute(ctx, sender, contract, msg, fee)
	c.metrics.RecordCall("execute", time.Since(start).Seconds(), err)
	if err == nil {
		c.metrics.RecordGas("execute", res.GasUsed)
	}
	return res, err
}

func (c *InstrumentedClient) QueryContractSmart(ctx context.Context, contract string, query any, out any) error {
	start := time.Now()
	err := c.inner.QueryContractSmart(ctx, contract, query, out)
	c.metrics.RecordCall("query", time.Since(start).Seconds(), err)
	return err
}

func (c *InstrumentedClient) FeeDenom() string {
	return c.inner.FeeDenom()
}
