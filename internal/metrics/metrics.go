// Package metrics provides Prometheus metrics for contract calls.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds the Prometheus metrics of the wallet.
type Metrics struct {
	registry *prometheus.Registry

	// Contract metrics
	ContractCalls        *prometheus.CounterVec
	ContractCallDuration *prometheus.HistogramVec
	GasUsed              *prometheus.HistogramVec

	// Session metrics
	Ready prometheus.Gauge
}

// NewMetrics creates a Metrics instance registered on its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "cw721_wallet"
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ContractCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contract",
			Name:      "calls_total",
			Help:      "Total number of contract calls by operation and status",
		}, []string{"operation", "status"}),
		ContractCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "contract",
			Name:      "call_duration_seconds",
			Help:      "Contract call duration in seconds, including commit wait",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"operation"}),
		GasUsed: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "contract",
			Name:      "gas_used",
			Help:      "Gas used by committed transactions",
			Buckets:   prometheus.ExponentialBuckets(10000, 2, 8),
		}, []string{"operation"}),

		Ready: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "ready",
			Help:      "1 when the wallet session is connected, 0 otherwise",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordCall records one contract call.
func (m *Metrics) RecordCall(operation string, seconds float64, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.ContractCalls.WithLabelValues(operation, status).Inc()
	m.ContractCallDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordGas records the gas used by a committed transaction.
func (m *Metrics) RecordGas(operation string, gasUsed int64) {
	m.GasUsed.WithLabelValues(operation).Observe(float64(gasUsed))
}

// SetReady updates the session readiness gauge.
func (m *Metrics) SetReady(ready bool) {
	if ready {
		m.Ready.Set(1)
		return
	}
	m.Ready.Set(0)
}
