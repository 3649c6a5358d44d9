package processor

import (
	"bytes"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Store operations observed by the metrics.
const (
	opList = "list"
	opCopy = "copy"
)

// Metrics holds the counters of a single run. Each run registers its own
// collectors so nothing is shared between runs.
type Metrics struct {
	registry *prometheus.Registry

	discovered prometheus.Counter

	objectsTotal *prometheus.CounterVec

	storeCallsTotal *prometheus.CounterVec

	storeLatency *prometheus.HistogramVec
}

// NewMetrics creates the run metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		discovered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sfproc",
			Subsystem: "run",
			Name:      "objects_discovered_total",
			Help:      "Total number of object keys returned by the listing",
		}),
		objectsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sfproc",
				Subsystem: "run",
				Name:      "objects_total",
				Help:      "Total number of processed object keys by outcome",
			},
			[]string{"outcome"},
		),
		storeCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sfproc",
				Subsystem: "store",
				Name:      "calls_total",
				Help:      "Total number of object store calls by operation and result",
			},
			[]string{"operation", "result"},
		),
		storeLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sfproc",
				Subsystem: "store",
				Name:      "latency_seconds",
				Help:      "Latency of object store calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
			},
			[]string{"operation"},
		),
	}

	m.registry.MustRegister(
		m.discovered,
		m.objectsTotal,
		m.storeCallsTotal,
		m.storeLatency,
	)
	return m
}

// Registry returns the registry holding the run collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Text renders all run metrics in the Prometheus text exposition format.
func (m *Metrics) Text() ([]byte, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return nil, fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return buf.Bytes(), nil
}

// Recording helpers are no-ops on a nil receiver.

func (m *Metrics) recordDiscovered(n int) {
	if m == nil {
		return
	}
	m.discovered.Add(float64(n))
}

func (m *Metrics) recordOutcome(o Outcome) {
	if m == nil {
		return
	}
	m.objectsTotal.WithLabelValues(string(o)).Inc()
}

func (m *Metrics) recordStoreCall(operation string, err error, latency time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.storeCallsTotal.WithLabelValues(operation, result).Inc()
	m.storeLatency.WithLabelValues(operation).Observe(latency.Seconds())
}
