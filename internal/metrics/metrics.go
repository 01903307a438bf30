// Package metrics holds the Prometheus collectors of the stellar kit.
//
// One Metrics value is shared by every kit of a process; series are told
// apart by the network and wallet_id labels. A nil *Metrics is valid and
// records nothing, so components can take it unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded by the counters.
const (
	ResultSynced   = "synced"
	ResultIdle     = "idle"
	ResultFailed   = "failed"
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultInvalid  = "invalid"
)

// Metrics holds all Prometheus collectors of the kit.
type Metrics struct {
	syncCyclesTotal     *prometheus.CounterVec
	syncCycleDuration   *prometheus.HistogramVec
	lastLedgerSequence  *prometheus.GaugeVec
	transactionsTracked *prometheus.GaugeVec
	connected           *prometheus.GaugeVec
	sendsTotal          *prometheus.CounterVec
	trustlineFailures   *prometheus.CounterVec
	eventsPublished     *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers all collectors.
// If registry is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		syncCyclesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stellarkit_sync_cycles_total",
				Help: "Total number of sync cycles by result",
			},
			[]string{"network", "wallet_id", "result"},
		),
		syncCycleDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stellarkit_sync_cycle_duration_seconds",
				Help:    "Duration of sync cycles in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
			},
			[]string{"network", "wallet_id"},
		),
		lastLedgerSequence: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stellarkit_last_ledger_sequence",
				Help: "Last ledger sequence observed by the kit",
			},
			[]string{"network", "wallet_id"},
		),
		transactionsTracked: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stellarkit_transactions_tracked",
				Help: "Number of transactions in the local mirror after the last processing pass",
			},
			[]string{"network", "wallet_id"},
		),
		connected: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stellarkit_horizon_connected",
				Help: "1 when the poll timer is ready, 0 otherwise",
			},
			[]string{"network", "wallet_id"},
		),
		sendsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stellarkit_sends_total",
				Help: "Total number of submitted transfers by result",
			},
			[]string{"network", "wallet_id", "asset", "result"},
		),
		trustlineFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stellarkit_trustline_failures_total",
				Help: "Total number of trustlines the kit failed to establish",
			},
			[]string{"network", "wallet_id", "asset"},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stellarkit_events_published_total",
				Help: "Total number of events published to NATS by kind and status",
			},
			[]string{"kind", "status"},
		),
	}
}

// Labels identifies the kit a series belongs to.
type Labels struct {
	Network  string
	WalletID string
}

// RecordSyncCycle records one cycle outcome and its duration.
func (m *Metrics) RecordSyncCycle(l Labels, result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.syncCyclesTotal.WithLabelValues(l.Network, l.WalletID, result).Inc()
	m.syncCycleDuration.WithLabelValues(l.Network, l.WalletID).Observe(duration.Seconds())
}

// SetLastLedgerSequence records the ledger sequence the kit is synced to.
func (m *Metrics) SetLastLedgerSequence(l Labels, seq uint64) {
	if m == nil {
		return
	}
	m.lastLedgerSequence.WithLabelValues(l.Network, l.WalletID).Set(float64(seq))
}

// SetTransactionsTracked records the size of the processed transaction set.
func (m *Metrics) SetTransactionsTracked(l Labels, n int) {
	if m == nil {
		return
	}
	m.transactionsTracked.WithLabelValues(l.Network, l.WalletID).Set(float64(n))
}

// SetConnected records the poll timer readiness.
func (m *Metrics) SetConnected(l Labels, connected bool) {
	if m == nil {
		return
	}
	v := 0.0
	if connected {
		v = 1
	}
	m.connected.WithLabelValues(l.Network, l.WalletID).Set(v)
}

// RecordSend records one send attempt.
func (m *Metrics) RecordSend(l Labels, asset, result string) {
	if m == nil {
		return
	}
	m.sendsTotal.WithLabelValues(l.Network, l.WalletID, asset, result).Inc()
}

// RecordTrustlineFailure records one failed ChangeTrust submission.
func (m *Metrics) RecordTrustlineFailure(l Labels, asset string) {
	if m == nil {
		return
	}
	m.trustlineFailures.WithLabelValues(l.Network, l.WalletID, asset).Inc()
}

// RecordEventPublished records one NATS publish.
func (m *Metrics) RecordEventPublished(kind, status string) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(kind, status).Inc()
}
