package kit

import (
	"github.com/MKhiriev/go-stellar-kit/internal/adapter"
	"github.com/MKhiriev/go-stellar-kit/internal/events"
	"github.com/MKhiriev/go-stellar-kit/internal/metrics"
	"github.com/MKhiriev/go-stellar-kit/internal/store"
)

type options struct {
	storage   store.Storage
	client    adapter.LedgerClient
	conn      adapter.ConnectionManager
	metrics   *metrics.Metrics
	publisher events.Publisher
}

// Option overrides a collaborator NewKit would otherwise build from config.
type Option func(*options)

// WithStorage makes the kit use s instead of opening its own store. The kit
// closes s on Close.
func WithStorage(s store.Storage) Option {
	return func(o *options) { o.storage = s }
}

// WithLedgerClient replaces the Horizon client.
func WithLedgerClient(c adapter.LedgerClient) Option {
	return func(o *options) { o.client = c }
}

// WithConnectionManager replaces the HTTP connectivity probe.
func WithConnectionManager(c adapter.ConnectionManager) Option {
	return func(o *options) { o.conn = c }
}

// WithMetrics records the kit activity into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithPublisher sends kit events to p instead of the configured NATS server.
func WithPublisher(p events.Publisher) Option {
	return func(o *options) { o.publisher = p }
}
