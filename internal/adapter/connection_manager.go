package adapter

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/utils"
)

type httpConnectionManager struct {
	client   *utils.HTTPClient
	interval time.Duration

	connected atomic.Bool

	mu       sync.Mutex
	listener func()
	cancel   context.CancelFunc
	done     chan struct{}

	logger *logger.Logger
}

// NewHTTPConnectionManager constructs a [ConnectionManager] that probes the
// root of horizonURL every interval.
func NewHTTPConnectionManager(horizonURL string, timeout, interval time.Duration, log *logger.Logger) ConnectionManager {
	return &httpConnectionManager{
		client:   utils.NewHorizonHTTPClient(horizonURL, timeout),
		interval: interval,
		logger:   log,
	}
}

func (m *httpConnectionManager) IsConnected() bool {
	return m.connected.Load()
}

func (m *httpConnectionManager) SetListener(listener func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = listener
}

// Start runs the first probe before it returns, so IsConnected is accurate
// once Start is done, and then launches the probe loop. The listener is not
// notified for the first probe. Calling Start on a running manager does
// nothing.
func (m *httpConnectionManager) Start(ctx context.Context) {
	m.mu.Lock()
	if m.cancel != nil {
		m.mu.Unlock()
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	done := m.done
	m.mu.Unlock()

	connected := m.probe(ctx)
	if ctx.Err() == nil {
		m.connected.Store(connected)
	}

	go m.loop(ctx, done)
}

// Stop ends the probe loop and waits for it to exit. The manager reports
// disconnected afterwards.
func (m *httpConnectionManager) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	m.connected.Store(false)
}

func (m *httpConnectionManager) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		connected := m.probe(ctx)
		if ctx.Err() != nil {
			return
		}
		m.update(connected)
	}
}

func (m *httpConnectionManager) probe(ctx context.Context) bool {
	resp, err := m.client.R().SetContext(ctx).Get("/")
	if err != nil {
		if ctx.Err() == nil {
			m.logger.Debug().Err(err).Str("func", "httpConnectionManager.probe").Msg("horizon unreachable")
		}
		return false
	}

	if err = mapHTTPError(resp); err != nil && !errors.Is(err, ErrRateLimited) {
		m.logger.Debug().Err(err).Str("func", "httpConnectionManager.probe").Msg("horizon unhealthy")
		return false
	}
	return true
}

func (m *httpConnectionManager) update(connected bool) {
	if m.connected.Swap(connected) == connected {
		return
	}

	m.logger.Info().Str("func", "httpConnectionManager.update").
		Bool("connected", connected).
		Msg("connectivity changed")

	m.mu.Lock()
	listener := m.listener
	m.mu.Unlock()

	if listener != nil {
		listener()
	}
}
