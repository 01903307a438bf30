package http

import (
	"context"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/models"
)

// stubKit is a scripted KitService that records what the API asked for.
type stubKit struct {
	mu sync.Mutex

	asset   models.Asset
	state   models.SyncState
	balance models.Balance
	seq     uint64

	txs     []models.FullTransaction
	txsErr  error
	active  bool
	actErr  error
	sendErr error

	refreshes int
	sent      []models.SendRequest
	groups    [][]string
	fromHash  *string
	limit     *int
}

func newStubKit() *stubKit {
	return &stubKit{
		state:   models.Synced{},
		balance: models.Balance{Balance: big.NewInt(12_5000000), BaseTokenBalance: big.NewInt(3_0000001)},
		seq:     4242,
	}
}

func (s *stubKit) AccountID() string           { return "GOWN" }
func (s *stubKit) Network() models.Network     { return models.Testnet }
func (s *stubKit) Asset() models.Asset         { return s.asset }
func (s *stubKit) Balance() models.Balance     { return s.balance }
func (s *stubKit) SyncState() models.SyncState { return s.state }
func (s *stubKit) LastLedgerSequence() uint64  { return s.seq }

func (s *stubKit) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshes++
}

func (s *stubKit) Send(_ context.Context, req models.SendRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, req)
	return s.sendErr
}

func (s *stubKit) IsAccountActive(_ context.Context, _ string) (bool, error) {
	return s.active, s.actErr
}

func (s *stubKit) GetFullTransactions(_ context.Context, tagGroups [][]string, fromHash *string, limit *int) ([]models.FullTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups, s.fromHash, s.limit = tagGroups, fromHash, limit
	return s.txs, s.txsErr
}

type stubAppInfo struct{}

func (stubAppInfo) GetAppInfo(context.Context) models.AppInfo {
	return models.AppInfo{Version: "1.2.3", Commit: "abc"}
}

func newTestHandler(kit KitService, auth AuthSettings, gatherer prometheus.Gatherer) *Handler {
	return NewHandler(kit, stubAppInfo{}, auth, gatherer, logger.Nop())
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestNewHandler_DefaultGatherer(t *testing.T) {
	h := newTestHandler(newStubKit(), AuthSettings{}, nil)
	assert.Equal(t, prometheus.DefaultGatherer, h.gatherer)
}

func TestInit_Routes(t *testing.T) {
	h := newTestHandler(newStubKit(), AuthSettings{}, prometheus.NewRegistry())

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "state", method: http.MethodGet, path: "/api/kit/state", want: http.StatusOK},
		{name: "transactions", method: http.MethodGet, path: "/api/kit/transactions", want: http.StatusOK},
		{name: "refresh", method: http.MethodPost, path: "/api/kit/refresh", want: http.StatusAccepted},
		{name: "version", method: http.MethodGet, path: "/api/version", want: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", want: http.StatusOK},
		{name: "wrong method", method: http.MethodDelete, path: "/api/kit/state", want: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/api/kit/nothing", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(h, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h := newTestHandler(newStubKit(), AuthSettings{}, prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/api/kit/state", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rr := serve(h, req)
	assert.Equal(t, "trace-1", rr.Header().Get(traceIDHeader))

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/api/kit/state", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(newStubKit(), AuthSettings{}, prometheus.NewRegistry())

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc"}`, rr.Body.String())
}

func TestMetricsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "stellarkit_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	h := newTestHandler(newStubKit(), AuthSettings{}, reg)
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "stellarkit_test_total 1")
}
