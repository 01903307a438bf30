package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stellar-kit/internal/adapter"
	"github.com/MKhiriev/go-stellar-kit/internal/kit"
	"github.com/MKhiriev/go-stellar-kit/internal/store"
	"github.com/MKhiriev/go-stellar-kit/models"
)

func TestGetState(t *testing.T) {
	t.Run("synced", func(t *testing.T) {
		h := newTestHandler(newStubKit(), AuthSettings{}, prometheus.NewRegistry())

		rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/kit/state", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"account_id": "GOWN",
			"network": "Testnet",
			"asset": "XLM",
			"sync_state": "synced",
			"last_ledger_sequence": 4242,
			"balance": "12.5000000",
			"base_token_balance": "3.0000001"
		}`, rr.Body.String())
	})

	t.Run("not synced carries the reason", func(t *testing.T) {
		k := newStubKit()
		k.state = models.NotSynced{Err: models.ErrNoNetworkConnection}
		h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

		rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/kit/state", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp stateResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "not_synced", resp.SyncState)
		assert.Equal(t, models.ErrNoNetworkConnection.Error(), resp.SyncError)
	})
}

func TestGetTransactions(t *testing.T) {
	tx := models.FullTransaction{
		Transaction: models.Transaction{Hash: "h1", Ledger: 7, IsSuccessful: true},
		Operation: models.PaymentOperation{
			OperationBase: models.OperationBase{ID: "1", Type: models.OperationTypePayment, TransactionHash: "h1"},
			AssetType:     models.AssetTypeNative,
			Amount:        "1.0000000",
		},
	}

	t.Run("parses tag groups, cursor and limit", func(t *testing.T) {
		k := newStubKit()
		k.txs = []models.FullTransaction{tx}
		h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

		rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/kit/transactions?tag=XLM,%20USDC&tag=incoming&tag=&from=h9&limit=5", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, [][]string{{"XLM", "USDC"}, {"incoming"}}, k.groups)
		require.NotNil(t, k.fromHash)
		assert.Equal(t, "h9", *k.fromHash)
		require.NotNil(t, k.limit)
		assert.Equal(t, 5, *k.limit)

		var got []struct {
			Transaction models.Transaction `json:"transaction"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "h1", got[0].Transaction.Hash)
	})

	t.Run("no filters", func(t *testing.T) {
		k := newStubKit()
		h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

		rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/kit/transactions", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, k.groups)
		assert.Nil(t, k.fromHash)
		assert.Nil(t, k.limit)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	for _, limit := range []string{"0", "-1", "ten"} {
		t.Run("invalid limit "+limit, func(t *testing.T) {
			h := newTestHandler(newStubKit(), AuthSettings{}, prometheus.NewRegistry())
			rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/kit/transactions?limit="+limit, nil))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	t.Run("storage failure", func(t *testing.T) {
		k := newStubKit()
		k.txsErr = fmt.Errorf("%w: boom", store.ErrExecutingQuery)
		h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

		rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/kit/transactions", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRefresh(t *testing.T) {
	k := newStubKit()
	h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

	rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/kit/refresh", nil))
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, 1, k.refreshes)
}

func TestIsAccountActive(t *testing.T) {
	tests := []struct {
		name       string
		active     bool
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "active", active: true, wantStatus: http.StatusOK, wantBody: `{"account_id":"GDEST","active":true}`},
		{name: "inactive", wantStatus: http.StatusOK, wantBody: `{"account_id":"GDEST","active":false}`},
		{name: "invalid id", err: fmt.Errorf("%w: bad", kit.ErrInvalidAccountID), wantStatus: http.StatusBadRequest},
		{name: "horizon down", err: adapter.ErrServerUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newStubKit()
			k.active, k.actErr = tt.active, tt.err
			h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

			rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/kit/accounts/GDEST/active", nil))
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestSend(t *testing.T) {
	usdc := models.Asset{Code: "USDC", Issuer: models.USDCIssuerTestnet}

	t.Run("converts the body", func(t *testing.T) {
		k := newStubKit()
		h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

		body := `{"amount":"1.5","destination":"GDEST","memo":"rent","is_inactive_destination":true}`
		rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/kit/send", strings.NewReader(body)))
		require.Equal(t, http.StatusAccepted, rr.Code)

		require.Len(t, k.sent, 1)
		sent := k.sent[0]
		assert.Equal(t, 0, sent.Amount.Cmp(big.NewInt(1_5000000)))
		assert.Equal(t, "GDEST", sent.Destination)
		assert.Equal(t, "rent", sent.Memo)
		assert.True(t, sent.IsInactiveDestination)
		assert.True(t, sent.Asset.IsNative())
	})

	t.Run("empty asset means the kit asset", func(t *testing.T) {
		k := newStubKit()
		k.asset = usdc
		h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

		rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/kit/send", strings.NewReader(`{"amount":"2","destination":"GDEST"}`)))
		require.Equal(t, http.StatusAccepted, rr.Code)
		require.Len(t, k.sent, 1)
		assert.Equal(t, usdc, k.sent[0].Asset)
	})

	t.Run("explicit asset", func(t *testing.T) {
		k := newStubKit()
		h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

		body := fmt.Sprintf(`{"asset_code":"USDC","asset_issuer":%q,"amount":"2","destination":"GDEST"}`, models.USDCIssuerTestnet)
		rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/kit/send", strings.NewReader(body)))
		require.Equal(t, http.StatusAccepted, rr.Code)
		assert.Equal(t, usdc, k.sent[0].Asset)
	})

	t.Run("rejected by the ledger", func(t *testing.T) {
		k := newStubKit()
		k.sendErr = fmt.Errorf("send: %w", &adapter.RejectedError{
			Status:          400,
			TransactionCode: "tx_failed",
			OperationCodes:  []string{"op_underfunded"},
		})
		h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

		rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/kit/send", strings.NewReader(`{"amount":"1","destination":"GDEST"}`)))
		require.Equal(t, http.StatusBadGateway, rr.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.ResultCodes)
		assert.Equal(t, "tx_failed", resp.ResultCodes.Transaction)
		assert.Equal(t, []string{"op_underfunded"}, resp.ResultCodes.Operations)
	})

	errorCases := []struct {
		name    string
		body    string
		sendErr error
		want    int
	}{
		{name: "malformed json", body: `{`, want: http.StatusBadRequest},
		{name: "malformed amount", body: `{"amount":"1.00000001","destination":"GDEST"}`, want: http.StatusBadRequest},
		{name: "empty amount", body: `{"destination":"GDEST"}`, want: http.StatusBadRequest},
		{name: "invalid request", body: `{"amount":"1","destination":"GDEST"}`, sendErr: fmt.Errorf("%w: memo", kit.ErrInvalidSendRequest), want: http.StatusBadRequest},
		{name: "transport failure", body: `{"amount":"1","destination":"GDEST"}`, sendErr: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			k := newStubKit()
			k.sendErr = tt.sendErr
			h := newTestHandler(k, AuthSettings{}, prometheus.NewRegistry())

			rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/kit/send", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrapped: %w", kit.ErrInvalidSendRequest), http.StatusBadRequest},
		{&adapter.RejectedError{TransactionCode: "tx_bad_seq"}, http.StatusBadGateway},
		{adapter.ErrRateLimited, http.StatusTooManyRequests},
		{adapter.ErrAccountNotFound, http.StatusNotFound},
		{store.ErrTransactionNotFound, http.StatusNotFound},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
