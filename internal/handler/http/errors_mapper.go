package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stellar-kit/internal/adapter"
	"github.com/MKhiriev/go-stellar-kit/internal/kit"
	"github.com/MKhiriev/go-stellar-kit/internal/store"
	"github.com/MKhiriev/go-stellar-kit/internal/utils"
)

// errorStatusMap is checked in order, so wrapped errors map to the status of
// their most specific sentinel.
var errorStatusMap = []struct {
	target error
	status int
}{
	{ErrInvalidQuery, http.StatusBadRequest},
	{kit.ErrInvalidSendRequest, http.StatusBadRequest},
	{kit.ErrInvalidAccountID, http.StatusBadRequest},
	{utils.ErrAmountOutOfRange, http.StatusBadRequest},

	{adapter.ErrTransactionRejected, http.StatusBadGateway},
	{adapter.ErrAccountNotFound, http.StatusNotFound},
	{adapter.ErrUnsupportedAsset, http.StatusUnprocessableEntity},
	{adapter.ErrRateLimited, http.StatusTooManyRequests},
	{adapter.ErrServerUnavailable, http.StatusServiceUnavailable},
	{adapter.ErrUnexpectedStatus, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{store.ErrTransactionNotFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
	// ResultCodes are set when the ledger rejected a submitted transaction.
	ResultCodes *resultCodes `json:"result_codes,omitempty"`
}

type resultCodes struct {
	Transaction string   `json:"transaction"`
	Operations  []string `json:"operations,omitempty"`
}

func writeError(w http.ResponseWriter, err error, status int) {
	resp := errorResponse{Error: err.Error()}

	var rejected *adapter.RejectedError
	if errors.As(err, &rejected) {
		resp.ResultCodes = &resultCodes{
			Transaction: rejected.TransactionCode,
			Operations:  rejected.OperationCodes,
		}
	}

	_, _ = utils.WriteJSON(w, resp, status)
}
