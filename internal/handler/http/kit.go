package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/utils"
	"github.com/MKhiriev/go-stellar-kit/models"
)

type stateResponse struct {
	AccountID          string `json:"account_id"`
	Network            string `json:"network"`
	Asset              string `json:"asset"`
	SyncState          string `json:"sync_state"`
	SyncError          string `json:"sync_error,omitempty"`
	LastLedgerSequence uint64 `json:"last_ledger_sequence"`
	Balance            string `json:"balance"`
	BaseTokenBalance   string `json:"base_token_balance"`
}

type sendRequestBody struct {
	AssetCode             string `json:"asset_code"`
	AssetIssuer           string `json:"asset_issuer"`
	Amount                string `json:"amount"`
	Destination           string `json:"destination"`
	Memo                  string `json:"memo"`
	IsInactiveDestination bool   `json:"is_inactive_destination"`
}

type accountActiveResponse struct {
	AccountID string `json:"account_id"`
	Active    bool   `json:"active"`
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	state := h.kit.SyncState()
	balance := h.kit.Balance()

	resp := stateResponse{
		AccountID:          h.kit.AccountID(),
		Network:            h.kit.Network().String(),
		Asset:              h.kit.Asset().DisplayCode(),
		SyncState:          models.SyncStateName(state),
		LastLedgerSequence: h.kit.LastLedgerSequence(),
		Balance:            utils.ToDecimalString(balance.Balance, models.Decimals),
		BaseTokenBalance:   utils.ToDecimalString(balance.BaseTokenBalance, models.Decimals),
	}
	if notSynced, ok := state.(models.NotSynced); ok && notSynced.Err != nil {
		resp.SyncError = notSynced.Err.Error()
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

// getTransactions serves one page of stored transactions. Every "tag" query
// parameter is a comma separated OR-group; all groups must match.
func (h *Handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	var tagGroups [][]string
	for _, param := range query["tag"] {
		var group []string
		for _, tag := range strings.Split(param, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				group = append(group, tag)
			}
		}
		if len(group) > 0 {
			tagGroups = append(tagGroups, group)
		}
	}

	var fromHash *string
	if from := query.Get("from"); from != "" {
		fromHash = &from
	}

	var limit *int
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, fmt.Errorf("%w: limit must be a positive integer", ErrInvalidQuery), http.StatusBadRequest)
			return
		}
		limit = &n
	}

	txs, err := h.kit.GetFullTransactions(r.Context(), tagGroups, fromHash, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTransactions").Msg("error getting transactions")
		writeError(w, err, statusFromError(err))
		return
	}
	if txs == nil {
		txs = []models.FullTransaction{}
	}

	_, _ = utils.WriteJSON(w, txs, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	h.kit.Refresh()
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) isAccountActive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	accountID := chi.URLParam(r, "id")

	active, err := h.kit.IsAccountActive(r.Context(), accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.isAccountActive").Str("account_id", accountID).Send()
		writeError(w, err, statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, accountActiveResponse{AccountID: accountID, Active: active}, http.StatusOK)
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body sendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.send").Msg("invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidQuery, err), http.StatusBadRequest)
		return
	}

	req, err := h.toSendRequest(body)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	if subject, ok := utils.GetSubjectFromContext(r.Context()); ok {
		log = log.WithField("subject", subject)
	}

	if err = h.kit.Send(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.send").Str("destination", req.Destination).Msg("send failed")
		writeError(w, err, statusFromError(err))
		return
	}

	log.Info().Str("func", "*Handler.send").Str("destination", req.Destination).Msg("transaction submitted")
	w.WriteHeader(http.StatusAccepted)
}

// toSendRequest converts body into a send request. An empty asset means the
// asset of the kit.
func (h *Handler) toSendRequest(body sendRequestBody) (models.SendRequest, error) {
	amount, err := utils.ParseLedgerAmount(body.Amount)
	if err != nil {
		return models.SendRequest{}, fmt.Errorf("%w: amount: %w", ErrInvalidQuery, err)
	}

	asset := h.kit.Asset()
	if body.AssetCode != "" || body.AssetIssuer != "" {
		asset = models.Asset{Code: body.AssetCode, Issuer: body.AssetIssuer}
	}

	return models.SendRequest{
		Asset:                 asset,
		Amount:                amount,
		Destination:           body.Destination,
		Memo:                  body.Memo,
		IsInactiveDestination: body.IsInactiveDestination,
	}, nil
}
