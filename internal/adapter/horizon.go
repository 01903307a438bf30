// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"math/big"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/metrics"
	"github.com/MKhiriev/go-stellar-kit/internal/utils"
	"github.com/MKhiriev/go-stellar-kit/models"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"
)

// MaxTrustlineLimit is the largest limit a trustline can carry.
const MaxTrustlineLimit = "922337203685.4775807"

type horizonLedgerClient struct {
	clients HorizonClientFactory
	keyPair *keypair.Full
	network models.Network
	asset   models.Asset

	balance *utils.Observable[models.Balance]

	metrics *metrics.Metrics
	labels  metrics.Labels

	logger *logger.Logger
}

// ClientOption configures the Horizon ledger client.
type ClientOption func(*horizonLedgerClient)

// WithClientMetrics records trustline failures into m under labels l.
func WithClientMetrics(m *metrics.Metrics, l metrics.Labels) ClientOption {
	return func(h *horizonLedgerClient) {
		h.metrics = m
		h.labels = l
	}
}

// NewHorizonLedgerClient constructs a Horizon implementation of [LedgerClient]
// acting for kp on network and tracking asset.
func NewHorizonLedgerClient(clients HorizonClientFactory, kp *keypair.Full, network models.Network, asset models.Asset, log *logger.Logger, opts ...ClientOption) LedgerClient {
	h := &horizonLedgerClient{
		clients: clients,
		keyPair: kp,
		network: network,
		asset:   asset,
		balance: utils.NewObservable(models.ZeroBalance(), models.Balance.Equal),
		logger:  log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *horizonLedgerClient) AccountID() string {
	return h.keyPair.Address()
}

func (h *horizonLedgerClient) GetLastLedgerSequence(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	page, err := h.clients(ctx).Ledgers(horizonclient.LedgerRequest{
		Order: horizonclient.OrderDesc,
		Limit: 1,
	})
	if err != nil {
		return 0, fmt.Errorf("fetch last ledger: %w", err)
	}
	if len(page.Embedded.Records) == 0 {
		return 0, ErrNoLedgers
	}

	return uint64(page.Embedded.Records[0].Sequence), nil
}

func (h *horizonLedgerClient) GetBalance(ctx context.Context) (models.Balance, error) {
	account, err := h.account(ctx, h.AccountID())
	if err != nil {
		return models.Balance{}, err
	}

	balance, hasTrustline, err := balanceOf(account, h.asset)
	if err != nil {
		return models.Balance{}, err
	}

	if !hasTrustline {
		h.logger.Info().Str("func", "horizonLedgerClient.GetBalance").
			Str("asset", h.asset.String()).
			Msg("no trustline for asset, establishing one")
		if err = h.changeTrust(ctx, &account); err != nil {
			if ctx.Err() != nil {
				return models.Balance{}, err
			}
			// The token balance stays zero and the native one is still reported.
			h.metrics.RecordTrustlineFailure(h.labels, h.asset.DisplayCode())
			h.logger.Warn().Err(err).Str("func", "horizonLedgerClient.GetBalance").
				Str("asset", h.asset.String()).
				Msg("failed to establish trustline")
		}
	}

	h.balance.Set(balance)
	return balance, nil
}

func (h *horizonLedgerClient) Balance() models.Balance {
	return h.balance.Get()
}

func (h *horizonLedgerClient) SubscribeBalance() (<-chan models.Balance, func()) {
	return h.balance.Subscribe()
}

func (h *horizonLedgerClient) GetTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := h.clients(ctx).Transactions(horizonclient.TransactionRequest{
		ForAccount:    h.AccountID(),
		Order:         horizonclient.OrderDesc,
		Limit:         uint(limit),
		IncludeFailed: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(page.Embedded.Records))
	for _, record := range page.Embedded.Records {
		transactions = append(transactions, transactionFromRecord(record))
	}
	return transactions, nil
}

func (h *horizonLedgerClient) GetOperations(ctx context.Context, limit int) ([]models.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := h.clients(ctx).Operations(horizonclient.OperationRequest{
		ForAccount:    h.AccountID(),
		Order:         horizonclient.OrderDesc,
		Limit:         uint(limit),
		IncludeFailed: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch operations: %w", err)
	}

	ops := make([]models.Operation, 0, len(page.Embedded.Records))
	for _, record := range page.Embedded.Records {
		ops = append(ops, operationFromRecord(record))
	}
	return ops, nil
}

func (h *horizonLedgerClient) IsAccountActive(ctx context.Context, accountID string) (bool, error) {
	_, err := h.account(ctx, accountID)
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

func (h *horizonLedgerClient) Send(ctx context.Context, req models.SendRequest) error {
	amount, err := utils.ToLedgerAmount(req.Amount)
	if err != nil {
		return err
	}

	var op txnbuild.Operation
	if req.IsInactiveDestination {
		if !req.Asset.IsNative() {
			return fmt.Errorf("%w: only %s can fund a new account", ErrUnsupportedAsset, models.NativeCode)
		}
		op = &txnbuild.CreateAccount{Destination: req.Destination, Amount: amount}
	} else {
		asset, aErr := toTxnAsset(req.Asset)
		if aErr != nil {
			return aErr
		}
		op = &txnbuild.Payment{Destination: req.Destination, Amount: amount, Asset: asset}
	}

	account, err := h.account(ctx, h.AccountID())
	if err != nil {
		return err
	}

	var memo txnbuild.Memo
	if req.Memo != "" {
		memo = txnbuild.MemoText(req.Memo)
	}

	if err = h.submit(ctx, &account, memo, op); err != nil {
		h.logger.Err(err).Str("func", "horizonLedgerClient.Send").
			Str("destination", req.Destination).
			Str("asset", req.Asset.String()).
			Msg("send failed")
		return err
	}

	h.logger.Info().Str("func", "horizonLedgerClient.Send").
		Str("destination", req.Destination).
		Str("asset", req.Asset.String()).
		Str("amount", amount).
		Msg("transaction submitted")
	return nil
}

func (h *horizonLedgerClient) account(ctx context.Context, accountID string) (hProtocol.Account, error) {
	if err := ctx.Err(); err != nil {
		return hProtocol.Account{}, err
	}

	account, err := h.clients(ctx).AccountDetail(horizonclient.AccountRequest{AccountID: accountID})
	if err != nil {
		if isNotFound(err) {
			return hProtocol.Account{}, fmt.Errorf("%w: %s: %w", ErrAccountNotFound, accountID, err)
		}
		return hProtocol.Account{}, fmt.Errorf("fetch account %s: %w", accountID, err)
	}
	return account, nil
}

func (h *horizonLedgerClient) changeTrust(ctx context.Context, account *hProtocol.Account) error {
	line, err := txnbuild.CreditAsset{Code: h.asset.Code, Issuer: h.asset.Issuer}.ToChangeTrustAsset()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedAsset, err)
	}

	op := &txnbuild.ChangeTrust{Line: line, Limit: MaxTrustlineLimit}
	if err = h.submit(ctx, account, txnbuild.MemoText("Trust "+h.asset.Code), op); err != nil {
		return fmt.Errorf("establish trustline: %w", err)
	}
	return nil
}

func (h *horizonLedgerClient) submit(ctx context.Context, account *hProtocol.Account, memo txnbuild.Memo, ops ...txnbuild.Operation) error {
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        account,
		IncrementSequenceNum: true,
		Operations:           ops,
		BaseFee:              txnbuild.MinBaseFee,
		Memo:                 memo,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewInfiniteTimeout()},
	})
	if err != nil {
		return fmt.Errorf("build transaction: %w", err)
	}

	tx, err = tx.Sign(h.network.Passphrase(), h.keyPair)
	if err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	if _, err = h.clients(ctx).SubmitTransactionWithOptions(tx, horizonclient.SubmitTxOpts{}); err != nil {
		return mapSubmitError(err)
	}
	return nil
}

// balanceOf extracts the configured asset balance and the native balance.
// hasTrustline is false when a non-native asset has no balance line.
func balanceOf(account hProtocol.Account, asset models.Asset) (balance models.Balance, hasTrustline bool, err error) {
	balance = models.ZeroBalance()
	hasTrustline = asset.IsNative()

	for _, line := range account.Balances {
		var value *big.Int
		switch {
		case line.Asset.Type == models.AssetTypeNative:
			value, err = utils.ParseLedgerAmount(line.Balance)
			if err != nil {
				return models.Balance{}, false, err
			}
			balance.BaseTokenBalance = value
			if asset.IsNative() {
				balance.Balance = value
			}
		case !asset.IsNative() && line.Asset.Code == asset.Code && line.Asset.Issuer == asset.Issuer:
			value, err = utils.ParseLedgerAmount(line.Balance)
			if err != nil {
				return models.Balance{}, false, err
			}
			balance.Balance = value
			hasTrustline = true
		}
	}

	return balance, hasTrustline, nil
}

func toTxnAsset(asset models.Asset) (txnbuild.Asset, error) {
	if asset.IsNative() {
		return txnbuild.NativeAsset{}, nil
	}
	if asset.Code == "" || len(asset.Code) > 12 || asset.Issuer == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAsset, asset)
	}
	return txnbuild.CreditAsset{Code: asset.Code, Issuer: asset.Issuer}, nil
}
