// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/stellar/go/keypair"

	"github.com/MKhiriev/go-stellar-kit/internal/adapter"
	"github.com/MKhiriev/go-stellar-kit/internal/config"
	"github.com/MKhiriev/go-stellar-kit/internal/events"
	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/metrics"
	"github.com/MKhiriev/go-stellar-kit/internal/service"
	"github.com/MKhiriev/go-stellar-kit/internal/store"
	"github.com/MKhiriev/go-stellar-kit/internal/validators"
	"github.com/MKhiriev/go-stellar-kit/models"
)

// Kit mirrors one account into a local store and sends from it.
type Kit struct {
	network  models.Network
	walletID string
	asset    models.Asset

	storage   store.Storage
	client    adapter.LedgerClient
	services  *service.Services
	validator validators.Validator

	metrics       *metrics.Metrics
	labels        metrics.Labels
	publisher     events.Publisher
	ownsPublisher bool

	mu     sync.Mutex
	cancel context.CancelFunc

	logger *logger.Logger
}

// NewKit wires a stopped kit for the wallet described by cfg. kp signs every
// transaction the kit submits.
func NewKit(cfg config.KitConfig, kp *keypair.Full, log *logger.Logger, opts ...Option) (*Kit, error) {
	if kp == nil {
		return nil, ErrNoKeyPair
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	log.Info().Str("func", "kit.NewKit").Str("account_id", kp.Address()).Msg("creating new kit...")

	k := &Kit{
		network:  cfg.App.Network,
		walletID: cfg.App.WalletID,
		asset:    cfg.App.Asset,
		metrics:  o.metrics,
		labels:   metrics.Labels{Network: cfg.App.Network.String(), WalletID: cfg.App.WalletID},
		logger:   log,
	}

	k.storage = o.storage
	if k.storage == nil {
		storage, err := store.NewStorage(log.WithContext(context.Background()), cfg.Storage.Dir, cfg.App.Network, cfg.App.WalletID, log)
		if err != nil {
			return nil, fmt.Errorf("create storage: %w", err)
		}
		k.storage = storage
	}

	k.client = o.client
	if k.client == nil {
		clients := adapter.NewHorizonClientFactory(cfg.Adapter.HorizonURL, cfg.Adapter.RequestTimeout)
		k.client = adapter.NewHorizonLedgerClient(clients, kp, cfg.App.Network, cfg.App.Asset, log,
			adapter.WithClientMetrics(o.metrics, k.labels))
	}

	conn := o.conn
	if conn == nil {
		conn = adapter.NewHTTPConnectionManager(cfg.Adapter.HorizonURL, cfg.Adapter.RequestTimeout, cfg.Adapter.ProbeInterval, log)
	}

	k.publisher = o.publisher
	if k.publisher == nil {
		publisher, err := newPublisher(cfg.Events, o.metrics, log)
		if err != nil {
			_ = k.storage.Close()
			return nil, err
		}
		k.publisher, k.ownsPublisher = publisher, true
	}

	k.validator = validators.NewSendRequestValidator(k.client.AccountID(), cfg.App.Asset)
	k.services = service.NewServices(k.storage, k.client, conn, cfg, o.metrics, k.publisher, log)

	return k, nil
}

func newPublisher(cfg config.KitEvents, m *metrics.Metrics, log *logger.Logger) (events.Publisher, error) {
	if cfg.NATSURL == "" {
		return events.NopPublisher{}, nil
	}
	publisher, err := events.NewNATSPublisher(cfg.NATSURL, m, log)
	if err != nil {
		return nil, fmt.Errorf("create event publisher: %w", err)
	}
	return publisher, nil
}

// Start launches the sync engine on a fresh background context. Starting a
// running kit does nothing.
func (k *Kit) Start() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(k.logger.WithContext(context.Background()))
	k.cancel = cancel
	k.services.Syncer.Start(ctx)

	k.logger.Info().Str("func", "Kit.Start").Msg("kit started")
}

// Stop cancels the background context and waits for the sync engine to
// settle. Stopping a stopped kit does nothing.
func (k *Kit) Stop() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cancel == nil {
		return
	}

	k.cancel()
	k.services.Syncer.Stop()
	k.cancel = nil

	k.logger.Info().Str("func", "Kit.Stop").Msg("kit stopped")
}

// IsStarted reports whether Start was called without a matching Stop.
func (k *Kit) IsStarted() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.cancel != nil
}

// Close stops the kit and releases its store and event connection.
func (k *Kit) Close() error {
	k.Stop()

	var errs []error
	if k.ownsPublisher {
		if err := k.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close publisher: %w", err))
		}
	}
	if err := k.storage.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	return errors.Join(errs...)
}

// Refresh asks for a sync cycle now.
func (k *Kit) Refresh() {
	k.services.Syncer.Refresh()
}

// Send validates req, submits it and refreshes the kit so the new
// transaction shows up without waiting for the next tick.
func (k *Kit) Send(ctx context.Context, req models.SendRequest) error {
	code := req.Asset.DisplayCode()

	if err := k.validator.Validate(ctx, req); err != nil {
		k.metrics.RecordSend(k.labels, code, metrics.ResultInvalid)
		return fmt.Errorf("%w: %w", ErrInvalidSendRequest, err)
	}

	if err := k.client.Send(ctx, req); err != nil {
		result := metrics.ResultFailed
		if errors.Is(err, adapter.ErrTransactionRejected) {
			result = metrics.ResultRejected
		}
		k.metrics.RecordSend(k.labels, code, result)
		k.logger.Err(err).Str("func", "Kit.Send").Str("destination", req.Destination).Msg("send failed")
		return fmt.Errorf("send: %w", err)
	}

	k.metrics.RecordSend(k.labels, code, metrics.ResultSuccess)
	k.logger.Info().Str("func", "Kit.Send").
		Str("destination", req.Destination).
		Str("asset", code).
		Bool("create_account", req.IsInactiveDestination).
		Msg("transaction submitted")

	k.Refresh()
	return nil
}

// IsAccountActive reports whether accountID exists on the ledger.
func (k *Kit) IsAccountActive(ctx context.Context, accountID string) (bool, error) {
	if err := k.validator.Validate(ctx, accountID, validators.FieldAccountID); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidAccountID, err)
	}
	return k.client.IsAccountActive(ctx, accountID)
}

func (k *Kit) AccountID() string {
	return k.client.AccountID()
}

func (k *Kit) Network() models.Network {
	return k.network
}

func (k *Kit) WalletID() string {
	return k.walletID
}

func (k *Kit) Asset() models.Asset {
	return k.asset
}

func (k *Kit) Balance() models.Balance {
	return k.client.Balance()
}

func (k *Kit) SubscribeBalance() (<-chan models.Balance, func()) {
	return k.client.SubscribeBalance()
}

func (k *Kit) SyncState() models.SyncState {
	return k.services.Syncer.SyncState()
}

func (k *Kit) SubscribeSyncState() (<-chan models.SyncState, func()) {
	return k.services.Syncer.SubscribeSyncState()
}

func (k *Kit) LastLedgerSequence() uint64 {
	return k.services.Syncer.LastLedgerSequence()
}

func (k *Kit) SubscribeLastLedgerSequence() (<-chan uint64, func()) {
	return k.services.Syncer.SubscribeLastLedgerSequence()
}

// GetFullTransactions pages through the stored transactions newest first.
// Each inner slice of tagGroups is an OR-group and all groups must match.
func (k *Kit) GetFullTransactions(ctx context.Context, tagGroups [][]string, fromHash *string, limit *int) ([]models.FullTransaction, error) {
	return k.services.TransactionManager.GetFullTransactions(ctx, tagGroups, fromHash, limit)
}

func (k *Kit) GetFullTransactionsByHashes(ctx context.Context, hashes []string) ([]models.FullTransaction, error) {
	return k.services.TransactionManager.GetFullTransactionsByHashes(ctx, hashes)
}

// SubscribeFullTransactions streams the matching transactions after every
// sync that changed them. Empty results are not delivered.
func (k *Kit) SubscribeFullTransactions(tagGroups [][]string) (<-chan []models.FullTransaction, func()) {
	return k.services.TransactionManager.SubscribeFullTransactions(tagGroups)
}
