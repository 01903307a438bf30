package service

import (
	"github.com/MKhiriev/go-stellar-kit/internal/adapter"
	"github.com/MKhiriev/go-stellar-kit/internal/config"
	"github.com/MKhiriev/go-stellar-kit/internal/events"
	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/metrics"
	"github.com/MKhiriev/go-stellar-kit/internal/store"
)

// Services groups the sync engine of one kit.
type Services struct {
	SyncTimer          SyncTimer
	Syncer             Syncer
	TransactionManager TransactionManager
}

// NewServices wires the timer, the transaction manager and the syncer of one
// wallet. publisher and m may be nil.
func NewServices(storage store.Storage, client adapter.LedgerClient, conn adapter.ConnectionManager, cfg config.KitConfig, m *metrics.Metrics, publisher events.Publisher, logger *logger.Logger) *Services {
	timer := NewSyncTimer(conn, cfg.Workers.SyncInterval, logger)
	transactions := NewTransactionManager(client.AccountID(), storage, logger)

	return &Services{
		SyncTimer:          timer,
		TransactionManager: transactions,
		Syncer: NewSyncer(storage, client, timer, transactions, SyncerOptions{
			Network:           cfg.App.Network,
			WalletID:          cfg.App.WalletID,
			TransactionsLimit: cfg.Workers.TransactionsLimit,
			Metrics:           m,
			Publisher:         publisher,
		}, logger),
	}
}
