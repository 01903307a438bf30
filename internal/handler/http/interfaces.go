package http

import (
	"context"

	"github.com/MKhiriev/go-stellar-kit/models"
)

// KitService is the part of a kit the API serves.
type KitService interface {
	AccountID() string
	Network() models.Network
	Asset() models.Asset
	Balance() models.Balance
	SyncState() models.SyncState
	LastLedgerSequence() uint64
	Refresh()
	Send(ctx context.Context, req models.SendRequest) error
	IsAccountActive(ctx context.Context, accountID string) (bool, error)
	GetFullTransactions(ctx context.Context, tagGroups [][]string, fromHash *string, limit *int) ([]models.FullTransaction, error)
}
