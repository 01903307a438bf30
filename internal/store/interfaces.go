package store

import (
	"context"

	"github.com/MKhiriev/go-stellar-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Storage is the durable local mirror of one wallet on one network.
// The syncer is its only writer; every multi-row write runs in a single SQL
// transaction.
type Storage interface {
	// GetLastLedgerSequence returns the highest ledger observed, ok=false
	// when nothing was stored yet.
	GetLastLedgerSequence(ctx context.Context) (seq uint64, ok bool, err error)
	// SaveLastLedgerSequence upserts the sequence; a lower value never
	// replaces a higher one.
	SaveLastLedgerSequence(ctx context.Context, seq uint64) error

	SaveTransactionsIfNotExists(ctx context.Context, transactions []models.Transaction) error
	GetTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransactionsByHashes(ctx context.Context, hashes []string) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, hash string) (models.Transaction, error)
	// GetTransactionsBefore pages through transactions newest first. Each
	// inner slice of tagGroups is an OR-group; all groups must match.
	// A fromHash that is not stored is ignored; a nil or non-positive limit
	// means no limit.
	GetTransactionsBefore(ctx context.Context, tagGroups [][]string, fromHash *string, limit *int) ([]models.Transaction, error)

	SaveCreateAccountOperationIfNotExists(ctx context.Context, op models.CreateAccountOperation) error
	SavePaymentOperationIfNotExists(ctx context.Context, op models.PaymentOperation) error
	// SaveOperationsIfNotExists stores the tracked kinds of ops in one SQL
	// transaction; [models.UnhandledOperation] values are skipped.
	SaveOperationsIfNotExists(ctx context.Context, ops []models.Operation) error
	GetCreateAccountOperations(ctx context.Context, hash string) ([]models.CreateAccountOperation, error)
	GetPaymentOperations(ctx context.Context, hash string) ([]models.PaymentOperation, error)
	// ResolveOperations returns the tracked operation of every hash that has
	// one: the first create-account operation, else the first payment.
	ResolveOperations(ctx context.Context, hashes []string) (map[string]models.Operation, error)

	// SaveTags upserts tag rows in one SQL transaction.
	SaveTags(ctx context.Context, tags []models.TransactionTag) error
	GetTags(ctx context.Context, hash string) ([]string, error)

	Close() error
}
