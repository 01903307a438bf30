package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/store"
	"github.com/MKhiriev/go-stellar-kit/internal/utils"
	"github.com/MKhiriev/go-stellar-kit/models"
)

type transactionManager struct {
	accountID string
	storage   store.Storage

	transactions *utils.Observable[[]models.FullTransaction]
	tagged       *utils.Observable[[]models.TransactionWithTags]

	logger *logger.Logger
}

// NewTransactionManager creates a manager deriving tags for accountID.
func NewTransactionManager(accountID string, storage store.Storage, logger *logger.Logger) TransactionManager {
	return &transactionManager{
		accountID:    accountID,
		storage:      storage,
		transactions: utils.NewObservable[[]models.FullTransaction](nil, nil),
		tagged:       utils.NewObservable[[]models.TransactionWithTags](nil, nil),
		logger:       logger,
	}
}

func (m *transactionManager) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	transactions, err := m.storage.GetTransactions(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	if len(transactions) == 0 {
		return nil
	}

	full, err := m.join(ctx, transactions)
	if err != nil {
		return err
	}

	withTags := make([]models.TransactionWithTags, 0, len(full))
	var allTags []models.TransactionTag
	for _, tx := range full {
		tags := tagsFor(tx.Operation, m.accountID)
		for _, name := range tags {
			allTags = append(allTags, models.TransactionTag{Name: name, Hash: tx.Transaction.Hash})
		}
		withTags = append(withTags, models.TransactionWithTags{Transaction: tx, Tags: tags})
	}

	if err = m.storage.SaveTags(ctx, allTags); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}

	m.tagged.Set(withTags)
	m.transactions.Set(full)

	log.Debug().Str("func", "transactionManager.Process").
		Int("transactions", len(full)).
		Int("tags", len(allTags)).
		Msg("transactions processed")
	return nil
}

func (m *transactionManager) FullTransactions() []models.FullTransaction {
	return m.transactions.Get()
}

func (m *transactionManager) GetFullTransactions(ctx context.Context, tagGroups [][]string, fromHash *string, limit *int) ([]models.FullTransaction, error) {
	transactions, err := m.storage.GetTransactionsBefore(ctx, tagGroups, fromHash, limit)
	if err != nil {
		return nil, fmt.Errorf("load transactions page: %w", err)
	}
	return m.join(ctx, transactions)
}

func (m *transactionManager) GetFullTransactionsByHashes(ctx context.Context, hashes []string) ([]models.FullTransaction, error) {
	transactions, err := m.storage.GetTransactionsByHashes(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("load transactions by hashes: %w", err)
	}
	return m.join(ctx, transactions)
}

// SubscribeFullTransactions filters the tagged view on a goroutine owned by
// the subscription. The returned channel keeps only the latest result, and it
// is closed by cancel.
func (m *transactionManager) SubscribeFullTransactions(tagGroups [][]string) (<-chan []models.FullTransaction, func()) {
	src, cancel := m.tagged.Subscribe()
	out := make(chan []models.FullTransaction, 1)

	go func() {
		defer close(out)
		for view := range src {
			filtered := filterByTags(view, tagGroups)
			if len(filtered) == 0 {
				continue
			}
			select {
			case <-out:
			default:
			}
			out <- filtered
		}
	}()

	return out, cancel
}

// join pairs every transaction with its tracked operation. Transactions
// without one keep an [models.UnhandledOperation] built from their own row.
func (m *transactionManager) join(ctx context.Context, transactions []models.Transaction) ([]models.FullTransaction, error) {
	if len(transactions) == 0 {
		return []models.FullTransaction{}, nil
	}

	hashes := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		hashes = append(hashes, tx.Hash)
	}

	ops, err := m.storage.ResolveOperations(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("resolve operations: %w", err)
	}

	full := make([]models.FullTransaction, 0, len(transactions))
	for _, tx := range transactions {
		op, ok := ops[tx.Hash]
		if !ok {
			op = models.UnhandledOperation{OperationBase: models.OperationBase{
				TransactionSuccessful: tx.IsSuccessful,
				SourceAccount:         tx.SourceAccount,
				CreatedAt:             tx.CreatedAt,
				TransactionHash:       tx.Hash,
			}}
		}
		full = append(full, models.FullTransaction{Transaction: tx, Operation: op})
	}
	return full, nil
}

func filterByTags(view []models.TransactionWithTags, tagGroups [][]string) []models.FullTransaction {
	var filtered []models.FullTransaction
	for _, tx := range view {
		if tx.HasTags(tagGroups) {
			filtered = append(filtered, tx.Transaction)
		}
	}
	return filtered
}
