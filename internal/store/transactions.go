package store

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.Hash,
		&t.CreatedAt,
		&t.Timestamp,
		&t.SourceAccount,
		&t.FeeAccount,
		&t.FeeCharged,
		&t.Memo,
		&t.Ledger,
		&t.IsSuccessful,
	)
	return t, err
}

func (s *sqliteStorage) SaveTransactionsIfNotExists(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, saveTransactionIfNotExists)
		if err != nil {
			log.Err(err).Str("func", "storage.SaveTransactionsIfNotExists").Msg("failed to prepare insert")
			return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
		}
		defer stmt.Close()

		for _, t := range transactions {
			_, err = stmt.ExecContext(ctx,
				t.Hash,
				t.CreatedAt,
				t.Timestamp,
				t.SourceAccount,
				t.FeeAccount,
				t.FeeCharged,
				t.Memo,
				t.Ledger,
				t.IsSuccessful,
			)
			if err != nil {
				log.Err(err).
					Str("func", "storage.SaveTransactionsIfNotExists").
					Str("hash", t.Hash).
					Msg("failed to insert transaction")
				return fmt.Errorf("%w (hash=%s): %w", ErrExecutingStatement, t.Hash, err)
			}
		}

		return nil
	})
}

func (s *sqliteStorage) GetTransaction(ctx context.Context, hash string) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	t, err := scanTransaction(s.DB.QueryRowContext(ctx, getTransaction, hash))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, ErrTransactionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "storage.GetTransaction").
			Str("hash", hash).
			Msg("failed to scan transaction row")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return t, nil
}

func (s *sqliteStorage) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.queryTransactions(ctx, "storage.GetTransactions", getAllTransactions)
}

// maxHashesPerQuery bounds the IN list of one statement. SQLite rejects
// statements with more than 32766 bound variables.
const maxHashesPerQuery = 500

func (s *sqliteStorage) GetTransactionsByHashes(ctx context.Context, hashes []string) ([]models.Transaction, error) {
	var transactions []models.Transaction

	for chunk := range slices.Chunk(hashes, maxHashesPerQuery) {
		query, args, err := sq.Select(transactionColumns...).
			From("transactions AS tx").
			Where(sq.Eq{"tx.hash": chunk}).
			OrderBy("tx.timestamp DESC", "tx.hash DESC").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		found, err := s.queryTransactions(ctx, "storage.GetTransactionsByHashes", query, args...)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, found...)
	}

	if len(hashes) > maxHashesPerQuery {
		slices.SortFunc(transactions, newestFirst)
	}
	return transactions, nil
}

func newestFirst(a, b models.Transaction) int {
	if c := cmp.Compare(b.Timestamp, a.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(b.Hash, a.Hash)
}

func (s *sqliteStorage) GetTransactionsBefore(ctx context.Context, tagGroups [][]string, fromHash *string, limit *int) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	var from *models.Transaction
	if fromHash != nil {
		t, err := s.GetTransaction(ctx, *fromHash)
		switch {
		case errors.Is(err, ErrTransactionNotFound):
			log.Debug().
				Str("func", "storage.GetTransactionsBefore").
				Str("from_hash", *fromHash).
				Msg("cursor transaction is not stored, ignoring cursor")
		case err != nil:
			return nil, err
		default:
			from = &t
		}
	}

	query, args, err := transactionsBeforeQuery(tagGroups, from, limit)
	if err != nil {
		log.Err(err).Str("func", "storage.GetTransactionsBefore").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryTransactions(ctx, "storage.GetTransactionsBefore", query, args...)
}

// transactionsBeforeQuery selects transactions ordered by (timestamp, hash)
// descending, strictly after the cursor when one is given. Every tag group
// becomes one EXISTS clause with IN over its names.
func transactionsBeforeQuery(tagGroups [][]string, from *models.Transaction, limit *int) (string, []any, error) {
	q := sq.Select(transactionColumns...).From("transactions AS tx")

	for _, group := range tagGroups {
		sub, args, err := sq.Select("1").
			From("transaction_tags AS tt").
			Where("tt.hash = tx.hash").
			Where(sq.Eq{"tt.name": group}).
			ToSql()
		if err != nil {
			return "", nil, err
		}
		q = q.Where(sq.Expr("EXISTS ("+sub+")", args...))
	}

	if from != nil {
		q = q.Where(sq.Or{
			sq.Lt{"tx.timestamp": from.Timestamp},
			sq.And{
				sq.Eq{"tx.timestamp": from.Timestamp},
				sq.Lt{"tx.hash": from.Hash},
			},
		})
	}

	q = q.OrderBy("tx.timestamp DESC", "tx.hash DESC")

	if limit != nil && *limit > 0 {
		q = q.Limit(uint64(*limit))
	}

	return q.ToSql()
}

func (s *sqliteStorage) queryTransactions(ctx context.Context, funcName, query string, args ...any) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, scanErr := scanTransaction(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		transactions = append(transactions, t)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return transactions, nil
}
