package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/models"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *sqliteStorage) SaveCreateAccountOperationIfNotExists(ctx context.Context, op models.CreateAccountOperation) error {
	if err := saveCreateAccount(ctx, s.DB, op); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "storage.SaveCreateAccountOperationIfNotExists").
			Str("id", op.ID).
			Msg("failed to insert create account operation")
		return err
	}
	return nil
}

func (s *sqliteStorage) SavePaymentOperationIfNotExists(ctx context.Context, op models.PaymentOperation) error {
	if err := savePayment(ctx, s.DB, op); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "storage.SavePaymentOperationIfNotExists").
			Str("id", op.ID).
			Msg("failed to insert payment operation")
		return err
	}
	return nil
}

func (s *sqliteStorage) SaveOperationsIfNotExists(ctx context.Context, ops []models.Operation) error {
	if len(ops) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, op := range ops {
			var err error
			switch o := op.(type) {
			case models.CreateAccountOperation:
				err = saveCreateAccount(ctx, tx, o)
			case models.PaymentOperation:
				err = savePayment(ctx, tx, o)
			case models.UnhandledOperation:
				continue
			default:
				err = fmt.Errorf("%w: %T", ErrUnsupportedOperation, op)
			}
			if err != nil {
				log.Err(err).
					Str("func", "storage.SaveOperationsIfNotExists").
					Str("id", op.Base().ID).
					Msg("failed to insert operation")
				return err
			}
		}
		return nil
	})
}

func saveCreateAccount(ctx context.Context, db execer, op models.CreateAccountOperation) error {
	_, err := db.ExecContext(ctx, saveCreateAccountOperationIfNotExists,
		op.ID,
		op.PagingToken,
		op.TransactionSuccessful,
		op.SourceAccount,
		op.Type,
		op.CreatedAt,
		op.TransactionHash,
		op.StartingBalance,
		op.Funder,
		op.Account,
	)
	if err != nil {
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, op.ID, err)
	}
	return nil
}

func savePayment(ctx context.Context, db execer, op models.PaymentOperation) error {
	_, err := db.ExecContext(ctx, savePaymentOperationIfNotExists,
		op.ID,
		op.PagingToken,
		op.TransactionSuccessful,
		op.SourceAccount,
		op.Type,
		op.CreatedAt,
		op.TransactionHash,
		op.AssetType,
		op.AssetCode,
		op.AssetIssuer,
		op.From,
		op.To,
		op.Amount,
	)
	if err != nil {
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, op.ID, err)
	}
	return nil
}

func scanCreateAccount(row rowScanner) (models.CreateAccountOperation, error) {
	var op models.CreateAccountOperation
	err := row.Scan(
		&op.ID,
		&op.PagingToken,
		&op.TransactionSuccessful,
		&op.SourceAccount,
		&op.Type,
		&op.CreatedAt,
		&op.TransactionHash,
		&op.StartingBalance,
		&op.Funder,
		&op.Account,
	)
	return op, err
}

func scanPayment(row rowScanner) (models.PaymentOperation, error) {
	var op models.PaymentOperation
	err := row.Scan(
		&op.ID,
		&op.PagingToken,
		&op.TransactionSuccessful,
		&op.SourceAccount,
		&op.Type,
		&op.CreatedAt,
		&op.TransactionHash,
		&op.AssetType,
		&op.AssetCode,
		&op.AssetIssuer,
		&op.From,
		&op.To,
		&op.Amount,
	)
	return op, err
}

func (s *sqliteStorage) GetCreateAccountOperations(ctx context.Context, hash string) ([]models.CreateAccountOperation, error) {
	return queryOperations(ctx, s.DB, "storage.GetCreateAccountOperations", scanCreateAccount, getCreateAccountOperations, hash)
}

func (s *sqliteStorage) GetPaymentOperations(ctx context.Context, hash string) ([]models.PaymentOperation, error) {
	return queryOperations(ctx, s.DB, "storage.GetPaymentOperations", scanPayment, getPaymentOperations, hash)
}

func (s *sqliteStorage) ResolveOperations(ctx context.Context, hashes []string) (map[string]models.Operation, error) {
	resolved := make(map[string]models.Operation, len(hashes))

	for chunk := range slices.Chunk(hashes, maxHashesPerQuery) {
		creates, err := selectOperations(ctx, s.DB, "create_account_operations", createAccountColumns, scanCreateAccount, chunk)
		if err != nil {
			return nil, err
		}
		for _, op := range creates {
			if _, ok := resolved[op.TransactionHash]; !ok {
				resolved[op.TransactionHash] = op
			}
		}

		payments, err := selectOperations(ctx, s.DB, "payment_operations", paymentColumns, scanPayment, chunk)
		if err != nil {
			return nil, err
		}
		for _, op := range payments {
			if _, ok := resolved[op.TransactionHash]; !ok {
				resolved[op.TransactionHash] = op
			}
		}
	}

	return resolved, nil
}

func selectOperations[T any](ctx context.Context, db *DB, table string, columns []string, scan func(rowScanner) (T, error), hashes []string) ([]T, error) {
	query, args, err := sq.Select(columns...).
		From(table).
		Where(sq.Eq{"transaction_hash": hashes}).
		OrderBy("CAST(id AS INTEGER)").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryOperations(ctx, db, "storage.ResolveOperations", scan, query, args...)
}

func queryOperations[T any](ctx context.Context, db *DB, funcName string, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ops []T
	for rows.Next() {
		op, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ops, nil
}
