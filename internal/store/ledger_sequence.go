package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
)

func (s *sqliteStorage) GetLastLedgerSequence(ctx context.Context) (uint64, bool, error) {
	log := logger.FromContext(ctx)

	var seq int64
	err := s.DB.QueryRowContext(ctx, getLastLedgerSequence).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "storage.GetLastLedgerSequence").
			Msg("failed to read last ledger sequence")
		return 0, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return uint64(seq), true, nil
}

func (s *sqliteStorage) SaveLastLedgerSequence(ctx context.Context, seq uint64) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, saveLastLedgerSequence, int64(seq)); err != nil {
		log.Err(err).
			Str("func", "storage.SaveLastLedgerSequence").
			Uint64("sequence", seq).
			Msg("failed to upsert last ledger sequence")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
