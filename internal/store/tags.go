package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/models"
)

func (s *sqliteStorage) SaveTags(ctx context.Context, tags []models.TransactionTag) error {
	if len(tags) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, saveTag)
		if err != nil {
			log.Err(err).Str("func", "storage.SaveTags").Msg("failed to prepare tag upsert")
			return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
		}
		defer stmt.Close()

		for _, tag := range tags {
			if _, err = stmt.ExecContext(ctx, tag.Name, tag.Hash); err != nil {
				log.Err(err).
					Str("func", "storage.SaveTags").
					Str("hash", tag.Hash).
					Str("tag", tag.Name).
					Msg("failed to upsert tag")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		return nil
	})
}

func (s *sqliteStorage) GetTags(ctx context.Context, hash string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getTags, hash)
	if err != nil {
		log.Err(err).Str("func", "storage.GetTags").Str("hash", hash).Msg("failed to query tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}
