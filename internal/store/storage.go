// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/models"
)

type sqliteStorage struct {
	*DB
	logger *logger.Logger
}

// DatabaseName returns the file name of the store that belongs to the
// (network, walletID) pair. Distinct pairs never share a file.
func DatabaseName(network models.Network, walletID string) string {
	return fmt.Sprintf("Stellar-%s-%s.sqlite", network, walletID)
}

// NewStorage opens (creating if needed) and migrates the store of the
// given wallet inside dir.
func NewStorage(ctx context.Context, dir string, network models.Network, walletID string, log *logger.Logger) (Storage, error) {
	log.Info().Str("func", "store.NewStorage").Msg("creating new storage...")

	db, err := NewConnectSQLite(ctx, filepath.Join(dir, DatabaseName(network, walletID)), log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteStorage(db, log), nil
}

// NewSQLiteStorage wraps an already migrated database.
func NewSQLiteStorage(db *DB, log *logger.Logger) Storage {
	return &sqliteStorage{
		DB:     db,
		logger: log,
	}
}

// Clear removes the store file of the (network, walletID) pair together
// with its WAL side files. Missing files are not an error.
func Clear(dir string, network models.Network, walletID string) error {
	base := filepath.Join(dir, DatabaseName(network, walletID))

	var errs []error
	for _, name := range []string{base, base + "-wal", base + "-shm"} {
		if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *sqliteStorage) Close() error {
	return s.DB.Close()
}
