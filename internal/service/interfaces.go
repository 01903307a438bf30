// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the sync engine of the stellar kit: the poll timer
// that decides when to sync, the syncer that mirrors the remote ledger into
// the local store, and the transaction manager that derives tags and serves
// the joined transaction views.
package service

import (
	"context"

	"github.com/MKhiriev/go-stellar-kit/models"
)

// TimerListener receives poll timer events.
type TimerListener interface {
	// OnTimerStateChanged is called after every state transition except the
	// reset performed by Stop.
	OnTimerStateChanged(state TimerState)
	// OnTick is called from the timer goroutine; ticks never overlap.
	OnTick()
}

// SyncTimer emits ticks while the remote ledger is reachable.
type SyncTimer interface {
	Start(ctx context.Context, listener TimerListener)
	// Stop cancels ticking, resets the state to TimerNotReady(ErrNotStarted),
	// stops the connection manager and detaches the listener.
	Stop()
	State() TimerState
}

// Syncer mirrors the remote account into the local store.
type Syncer interface {
	Start(ctx context.Context)
	Stop()
	// Refresh runs a cycle now when the timer is ready, otherwise restarts
	// the timer.
	Refresh()

	SyncState() models.SyncState
	SubscribeSyncState() (<-chan models.SyncState, func())
	LastLedgerSequence() uint64
	SubscribeLastLedgerSequence() (<-chan uint64, func())
}

// TransactionManager derives tags for stored transactions and serves the
// joined transaction views.
type TransactionManager interface {
	// Process re-resolves every stored transaction, persists the tag set and
	// republishes the views.
	Process(ctx context.Context) error

	FullTransactions() []models.FullTransaction
	GetFullTransactions(ctx context.Context, tagGroups [][]string, fromHash *string, limit *int) ([]models.FullTransaction, error)
	GetFullTransactionsByHashes(ctx context.Context, hashes []string) ([]models.FullTransaction, error)
	// SubscribeFullTransactions streams the transactions matching tagGroups
	// after every Process. Empty results are never sent.
	SubscribeFullTransactions(tagGroups [][]string) (<-chan []models.FullTransaction, func())
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
