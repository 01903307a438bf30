// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote-ledger abstractions of the stellar kit.
//
// [LedgerClient] decouples the sync and send paths from Horizon. The package
// ships a Horizon implementation built on github.com/stellar/go
// ([NewHorizonLedgerClient]) and an HTTP connectivity probe
// ([NewHTTPConnectionManager]).
//
// Error values defined in errors.go let callers tell a ledger rejection
// ([ErrTransactionRejected]) apart from transport failures with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stellar-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_client_mock.go -package=mock

// LedgerClient is the kit's view of the remote ledger, scoped to one account.
type LedgerClient interface {
	// AccountID returns the address of the account the client acts for.
	AccountID() string

	// GetLastLedgerSequence returns the sequence of the most recently closed
	// ledger. Returns [ErrNoLedgers] when the server reports none.
	GetLastLedgerSequence(ctx context.Context) (uint64, error)

	// GetBalance reads the account and returns the balance of the configured
	// asset together with the native balance. For a non-native asset without
	// a trustline it tries to establish one and reports a zero token balance
	// whether or not that submission succeeds.
	// The result is also published through Balance and SubscribeBalance.
	GetBalance(ctx context.Context) (models.Balance, error)

	// Balance returns the last balance observed by GetBalance.
	Balance() models.Balance

	// SubscribeBalance streams balance changes, starting with the current one.
	SubscribeBalance() (<-chan models.Balance, func())

	// GetTransactions returns up to limit most recent account transactions,
	// newest first, failed ones included.
	GetTransactions(ctx context.Context, limit int) ([]models.Transaction, error)

	// GetOperations returns up to limit most recent account operations,
	// newest first, failed ones included.
	GetOperations(ctx context.Context, limit int) ([]models.Operation, error)

	// IsAccountActive reports whether accountID exists on the ledger.
	IsAccountActive(ctx context.Context, accountID string) (bool, error)

	// Send builds, signs and submits a payment, or a create-account operation
	// when req.IsInactiveDestination is set.
	Send(ctx context.Context, req models.SendRequest) error
}

// ConnectionManager tracks whether the remote ledger is reachable.
type ConnectionManager interface {
	IsConnected() bool
	// SetListener registers the callback invoked after every connectivity
	// change. A nil listener detaches the previous one.
	SetListener(listener func())
	// Start probes the ledger once before returning and keeps probing in
	// the background until Stop. Only later changes reach the listener.
	Start(ctx context.Context)
	Stop()
}
