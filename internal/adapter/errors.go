package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransactionRejected = errors.New("transaction rejected by ledger")
	ErrAccountNotFound     = errors.New("account not found")
	ErrUnsupportedAsset    = errors.New("unsupported asset")
	ErrNoLedgers           = errors.New("no ledgers returned")

	ErrRateLimited       = errors.New("rate limited")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected status")
)

// RejectedError describes a submission the ledger refused. It matches
// [ErrTransactionRejected] with errors.Is.
type RejectedError struct {
	Status          int
	TransactionCode string
	OperationCodes  []string
}

func (e *RejectedError) Error() string {
	msg := fmt.Sprintf("%s (status %d", ErrTransactionRejected, e.Status)
	if e.TransactionCode != "" {
		msg += ", tx: " + e.TransactionCode
	}
	if len(e.OperationCodes) > 0 {
		msg += ", ops: " + strings.Join(e.OperationCodes, ",")
	}
	return msg + ")"
}

func (e *RejectedError) Unwrap() error {
	return ErrTransactionRejected
}
