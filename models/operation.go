// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operation types as reported by Horizon.
const (
	OperationTypeCreateAccount = "create_account"
	OperationTypePayment       = "payment"
)

// Operation is one of [CreateAccountOperation], [PaymentOperation] or
// [UnhandledOperation]. The set is closed; switch on the concrete type.
type Operation interface {
	Base() OperationBase
	isOperation()
}

// OperationBase holds the fields common to every operation kind.
type OperationBase struct {
	ID                    string `json:"id"`
	PagingToken           string `json:"paging_token"`
	TransactionSuccessful bool   `json:"transaction_successful"`
	SourceAccount         string `json:"source_account"`
	Type                  string `json:"type"`
	CreatedAt             string `json:"created_at"`
	TransactionHash       string `json:"transaction_hash"`
}

// CreateAccountOperation funds a new ledger account.
type CreateAccountOperation struct {
	OperationBase
	StartingBalance string `json:"starting_balance"`
	Funder          string `json:"funder"`
	Account         string `json:"account"`
}

// PaymentOperation moves an asset between two existing accounts.
type PaymentOperation struct {
	OperationBase
	AssetType   string `json:"asset_type"`
	AssetCode   string `json:"asset_code"`
	AssetIssuer string `json:"asset_issuer"`
	From        string `json:"from"`
	To          string `json:"to"`
	Amount      string `json:"amount"`
}

// UnhandledOperation stands for any operation kind the kit does not track
// (trustline changes, offers, path payments...). It is never persisted.
type UnhandledOperation struct {
	OperationBase
}

func (o CreateAccountOperation) Base() OperationBase { return o.OperationBase }
func (o PaymentOperation) Base() OperationBase       { return o.OperationBase }
func (o UnhandledOperation) Base() OperationBase     { return o.OperationBase }

func (CreateAccountOperation) isOperation() {}
func (PaymentOperation) isOperation()       {}
func (UnhandledOperation) isOperation()     {}

// IsNative reports whether the payment moved the native asset.
func (o PaymentOperation) IsNative() bool {
	return o.AssetType == AssetTypeNative
}
