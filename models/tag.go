// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TransactionTag links a tag name to a transaction hash. Tags are derived
// from the transaction and its operation and can be rebuilt at any time.
type TransactionTag struct {
	Name string `json:"name"`
	Hash string `json:"hash"`
}

const (
	TagIncoming = "incoming"
	TagOutgoing = "outgoing"

	TagStellarCoin         = NativeCode
	TagStellarCoinIncoming = NativeCode + "_" + TagIncoming
	TagStellarCoinOutgoing = NativeCode + "_" + TagOutgoing
)

// TokenIncoming returns the incoming tag for an asset code.
func TokenIncoming(code string) string { return code + "_" + TagIncoming }

// TokenOutgoing returns the outgoing tag for an asset code.
func TokenOutgoing(code string) string { return code + "_" + TagOutgoing }
