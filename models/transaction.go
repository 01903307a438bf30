// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Transaction is a ledger transaction mirrored into the local store.
// Rows are immutable once stored; Hash is the identity.
type Transaction struct {
	Hash          string `json:"hash"`
	CreatedAt     string `json:"created_at"`
	Timestamp     int64  `json:"timestamp"`
	SourceAccount string `json:"source_account"`
	FeeAccount    string `json:"fee_account"`
	FeeCharged    int64  `json:"fee_charged"`
	Memo          string `json:"memo"`
	Ledger        int64  `json:"ledger"`
	IsSuccessful  bool   `json:"is_successful"`
}

// FullTransaction joins a transaction with the single operation the kit tracks for it.
type FullTransaction struct {
	Transaction Transaction `json:"transaction"`
	Operation   Operation   `json:"operation"`
}

// TransactionWithTags is a FullTransaction together with its derived tags.
type TransactionWithTags struct {
	Transaction FullTransaction
	Tags        []string
}

// HasTags reports whether t matches every OR-group in groups.
// An empty groups list matches everything.
func (t TransactionWithTags) HasTags(groups [][]string) bool {
	for _, group := range groups {
		if !containsAny(t.Tags, group) {
			return false
		}
	}
	return true
}

func containsAny(tags, group []string) bool {
	for _, g := range group {
		for _, t := range tags {
			if t == g {
				return true
			}
		}
	}
	return false
}
