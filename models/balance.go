// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math/big"

// Balance holds the wallet's spendable balances in stroops (1e-7 units).
// It is derived from the account on every sync and never persisted.
type Balance struct {
	// Balance is the balance of the asset the kit is configured for.
	Balance *big.Int
	// BaseTokenBalance is the native balance, which pays fees for any asset.
	BaseTokenBalance *big.Int
}

// ZeroBalance returns a Balance with both values set to zero.
func ZeroBalance() Balance {
	return Balance{Balance: new(big.Int), BaseTokenBalance: new(big.Int)}
}

// Equal reports whether both balances match.
func (b Balance) Equal(o Balance) bool {
	return cmpInt(b.Balance, o.Balance) && cmpInt(b.BaseTokenBalance, o.BaseTokenBalance)
}

func cmpInt(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Cmp(b) == 0
}
