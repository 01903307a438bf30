// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math/big"

// SendRequest describes an outgoing transfer.
type SendRequest struct {
	Asset Asset `json:"asset"`
	// Amount is expressed in the asset's smallest unit (Decimals places).
	Amount      *big.Int `json:"amount"`
	Destination string   `json:"destination"`
	Memo        string   `json:"memo"`
	// IsInactiveDestination makes the kit fund a new account instead of paying.
	IsInactiveDestination bool `json:"is_inactive_destination"`
}
