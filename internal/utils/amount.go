// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/stellar/go/amount"
)

// ErrAmountOutOfRange is returned for amounts the ledger cannot carry:
// non-positive values or values above the int64 stroop range.
var ErrAmountOutOfRange = errors.New("amount out of range")

// ToDecimalString renders v smallest units as a decimal string with exactly
// decimals fraction digits (10000000, 7 -> "1.0000000"). Integer arithmetic
// only.
func ToDecimalString(v *big.Int, decimals int) string {
	if v == nil {
		v = new(big.Int)
	}
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)

	digits := abs.String()
	if decimals > 0 {
		if len(digits) <= decimals {
			digits = strings.Repeat("0", decimals-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-decimals] + "." + digits[len(digits)-decimals:]
	}

	if neg {
		return "-" + digits
	}
	return digits
}

// ToLedgerAmount converts an amount in stroops into the 7-decimal string the
// ledger expects. Only positive int64 values are representable.
func ToLedgerAmount(v *big.Int) (string, error) {
	if v == nil || v.Sign() <= 0 || !v.IsInt64() {
		return "", ErrAmountOutOfRange
	}
	return amount.StringFromInt64(v.Int64()), nil
}

// ParseLedgerAmount parses a ledger decimal string ("5.0000000") into
// stroops without going through floating point.
func ParseLedgerAmount(s string) (*big.Int, error) {
	v, err := amount.ParseInt64(s)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return big.NewInt(v), nil
}
