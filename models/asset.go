// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Decimals is the fixed number of decimal places of every Stellar amount.
const Decimals = 7

const (
	AssetTypeNative           = "native"
	AssetTypeCreditAlphanum4  = "credit_alphanum4"
	AssetTypeCreditAlphanum12 = "credit_alphanum12"
)

// NativeCode is the display code of the native asset.
const NativeCode = "XLM"

// Asset is the asset a kit tracks and sends. The zero value is the native asset.
type Asset struct {
	Code   string `json:"code"`
	Issuer string `json:"issuer,omitempty"`
}

// NativeAsset is XLM.
var NativeAsset = Asset{}

// USDC issuers on each network.
const (
	USDCIssuerTestnet = "GBBD47IF6LWK7P7MDEVSCWR7DPUWV3NY3DTQEVFL4NAT4AQH3ZLLFLA5"
	USDCIssuerMainnet = "GA5ZSEJYB37JRC5AVCIA5MOP4RHTM335X2KGX3IHOJAPP5RE34K4KZVN"
)

// IsNative reports whether a is the native asset.
func (a Asset) IsNative() bool {
	return a.Issuer == "" && (a.Code == "" || a.Code == NativeCode)
}

// Equal reports whether a and o denote the same asset. Every spelling of
// the native asset is equal to every other.
func (a Asset) Equal(o Asset) bool {
	if a.IsNative() || o.IsNative() {
		return a.IsNative() && o.IsNative()
	}
	return a.Code == o.Code && a.Issuer == o.Issuer
}

// DisplayCode returns the code used for tagging ("XLM" for native).
func (a Asset) DisplayCode() string {
	if a.IsNative() {
		return NativeCode
	}
	return a.Code
}

// Type returns the Horizon asset type string for a.
func (a Asset) Type() string {
	switch {
	case a.IsNative():
		return AssetTypeNative
	case len(a.Code) <= 4:
		return AssetTypeCreditAlphanum4
	default:
		return AssetTypeCreditAlphanum12
	}
}

func (a Asset) String() string {
	if a.IsNative() {
		return NativeCode
	}
	return a.Code + ":" + a.Issuer
}
