// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"

	"github.com/stellar/go/network"
)

// Network identifies the Stellar network a kit talks to.
type Network int

const (
	Mainnet Network = iota + 1
	Testnet
)

const (
	mainnetHorizonURL = "https://horizon.stellar.org/"
	testnetHorizonURL = "https://horizon-testnet.stellar.org"
)

// ParseNetwork converts a config value ("mainnet", "testnet") into a [Network].
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "public", "pubnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return 0, fmt.Errorf("unknown network %q", s)
	}
}

// String returns the network name used in store file names and logs.
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "Mainnet"
	case Testnet:
		return "Testnet"
	default:
		return "Unknown"
	}
}

// HorizonURL returns the public Horizon endpoint for the network.
func (n Network) HorizonURL() string {
	if n == Testnet {
		return testnetHorizonURL
	}
	return mainnetHorizonURL
}

// Passphrase returns the network passphrase transactions are signed for.
func (n Network) Passphrase() string {
	if n == Testnet {
		return network.TestNetworkPassphrase
	}
	return network.PublicNetworkPassphrase
}
