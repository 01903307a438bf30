// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// stellar kit daemon. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds wallet identity and asset settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local ledger mirror.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local HTTP API address.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds Horizon endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds polling settings of the sync loop.
	Workers Workers `envPrefix:"WORKERS_"`

	// Events holds the optional NATS event sink settings.
	Events Events `envPrefix:"EVENTS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds wallet-level configuration.
type App struct {
	// Network is "mainnet" or "testnet".
	// Env: APP_NETWORK
	Network string `env:"NETWORK"`

	// WalletID names the wallet; together with Network it selects the
	// local store file.
	// Env: APP_WALLET_ID
	WalletID string `env:"WALLET_ID"`

	// Mnemonic is the BIP-39 phrase the keypair is derived from.
	// Env: APP_MNEMONIC
	Mnemonic string `env:"MNEMONIC"`

	// Passphrase is the optional BIP-39 passphrase.
	// Env: APP_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// AccountIndex is the SEP-0005 account index (m/44'/148'/index').
	// Env: APP_ACCOUNT_INDEX
	AccountIndex uint32 `env:"ACCOUNT_INDEX"`

	// AssetCode and AssetIssuer select the tracked asset; empty issuer
	// means the native asset.
	// Env: APP_ASSET_CODE, APP_ASSET_ISSUER
	AssetCode   string `env:"ASSET_CODE"`
	AssetIssuer string `env:"ASSET_ISSUER"`

	// TokenSignKey enables bearer JWT auth on the send route when set.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of API tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Version is the application version exposed by the API.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// PrintToken makes the binary print an API token for this subject and
	// exit. Flag only.
	PrintToken string
}

// Storage groups the configuration of storage backends.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings of the per-wallet SQLite files.
type DB struct {
	// Dir is the directory that holds one database file per
	// (network, wallet id) pair.
	// Env: STORAGE_DB_DIR
	Dir string `env:"DIR"`
}

// Server holds the local HTTP API settings.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Adapter holds Horizon connection settings.
type Adapter struct {
	// HorizonURL overrides the public Horizon endpoint of the network.
	// Env: ADAPTER_HORIZON_URL
	HorizonURL string `env:"HORIZON_URL"`

	// RequestTimeout bounds a single Horizon request (e.g. "20s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeInterval is how often connectivity is re-checked.
	// Env: ADAPTER_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Workers holds configuration of the sync loop.
type Workers struct {
	// SyncInterval is the poll period of the sync timer.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// TransactionsLimit is how many recent transactions and operations a
	// cycle fetches.
	// Env: WORKERS_TRANSACTIONS_LIMIT
	TransactionsLimit int `env:"TRANSACTIONS_LIMIT"`
}

// Events holds the NATS sink settings.
type Events struct {
	// NATSURL enables event publishing when non-empty.
	// Env: EVENTS_NATS_URL
	NATSURL string `env:"NATS_URL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
