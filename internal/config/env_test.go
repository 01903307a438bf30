// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NETWORK":        "testnet",
		"APP_WALLET_ID":      "wallet-1",
		"APP_MNEMONIC":       "abandon abandon about",
		"APP_PASSPHRASE":     "extra",
		"APP_ACCOUNT_INDEX":  "2",
		"APP_ASSET_CODE":     "USDC",
		"APP_ASSET_ISSUER":   "GISSUER",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",

		"SERVER_ADDRESS": "localhost:8080",

		"ADAPTER_HORIZON_URL":     "http://localhost:8000",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_PROBE_INTERVAL":  "5s",

		"WORKERS_SYNC_INTERVAL":      "15s",
		"WORKERS_TRANSACTIONS_LIMIT": "50",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DIR": "/var/data",

		"EVENTS_NATS_URL": "nats://localhost:4222",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "testnet", cfg.App.Network)
	assert.Equal(t, "wallet-1", cfg.App.WalletID)
	assert.Equal(t, "abandon abandon about", cfg.App.Mnemonic)
	assert.Equal(t, "extra", cfg.App.Passphrase)
	assert.Equal(t, uint32(2), cfg.App.AccountIndex)
	assert.Equal(t, "USDC", cfg.App.AssetCode)
	assert.Equal(t, "GISSUER", cfg.App.AssetIssuer)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)

	assert.Equal(t, "http://localhost:8000", cfg.Adapter.HorizonURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.ProbeInterval)

	assert.Equal(t, 15*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 50, cfg.Workers.TransactionsLimit)

	assert.Equal(t, "/var/data", cfg.Storage.DB.Dir)
	assert.Equal(t, "nats://localhost:4222", cfg.Events.NATSURL)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	// App partially filled
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Empty(t, cfg.App.WalletID)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)

	// Others untouched
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.Storage.DB.Dir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Events{}, cfg.Events)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"WORKERS_SYNC_INTERVAL": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	_, err := parseEnv()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidAccountIndex(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_ACCOUNT_INDEX": "-1"})

	_, err := parseEnv()

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg, err := parseEnv()

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_NETWORK",
		"APP_WALLET_ID",
		"APP_MNEMONIC",
		"APP_PASSPHRASE",
		"APP_ACCOUNT_INDEX",
		"APP_ASSET_CODE",
		"APP_ASSET_ISSUER",
		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_ISSUER",
		"APP_VERSION",

		"SERVER_ADDRESS",

		"ADAPTER_HORIZON_URL",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_PROBE_INTERVAL",

		"WORKERS_SYNC_INTERVAL",
		"WORKERS_TRANSACTIONS_LIMIT",

		"STORAGE_DB_DIR",
		"EVENTS_NATS_URL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
