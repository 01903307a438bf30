// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// validate checks the merged [StructuredConfig]. Field-level rules live in
// [KitConfig.validate]; the structured form only rejects values no source
// could have meant.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.TransactionsLimit < 0 || cfg.Workers.TransactionsLimit > 200 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *KitConfig) validate() error {
	if strings.TrimSpace(cfg.App.WalletID) == "" || strings.TrimSpace(cfg.App.Mnemonic) == "" {
		return ErrInvalidAppConfigs
	}
	// the wallet id becomes part of the store file name
	if strings.ContainsAny(cfg.App.WalletID, `/\`) || strings.Contains(cfg.App.WalletID, "..") {
		return ErrInvalidAppConfigs
	}
	if !cfg.App.Asset.IsNative() && (cfg.App.Asset.Code == "" || cfg.App.Asset.Issuer == "") {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.Dir == ":memory:" {
		return ErrInvalidStorageConfigs
	}

	if !strings.HasPrefix(cfg.Adapter.HorizonURL, "http://") && !strings.HasPrefix(cfg.Adapter.HorizonURL, "https://") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval < time.Second {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
