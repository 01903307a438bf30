package config

import "errors"

// Validation errors returned by [KitConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates an invalid Horizon URL.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unusable storage directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing wallet id or mnemonic, an
	// unknown network or a credit asset without issuer.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a sync interval below one second or
	// a fetch limit Horizon would reject.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
