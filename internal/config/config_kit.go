package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-stellar-kit/models"
)

// Defaults applied when a value is not configured.
const (
	DefaultSyncInterval      = 15 * time.Second
	DefaultRequestTimeout    = 20 * time.Second
	DefaultProbeInterval     = 10 * time.Second
	DefaultTransactionsLimit = 100
	DefaultStorageDir        = "."
	DefaultHTTPAddress       = "localhost:8089"
	DefaultTokenIssuer       = "stellarkit"
	DefaultTokenTTL          = 24 * time.Hour
)

// KitApp holds identity settings of one kit.
type KitApp struct {
	Network      models.Network
	WalletID     string
	Mnemonic     string
	Passphrase   string
	AccountIndex uint32
	Asset        models.Asset
	TokenSignKey string
	TokenIssuer  string
	Version      string
	// PrintToken is the subject of a token to print instead of running.
	PrintToken string
}

// KitAdapter holds Horizon connection settings.
type KitAdapter struct {
	HorizonURL     string
	RequestTimeout time.Duration
	ProbeInterval  time.Duration
}

// KitStorage holds local mirror settings.
type KitStorage struct {
	Dir string
}

// KitWorkers holds sync loop settings.
type KitWorkers struct {
	SyncInterval      time.Duration
	TransactionsLimit int
}

// KitServer holds the local API settings.
type KitServer struct {
	HTTPAddress string
}

// KitEvents holds event sink settings.
type KitEvents struct {
	NATSURL string
}

// KitConfig is the kit-specific view assembled from [StructuredConfig].
type KitConfig struct {
	App     KitApp
	Adapter KitAdapter
	Storage KitStorage
	Workers KitWorkers
	Server  KitServer
	Events  KitEvents
}

// GetKitConfig builds and validates a kit config from the merged structured
// configuration.
func GetKitConfig(args []string) (*KitConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewKitConfig(cfg)
}

// NewKitConfig projects cfg into a [KitConfig], filling defaults.
func NewKitConfig(cfg *StructuredConfig) (*KitConfig, error) {
	network, err := models.ParseNetwork(cfg.App.Network)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	kitCfg := &KitConfig{
		App: KitApp{
			Network:      network,
			WalletID:     cfg.App.WalletID,
			Mnemonic:     cfg.App.Mnemonic,
			Passphrase:   cfg.App.Passphrase,
			AccountIndex: cfg.App.AccountIndex,
			Asset:        models.Asset{Code: cfg.App.AssetCode, Issuer: cfg.App.AssetIssuer},
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			Version:      cfg.App.Version,
			PrintToken:   cfg.App.PrintToken,
		},
		Adapter: KitAdapter{
			HorizonURL:     cfg.Adapter.HorizonURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ProbeInterval:  cfg.Adapter.ProbeInterval,
		},
		Storage: KitStorage{Dir: cfg.Storage.DB.Dir},
		Workers: KitWorkers{
			SyncInterval:      cfg.Workers.SyncInterval,
			TransactionsLimit: cfg.Workers.TransactionsLimit,
		},
		Server: KitServer{HTTPAddress: cfg.Server.HTTPAddress},
		Events: KitEvents{NATSURL: cfg.Events.NATSURL},
	}
	kitCfg.applyDefaults()

	return kitCfg, kitCfg.validate()
}

func (cfg *KitConfig) applyDefaults() {
	if cfg.Adapter.HorizonURL == "" {
		cfg.Adapter.HorizonURL = cfg.App.Network.HorizonURL()
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.ProbeInterval <= 0 {
		cfg.Adapter.ProbeInterval = DefaultProbeInterval
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.TransactionsLimit <= 0 {
		cfg.Workers.TransactionsLimit = DefaultTransactionsLimit
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = DefaultStorageDir
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
}
