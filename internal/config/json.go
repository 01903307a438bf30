package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Network      string `json:"network"`
		WalletID     string `json:"wallet_id"`
		Mnemonic     string `json:"mnemonic"`
		Passphrase   string `json:"passphrase"`
		AccountIndex uint32 `json:"account_index"`
		AssetCode    string `json:"asset_code"`
		AssetIssuer  string `json:"asset_issuer"`
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Dir string `json:"dir"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Adapter struct {
		HorizonURL     string   `json:"horizon_url"`
		RequestTimeout Duration `json:"request_timeout"`
		ProbeInterval  Duration `json:"probe_interval"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval      Duration `json:"sync_interval"`
		TransactionsLimit int      `json:"transactions_limit"`
	} `json:"workers,omitempty"`

	Events struct {
		NATSURL string `json:"nats_url"`
	} `json:"events,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Network:      jsonCfg.App.Network,
			WalletID:     jsonCfg.App.WalletID,
			Mnemonic:     jsonCfg.App.Mnemonic,
			Passphrase:   jsonCfg.App.Passphrase,
			AccountIndex: jsonCfg.App.AccountIndex,
			AssetCode:    jsonCfg.App.AssetCode,
			AssetIssuer:  jsonCfg.App.AssetIssuer,
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			Version:      jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Dir: jsonCfg.Storage.DB.Dir,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Adapter: Adapter{
			HorizonURL:     jsonCfg.Adapter.HorizonURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			ProbeInterval:  time.Duration(jsonCfg.Adapter.ProbeInterval),
		},
		Workers: Workers{
			SyncInterval:      time.Duration(jsonCfg.Workers.SyncInterval),
			TransactionsLimit: jsonCfg.Workers.TransactionsLimit,
		},
		Events: Events{
			NATSURL: jsonCfg.Events.NATSURL,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
