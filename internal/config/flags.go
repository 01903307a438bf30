package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a local API address in format [host]:[port]
//	-n network: mainnet or testnet
//	-w wallet id
//	-m mnemonic
//	-account-index SEP-0005 account index
//	-asset-code tracked asset code
//	-asset-issuer tracked asset issuer
//	-horizon-url Horizon endpoint override
//	-d database directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-sync-interval poll interval (e.g., "15s")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-nats-url NATS url for kit events
//	-print-token print an API token for the given subject and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var network, walletID, mnemonic string
	var accountIndex uint
	var assetCode, assetIssuer string
	var horizonURL string
	var dbDir string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var syncInterval time.Duration
	var requestTimeout time.Duration
	var natsURL string
	var printToken string

	fs := flag.NewFlagSet("stellarkit", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&network, "n", "", "Network: mainnet or testnet")
	fs.StringVar(&walletID, "w", "", "Wallet id")
	fs.StringVar(&mnemonic, "m", "", "BIP-39 mnemonic")
	fs.UintVar(&accountIndex, "account-index", 0, "SEP-0005 account index")
	fs.StringVar(&assetCode, "asset-code", "", "Tracked asset code")
	fs.StringVar(&assetIssuer, "asset-issuer", "", "Tracked asset issuer")
	fs.StringVar(&horizonURL, "horizon-url", "", "Horizon URL")
	fs.StringVar(&dbDir, "d", "", "Database directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 15s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&natsURL, "nats-url", "", "NATS url")
	fs.StringVar(&printToken, "print-token", "", "Print an API token for this subject and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Network:      network,
			WalletID:     walletID,
			Mnemonic:     mnemonic,
			AccountIndex: uint32(accountIndex),
			AssetCode:    assetCode,
			AssetIssuer:  assetIssuer,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			PrintToken:   printToken,
		},
		Storage: Storage{
			DB: DB{
				Dir: dbDir,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			HorizonURL:     horizonURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Events:       Events{NATSURL: natsURL},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
