package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-stellar-kit/internal/config"
	"github.com/MKhiriev/go-stellar-kit/internal/crypto"
	"github.com/MKhiriev/go-stellar-kit/internal/handler"
	httphandler "github.com/MKhiriev/go-stellar-kit/internal/handler/http"
	"github.com/MKhiriev/go-stellar-kit/internal/kit"
	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/metrics"
	"github.com/MKhiriev/go-stellar-kit/internal/server"
	"github.com/MKhiriev/go-stellar-kit/internal/service"
	"github.com/MKhiriev/go-stellar-kit/internal/store"
	"github.com/MKhiriev/go-stellar-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetKitConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("stellarkit").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewKitLogger("stellarkit", cfg.App.Network.String(), cfg.App.WalletID)

	if cfg.App.PrintToken != "" {
		auth := httphandler.AuthSettings{SignKey: cfg.App.TokenSignKey, Issuer: cfg.App.TokenIssuer}
		token, tErr := auth.IssueToken(cfg.App.PrintToken, config.DefaultTokenTTL)
		if tErr != nil {
			log.Fatal().Err(tErr).Msg("error issuing api token")
		}
		fmt.Println(token)
		return
	}

	printBuildInfo()

	keyPair, err := crypto.NewKeyChainService().KeyPair(cfg.App.Mnemonic, cfg.App.Passphrase, cfg.App.AccountIndex)
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving account keypair")
	}

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	kits := kit.NewRegistry(log, func(network models.Network, walletID string) (store.Storage, error) {
		return store.NewStorage(log.WithContext(context.Background()), cfg.Storage.Dir, network, walletID, log)
	})
	key := kit.Key{Network: cfg.App.Network, WalletID: cfg.App.WalletID, AssetCode: cfg.App.Asset.DisplayCode()}
	k, err := kits.Get(key, keyPair.Address(), func(opts ...kit.Option) (*kit.Kit, error) {
		return kit.NewKit(*cfg, keyPair, log, append(opts, kit.WithMetrics(m))...)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error starting kit")
	}
	defer func() {
		if err := kits.StopAll(); err != nil {
			log.Err(err).Msg("error stopping kits")
		}
	}()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	appInfo, err := service.NewAppInfoService(build, cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app info service")
	}

	handlers, err := handler.NewHandlers(k, appInfo, *cfg, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("account_id", k.AccountID()).Str("asset", key.AssetCode).Msg("kit is running")
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
