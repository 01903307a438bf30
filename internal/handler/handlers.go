package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-stellar-kit/internal/config"
	"github.com/MKhiriev/go-stellar-kit/internal/handler/http"
	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transports enabled in cfg.
func NewHandlers(kit http.KitService, appInfo service.AppInfoService, cfg config.KitConfig, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		auth := http.AuthSettings{SignKey: cfg.App.TokenSignKey, Issuer: cfg.App.TokenIssuer}
		handlers.HTTP = http.NewHandler(kit, appInfo, auth, gatherer, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
