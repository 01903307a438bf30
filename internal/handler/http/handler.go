package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/internal/service"
)

// AuthSettings enable bearer authentication of the send route when SignKey
// is set.
type AuthSettings struct {
	SignKey string
	Issuer  string
}

type Handler struct {
	kit      KitService
	appInfo  service.AppInfoService
	auth     AuthSettings
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler builds the API of kit. A nil gatherer serves the default
// prometheus registry.
func NewHandler(kit KitService, appInfo service.AppInfoService, auth AuthSettings, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		kit:      kit,
		appInfo:  appInfo,
		auth:     auth,
		gatherer: gatherer,
		logger:   logger,
	}
}
