package service

import (
	"context"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService builds the service from linker-injected build metadata.
// version overrides the build version when set.
func NewAppInfoService(build models.AppBuildInfo, version string, logger *logger.Logger) (AppInfoService, error) {
	info := build.Info(version)
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("func", "NewAppInfoService").Str("version", info.Version).Msg("app info loaded")
	return &appInfoService{info: info, logger: logger}, nil
}

func (s *appInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return s.info
}
