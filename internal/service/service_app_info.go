package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns an [AppInfoService]. An empty version falls back
// to buildInfo's version.
func NewAppInfoService(version string, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{
		appVersion: version,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
