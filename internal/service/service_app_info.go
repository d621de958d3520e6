package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService describes the running binary. A build version injected
// at link time wins over the configured one.
func NewAppInfoService(cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	info := models.AppInfo{
		Version:         cfg.App.Version,
		StorageDriver:   cfg.Storage.DB.Driver,
		UpstreamEnabled: !cfg.Adapter.Disabled && strings.TrimSpace(cfg.Adapter.UpstreamURL) != "",
	}
	if build.Known(build.BuildVersion()) {
		info.Version = build.BuildVersion()
	}
	if build.Known(build.BuildDate()) {
		info.BuildDate = build.BuildDate()
	}
	if build.Known(build.BuildCommit()) {
		info.BuildCommit = build.BuildCommit()
	}

	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
