package service

import (
	"github.com/MKhiriev/go-kobo-sync/internal/adapter"
	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/models"
)

type Services struct {
	AuthService         AuthService
	AppInfoService      AppInfoService
	SettingsService     SettingsService
	SyncService         SyncService
	ReadingStateService ReadingStateService
	UpstreamProxy       adapter.UpstreamProxy
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, upstream adapter.UpstreamProxy, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(*cfg, build, logger)
	if err != nil {
		return nil, err
	}

	settingsService := NewSettingsService(storages.SettingsRepository, cfg.App.Sync, logger)

	syncService := NewSyncService(
		storages,
		NewSnapshotStore(storages, logger),
		NewDiffEngine(storages.SnapshotRepository, logger),
		NewEntitlementBuilder(storages.BookRepository, storages.ProgressRepository, logger),
		settingsService,
		upstream,
		logger,
	)

	readingStateService := NewReadingStateValidationService().
		Wrap(NewReadingStateService(storages, settingsService, logger))

	return &Services{
		AuthService:         NewAuthService(cfg.Auth, logger),
		AppInfoService:      appInfoService,
		SettingsService:     settingsService,
		SyncService:         syncService,
		ReadingStateService: readingStateService,
		UpstreamProxy:       upstream,
	}, nil
}
