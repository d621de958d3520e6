package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kobo-sync/internal/adapter"
	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/handler"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/server"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
	"github.com/MKhiriev/go-kobo-sync/internal/store"
	"github.com/MKhiriev/go-kobo-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("go-kobo-sync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Str("upstream", cfg.Adapter.UpstreamURL).
		Bool("upstream_disabled", cfg.Adapter.Disabled).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	upstream, err := adapter.NewUpstreamProxy(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream proxy")
	}

	services, err := service.NewServices(storages, cfg, buildInfo, upstream, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
