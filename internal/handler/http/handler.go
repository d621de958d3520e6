package http

import (
	"github.com/MKhiriev/go-kobo-sync/internal/config"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// publicURL overrides the request-derived base of download links.
	publicURL string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}
}
