package http

import (
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
)

// Settings tunes the site handler.
type Settings struct {
	// AllowedOrigins may read /api/site/landing cross-origin.
	AllowedOrigins []string
	// RotationInterval is the polling period of the testimonial partial.
	RotationInterval time.Duration
}

type Handler struct {
	services *service.SiteServices
	settings Settings
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.SiteServices, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
