package main

import (
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/config"
	handler "github.com/MKhiriev/go-portfolio/internal/handler/http"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/server"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/workers"
	"github.com/MKhiriev/go-portfolio/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("portfolio-site")
	cfg, err := config.GetSiteConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// the site never authenticates, so the adapter gets no token source
	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	services := service.NewSiteServices(backend, *cfg, build, log)

	h := handler.NewHandler(services, handler.Settings{
		AllowedOrigins:   cfg.Site.AllowedOrigins,
		RotationInterval: cfg.Site.RotationInterval,
	}, log)

	bg := workers.NewWorkers(
		workers.NewWarmupWorker(services.Landing, services.Rotator, cfg.Site.CacheTTL, log),
		workers.NewRotationWorker(services.Rotator, cfg.Site.RotationInterval, log),
	)

	srv, err := server.NewServer(h.Init(), bg, cfg.Site, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
