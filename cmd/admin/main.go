package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/client"
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/tui"
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

	// the terminal belongs to the console, logs go to a file
	log := logger.NewAdminLogger("portfolio-admin", "portfolio-admin.log")
	cfg, err := config.GetAdminConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewAdminStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	session := service.NewSessionService(storages.Preferences)

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	services := service.NewAdminServices(session, backend, cfg.App, build, log)

	ui, err := tui.New(services, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init admin app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("admin run error")
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
