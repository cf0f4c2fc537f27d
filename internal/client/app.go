package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/tui"
)

// App owns the admin console process: it runs the UI until the admin
// quits and releases the local storage afterwards.
type App struct {
	services *service.AdminServices
	ui       UI
	closer   interface{ Close() error }
	logger   *logger.Logger
}

// NewApp wires the UI to the services. closer, when not nil, is closed once
// Run returns.
func NewApp(services *service.AdminServices, ui UI, closer interface{ Close() error }, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("admin services are nil")
	}
	if ui == nil {
		return nil, errors.New("ui is nil")
	}
	return &App{services: services, ui: ui, closer: closer, logger: logger}, nil
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
// Quitting from the keyboard is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info().
		Str("version", a.services.AppInfo.GetAppVersion(ctx)).
		Msg("admin console started")

	defer func() {
		if a.closer == nil {
			return
		}
		if err := a.closer.Close(); err != nil {
			a.logger.Error().Err(err).Msg("closing local storage")
		}
	}()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("admin console stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("admin console interrupted")
		return nil
	default:
		return fmt.Errorf("run admin console: %w", err)
	}
}
