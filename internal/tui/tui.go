package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

// TUI runs the admin console on the terminal.
type TUI struct {
	services  *service.AdminServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.AdminServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Session == nil {
		return nil, errors.New("admin services are not configured")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run opens the console and blocks until the admin quits. Quitting with
// ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	root := NewRootModel(ctx, t.services, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
