package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestAppInfoService_ConfiguredVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123")

	svc := NewAppInfoService("2.0.0", build, logger.Nop())

	assert.Equal(t, "2.0.0", svc.GetAppVersion(context.Background()))
	assert.Equal(t, build, svc.GetBuildInfo(context.Background()))
}

func TestAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	build := models.NewAppBuildInfo("v1.2.0", "", "")

	svc := NewAppInfoService("", build, logger.Nop())

	assert.Equal(t, "v1.2.0", svc.GetAppVersion(context.Background()))
	assert.Equal(t, "N/A", svc.GetBuildInfo(context.Background()).BuildDate())
}

func TestAppInfoService_NothingKnown(t *testing.T) {
	svc := NewAppInfoService("", models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}
