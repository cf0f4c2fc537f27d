package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
)

// warmupWorker reloads the landing data once at start and then on every
// interval, so visitors hit a warm cache and the rotator knows how many
// testimonials there are before the first page view.
type warmupWorker struct {
	landing  service.LandingService
	rotator  *service.Rotator
	interval time.Duration
	logger   *logger.Logger
}

func NewWarmupWorker(landing service.LandingService, rotator *service.Rotator, interval time.Duration, logger *logger.Logger) Worker {
	return &warmupWorker{landing: landing, rotator: rotator, interval: interval, logger: logger}
}

func (w *warmupWorker) Run(ctx context.Context) {
	w.refresh(ctx)
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *warmupWorker) refresh(ctx context.Context) {
	landing := w.landing.Load(ctx)
	w.rotator.SetLen(len(landing.Testimonials))
	w.logger.Debug().Str("func", "warmupWorker.refresh").Int("testimonials", len(landing.Testimonials)).Msg("landing refreshed")
}
