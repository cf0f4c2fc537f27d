package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
)

// rotationWorker advances the shared testimonial index on every tick. The
// rotator itself ignores ticks while fewer than two testimonials are known.
type rotationWorker struct {
	rotator  *service.Rotator
	interval time.Duration
	logger   *logger.Logger
}

func NewRotationWorker(rotator *service.Rotator, interval time.Duration, logger *logger.Logger) Worker {
	return &rotationWorker{rotator: rotator, interval: interval, logger: logger}
}

func (r *rotationWorker) Run(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Warn().Str("func", "rotationWorker.Run").Msg("rotation disabled: non-positive interval")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.rotator.Advance()
		}
	}
}
