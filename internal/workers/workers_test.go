// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

// countingWorker records how many times Run was called and blocks until ctx
// is done.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_StartsAllAndWaits(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	default:
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not block or panic without workers
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

func TestRotationWorker_Advances(t *testing.T) {
	rotator := service.NewRotator()
	rotator.SetLen(3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go NewRotationWorker(rotator, 5*time.Millisecond, logger.Nop()).Run(ctx)

	assert.Eventually(t, func() bool { return rotator.Index() != 0 }, time.Second, time.Millisecond)
}

func TestRotationWorker_NonPositiveIntervalReturns(t *testing.T) {
	done := make(chan struct{})
	go func() {
		NewRotationWorker(service.NewRotator(), 0, logger.Nop()).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker kept running with a zero interval")
	}
}

func TestWarmupWorker_RefreshesRotatorLength(t *testing.T) {
	landing := mock.NewMockLandingService(gomock.NewController(t))
	rotator := service.NewRotator()

	landing.EXPECT().Load(gomock.Any()).Return(models.Landing{
		Testimonials: make([]models.Testimonial, 2),
	}).MinTimes(1)

	// a zero interval refreshes once and returns
	NewWarmupWorker(landing, rotator, 0, logger.Nop()).Run(context.Background())

	assert.Equal(t, 1, rotator.Advance())
}
