package server

import (
	"context"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	mu sync.Mutex
	// stop cancels the run context; set while running.
	stop context.CancelFunc

	logger *logger.Logger
}

// NewServer prepares the site listener on cfg.Address. bg may be nil.
func NewServer(handler http.Handler, bg *workers.Workers, cfg config.SiteServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.Address == "" {
		return nil, errNoAddress
	}
	if handler == nil {
		return nil, errNoHandler
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg.Address, logger),
		workers:    bg,
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or Shutdown is
// called, then stops the listener and waits for the workers.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.mu.Lock()
	s.stop = stop
	s.mu.Unlock()

	workersDone := make(chan struct{})
	go func() {
		s.workers.Run(ctx)
		close(workersDone)
	}()

	serverDone := make(chan struct{})
	go func() {
		s.httpServer.RunServer()
		close(serverDone)
	}()

	select {
	case <-ctx.Done():
	case <-serverDone:
		// listener failed to start or stopped on its own
		stop()
	}

	s.httpServer.Shutdown()
	<-serverDone
	<-workersDone

	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		s.stop()
	}
}
