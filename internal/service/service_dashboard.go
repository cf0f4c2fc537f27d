package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type dashboardService struct {
	backend adapter.AdminAPI
}

func NewDashboardService(backend adapter.AdminAPI) DashboardService {
	return &dashboardService{backend: backend}
}

func (d *dashboardService) Stats(ctx context.Context) models.DashboardStats {
	var (
		stats  models.DashboardStats
		g      errgroup.Group
		unread = false
	)

	// every function returns nil so one failing count never cancels the rest
	count := func(name string, dst *int, fetch func() (int, error)) {
		g.Go(func() error {
			n, err := fetch()
			if err != nil {
				logger.FromContext(ctx).Debug().Err(err).Str("func", "dashboardService.Stats").Str("metric", name).Msg("count query failed")
				return nil
			}
			*dst = n
			return nil
		})
	}

	count("projects", &stats.Projects, func() (int, error) {
		page, err := d.backend.ListProjects(ctx, models.ProjectQuery{Page: 0, Size: 1})
		return page.TotalElements, err
	})
	count("services", &stats.Services, func() (int, error) {
		items, err := d.backend.ListServices(ctx)
		return len(items), err
	})
	count("skills", &stats.Skills, func() (int, error) {
		items, err := d.backend.ListSkills(ctx)
		return len(items), err
	})
	count("testimonials", &stats.Testimonials, func() (int, error) {
		items, err := d.backend.ListTestimonials(ctx)
		return len(items), err
	})
	count("videos", &stats.Videos, func() (int, error) {
		page, err := d.backend.ListVideos(ctx, models.VideoQuery{Page: 0, Size: 1})
		return page.TotalElements, err
	})
	count("unread messages", &stats.UnreadMessages, func() (int, error) {
		page, err := d.backend.ListMessages(ctx, models.MessageQuery{Page: 0, Size: 1, Read: &unread})
		return page.TotalElements, err
	})

	_ = g.Wait()
	return stats
}
