package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

const cacheCleanupInterval = time.Minute

type landingService struct {
	backend adapter.PublicAPI
	// cache is nil when caching is disabled.
	cache  *cache.Cache
	logger *logger.Logger
}

// NewLandingService returns a [LandingService] that keeps successful
// backend responses for ttl. A ttl of zero or less disables caching.
func NewLandingService(backend adapter.PublicAPI, ttl time.Duration, logger *logger.Logger) LandingService {
	l := &landingService{backend: backend, logger: logger}
	if ttl > 0 {
		l.cache = cache.New(ttl, cacheCleanupInterval)
	}
	return l
}

func (l *landingService) Load(ctx context.Context) models.Landing {
	landing := models.Landing{
		Content:      models.DefaultContent(),
		Services:     FallbackServices(),
		Projects:     FallbackProjects(),
		Skills:       FallbackSkills(),
		Testimonials: FallbackTestimonials(),
		Videos:       FallbackVideos(),
	}
	var docs []models.BlogDocument

	// each fetch is independent: errors are handled in place and never
	// returned to the group
	var g errgroup.Group
	g.Go(func() error {
		if content, ok := fetchCached(ctx, l, "content", l.backend.GetContent); ok {
			landing.Content = models.DefaultContent().Overlay(content)
		}
		return nil
	})
	g.Go(func() error {
		if items, ok := fetchCached(ctx, l, "documents", l.backend.GetBlogDocuments); ok && items != nil {
			docs = items
		}
		return nil
	})
	g.Go(func() error {
		if items, ok := fetchCached(ctx, l, "services", l.backend.GetServices); ok && items != nil {
			landing.Services = items
		}
		return nil
	})
	g.Go(func() error {
		if items, ok := fetchCached(ctx, l, "projects", l.backend.GetProjects); ok && items != nil {
			landing.Projects = items
		}
		return nil
	})
	g.Go(func() error {
		if items, ok := fetchCached(ctx, l, "skills", l.backend.GetSkills); ok && items != nil {
			landing.Skills = items
		}
		return nil
	})
	g.Go(func() error {
		if items, ok := fetchCached(ctx, l, "testimonials", l.backend.GetTestimonials); ok && items != nil {
			landing.Testimonials = items
		}
		return nil
	})
	g.Go(func() error {
		if items, ok := fetchCached(ctx, l, "videos", l.backend.GetVideos); ok && items != nil {
			landing.Videos = items
		}
		return nil
	})
	_ = g.Wait()

	landing.Services = withServiceIcons(landing.Services)
	landing.Documents = MergeDocuments(landing.Content, docs, l.backend)

	return landing
}

// fetchCached returns the cached value under key or calls fetch and caches
// a successful result. Failures are logged and never cached.
func fetchCached[T any](ctx context.Context, l *landingService, key string, fetch func(context.Context) (T, error)) (T, bool) {
	if l.cache != nil {
		if v, ok := l.cache.Get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, true
			}
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		l.logger.Debug().Err(err).Str("func", "landingService.Load").Str("section", key).Msg("keeping fallback")
		var zero T
		return zero, false
	}

	if l.cache != nil {
		l.cache.Set(key, v, cache.DefaultExpiration)
	}
	return v, true
}
