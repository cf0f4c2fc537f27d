package config

import (
	"fmt"
	"time"
)

// SiteApp holds public site application settings.
type SiteApp struct {
	Env     string
	Version string
}

// SiteServer holds the listener and refresh settings of the public site.
type SiteServer struct {
	// Address is the host:port the HTTP server binds.
	Address string
	// CacheTTL bounds reuse of successful backend responses.
	CacheTTL time.Duration
	// RotationInterval is the testimonial auto-advance period.
	RotationInterval time.Duration
	// AllowedOrigins feeds the CORS policy of the JSON endpoint.
	AllowedOrigins []string
}

// SiteConfig is the public site configuration assembled from
// [StructuredConfig].
type SiteConfig struct {
	App     SiteApp
	Adapter BackendAdapter
	Site    SiteServer
}

// GetSiteConfig builds and validates the public site view of the merged
// structured configuration.
func GetSiteConfig() (*SiteConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	siteCfg := newSiteConfig(cfg)
	return siteCfg, siteCfg.validate()
}

func newSiteConfig(cfg *StructuredConfig) *SiteConfig {
	return &SiteConfig{
		App: SiteApp{
			Env:     cfg.App.Env,
			Version: cfg.App.Version,
		},
		Adapter: BackendAdapter{
			BaseURL:        cfg.ResolveAPIBaseURL(),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Site: SiteServer{
			Address:          cfg.Site.Address,
			CacheTTL:         cfg.Site.CacheTTL,
			RotationInterval: cfg.Site.RotationInterval,
			AllowedOrigins:   cfg.Site.AllowedOrigins,
		},
	}
}
