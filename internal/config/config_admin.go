package config

import (
	"fmt"
	"time"
)

// AdminApp holds admin console application settings.
type AdminApp struct {
	// Env is the runtime environment name.
	Env string
	// Version is the application version.
	Version string
}

// BackendAdapter holds settings of the REST client shared by both binaries.
type BackendAdapter struct {
	// BaseURL is the resolved backend URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// AdminDB contains local database connection settings.
type AdminDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// AdminStorage groups admin storage backend settings.
type AdminStorage struct {
	DB AdminDB
}

// AdminConfig is the admin console configuration assembled from
// [StructuredConfig].
type AdminConfig struct {
	App     AdminApp
	Adapter BackendAdapter
	Storage AdminStorage
}

// GetAdminConfig builds and validates the admin console view of the merged
// structured configuration.
func GetAdminConfig() (*AdminConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	adminCfg := newAdminConfig(cfg)
	return adminCfg, adminCfg.validate()
}

func newAdminConfig(cfg *StructuredConfig) *AdminConfig {
	return &AdminConfig{
		App: AdminApp{
			Env:     cfg.App.Env,
			Version: cfg.App.Version,
		},
		Adapter: BackendAdapter{
			BaseURL:        cfg.ResolveAPIBaseURL(),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: AdminStorage{
			DB: AdminDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
