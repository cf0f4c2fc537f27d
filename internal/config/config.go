// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Environment names accepted by APP_ENV.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Backend base URLs used when ADAPTER_API_BASE_URL is not set.
const (
	ProductionAPIBaseURL  = "https://kelvin-3.onrender.com"
	DevelopmentAPIBaseURL = "http://localhost:8080"
)

// Defaults applied by [StructuredConfig.applyDefaults] after all sources are
// merged.
const (
	DefaultRequestTimeout   = 15 * time.Second
	DefaultDBDSN            = "portfolio-admin.db"
	DefaultSiteAddress      = "localhost:8081"
	DefaultCacheTTL         = 30 * time.Second
	DefaultRotationInterval = 5 * time.Second
)

// StructuredConfig is the top-level configuration container shared by the
// admin console and the public site. It is populated by merging values from
// a .env file, environment variables, command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the runtime environment name and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend REST API location and client timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local preference database of the admin console.
	Storage Storage `envPrefix:"STORAGE_"`

	// Site holds the public site listener and refresh settings.
	Site Site `envPrefix:"SITE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Env selects the backend defaults: "production" or "development".
	// Env: APP_ENV
	Env string `env:"ENV"`

	// Version is the semantic version string of the running application.
	// Exposed via the site /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings of the outbound REST client.
type Adapter struct {
	// APIBaseURL overrides the environment-specific backend URL
	// (e.g. "https://api.example.com").
	// Env: ADAPTER_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// RequestTimeout bounds every backend call (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	// DB holds the SQLite preference store settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite file path (e.g. "portfolio-admin.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Site holds the public site server settings.
type Site struct {
	// Address is the TCP address the site listens on, in "host:port" format.
	// Env: SITE_ADDRESS
	Address string `env:"ADDRESS"`

	// CacheTTL is how long successful backend responses are reused.
	// Env: SITE_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`

	// RotationInterval is the testimonial auto-advance period.
	// Env: SITE_ROTATION_INTERVAL
	RotationInterval time.Duration `env:"ROTATION_INTERVAL"`

	// AllowedOrigins lists origins allowed to read /api/site/landing.
	// Env: SITE_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (earlier sources win for
// non-zero fields, later sources only fill gaps):
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1..3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		build()
}

// ResolveAPIBaseURL returns the backend base URL: the explicit override when
// set, otherwise the production or development default.
func (cfg *StructuredConfig) ResolveAPIBaseURL() string {
	if cfg.Adapter.APIBaseURL != "" {
		return cfg.Adapter.APIBaseURL
	}
	if cfg.App.Env == EnvProduction {
		return ProductionAPIBaseURL
	}
	return DevelopmentAPIBaseURL
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDevelopment
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDBDSN
	}
	if cfg.Site.Address == "" {
		cfg.Site.Address = DefaultSiteAddress
	}
	if cfg.Site.CacheTTL == 0 {
		cfg.Site.CacheTTL = DefaultCacheTTL
	}
	if cfg.Site.RotationInterval == 0 {
		cfg.Site.RotationInterval = DefaultRotationInterval
	}
}
