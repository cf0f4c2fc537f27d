// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Env != EnvProduction && cfg.App.Env != EnvDevelopment {
		return fmt.Errorf("%w: unknown APP_ENV %q", ErrInvalidAppConfigs, cfg.App.Env)
	}
	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return ErrInvalidAdapterConfigs
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return fmt.Errorf("%w: base url %q must start with http:// or https://", ErrInvalidAdapterConfigs, raw)
	}
	return nil
}

func (cfg *AdminConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if err := validateBaseURL(cfg.Adapter.BaseURL); err != nil {
		return err
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *SiteConfig) validate() error {
	if err := validateBaseURL(cfg.Adapter.BaseURL); err != nil {
		return err
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Site.Address == "" || cfg.Site.CacheTTL < 0 || cfg.Site.RotationInterval <= 0 {
		return ErrInvalidSiteConfigs
	}

	return nil
}
