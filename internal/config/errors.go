package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend client settings
	// (for example, a base URL without scheme or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid admin storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown APP_ENV).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSiteConfigs indicates invalid public site settings
	// (for example, an empty listen address or zero rotation interval).
	ErrInvalidSiteConfigs = errors.New("invalid site configuration")
)
