package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PreferenceRepository is a small persistent key-value store. The admin
// console keeps its session token, username and theme in it.
type PreferenceRepository interface {
	// Get returns the value stored under key or [ErrPreferenceNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes every given key. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
