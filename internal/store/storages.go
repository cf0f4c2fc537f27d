package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
)

// AdminStorages groups the local repositories of the admin console.
type AdminStorages struct {
	// Preferences persists session and theme values between runs.
	Preferences PreferenceRepository

	db *DB
}

// NewAdminStorages opens the SQLite file named in cfg, applies migrations and
// builds the repositories.
func NewAdminStorages(ctx context.Context, cfg config.AdminStorage, logger *logger.Logger) (*AdminStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &AdminStorages{
		Preferences: NewPreferenceRepository(db),
		db:          db,
	}, nil
}

// Close releases the database handle.
func (s *AdminStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
