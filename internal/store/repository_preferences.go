package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-portfolio/internal/logger"
)

const preferencesTable = "preferences"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type preferenceRepository struct {
	db  *DB
	now func() time.Time
}

// NewPreferenceRepository returns a [PreferenceRepository] backed by db.
func NewPreferenceRepository(db *DB) PreferenceRepository {
	return &preferenceRepository{db: db, now: time.Now}
}

func (p *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = p.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrPreferenceNotFound
		}
		log.Err(err).Str("func", "preferenceRepository.Get").Str("key", key).Msg("failed to read preference")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (p *preferenceRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, p.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "preferenceRepository.Set").Str("key", key).Msg("failed to write preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *preferenceRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Delete(preferencesTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "preferenceRepository.Delete").Strs("keys", keys).Msg("failed to delete preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
