package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portfolio/internal/logger"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPreferenceRepo(t *testing.T) (*preferenceRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &preferenceRepository{
		db:  &DB{DB: db, logger: logger.Nop()},
		now: func() time.Time { return fixedNow },
	}
	return repo, mock
}

func TestPreferenceRepository_Get(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM preferences WHERE key = ?")).
		WithArgs("kellyflo_theme").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("slate"))

	value, err := repo.Get(context.Background(), "kellyflo_theme")

	require.NoError(t, err)
	assert.Equal(t, "slate", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectQuery("SELECT value FROM preferences").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestPreferenceRepository_Get_QueryError(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectQuery("SELECT value FROM preferences").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.Get(context.Background(), "kellyflo_admin_token")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPreferenceRepository_Set(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO preferences (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE")).
		WithArgs("kellyflo_admin_username", "admin", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), "kellyflo_admin_username", "admin")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Set_Error(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectExec("INSERT INTO preferences").WillReturnError(errors.New("readonly database"))

	err := repo.Set(context.Background(), "k", "v")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestPreferenceRepository_Delete(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM preferences WHERE key IN (?,?)")).
		WithArgs("kellyflo_admin_token", "kellyflo_admin_username").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.Delete(context.Background(), "kellyflo_admin_token", "kellyflo_admin_username")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Delete_NoKeys(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	require.NoError(t, repo.Delete(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
