package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

var sessionNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestSessionSvc(t *testing.T) (*sessionService, *mock.MockPreferenceRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferenceRepository(ctrl)

	svc := NewSessionService(prefs).(*sessionService)
	svc.now = func() time.Time { return sessionNow }
	return svc, prefs
}

func tokenWithExp(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// ── SetSession / ClearSession ───────────────────────────────────────────────

func TestSessionService_SetSession(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		prefs.EXPECT().Set(ctx, TokenKey, "tok").Return(nil),
		prefs.EXPECT().Set(ctx, UsernameKey, "admin").Return(nil),
	)

	require.NoError(t, svc.SetSession(ctx, "tok", "admin"))
}

func TestSessionService_SetSession_StoreError(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()
	storeErr := errors.New("disk full")

	prefs.EXPECT().Set(ctx, TokenKey, "tok").Return(storeErr)

	err := svc.SetSession(ctx, "tok", "admin")
	assert.ErrorIs(t, err, storeErr)
}

func TestSessionService_ClearSession(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()

	prefs.EXPECT().Delete(ctx, TokenKey, UsernameKey).Return(nil)

	assert.NoError(t, svc.ClearSession(ctx))
}

// ── Token ───────────────────────────────────────────────────────────────────

func TestSessionService_Token_Valid(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()
	token := tokenWithExp(t, sessionNow.Add(time.Hour))

	prefs.EXPECT().Get(ctx, TokenKey).Return(token, nil)

	assert.Equal(t, token, svc.Token(ctx))
}

func TestSessionService_Token_ExpiredClearsBothKeys(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()
	token := tokenWithExp(t, sessionNow.Add(-time.Minute))

	gomock.InOrder(
		prefs.EXPECT().Get(ctx, TokenKey).Return(token, nil),
		prefs.EXPECT().Delete(ctx, TokenKey, UsernameKey).Return(nil),
	)

	assert.Empty(t, svc.Token(ctx))
}

func TestSessionService_Token_FailsOpen(t *testing.T) {
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin"}).SignedString([]byte("k"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"malformed": "not-a-jwt",
		"bad json":  "aGVhZGVy.bm90LWpzb24.c2ln",
		"no exp":    noExp,
	} {
		t.Run(name, func(t *testing.T) {
			svc, prefs := newTestSessionSvc(t)
			ctx := context.Background()

			// Arrange: no Delete expected, the token must be kept
			prefs.EXPECT().Get(ctx, TokenKey).Return(token, nil)

			// Act + Assert
			assert.Equal(t, token, svc.Token(ctx))
		})
	}
}

func TestSessionService_Token_Missing(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()

	prefs.EXPECT().Get(ctx, TokenKey).Return("", store.ErrPreferenceNotFound)

	assert.Empty(t, svc.Token(ctx))
}

func TestSessionService_IsAuthenticated(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		prefs.EXPECT().Get(ctx, TokenKey).Return(tokenWithExp(t, sessionNow.Add(time.Hour)), nil),
		prefs.EXPECT().Get(ctx, TokenKey).Return("", store.ErrPreferenceNotFound),
	)

	assert.True(t, svc.IsAuthenticated(ctx))
	assert.False(t, svc.IsAuthenticated(ctx))
}

func TestSessionService_Username(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()

	prefs.EXPECT().Get(ctx, UsernameKey).Return("kelvin", nil)

	assert.Equal(t, "kelvin", svc.Username(ctx))
}

// ── Theme ───────────────────────────────────────────────────────────────────

func TestSessionService_Theme_DefaultsToDark(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()

	prefs.EXPECT().Get(ctx, ThemeKey).Return("", store.ErrPreferenceNotFound)

	assert.Equal(t, models.ThemeDark, svc.Theme(ctx))
}

func TestSessionService_ToggleTheme(t *testing.T) {
	svc, prefs := newTestSessionSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		prefs.EXPECT().Get(ctx, ThemeKey).Return("dark", nil),
		prefs.EXPECT().Set(ctx, ThemeKey, "slate").Return(nil),
	)

	theme, err := svc.ToggleTheme(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.ThemeSlate, theme)
}
