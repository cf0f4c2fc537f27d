// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

// Preference keys of the session and the theme.
const (
	TokenKey    = "kellyflo_admin_token"
	UsernameKey = "kellyflo_admin_username"
	ThemeKey    = "kellyflo_theme"
)

type sessionService struct {
	prefs store.PreferenceRepository
	now   func() time.Time
}

// NewSessionService returns a [SessionService] backed by prefs.
func NewSessionService(prefs store.PreferenceRepository) SessionService {
	return &sessionService{prefs: prefs, now: time.Now}
}

func (s *sessionService) SetSession(ctx context.Context, token, username string) error {
	log := logger.FromContext(ctx)

	if err := s.prefs.Set(ctx, TokenKey, token); err != nil {
		log.Err(err).Str("func", "sessionService.SetSession").Msg("failed to store token")
		return err
	}
	if err := s.prefs.Set(ctx, UsernameKey, username); err != nil {
		log.Err(err).Str("func", "sessionService.SetSession").Msg("failed to store username")
		return err
	}

	return nil
}

func (s *sessionService) ClearSession(ctx context.Context) error {
	if err := s.prefs.Delete(ctx, TokenKey, UsernameKey); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.ClearSession").Msg("failed to clear session")
		return err
	}
	return nil
}

func (s *sessionService) Token(ctx context.Context) string {
	token := s.read(ctx, TokenKey)
	if token == "" {
		return ""
	}

	if utils.TokenExpired(token, s.now()) {
		logger.FromContext(ctx).Debug().Str("func", "sessionService.Token").Msg("stored token expired, clearing session")
		_ = s.ClearSession(ctx)
		return ""
	}

	return token
}

func (s *sessionService) Username(ctx context.Context) string {
	return s.read(ctx, UsernameKey)
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

func (s *sessionService) Theme(ctx context.Context) models.Theme {
	return models.ParseTheme(s.read(ctx, ThemeKey))
}

func (s *sessionService) ToggleTheme(ctx context.Context) (models.Theme, error) {
	next := s.Theme(ctx).Toggle()
	if err := s.prefs.Set(ctx, ThemeKey, string(next)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.ToggleTheme").Msg("failed to store theme")
		return s.Theme(ctx), err
	}
	return next, nil
}

// read returns the stored value or "" when the key is missing or the store
// fails.
func (s *sessionService) read(ctx context.Context, key string) string {
	value, err := s.prefs.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrPreferenceNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "sessionService.read").Str("key", key).Msg("failed to read preference")
		}
		return ""
	}
	return value
}
