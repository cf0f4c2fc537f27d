package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type authService struct {
	backend adapter.AdminAPI
	session SessionService
}

// NewAuthService returns an [AuthService] that logs in through backend and
// keeps the result in session.
func NewAuthService(backend adapter.AdminAPI, session SessionService) AuthService {
	return &authService{backend: backend, session: session}
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	resp, err := a.backend.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("username", req.Username).Msg("login failed")
		return models.Session{}, err
	}
	if resp.Token == "" {
		return models.Session{}, ErrEmptyToken
	}

	username := resp.Username
	if username == "" {
		username = req.Username
	}

	if err = a.session.SetSession(ctx, resp.Token, username); err != nil {
		return models.Session{}, fmt.Errorf("store session: %w", err)
	}

	return models.Session{Token: resp.Token, Username: username}, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.ClearSession(ctx)
}
