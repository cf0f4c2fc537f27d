// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest carries admin credentials to POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the backend answer to a successful login.
type AuthResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType,omitempty"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// Session is the client-side authentication state kept in local storage.
type Session struct {
	Token    string
	Username string
}

// Theme is the persisted colour theme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeSlate Theme = "slate"
)

// ParseTheme maps a stored value to a Theme; anything unknown is dark.
func ParseTheme(v string) Theme {
	if Theme(v) == ThemeSlate {
		return ThemeSlate
	}
	return ThemeDark
}

// Toggle switches between dark and slate.
func (t Theme) Toggle() Theme {
	if t == ThemeSlate {
		return ThemeDark
	}
	return ThemeSlate
}
