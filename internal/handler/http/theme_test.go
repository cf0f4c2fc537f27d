package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTheme(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		returnTo  string
		wantTheme string
		wantLoc   string
	}{
		{name: "dark to slate", wantTheme: "slate", returnTo: "/?project=Go", wantLoc: "/?project=Go"},
		{name: "slate to dark", current: "slate", wantTheme: "dark", returnTo: "/", wantLoc: "/"},
		{name: "unknown cookie counts as dark", current: "neon", wantTheme: "slate", wantLoc: "/"},
		{name: "external return is ignored", wantTheme: "slate", returnTo: "//evil.example", wantLoc: "/"},
		{name: "absolute url is ignored", wantTheme: "slate", returnTo: "https://evil.example", wantLoc: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSite(t)

			req := postForm("/theme", url.Values{"return": {tt.returnTo}})
			if tt.current != "" {
				req.AddCookie(&http.Cookie{Name: themeCookie, Value: tt.current})
			}
			rec := s.do(req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLoc, rec.Header().Get("Location"))

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, themeCookie, cookies[0].Name)
			assert.Equal(t, tt.wantTheme, cookies[0].Value)
			assert.Equal(t, "/", cookies[0].Path)
		})
	}
}
