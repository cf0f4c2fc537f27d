package http

import (
	"net/http"
	"strings"
)

// toggleTheme flips the theme cookie and redirects back to the page the
// toggle was pressed on.
func (h *Handler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	next := themeFromRequest(r).Toggle()

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    string(next),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, safeReturn(r.PostFormValue("return")), http.StatusSeeOther)
}

// safeReturn accepts only local absolute paths.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
