package http

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/MKhiriev/go-portfolio/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// markdownRenderer converts content text to HTML. Raw HTML in the source is
// omitted by goldmark's default renderer.
var markdownRenderer = goldmark.New()

var templates = template.Must(
	template.New("site").Funcs(template.FuncMap{
		"markdown": renderMarkdown,
		"deref":    deref,
		"level":    level,
		"inc":      func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html"),
)

func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// level returns the skill percentage, 0 when unset.
func level(l *int) int {
	if l == nil {
		return 0
	}
	return *l
}

// render executes the named template into a buffer first so a failing
// template never leaves a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.render").Str("template", name).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.Copy(w, &buf)
}
