package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
)

// ---- trace id ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses the caller's trace id", incoming: "my-trace"},
		{name: "generates a uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{ids: utils.NewUUIDGenerator(), logger: logger.Nop()}

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = utils.GetTraceIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			assert.Equal(t, got, seen)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			} else {
				id, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			}
		})
	}
}

// ---- logging ----

func TestWithLogging_RecordsResponse(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short"))
	})

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/contact"`)
	assert.Contains(t, out, `"route":"/contact"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":5`)
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Write([]byte("ab"))
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 2, rw.size)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ---- gzip ----

func TestWithGZip(t *testing.T) {
	const payload = "hello, portfolio"
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "deflate, gzip")
		rec := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rec, req)

		require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		data, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, payload, string(data))
	})

	t.Run("plain otherwise", func(t *testing.T) {
		rec := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, payload, rec.Body.String())
	})

	t.Run("no body statuses stay plain", func(t *testing.T) {
		noContent := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(noContent).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	})
}

func TestSafeReturn(t *testing.T) {
	assert.Equal(t, "/?video=Java", safeReturn("/?video=Java"))
	assert.Equal(t, "/", safeReturn(""))
	assert.Equal(t, "/", safeReturn("//evil.example"))
	assert.Equal(t, "/", safeReturn(`/\evil.example`))
	assert.Equal(t, "/", safeReturn("javascript:alert(1)"))
}
