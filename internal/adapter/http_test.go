// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

type staticTokens string

func (s staticTokens) Token(context.Context) string { return string(s) }

func newTestAdapter(t *testing.T, serverURL string, tokens TokenSource) *httpBackendAdapter {
	t.Helper()
	cfg := config.BackendAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPBackendAdapter(cfg, tokens, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:8080/", want: "http://localhost:8080"},
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://kelvin-3.onrender.com", want: "https://kelvin-3.onrender.com"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── bearer interceptor ──────────────────────────────────────────────────────

func TestBearer_AttachedToAdminPathsOnly(t *testing.T) {
	seen := map[string]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.URL.Path] = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens("tok-1"))
	ctx := context.Background()

	_, err := a.ListServices(ctx)
	require.NoError(t, err)
	_, err = a.GetServices(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", seen["/api/admin/services"])
	assert.Empty(t, seen["/api/public/services"])
}

func TestBearer_OmittedWithoutToken(t *testing.T) {
	var header string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	for _, tokens := range []TokenSource{nil, staticTokens("")} {
		a := newTestAdapter(t, srv.URL, tokens)
		_, err := a.ListSkills(context.Background())
		require.NoError(t, err)
		assert.Empty(t, header)
	}
}

func TestTraceID_ForwardedFromContext(t *testing.T) {
	var header string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get(TraceIDHeader)
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)

	ctx := context.WithValue(context.Background(), utils.TraceIDCtxKey, "trace-42")
	_, err := a.GetSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, "trace-42", header)

	_, err = a.GetSkills(context.Background())
	require.NoError(t, err)
	assert.Empty(t, header)
}

func TestIsAdminPath(t *testing.T) {
	base := "http://localhost:8080"
	assert.True(t, isAdminPath(base, "/api/admin/projects/1/status"))
	assert.True(t, isAdminPath(base, base+"/api/admin/content"))
	assert.False(t, isAdminPath(base, "/api/public/content"))
	assert.False(t, isAdminPath(base, "/api/auth/login"))
	assert.False(t, isAdminPath(base, "/api/messages"))
}

// ── public ──────────────────────────────────────────────────────────────────

func TestGetContent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/public/content", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"brandName": "ACME", "resumeStoredName": "r.pdf"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	got, err := a.GetContent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ACME", got.BrandName)
	assert.Equal(t, "r.pdf", got.ResumeStoredName)
}

func TestSendMessage_PostsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/messages", r.URL.Path)

		var msg models.ContactMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, models.ContactMessage{Name: "N", Email: "n@x.io", Subject: "S", Body: "B"}, msg)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	err := a.SendMessage(context.Background(), models.ContactMessage{Name: "N", Email: "n@x.io", Subject: "S", Body: "B"})
	assert.NoError(t, err)
}

func TestPublicFileURLs(t *testing.T) {
	a := newTestAdapter(t, "http://api.test/", nil)

	assert.Equal(t, "http://api.test/api/public/content/file/resume?download=false", a.PublicFileURL(models.ContentFileResume, false))
	assert.Equal(t, "http://api.test/api/public/content/file/cv?download=true", a.PublicFileURL(models.ContentFileCV, true))
	assert.Equal(t, "http://api.test/api/public/content/documents/7/file?download=true", a.PublicBlogDocumentFileURL(7, true))
}

// ── admin ───────────────────────────────────────────────────────────────────

func TestListProjects_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/projects", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "8", q.Get("size"))
		assert.Equal(t, "demo", q.Get("search"))
		assert.Equal(t, "DRAFT", q.Get("status"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"content":       []map[string]any{{"id": 3, "title": "Demo", "status": "DRAFT"}},
			"totalPages":    2,
			"totalElements": 9,
			"number":        1,
			"size":          8,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens("t"))
	page, err := a.ListProjects(context.Background(), models.ProjectQuery{Page: 1, Size: 8, Search: " demo ", Status: models.ProjectDraft})

	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, models.ProjectDraft, page.Content[0].Status)
	assert.Equal(t, 9, page.TotalElements)
}

func TestListMessages_OmitsUnsetFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("search"))
		assert.False(t, q.Has("read"))
		assert.Equal(t, "0", q.Get("page"))
		writeJSON(t, w, http.StatusOK, map[string]any{"content": []any{}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens("t"))
	_, err := a.ListMessages(context.Background(), models.MessageQuery{Size: 10})
	assert.NoError(t, err)
}

func TestSetProjectStatus_UsesToggleEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/admin/projects/5/status", r.URL.Path)
		assert.Equal(t, "PUBLISHED", r.URL.Query().Get("status"))
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 5, "status": "PUBLISHED"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens("t"))
	got, err := a.SetProjectStatus(context.Background(), 5, models.ProjectPublished)

	require.NoError(t, err)
	assert.Equal(t, models.ProjectPublished, got.Status)
}

func TestToggleEndpoints(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path+"?"+r.URL.RawQuery)
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens("t"))
	ctx := context.Background()
	_, _ = a.SetProjectFeatured(ctx, 1, true)
	_, _ = a.SetVideoPublished(ctx, 2, false)
	_, _ = a.SetMessageRead(ctx, 3, true)

	assert.Equal(t, []string{
		"PATCH /api/admin/projects/1/featured?featured=true",
		"PATCH /api/admin/videos/2/published?published=false",
		"PATCH /api/admin/messages/3/read?read=true",
	}, calls)
}

func TestDeleteProject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/projects/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens("t"))
	assert.NoError(t, a.DeleteProject(context.Background(), 9))
}

func TestUploadContentFile_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/content/upload", r.URL.Path)
		assert.Equal(t, "resume", r.URL.Query().Get("type"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "cv.pdf", hdr.Filename)
		assert.Equal(t, "%PDF-1.7", string(data))

		writeJSON(t, w, http.StatusOK, map[string]any{"resumeStoredName": "stored.pdf"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens("t"))
	got, err := a.UploadContentFile(context.Background(), models.ContentFileResume, "cv.pdf", strings.NewReader("%PDF-1.7"))

	require.NoError(t, err)
	assert.Equal(t, "stored.pdf", got.ResumeStoredName)
}

func TestCreateBlogDocument_MultipartFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "true", r.FormValue("visible"))
		assert.Equal(t, "false", r.FormValue("downloadEnabled"))
		assert.Equal(t, "2", r.FormValue("displayOrder"))
		_, hasTitle := r.MultipartForm.Value["title"]
		assert.False(t, hasTitle)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 11, "originalName": "notes.docx"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticTokens("t"))
	doc, err := a.CreateBlogDocument(context.Background(), models.BlogDocumentUpload{
		FileName:     "notes.docx",
		File:         strings.NewReader("doc"),
		Visible:      true,
		DisplayOrder: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), doc.ID)
}

// ── errors ──────────────────────────────────────────────────────────────────

func TestErrors_MappedByStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, nil)
			_, err := a.GetProjects(context.Background())

			assert.ErrorIs(t, err, tt.want)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestFormatError_Precedence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/public/projects":
			writeJSON(t, w, http.StatusBadRequest, map[string]any{"message": "Title is required", "error": "Bad Request"})
		case "/api/public/videos":
			writeJSON(t, w, http.StatusConflict, map[string]any{"error": "Conflict"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	ctx := context.Background()

	_, err := a.GetProjects(ctx)
	assert.Equal(t, "Title is required", FormatError(err))

	_, err = a.GetVideos(ctx)
	assert.Equal(t, "Conflict", FormatError(err))

	_, err = a.GetSkills(ctx)
	assert.Equal(t, err.Error(), FormatError(err))
	assert.Contains(t, FormatError(err), "http 500")
}

func TestFormatError_Transport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	a := newTestAdapter(t, srv.URL, nil)
	srv.Close()

	_, err := a.GetContent(context.Background())

	require.Error(t, err)
	assert.Contains(t, FormatError(err), "GetContent request")
}

func TestFormatError_Nil(t *testing.T) {
	assert.Equal(t, GenericErrorMessage, FormatError(nil))
}
