package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testSite struct {
	handler *Handler
	router  http.Handler
	landing *mock.MockLandingService
	contact *mock.MockContactService
	appInfo *mock.MockAppInfoService
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := &testSite{
		landing: mock.NewMockLandingService(ctrl),
		contact: mock.NewMockContactService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	s.handler = NewHandler(&service.SiteServices{
		Landing: s.landing,
		Contact: s.contact,
		AppInfo: s.appInfo,
		Rotator: service.NewRotator(),
	}, Settings{
		AllowedOrigins:   []string{"https://portfolio.example"},
		RotationInterval: 5 * time.Second,
	}, logger.Nop())
	s.router = s.handler.Init()

	return s
}

func (s *testSite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func testLanding() models.Landing {
	content := models.DefaultContent()
	content.BrandName = "TESTBRAND"
	content.AboutDescription = "I build **fast** things <script>alert(1)</script>"

	return models.Landing{
		Content:  content,
		Services: []models.Service{{ID: 1, Title: "Web", Icon: "</>"}},
		Projects: []models.Project{
			{ID: 1, Title: "GoProject", TechTags: []string{"Go"}},
			{ID: 2, Title: "ReactProject", TechTags: []string{"React"}},
		},
		Skills: []models.Skill{{Category: "Backend", Name: "Go"}},
		Testimonials: []models.Testimonial{
			{ID: 1, Name: "Ann", Quote: "First quote"},
			{ID: 2, Name: "Bob", Quote: "Second quote"},
		},
		Videos: []models.Video{
			{ID: 7, Title: "Deep Dive", Category: "Java", VideoURL: "https://youtu.be/abc123"},
			{ID: 8, Title: "UI Tour", Category: "UI/UX", VideoURL: "https://vimeo.com/42"},
		},
		Documents: []models.DocumentEntry{
			{Key: "cv", Title: "CV", FileName: "cv.pdf", ReadURL: "https://api.example/cv", DownloadURL: "https://api.example/cv?download=true"},
			{Key: "doc-3", Title: "Notes", FileName: "notes.docx", ReadURL: "https://api.example/docs/3"},
		},
	}
}

// ─────────────────────────────────────────────
// Landing
// ─────────────────────────────────────────────

func TestLanding_RendersSections(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())

	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "TESTBRAND")
	assert.Contains(t, body, "<strong>fast</strong>")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "GoProject")
	assert.Contains(t, body, "ReactProject")
	assert.Contains(t, body, "First quote")
	assert.Contains(t, body, `class="theme-dark"`)
	assert.NotContains(t, body, `role="dialog"`)
}

func TestLanding_ProjectFilter(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding()).Times(2)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/?project=Go", nil))
	assert.Contains(t, rec.Body.String(), "GoProject")
	assert.NotContains(t, rec.Body.String(), "ReactProject")

	// unknown filters fall back to All
	rec = s.do(httptest.NewRequest(http.MethodGet, "/?project=Cobol", nil))
	assert.Contains(t, rec.Body.String(), "ReactProject")
}

func TestLanding_VideoFilterIgnoresCase(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())

	rec := s.do(httptest.NewRequest(http.MethodGet, "/?video=Java", nil))

	assert.Contains(t, rec.Body.String(), "Deep Dive")
	assert.NotContains(t, rec.Body.String(), "UI Tour")
}

func TestLanding_VideoModal(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		referer  string
		wantBack bool
	}{
		{name: "opened from a card", target: "/?watch=7&from=card", referer: "http://example.com/?video=All", wantBack: true},
		{name: "loaded directly", target: "/?watch=7", wantBack: false},
		{name: "copied card link in a fresh tab", target: "/?watch=7&from=card", wantBack: false},
		{name: "card link followed from another site", target: "/?watch=7&from=card", referer: "https://elsewhere.example/", wantBack: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSite(t)
			s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			body := s.do(req).Body.String()

			assert.Contains(t, body, `role="dialog"`)
			assert.Contains(t, body, "https://www.youtube.com/embed/abc123")
			assert.Equal(t, tt.wantBack, strings.Contains(body, "data-close data-back"))
		})
	}
}

func TestLanding_UnknownVideoHasNoModal(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())

	body := s.do(httptest.NewRequest(http.MethodGet, "/?watch=99", nil)).Body.String()

	assert.NotContains(t, body, `role="dialog"`)
}

func TestLanding_DocumentModal(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding()).Times(2)

	pdf := s.do(httptest.NewRequest(http.MethodGet, "/?doc=cv", nil)).Body.String()
	assert.Contains(t, pdf, `src="https://api.example/cv"`)
	assert.Contains(t, pdf, downloadOffText)

	docx := s.do(httptest.NewRequest(http.MethodGet, "/?doc=doc-3", nil)).Body.String()
	assert.Contains(t, docx, "Preview works best for PDF files")
}

func TestLanding_SlateThemeCookie(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: themeCookie, Value: "slate"})

	assert.Contains(t, s.do(req).Body.String(), `class="theme-slate"`)
}

func TestTestimonialPartial_FollowsRotator(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding()).Times(2)
	// the warmup worker owns the length
	s.handler.services.Rotator.SetLen(2)

	first := s.do(httptest.NewRequest(http.MethodGet, "/partials/testimonial", nil)).Body.String()
	assert.Contains(t, first, "First quote")

	s.handler.services.Rotator.Advance()

	second := s.do(httptest.NewRequest(http.MethodGet, "/partials/testimonial", nil)).Body.String()
	assert.Contains(t, second, "Second quote")
	assert.NotContains(t, second, "<html")
}

func TestTestimonials_EmptyListShowsNoCard(t *testing.T) {
	s := newTestSite(t)
	landing := testLanding()
	landing.Testimonials = []models.Testimonial{}
	s.landing.EXPECT().Load(gomock.Any()).Return(landing).Times(2)

	page := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, page.Code)
	assert.NotContains(t, page.Body.String(), `id="testimonial-card"`)
	assert.NotContains(t, page.Body.String(), "blockquote")

	partial := s.do(httptest.NewRequest(http.MethodGet, "/partials/testimonial", nil))
	assert.Equal(t, http.StatusNoContent, partial.Code)
	assert.Empty(t, partial.Body.String())
}

func TestTestimonials_HandlersDoNotResizeRotator(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())

	rotator := s.handler.services.Rotator
	rotator.SetLen(5)
	rotator.Advance()
	rotator.Advance()
	rotator.Advance()

	body := s.do(httptest.NewRequest(http.MethodGet, "/partials/testimonial", nil)).Body.String()

	// index 3 wraps onto the two loaded testimonials
	assert.Contains(t, body, "Second quote")
	assert.Equal(t, 3, rotator.Index())
}

// ─────────────────────────────────────────────
// JSON, version, health
// ─────────────────────────────────────────────

func TestLandingJSON_CORS(t *testing.T) {
	s := newTestSite(t)
	s.landing.EXPECT().Load(gomock.Any()).Return(testLanding())

	req := httptest.NewRequest(http.MethodGet, "/api/site/landing", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	rec := s.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://portfolio.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"brandName":"TESTBRAND"`)
}

func TestLandingJSON_Preflight(t *testing.T) {
	s := newTestSite(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/site/landing", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := s.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://portfolio.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetVersion(t *testing.T) {
	s := newTestSite(t)
	s.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")
	s.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.4.0", "", "abc"))

	rec := s.do(httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"appVersion":"1.4.0","build":{"version":"1.4.0","date":"N/A","commit":"abc"}}`,
		rec.Body.String())
}

func TestHealthz(t *testing.T) {
	s := newTestSite(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	s := newTestSite(t)

	rec := s.do(httptest.NewRequest(http.MethodDelete, "/healthz", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
