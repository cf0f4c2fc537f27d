package adapter

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-portfolio/models"
)

const (
	adminProjectsPath     = "/api/admin/projects"
	adminServicesPath     = "/api/admin/services"
	adminSkillsPath       = "/api/admin/skills"
	adminTestimonialsPath = "/api/admin/testimonials"
	adminVideosPath       = "/api/admin/videos"
	adminMessagesPath     = "/api/admin/messages"
)

// ── projects ────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListProjects(ctx context.Context, q models.ProjectQuery) (models.Page[models.Project], error) {
	query := pageQuery(q.Page, q.Size, q.Search)
	if q.Status != "" {
		query.Set("status", string(q.Status))
	}
	return send[models.Page[models.Project]](ctx, h, http.MethodGet, "ListProjects", adminProjectsPath, nil, query)
}

func (h *httpBackendAdapter) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	return send[models.Project](ctx, h, http.MethodPost, "CreateProject", adminProjectsPath, project, nil)
}

func (h *httpBackendAdapter) UpdateProject(ctx context.Context, id int64, project models.Project) (models.Project, error) {
	return send[models.Project](ctx, h, http.MethodPut, "UpdateProject", idPath(adminProjectsPath, id), project, nil)
}

func (h *httpBackendAdapter) DeleteProject(ctx context.Context, id int64) error {
	return exec(ctx, h, http.MethodDelete, "DeleteProject", idPath(adminProjectsPath, id))
}

func (h *httpBackendAdapter) SetProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) (models.Project, error) {
	query := url.Values{"status": {string(status)}}
	return send[models.Project](ctx, h, http.MethodPatch, "SetProjectStatus", idPath(adminProjectsPath, id, "status"), nil, query)
}

func (h *httpBackendAdapter) SetProjectFeatured(ctx context.Context, id int64, featured bool) (models.Project, error) {
	query := url.Values{"featured": {strconv.FormatBool(featured)}}
	return send[models.Project](ctx, h, http.MethodPatch, "SetProjectFeatured", idPath(adminProjectsPath, id, "featured"), nil, query)
}

// ── services ────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListServices(ctx context.Context) ([]models.Service, error) {
	return send[[]models.Service](ctx, h, http.MethodGet, "ListServices", adminServicesPath, nil, nil)
}

func (h *httpBackendAdapter) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	return send[models.Service](ctx, h, http.MethodPost, "CreateService", adminServicesPath, service, nil)
}

func (h *httpBackendAdapter) UpdateService(ctx context.Context, id int64, service models.Service) (models.Service, error) {
	return send[models.Service](ctx, h, http.MethodPut, "UpdateService", idPath(adminServicesPath, id), service, nil)
}

func (h *httpBackendAdapter) DeleteService(ctx context.Context, id int64) error {
	return exec(ctx, h, http.MethodDelete, "DeleteService", idPath(adminServicesPath, id))
}

// ── skills ──────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return send[[]models.Skill](ctx, h, http.MethodGet, "ListSkills", adminSkillsPath, nil, nil)
}

func (h *httpBackendAdapter) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	return send[models.Skill](ctx, h, http.MethodPost, "CreateSkill", adminSkillsPath, skill, nil)
}

func (h *httpBackendAdapter) UpdateSkill(ctx context.Context, id int64, skill models.Skill) (models.Skill, error) {
	return send[models.Skill](ctx, h, http.MethodPut, "UpdateSkill", idPath(adminSkillsPath, id), skill, nil)
}

func (h *httpBackendAdapter) DeleteSkill(ctx context.Context, id int64) error {
	return exec(ctx, h, http.MethodDelete, "DeleteSkill", idPath(adminSkillsPath, id))
}

// ── testimonials ────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return send[[]models.Testimonial](ctx, h, http.MethodGet, "ListTestimonials", adminTestimonialsPath, nil, nil)
}

func (h *httpBackendAdapter) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	return send[models.Testimonial](ctx, h, http.MethodPost, "CreateTestimonial", adminTestimonialsPath, testimonial, nil)
}

func (h *httpBackendAdapter) UpdateTestimonial(ctx context.Context, id int64, testimonial models.Testimonial) (models.Testimonial, error) {
	return send[models.Testimonial](ctx, h, http.MethodPut, "UpdateTestimonial", idPath(adminTestimonialsPath, id), testimonial, nil)
}

func (h *httpBackendAdapter) DeleteTestimonial(ctx context.Context, id int64) error {
	return exec(ctx, h, http.MethodDelete, "DeleteTestimonial", idPath(adminTestimonialsPath, id))
}

// ── videos ──────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListVideos(ctx context.Context, q models.VideoQuery) (models.Page[models.Video], error) {
	query := pageQuery(q.Page, q.Size, q.Search)
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Published != nil {
		query.Set("published", strconv.FormatBool(*q.Published))
	}
	return send[models.Page[models.Video]](ctx, h, http.MethodGet, "ListVideos", adminVideosPath, nil, query)
}

func (h *httpBackendAdapter) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	return send[models.Video](ctx, h, http.MethodPost, "CreateVideo", adminVideosPath, video, nil)
}

func (h *httpBackendAdapter) UpdateVideo(ctx context.Context, id int64, video models.Video) (models.Video, error) {
	return send[models.Video](ctx, h, http.MethodPut, "UpdateVideo", idPath(adminVideosPath, id), video, nil)
}

func (h *httpBackendAdapter) DeleteVideo(ctx context.Context, id int64) error {
	return exec(ctx, h, http.MethodDelete, "DeleteVideo", idPath(adminVideosPath, id))
}

func (h *httpBackendAdapter) SetVideoPublished(ctx context.Context, id int64, published bool) (models.Video, error) {
	query := url.Values{"published": {strconv.FormatBool(published)}}
	return send[models.Video](ctx, h, http.MethodPatch, "SetVideoPublished", idPath(adminVideosPath, id, "published"), nil, query)
}

// ── messages ────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListMessages(ctx context.Context, q models.MessageQuery) (models.Page[models.Message], error) {
	query := pageQuery(q.Page, q.Size, q.Search)
	if q.Read != nil {
		query.Set("read", strconv.FormatBool(*q.Read))
	}
	return send[models.Page[models.Message]](ctx, h, http.MethodGet, "ListMessages", adminMessagesPath, nil, query)
}

func (h *httpBackendAdapter) GetMessage(ctx context.Context, id int64) (models.Message, error) {
	return send[models.Message](ctx, h, http.MethodGet, "GetMessage", idPath(adminMessagesPath, id), nil, nil)
}

func (h *httpBackendAdapter) SetMessageRead(ctx context.Context, id int64, read bool) (models.Message, error) {
	query := url.Values{"read": {strconv.FormatBool(read)}}
	return send[models.Message](ctx, h, http.MethodPatch, "SetMessageRead", idPath(adminMessagesPath, id, "read"), nil, query)
}

func (h *httpBackendAdapter) DeleteMessage(ctx context.Context, id int64) error {
	return exec(ctx, h, http.MethodDelete, "DeleteMessage", idPath(adminMessagesPath, id))
}
