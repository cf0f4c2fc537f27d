package adapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-portfolio/models"
)

func (h *httpBackendAdapter) GetContent(ctx context.Context) (models.Content, error) {
	return send[models.Content](ctx, h, http.MethodGet, "GetContent", "/api/public/content", nil, nil)
}

func (h *httpBackendAdapter) GetBlogDocuments(ctx context.Context) ([]models.BlogDocument, error) {
	return send[[]models.BlogDocument](ctx, h, http.MethodGet, "GetBlogDocuments", "/api/public/content/documents", nil, nil)
}

func (h *httpBackendAdapter) GetProjects(ctx context.Context) ([]models.Project, error) {
	return send[[]models.Project](ctx, h, http.MethodGet, "GetProjects", "/api/public/projects", nil, nil)
}

func (h *httpBackendAdapter) GetServices(ctx context.Context) ([]models.Service, error) {
	return send[[]models.Service](ctx, h, http.MethodGet, "GetServices", "/api/public/services", nil, nil)
}

func (h *httpBackendAdapter) GetSkills(ctx context.Context) ([]models.Skill, error) {
	return send[[]models.Skill](ctx, h, http.MethodGet, "GetSkills", "/api/public/skills", nil, nil)
}

func (h *httpBackendAdapter) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return send[[]models.Testimonial](ctx, h, http.MethodGet, "GetTestimonials", "/api/public/testimonials", nil, nil)
}

func (h *httpBackendAdapter) GetVideos(ctx context.Context) ([]models.Video, error) {
	return send[[]models.Video](ctx, h, http.MethodGet, "GetVideos", "/api/public/videos", nil, nil)
}

func (h *httpBackendAdapter) SendMessage(ctx context.Context, msg models.ContactMessage) error {
	_, err := send[struct{}](ctx, h, http.MethodPost, "SendMessage", "/api/messages", msg, nil)
	return err
}

func (h *httpBackendAdapter) PublicFileURL(fileType models.ContentFileType, download bool) string {
	return h.baseURL + "/api/public/content/file/" + string(fileType) + "?download=" + strconv.FormatBool(download)
}

func (h *httpBackendAdapter) PublicBlogDocumentFileURL(id int64, download bool) string {
	return h.baseURL + idPath("/api/public/content/documents", id, "file") + "?download=" + strconv.FormatBool(download)
}
