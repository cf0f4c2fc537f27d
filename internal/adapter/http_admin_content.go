package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-portfolio/models"
)

const (
	adminContentPath   = "/api/admin/content"
	adminUploadPath    = "/api/admin/content/upload"
	adminDocumentsPath = "/api/admin/content/documents"
)

func (h *httpBackendAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return send[models.AuthResponse](ctx, h, http.MethodPost, "Login", "/api/auth/login", req, nil)
}

func (h *httpBackendAdapter) GetAdminContent(ctx context.Context) (models.Content, error) {
	return send[models.Content](ctx, h, http.MethodGet, "GetAdminContent", adminContentPath, nil, nil)
}

func (h *httpBackendAdapter) UpdateContent(ctx context.Context, content models.Content) (models.Content, error) {
	return send[models.Content](ctx, h, http.MethodPut, "UpdateContent", adminContentPath, content, nil)
}

func (h *httpBackendAdapter) UploadContentFile(ctx context.Context, fileType models.ContentFileType, fileName string, file io.Reader) (models.Content, error) {
	var out models.Content

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("type", string(fileType)).
		SetFileReader("file", fileName, file).
		SetResult(&out).
		Post(adminUploadPath)
	if err != nil {
		return out, fmt.Errorf("UploadContentFile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	return out, nil
}

func (h *httpBackendAdapter) DeleteContentFile(ctx context.Context, fileType models.ContentFileType) (models.Content, error) {
	q := url.Values{"type": {string(fileType)}}
	return send[models.Content](ctx, h, http.MethodDelete, "DeleteContentFile", adminUploadPath, nil, q)
}

func (h *httpBackendAdapter) ListBlogDocuments(ctx context.Context) ([]models.BlogDocument, error) {
	return send[[]models.BlogDocument](ctx, h, http.MethodGet, "ListBlogDocuments", adminDocumentsPath, nil, nil)
}

func (h *httpBackendAdapter) CreateBlogDocument(ctx context.Context, upload models.BlogDocumentUpload) (models.BlogDocument, error) {
	var out models.BlogDocument

	fields := map[string]string{
		"visible":         strconv.FormatBool(upload.Visible),
		"downloadEnabled": strconv.FormatBool(upload.DownloadEnabled),
		"displayOrder":    strconv.Itoa(upload.DisplayOrder),
	}
	if upload.Title != "" {
		fields["title"] = upload.Title
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", upload.FileName, upload.File).
		SetMultipartFormData(fields).
		SetResult(&out).
		Post(adminDocumentsPath)
	if err != nil {
		return out, fmt.Errorf("CreateBlogDocument request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	return out, nil
}

func (h *httpBackendAdapter) UpdateBlogDocument(ctx context.Context, id int64, update models.BlogDocumentUpdate) (models.BlogDocument, error) {
	return send[models.BlogDocument](ctx, h, http.MethodPut, "UpdateBlogDocument", idPath(adminDocumentsPath, id), update, nil)
}

func (h *httpBackendAdapter) DeleteBlogDocument(ctx context.Context, id int64) error {
	return exec(ctx, h, http.MethodDelete, "DeleteBlogDocument", idPath(adminDocumentsPath, id))
}
