// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed façade over the portfolio REST backend.
//
// Every method issues exactly one HTTP call. Requests whose path lies under
// /api/admin carry the bearer token supplied by a [TokenSource]; all other
// requests are sent anonymously.
//
// Non-2xx responses are mapped by mapHTTPError onto an [*APIError] wrapping
// one of the sentinel values in errors.go, so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401) and [FormatError] for user-facing text.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenSource yields the bearer token for admin requests. An empty token
// means the request is sent without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) string
}

// PublicAPI groups the anonymous endpoints consumed by the landing site.
type PublicAPI interface {
	// GetContent fetches the singleton site content record.
	GetContent(ctx context.Context) (models.Content, error)

	// GetBlogDocuments lists the visible blog documents.
	GetBlogDocuments(ctx context.Context) ([]models.BlogDocument, error)

	// GetProjects lists published projects.
	GetProjects(ctx context.Context) ([]models.Project, error)

	// GetServices lists offered services.
	GetServices(ctx context.Context) ([]models.Service, error)

	// GetSkills lists skills.
	GetSkills(ctx context.Context) ([]models.Skill, error)

	// GetTestimonials lists testimonials.
	GetTestimonials(ctx context.Context) ([]models.Testimonial, error)

	// GetVideos lists published videos.
	GetVideos(ctx context.Context) ([]models.Video, error)

	// SendMessage submits a contact form message.
	SendMessage(ctx context.Context, msg models.ContactMessage) error

	// PublicFileURL returns the absolute URL streaming the resume or CV file.
	// download selects the attachment disposition.
	PublicFileURL(fileType models.ContentFileType, download bool) string

	// PublicBlogDocumentFileURL returns the absolute URL streaming blog
	// document id.
	PublicBlogDocumentFileURL(id int64, download bool) string
}

// AdminAPI groups the login endpoint and every /api/admin endpoint.
type AdminAPI interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	GetAdminContent(ctx context.Context) (models.Content, error)
	// UpdateContent replaces the content record wholesale.
	UpdateContent(ctx context.Context, content models.Content) (models.Content, error)
	// UploadContentFile stores the resume or CV as a multipart upload.
	UploadContentFile(ctx context.Context, fileType models.ContentFileType, fileName string, file io.Reader) (models.Content, error)
	DeleteContentFile(ctx context.Context, fileType models.ContentFileType) (models.Content, error)

	ListBlogDocuments(ctx context.Context) ([]models.BlogDocument, error)
	// CreateBlogDocument uploads a new document with its metadata as
	// multipart form fields.
	CreateBlogDocument(ctx context.Context, upload models.BlogDocumentUpload) (models.BlogDocument, error)
	UpdateBlogDocument(ctx context.Context, id int64, update models.BlogDocumentUpdate) (models.BlogDocument, error)
	DeleteBlogDocument(ctx context.Context, id int64) error

	// ListProjects returns one page of projects matching q.
	ListProjects(ctx context.Context, q models.ProjectQuery) (models.Page[models.Project], error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, id int64, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	// SetProjectStatus is the dedicated status toggle; it never sends the
	// full record.
	SetProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) (models.Project, error)
	SetProjectFeatured(ctx context.Context, id int64, featured bool) (models.Project, error)

	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, service models.Service) (models.Service, error)
	UpdateService(ctx context.Context, id int64, service models.Service) (models.Service, error)
	DeleteService(ctx context.Context, id int64) error

	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	UpdateSkill(ctx context.Context, id int64, skill models.Skill) (models.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error

	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int64, testimonial models.Testimonial) (models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int64) error

	// ListVideos returns one page of videos matching q.
	ListVideos(ctx context.Context, q models.VideoQuery) (models.Page[models.Video], error)
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)
	UpdateVideo(ctx context.Context, id int64, video models.Video) (models.Video, error)
	DeleteVideo(ctx context.Context, id int64) error
	SetVideoPublished(ctx context.Context, id int64, published bool) (models.Video, error)

	// ListMessages returns one page of inbox messages matching q.
	ListMessages(ctx context.Context, q models.MessageQuery) (models.Page[models.Message], error)
	GetMessage(ctx context.Context, id int64) (models.Message, error)
	SetMessageRead(ctx context.Context, id int64, read bool) (models.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
}

// BackendAdapter is the complete façade.
type BackendAdapter interface {
	PublicAPI
	AdminAPI
}
