package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService keeps the admin authentication state and the theme
// preference in the local preference store. It also serves as the token
// source of the backend adapter, so every admin request sees the same
// expiry-checked token.
type SessionService interface {
	// SetSession persists the bearer token together with the username.
	SetSession(ctx context.Context, token, username string) error

	// ClearSession removes both the token and the username.
	ClearSession(ctx context.Context) error

	// Token returns the stored token when it is present and not expired.
	// An expired token is cleared together with the username and an empty
	// string is returned. A token whose payload cannot be decoded, or that
	// carries no expiry claim, is returned unchanged.
	Token(ctx context.Context) string

	// Username returns the stored username or an empty string.
	Username(ctx context.Context) string

	// IsAuthenticated reports whether Token yields a non-empty value.
	IsAuthenticated(ctx context.Context) bool

	// Theme returns the persisted theme, dark when nothing is stored.
	Theme(ctx context.Context) models.Theme

	// ToggleTheme switches between dark and slate and persists the result.
	ToggleTheme(ctx context.Context) (models.Theme, error)
}

// AuthService signs the admin in and out.
type AuthService interface {
	// Login exchanges the credentials for a token and stores the session.
	// Returns ErrInvalidDataProvided when either field is blank.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout clears the stored session.
	Logout(ctx context.Context) error
}

// ProjectService manages portfolio projects.
type ProjectService interface {
	// List returns one page of projects matching q.
	List(ctx context.Context, q models.ProjectQuery) (models.Page[models.Project], error)

	// Save normalises form and creates a project when id is zero or
	// replaces project id otherwise.
	Save(ctx context.Context, id int64, form models.ProjectForm) (models.Project, error)

	// Delete removes project id.
	Delete(ctx context.Context, id int64) error

	// ToggleStatus flips PUBLISHED and DRAFT through the status endpoint.
	ToggleStatus(ctx context.Context, project models.Project) (models.Project, error)

	// ToggleFeatured flips the featured flag through its endpoint.
	ToggleFeatured(ctx context.Context, project models.Project) (models.Project, error)
}

// VideoService manages showcased videos.
type VideoService interface {
	List(ctx context.Context, q models.VideoQuery) (models.Page[models.Video], error)
	Save(ctx context.Context, id int64, form models.VideoForm) (models.Video, error)
	Delete(ctx context.Context, id int64) error
	TogglePublished(ctx context.Context, video models.Video) (models.Video, error)
}

// MessageService manages the contact inbox.
type MessageService interface {
	List(ctx context.Context, q models.MessageQuery) (models.Page[models.Message], error)

	// Open fetches a single message. Whether opening marks it as read is
	// decided by the backend.
	Open(ctx context.Context, id int64) (models.Message, error)

	ToggleRead(ctx context.Context, message models.Message) (models.Message, error)
	Delete(ctx context.Context, id int64) error
}

// ServiceItemService manages the offered services. The list is small and
// unpaginated.
type ServiceItemService interface {
	List(ctx context.Context) ([]models.Service, error)
	Save(ctx context.Context, id int64, form models.ServiceForm) (models.Service, error)
	Delete(ctx context.Context, id int64) error
}

// SkillService manages skills.
type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Save(ctx context.Context, id int64, form models.SkillForm) (models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

// TestimonialService manages testimonials.
type TestimonialService interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Save(ctx context.Context, id int64, form models.TestimonialForm) (models.Testimonial, error)
	Delete(ctx context.Context, id int64) error
}

// ContentService edits the singleton content record and its resume/CV
// files.
type ContentService interface {
	// Load fetches the record and overlays it onto the built-in defaults.
	// On failure the defaults are returned together with the error.
	Load(ctx context.Context) (models.Content, error)

	// Save replaces the whole record.
	Save(ctx context.Context, content models.Content) (models.Content, error)

	// UploadFile uploads the local file at path into the resume or CV slot.
	UploadFile(ctx context.Context, fileType models.ContentFileType, path string) (models.Content, error)

	// DeleteFile clears the resume or CV slot.
	DeleteFile(ctx context.Context, fileType models.ContentFileType) (models.Content, error)

	// FileURLs returns the public read and download URLs of a slot.
	FileURLs(fileType models.ContentFileType) (read, download string)
}

// BlogDocumentService manages uploaded blog documents.
type BlogDocumentService interface {
	List(ctx context.Context) ([]models.BlogDocument, error)

	// Upload sends the local file at path with the metadata of form.
	Upload(ctx context.Context, path string, form models.BlogDocumentForm) (models.BlogDocument, error)

	// Update patches the metadata of doc. A blank title falls back to the
	// original file name, then to "Document"; the display order is never
	// negative.
	Update(ctx context.Context, doc models.BlogDocument, form models.BlogDocumentForm) (models.BlogDocument, error)

	Delete(ctx context.Context, id int64) error
}

// DashboardService collects the dashboard metrics.
type DashboardService interface {
	// Stats runs the count queries concurrently. A failing query leaves its
	// count at zero; no error is reported.
	Stats(ctx context.Context) models.DashboardStats
}

// LandingService assembles the public landing page.
type LandingService interface {
	// Load fetches every public resource concurrently. A failing fetch keeps
	// the fallback of its section, so the result is never empty.
	Load(ctx context.Context) models.Landing
}

// ContactService validates and forwards contact form submissions.
type ContactService interface {
	// Validate checks the required fields and the e-mail address.
	Validate(msg models.ContactMessage) error

	// Send validates msg and submits it to the backend.
	Send(ctx context.Context, msg models.ContactMessage) error
}

// AppInfoService reports the running binary's version and build metadata.
type AppInfoService interface {
	// GetAppVersion returns the configured application version, falling
	// back to the linker-injected build version.
	GetAppVersion(ctx context.Context) string

	// GetBuildInfo returns the linker-injected build metadata.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
