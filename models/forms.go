package models

import (
	"strconv"
	"strings"
)

// ProjectForm is the raw text of the project editor. Lists are comma
// separated; empty optional fields become null when normalised.
type ProjectForm struct {
	Title         string
	Slug          string
	Summary       string
	Description   string
	TechTags      string
	LiveURL       string
	GithubURL     string
	ThumbnailURL  string
	GalleryImages string
	Featured      bool
	Status        ProjectStatus
}

// NewProjectForm returns an empty form with the DRAFT status preselected.
func NewProjectForm() ProjectForm {
	return ProjectForm{Status: ProjectDraft}
}

// ProjectFormFrom fills the editor from an existing project.
func ProjectFormFrom(p Project) ProjectForm {
	status := p.Status
	if status == "" {
		status = ProjectDraft
	}
	return ProjectForm{
		Title:         p.Title,
		Slug:          deref(p.Slug),
		Summary:       p.Summary,
		Description:   p.Description,
		TechTags:      strings.Join(p.TechTags, ", "),
		LiveURL:       deref(p.LiveURL),
		GithubURL:     deref(p.GithubURL),
		ThumbnailURL:  p.ThumbnailURL,
		GalleryImages: strings.Join(p.GalleryImages, ", "),
		Featured:      p.Featured,
		Status:        status,
	}
}

// VideoForm is the raw text of the video editor.
type VideoForm struct {
	Title        string
	Description  string
	Category     string
	VideoURL     string
	ThumbnailURL string
	Published    bool
}

// NewVideoForm returns the defaults of a new video: category "Projects",
// published.
func NewVideoForm() VideoForm {
	return VideoForm{Category: "Projects", Published: true}
}

func VideoFormFrom(v Video) VideoForm {
	return VideoForm{
		Title:        v.Title,
		Description:  v.Description,
		Category:     v.Category,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Published:    v.Published,
	}
}

// ServiceForm is the raw text of the service editor.
type ServiceForm struct {
	Title        string
	Description  string
	Icon         string
	DisplayOrder string
}

func ServiceFormFrom(s Service) ServiceForm {
	return ServiceForm{
		Title:        s.Title,
		Description:  s.Description,
		Icon:         s.Icon,
		DisplayOrder: strconv.Itoa(s.DisplayOrder),
	}
}

// SkillForm is the raw text of the skill editor. An empty Level is null.
type SkillForm struct {
	Category string
	Name     string
	Level    string
}

func SkillFormFrom(s Skill) SkillForm {
	form := SkillForm{Category: s.Category, Name: s.Name}
	if s.Level != nil {
		form.Level = strconv.Itoa(*s.Level)
	}
	return form
}

// TestimonialForm is the raw text of the testimonial editor.
type TestimonialForm struct {
	Name      string
	Role      string
	Quote     string
	AvatarURL string
}

func TestimonialFormFrom(t Testimonial) TestimonialForm {
	return TestimonialForm{
		Name:      t.Name,
		Role:      t.Role,
		Quote:     t.Quote,
		AvatarURL: deref(t.AvatarURL),
	}
}

// BlogDocumentForm is the editable metadata of a blog document row and of
// a new upload.
type BlogDocumentForm struct {
	Title           string
	Visible         bool
	DownloadEnabled bool
	DisplayOrder    string
}

func BlogDocumentFormFrom(d BlogDocument) BlogDocumentForm {
	return BlogDocumentForm{
		Title:           d.Title,
		Visible:         d.Visible,
		DownloadEnabled: d.DownloadEnabled,
		DisplayOrder:    strconv.Itoa(d.DisplayOrder),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
