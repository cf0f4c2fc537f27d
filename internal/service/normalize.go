package service

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
)

const (
	// DefaultServiceIcon is stored when a service is saved without an icon.
	DefaultServiceIcon = "Sparkles"
	// DefaultDocumentTitle is the last title fallback of a blog document.
	DefaultDocumentTitle = "Document"

	minSkillLevel = 1
	maxSkillLevel = 100
)

// NormalizeProject converts the editor text into the request body: strings
// are trimmed, optional links become null when blank, lists are split on
// commas and an unset status becomes DRAFT.
func NormalizeProject(f models.ProjectForm) models.Project {
	status := f.Status
	if status != models.ProjectPublished {
		status = models.ProjectDraft
	}

	return models.Project{
		Title:         strings.TrimSpace(f.Title),
		Slug:          optional(f.Slug),
		Summary:       strings.TrimSpace(f.Summary),
		Description:   strings.TrimSpace(f.Description),
		TechTags:      SplitList(f.TechTags),
		LiveURL:       optional(f.LiveURL),
		GithubURL:     optional(f.GithubURL),
		ThumbnailURL:  strings.TrimSpace(f.ThumbnailURL),
		GalleryImages: SplitList(f.GalleryImages),
		Featured:      f.Featured,
		Status:        status,
	}
}

func NormalizeVideo(f models.VideoForm) models.Video {
	return models.Video{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		Category:     strings.TrimSpace(f.Category),
		VideoURL:     strings.TrimSpace(f.VideoURL),
		ThumbnailURL: strings.TrimSpace(f.ThumbnailURL),
		Published:    f.Published,
	}
}

// NormalizeService defaults the icon and coerces the display order; an
// unparsable order is 0.
func NormalizeService(f models.ServiceForm) models.Service {
	icon := strings.TrimSpace(f.Icon)
	if icon == "" {
		icon = DefaultServiceIcon
	}

	return models.Service{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		Icon:         icon,
		DisplayOrder: atoiOrZero(f.DisplayOrder),
	}
}

// NormalizeSkill clamps the level into 1..100. A blank or unparsable level
// is null.
func NormalizeSkill(f models.SkillForm) models.Skill {
	skill := models.Skill{
		Category: strings.TrimSpace(f.Category),
		Name:     strings.TrimSpace(f.Name),
	}

	if level, err := strconv.Atoi(strings.TrimSpace(f.Level)); err == nil {
		level = min(max(level, minSkillLevel), maxSkillLevel)
		skill.Level = &level
	}

	return skill
}

func NormalizeTestimonial(f models.TestimonialForm) models.Testimonial {
	return models.Testimonial{
		Name:      strings.TrimSpace(f.Name),
		Role:      strings.TrimSpace(f.Role),
		Quote:     strings.TrimSpace(f.Quote),
		AvatarURL: optional(f.AvatarURL),
	}
}

// NormalizeBlogDocument builds the metadata patch of doc. The title falls
// back to the original file name, then to "Document"; the order is at
// least 0.
func NormalizeBlogDocument(doc models.BlogDocument, f models.BlogDocumentForm) models.BlogDocumentUpdate {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		title = strings.TrimSpace(doc.OriginalName)
	}
	if title == "" {
		title = DefaultDocumentTitle
	}

	return models.BlogDocumentUpdate{
		Title:           title,
		Visible:         f.Visible,
		DownloadEnabled: f.DownloadEnabled,
		DisplayOrder:    max(atoiOrZero(f.DisplayOrder), 0),
	}
}

// SplitList splits comma separated text, trimming items and dropping
// empty ones. The result is never nil.
func SplitList(s string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
