package models

import "time"

// ProjectStatus is the publication state of a [Project].
type ProjectStatus string

const (
	ProjectDraft     ProjectStatus = "DRAFT"
	ProjectPublished ProjectStatus = "PUBLISHED"
)

// Toggle returns the opposite status. Anything that is not PUBLISHED
// toggles to PUBLISHED.
func (s ProjectStatus) Toggle() ProjectStatus {
	if s == ProjectPublished {
		return ProjectDraft
	}
	return ProjectPublished
}

// Project is a portfolio entry. Status and Featured have dedicated toggle
// endpoints distinct from the full update.
type Project struct {
	ID            int64         `json:"id,omitempty"`
	Title         string        `json:"title"`
	Slug          *string       `json:"slug"`
	Summary       string        `json:"summary"`
	Description   string        `json:"description"`
	TechTags      []string      `json:"techTags"`
	LiveURL       *string       `json:"liveUrl"`
	GithubURL     *string       `json:"githubUrl"`
	ThumbnailURL  string        `json:"thumbnailUrl"`
	GalleryImages []string      `json:"galleryImages"`
	Featured      bool          `json:"featured"`
	Status        ProjectStatus `json:"status"`
	CreatedAt     *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time    `json:"updatedAt,omitempty"`
}

// HasTag reports whether tag is an exact member of the project's tag list.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.TechTags {
		if t == tag {
			return true
		}
	}
	return false
}

// ProjectQuery filters the admin project list.
type ProjectQuery struct {
	Page   int
	Size   int
	Search string
	Status ProjectStatus
}
