package models

// Service is an offered service shown in the "My Services" section.
type Service struct {
	ID           int64  `json:"id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"displayOrder"`
}

// Skill is a named skill grouped by a free-text category.
// Level is a 1..100 percentage and may be unset.
type Skill struct {
	ID       int64  `json:"id,omitempty"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Level    *int   `json:"level"`
}

// SkillGroup is a category with its skills, in first-seen order.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// Testimonial is a client quote.
type Testimonial struct {
	ID        int64   `json:"id,omitempty"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Quote     string  `json:"quote"`
	AvatarURL *string `json:"avatarUrl"`
}
