package models

// Landing is everything the public page renders. Each section holds either
// the loaded records or the built-in fallback for that section.
type Landing struct {
	Content      Content         `json:"content"`
	Services     []Service       `json:"services"`
	Projects     []Project       `json:"projects"`
	Skills       []Skill         `json:"skills"`
	Testimonials []Testimonial   `json:"testimonials"`
	Videos       []Video         `json:"videos"`
	Documents    []DocumentEntry `json:"documents"`
}
