package models

// DashboardStats holds the metric tiles of the admin dashboard.
type DashboardStats struct {
	Projects       int `json:"projects"`
	Services       int `json:"services"`
	Skills         int `json:"skills"`
	Testimonials   int `json:"testimonials"`
	Videos         int `json:"videos"`
	UnreadMessages int `json:"unreadMessages"`
}
