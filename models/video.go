package models

import "time"

// Video is a showcased video. Published has a dedicated toggle endpoint.
type Video struct {
	ID           int64      `json:"id,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	VideoURL     string     `json:"videoUrl"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	Published    bool       `json:"published"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// VideoQuery filters the admin video list. A nil Published means "any".
type VideoQuery struct {
	Page      int
	Size      int
	Search    string
	Category  string
	Published *bool
}
