package models

import (
	"io"
	"time"
)

// BlogDocument is an uploaded file listed in the public "Blog Docs" section,
// besides the resume and CV slots of [Content].
type BlogDocument struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	OriginalName    string     `json:"originalName"`
	StoredName      string     `json:"storedName,omitempty"`
	FileName        string     `json:"fileName,omitempty"`
	Visible         bool       `json:"visible"`
	DownloadEnabled bool       `json:"downloadEnabled"`
	DisplayOrder    int        `json:"displayOrder"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// BlogDocumentUpdate is the metadata patch sent for an existing document.
type BlogDocumentUpdate struct {
	Title           string `json:"title"`
	Visible         bool   `json:"visible"`
	DownloadEnabled bool   `json:"downloadEnabled"`
	DisplayOrder    int    `json:"displayOrder"`
}

// BlogDocumentUpload is the multipart body of a document upload.
// Title is optional; the backend falls back to the file name.
type BlogDocumentUpload struct {
	Title           string
	FileName        string
	File            io.Reader
	Visible         bool
	DownloadEnabled bool
	DisplayOrder    int
}
