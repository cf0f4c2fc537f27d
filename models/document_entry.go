package models

import "strings"

// DocumentEntry is one row of the merged public document list: resume, CV
// and blog documents share this shape.
type DocumentEntry struct {
	Key             string `json:"key"`
	Title           string `json:"title"`
	FileName        string `json:"fileName"`
	DownloadEnabled bool   `json:"downloadEnabled"`
	ReadURL         string `json:"readUrl"`
	DownloadURL     string `json:"downloadUrl"`
}

// Extension returns the lower-cased suffix after the last dot of FileName.
func (d DocumentEntry) Extension() string {
	idx := strings.LastIndex(d.FileName, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(d.FileName[idx+1:])
}

// IsPDF reports whether the document can be previewed inline.
func (d DocumentEntry) IsPDF() bool {
	return d.Extension() == "pdf"
}
