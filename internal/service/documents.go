package service

import (
	"strconv"

	"github.com/MKhiriev/go-portfolio/models"
)

// FileURLBuilder builds public file URLs. [adapter.PublicAPI] implements it.
type FileURLBuilder interface {
	PublicFileURL(fileType models.ContentFileType, download bool) string
	PublicBlogDocumentFileURL(id int64, download bool) string
}

// MergeDocuments lists the resume, the CV and the blog documents as one
// uniform list, in that order. Resume and CV are skipped when no file is
// stored; documents without an id are skipped.
func MergeDocuments(content models.Content, docs []models.BlogDocument, urls FileURLBuilder) []models.DocumentEntry {
	entries := make([]models.DocumentEntry, 0, len(docs)+2)

	if content.ResumeStoredName != "" {
		entries = append(entries, models.DocumentEntry{
			Key:             string(models.ContentFileResume),
			Title:           "Resume",
			FileName:        firstNonEmpty(content.ResumeOriginalName, "Resume"),
			DownloadEnabled: content.ResumeDownloadEnabled,
			ReadURL:         urls.PublicFileURL(models.ContentFileResume, false),
			DownloadURL:     urls.PublicFileURL(models.ContentFileResume, true),
		})
	}
	if content.CVStoredName != "" {
		entries = append(entries, models.DocumentEntry{
			Key:             string(models.ContentFileCV),
			Title:           "CV",
			FileName:        firstNonEmpty(content.CVOriginalName, "CV"),
			DownloadEnabled: content.CVDownloadEnabled,
			ReadURL:         urls.PublicFileURL(models.ContentFileCV, false),
			DownloadURL:     urls.PublicFileURL(models.ContentFileCV, true),
		})
	}

	for _, doc := range docs {
		if doc.ID == 0 {
			continue
		}
		entries = append(entries, models.DocumentEntry{
			Key:             "doc-" + strconv.FormatInt(doc.ID, 10),
			Title:           firstNonEmpty(doc.Title, DefaultDocumentTitle),
			FileName:        firstNonEmpty(doc.FileName, doc.OriginalName, DefaultDocumentTitle),
			DownloadEnabled: doc.DownloadEnabled,
			ReadURL:         urls.PublicBlogDocumentFileURL(doc.ID, false),
			DownloadURL:     urls.PublicBlogDocumentFileURL(doc.ID, true),
		})
	}

	return entries
}

// FindDocument returns the entry with key.
func FindDocument(entries []models.DocumentEntry, key string) (models.DocumentEntry, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e, true
		}
	}
	return models.DocumentEntry{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
