package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type blogDocumentService struct {
	backend adapter.AdminAPI
}

func NewBlogDocumentService(backend adapter.AdminAPI) BlogDocumentService {
	return &blogDocumentService{backend: backend}
}

func (b *blogDocumentService) List(ctx context.Context) ([]models.BlogDocument, error) {
	return b.backend.ListBlogDocuments(ctx)
}

func (b *blogDocumentService) Upload(ctx context.Context, path string, form models.BlogDocumentForm) (models.BlogDocument, error) {
	f, name, err := openLocalFile(path)
	if err != nil {
		return models.BlogDocument{}, err
	}
	defer f.Close()

	doc, err := b.backend.CreateBlogDocument(ctx, models.BlogDocumentUpload{
		Title:           strings.TrimSpace(form.Title),
		FileName:        name,
		File:            f,
		Visible:         form.Visible,
		DownloadEnabled: form.DownloadEnabled,
		DisplayOrder:    max(atoiOrZero(form.DisplayOrder), 0),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "blogDocumentService.Upload").Str("file", name).Msg("upload failed")
		return models.BlogDocument{}, err
	}
	return doc, nil
}

func (b *blogDocumentService) Update(ctx context.Context, doc models.BlogDocument, form models.BlogDocumentForm) (models.BlogDocument, error) {
	return b.backend.UpdateBlogDocument(ctx, doc.ID, NormalizeBlogDocument(doc, form))
}

func (b *blogDocumentService) Delete(ctx context.Context, id int64) error {
	return b.backend.DeleteBlogDocument(ctx, id)
}
