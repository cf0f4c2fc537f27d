package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type contentService struct {
	backend adapter.BackendAdapter
}

func NewContentService(backend adapter.BackendAdapter) ContentService {
	return &contentService{backend: backend}
}

func (c *contentService) Load(ctx context.Context) (models.Content, error) {
	loaded, err := c.backend.GetAdminContent(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contentService.Load").Msg("failed to load content")
		return models.DefaultContent(), err
	}
	return models.DefaultContent().Overlay(loaded), nil
}

func (c *contentService) Save(ctx context.Context, content models.Content) (models.Content, error) {
	saved, err := c.backend.UpdateContent(ctx, content)
	if err != nil {
		return content, err
	}
	return models.DefaultContent().Overlay(saved), nil
}

func (c *contentService) UploadFile(ctx context.Context, fileType models.ContentFileType, path string) (models.Content, error) {
	if err := checkFileType(fileType); err != nil {
		return models.Content{}, err
	}

	f, name, err := openLocalFile(path)
	if err != nil {
		return models.Content{}, err
	}
	defer f.Close()

	saved, err := c.backend.UploadContentFile(ctx, fileType, name, f)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contentService.UploadFile").Str("type", string(fileType)).Msg("upload failed")
		return models.Content{}, err
	}
	return models.DefaultContent().Overlay(saved), nil
}

func (c *contentService) DeleteFile(ctx context.Context, fileType models.ContentFileType) (models.Content, error) {
	if err := checkFileType(fileType); err != nil {
		return models.Content{}, err
	}

	saved, err := c.backend.DeleteContentFile(ctx, fileType)
	if err != nil {
		return models.Content{}, err
	}
	return models.DefaultContent().Overlay(saved), nil
}

func (c *contentService) FileURLs(fileType models.ContentFileType) (string, string) {
	return c.backend.PublicFileURL(fileType, false), c.backend.PublicFileURL(fileType, true)
}

func checkFileType(fileType models.ContentFileType) error {
	switch fileType {
	case models.ContentFileResume, models.ContentFileCV:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFileType, fileType)
	}
}

// openLocalFile opens path for upload and returns the base name sent as the
// multipart file name. A leading "~/" is expanded to the home directory.
func openLocalFile(path string) (*os.File, string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, "", ErrEmptyFilePath
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	return f, filepath.Base(path), nil
}
