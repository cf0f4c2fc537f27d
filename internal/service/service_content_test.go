package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/models"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── Load / Save ─────────────────────────────────────────────────────────────

func TestContentService_Load_OverlaysDefaults(t *testing.T) {
	backend := mock.NewMockBackendAdapter(gomock.NewController(t))
	svc := NewContentService(backend)
	ctx := context.Background()

	backend.EXPECT().GetAdminContent(ctx).Return(models.Content{ID: 1, BrandName: "ACME"}, nil)

	got, err := svc.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, "ACME", got.BrandName)
	assert.Equal(t, models.DefaultContent().HeroTitle, got.HeroTitle)
}

func TestContentService_Load_ErrorReturnsDefaults(t *testing.T) {
	backend := mock.NewMockBackendAdapter(gomock.NewController(t))
	svc := NewContentService(backend)

	backend.EXPECT().GetAdminContent(gomock.Any()).Return(models.Content{}, adapter.ErrUnauthorized)

	got, err := svc.Load(context.Background())

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, models.DefaultContent(), got)
}

func TestContentService_Save(t *testing.T) {
	backend := mock.NewMockBackendAdapter(gomock.NewController(t))
	svc := NewContentService(backend)
	ctx := context.Background()
	content := models.DefaultContent()
	content.BrandName = "NEW"

	backend.EXPECT().UpdateContent(ctx, content).Return(content, nil)

	got, err := svc.Save(ctx, content)

	require.NoError(t, err)
	assert.Equal(t, "NEW", got.BrandName)
}

// ── files ───────────────────────────────────────────────────────────────────

func TestContentService_UploadFile(t *testing.T) {
	backend := mock.NewMockBackendAdapter(gomock.NewController(t))
	svc := NewContentService(backend)
	ctx := context.Background()
	path := writeTempFile(t, "resume.pdf", "%PDF")

	backend.EXPECT().UploadContentFile(ctx, models.ContentFileResume, "resume.pdf", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.ContentFileType, _ string, r io.Reader) (models.Content, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "%PDF", string(data))
			return models.Content{ResumeStoredName: "abc.pdf", ResumeOriginalName: "resume.pdf"}, nil
		},
	)

	got, err := svc.UploadFile(ctx, models.ContentFileResume, path)

	require.NoError(t, err)
	assert.Equal(t, "abc.pdf", got.ResumeStoredName)
}

func TestContentService_UploadFile_Invalid(t *testing.T) {
	svc := NewContentService(mock.NewMockBackendAdapter(gomock.NewController(t)))
	ctx := context.Background()

	_, err := svc.UploadFile(ctx, "photo", "x.png")
	assert.ErrorIs(t, err, ErrUnknownFileType)

	_, err = svc.UploadFile(ctx, models.ContentFileCV, "  ")
	assert.ErrorIs(t, err, ErrEmptyFilePath)

	_, err = svc.UploadFile(ctx, models.ContentFileCV, filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestContentService_DeleteFile(t *testing.T) {
	backend := mock.NewMockBackendAdapter(gomock.NewController(t))
	svc := NewContentService(backend)
	ctx := context.Background()

	backend.EXPECT().DeleteContentFile(ctx, models.ContentFileCV).Return(models.Content{}, nil)

	got, err := svc.DeleteFile(ctx, models.ContentFileCV)

	require.NoError(t, err)
	assert.Empty(t, got.CVStoredName)
}

func TestContentService_FileURLs(t *testing.T) {
	backend := mock.NewMockBackendAdapter(gomock.NewController(t))
	svc := NewContentService(backend)

	backend.EXPECT().PublicFileURL(models.ContentFileCV, false).Return("read")
	backend.EXPECT().PublicFileURL(models.ContentFileCV, true).Return("download")

	read, download := svc.FileURLs(models.ContentFileCV)
	assert.Equal(t, "read", read)
	assert.Equal(t, "download", download)
}

// ── blog documents ──────────────────────────────────────────────────────────

func TestBlogDocumentService_Upload(t *testing.T) {
	backend := mock.NewMockAdminAPI(gomock.NewController(t))
	svc := NewBlogDocumentService(backend)
	ctx := context.Background()
	path := writeTempFile(t, "notes.docx", "doc")

	backend.EXPECT().CreateBlogDocument(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, up models.BlogDocumentUpload) (models.BlogDocument, error) {
			assert.Equal(t, "notes.docx", up.FileName)
			assert.Empty(t, up.Title)
			assert.True(t, up.Visible)
			assert.Equal(t, 0, up.DisplayOrder)
			return models.BlogDocument{ID: 3}, nil
		},
	)

	doc, err := svc.Upload(ctx, path, models.BlogDocumentForm{Title: "  ", Visible: true, DisplayOrder: "-1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), doc.ID)
}

func TestBlogDocumentService_Update(t *testing.T) {
	backend := mock.NewMockAdminAPI(gomock.NewController(t))
	svc := NewBlogDocumentService(backend)
	ctx := context.Background()
	doc := models.BlogDocument{ID: 3, OriginalName: "notes.docx"}

	backend.EXPECT().UpdateBlogDocument(ctx, int64(3), models.BlogDocumentUpdate{
		Title: "notes.docx", Visible: true, DisplayOrder: 1,
	}).Return(doc, nil)

	_, err := svc.Update(ctx, doc, models.BlogDocumentForm{Visible: true, DisplayOrder: "1"})
	assert.NoError(t, err)
}
