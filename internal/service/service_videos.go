package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// VideoPageSize is the page size of the video list.
const VideoPageSize = 8

type videoService struct {
	backend adapter.AdminAPI
}

func NewVideoService(backend adapter.AdminAPI) VideoService {
	return &videoService{backend: backend}
}

func (v *videoService) List(ctx context.Context, q models.VideoQuery) (models.Page[models.Video], error) {
	if q.Size <= 0 {
		q.Size = VideoPageSize
	}

	page, err := v.backend.ListVideos(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "videoService.List").Msg("failed to list videos")
		return models.Page[models.Video]{}, err
	}
	return page, nil
}

func (v *videoService) Save(ctx context.Context, id int64, form models.VideoForm) (models.Video, error) {
	video := NormalizeVideo(form)
	if video.Title == "" || video.VideoURL == "" {
		return models.Video{}, ErrInvalidDataProvided
	}

	if id == 0 {
		return v.backend.CreateVideo(ctx, video)
	}
	return v.backend.UpdateVideo(ctx, id, video)
}

func (v *videoService) Delete(ctx context.Context, id int64) error {
	return v.backend.DeleteVideo(ctx, id)
}

func (v *videoService) TogglePublished(ctx context.Context, video models.Video) (models.Video, error) {
	return v.backend.SetVideoPublished(ctx, video.ID, !video.Published)
}
