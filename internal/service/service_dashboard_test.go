package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/models"
)

func TestDashboardService_Stats(t *testing.T) {
	backend := mock.NewMockAdminAPI(gomock.NewController(t))
	svc := NewDashboardService(backend)
	ctx := context.Background()

	backend.EXPECT().ListProjects(ctx, models.ProjectQuery{Page: 0, Size: 1}).Return(models.Page[models.Project]{TotalElements: 12}, nil)
	backend.EXPECT().ListServices(ctx).Return(make([]models.Service, 4), nil)
	backend.EXPECT().ListSkills(ctx).Return(make([]models.Skill, 9), nil)
	backend.EXPECT().ListTestimonials(ctx).Return(make([]models.Testimonial, 2), nil)
	backend.EXPECT().ListVideos(ctx, models.VideoQuery{Page: 0, Size: 1}).Return(models.Page[models.Video]{TotalElements: 5}, nil)
	backend.EXPECT().ListMessages(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q models.MessageQuery) (models.Page[models.Message], error) {
			if assert.NotNil(t, q.Read) {
				assert.False(t, *q.Read)
			}
			return models.Page[models.Message]{TotalElements: 3}, nil
		},
	)

	got := svc.Stats(ctx)

	assert.Equal(t, models.DashboardStats{
		Projects: 12, Services: 4, Skills: 9, Testimonials: 2, Videos: 5, UnreadMessages: 3,
	}, got)
}

func TestDashboardService_Stats_FailuresAreSwallowed(t *testing.T) {
	backend := mock.NewMockAdminAPI(gomock.NewController(t))
	svc := NewDashboardService(backend)

	backend.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(models.Page[models.Project]{}, adapter.ErrBadGateway)
	backend.EXPECT().ListServices(gomock.Any()).Return(nil, adapter.ErrBadGateway)
	backend.EXPECT().ListSkills(gomock.Any()).Return(make([]models.Skill, 2), nil)
	backend.EXPECT().ListTestimonials(gomock.Any()).Return(nil, adapter.ErrUnauthorized)
	backend.EXPECT().ListVideos(gomock.Any(), gomock.Any()).Return(models.Page[models.Video]{}, adapter.ErrBadGateway)
	backend.EXPECT().ListMessages(gomock.Any(), gomock.Any()).Return(models.Page[models.Message]{}, adapter.ErrBadGateway)

	got := svc.Stats(context.Background())

	assert.Equal(t, models.DashboardStats{Skills: 2}, got)
}
