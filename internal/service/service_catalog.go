package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/models"
)

// ── services ─────────────────────────────────────────────────────────────────

type serviceItemService struct {
	backend adapter.AdminAPI
}

func NewServiceItemService(backend adapter.AdminAPI) ServiceItemService {
	return &serviceItemService{backend: backend}
}

func (s *serviceItemService) List(ctx context.Context) ([]models.Service, error) {
	return s.backend.ListServices(ctx)
}

func (s *serviceItemService) Save(ctx context.Context, id int64, form models.ServiceForm) (models.Service, error) {
	item := NormalizeService(form)
	if item.Title == "" {
		return models.Service{}, ErrInvalidDataProvided
	}

	if id == 0 {
		return s.backend.CreateService(ctx, item)
	}
	return s.backend.UpdateService(ctx, id, item)
}

func (s *serviceItemService) Delete(ctx context.Context, id int64) error {
	return s.backend.DeleteService(ctx, id)
}

// ── skills ───────────────────────────────────────────────────────────────────

type skillService struct {
	backend adapter.AdminAPI
}

func NewSkillService(backend adapter.AdminAPI) SkillService {
	return &skillService{backend: backend}
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	return s.backend.ListSkills(ctx)
}

func (s *skillService) Save(ctx context.Context, id int64, form models.SkillForm) (models.Skill, error) {
	skill := NormalizeSkill(form)
	if skill.Name == "" {
		return models.Skill{}, ErrInvalidDataProvided
	}

	if id == 0 {
		return s.backend.CreateSkill(ctx, skill)
	}
	return s.backend.UpdateSkill(ctx, id, skill)
}

func (s *skillService) Delete(ctx context.Context, id int64) error {
	return s.backend.DeleteSkill(ctx, id)
}

// ── testimonials ─────────────────────────────────────────────────────────────

type testimonialService struct {
	backend adapter.AdminAPI
}

func NewTestimonialService(backend adapter.AdminAPI) TestimonialService {
	return &testimonialService{backend: backend}
}

func (s *testimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	return s.backend.ListTestimonials(ctx)
}

func (s *testimonialService) Save(ctx context.Context, id int64, form models.TestimonialForm) (models.Testimonial, error) {
	testimonial := NormalizeTestimonial(form)
	if testimonial.Name == "" || testimonial.Quote == "" {
		return models.Testimonial{}, ErrInvalidDataProvided
	}

	if id == 0 {
		return s.backend.CreateTestimonial(ctx, testimonial)
	}
	return s.backend.UpdateTestimonial(ctx, id, testimonial)
}

func (s *testimonialService) Delete(ctx context.Context, id int64) error {
	return s.backend.DeleteTestimonial(ctx, id)
}
