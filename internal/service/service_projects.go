package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// ProjectPageSize is the page size of the project list.
const ProjectPageSize = 8

type projectService struct {
	backend adapter.AdminAPI
}

func NewProjectService(backend adapter.AdminAPI) ProjectService {
	return &projectService{backend: backend}
}

func (p *projectService) List(ctx context.Context, q models.ProjectQuery) (models.Page[models.Project], error) {
	if q.Size <= 0 {
		q.Size = ProjectPageSize
	}

	page, err := p.backend.ListProjects(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "projectService.List").Msg("failed to list projects")
		return models.Page[models.Project]{}, err
	}
	return page, nil
}

func (p *projectService) Save(ctx context.Context, id int64, form models.ProjectForm) (models.Project, error) {
	project := NormalizeProject(form)
	if project.Title == "" {
		return models.Project{}, ErrInvalidDataProvided
	}

	if id == 0 {
		return p.backend.CreateProject(ctx, project)
	}
	return p.backend.UpdateProject(ctx, id, project)
}

func (p *projectService) Delete(ctx context.Context, id int64) error {
	return p.backend.DeleteProject(ctx, id)
}

func (p *projectService) ToggleStatus(ctx context.Context, project models.Project) (models.Project, error) {
	return p.backend.SetProjectStatus(ctx, project.ID, project.Status.Toggle())
}

func (p *projectService) ToggleFeatured(ctx context.Context, project models.Project) (models.Project, error) {
	return p.backend.SetProjectFeatured(ctx, project.ID, !project.Featured)
}
