package service

import (
	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

// AdminServices groups the services behind the admin console.
type AdminServices struct {
	Session       SessionService
	Auth          AuthService
	Projects      ProjectService
	Videos        VideoService
	Messages      MessageService
	ServiceItems  ServiceItemService
	Skills        SkillService
	Testimonials  TestimonialService
	Content       ContentService
	BlogDocuments BlogDocumentService
	Dashboard     DashboardService
	AppInfo       AppInfoService
}

// NewAdminServices wires the admin services. session must be the token
// source the backend adapter was built with.
func NewAdminServices(session SessionService, backend adapter.BackendAdapter, cfg config.AdminApp, build models.AppBuildInfo, logger *logger.Logger) *AdminServices {
	return &AdminServices{
		Session:       session,
		Auth:          NewAuthService(backend, session),
		Projects:      NewProjectService(backend),
		Videos:        NewVideoService(backend),
		Messages:      NewMessageService(backend),
		ServiceItems:  NewServiceItemService(backend),
		Skills:        NewSkillService(backend),
		Testimonials:  NewTestimonialService(backend),
		Content:       NewContentService(backend),
		BlogDocuments: NewBlogDocumentService(backend),
		Dashboard:     NewDashboardService(backend),
		AppInfo:       NewAppInfoService(cfg.Version, build, logger),
	}
}

// SiteServices groups the services behind the public site.
type SiteServices struct {
	Landing LandingService
	Contact ContactService
	AppInfo AppInfoService
	Rotator *Rotator
}

func NewSiteServices(backend adapter.PublicAPI, cfg config.SiteConfig, build models.AppBuildInfo, logger *logger.Logger) *SiteServices {
	return &SiteServices{
		Landing: NewLandingService(backend, cfg.Site.CacheTTL, logger),
		Contact: NewContactService(backend),
		AppInfo: NewAppInfoService(cfg.App.Version, build, logger),
		Rotator: NewRotator(),
	}
}
