package registry

import (
	"portfolio-go-backend/ent"
	"portfolio-go-backend/pkg/adapter/controller"
	contactusecase "portfolio-go-backend/pkg/usecase/usecase/contact"
)

type registry struct {
	client   *ent.Client
	notifier contactusecase.Notifier
	baseURL  string
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
}

// New registers entire controller with dependencies
func New(client *ent.Client, notifier contactusecase.Notifier, baseURL string) Registry {
	return &registry{
		client:   client,
		notifier: notifier,
		baseURL:  baseURL,
	}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Page:          r.NewPageController(),
		Contact:       r.NewContactController(),
		Sitemap:       r.NewSitemapController(),
		Auth:          r.NewAuthController(),
		Profile:       r.NewProfileController(),
		Education:     r.NewEducationController(),
		Experience:    r.NewExperienceController(),
		Skill:         r.NewSkillController(),
		Certification: r.NewCertificationController(),
		Project:       r.NewProjectController(),
		SiteSettings:  r.NewSiteSettingsController(),
	}
}
