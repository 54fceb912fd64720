package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	sitesettingsrepository "portfolio-go-backend/pkg/adapter/repository/sitesettingsrepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/sitesettings"
)

func (r *registry) NewSiteSettingsController() controller.SiteSettings {
	repo := sitesettingsrepository.NewSiteSettingsRepository(r.client)
	u := usecase.NewSiteSettingsUseCase(repo)

	return controller.NewSiteSettingsController(u)
}
