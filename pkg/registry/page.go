package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/adapter/repository/certificationrepository"
	"portfolio-go-backend/pkg/adapter/repository/educationrepository"
	"portfolio-go-backend/pkg/adapter/repository/experiencerepository"
	"portfolio-go-backend/pkg/adapter/repository/profilerepository"
	"portfolio-go-backend/pkg/adapter/repository/projectrepository"
	"portfolio-go-backend/pkg/adapter/repository/sitesettingsrepository"
	"portfolio-go-backend/pkg/adapter/repository/skillrepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/page"
)

func (r *registry) NewPageController() controller.Page {
	u := usecase.NewPageUseCase(
		profilerepository.NewProfileRepository(r.client),
		sitesettingsrepository.NewSiteSettingsRepository(r.client),
		educationrepository.NewEducationRepository(r.client),
		experiencerepository.NewExperienceRepository(r.client),
		skillrepository.NewSkillRepository(r.client),
		certificationrepository.NewCertificationRepository(r.client),
		projectrepository.NewProjectRepository(r.client),
	)

	return controller.NewPageController(u)
}
