package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	experiencerepository "portfolio-go-backend/pkg/adapter/repository/experiencerepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/experience"
)

func (r *registry) NewExperienceController() controller.Experience {
	repo := experiencerepository.NewExperienceRepository(r.client)
	u := usecase.NewExperienceUseCase(repo)

	return controller.NewExperienceController(u)
}
