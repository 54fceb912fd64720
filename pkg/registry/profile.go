package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	profilerepository "portfolio-go-backend/pkg/adapter/repository/profilerepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/profile"
)

func (r *registry) NewProfileController() controller.Profile {
	repo := profilerepository.NewProfileRepository(r.client)
	u := usecase.NewProfileUseCase(repo)

	return controller.NewProfileController(u)
}
