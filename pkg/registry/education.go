package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	educationrepository "portfolio-go-backend/pkg/adapter/repository/educationrepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/education"
)

func (r *registry) NewEducationController() controller.Education {
	repo := educationrepository.NewEducationRepository(r.client)
	u := usecase.NewEducationUseCase(repo)

	return controller.NewEducationController(u)
}
