package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	projectrepository "portfolio-go-backend/pkg/adapter/repository/projectrepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/project"
)

func (r *registry) NewProjectController() controller.Project {
	repo := projectrepository.NewProjectRepository(r.client)
	u := usecase.NewProjectUseCase(repo)

	return controller.NewProjectController(u)
}
