package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	authrepository "portfolio-go-backend/pkg/adapter/repository/authrepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/auth"
)

func (r *registry) NewAuthController() controller.Auth {
	repo := authrepository.NewAuthRepository(r.client)
	u := usecase.NewAuthUseCase(repo)

	return controller.NewAuthController(u)
}
