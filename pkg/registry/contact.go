package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	contactrepository "portfolio-go-backend/pkg/adapter/repository/contactrepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/contact"
)

func (r *registry) NewContactController() controller.Contact {
	repo := contactrepository.NewContactRepository(r.client)
	u := usecase.NewContactUseCase(repo, r.notifier)

	return controller.NewContactController(u)
}
