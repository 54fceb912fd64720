package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	certificationrepository "portfolio-go-backend/pkg/adapter/repository/certificationrepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/certification"
)

func (r *registry) NewCertificationController() controller.Certification {
	repo := certificationrepository.NewCertificationRepository(r.client)
	u := usecase.NewCertificationUseCase(repo)

	return controller.NewCertificationController(u)
}
