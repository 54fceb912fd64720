package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	projectrepository "portfolio-go-backend/pkg/adapter/repository/projectrepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/sitemap"
)

func (r *registry) NewSitemapController() controller.Sitemap {
	repo := projectrepository.NewProjectRepository(r.client)
	u := usecase.NewSitemapUseCase(repo, r.baseURL)

	return controller.NewSitemapController(u)
}
