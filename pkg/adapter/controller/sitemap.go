package controller

import (
	"context"

	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/sitemap"
)

type Sitemap interface {
	Build(ctx context.Context) (*model.SitemapURLSet, error)
}

type sitemapController struct {
	sitemapUseCase usecase.Sitemap
}

// Create new sitemap controller

func NewSitemapController(su usecase.Sitemap) Sitemap {
	return &sitemapController{sitemapUseCase: su}
}

func (sc *sitemapController) Build(ctx context.Context) (*model.SitemapURLSet, error) {
	return sc.sitemapUseCase.Build(ctx)
}
