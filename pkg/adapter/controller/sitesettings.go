package controller

import (
	"context"

	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/sitesettings"
)

type SiteSettings interface {
	First(ctx context.Context) (*model.SiteSettings, error)
	Create(ctx context.Context, input model.CreateSiteSettingsInput) (*model.SiteSettings, error)
	Update(ctx context.Context, input model.UpdateSiteSettingsInput) (*model.SiteSettings, error)
}

type siteSettingsController struct {
	siteSettingsUseCase usecase.SiteSettings
}

// Create new site settings controller

func NewSiteSettingsController(su usecase.SiteSettings) SiteSettings {
	return &siteSettingsController{siteSettingsUseCase: su}
}

func (sc *siteSettingsController) First(ctx context.Context) (*model.SiteSettings, error) {
	return sc.siteSettingsUseCase.First(ctx)
}

func (sc *siteSettingsController) Create(
	ctx context.Context,
	input model.CreateSiteSettingsInput,
) (*model.SiteSettings, error) {
	return sc.siteSettingsUseCase.Create(ctx, input)
}

func (sc *siteSettingsController) Update(
	ctx context.Context,
	input model.UpdateSiteSettingsInput,
) (*model.SiteSettings, error) {
	return sc.siteSettingsUseCase.Update(ctx, input)
}
