package usecase

import (
	"context"

	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
)

type siteSettingsUseCase struct {
	siteSettingsRepository repository.SiteSettings
}

type SiteSettings interface {
	First(ctx context.Context) (*model.SiteSettings, error)
	Create(ctx context.Context, input model.CreateSiteSettingsInput) (*model.SiteSettings, error)
	Update(ctx context.Context, input model.UpdateSiteSettingsInput) (*model.SiteSettings, error)
}

// This function creates new site settings use case
func NewSiteSettingsUseCase(r repository.SiteSettings) SiteSettings {
	return &siteSettingsUseCase{siteSettingsRepository: r}
}

func (s *siteSettingsUseCase) First(ctx context.Context) (*model.SiteSettings, error) {
	return s.siteSettingsRepository.First(ctx)
}

func (s *siteSettingsUseCase) Create(
	ctx context.Context,
	input model.CreateSiteSettingsInput,
) (*model.SiteSettings, error) {
	return s.siteSettingsRepository.Create(ctx, input)
}

func (s *siteSettingsUseCase) Update(
	ctx context.Context,
	input model.UpdateSiteSettingsInput,
) (*model.SiteSettings, error) {
	return s.siteSettingsRepository.Update(ctx, input)
}
