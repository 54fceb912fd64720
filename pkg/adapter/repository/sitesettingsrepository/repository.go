package sitesettingsrepository

import (
	"context"
	"errors"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/pkg/entity/model"
	ur "portfolio-go-backend/pkg/usecase/repository"
)

type siteSettingsRepository struct {
	client *ent.Client
}

func NewSiteSettingsRepository(client *ent.Client) ur.SiteSettings {
	return &siteSettingsRepository{client}
}

func (r *siteSettingsRepository) First(ctx context.Context) (*model.SiteSettings, error) {
	res, err := r.client.SiteSettings.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

// Create enforces the single-row invariant: a second settings row is
// rejected at the write boundary.
func (r *siteSettingsRepository) Create(
	ctx context.Context,
	input model.CreateSiteSettingsInput,
) (*model.SiteSettings, error) {
	n, err := r.client.SiteSettings.Query().Count(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	if n > 0 {
		return nil, model.NewValidationError(map[string]string{
			"siteSettings": "a settings row already exists",
		})
	}

	res, err := r.client.SiteSettings.Create().
		SetNillableSiteTitle(input.SiteTitle).
		SetNillableSiteDescription(input.SiteDescription).
		SetNillableFooterText(input.FooterText).
		SetNillableGoogleAnalyticsID(input.GoogleAnalyticsID).
		SetNillableMaintenanceMode(input.MaintenanceMode).
		Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *siteSettingsRepository) Update(
	ctx context.Context,
	input model.UpdateSiteSettingsInput,
) (*model.SiteSettings, error) {
	if input.ID == "" {
		return nil, model.NewInvalidParamError(errors.New("id is required"))
	}
	res, err := r.client.SiteSettings.UpdateOneID(input.ID).
		SetNillableSiteTitle(input.SiteTitle).
		SetNillableSiteDescription(input.SiteDescription).
		SetNillableFooterText(input.FooterText).
		SetNillableGoogleAnalyticsID(input.GoogleAnalyticsID).
		SetNillableMaintenanceMode(input.MaintenanceMode).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, input.ID)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}
