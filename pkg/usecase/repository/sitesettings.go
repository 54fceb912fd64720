//go:generate mockgen -source=sitesettings.go -destination=./mocks/sitesettings_repository_mock.go -package=mocks
package repository

import (
	"context"
	"portfolio-go-backend/pkg/entity/model"
)

// SiteSettings is an interface of repository. First returns nil without
// error when the settings row does not exist. Create fails with a
// validation error when a row already exists.
type SiteSettings interface {
	First(ctx context.Context) (*model.SiteSettings, error)
	Create(ctx context.Context, input model.CreateSiteSettingsInput) (*model.SiteSettings, error)
	Update(ctx context.Context, input model.UpdateSiteSettingsInput) (*model.SiteSettings, error)
}
