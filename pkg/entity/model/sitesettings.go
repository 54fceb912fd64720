package model

import (
	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/schema/ulid"
)

// SiteSettings is the model entity for the SiteSettings schema.
type SiteSettings = ent.SiteSettings

// CreateSiteSettingsInput represents a mutation input for creating the settings row.
type CreateSiteSettingsInput struct {
	SiteTitle         *string `json:"siteTitle,omitempty"`
	SiteDescription   *string `json:"siteDescription,omitempty"`
	FooterText        *string `json:"footerText,omitempty"`
	GoogleAnalyticsID *string `json:"googleAnalyticsId,omitempty"`
	MaintenanceMode   *bool   `json:"maintenanceMode,omitempty"`
}

// UpdateSiteSettingsInput represents a mutation input for updating the settings row.
type UpdateSiteSettingsInput struct {
	ID                ulid.ID `json:"id"`
	SiteTitle         *string `json:"siteTitle,omitempty"`
	SiteDescription   *string `json:"siteDescription,omitempty"`
	FooterText        *string `json:"footerText,omitempty"`
	GoogleAnalyticsID *string `json:"googleAnalyticsId,omitempty"`
	MaintenanceMode   *bool   `json:"maintenanceMode,omitempty"`
}
