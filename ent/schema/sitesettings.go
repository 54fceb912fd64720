package schema

import (
	"portfolio-go-backend/ent/mixin"
	"portfolio-go-backend/pkg/const/globalid"

	entMixin "entgo.io/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SiteSettings holds the schema definition for site-wide settings.
// At most one row may exist; the repository enforces this on create.
type SiteSettings struct {
	ent.Schema
}

// SiteSettingsMixin defines Fields
type SiteSettingsMixin struct {
	entMixin.Schema
}

// Fields of the SiteSettings.
func (SiteSettingsMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("site_title").
			MaxLen(100).
			Default("Portfolio"),
		field.Text("site_description").Optional(),
		field.String("footer_text").
			MaxLen(200).
			Optional(),
		field.String("google_analytics_id").
			MaxLen(50).
			Optional(),
		field.Bool("maintenance_mode").Default(false),
	}
}

// Mixin of the SiteSettings.
func (SiteSettings) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().SiteSettings.Prefix),
		SiteSettingsMixin{},
		mixin.NewDatetime(),
	}
}
