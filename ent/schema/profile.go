package schema

import (
	"portfolio-go-backend/ent/mixin"
	"portfolio-go-backend/pkg/const/globalid"

	entMixin "entgo.io/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile holds the schema definition for the site owner's profile.
type Profile struct {
	ent.Schema
}

// ProfileMixin defines Fields
type ProfileMixin struct {
	entMixin.Schema
}

// Fields of the Profile.
func (ProfileMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(100),
		field.String("title").
			MaxLen(200),
		field.Text("bio"),
		field.String("email").NotEmpty(),
		field.String("phone").
			MaxLen(20).
			Optional(),
		field.String("location").
			MaxLen(100).
			Optional(),
		field.String("linkedin").Optional(),
		field.String("github").Optional(),
		field.String("website").Optional(),
		field.String("profile_image").Optional(),
		field.String("cv_file").Optional(),
	}
}

// Mixin of the Profile.
func (Profile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().Profile.Prefix),
		ProfileMixin{},
		mixin.NewDatetime(),
	}
}
