package schema

import (
	"portfolio-go-backend/ent/mixin"
	"portfolio-go-backend/pkg/const/globalid"

	entMixin "entgo.io/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Experience holds the schema definition for a professional position.
type Experience struct {
	ent.Schema
}

// ExperienceMixin defines Fields
type ExperienceMixin struct {
	entMixin.Schema
}

// Fields of the Experience.
func (ExperienceMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(200),
		field.String("company").
			NotEmpty().
			MaxLen(200),
		field.String("location").
			MaxLen(100).
			Optional(),
		field.Enum("job_type").
			Values("full_time", "part_time", "contract", "internship", "freelance"),
		field.Time("start_date"),
		field.Time("end_date").
			Optional().
			Nillable(),
		field.Bool("is_current").Default(false),
		field.Text("description"),
		field.Text("achievements").Optional(),
		// Comma-separated list rendered through the split template helper.
		field.String("technologies").
			MaxLen(500).
			Optional(),
	}
}

// Mixin of the Experience.
func (Experience) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().Experience.Prefix),
		ExperienceMixin{},
		mixin.NewDatetime(),
	}
}
