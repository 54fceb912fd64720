package schema

import (
	"portfolio-go-backend/ent/mixin"
	"portfolio-go-backend/pkg/const/globalid"

	entMixin "entgo.io/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Education holds the schema definition for a degree or training entry.
type Education struct {
	ent.Schema
}

// EducationMixin defines Fields
type EducationMixin struct {
	entMixin.Schema
}

// Fields of the Education.
func (EducationMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("degree").
			Values("bachelor", "master", "phd", "diploma", "certificate"),
		field.String("field_of_study").
			NotEmpty().
			MaxLen(200),
		field.String("institution").
			NotEmpty().
			MaxLen(200),
		field.String("location").
			MaxLen(100).
			Optional(),
		field.Time("start_date"),
		field.Time("end_date").
			Optional().
			Nillable(),
		field.Bool("is_current").Default(false),
		field.Text("description").Optional(),
		field.String("grade").
			MaxLen(50).
			Optional(),
	}
}

// Mixin of the Education.
func (Education) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().Education.Prefix),
		EducationMixin{},
		mixin.NewDatetime(),
	}
}
