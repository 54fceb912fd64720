package schema

import (
	"portfolio-go-backend/ent/mixin"
	"portfolio-go-backend/pkg/const/globalid"

	entMixin "entgo.io/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Skill holds the schema definition for the Skill entity.
type Skill struct {
	ent.Schema
}

// SkillMixin defines Fields
type SkillMixin struct {
	entMixin.Schema
}

// Fields of the Skill.
func (SkillMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(100),
		field.Enum("category").
			Values("technical", "soft", "language", "tool"),
		field.Enum("proficiency").
			Values("beginner", "intermediate", "advanced", "expert"),
		field.Int("years_of_experience").
			NonNegative().
			Default(0),
		field.Bool("is_featured").Default(false),
	}
}

// Mixin of the Skill.
func (Skill) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().Skill.Prefix),
		SkillMixin{},
		mixin.NewDatetime(),
	}
}
