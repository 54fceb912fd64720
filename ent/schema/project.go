package schema

import (
	"portfolio-go-backend/ent/mixin"
	"portfolio-go-backend/pkg/const/globalid"

	entMixin "entgo.io/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Project holds the schema definition for the Project entity.
type Project struct {
	ent.Schema
}

// ProjectMixin defines Fields
type ProjectMixin struct {
	entMixin.Schema
}

// Fields of the Project.
func (ProjectMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(200),
		field.Text("description"),
		field.Text("detailed_description").Optional(),
		field.String("technologies").
			NotEmpty().
			MaxLen(500),
		field.Enum("status").
			Values("completed", "in_progress", "planned").
			Default("completed"),
		field.Time("start_date"),
		field.Time("end_date").
			Optional().
			Nillable(),
		field.String("project_url").Optional(),
		field.String("github_url").Optional(),
		field.String("image").Optional(),
		field.Bool("is_featured").Default(false),
	}
}

// Mixin of the Project.
func (Project) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().Project.Prefix),
		ProjectMixin{},
		mixin.NewDatetime(),
	}
}
