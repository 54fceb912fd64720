package schema

import (
	"portfolio-go-backend/ent/mixin"
	"portfolio-go-backend/pkg/const/globalid"

	entMixin "entgo.io/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Contact holds the schema definition for a contact form submission.
// Rows are append-only from the public site; only the moderation flags
// are ever updated, and only through the admin API.
type Contact struct {
	ent.Schema
}

// ContactMixin defines Fields
type ContactMixin struct {
	entMixin.Schema
}

// Fields of the Contact.
func (ContactMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(100),
		field.String("email").NotEmpty(),
		field.String("subject").
			NotEmpty().
			MaxLen(200),
		field.Text("message").NotEmpty(),
		field.Bool("is_read").Default(false),
		field.Bool("is_replied").Default(false),
	}
}

// Mixin of the Contact.
func (Contact) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().Contact.Prefix),
		ContactMixin{},
		mixin.NewDatetime(),
	}
}
