package schema

import (
	"portfolio-go-backend/ent/mixin"
	"portfolio-go-backend/pkg/const/globalid"

	entMixin "entgo.io/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Certification holds the schema definition for the Certification entity.
type Certification struct {
	ent.Schema
}

// CertificationMixin defines Fields
type CertificationMixin struct {
	entMixin.Schema
}

// Fields of the Certification.
func (CertificationMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200),
		field.String("issuing_organization").
			NotEmpty().
			MaxLen(200),
		field.Time("issue_date"),
		field.Time("expiration_date").
			Optional().
			Nillable(),
		field.String("credential_id").
			MaxLen(100).
			Optional(),
		field.String("credential_url").Optional(),
		field.String("certificate_file").Optional(),
	}
}

// Mixin of the Certification.
func (Certification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.NewUlid(globalid.New().Certification.Prefix),
		CertificationMixin{},
		mixin.NewDatetime(),
	}
}
