package model

import (
	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/ent/skill"
)

// Skill is the model entity for the Skill schema.
type Skill = ent.Skill

// SkillCategory is the category enum.
type SkillCategory = skill.Category

// SkillProficiency is the proficiency enum.
type SkillProficiency = skill.Proficiency

// CreateSkillInput represents a mutation input for creating skills.
type CreateSkillInput struct {
	Name              string           `json:"name"`
	Category          SkillCategory    `json:"category"`
	Proficiency       SkillProficiency `json:"proficiency"`
	YearsOfExperience *int             `json:"yearsOfExperience,omitempty"`
	IsFeatured        *bool            `json:"isFeatured,omitempty"`
}

// UpdateSkillInput represents a mutation input for updating skills.
type UpdateSkillInput struct {
	ID                ulid.ID           `json:"id"`
	Name              *string           `json:"name,omitempty"`
	Category          *SkillCategory    `json:"category,omitempty"`
	Proficiency       *SkillProficiency `json:"proficiency,omitempty"`
	YearsOfExperience *int              `json:"yearsOfExperience,omitempty"`
	IsFeatured        *bool             `json:"isFeatured,omitempty"`
}
