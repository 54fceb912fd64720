package model

import (
	"time"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/experience"
	"portfolio-go-backend/ent/schema/ulid"
)

// Experience is the model entity for the Experience schema.
type Experience = ent.Experience

// ExperienceJobType is the job type enum.
type ExperienceJobType = experience.JobType

// CreateExperienceInput represents a mutation input for creating experiences.
type CreateExperienceInput struct {
	Title        string            `json:"title"`
	Company      string            `json:"company"`
	Location     *string           `json:"location,omitempty"`
	JobType      ExperienceJobType `json:"jobType"`
	StartDate    time.Time         `json:"startDate"`
	EndDate      *time.Time        `json:"endDate,omitempty"`
	IsCurrent    *bool             `json:"isCurrent,omitempty"`
	Description  string            `json:"description"`
	Achievements *string           `json:"achievements,omitempty"`
	Technologies *string           `json:"technologies,omitempty"`
}

// UpdateExperienceInput represents a mutation input for updating experiences.
type UpdateExperienceInput struct {
	ID           ulid.ID            `json:"id"`
	Title        *string            `json:"title,omitempty"`
	Company      *string            `json:"company,omitempty"`
	Location     *string            `json:"location,omitempty"`
	JobType      *ExperienceJobType `json:"jobType,omitempty"`
	StartDate    *time.Time         `json:"startDate,omitempty"`
	EndDate      *time.Time         `json:"endDate,omitempty"`
	IsCurrent    *bool              `json:"isCurrent,omitempty"`
	Description  *string            `json:"description,omitempty"`
	Achievements *string            `json:"achievements,omitempty"`
	Technologies *string            `json:"technologies,omitempty"`
}
