package model

import (
	"time"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/education"
	"portfolio-go-backend/ent/schema/ulid"
)

// Education is the model entity for the Education schema.
type Education = ent.Education

// EducationDegree is the degree enum.
type EducationDegree = education.Degree

// CreateEducationInput represents a mutation input for creating educations.
type CreateEducationInput struct {
	Degree       EducationDegree `json:"degree"`
	FieldOfStudy string          `json:"fieldOfStudy"`
	Institution  string          `json:"institution"`
	Location     *string         `json:"location,omitempty"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      *time.Time      `json:"endDate,omitempty"`
	IsCurrent    *bool           `json:"isCurrent,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Grade        *string         `json:"grade,omitempty"`
}

// UpdateEducationInput represents a mutation input for updating educations.
type UpdateEducationInput struct {
	ID           ulid.ID          `json:"id"`
	Degree       *EducationDegree `json:"degree,omitempty"`
	FieldOfStudy *string          `json:"fieldOfStudy,omitempty"`
	Institution  *string          `json:"institution,omitempty"`
	Location     *string          `json:"location,omitempty"`
	StartDate    *time.Time       `json:"startDate,omitempty"`
	EndDate      *time.Time       `json:"endDate,omitempty"`
	IsCurrent    *bool            `json:"isCurrent,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Grade        *string          `json:"grade,omitempty"`
}
