package model

import (
	"time"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/project"
	"portfolio-go-backend/ent/schema/ulid"
)

// Project is the model entity for the Project schema.
type Project = ent.Project

// ProjectStatus is the status enum.
type ProjectStatus = project.Status

// CreateProjectInput represents a mutation input for creating projects.
type CreateProjectInput struct {
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	DetailedDescription *string        `json:"detailedDescription,omitempty"`
	Technologies        string         `json:"technologies"`
	Status              *ProjectStatus `json:"status,omitempty"`
	StartDate           time.Time      `json:"startDate"`
	EndDate             *time.Time     `json:"endDate,omitempty"`
	ProjectURL          *string        `json:"projectUrl,omitempty"`
	GithubURL           *string        `json:"githubUrl,omitempty"`
	Image               *string        `json:"image,omitempty"`
	IsFeatured          *bool          `json:"isFeatured,omitempty"`
}

// UpdateProjectInput represents a mutation input for updating projects.
type UpdateProjectInput struct {
	ID                  ulid.ID        `json:"id"`
	Title               *string        `json:"title,omitempty"`
	Description         *string        `json:"description,omitempty"`
	DetailedDescription *string        `json:"detailedDescription,omitempty"`
	Technologies        *string        `json:"technologies,omitempty"`
	Status              *ProjectStatus `json:"status,omitempty"`
	StartDate           *time.Time     `json:"startDate,omitempty"`
	EndDate             *time.Time     `json:"endDate,omitempty"`
	ProjectURL          *string        `json:"projectUrl,omitempty"`
	GithubURL           *string        `json:"githubUrl,omitempty"`
	Image               *string        `json:"image,omitempty"`
	IsFeatured          *bool          `json:"isFeatured,omitempty"`
}

// ProjectPage is one page of the project list.
type ProjectPage struct {
	Projects   []*Project `json:"projects"`
	Page       int        `json:"page"`
	PerPage    int        `json:"perPage"`
	Total      int        `json:"total"`
	TotalPages int        `json:"totalPages"`
	HasNext    bool       `json:"hasNext"`
	HasPrev    bool       `json:"hasPrev"`
}
