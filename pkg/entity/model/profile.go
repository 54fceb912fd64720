package model

import (
	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/schema/ulid"
)

// Profile is the model entity for the Profile schema.
type Profile = ent.Profile

// CreateProfileInput represents a mutation input for creating the profile.
type CreateProfileInput struct {
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Bio          string  `json:"bio"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Location     *string `json:"location,omitempty"`
	Linkedin     *string `json:"linkedin,omitempty"`
	Github       *string `json:"github,omitempty"`
	Website      *string `json:"website,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	CvFile       *string `json:"cvFile,omitempty"`
}

// UpdateProfileInput represents a mutation input for updating the profile.
type UpdateProfileInput struct {
	ID           ulid.ID `json:"id"`
	Name         *string `json:"name,omitempty"`
	Title        *string `json:"title,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Location     *string `json:"location,omitempty"`
	Linkedin     *string `json:"linkedin,omitempty"`
	Github       *string `json:"github,omitempty"`
	Website      *string `json:"website,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	CvFile       *string `json:"cvFile,omitempty"`
}
