package model

import (
	"time"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/schema/ulid"
)

// Certification is the model entity for the Certification schema.
type Certification = ent.Certification

// CreateCertificationInput represents a mutation input for creating certifications.
type CreateCertificationInput struct {
	Name                string     `json:"name"`
	IssuingOrganization string     `json:"issuingOrganization"`
	IssueDate           time.Time  `json:"issueDate"`
	ExpirationDate      *time.Time `json:"expirationDate,omitempty"`
	CredentialID        *string    `json:"credentialId,omitempty"`
	CredentialURL       *string    `json:"credentialUrl,omitempty"`
	CertificateFile     *string    `json:"certificateFile,omitempty"`
}

// UpdateCertificationInput represents a mutation input for updating certifications.
type UpdateCertificationInput struct {
	ID                  ulid.ID    `json:"id"`
	Name                *string    `json:"name,omitempty"`
	IssuingOrganization *string    `json:"issuingOrganization,omitempty"`
	IssueDate           *time.Time `json:"issueDate,omitempty"`
	ExpirationDate      *time.Time `json:"expirationDate,omitempty"`
	CredentialID        *string    `json:"credentialId,omitempty"`
	CredentialURL       *string    `json:"credentialUrl,omitempty"`
	CertificateFile     *string    `json:"certificateFile,omitempty"`
}
