package model

import "portfolio-go-backend/ent"

// Contact is the model entity for the Contact schema.
type Contact = ent.Contact

// CreateContactInput represents a contact form submission.
type CreateContactInput struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ContactResult is the outcome of a submission. EmailSent is false when the
// row was persisted but the operator notification could not be delivered.
type ContactResult struct {
	Contact   *Contact
	EmailSent bool
}
