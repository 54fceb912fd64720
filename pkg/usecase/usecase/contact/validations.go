package usecase

import (
	"net/mail"
	"strings"

	"portfolio-go-backend/pkg/entity/model"
)

// ValidateCreateContactInput checks the required fields of a submission and
// returns a validation error carrying one message per offending field.
func ValidateCreateContactInput(input model.CreateContactInput) error {
	fields := map[string]string{}

	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		fields["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		fields["email"] = "Email is not a valid address"
	}
	if strings.TrimSpace(input.Subject) == "" {
		fields["subject"] = "Subject is required"
	}
	if strings.TrimSpace(input.Message) == "" {
		fields["message"] = "Message is required"
	}

	if len(fields) > 0 {
		return model.NewValidationError(fields)
	}
	return nil
}
