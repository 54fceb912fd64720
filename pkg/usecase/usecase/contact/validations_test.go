package usecase_test

import (
	"errors"
	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/contact"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCreateContactInput(t *testing.T) {
	tests := []struct {
		name   string
		input  model.CreateContactInput
		assert func(t *testing.T, err error)
	}{
		{
			name: "Should accept a complete submission",
			input: model.CreateContactInput{
				Name:    "Jean Dupont",
				Email:   "jean@example.com",
				Subject: "Bonjour",
				Message: "Un message.",
			},
			assert: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:  "Should report every missing field",
			input: model.CreateContactInput{},
			assert: func(t *testing.T, err error) {
				require.Error(t, err)
				var appErr *model.Error
				require.True(t, errors.As(err, &appErr))
				require.Len(t, appErr.Fields, 4)
				require.Contains(t, appErr.Fields, "name")
				require.Contains(t, appErr.Fields, "email")
				require.Contains(t, appErr.Fields, "subject")
				require.Contains(t, appErr.Fields, "message")
			},
		},
		{
			name: "Should reject a malformed email",
			input: model.CreateContactInput{
				Name:    "Jean Dupont",
				Email:   "jean@@example",
				Subject: "Bonjour",
				Message: "Un message.",
			},
			assert: func(t *testing.T, err error) {
				require.Error(t, err)
				var appErr *model.Error
				require.True(t, errors.As(err, &appErr))
				require.Len(t, appErr.Fields, 1)
				require.Equal(t, "Email is not a valid address", appErr.Fields["email"])
			},
		},
		{
			name: "Should treat whitespace-only values as missing",
			input: model.CreateContactInput{
				Name:    "   ",
				Email:   "jean@example.com",
				Subject: "\t",
				Message: "Un message.",
			},
			assert: func(t *testing.T, err error) {
				require.Error(t, err)
				var appErr *model.Error
				require.True(t, errors.As(err, &appErr))
				require.Contains(t, appErr.Fields, "name")
				require.Contains(t, appErr.Fields, "subject")
				require.NotContains(t, appErr.Fields, "email")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usecase.ValidateCreateContactInput(tt.input)
			tt.assert(t, err)
		})
	}
}
