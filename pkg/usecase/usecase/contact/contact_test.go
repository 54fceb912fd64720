package usecase_test

import (
	"context"
	"errors"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository/mocks"
	usecase "portfolio-go-backend/pkg/usecase/usecase/contact"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeNotifier records the last notification and can be told to fail.
type fakeNotifier struct {
	err    error
	called bool
	name   string
}

func (f *fakeNotifier) SendContactNotification(name, email, subject, message string) error {
	f.called = true
	f.name = name
	return f.err
}

func TestSubmitContact(t *testing.T) {
	validInput := model.CreateContactInput{
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Subject: "Bonjour",
		Message: "Je voudrais discuter d'un projet.",
	}

	tests := []struct {
		name     string
		input    model.CreateContactInput
		notifier *fakeNotifier
		arrange  func(mockRepo *mocks.MockContact)
		assert   func(t *testing.T, notifier *fakeNotifier, result *model.ContactResult, err error)
	}{
		{
			name:     "Should persist and notify on a valid submission",
			input:    validInput,
			notifier: &fakeNotifier{},
			arrange: func(mockRepo *mocks.MockContact) {
				mockRepo.EXPECT().
					Create(gomock.Any(), validInput).
					Return(&model.Contact{ID: "1", Name: validInput.Name}, nil)
			},
			assert: func(t *testing.T, notifier *fakeNotifier, result *model.ContactResult, err error) {
				require.NoError(t, err)
				require.NotNil(t, result)
				require.True(t, result.EmailSent, "expected the notification to be marked as sent")
				require.True(t, notifier.called, "expected the notifier to be called")
				require.Equal(t, "Jean Dupont", notifier.name)
			},
		},
		{
			name:     "Should keep the message when the notification fails",
			input:    validInput,
			notifier: &fakeNotifier{err: errors.New("smtp unreachable")},
			arrange: func(mockRepo *mocks.MockContact) {
				mockRepo.EXPECT().
					Create(gomock.Any(), validInput).
					Return(&model.Contact{ID: "1", Name: validInput.Name}, nil)
			},
			assert: func(t *testing.T, notifier *fakeNotifier, result *model.ContactResult, err error) {
				require.NoError(t, err, "a notification failure must not fail the submission")
				require.NotNil(t, result)
				require.False(t, result.EmailSent, "expected EmailSent to be off when delivery fails")
				require.NotNil(t, result.Contact, "the message must still be persisted")
			},
		},
		{
			name: "Should reject an invalid email without persisting",
			input: model.CreateContactInput{
				Name:    "Jean Dupont",
				Email:   "not-an-address",
				Subject: "Bonjour",
				Message: "Message",
			},
			notifier: &fakeNotifier{},
			arrange: func(mockRepo *mocks.MockContact) {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			assert: func(t *testing.T, notifier *fakeNotifier, result *model.ContactResult, err error) {
				require.Error(t, err)
				require.Nil(t, result)
				require.False(t, notifier.called, "no notification should be sent for a rejected submission")
			},
		},
		{
			name:     "Should return the repository error",
			input:    validInput,
			notifier: &fakeNotifier{},
			arrange: func(mockRepo *mocks.MockContact) {
				mockRepo.EXPECT().
					Create(gomock.Any(), validInput).
					Return(nil, errors.New("db down"))
			},
			assert: func(t *testing.T, notifier *fakeNotifier, result *model.ContactResult, err error) {
				require.Error(t, err)
				require.Nil(t, result)
				require.False(t, notifier.called, "no notification should be sent when persistence fails")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockContact(ctrl)

			tt.arrange(mockRepo)

			uc := usecase.NewContactUseCase(mockRepo, tt.notifier)
			result, err := uc.Submit(context.Background(), tt.input)

			tt.assert(t, tt.notifier, result, err)

			ctrl.Finish()
		})
	}
}
