package usecase

import (
	"context"
	"os"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Notifier delivers the operator notification for a new message.
type Notifier interface {
	SendContactNotification(name, email, subject, message string) error
}

type contactUseCase struct {
	contactRepository repository.Contact
	notifier          Notifier
	logger            *zap.SugaredLogger
}

type Contact interface {
	Submit(ctx context.Context, input model.CreateContactInput) (*model.ContactResult, error)
	List(ctx context.Context) ([]*model.Contact, error)
	MarkRead(ctx context.Context, id ulid.ID) (*model.Contact, error)
	MarkReplied(ctx context.Context, id ulid.ID) (*model.Contact, error)
}

// This function creates new contact use case
func NewContactUseCase(r repository.Contact, n Notifier) Contact {
	return &contactUseCase{
		contactRepository: r,
		notifier:          n,
		logger:            newContactLogger(),
	}
}

// Submit validates and persists a message, then notifies the operator.
// Delivery is best effort: a failed notification never loses the message,
// it only flips EmailSent off so the caller can warn the sender.
func (c *contactUseCase) Submit(
	ctx context.Context,
	input model.CreateContactInput,
) (*model.ContactResult, error) {
	if err := ValidateCreateContactInput(input); err != nil {
		return nil, err
	}

	contact, err := c.contactRepository.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	emailSent := true
	if err := c.notifier.SendContactNotification(
		input.Name, input.Email, input.Subject, input.Message,
	); err != nil {
		c.logger.Warnf("contact notification failed for %s: %v", contact.ID, err)
		emailSent = false
	}

	return &model.ContactResult{
		Contact:   contact,
		EmailSent: emailSent,
	}, nil
}

func (c *contactUseCase) List(ctx context.Context) ([]*model.Contact, error) {
	return c.contactRepository.List(ctx)
}

func (c *contactUseCase) MarkRead(ctx context.Context, id ulid.ID) (*model.Contact, error) {
	return c.contactRepository.MarkRead(ctx, id)
}

func (c *contactUseCase) MarkReplied(ctx context.Context, id ulid.ID) (*model.Contact, error) {
	return c.contactRepository.MarkReplied(ctx, id)
}

func newContactLogger() *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stdout),
		zapcore.InfoLevel,
	)

	return zap.New(core).Sugar()
}
