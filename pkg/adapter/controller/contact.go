package controller

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/contact"
)

type Contact interface {
	Submit(ctx context.Context, input model.CreateContactInput) (*model.ContactResult, error)
	List(ctx context.Context) ([]*model.Contact, error)
	MarkRead(ctx context.Context, id ulid.ID) (*model.Contact, error)
	MarkReplied(ctx context.Context, id ulid.ID) (*model.Contact, error)
}

type contactController struct {
	contactUseCase usecase.Contact
}

// Create new contact controller

func NewContactController(cu usecase.Contact) Contact {
	return &contactController{contactUseCase: cu}
}

func (cc *contactController) Submit(
	ctx context.Context,
	input model.CreateContactInput,
) (*model.ContactResult, error) {
	return cc.contactUseCase.Submit(ctx, input)
}

func (cc *contactController) List(ctx context.Context) ([]*model.Contact, error) {
	return cc.contactUseCase.List(ctx)
}

func (cc *contactController) MarkRead(ctx context.Context, id ulid.ID) (*model.Contact, error) {
	return cc.contactUseCase.MarkRead(ctx, id)
}

func (cc *contactController) MarkReplied(ctx context.Context, id ulid.ID) (*model.Contact, error) {
	return cc.contactUseCase.MarkReplied(ctx, id)
}
