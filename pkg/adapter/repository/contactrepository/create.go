package contactrepository

import (
	"context"

	"portfolio-go-backend/pkg/entity/model"
)

func (r *contactRepository) Create(
	ctx context.Context,
	input model.CreateContactInput,
) (*model.Contact, error) {
	contact, err := r.client.Contact.Create().
		SetName(input.Name).
		SetEmail(input.Email).
		SetSubject(input.Subject).
		SetMessage(input.Message).
		Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return contact, nil
}
