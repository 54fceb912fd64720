package contactrepository

import (
	"context"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/contact"
	"portfolio-go-backend/pkg/entity/model"
)

func (r *contactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	res, err := r.client.Contact.Query().
		Order(ent.Desc(contact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *contactRepository) ListUnread(ctx context.Context) ([]*model.Contact, error) {
	res, err := r.client.Contact.Query().
		Where(contact.IsRead(false)).
		Order(ent.Desc(contact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}
