package contactrepository

import (
	"context"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

func (r *contactRepository) MarkRead(ctx context.Context, id ulid.ID) (*model.Contact, error) {
	u, err := r.client.Contact.UpdateOneID(id).SetIsRead(true).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, id)
		}
		return nil, model.NewDBError(err)
	}
	return u, nil
}

func (r *contactRepository) MarkReplied(ctx context.Context, id ulid.ID) (*model.Contact, error) {
	u, err := r.client.Contact.UpdateOneID(id).SetIsReplied(true).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, id)
		}
		return nil, model.NewDBError(err)
	}
	return u, nil
}
