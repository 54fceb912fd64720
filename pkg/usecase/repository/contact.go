//go:generate mockgen -source=contact.go -destination=./mocks/contact_repository_mock.go -package=mocks
package repository

import (
	"context"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

// Contact is an interface of repository. The public site only ever calls
// Create; the moderation operations back the admin API.
type Contact interface {
	Create(ctx context.Context, input model.CreateContactInput) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)
	ListUnread(ctx context.Context) ([]*model.Contact, error)
	MarkRead(ctx context.Context, id ulid.ID) (*model.Contact, error)
	MarkReplied(ctx context.Context, id ulid.ID) (*model.Contact, error)
}
