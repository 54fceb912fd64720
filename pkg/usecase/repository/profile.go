//go:generate mockgen -source=profile.go -destination=./mocks/profile_repository_mock.go -package=mocks
package repository

import (
	"context"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

// Profile is an interface of repository. First returns nil without error
// when no profile row exists yet.
type Profile interface {
	First(ctx context.Context) (*model.Profile, error)
	Create(ctx context.Context, input model.CreateProfileInput) (*model.Profile, error)
	Update(ctx context.Context, input model.UpdateProfileInput) (*model.Profile, error)
	Delete(ctx context.Context, id ulid.ID) error
}
