//go:generate mockgen -source=experience.go -destination=./mocks/experience_repository_mock.go -package=mocks
package repository

import (
	"context"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

// Experience is an interface of repository. Both listings are ordered by
// start date descending.
type Experience interface {
	List(ctx context.Context) ([]*model.Experience, error)
	ListRecent(ctx context.Context, limit int) ([]*model.Experience, error)
	Get(ctx context.Context, id ulid.ID) (*model.Experience, error)
	Create(ctx context.Context, input model.CreateExperienceInput) (*model.Experience, error)
	Update(ctx context.Context, input model.UpdateExperienceInput) (*model.Experience, error)
	Delete(ctx context.Context, id ulid.ID) error
}
