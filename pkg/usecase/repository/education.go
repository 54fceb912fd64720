//go:generate mockgen -source=education.go -destination=./mocks/education_repository_mock.go -package=mocks
package repository

import (
	"context"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

// Education is an interface of repository. List is ordered by start date
// descending.
type Education interface {
	List(ctx context.Context) ([]*model.Education, error)
	Get(ctx context.Context, id ulid.ID) (*model.Education, error)
	Create(ctx context.Context, input model.CreateEducationInput) (*model.Education, error)
	Update(ctx context.Context, input model.UpdateEducationInput) (*model.Education, error)
	Delete(ctx context.Context, id ulid.ID) error
}
