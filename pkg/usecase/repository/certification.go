//go:generate mockgen -source=certification.go -destination=./mocks/certification_repository_mock.go -package=mocks
package repository

import (
	"context"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

// Certification is an interface of repository. List is ordered by issue
// date descending.
type Certification interface {
	List(ctx context.Context) ([]*model.Certification, error)
	Get(ctx context.Context, id ulid.ID) (*model.Certification, error)
	Create(ctx context.Context, input model.CreateCertificationInput) (*model.Certification, error)
	Update(ctx context.Context, input model.UpdateCertificationInput) (*model.Certification, error)
	Delete(ctx context.Context, id ulid.ID) error
}
