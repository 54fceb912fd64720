//go:generate mockgen -source=project.go -destination=./mocks/project_repository_mock.go -package=mocks
package repository

import (
	"context"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

// Project is an interface of repository. All listings are ordered by start
// date descending.
type Project interface {
	List(ctx context.Context, page, perPage int) (*model.ProjectPage, error)
	ListAll(ctx context.Context) ([]*model.Project, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.Project, error)
	Get(ctx context.Context, id ulid.ID) (*model.Project, error)
	Create(ctx context.Context, input model.CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, input model.UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id ulid.ID) error
}
