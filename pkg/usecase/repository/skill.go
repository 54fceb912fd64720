//go:generate mockgen -source=skill.go -destination=./mocks/skill_repository_mock.go -package=mocks
package repository

import (
	"context"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

// Skill is an interface of repository. Listings are ordered by category
// then name.
type Skill interface {
	List(ctx context.Context) ([]*model.Skill, error)
	ListFeatured(ctx context.Context) ([]*model.Skill, error)
	Get(ctx context.Context, id ulid.ID) (*model.Skill, error)
	Create(ctx context.Context, input model.CreateSkillInput) (*model.Skill, error)
	Update(ctx context.Context, input model.UpdateSkillInput) (*model.Skill, error)
	Delete(ctx context.Context, id ulid.ID) error
}
