package controller

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/skill"
)

type Skill interface {
	List(ctx context.Context) ([]*model.Skill, error)
	Get(ctx context.Context, id ulid.ID) (*model.Skill, error)
	Create(ctx context.Context, input model.CreateSkillInput) (*model.Skill, error)
	Update(ctx context.Context, input model.UpdateSkillInput) (*model.Skill, error)
	Delete(ctx context.Context, id ulid.ID) error
}

type skillController struct {
	skillUseCase usecase.Skill
}

// Create new skill controller

func NewSkillController(su usecase.Skill) Skill {
	return &skillController{skillUseCase: su}
}

func (sc *skillController) List(ctx context.Context) ([]*model.Skill, error) {
	return sc.skillUseCase.List(ctx)
}

func (sc *skillController) Get(ctx context.Context, id ulid.ID) (*model.Skill, error) {
	return sc.skillUseCase.Get(ctx, id)
}

func (sc *skillController) Create(
	ctx context.Context,
	input model.CreateSkillInput,
) (*model.Skill, error) {
	return sc.skillUseCase.Create(ctx, input)
}

func (sc *skillController) Update(
	ctx context.Context,
	input model.UpdateSkillInput,
) (*model.Skill, error) {
	return sc.skillUseCase.Update(ctx, input)
}

func (sc *skillController) Delete(ctx context.Context, id ulid.ID) error {
	return sc.skillUseCase.Delete(ctx, id)
}
