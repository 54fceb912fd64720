package usecase

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
)

type skillUseCase struct {
	skillRepository repository.Skill
}

type Skill interface {
	List(ctx context.Context) ([]*model.Skill, error)
	Get(ctx context.Context, id ulid.ID) (*model.Skill, error)
	Create(ctx context.Context, input model.CreateSkillInput) (*model.Skill, error)
	Update(ctx context.Context, input model.UpdateSkillInput) (*model.Skill, error)
	Delete(ctx context.Context, id ulid.ID) error
}

// This function creates new skill use case
func NewSkillUseCase(r repository.Skill) Skill {
	return &skillUseCase{skillRepository: r}
}

func (s *skillUseCase) List(ctx context.Context) ([]*model.Skill, error) {
	return s.skillRepository.List(ctx)
}

func (s *skillUseCase) Get(ctx context.Context, id ulid.ID) (*model.Skill, error) {
	return s.skillRepository.Get(ctx, id)
}

func (s *skillUseCase) Create(
	ctx context.Context,
	input model.CreateSkillInput,
) (*model.Skill, error) {
	return s.skillRepository.Create(ctx, input)
}

func (s *skillUseCase) Update(
	ctx context.Context,
	input model.UpdateSkillInput,
) (*model.Skill, error) {
	return s.skillRepository.Update(ctx, input)
}

func (s *skillUseCase) Delete(ctx context.Context, id ulid.ID) error {
	return s.skillRepository.Delete(ctx, id)
}
