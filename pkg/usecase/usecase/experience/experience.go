package usecase

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
)

type experienceUseCase struct {
	experienceRepository repository.Experience
}

type Experience interface {
	List(ctx context.Context) ([]*model.Experience, error)
	Get(ctx context.Context, id ulid.ID) (*model.Experience, error)
	Create(ctx context.Context, input model.CreateExperienceInput) (*model.Experience, error)
	Update(ctx context.Context, input model.UpdateExperienceInput) (*model.Experience, error)
	Delete(ctx context.Context, id ulid.ID) error
}

// This function creates new experience use case
func NewExperienceUseCase(r repository.Experience) Experience {
	return &experienceUseCase{experienceRepository: r}
}

func (e *experienceUseCase) List(ctx context.Context) ([]*model.Experience, error) {
	return e.experienceRepository.List(ctx)
}

func (e *experienceUseCase) Get(ctx context.Context, id ulid.ID) (*model.Experience, error) {
	return e.experienceRepository.Get(ctx, id)
}

func (e *experienceUseCase) Create(
	ctx context.Context,
	input model.CreateExperienceInput,
) (*model.Experience, error) {
	return e.experienceRepository.Create(ctx, input)
}

func (e *experienceUseCase) Update(
	ctx context.Context,
	input model.UpdateExperienceInput,
) (*model.Experience, error) {
	return e.experienceRepository.Update(ctx, input)
}

func (e *experienceUseCase) Delete(ctx context.Context, id ulid.ID) error {
	return e.experienceRepository.Delete(ctx, id)
}
