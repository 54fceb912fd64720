package controller

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/experience"
)

type Experience interface {
	List(ctx context.Context) ([]*model.Experience, error)
	Get(ctx context.Context, id ulid.ID) (*model.Experience, error)
	Create(ctx context.Context, input model.CreateExperienceInput) (*model.Experience, error)
	Update(ctx context.Context, input model.UpdateExperienceInput) (*model.Experience, error)
	Delete(ctx context.Context, id ulid.ID) error
}

type experienceController struct {
	experienceUseCase usecase.Experience
}

// Create new experience controller

func NewExperienceController(eu usecase.Experience) Experience {
	return &experienceController{experienceUseCase: eu}
}

func (ec *experienceController) List(ctx context.Context) ([]*model.Experience, error) {
	return ec.experienceUseCase.List(ctx)
}

func (ec *experienceController) Get(ctx context.Context, id ulid.ID) (*model.Experience, error) {
	return ec.experienceUseCase.Get(ctx, id)
}

func (ec *experienceController) Create(
	ctx context.Context,
	input model.CreateExperienceInput,
) (*model.Experience, error) {
	return ec.experienceUseCase.Create(ctx, input)
}

func (ec *experienceController) Update(
	ctx context.Context,
	input model.UpdateExperienceInput,
) (*model.Experience, error) {
	return ec.experienceUseCase.Update(ctx, input)
}

func (ec *experienceController) Delete(ctx context.Context, id ulid.ID) error {
	return ec.experienceUseCase.Delete(ctx, id)
}
