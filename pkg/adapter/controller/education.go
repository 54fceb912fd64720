package controller

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/education"
)

type Education interface {
	List(ctx context.Context) ([]*model.Education, error)
	Get(ctx context.Context, id ulid.ID) (*model.Education, error)
	Create(ctx context.Context, input model.CreateEducationInput) (*model.Education, error)
	Update(ctx context.Context, input model.UpdateEducationInput) (*model.Education, error)
	Delete(ctx context.Context, id ulid.ID) error
}

type educationController struct {
	educationUseCase usecase.Education
}

// Create new education controller

func NewEducationController(eu usecase.Education) Education {
	return &educationController{educationUseCase: eu}
}

func (ec *educationController) List(ctx context.Context) ([]*model.Education, error) {
	return ec.educationUseCase.List(ctx)
}

func (ec *educationController) Get(ctx context.Context, id ulid.ID) (*model.Education, error) {
	return ec.educationUseCase.Get(ctx, id)
}

func (ec *educationController) Create(
	ctx context.Context,
	input model.CreateEducationInput,
) (*model.Education, error) {
	return ec.educationUseCase.Create(ctx, input)
}

func (ec *educationController) Update(
	ctx context.Context,
	input model.UpdateEducationInput,
) (*model.Education, error) {
	return ec.educationUseCase.Update(ctx, input)
}

func (ec *educationController) Delete(ctx context.Context, id ulid.ID) error {
	return ec.educationUseCase.Delete(ctx, id)
}
