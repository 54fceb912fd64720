package usecase

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
)

type educationUseCase struct {
	educationRepository repository.Education
}

type Education interface {
	List(ctx context.Context) ([]*model.Education, error)
	Get(ctx context.Context, id ulid.ID) (*model.Education, error)
	Create(ctx context.Context, input model.CreateEducationInput) (*model.Education, error)
	Update(ctx context.Context, input model.UpdateEducationInput) (*model.Education, error)
	Delete(ctx context.Context, id ulid.ID) error
}

// This function creates new education use case
func NewEducationUseCase(r repository.Education) Education {
	return &educationUseCase{educationRepository: r}
}

func (e *educationUseCase) List(ctx context.Context) ([]*model.Education, error) {
	return e.educationRepository.List(ctx)
}

func (e *educationUseCase) Get(ctx context.Context, id ulid.ID) (*model.Education, error) {
	return e.educationRepository.Get(ctx, id)
}

func (e *educationUseCase) Create(
	ctx context.Context,
	input model.CreateEducationInput,
) (*model.Education, error) {
	return e.educationRepository.Create(ctx, input)
}

func (e *educationUseCase) Update(
	ctx context.Context,
	input model.UpdateEducationInput,
) (*model.Education, error) {
	return e.educationRepository.Update(ctx, input)
}

func (e *educationUseCase) Delete(ctx context.Context, id ulid.ID) error {
	return e.educationRepository.Delete(ctx, id)
}
