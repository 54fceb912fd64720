package usecase

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
)

type profileUseCase struct {
	profileRepository repository.Profile
}

type Profile interface {
	First(ctx context.Context) (*model.Profile, error)
	Create(ctx context.Context, input model.CreateProfileInput) (*model.Profile, error)
	Update(ctx context.Context, input model.UpdateProfileInput) (*model.Profile, error)
	Delete(ctx context.Context, id ulid.ID) error
}

// This function creates new profile use case
func NewProfileUseCase(r repository.Profile) Profile {
	return &profileUseCase{profileRepository: r}
}

func (p *profileUseCase) First(ctx context.Context) (*model.Profile, error) {
	return p.profileRepository.First(ctx)
}

func (p *profileUseCase) Create(
	ctx context.Context,
	input model.CreateProfileInput,
) (*model.Profile, error) {
	return p.profileRepository.Create(ctx, input)
}

func (p *profileUseCase) Update(
	ctx context.Context,
	input model.UpdateProfileInput,
) (*model.Profile, error) {
	return p.profileRepository.Update(ctx, input)
}

func (p *profileUseCase) Delete(ctx context.Context, id ulid.ID) error {
	return p.profileRepository.Delete(ctx, id)
}
