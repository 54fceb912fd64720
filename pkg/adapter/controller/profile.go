package controller

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/profile"
)

type Profile interface {
	First(ctx context.Context) (*model.Profile, error)
	Create(ctx context.Context, input model.CreateProfileInput) (*model.Profile, error)
	Update(ctx context.Context, input model.UpdateProfileInput) (*model.Profile, error)
	Delete(ctx context.Context, id ulid.ID) error
}

type profileController struct {
	profileUseCase usecase.Profile
}

// Create new profile controller

func NewProfileController(pu usecase.Profile) Profile {
	return &profileController{profileUseCase: pu}
}

func (pc *profileController) First(ctx context.Context) (*model.Profile, error) {
	return pc.profileUseCase.First(ctx)
}

func (pc *profileController) Create(
	ctx context.Context,
	input model.CreateProfileInput,
) (*model.Profile, error) {
	return pc.profileUseCase.Create(ctx, input)
}

func (pc *profileController) Update(
	ctx context.Context,
	input model.UpdateProfileInput,
) (*model.Profile, error) {
	return pc.profileUseCase.Update(ctx, input)
}

func (pc *profileController) Delete(ctx context.Context, id ulid.ID) error {
	return pc.profileUseCase.Delete(ctx, id)
}
