package profilerepository

import (
	"context"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/profile"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	ur "portfolio-go-backend/pkg/usecase/repository"
)

type profileRepository struct {
	client *ent.Client
}

func NewProfileRepository(client *ent.Client) ur.Profile {
	return &profileRepository{client}
}

// First returns the oldest profile row, or nil when none exists. The site
// renders with an empty profile in that case.
func (r *profileRepository) First(ctx context.Context) (*model.Profile, error) {
	res, err := r.client.Profile.Query().
		Order(ent.Asc(profile.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *profileRepository) Create(
	ctx context.Context,
	input model.CreateProfileInput,
) (*model.Profile, error) {
	res, err := r.client.Profile.Create().
		SetName(input.Name).
		SetTitle(input.Title).
		SetBio(input.Bio).
		SetEmail(input.Email).
		SetNillablePhone(input.Phone).
		SetNillableLocation(input.Location).
		SetNillableLinkedin(input.Linkedin).
		SetNillableGithub(input.Github).
		SetNillableWebsite(input.Website).
		SetNillableProfileImage(input.ProfileImage).
		SetNillableCvFile(input.CvFile).
		Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *profileRepository) Update(
	ctx context.Context,
	input model.UpdateProfileInput,
) (*model.Profile, error) {
	res, err := r.client.Profile.UpdateOneID(input.ID).
		SetNillableName(input.Name).
		SetNillableTitle(input.Title).
		SetNillableBio(input.Bio).
		SetNillableEmail(input.Email).
		SetNillablePhone(input.Phone).
		SetNillableLocation(input.Location).
		SetNillableLinkedin(input.Linkedin).
		SetNillableGithub(input.Github).
		SetNillableWebsite(input.Website).
		SetNillableProfileImage(input.ProfileImage).
		SetNillableCvFile(input.CvFile).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, input.ID)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *profileRepository) Delete(ctx context.Context, id ulid.ID) error {
	if err := r.client.Profile.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return model.NewNotFoundError(err, id)
		}
		return model.NewDBError(err)
	}
	return nil
}
