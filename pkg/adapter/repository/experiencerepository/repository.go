package experiencerepository

import (
	"context"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/experience"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	ur "portfolio-go-backend/pkg/usecase/repository"
)

type experienceRepository struct {
	client *ent.Client
}

func NewExperienceRepository(client *ent.Client) ur.Experience {
	return &experienceRepository{client}
}

func (r *experienceRepository) List(ctx context.Context) ([]*model.Experience, error) {
	res, err := r.client.Experience.Query().
		Order(ent.Desc(experience.FieldStartDate)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *experienceRepository) ListRecent(
	ctx context.Context,
	limit int,
) ([]*model.Experience, error) {
	res, err := r.client.Experience.Query().
		Order(ent.Desc(experience.FieldStartDate)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *experienceRepository) Get(ctx context.Context, id ulid.ID) (*model.Experience, error) {
	res, err := r.client.Experience.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, id)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *experienceRepository) Create(
	ctx context.Context,
	input model.CreateExperienceInput,
) (*model.Experience, error) {
	res, err := r.client.Experience.Create().
		SetTitle(input.Title).
		SetCompany(input.Company).
		SetNillableLocation(input.Location).
		SetJobType(input.JobType).
		SetStartDate(input.StartDate).
		SetNillableEndDate(input.EndDate).
		SetNillableIsCurrent(input.IsCurrent).
		SetDescription(input.Description).
		SetNillableAchievements(input.Achievements).
		SetNillableTechnologies(input.Technologies).
		Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *experienceRepository) Update(
	ctx context.Context,
	input model.UpdateExperienceInput,
) (*model.Experience, error) {
	res, err := r.client.Experience.UpdateOneID(input.ID).
		SetNillableTitle(input.Title).
		SetNillableCompany(input.Company).
		SetNillableLocation(input.Location).
		SetNillableJobType(input.JobType).
		SetNillableStartDate(input.StartDate).
		SetNillableEndDate(input.EndDate).
		SetNillableIsCurrent(input.IsCurrent).
		SetNillableDescription(input.Description).
		SetNillableAchievements(input.Achievements).
		SetNillableTechnologies(input.Technologies).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, input.ID)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *experienceRepository) Delete(ctx context.Context, id ulid.ID) error {
	if err := r.client.Experience.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return model.NewNotFoundError(err, id)
		}
		return model.NewDBError(err)
	}
	return nil
}
