package educationrepository

import (
	"context"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/education"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	ur "portfolio-go-backend/pkg/usecase/repository"
)

type educationRepository struct {
	client *ent.Client
}

func NewEducationRepository(client *ent.Client) ur.Education {
	return &educationRepository{client}
}

func (r *educationRepository) List(ctx context.Context) ([]*model.Education, error) {
	res, err := r.client.Education.Query().
		Order(ent.Desc(education.FieldStartDate)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *educationRepository) Get(ctx context.Context, id ulid.ID) (*model.Education, error) {
	res, err := r.client.Education.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, id)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *educationRepository) Create(
	ctx context.Context,
	input model.CreateEducationInput,
) (*model.Education, error) {
	res, err := r.client.Education.Create().
		SetDegree(input.Degree).
		SetFieldOfStudy(input.FieldOfStudy).
		SetInstitution(input.Institution).
		SetNillableLocation(input.Location).
		SetStartDate(input.StartDate).
		SetNillableEndDate(input.EndDate).
		SetNillableIsCurrent(input.IsCurrent).
		SetNillableDescription(input.Description).
		SetNillableGrade(input.Grade).
		Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *educationRepository) Update(
	ctx context.Context,
	input model.UpdateEducationInput,
) (*model.Education, error) {
	res, err := r.client.Education.UpdateOneID(input.ID).
		SetNillableDegree(input.Degree).
		SetNillableFieldOfStudy(input.FieldOfStudy).
		SetNillableInstitution(input.Institution).
		SetNillableLocation(input.Location).
		SetNillableStartDate(input.StartDate).
		SetNillableEndDate(input.EndDate).
		SetNillableIsCurrent(input.IsCurrent).
		SetNillableDescription(input.Description).
		SetNillableGrade(input.Grade).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, input.ID)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *educationRepository) Delete(ctx context.Context, id ulid.ID) error {
	if err := r.client.Education.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return model.NewNotFoundError(err, id)
		}
		return model.NewDBError(err)
	}
	return nil
}
