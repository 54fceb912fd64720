package skillrepository

import (
	"context"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/ent/skill"
	"portfolio-go-backend/pkg/entity/model"
	ur "portfolio-go-backend/pkg/usecase/repository"
)

type skillRepository struct {
	client *ent.Client
}

func NewSkillRepository(client *ent.Client) ur.Skill {
	return &skillRepository{client}
}

func (r *skillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	res, err := r.client.Skill.Query().
		Order(ent.Asc(skill.FieldCategory), ent.Asc(skill.FieldName)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *skillRepository) ListFeatured(ctx context.Context) ([]*model.Skill, error) {
	res, err := r.client.Skill.Query().
		Where(skill.IsFeatured(true)).
		Order(ent.Asc(skill.FieldCategory), ent.Asc(skill.FieldName)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *skillRepository) Get(ctx context.Context, id ulid.ID) (*model.Skill, error) {
	res, err := r.client.Skill.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, id)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *skillRepository) Create(
	ctx context.Context,
	input model.CreateSkillInput,
) (*model.Skill, error) {
	res, err := r.client.Skill.Create().
		SetName(input.Name).
		SetCategory(input.Category).
		SetProficiency(input.Proficiency).
		SetNillableYearsOfExperience(input.YearsOfExperience).
		SetNillableIsFeatured(input.IsFeatured).
		Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *skillRepository) Update(
	ctx context.Context,
	input model.UpdateSkillInput,
) (*model.Skill, error) {
	res, err := r.client.Skill.UpdateOneID(input.ID).
		SetNillableName(input.Name).
		SetNillableCategory(input.Category).
		SetNillableProficiency(input.Proficiency).
		SetNillableYearsOfExperience(input.YearsOfExperience).
		SetNillableIsFeatured(input.IsFeatured).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, input.ID)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *skillRepository) Delete(ctx context.Context, id ulid.ID) error {
	if err := r.client.Skill.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return model.NewNotFoundError(err, id)
		}
		return model.NewDBError(err)
	}
	return nil
}
