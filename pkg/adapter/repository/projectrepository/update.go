package projectrepository

import (
	"context"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

func (r *projectRepository) Update(
	ctx context.Context,
	input model.UpdateProjectInput,
) (*model.Project, error) {
	res, err := r.client.Project.UpdateOneID(input.ID).
		SetNillableTitle(input.Title).
		SetNillableDescription(input.Description).
		SetNillableDetailedDescription(input.DetailedDescription).
		SetNillableTechnologies(input.Technologies).
		SetNillableStatus(input.Status).
		SetNillableStartDate(input.StartDate).
		SetNillableEndDate(input.EndDate).
		SetNillableProjectURL(input.ProjectURL).
		SetNillableGithubURL(input.GithubURL).
		SetNillableImage(input.Image).
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

func (r *projectRepository) Delete(ctx context.Context, id ulid.ID) error {
	if err := r.client.Project.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return model.NewNotFoundError(err, id)
		}
		return model.NewDBError(err)
	}
	return nil
}
