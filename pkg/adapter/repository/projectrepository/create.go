package projectrepository

import (
	"context"

	"portfolio-go-backend/pkg/entity/model"
)

func (r *projectRepository) Create(
	ctx context.Context,
	input model.CreateProjectInput,
) (*model.Project, error) {
	res, err := r.client.Project.Create().
		SetTitle(input.Title).
		SetDescription(input.Description).
		SetNillableDetailedDescription(input.DetailedDescription).
		SetTechnologies(input.Technologies).
		SetNillableStatus(input.Status).
		SetStartDate(input.StartDate).
		SetNillableEndDate(input.EndDate).
		SetNillableProjectURL(input.ProjectURL).
		SetNillableGithubURL(input.GithubURL).
		SetNillableImage(input.Image).
		SetNillableIsFeatured(input.IsFeatured).
		Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}
