package projectrepository

import (
	"context"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/project"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
)

func (r *projectRepository) List(
	ctx context.Context,
	page, perPage int,
) (*model.ProjectPage, error) {
	total, err := r.client.Project.Query().Count(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	items, err := r.client.Project.Query().
		Order(ent.Desc(project.FieldStartDate)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	return &model.ProjectPage{
		Projects:   items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

func (r *projectRepository) ListAll(ctx context.Context) ([]*model.Project, error) {
	res, err := r.client.Project.Query().
		Order(ent.Desc(project.FieldStartDate)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *projectRepository) ListFeatured(
	ctx context.Context,
	limit int,
) ([]*model.Project, error) {
	res, err := r.client.Project.Query().
		Where(project.IsFeatured(true)).
		Order(ent.Desc(project.FieldStartDate)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *projectRepository) Get(ctx context.Context, id ulid.ID) (*model.Project, error) {
	res, err := r.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, id)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}
