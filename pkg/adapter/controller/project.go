package controller

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/project"
)

type Project interface {
	List(ctx context.Context, page, perPage int) (*model.ProjectPage, error)
	ListAll(ctx context.Context) ([]*model.Project, error)
	Get(ctx context.Context, id ulid.ID) (*model.Project, error)
	Create(ctx context.Context, input model.CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, input model.UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id ulid.ID) error
}

type projectController struct {
	projectUseCase usecase.Project
}

// Create new project controller

func NewProjectController(pu usecase.Project) Project {
	return &projectController{projectUseCase: pu}
}

func (pc *projectController) List(
	ctx context.Context,
	page, perPage int,
) (*model.ProjectPage, error) {
	return pc.projectUseCase.List(ctx, page, perPage)
}

func (pc *projectController) ListAll(ctx context.Context) ([]*model.Project, error) {
	return pc.projectUseCase.ListAll(ctx)
}

func (pc *projectController) Get(ctx context.Context, id ulid.ID) (*model.Project, error) {
	return pc.projectUseCase.Get(ctx, id)
}

func (pc *projectController) Create(
	ctx context.Context,
	input model.CreateProjectInput,
) (*model.Project, error) {
	return pc.projectUseCase.Create(ctx, input)
}

func (pc *projectController) Update(
	ctx context.Context,
	input model.UpdateProjectInput,
) (*model.Project, error) {
	return pc.projectUseCase.Update(ctx, input)
}

func (pc *projectController) Delete(ctx context.Context, id ulid.ID) error {
	return pc.projectUseCase.Delete(ctx, id)
}
