package usecase

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
)

type projectUseCase struct {
	projectRepository repository.Project
}

type Project interface {
	List(ctx context.Context, page, perPage int) (*model.ProjectPage, error)
	ListAll(ctx context.Context) ([]*model.Project, error)
	Get(ctx context.Context, id ulid.ID) (*model.Project, error)
	Create(ctx context.Context, input model.CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, input model.UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id ulid.ID) error
}

// This function creates new project use case
func NewProjectUseCase(r repository.Project) Project {
	return &projectUseCase{projectRepository: r}
}

func (p *projectUseCase) List(
	ctx context.Context,
	page, perPage int,
) (*model.ProjectPage, error) {
	return p.projectRepository.List(ctx, page, perPage)
}

func (p *projectUseCase) ListAll(ctx context.Context) ([]*model.Project, error) {
	return p.projectRepository.ListAll(ctx)
}

func (p *projectUseCase) Get(ctx context.Context, id ulid.ID) (*model.Project, error) {
	return p.projectRepository.Get(ctx, id)
}

func (p *projectUseCase) Create(
	ctx context.Context,
	input model.CreateProjectInput,
) (*model.Project, error) {
	return p.projectRepository.Create(ctx, input)
}

func (p *projectUseCase) Update(
	ctx context.Context,
	input model.UpdateProjectInput,
) (*model.Project, error) {
	return p.projectRepository.Update(ctx, input)
}

func (p *projectUseCase) Delete(ctx context.Context, id ulid.ID) error {
	return p.projectRepository.Delete(ctx, id)
}
