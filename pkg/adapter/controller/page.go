package controller

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/page"
)

type Page interface {
	Home(ctx context.Context) (*model.HomeContext, error)
	Academic(ctx context.Context) (*model.AcademicContext, error)
	Experience(ctx context.Context) (*model.ExperienceContext, error)
	Certifications(ctx context.Context) (*model.CertificationsContext, error)
	Projects(ctx context.Context, page int) (*model.ProjectListContext, error)
	ProjectDetail(ctx context.Context, id ulid.ID) (*model.ProjectDetailContext, error)
	Contact(ctx context.Context) (*model.ContactPageContext, error)
}

type pageController struct {
	pageUseCase usecase.Page
}

// Create new page controller

func NewPageController(pu usecase.Page) Page {
	return &pageController{pageUseCase: pu}
}

func (pc *pageController) Home(ctx context.Context) (*model.HomeContext, error) {
	return pc.pageUseCase.Home(ctx)
}

func (pc *pageController) Academic(ctx context.Context) (*model.AcademicContext, error) {
	return pc.pageUseCase.Academic(ctx)
}

func (pc *pageController) Experience(ctx context.Context) (*model.ExperienceContext, error) {
	return pc.pageUseCase.Experience(ctx)
}

func (pc *pageController) Certifications(ctx context.Context) (*model.CertificationsContext, error) {
	return pc.pageUseCase.Certifications(ctx)
}

func (pc *pageController) Projects(
	ctx context.Context,
	page int,
) (*model.ProjectListContext, error) {
	return pc.pageUseCase.Projects(ctx, page)
}

func (pc *pageController) ProjectDetail(
	ctx context.Context,
	id ulid.ID,
) (*model.ProjectDetailContext, error) {
	return pc.pageUseCase.ProjectDetail(ctx, id)
}

func (pc *pageController) Contact(ctx context.Context) (*model.ContactPageContext, error) {
	return pc.pageUseCase.Contact(ctx)
}
