package usecase

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
)

type certificationUseCase struct {
	certificationRepository repository.Certification
}

type Certification interface {
	List(ctx context.Context) ([]*model.Certification, error)
	Get(ctx context.Context, id ulid.ID) (*model.Certification, error)
	Create(ctx context.Context, input model.CreateCertificationInput) (*model.Certification, error)
	Update(ctx context.Context, input model.UpdateCertificationInput) (*model.Certification, error)
	Delete(ctx context.Context, id ulid.ID) error
}

// This function creates new certification use case
func NewCertificationUseCase(r repository.Certification) Certification {
	return &certificationUseCase{certificationRepository: r}
}

func (c *certificationUseCase) List(ctx context.Context) ([]*model.Certification, error) {
	return c.certificationRepository.List(ctx)
}

func (c *certificationUseCase) Get(ctx context.Context, id ulid.ID) (*model.Certification, error) {
	return c.certificationRepository.Get(ctx, id)
}

func (c *certificationUseCase) Create(
	ctx context.Context,
	input model.CreateCertificationInput,
) (*model.Certification, error) {
	return c.certificationRepository.Create(ctx, input)
}

func (c *certificationUseCase) Update(
	ctx context.Context,
	input model.UpdateCertificationInput,
) (*model.Certification, error) {
	return c.certificationRepository.Update(ctx, input)
}

func (c *certificationUseCase) Delete(ctx context.Context, id ulid.ID) error {
	return c.certificationRepository.Delete(ctx, id)
}
