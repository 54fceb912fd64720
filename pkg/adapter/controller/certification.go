package controller

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/certification"
)

type Certification interface {
	List(ctx context.Context) ([]*model.Certification, error)
	Get(ctx context.Context, id ulid.ID) (*model.Certification, error)
	Create(ctx context.Context, input model.CreateCertificationInput) (*model.Certification, error)
	Update(ctx context.Context, input model.UpdateCertificationInput) (*model.Certification, error)
	Delete(ctx context.Context, id ulid.ID) error
}

type certificationController struct {
	certificationUseCase usecase.Certification
}

// Create new certification controller

func NewCertificationController(cu usecase.Certification) Certification {
	return &certificationController{certificationUseCase: cu}
}

func (cc *certificationController) List(ctx context.Context) ([]*model.Certification, error) {
	return cc.certificationUseCase.List(ctx)
}

func (cc *certificationController) Get(
	ctx context.Context,
	id ulid.ID,
) (*model.Certification, error) {
	return cc.certificationUseCase.Get(ctx, id)
}

func (cc *certificationController) Create(
	ctx context.Context,
	input model.CreateCertificationInput,
) (*model.Certification, error) {
	return cc.certificationUseCase.Create(ctx, input)
}

func (cc *certificationController) Update(
	ctx context.Context,
	input model.UpdateCertificationInput,
) (*model.Certification, error) {
	return cc.certificationUseCase.Update(ctx, input)
}

func (cc *certificationController) Delete(ctx context.Context, id ulid.ID) error {
	return cc.certificationUseCase.Delete(ctx, id)
}
