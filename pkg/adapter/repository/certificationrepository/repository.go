package certificationrepository

import (
	"context"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/certification"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	ur "portfolio-go-backend/pkg/usecase/repository"
)

type certificationRepository struct {
	client *ent.Client
}

func NewCertificationRepository(client *ent.Client) ur.Certification {
	return &certificationRepository{client}
}

func (r *certificationRepository) List(ctx context.Context) ([]*model.Certification, error) {
	res, err := r.client.Certification.Query().
		Order(ent.Desc(certification.FieldIssueDate)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *certificationRepository) Get(
	ctx context.Context,
	id ulid.ID,
) (*model.Certification, error) {
	res, err := r.client.Certification.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, id)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *certificationRepository) Create(
	ctx context.Context,
	input model.CreateCertificationInput,
) (*model.Certification, error) {
	res, err := r.client.Certification.Create().
		SetName(input.Name).
		SetIssuingOrganization(input.IssuingOrganization).
		SetIssueDate(input.IssueDate).
		SetNillableExpirationDate(input.ExpirationDate).
		SetNillableCredentialID(input.CredentialID).
		SetNillableCredentialURL(input.CredentialURL).
		SetNillableCertificateFile(input.CertificateFile).
		Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *certificationRepository) Update(
	ctx context.Context,
	input model.UpdateCertificationInput,
) (*model.Certification, error) {
	res, err := r.client.Certification.UpdateOneID(input.ID).
		SetNillableName(input.Name).
		SetNillableIssuingOrganization(input.IssuingOrganization).
		SetNillableIssueDate(input.IssueDate).
		SetNillableExpirationDate(input.ExpirationDate).
		SetNillableCredentialID(input.CredentialID).
		SetNillableCredentialURL(input.CredentialURL).
		SetNillableCertificateFile(input.CertificateFile).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err, input.ID)
		}
		return nil, model.NewDBError(err)
	}
	return res, nil
}

func (r *certificationRepository) Delete(ctx context.Context, id ulid.ID) error {
	if err := r.client.Certification.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return model.NewNotFoundError(err, id)
		}
		return model.NewDBError(err)
	}
	return nil
}
