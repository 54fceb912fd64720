// Code generated by ent, DO NOT EDIT.

package certification

import (
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ID) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ID) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ID) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ID) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ID) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ID) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ID) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ID) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ID) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldName, v))
}

// IssuingOrganization applies equality check predicate on the "issuing_organization" field. It's identical to IssuingOrganizationEQ.
func IssuingOrganization(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldIssuingOrganization, v))
}

// IssueDate applies equality check predicate on the "issue_date" field. It's identical to IssueDateEQ.
func IssueDate(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldIssueDate, v))
}

// ExpirationDate applies equality check predicate on the "expiration_date" field. It's identical to ExpirationDateEQ.
func ExpirationDate(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldExpirationDate, v))
}

// CredentialID applies equality check predicate on the "credential_id" field. It's identical to CredentialIDEQ.
func CredentialID(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCredentialID, v))
}

// CredentialURL applies equality check predicate on the "credential_url" field. It's identical to CredentialURLEQ.
func CredentialURL(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCredentialURL, v))
}

// CertificateFile applies equality check predicate on the "certificate_file" field. It's identical to CertificateFileEQ.
func CertificateFile(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCertificateFile, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldName, v))
}

// IssuingOrganizationEQ applies the EQ predicate on the "issuing_organization" field.
func IssuingOrganizationEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldIssuingOrganization, v))
}

// IssuingOrganizationNEQ applies the NEQ predicate on the "issuing_organization" field.
func IssuingOrganizationNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldIssuingOrganization, v))
}

// IssuingOrganizationIn applies the In predicate on the "issuing_organization" field.
func IssuingOrganizationIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldIssuingOrganization, vs...))
}

// IssuingOrganizationNotIn applies the NotIn predicate on the "issuing_organization" field.
func IssuingOrganizationNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldIssuingOrganization, vs...))
}

// IssuingOrganizationGT applies the GT predicate on the "issuing_organization" field.
func IssuingOrganizationGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldIssuingOrganization, v))
}

// IssuingOrganizationGTE applies the GTE predicate on the "issuing_organization" field.
func IssuingOrganizationGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldIssuingOrganization, v))
}

// IssuingOrganizationLT applies the LT predicate on the "issuing_organization" field.
func IssuingOrganizationLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldIssuingOrganization, v))
}

// IssuingOrganizationLTE applies the LTE predicate on the "issuing_organization" field.
func IssuingOrganizationLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldIssuingOrganization, v))
}

// IssuingOrganizationContains applies the Contains predicate on the "issuing_organization" field.
func IssuingOrganizationContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldIssuingOrganization, v))
}

// IssuingOrganizationHasPrefix applies the HasPrefix predicate on the "issuing_organization" field.
func IssuingOrganizationHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldIssuingOrganization, v))
}

// IssuingOrganizationHasSuffix applies the HasSuffix predicate on the "issuing_organization" field.
func IssuingOrganizationHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldIssuingOrganization, v))
}

// IssuingOrganizationEqualFold applies the EqualFold predicate on the "issuing_organization" field.
func IssuingOrganizationEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldIssuingOrganization, v))
}

// IssuingOrganizationContainsFold applies the ContainsFold predicate on the "issuing_organization" field.
func IssuingOrganizationContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldIssuingOrganization, v))
}

// IssueDateEQ applies the EQ predicate on the "issue_date" field.
func IssueDateEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldIssueDate, v))
}

// IssueDateNEQ applies the NEQ predicate on the "issue_date" field.
func IssueDateNEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldIssueDate, v))
}

// IssueDateIn applies the In predicate on the "issue_date" field.
func IssueDateIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldIssueDate, vs...))
}

// IssueDateNotIn applies the NotIn predicate on the "issue_date" field.
func IssueDateNotIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldIssueDate, vs...))
}

// IssueDateGT applies the GT predicate on the "issue_date" field.
func IssueDateGT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldIssueDate, v))
}

// IssueDateGTE applies the GTE predicate on the "issue_date" field.
func IssueDateGTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldIssueDate, v))
}

// IssueDateLT applies the LT predicate on the "issue_date" field.
func IssueDateLT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldIssueDate, v))
}

// IssueDateLTE applies the LTE predicate on the "issue_date" field.
func IssueDateLTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldIssueDate, v))
}

// ExpirationDateEQ applies the EQ predicate on the "expiration_date" field.
func ExpirationDateEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldExpirationDate, v))
}

// ExpirationDateNEQ applies the NEQ predicate on the "expiration_date" field.
func ExpirationDateNEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldExpirationDate, v))
}

// ExpirationDateIn applies the In predicate on the "expiration_date" field.
func ExpirationDateIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldExpirationDate, vs...))
}

// ExpirationDateNotIn applies the NotIn predicate on the "expiration_date" field.
func ExpirationDateNotIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldExpirationDate, vs...))
}

// ExpirationDateGT applies the GT predicate on the "expiration_date" field.
func ExpirationDateGT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldExpirationDate, v))
}

// ExpirationDateGTE applies the GTE predicate on the "expiration_date" field.
func ExpirationDateGTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldExpirationDate, v))
}

// ExpirationDateLT applies the LT predicate on the "expiration_date" field.
func ExpirationDateLT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldExpirationDate, v))
}

// ExpirationDateLTE applies the LTE predicate on the "expiration_date" field.
func ExpirationDateLTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldExpirationDate, v))
}

// ExpirationDateIsNil applies the IsNil predicate on the "expiration_date" field.
func ExpirationDateIsNil() predicate.Certification {
	return predicate.Certification(sql.FieldIsNull(FieldExpirationDate))
}

// ExpirationDateNotNil applies the NotNil predicate on the "expiration_date" field.
func ExpirationDateNotNil() predicate.Certification {
	return predicate.Certification(sql.FieldNotNull(FieldExpirationDate))
}

// CredentialIDEQ applies the EQ predicate on the "credential_id" field.
func CredentialIDEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCredentialID, v))
}

// CredentialIDNEQ applies the NEQ predicate on the "credential_id" field.
func CredentialIDNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldCredentialID, v))
}

// CredentialIDIn applies the In predicate on the "credential_id" field.
func CredentialIDIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldCredentialID, vs...))
}

// CredentialIDNotIn applies the NotIn predicate on the "credential_id" field.
func CredentialIDNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldCredentialID, vs...))
}

// CredentialIDGT applies the GT predicate on the "credential_id" field.
func CredentialIDGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldCredentialID, v))
}

// CredentialIDGTE applies the GTE predicate on the "credential_id" field.
func CredentialIDGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldCredentialID, v))
}

// CredentialIDLT applies the LT predicate on the "credential_id" field.
func CredentialIDLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldCredentialID, v))
}

// CredentialIDLTE applies the LTE predicate on the "credential_id" field.
func CredentialIDLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldCredentialID, v))
}

// CredentialIDContains applies the Contains predicate on the "credential_id" field.
func CredentialIDContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldCredentialID, v))
}

// CredentialIDHasPrefix applies the HasPrefix predicate on the "credential_id" field.
func CredentialIDHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldCredentialID, v))
}

// CredentialIDHasSuffix applies the HasSuffix predicate on the "credential_id" field.
func CredentialIDHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldCredentialID, v))
}

// CredentialIDIsNil applies the IsNil predicate on the "credential_id" field.
func CredentialIDIsNil() predicate.Certification {
	return predicate.Certification(sql.FieldIsNull(FieldCredentialID))
}

// CredentialIDNotNil applies the NotNil predicate on the "credential_id" field.
func CredentialIDNotNil() predicate.Certification {
	return predicate.Certification(sql.FieldNotNull(FieldCredentialID))
}

// CredentialIDEqualFold applies the EqualFold predicate on the "credential_id" field.
func CredentialIDEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldCredentialID, v))
}

// CredentialIDContainsFold applies the ContainsFold predicate on the "credential_id" field.
func CredentialIDContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldCredentialID, v))
}

// CredentialURLEQ applies the EQ predicate on the "credential_url" field.
func CredentialURLEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCredentialURL, v))
}

// CredentialURLNEQ applies the NEQ predicate on the "credential_url" field.
func CredentialURLNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldCredentialURL, v))
}

// CredentialURLIn applies the In predicate on the "credential_url" field.
func CredentialURLIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldCredentialURL, vs...))
}

// CredentialURLNotIn applies the NotIn predicate on the "credential_url" field.
func CredentialURLNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldCredentialURL, vs...))
}

// CredentialURLGT applies the GT predicate on the "credential_url" field.
func CredentialURLGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldCredentialURL, v))
}

// CredentialURLGTE applies the GTE predicate on the "credential_url" field.
func CredentialURLGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldCredentialURL, v))
}

// CredentialURLLT applies the LT predicate on the "credential_url" field.
func CredentialURLLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldCredentialURL, v))
}

// CredentialURLLTE applies the LTE predicate on the "credential_url" field.
func CredentialURLLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldCredentialURL, v))
}

// CredentialURLContains applies the Contains predicate on the "credential_url" field.
func CredentialURLContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldCredentialURL, v))
}

// CredentialURLHasPrefix applies the HasPrefix predicate on the "credential_url" field.
func CredentialURLHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldCredentialURL, v))
}

// CredentialURLHasSuffix applies the HasSuffix predicate on the "credential_url" field.
func CredentialURLHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldCredentialURL, v))
}

// CredentialURLIsNil applies the IsNil predicate on the "credential_url" field.
func CredentialURLIsNil() predicate.Certification {
	return predicate.Certification(sql.FieldIsNull(FieldCredentialURL))
}

// CredentialURLNotNil applies the NotNil predicate on the "credential_url" field.
func CredentialURLNotNil() predicate.Certification {
	return predicate.Certification(sql.FieldNotNull(FieldCredentialURL))
}

// CredentialURLEqualFold applies the EqualFold predicate on the "credential_url" field.
func CredentialURLEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldCredentialURL, v))
}

// CredentialURLContainsFold applies the ContainsFold predicate on the "credential_url" field.
func CredentialURLContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldCredentialURL, v))
}

// CertificateFileEQ applies the EQ predicate on the "certificate_file" field.
func CertificateFileEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCertificateFile, v))
}

// CertificateFileNEQ applies the NEQ predicate on the "certificate_file" field.
func CertificateFileNEQ(v string) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldCertificateFile, v))
}

// CertificateFileIn applies the In predicate on the "certificate_file" field.
func CertificateFileIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldCertificateFile, vs...))
}

// CertificateFileNotIn applies the NotIn predicate on the "certificate_file" field.
func CertificateFileNotIn(vs ...string) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldCertificateFile, vs...))
}

// CertificateFileGT applies the GT predicate on the "certificate_file" field.
func CertificateFileGT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldCertificateFile, v))
}

// CertificateFileGTE applies the GTE predicate on the "certificate_file" field.
func CertificateFileGTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldCertificateFile, v))
}

// CertificateFileLT applies the LT predicate on the "certificate_file" field.
func CertificateFileLT(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldCertificateFile, v))
}

// CertificateFileLTE applies the LTE predicate on the "certificate_file" field.
func CertificateFileLTE(v string) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldCertificateFile, v))
}

// CertificateFileContains applies the Contains predicate on the "certificate_file" field.
func CertificateFileContains(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContains(FieldCertificateFile, v))
}

// CertificateFileHasPrefix applies the HasPrefix predicate on the "certificate_file" field.
func CertificateFileHasPrefix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasPrefix(FieldCertificateFile, v))
}

// CertificateFileHasSuffix applies the HasSuffix predicate on the "certificate_file" field.
func CertificateFileHasSuffix(v string) predicate.Certification {
	return predicate.Certification(sql.FieldHasSuffix(FieldCertificateFile, v))
}

// CertificateFileIsNil applies the IsNil predicate on the "certificate_file" field.
func CertificateFileIsNil() predicate.Certification {
	return predicate.Certification(sql.FieldIsNull(FieldCertificateFile))
}

// CertificateFileNotNil applies the NotNil predicate on the "certificate_file" field.
func CertificateFileNotNil() predicate.Certification {
	return predicate.Certification(sql.FieldNotNull(FieldCertificateFile))
}

// CertificateFileEqualFold applies the EqualFold predicate on the "certificate_file" field.
func CertificateFileEqualFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldEqualFold(FieldCertificateFile, v))
}

// CertificateFileContainsFold applies the ContainsFold predicate on the "certificate_file" field.
func CertificateFileContainsFold(v string) predicate.Certification {
	return predicate.Certification(sql.FieldContainsFold(FieldCertificateFile, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Certification {
	return predicate.Certification(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Certification) predicate.Certification {
	return predicate.Certification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Certification) predicate.Certification {
	return predicate.Certification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Certification) predicate.Certification {
	return predicate.Certification(sql.NotPredicates(p))
}
