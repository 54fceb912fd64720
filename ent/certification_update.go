// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/certification"
	"portfolio-go-backend/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CertificationUpdate is the builder for updating Certification entities.
type CertificationUpdate struct {
	config
	hooks    []Hook
	mutation *CertificationMutation
}

// Where appends a list predicates to the CertificationUpdate builder.
func (cu *CertificationUpdate) Where(ps ...predicate.Certification) *CertificationUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetName sets the "name" field.
func (cu *CertificationUpdate) SetName(s string) *CertificationUpdate {
	cu.mutation.SetName(s)
	return cu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cu *CertificationUpdate) SetNillableName(s *string) *CertificationUpdate {
	if s != nil {
		cu.SetName(*s)
	}
	return cu
}

// SetIssuingOrganization sets the "issuing_organization" field.
func (cu *CertificationUpdate) SetIssuingOrganization(s string) *CertificationUpdate {
	cu.mutation.SetIssuingOrganization(s)
	return cu
}

// SetNillableIssuingOrganization sets the "issuing_organization" field if the given value is not nil.
func (cu *CertificationUpdate) SetNillableIssuingOrganization(s *string) *CertificationUpdate {
	if s != nil {
		cu.SetIssuingOrganization(*s)
	}
	return cu
}

// SetIssueDate sets the "issue_date" field.
func (cu *CertificationUpdate) SetIssueDate(t time.Time) *CertificationUpdate {
	cu.mutation.SetIssueDate(t)
	return cu
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (cu *CertificationUpdate) SetNillableIssueDate(t *time.Time) *CertificationUpdate {
	if t != nil {
		cu.SetIssueDate(*t)
	}
	return cu
}

// SetExpirationDate sets the "expiration_date" field.
func (cu *CertificationUpdate) SetExpirationDate(t time.Time) *CertificationUpdate {
	cu.mutation.SetExpirationDate(t)
	return cu
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (cu *CertificationUpdate) SetNillableExpirationDate(t *time.Time) *CertificationUpdate {
	if t != nil {
		cu.SetExpirationDate(*t)
	}
	return cu
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (cu *CertificationUpdate) ClearExpirationDate() *CertificationUpdate {
	cu.mutation.ClearExpirationDate()
	return cu
}

// SetCredentialID sets the "credential_id" field.
func (cu *CertificationUpdate) SetCredentialID(s string) *CertificationUpdate {
	cu.mutation.SetCredentialID(s)
	return cu
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (cu *CertificationUpdate) SetNillableCredentialID(s *string) *CertificationUpdate {
	if s != nil {
		cu.SetCredentialID(*s)
	}
	return cu
}

// ClearCredentialID clears the value of the "credential_id" field.
func (cu *CertificationUpdate) ClearCredentialID() *CertificationUpdate {
	cu.mutation.ClearCredentialID()
	return cu
}

// SetCredentialURL sets the "credential_url" field.
func (cu *CertificationUpdate) SetCredentialURL(s string) *CertificationUpdate {
	cu.mutation.SetCredentialURL(s)
	return cu
}

// SetNillableCredentialURL sets the "credential_url" field if the given value is not nil.
func (cu *CertificationUpdate) SetNillableCredentialURL(s *string) *CertificationUpdate {
	if s != nil {
		cu.SetCredentialURL(*s)
	}
	return cu
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (cu *CertificationUpdate) ClearCredentialURL() *CertificationUpdate {
	cu.mutation.ClearCredentialURL()
	return cu
}

// SetCertificateFile sets the "certificate_file" field.
func (cu *CertificationUpdate) SetCertificateFile(s string) *CertificationUpdate {
	cu.mutation.SetCertificateFile(s)
	return cu
}

// SetNillableCertificateFile sets the "certificate_file" field if the given value is not nil.
func (cu *CertificationUpdate) SetNillableCertificateFile(s *string) *CertificationUpdate {
	if s != nil {
		cu.SetCertificateFile(*s)
	}
	return cu
}

// ClearCertificateFile clears the value of the "certificate_file" field.
func (cu *CertificationUpdate) ClearCertificateFile() *CertificationUpdate {
	cu.mutation.ClearCertificateFile()
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *CertificationUpdate) SetUpdatedAt(t time.Time) *CertificationUpdate {
	cu.mutation.SetUpdatedAt(t)
	return cu
}

// Mutation returns the CertificationMutation object of the builder.
func (cu *CertificationUpdate) Mutation() *CertificationMutation {
	return cu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *CertificationUpdate) Save(ctx context.Context) (int, error) {
	cu.defaults()
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *CertificationUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *CertificationUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *CertificationUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cu *CertificationUpdate) defaults() {
	if _, ok := cu.mutation.UpdatedAt(); !ok {
		v := certification.UpdateDefaultUpdatedAt()
		cu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *CertificationUpdate) check() error {
	if v, ok := cu.mutation.Name(); ok {
		if err := certification.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Certification.name": %w`, err)}
		}
	}
	if v, ok := cu.mutation.IssuingOrganization(); ok {
		if err := certification.IssuingOrganizationValidator(v); err != nil {
			return &ValidationError{Name: "issuing_organization", err: fmt.Errorf(`ent: validator failed for field "Certification.issuing_organization": %w`, err)}
		}
	}
	if v, ok := cu.mutation.CredentialID(); ok {
		if err := certification.CredentialIDValidator(v); err != nil {
			return &ValidationError{Name: "credential_id", err: fmt.Errorf(`ent: validator failed for field "Certification.credential_id": %w`, err)}
		}
	}
	return nil
}

func (cu *CertificationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(certification.Table, certification.Columns, sqlgraph.NewFieldSpec(certification.FieldID, field.TypeString))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.Name(); ok {
		_spec.SetField(certification.FieldName, field.TypeString, value)
	}
	if value, ok := cu.mutation.IssuingOrganization(); ok {
		_spec.SetField(certification.FieldIssuingOrganization, field.TypeString, value)
	}
	if value, ok := cu.mutation.IssueDate(); ok {
		_spec.SetField(certification.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := cu.mutation.ExpirationDate(); ok {
		_spec.SetField(certification.FieldExpirationDate, field.TypeTime, value)
	}
	if cu.mutation.ExpirationDateCleared() {
		_spec.ClearField(certification.FieldExpirationDate, field.TypeTime)
	}
	if value, ok := cu.mutation.CredentialID(); ok {
		_spec.SetField(certification.FieldCredentialID, field.TypeString, value)
	}
	if cu.mutation.CredentialIDCleared() {
		_spec.ClearField(certification.FieldCredentialID, field.TypeString)
	}
	if value, ok := cu.mutation.CredentialURL(); ok {
		_spec.SetField(certification.FieldCredentialURL, field.TypeString, value)
	}
	if cu.mutation.CredentialURLCleared() {
		_spec.ClearField(certification.FieldCredentialURL, field.TypeString)
	}
	if value, ok := cu.mutation.CertificateFile(); ok {
		_spec.SetField(certification.FieldCertificateFile, field.TypeString, value)
	}
	if cu.mutation.CertificateFileCleared() {
		_spec.ClearField(certification.FieldCertificateFile, field.TypeString)
	}
	if value, ok := cu.mutation.UpdatedAt(); ok {
		_spec.SetField(certification.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// CertificationUpdateOne is the builder for updating a single Certification entity.
type CertificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CertificationMutation
}

// SetName sets the "name" field.
func (cuo *CertificationUpdateOne) SetName(s string) *CertificationUpdateOne {
	cuo.mutation.SetName(s)
	return cuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cuo *CertificationUpdateOne) SetNillableName(s *string) *CertificationUpdateOne {
	if s != nil {
		cuo.SetName(*s)
	}
	return cuo
}

// SetIssuingOrganization sets the "issuing_organization" field.
func (cuo *CertificationUpdateOne) SetIssuingOrganization(s string) *CertificationUpdateOne {
	cuo.mutation.SetIssuingOrganization(s)
	return cuo
}

// SetNillableIssuingOrganization sets the "issuing_organization" field if the given value is not nil.
func (cuo *CertificationUpdateOne) SetNillableIssuingOrganization(s *string) *CertificationUpdateOne {
	if s != nil {
		cuo.SetIssuingOrganization(*s)
	}
	return cuo
}

// SetIssueDate sets the "issue_date" field.
func (cuo *CertificationUpdateOne) SetIssueDate(t time.Time) *CertificationUpdateOne {
	cuo.mutation.SetIssueDate(t)
	return cuo
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (cuo *CertificationUpdateOne) SetNillableIssueDate(t *time.Time) *CertificationUpdateOne {
	if t != nil {
		cuo.SetIssueDate(*t)
	}
	return cuo
}

// SetExpirationDate sets the "expiration_date" field.
func (cuo *CertificationUpdateOne) SetExpirationDate(t time.Time) *CertificationUpdateOne {
	cuo.mutation.SetExpirationDate(t)
	return cuo
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (cuo *CertificationUpdateOne) SetNillableExpirationDate(t *time.Time) *CertificationUpdateOne {
	if t != nil {
		cuo.SetExpirationDate(*t)
	}
	return cuo
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (cuo *CertificationUpdateOne) ClearExpirationDate() *CertificationUpdateOne {
	cuo.mutation.ClearExpirationDate()
	return cuo
}

// SetCredentialID sets the "credential_id" field.
func (cuo *CertificationUpdateOne) SetCredentialID(s string) *CertificationUpdateOne {
	cuo.mutation.SetCredentialID(s)
	return cuo
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (cuo *CertificationUpdateOne) SetNillableCredentialID(s *string) *CertificationUpdateOne {
	if s != nil {
		cuo.SetCredentialID(*s)
	}
	return cuo
}

// ClearCredentialID clears the value of the "credential_id" field.
func (cuo *CertificationUpdateOne) ClearCredentialID() *CertificationUpdateOne {
	cuo.mutation.ClearCredentialID()
	return cuo
}

// SetCredentialURL sets the "credential_url" field.
func (cuo *CertificationUpdateOne) SetCredentialURL(s string) *CertificationUpdateOne {
	cuo.mutation.SetCredentialURL(s)
	return cuo
}

// SetNillableCredentialURL sets the "credential_url" field if the given value is not nil.
func (cuo *CertificationUpdateOne) SetNillableCredentialURL(s *string) *CertificationUpdateOne {
	if s != nil {
		cuo.SetCredentialURL(*s)
	}
	return cuo
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (cuo *CertificationUpdateOne) ClearCredentialURL() *CertificationUpdateOne {
	cuo.mutation.ClearCredentialURL()
	return cuo
}

// SetCertificateFile sets the "certificate_file" field.
func (cuo *CertificationUpdateOne) SetCertificateFile(s string) *CertificationUpdateOne {
	cuo.mutation.SetCertificateFile(s)
	return cuo
}

// SetNillableCertificateFile sets the "certificate_file" field if the given value is not nil.
func (cuo *CertificationUpdateOne) SetNillableCertificateFile(s *string) *CertificationUpdateOne {
	if s != nil {
		cuo.SetCertificateFile(*s)
	}
	return cuo
}

// ClearCertificateFile clears the value of the "certificate_file" field.
func (cuo *CertificationUpdateOne) ClearCertificateFile() *CertificationUpdateOne {
	cuo.mutation.ClearCertificateFile()
	return cuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *CertificationUpdateOne) SetUpdatedAt(t time.Time) *CertificationUpdateOne {
	cuo.mutation.SetUpdatedAt(t)
	return cuo
}

// Mutation returns the CertificationMutation object of the builder.
func (cuo *CertificationUpdateOne) Mutation() *CertificationMutation {
	return cuo.mutation
}

// Where appends a list predicates to the CertificationUpdate builder.
func (cuo *CertificationUpdateOne) Where(ps ...predicate.Certification) *CertificationUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *CertificationUpdateOne) Select(field string, fields ...string) *CertificationUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Certification entity.
func (cuo *CertificationUpdateOne) Save(ctx context.Context) (*Certification, error) {
	cuo.defaults()
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *CertificationUpdateOne) SaveX(ctx context.Context) *Certification {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *CertificationUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *CertificationUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cuo *CertificationUpdateOne) defaults() {
	if _, ok := cuo.mutation.UpdatedAt(); !ok {
		v := certification.UpdateDefaultUpdatedAt()
		cuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *CertificationUpdateOne) check() error {
	if v, ok := cuo.mutation.Name(); ok {
		if err := certification.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Certification.name": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.IssuingOrganization(); ok {
		if err := certification.IssuingOrganizationValidator(v); err != nil {
			return &ValidationError{Name: "issuing_organization", err: fmt.Errorf(`ent: validator failed for field "Certification.issuing_organization": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.CredentialID(); ok {
		if err := certification.CredentialIDValidator(v); err != nil {
			return &ValidationError{Name: "credential_id", err: fmt.Errorf(`ent: validator failed for field "Certification.credential_id": %w`, err)}
		}
	}
	return nil
}

func (cuo *CertificationUpdateOne) sqlSave(ctx context.Context) (_node *Certification, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certification.Table, certification.Columns, sqlgraph.NewFieldSpec(certification.FieldID, field.TypeString))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Certification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, certification.FieldID)
		for _, f := range fields {
			if !certification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != certification.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.Name(); ok {
		_spec.SetField(certification.FieldName, field.TypeString, value)
	}
	if value, ok := cuo.mutation.IssuingOrganization(); ok {
		_spec.SetField(certification.FieldIssuingOrganization, field.TypeString, value)
	}
	if value, ok := cuo.mutation.IssueDate(); ok {
		_spec.SetField(certification.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.ExpirationDate(); ok {
		_spec.SetField(certification.FieldExpirationDate, field.TypeTime, value)
	}
	if cuo.mutation.ExpirationDateCleared() {
		_spec.ClearField(certification.FieldExpirationDate, field.TypeTime)
	}
	if value, ok := cuo.mutation.CredentialID(); ok {
		_spec.SetField(certification.FieldCredentialID, field.TypeString, value)
	}
	if cuo.mutation.CredentialIDCleared() {
		_spec.ClearField(certification.FieldCredentialID, field.TypeString)
	}
	if value, ok := cuo.mutation.CredentialURL(); ok {
		_spec.SetField(certification.FieldCredentialURL, field.TypeString, value)
	}
	if cuo.mutation.CredentialURLCleared() {
		_spec.ClearField(certification.FieldCredentialURL, field.TypeString)
	}
	if value, ok := cuo.mutation.CertificateFile(); ok {
		_spec.SetField(certification.FieldCertificateFile, field.TypeString, value)
	}
	if cuo.mutation.CertificateFileCleared() {
		_spec.ClearField(certification.FieldCertificateFile, field.TypeString)
	}
	if value, ok := cuo.mutation.UpdatedAt(); ok {
		_spec.SetField(certification.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Certification{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
