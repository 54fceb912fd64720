// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/certification"
	"portfolio-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CertificationCreate is the builder for creating a Certification entity.
type CertificationCreate struct {
	config
	mutation *CertificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (cc *CertificationCreate) SetName(s string) *CertificationCreate {
	cc.mutation.SetName(s)
	return cc
}

// SetIssuingOrganization sets the "issuing_organization" field.
func (cc *CertificationCreate) SetIssuingOrganization(s string) *CertificationCreate {
	cc.mutation.SetIssuingOrganization(s)
	return cc
}

// SetIssueDate sets the "issue_date" field.
func (cc *CertificationCreate) SetIssueDate(t time.Time) *CertificationCreate {
	cc.mutation.SetIssueDate(t)
	return cc
}

// SetExpirationDate sets the "expiration_date" field.
func (cc *CertificationCreate) SetExpirationDate(t time.Time) *CertificationCreate {
	cc.mutation.SetExpirationDate(t)
	return cc
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (cc *CertificationCreate) SetNillableExpirationDate(t *time.Time) *CertificationCreate {
	if t != nil {
		cc.SetExpirationDate(*t)
	}
	return cc
}

// SetCredentialID sets the "credential_id" field.
func (cc *CertificationCreate) SetCredentialID(s string) *CertificationCreate {
	cc.mutation.SetCredentialID(s)
	return cc
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (cc *CertificationCreate) SetNillableCredentialID(s *string) *CertificationCreate {
	if s != nil {
		cc.SetCredentialID(*s)
	}
	return cc
}

// SetCredentialURL sets the "credential_url" field.
func (cc *CertificationCreate) SetCredentialURL(s string) *CertificationCreate {
	cc.mutation.SetCredentialURL(s)
	return cc
}

// SetNillableCredentialURL sets the "credential_url" field if the given value is not nil.
func (cc *CertificationCreate) SetNillableCredentialURL(s *string) *CertificationCreate {
	if s != nil {
		cc.SetCredentialURL(*s)
	}
	return cc
}

// SetCertificateFile sets the "certificate_file" field.
func (cc *CertificationCreate) SetCertificateFile(s string) *CertificationCreate {
	cc.mutation.SetCertificateFile(s)
	return cc
}

// SetNillableCertificateFile sets the "certificate_file" field if the given value is not nil.
func (cc *CertificationCreate) SetNillableCertificateFile(s *string) *CertificationCreate {
	if s != nil {
		cc.SetCertificateFile(*s)
	}
	return cc
}

// SetCreatedAt sets the "created_at" field.
func (cc *CertificationCreate) SetCreatedAt(t time.Time) *CertificationCreate {
	cc.mutation.SetCreatedAt(t)
	return cc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cc *CertificationCreate) SetNillableCreatedAt(t *time.Time) *CertificationCreate {
	if t != nil {
		cc.SetCreatedAt(*t)
	}
	return cc
}

// SetUpdatedAt sets the "updated_at" field.
func (cc *CertificationCreate) SetUpdatedAt(t time.Time) *CertificationCreate {
	cc.mutation.SetUpdatedAt(t)
	return cc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cc *CertificationCreate) SetNillableUpdatedAt(t *time.Time) *CertificationCreate {
	if t != nil {
		cc.SetUpdatedAt(*t)
	}
	return cc
}

// SetID sets the "id" field.
func (cc *CertificationCreate) SetID(u ulid.ID) *CertificationCreate {
	cc.mutation.SetID(u)
	return cc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cc *CertificationCreate) SetNillableID(u *ulid.ID) *CertificationCreate {
	if u != nil {
		cc.SetID(*u)
	}
	return cc
}

// Mutation returns the CertificationMutation object of the builder.
func (cc *CertificationCreate) Mutation() *CertificationMutation {
	return cc.mutation
}

// Save creates the Certification in the database.
func (cc *CertificationCreate) Save(ctx context.Context) (*Certification, error) {
	cc.defaults()
	return withHooks(ctx, cc.sqlSave, cc.mutation, cc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cc *CertificationCreate) SaveX(ctx context.Context) *Certification {
	v, err := cc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cc *CertificationCreate) Exec(ctx context.Context) error {
	_, err := cc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cc *CertificationCreate) ExecX(ctx context.Context) {
	if err := cc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cc *CertificationCreate) defaults() {
	if _, ok := cc.mutation.CreatedAt(); !ok {
		v := certification.DefaultCreatedAt()
		cc.mutation.SetCreatedAt(v)
	}
	if _, ok := cc.mutation.UpdatedAt(); !ok {
		v := certification.DefaultUpdatedAt()
		cc.mutation.SetUpdatedAt(v)
	}
	if _, ok := cc.mutation.ID(); !ok {
		v := certification.DefaultID()
		cc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cc *CertificationCreate) check() error {
	if _, ok := cc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Certification.name"`)}
	}
	if v, ok := cc.mutation.Name(); ok {
		if err := certification.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Certification.name": %w`, err)}
		}
	}
	if _, ok := cc.mutation.IssuingOrganization(); !ok {
		return &ValidationError{Name: "issuing_organization", err: errors.New(`ent: missing required field "Certification.issuing_organization"`)}
	}
	if v, ok := cc.mutation.IssuingOrganization(); ok {
		if err := certification.IssuingOrganizationValidator(v); err != nil {
			return &ValidationError{Name: "issuing_organization", err: fmt.Errorf(`ent: validator failed for field "Certification.issuing_organization": %w`, err)}
		}
	}
	if _, ok := cc.mutation.IssueDate(); !ok {
		return &ValidationError{Name: "issue_date", err: errors.New(`ent: missing required field "Certification.issue_date"`)}
	}
	if v, ok := cc.mutation.CredentialID(); ok {
		if err := certification.CredentialIDValidator(v); err != nil {
			return &ValidationError{Name: "credential_id", err: fmt.Errorf(`ent: validator failed for field "Certification.credential_id": %w`, err)}
		}
	}
	if _, ok := cc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Certification.created_at"`)}
	}
	if _, ok := cc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Certification.updated_at"`)}
	}
	return nil
}

func (cc *CertificationCreate) sqlSave(ctx context.Context) (*Certification, error) {
	if err := cc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(ulid.ID); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Certification.ID type: %T", _spec.ID.Value)
		}
	}
	cc.mutation.id = &_node.ID
	cc.mutation.done = true
	return _node, nil
}

func (cc *CertificationCreate) createSpec() (*Certification, *sqlgraph.CreateSpec) {
	var (
		_node = &Certification{config: cc.config}
		_spec = sqlgraph.NewCreateSpec(certification.Table, sqlgraph.NewFieldSpec(certification.FieldID, field.TypeString))
	)
	_spec.OnConflict = cc.conflict
	if id, ok := cc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := cc.mutation.Name(); ok {
		_spec.SetField(certification.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := cc.mutation.IssuingOrganization(); ok {
		_spec.SetField(certification.FieldIssuingOrganization, field.TypeString, value)
		_node.IssuingOrganization = value
	}
	if value, ok := cc.mutation.IssueDate(); ok {
		_spec.SetField(certification.FieldIssueDate, field.TypeTime, value)
		_node.IssueDate = value
	}
	if value, ok := cc.mutation.ExpirationDate(); ok {
		_spec.SetField(certification.FieldExpirationDate, field.TypeTime, value)
		_node.ExpirationDate = &value
	}
	if value, ok := cc.mutation.CredentialID(); ok {
		_spec.SetField(certification.FieldCredentialID, field.TypeString, value)
		_node.CredentialID = value
	}
	if value, ok := cc.mutation.CredentialURL(); ok {
		_spec.SetField(certification.FieldCredentialURL, field.TypeString, value)
		_node.CredentialURL = value
	}
	if value, ok := cc.mutation.CertificateFile(); ok {
		_spec.SetField(certification.FieldCertificateFile, field.TypeString, value)
		_node.CertificateFile = value
	}
	if value, ok := cc.mutation.CreatedAt(); ok {
		_spec.SetField(certification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cc.mutation.UpdatedAt(); ok {
		_spec.SetField(certification.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Certification.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CertificationUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (cc *CertificationCreate) OnConflict(opts ...sql.ConflictOption) *CertificationUpsertOne {
	cc.conflict = opts
	return &CertificationUpsertOne{
		create: cc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Certification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cc *CertificationCreate) OnConflictColumns(columns ...string) *CertificationUpsertOne {
	cc.conflict = append(cc.conflict, sql.ConflictColumns(columns...))
	return &CertificationUpsertOne{
		create: cc,
	}
}

type (
	// CertificationUpsertOne is the builder for "upsert"-ing
	//  one Certification node.
	CertificationUpsertOne struct {
		create *CertificationCreate
	}

	// CertificationUpsert is the "OnConflict" setter.
	CertificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CertificationUpsert) SetName(v string) *CertificationUpsert {
	u.Set(certification.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CertificationUpsert) UpdateName() *CertificationUpsert {
	u.SetExcluded(certification.FieldName)
	return u
}

// SetIssuingOrganization sets the "issuing_organization" field.
func (u *CertificationUpsert) SetIssuingOrganization(v string) *CertificationUpsert {
	u.Set(certification.FieldIssuingOrganization, v)
	return u
}

// UpdateIssuingOrganization sets the "issuing_organization" field to the value that was provided on create.
func (u *CertificationUpsert) UpdateIssuingOrganization() *CertificationUpsert {
	u.SetExcluded(certification.FieldIssuingOrganization)
	return u
}

// SetIssueDate sets the "issue_date" field.
func (u *CertificationUpsert) SetIssueDate(v time.Time) *CertificationUpsert {
	u.Set(certification.FieldIssueDate, v)
	return u
}

// UpdateIssueDate sets the "issue_date" field to the value that was provided on create.
func (u *CertificationUpsert) UpdateIssueDate() *CertificationUpsert {
	u.SetExcluded(certification.FieldIssueDate)
	return u
}

// SetExpirationDate sets the "expiration_date" field.
func (u *CertificationUpsert) SetExpirationDate(v time.Time) *CertificationUpsert {
	u.Set(certification.FieldExpirationDate, v)
	return u
}

// UpdateExpirationDate sets the "expiration_date" field to the value that was provided on create.
func (u *CertificationUpsert) UpdateExpirationDate() *CertificationUpsert {
	u.SetExcluded(certification.FieldExpirationDate)
	return u
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (u *CertificationUpsert) ClearExpirationDate() *CertificationUpsert {
	u.SetNull(certification.FieldExpirationDate)
	return u
}

// SetCredentialID sets the "credential_id" field.
func (u *CertificationUpsert) SetCredentialID(v string) *CertificationUpsert {
	u.Set(certification.FieldCredentialID, v)
	return u
}

// UpdateCredentialID sets the "credential_id" field to the value that was provided on create.
func (u *CertificationUpsert) UpdateCredentialID() *CertificationUpsert {
	u.SetExcluded(certification.FieldCredentialID)
	return u
}

// ClearCredentialID clears the value of the "credential_id" field.
func (u *CertificationUpsert) ClearCredentialID() *CertificationUpsert {
	u.SetNull(certification.FieldCredentialID)
	return u
}

// SetCredentialURL sets the "credential_url" field.
func (u *CertificationUpsert) SetCredentialURL(v string) *CertificationUpsert {
	u.Set(certification.FieldCredentialURL, v)
	return u
}

// UpdateCredentialURL sets the "credential_url" field to the value that was provided on create.
func (u *CertificationUpsert) UpdateCredentialURL() *CertificationUpsert {
	u.SetExcluded(certification.FieldCredentialURL)
	return u
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (u *CertificationUpsert) ClearCredentialURL() *CertificationUpsert {
	u.SetNull(certification.FieldCredentialURL)
	return u
}

// SetCertificateFile sets the "certificate_file" field.
func (u *CertificationUpsert) SetCertificateFile(v string) *CertificationUpsert {
	u.Set(certification.FieldCertificateFile, v)
	return u
}

// UpdateCertificateFile sets the "certificate_file" field to the value that was provided on create.
func (u *CertificationUpsert) UpdateCertificateFile() *CertificationUpsert {
	u.SetExcluded(certification.FieldCertificateFile)
	return u
}

// ClearCertificateFile clears the value of the "certificate_file" field.
func (u *CertificationUpsert) ClearCertificateFile() *CertificationUpsert {
	u.SetNull(certification.FieldCertificateFile)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CertificationUpsert) SetUpdatedAt(v time.Time) *CertificationUpsert {
	u.Set(certification.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CertificationUpsert) UpdateUpdatedAt() *CertificationUpsert {
	u.SetExcluded(certification.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Certification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(certification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CertificationUpsertOne) UpdateNewValues() *CertificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(certification.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(certification.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Certification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CertificationUpsertOne) Ignore() *CertificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CertificationUpsertOne) DoNothing() *CertificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CertificationCreate.OnConflict
// documentation for more info.
func (u *CertificationUpsertOne) Update(set func(*CertificationUpsert)) *CertificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CertificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CertificationUpsertOne) SetName(v string) *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CertificationUpsertOne) UpdateName() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateName()
	})
}

// SetIssuingOrganization sets the "issuing_organization" field.
func (u *CertificationUpsertOne) SetIssuingOrganization(v string) *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.SetIssuingOrganization(v)
	})
}

// UpdateIssuingOrganization sets the "issuing_organization" field to the value that was provided on create.
func (u *CertificationUpsertOne) UpdateIssuingOrganization() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateIssuingOrganization()
	})
}

// SetIssueDate sets the "issue_date" field.
func (u *CertificationUpsertOne) SetIssueDate(v time.Time) *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.SetIssueDate(v)
	})
}

// UpdateIssueDate sets the "issue_date" field to the value that was provided on create.
func (u *CertificationUpsertOne) UpdateIssueDate() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateIssueDate()
	})
}

// SetExpirationDate sets the "expiration_date" field.
func (u *CertificationUpsertOne) SetExpirationDate(v time.Time) *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.SetExpirationDate(v)
	})
}

// UpdateExpirationDate sets the "expiration_date" field to the value that was provided on create.
func (u *CertificationUpsertOne) UpdateExpirationDate() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateExpirationDate()
	})
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (u *CertificationUpsertOne) ClearExpirationDate() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.ClearExpirationDate()
	})
}

// SetCredentialID sets the "credential_id" field.
func (u *CertificationUpsertOne) SetCredentialID(v string) *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.SetCredentialID(v)
	})
}

// UpdateCredentialID sets the "credential_id" field to the value that was provided on create.
func (u *CertificationUpsertOne) UpdateCredentialID() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateCredentialID()
	})
}

// ClearCredentialID clears the value of the "credential_id" field.
func (u *CertificationUpsertOne) ClearCredentialID() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.ClearCredentialID()
	})
}

// SetCredentialURL sets the "credential_url" field.
func (u *CertificationUpsertOne) SetCredentialURL(v string) *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.SetCredentialURL(v)
	})
}

// UpdateCredentialURL sets the "credential_url" field to the value that was provided on create.
func (u *CertificationUpsertOne) UpdateCredentialURL() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateCredentialURL()
	})
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (u *CertificationUpsertOne) ClearCredentialURL() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.ClearCredentialURL()
	})
}

// SetCertificateFile sets the "certificate_file" field.
func (u *CertificationUpsertOne) SetCertificateFile(v string) *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.SetCertificateFile(v)
	})
}

// UpdateCertificateFile sets the "certificate_file" field to the value that was provided on create.
func (u *CertificationUpsertOne) UpdateCertificateFile() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateCertificateFile()
	})
}

// ClearCertificateFile clears the value of the "certificate_file" field.
func (u *CertificationUpsertOne) ClearCertificateFile() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.ClearCertificateFile()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CertificationUpsertOne) SetUpdatedAt(v time.Time) *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CertificationUpsertOne) UpdateUpdatedAt() *CertificationUpsertOne {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CertificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CertificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CertificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CertificationUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CertificationUpsertOne.ID is not supported by MySQL driver. Use CertificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CertificationUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CertificationCreateBulk is the builder for creating many Certification entities in bulk.
type CertificationCreateBulk struct {
	config
	err      error
	builders []*CertificationCreate
	conflict []sql.ConflictOption
}

// Save creates the Certification entities in the database.
func (ccb *CertificationCreateBulk) Save(ctx context.Context) ([]*Certification, error) {
	if ccb.err != nil {
		return nil, ccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ccb.builders))
	nodes := make([]*Certification, len(ccb.builders))
	mutators := make([]Mutator, len(ccb.builders))
	for i := range ccb.builders {
		func(i int, root context.Context) {
			builder := ccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CertificationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, ccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ccb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, ccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ccb *CertificationCreateBulk) SaveX(ctx context.Context) []*Certification {
	v, err := ccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccb *CertificationCreateBulk) Exec(ctx context.Context) error {
	_, err := ccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccb *CertificationCreateBulk) ExecX(ctx context.Context) {
	if err := ccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Certification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CertificationUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (ccb *CertificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *CertificationUpsertBulk {
	ccb.conflict = opts
	return &CertificationUpsertBulk{
		create: ccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Certification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ccb *CertificationCreateBulk) OnConflictColumns(columns ...string) *CertificationUpsertBulk {
	ccb.conflict = append(ccb.conflict, sql.ConflictColumns(columns...))
	return &CertificationUpsertBulk{
		create: ccb,
	}
}

// CertificationUpsertBulk is the builder for "upsert"-ing
// a bulk of Certification nodes.
type CertificationUpsertBulk struct {
	create *CertificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Certification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(certification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CertificationUpsertBulk) UpdateNewValues() *CertificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(certification.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(certification.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Certification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CertificationUpsertBulk) Ignore() *CertificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CertificationUpsertBulk) DoNothing() *CertificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CertificationCreateBulk.OnConflict
// documentation for more info.
func (u *CertificationUpsertBulk) Update(set func(*CertificationUpsert)) *CertificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CertificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CertificationUpsertBulk) SetName(v string) *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CertificationUpsertBulk) UpdateName() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateName()
	})
}

// SetIssuingOrganization sets the "issuing_organization" field.
func (u *CertificationUpsertBulk) SetIssuingOrganization(v string) *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.SetIssuingOrganization(v)
	})
}

// UpdateIssuingOrganization sets the "issuing_organization" field to the value that was provided on create.
func (u *CertificationUpsertBulk) UpdateIssuingOrganization() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateIssuingOrganization()
	})
}

// SetIssueDate sets the "issue_date" field.
func (u *CertificationUpsertBulk) SetIssueDate(v time.Time) *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.SetIssueDate(v)
	})
}

// UpdateIssueDate sets the "issue_date" field to the value that was provided on create.
func (u *CertificationUpsertBulk) UpdateIssueDate() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateIssueDate()
	})
}

// SetExpirationDate sets the "expiration_date" field.
func (u *CertificationUpsertBulk) SetExpirationDate(v time.Time) *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.SetExpirationDate(v)
	})
}

// UpdateExpirationDate sets the "expiration_date" field to the value that was provided on create.
func (u *CertificationUpsertBulk) UpdateExpirationDate() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateExpirationDate()
	})
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (u *CertificationUpsertBulk) ClearExpirationDate() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.ClearExpirationDate()
	})
}

// SetCredentialID sets the "credential_id" field.
func (u *CertificationUpsertBulk) SetCredentialID(v string) *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.SetCredentialID(v)
	})
}

// UpdateCredentialID sets the "credential_id" field to the value that was provided on create.
func (u *CertificationUpsertBulk) UpdateCredentialID() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateCredentialID()
	})
}

// ClearCredentialID clears the value of the "credential_id" field.
func (u *CertificationUpsertBulk) ClearCredentialID() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.ClearCredentialID()
	})
}

// SetCredentialURL sets the "credential_url" field.
func (u *CertificationUpsertBulk) SetCredentialURL(v string) *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.SetCredentialURL(v)
	})
}

// UpdateCredentialURL sets the "credential_url" field to the value that was provided on create.
func (u *CertificationUpsertBulk) UpdateCredentialURL() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateCredentialURL()
	})
}

// ClearCredentialURL clears the value of the "credential_url" field.
func (u *CertificationUpsertBulk) ClearCredentialURL() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.ClearCredentialURL()
	})
}

// SetCertificateFile sets the "certificate_file" field.
func (u *CertificationUpsertBulk) SetCertificateFile(v string) *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.SetCertificateFile(v)
	})
}

// UpdateCertificateFile sets the "certificate_file" field to the value that was provided on create.
func (u *CertificationUpsertBulk) UpdateCertificateFile() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateCertificateFile()
	})
}

// ClearCertificateFile clears the value of the "certificate_file" field.
func (u *CertificationUpsertBulk) ClearCertificateFile() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.ClearCertificateFile()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CertificationUpsertBulk) SetUpdatedAt(v time.Time) *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CertificationUpsertBulk) UpdateUpdatedAt() *CertificationUpsertBulk {
	return u.Update(func(s *CertificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CertificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CertificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CertificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CertificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
