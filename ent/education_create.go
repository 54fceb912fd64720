// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/education"
	"portfolio-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EducationCreate is the builder for creating a Education entity.
type EducationCreate struct {
	config
	mutation *EducationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDegree sets the "degree" field.
func (ec *EducationCreate) SetDegree(e education.Degree) *EducationCreate {
	ec.mutation.SetDegree(e)
	return ec
}

// SetFieldOfStudy sets the "field_of_study" field.
func (ec *EducationCreate) SetFieldOfStudy(s string) *EducationCreate {
	ec.mutation.SetFieldOfStudy(s)
	return ec
}

// SetInstitution sets the "institution" field.
func (ec *EducationCreate) SetInstitution(s string) *EducationCreate {
	ec.mutation.SetInstitution(s)
	return ec
}

// SetLocation sets the "location" field.
func (ec *EducationCreate) SetLocation(s string) *EducationCreate {
	ec.mutation.SetLocation(s)
	return ec
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (ec *EducationCreate) SetNillableLocation(s *string) *EducationCreate {
	if s != nil {
		ec.SetLocation(*s)
	}
	return ec
}

// SetStartDate sets the "start_date" field.
func (ec *EducationCreate) SetStartDate(t time.Time) *EducationCreate {
	ec.mutation.SetStartDate(t)
	return ec
}

// SetEndDate sets the "end_date" field.
func (ec *EducationCreate) SetEndDate(t time.Time) *EducationCreate {
	ec.mutation.SetEndDate(t)
	return ec
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (ec *EducationCreate) SetNillableEndDate(t *time.Time) *EducationCreate {
	if t != nil {
		ec.SetEndDate(*t)
	}
	return ec
}

// SetIsCurrent sets the "is_current" field.
func (ec *EducationCreate) SetIsCurrent(b bool) *EducationCreate {
	ec.mutation.SetIsCurrent(b)
	return ec
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (ec *EducationCreate) SetNillableIsCurrent(b *bool) *EducationCreate {
	if b != nil {
		ec.SetIsCurrent(*b)
	}
	return ec
}

// SetDescription sets the "description" field.
func (ec *EducationCreate) SetDescription(s string) *EducationCreate {
	ec.mutation.SetDescription(s)
	return ec
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ec *EducationCreate) SetNillableDescription(s *string) *EducationCreate {
	if s != nil {
		ec.SetDescription(*s)
	}
	return ec
}

// SetGrade sets the "grade" field.
func (ec *EducationCreate) SetGrade(s string) *EducationCreate {
	ec.mutation.SetGrade(s)
	return ec
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (ec *EducationCreate) SetNillableGrade(s *string) *EducationCreate {
	if s != nil {
		ec.SetGrade(*s)
	}
	return ec
}

// SetCreatedAt sets the "created_at" field.
func (ec *EducationCreate) SetCreatedAt(t time.Time) *EducationCreate {
	ec.mutation.SetCreatedAt(t)
	return ec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ec *EducationCreate) SetNillableCreatedAt(t *time.Time) *EducationCreate {
	if t != nil {
		ec.SetCreatedAt(*t)
	}
	return ec
}

// SetUpdatedAt sets the "updated_at" field.
func (ec *EducationCreate) SetUpdatedAt(t time.Time) *EducationCreate {
	ec.mutation.SetUpdatedAt(t)
	return ec
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ec *EducationCreate) SetNillableUpdatedAt(t *time.Time) *EducationCreate {
	if t != nil {
		ec.SetUpdatedAt(*t)
	}
	return ec
}

// SetID sets the "id" field.
func (ec *EducationCreate) SetID(u ulid.ID) *EducationCreate {
	ec.mutation.SetID(u)
	return ec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ec *EducationCreate) SetNillableID(u *ulid.ID) *EducationCreate {
	if u != nil {
		ec.SetID(*u)
	}
	return ec
}

// Mutation returns the EducationMutation object of the builder.
func (ec *EducationCreate) Mutation() *EducationMutation {
	return ec.mutation
}

// Save creates the Education in the database.
func (ec *EducationCreate) Save(ctx context.Context) (*Education, error) {
	ec.defaults()
	return withHooks(ctx, ec.sqlSave, ec.mutation, ec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ec *EducationCreate) SaveX(ctx context.Context) *Education {
	v, err := ec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ec *EducationCreate) Exec(ctx context.Context) error {
	_, err := ec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ec *EducationCreate) ExecX(ctx context.Context) {
	if err := ec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ec *EducationCreate) defaults() {
	if _, ok := ec.mutation.IsCurrent(); !ok {
		v := education.DefaultIsCurrent
		ec.mutation.SetIsCurrent(v)
	}
	if _, ok := ec.mutation.CreatedAt(); !ok {
		v := education.DefaultCreatedAt()
		ec.mutation.SetCreatedAt(v)
	}
	if _, ok := ec.mutation.UpdatedAt(); !ok {
		v := education.DefaultUpdatedAt()
		ec.mutation.SetUpdatedAt(v)
	}
	if _, ok := ec.mutation.ID(); !ok {
		v := education.DefaultID()
		ec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ec *EducationCreate) check() error {
	if _, ok := ec.mutation.Degree(); !ok {
		return &ValidationError{Name: "degree", err: errors.New(`ent: missing required field "Education.degree"`)}
	}
	if v, ok := ec.mutation.Degree(); ok {
		if err := education.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`ent: validator failed for field "Education.degree": %w`, err)}
		}
	}
	if _, ok := ec.mutation.FieldOfStudy(); !ok {
		return &ValidationError{Name: "field_of_study", err: errors.New(`ent: missing required field "Education.field_of_study"`)}
	}
	if v, ok := ec.mutation.FieldOfStudy(); ok {
		if err := education.FieldOfStudyValidator(v); err != nil {
			return &ValidationError{Name: "field_of_study", err: fmt.Errorf(`ent: validator failed for field "Education.field_of_study": %w`, err)}
		}
	}
	if _, ok := ec.mutation.Institution(); !ok {
		return &ValidationError{Name: "institution", err: errors.New(`ent: missing required field "Education.institution"`)}
	}
	if v, ok := ec.mutation.Institution(); ok {
		if err := education.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "Education.institution": %w`, err)}
		}
	}
	if v, ok := ec.mutation.Location(); ok {
		if err := education.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Education.location": %w`, err)}
		}
	}
	if _, ok := ec.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Education.start_date"`)}
	}
	if _, ok := ec.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "Education.is_current"`)}
	}
	if v, ok := ec.mutation.Grade(); ok {
		if err := education.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Education.grade": %w`, err)}
		}
	}
	if _, ok := ec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Education.created_at"`)}
	}
	if _, ok := ec.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Education.updated_at"`)}
	}
	return nil
}

func (ec *EducationCreate) sqlSave(ctx context.Context) (*Education, error) {
	if err := ec.check(); err != nil {
		return nil, err
	}
	_node, _spec := ec.createSpec()
	if err := sqlgraph.CreateNode(ctx, ec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(ulid.ID); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Education.ID type: %T", _spec.ID.Value)
		}
	}
	ec.mutation.id = &_node.ID
	ec.mutation.done = true
	return _node, nil
}

func (ec *EducationCreate) createSpec() (*Education, *sqlgraph.CreateSpec) {
	var (
		_node = &Education{config: ec.config}
		_spec = sqlgraph.NewCreateSpec(education.Table, sqlgraph.NewFieldSpec(education.FieldID, field.TypeString))
	)
	_spec.OnConflict = ec.conflict
	if id, ok := ec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ec.mutation.Degree(); ok {
		_spec.SetField(education.FieldDegree, field.TypeEnum, value)
		_node.Degree = value
	}
	if value, ok := ec.mutation.FieldOfStudy(); ok {
		_spec.SetField(education.FieldFieldOfStudy, field.TypeString, value)
		_node.FieldOfStudy = value
	}
	if value, ok := ec.mutation.Institution(); ok {
		_spec.SetField(education.FieldInstitution, field.TypeString, value)
		_node.Institution = value
	}
	if value, ok := ec.mutation.Location(); ok {
		_spec.SetField(education.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := ec.mutation.StartDate(); ok {
		_spec.SetField(education.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := ec.mutation.EndDate(); ok {
		_spec.SetField(education.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := ec.mutation.IsCurrent(); ok {
		_spec.SetField(education.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := ec.mutation.Description(); ok {
		_spec.SetField(education.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := ec.mutation.Grade(); ok {
		_spec.SetField(education.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := ec.mutation.CreatedAt(); ok {
		_spec.SetField(education.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ec.mutation.UpdatedAt(); ok {
		_spec.SetField(education.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Education.Create().
//		SetDegree(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EducationUpsert) {
//			SetDegree(v+v).
//		}).
//		Exec(ctx)
func (ec *EducationCreate) OnConflict(opts ...sql.ConflictOption) *EducationUpsertOne {
	ec.conflict = opts
	return &EducationUpsertOne{
		create: ec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Education.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ec *EducationCreate) OnConflictColumns(columns ...string) *EducationUpsertOne {
	ec.conflict = append(ec.conflict, sql.ConflictColumns(columns...))
	return &EducationUpsertOne{
		create: ec,
	}
}

type (
	// EducationUpsertOne is the builder for "upsert"-ing
	//  one Education node.
	EducationUpsertOne struct {
		create *EducationCreate
	}

	// EducationUpsert is the "OnConflict" setter.
	EducationUpsert struct {
		*sql.UpdateSet
	}
)

// SetDegree sets the "degree" field.
func (u *EducationUpsert) SetDegree(v education.Degree) *EducationUpsert {
	u.Set(education.FieldDegree, v)
	return u
}

// UpdateDegree sets the "degree" field to the value that was provided on create.
func (u *EducationUpsert) UpdateDegree() *EducationUpsert {
	u.SetExcluded(education.FieldDegree)
	return u
}

// SetFieldOfStudy sets the "field_of_study" field.
func (u *EducationUpsert) SetFieldOfStudy(v string) *EducationUpsert {
	u.Set(education.FieldFieldOfStudy, v)
	return u
}

// UpdateFieldOfStudy sets the "field_of_study" field to the value that was provided on create.
func (u *EducationUpsert) UpdateFieldOfStudy() *EducationUpsert {
	u.SetExcluded(education.FieldFieldOfStudy)
	return u
}

// SetInstitution sets the "institution" field.
func (u *EducationUpsert) SetInstitution(v string) *EducationUpsert {
	u.Set(education.FieldInstitution, v)
	return u
}

// UpdateInstitution sets the "institution" field to the value that was provided on create.
func (u *EducationUpsert) UpdateInstitution() *EducationUpsert {
	u.SetExcluded(education.FieldInstitution)
	return u
}

// SetLocation sets the "location" field.
func (u *EducationUpsert) SetLocation(v string) *EducationUpsert {
	u.Set(education.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EducationUpsert) UpdateLocation() *EducationUpsert {
	u.SetExcluded(education.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *EducationUpsert) ClearLocation() *EducationUpsert {
	u.SetNull(education.FieldLocation)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *EducationUpsert) SetStartDate(v time.Time) *EducationUpsert {
	u.Set(education.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *EducationUpsert) UpdateStartDate() *EducationUpsert {
	u.SetExcluded(education.FieldStartDate)
	return u
}

// SetEndDate sets the "end_date" field.
func (u *EducationUpsert) SetEndDate(v time.Time) *EducationUpsert {
	u.Set(education.FieldEndDate, v)
	return u
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *EducationUpsert) UpdateEndDate() *EducationUpsert {
	u.SetExcluded(education.FieldEndDate)
	return u
}

// ClearEndDate clears the value of the "end_date" field.
func (u *EducationUpsert) ClearEndDate() *EducationUpsert {
	u.SetNull(education.FieldEndDate)
	return u
}

// SetIsCurrent sets the "is_current" field.
func (u *EducationUpsert) SetIsCurrent(v bool) *EducationUpsert {
	u.Set(education.FieldIsCurrent, v)
	return u
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *EducationUpsert) UpdateIsCurrent() *EducationUpsert {
	u.SetExcluded(education.FieldIsCurrent)
	return u
}

// SetDescription sets the "description" field.
func (u *EducationUpsert) SetDescription(v string) *EducationUpsert {
	u.Set(education.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EducationUpsert) UpdateDescription() *EducationUpsert {
	u.SetExcluded(education.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *EducationUpsert) ClearDescription() *EducationUpsert {
	u.SetNull(education.FieldDescription)
	return u
}

// SetGrade sets the "grade" field.
func (u *EducationUpsert) SetGrade(v string) *EducationUpsert {
	u.Set(education.FieldGrade, v)
	return u
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *EducationUpsert) UpdateGrade() *EducationUpsert {
	u.SetExcluded(education.FieldGrade)
	return u
}

// ClearGrade clears the value of the "grade" field.
func (u *EducationUpsert) ClearGrade() *EducationUpsert {
	u.SetNull(education.FieldGrade)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EducationUpsert) SetUpdatedAt(v time.Time) *EducationUpsert {
	u.Set(education.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EducationUpsert) UpdateUpdatedAt() *EducationUpsert {
	u.SetExcluded(education.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Education.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(education.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EducationUpsertOne) UpdateNewValues() *EducationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(education.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(education.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Education.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EducationUpsertOne) Ignore() *EducationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EducationUpsertOne) DoNothing() *EducationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EducationCreate.OnConflict
// documentation for more info.
func (u *EducationUpsertOne) Update(set func(*EducationUpsert)) *EducationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EducationUpsert{UpdateSet: update})
	}))
	return u
}

// SetDegree sets the "degree" field.
func (u *EducationUpsertOne) SetDegree(v education.Degree) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetDegree(v)
	})
}

// UpdateDegree sets the "degree" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateDegree() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateDegree()
	})
}

// SetFieldOfStudy sets the "field_of_study" field.
func (u *EducationUpsertOne) SetFieldOfStudy(v string) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetFieldOfStudy(v)
	})
}

// UpdateFieldOfStudy sets the "field_of_study" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateFieldOfStudy() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateFieldOfStudy()
	})
}

// SetInstitution sets the "institution" field.
func (u *EducationUpsertOne) SetInstitution(v string) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetInstitution(v)
	})
}

// UpdateInstitution sets the "institution" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateInstitution() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateInstitution()
	})
}

// SetLocation sets the "location" field.
func (u *EducationUpsertOne) SetLocation(v string) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateLocation() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *EducationUpsertOne) ClearLocation() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.ClearLocation()
	})
}

// SetStartDate sets the "start_date" field.
func (u *EducationUpsertOne) SetStartDate(v time.Time) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateStartDate() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *EducationUpsertOne) SetEndDate(v time.Time) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateEndDate() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *EducationUpsertOne) ClearEndDate() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.ClearEndDate()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *EducationUpsertOne) SetIsCurrent(v bool) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateIsCurrent() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetDescription sets the "description" field.
func (u *EducationUpsertOne) SetDescription(v string) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateDescription() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EducationUpsertOne) ClearDescription() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.ClearDescription()
	})
}

// SetGrade sets the "grade" field.
func (u *EducationUpsertOne) SetGrade(v string) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetGrade(v)
	})
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateGrade() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateGrade()
	})
}

// ClearGrade clears the value of the "grade" field.
func (u *EducationUpsertOne) ClearGrade() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.ClearGrade()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EducationUpsertOne) SetUpdatedAt(v time.Time) *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EducationUpsertOne) UpdateUpdatedAt() *EducationUpsertOne {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EducationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EducationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EducationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EducationUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EducationUpsertOne.ID is not supported by MySQL driver. Use EducationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EducationUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EducationCreateBulk is the builder for creating many Education entities in bulk.
type EducationCreateBulk struct {
	config
	err      error
	builders []*EducationCreate
	conflict []sql.ConflictOption
}

// Save creates the Education entities in the database.
func (ecb *EducationCreateBulk) Save(ctx context.Context) ([]*Education, error) {
	if ecb.err != nil {
		return nil, ecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ecb.builders))
	nodes := make([]*Education, len(ecb.builders))
	mutators := make([]Mutator, len(ecb.builders))
	for i := range ecb.builders {
		func(i int, root context.Context) {
			builder := ecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EducationMutation)
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
					_, err = mutators[i+1].Mutate(root, ecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = ecb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ecb *EducationCreateBulk) SaveX(ctx context.Context) []*Education {
	v, err := ecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ecb *EducationCreateBulk) Exec(ctx context.Context) error {
	_, err := ecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecb *EducationCreateBulk) ExecX(ctx context.Context) {
	if err := ecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Education.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EducationUpsert) {
//			SetDegree(v+v).
//		}).
//		Exec(ctx)
func (ecb *EducationCreateBulk) OnConflict(opts ...sql.ConflictOption) *EducationUpsertBulk {
	ecb.conflict = opts
	return &EducationUpsertBulk{
		create: ecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Education.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ecb *EducationCreateBulk) OnConflictColumns(columns ...string) *EducationUpsertBulk {
	ecb.conflict = append(ecb.conflict, sql.ConflictColumns(columns...))
	return &EducationUpsertBulk{
		create: ecb,
	}
}

// EducationUpsertBulk is the builder for "upsert"-ing
// a bulk of Education nodes.
type EducationUpsertBulk struct {
	create *EducationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Education.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(education.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EducationUpsertBulk) UpdateNewValues() *EducationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(education.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(education.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Education.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EducationUpsertBulk) Ignore() *EducationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EducationUpsertBulk) DoNothing() *EducationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EducationCreateBulk.OnConflict
// documentation for more info.
func (u *EducationUpsertBulk) Update(set func(*EducationUpsert)) *EducationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EducationUpsert{UpdateSet: update})
	}))
	return u
}

// SetDegree sets the "degree" field.
func (u *EducationUpsertBulk) SetDegree(v education.Degree) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetDegree(v)
	})
}

// UpdateDegree sets the "degree" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateDegree() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateDegree()
	})
}

// SetFieldOfStudy sets the "field_of_study" field.
func (u *EducationUpsertBulk) SetFieldOfStudy(v string) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetFieldOfStudy(v)
	})
}

// UpdateFieldOfStudy sets the "field_of_study" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateFieldOfStudy() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateFieldOfStudy()
	})
}

// SetInstitution sets the "institution" field.
func (u *EducationUpsertBulk) SetInstitution(v string) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetInstitution(v)
	})
}

// UpdateInstitution sets the "institution" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateInstitution() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateInstitution()
	})
}

// SetLocation sets the "location" field.
func (u *EducationUpsertBulk) SetLocation(v string) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateLocation() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *EducationUpsertBulk) ClearLocation() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.ClearLocation()
	})
}

// SetStartDate sets the "start_date" field.
func (u *EducationUpsertBulk) SetStartDate(v time.Time) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateStartDate() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *EducationUpsertBulk) SetEndDate(v time.Time) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateEndDate() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *EducationUpsertBulk) ClearEndDate() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.ClearEndDate()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *EducationUpsertBulk) SetIsCurrent(v bool) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateIsCurrent() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetDescription sets the "description" field.
func (u *EducationUpsertBulk) SetDescription(v string) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateDescription() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EducationUpsertBulk) ClearDescription() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.ClearDescription()
	})
}

// SetGrade sets the "grade" field.
func (u *EducationUpsertBulk) SetGrade(v string) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetGrade(v)
	})
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateGrade() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateGrade()
	})
}

// ClearGrade clears the value of the "grade" field.
func (u *EducationUpsertBulk) ClearGrade() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.ClearGrade()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EducationUpsertBulk) SetUpdatedAt(v time.Time) *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EducationUpsertBulk) UpdateUpdatedAt() *EducationUpsertBulk {
	return u.Update(func(s *EducationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EducationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EducationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EducationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EducationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
