// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/education"
	"portfolio-go-backend/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EducationUpdate is the builder for updating Education entities.
type EducationUpdate struct {
	config
	hooks    []Hook
	mutation *EducationMutation
}

// Where appends a list predicates to the EducationUpdate builder.
func (eu *EducationUpdate) Where(ps ...predicate.Education) *EducationUpdate {
	eu.mutation.Where(ps...)
	return eu
}

// SetDegree sets the "degree" field.
func (eu *EducationUpdate) SetDegree(e education.Degree) *EducationUpdate {
	eu.mutation.SetDegree(e)
	return eu
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (eu *EducationUpdate) SetNillableDegree(e *education.Degree) *EducationUpdate {
	if e != nil {
		eu.SetDegree(*e)
	}
	return eu
}

// SetFieldOfStudy sets the "field_of_study" field.
func (eu *EducationUpdate) SetFieldOfStudy(s string) *EducationUpdate {
	eu.mutation.SetFieldOfStudy(s)
	return eu
}

// SetNillableFieldOfStudy sets the "field_of_study" field if the given value is not nil.
func (eu *EducationUpdate) SetNillableFieldOfStudy(s *string) *EducationUpdate {
	if s != nil {
		eu.SetFieldOfStudy(*s)
	}
	return eu
}

// SetInstitution sets the "institution" field.
func (eu *EducationUpdate) SetInstitution(s string) *EducationUpdate {
	eu.mutation.SetInstitution(s)
	return eu
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (eu *EducationUpdate) SetNillableInstitution(s *string) *EducationUpdate {
	if s != nil {
		eu.SetInstitution(*s)
	}
	return eu
}

// SetLocation sets the "location" field.
func (eu *EducationUpdate) SetLocation(s string) *EducationUpdate {
	eu.mutation.SetLocation(s)
	return eu
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (eu *EducationUpdate) SetNillableLocation(s *string) *EducationUpdate {
	if s != nil {
		eu.SetLocation(*s)
	}
	return eu
}

// ClearLocation clears the value of the "location" field.
func (eu *EducationUpdate) ClearLocation() *EducationUpdate {
	eu.mutation.ClearLocation()
	return eu
}

// SetStartDate sets the "start_date" field.
func (eu *EducationUpdate) SetStartDate(t time.Time) *EducationUpdate {
	eu.mutation.SetStartDate(t)
	return eu
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (eu *EducationUpdate) SetNillableStartDate(t *time.Time) *EducationUpdate {
	if t != nil {
		eu.SetStartDate(*t)
	}
	return eu
}

// SetEndDate sets the "end_date" field.
func (eu *EducationUpdate) SetEndDate(t time.Time) *EducationUpdate {
	eu.mutation.SetEndDate(t)
	return eu
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (eu *EducationUpdate) SetNillableEndDate(t *time.Time) *EducationUpdate {
	if t != nil {
		eu.SetEndDate(*t)
	}
	return eu
}

// ClearEndDate clears the value of the "end_date" field.
func (eu *EducationUpdate) ClearEndDate() *EducationUpdate {
	eu.mutation.ClearEndDate()
	return eu
}

// SetIsCurrent sets the "is_current" field.
func (eu *EducationUpdate) SetIsCurrent(b bool) *EducationUpdate {
	eu.mutation.SetIsCurrent(b)
	return eu
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (eu *EducationUpdate) SetNillableIsCurrent(b *bool) *EducationUpdate {
	if b != nil {
		eu.SetIsCurrent(*b)
	}
	return eu
}

// SetDescription sets the "description" field.
func (eu *EducationUpdate) SetDescription(s string) *EducationUpdate {
	eu.mutation.SetDescription(s)
	return eu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (eu *EducationUpdate) SetNillableDescription(s *string) *EducationUpdate {
	if s != nil {
		eu.SetDescription(*s)
	}
	return eu
}

// ClearDescription clears the value of the "description" field.
func (eu *EducationUpdate) ClearDescription() *EducationUpdate {
	eu.mutation.ClearDescription()
	return eu
}

// SetGrade sets the "grade" field.
func (eu *EducationUpdate) SetGrade(s string) *EducationUpdate {
	eu.mutation.SetGrade(s)
	return eu
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (eu *EducationUpdate) SetNillableGrade(s *string) *EducationUpdate {
	if s != nil {
		eu.SetGrade(*s)
	}
	return eu
}

// ClearGrade clears the value of the "grade" field.
func (eu *EducationUpdate) ClearGrade() *EducationUpdate {
	eu.mutation.ClearGrade()
	return eu
}

// SetUpdatedAt sets the "updated_at" field.
func (eu *EducationUpdate) SetUpdatedAt(t time.Time) *EducationUpdate {
	eu.mutation.SetUpdatedAt(t)
	return eu
}

// Mutation returns the EducationMutation object of the builder.
func (eu *EducationUpdate) Mutation() *EducationMutation {
	return eu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (eu *EducationUpdate) Save(ctx context.Context) (int, error) {
	eu.defaults()
	return withHooks(ctx, eu.sqlSave, eu.mutation, eu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eu *EducationUpdate) SaveX(ctx context.Context) int {
	affected, err := eu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (eu *EducationUpdate) Exec(ctx context.Context) error {
	_, err := eu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eu *EducationUpdate) ExecX(ctx context.Context) {
	if err := eu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (eu *EducationUpdate) defaults() {
	if _, ok := eu.mutation.UpdatedAt(); !ok {
		v := education.UpdateDefaultUpdatedAt()
		eu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eu *EducationUpdate) check() error {
	if v, ok := eu.mutation.Degree(); ok {
		if err := education.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`ent: validator failed for field "Education.degree": %w`, err)}
		}
	}
	if v, ok := eu.mutation.FieldOfStudy(); ok {
		if err := education.FieldOfStudyValidator(v); err != nil {
			return &ValidationError{Name: "field_of_study", err: fmt.Errorf(`ent: validator failed for field "Education.field_of_study": %w`, err)}
		}
	}
	if v, ok := eu.mutation.Institution(); ok {
		if err := education.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "Education.institution": %w`, err)}
		}
	}
	if v, ok := eu.mutation.Location(); ok {
		if err := education.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Education.location": %w`, err)}
		}
	}
	if v, ok := eu.mutation.Grade(); ok {
		if err := education.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Education.grade": %w`, err)}
		}
	}
	return nil
}

func (eu *EducationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := eu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(education.Table, education.Columns, sqlgraph.NewFieldSpec(education.FieldID, field.TypeString))
	if ps := eu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eu.mutation.Degree(); ok {
		_spec.SetField(education.FieldDegree, field.TypeEnum, value)
	}
	if value, ok := eu.mutation.FieldOfStudy(); ok {
		_spec.SetField(education.FieldFieldOfStudy, field.TypeString, value)
	}
	if value, ok := eu.mutation.Institution(); ok {
		_spec.SetField(education.FieldInstitution, field.TypeString, value)
	}
	if value, ok := eu.mutation.Location(); ok {
		_spec.SetField(education.FieldLocation, field.TypeString, value)
	}
	if eu.mutation.LocationCleared() {
		_spec.ClearField(education.FieldLocation, field.TypeString)
	}
	if value, ok := eu.mutation.StartDate(); ok {
		_spec.SetField(education.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := eu.mutation.EndDate(); ok {
		_spec.SetField(education.FieldEndDate, field.TypeTime, value)
	}
	if eu.mutation.EndDateCleared() {
		_spec.ClearField(education.FieldEndDate, field.TypeTime)
	}
	if value, ok := eu.mutation.IsCurrent(); ok {
		_spec.SetField(education.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := eu.mutation.Description(); ok {
		_spec.SetField(education.FieldDescription, field.TypeString, value)
	}
	if eu.mutation.DescriptionCleared() {
		_spec.ClearField(education.FieldDescription, field.TypeString)
	}
	if value, ok := eu.mutation.Grade(); ok {
		_spec.SetField(education.FieldGrade, field.TypeString, value)
	}
	if eu.mutation.GradeCleared() {
		_spec.ClearField(education.FieldGrade, field.TypeString)
	}
	if value, ok := eu.mutation.UpdatedAt(); ok {
		_spec.SetField(education.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, eu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{education.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	eu.mutation.done = true
	return n, nil
}

// EducationUpdateOne is the builder for updating a single Education entity.
type EducationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EducationMutation
}

// SetDegree sets the "degree" field.
func (euo *EducationUpdateOne) SetDegree(e education.Degree) *EducationUpdateOne {
	euo.mutation.SetDegree(e)
	return euo
}

// SetNillableDegree sets the "degree" field if the given value is not nil.
func (euo *EducationUpdateOne) SetNillableDegree(e *education.Degree) *EducationUpdateOne {
	if e != nil {
		euo.SetDegree(*e)
	}
	return euo
}

// SetFieldOfStudy sets the "field_of_study" field.
func (euo *EducationUpdateOne) SetFieldOfStudy(s string) *EducationUpdateOne {
	euo.mutation.SetFieldOfStudy(s)
	return euo
}

// SetNillableFieldOfStudy sets the "field_of_study" field if the given value is not nil.
func (euo *EducationUpdateOne) SetNillableFieldOfStudy(s *string) *EducationUpdateOne {
	if s != nil {
		euo.SetFieldOfStudy(*s)
	}
	return euo
}

// SetInstitution sets the "institution" field.
func (euo *EducationUpdateOne) SetInstitution(s string) *EducationUpdateOne {
	euo.mutation.SetInstitution(s)
	return euo
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (euo *EducationUpdateOne) SetNillableInstitution(s *string) *EducationUpdateOne {
	if s != nil {
		euo.SetInstitution(*s)
	}
	return euo
}

// SetLocation sets the "location" field.
func (euo *EducationUpdateOne) SetLocation(s string) *EducationUpdateOne {
	euo.mutation.SetLocation(s)
	return euo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (euo *EducationUpdateOne) SetNillableLocation(s *string) *EducationUpdateOne {
	if s != nil {
		euo.SetLocation(*s)
	}
	return euo
}

// ClearLocation clears the value of the "location" field.
func (euo *EducationUpdateOne) ClearLocation() *EducationUpdateOne {
	euo.mutation.ClearLocation()
	return euo
}

// SetStartDate sets the "start_date" field.
func (euo *EducationUpdateOne) SetStartDate(t time.Time) *EducationUpdateOne {
	euo.mutation.SetStartDate(t)
	return euo
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (euo *EducationUpdateOne) SetNillableStartDate(t *time.Time) *EducationUpdateOne {
	if t != nil {
		euo.SetStartDate(*t)
	}
	return euo
}

// SetEndDate sets the "end_date" field.
func (euo *EducationUpdateOne) SetEndDate(t time.Time) *EducationUpdateOne {
	euo.mutation.SetEndDate(t)
	return euo
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (euo *EducationUpdateOne) SetNillableEndDate(t *time.Time) *EducationUpdateOne {
	if t != nil {
		euo.SetEndDate(*t)
	}
	return euo
}

// ClearEndDate clears the value of the "end_date" field.
func (euo *EducationUpdateOne) ClearEndDate() *EducationUpdateOne {
	euo.mutation.ClearEndDate()
	return euo
}

// SetIsCurrent sets the "is_current" field.
func (euo *EducationUpdateOne) SetIsCurrent(b bool) *EducationUpdateOne {
	euo.mutation.SetIsCurrent(b)
	return euo
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (euo *EducationUpdateOne) SetNillableIsCurrent(b *bool) *EducationUpdateOne {
	if b != nil {
		euo.SetIsCurrent(*b)
	}
	return euo
}

// SetDescription sets the "description" field.
func (euo *EducationUpdateOne) SetDescription(s string) *EducationUpdateOne {
	euo.mutation.SetDescription(s)
	return euo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (euo *EducationUpdateOne) SetNillableDescription(s *string) *EducationUpdateOne {
	if s != nil {
		euo.SetDescription(*s)
	}
	return euo
}

// ClearDescription clears the value of the "description" field.
func (euo *EducationUpdateOne) ClearDescription() *EducationUpdateOne {
	euo.mutation.ClearDescription()
	return euo
}

// SetGrade sets the "grade" field.
func (euo *EducationUpdateOne) SetGrade(s string) *EducationUpdateOne {
	euo.mutation.SetGrade(s)
	return euo
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (euo *EducationUpdateOne) SetNillableGrade(s *string) *EducationUpdateOne {
	if s != nil {
		euo.SetGrade(*s)
	}
	return euo
}

// ClearGrade clears the value of the "grade" field.
func (euo *EducationUpdateOne) ClearGrade() *EducationUpdateOne {
	euo.mutation.ClearGrade()
	return euo
}

// SetUpdatedAt sets the "updated_at" field.
func (euo *EducationUpdateOne) SetUpdatedAt(t time.Time) *EducationUpdateOne {
	euo.mutation.SetUpdatedAt(t)
	return euo
}

// Mutation returns the EducationMutation object of the builder.
func (euo *EducationUpdateOne) Mutation() *EducationMutation {
	return euo.mutation
}

// Where appends a list predicates to the EducationUpdate builder.
func (euo *EducationUpdateOne) Where(ps ...predicate.Education) *EducationUpdateOne {
	euo.mutation.Where(ps...)
	return euo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (euo *EducationUpdateOne) Select(field string, fields ...string) *EducationUpdateOne {
	euo.fields = append([]string{field}, fields...)
	return euo
}

// Save executes the query and returns the updated Education entity.
func (euo *EducationUpdateOne) Save(ctx context.Context) (*Education, error) {
	euo.defaults()
	return withHooks(ctx, euo.sqlSave, euo.mutation, euo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (euo *EducationUpdateOne) SaveX(ctx context.Context) *Education {
	node, err := euo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (euo *EducationUpdateOne) Exec(ctx context.Context) error {
	_, err := euo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (euo *EducationUpdateOne) ExecX(ctx context.Context) {
	if err := euo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (euo *EducationUpdateOne) defaults() {
	if _, ok := euo.mutation.UpdatedAt(); !ok {
		v := education.UpdateDefaultUpdatedAt()
		euo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (euo *EducationUpdateOne) check() error {
	if v, ok := euo.mutation.Degree(); ok {
		if err := education.DegreeValidator(v); err != nil {
			return &ValidationError{Name: "degree", err: fmt.Errorf(`ent: validator failed for field "Education.degree": %w`, err)}
		}
	}
	if v, ok := euo.mutation.FieldOfStudy(); ok {
		if err := education.FieldOfStudyValidator(v); err != nil {
			return &ValidationError{Name: "field_of_study", err: fmt.Errorf(`ent: validator failed for field "Education.field_of_study": %w`, err)}
		}
	}
	if v, ok := euo.mutation.Institution(); ok {
		if err := education.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "Education.institution": %w`, err)}
		}
	}
	if v, ok := euo.mutation.Location(); ok {
		if err := education.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Education.location": %w`, err)}
		}
	}
	if v, ok := euo.mutation.Grade(); ok {
		if err := education.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Education.grade": %w`, err)}
		}
	}
	return nil
}

func (euo *EducationUpdateOne) sqlSave(ctx context.Context) (_node *Education, err error) {
	if err := euo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(education.Table, education.Columns, sqlgraph.NewFieldSpec(education.FieldID, field.TypeString))
	id, ok := euo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Education.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := euo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, education.FieldID)
		for _, f := range fields {
			if !education.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != education.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := euo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := euo.mutation.Degree(); ok {
		_spec.SetField(education.FieldDegree, field.TypeEnum, value)
	}
	if value, ok := euo.mutation.FieldOfStudy(); ok {
		_spec.SetField(education.FieldFieldOfStudy, field.TypeString, value)
	}
	if value, ok := euo.mutation.Institution(); ok {
		_spec.SetField(education.FieldInstitution, field.TypeString, value)
	}
	if value, ok := euo.mutation.Location(); ok {
		_spec.SetField(education.FieldLocation, field.TypeString, value)
	}
	if euo.mutation.LocationCleared() {
		_spec.ClearField(education.FieldLocation, field.TypeString)
	}
	if value, ok := euo.mutation.StartDate(); ok {
		_spec.SetField(education.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := euo.mutation.EndDate(); ok {
		_spec.SetField(education.FieldEndDate, field.TypeTime, value)
	}
	if euo.mutation.EndDateCleared() {
		_spec.ClearField(education.FieldEndDate, field.TypeTime)
	}
	if value, ok := euo.mutation.IsCurrent(); ok {
		_spec.SetField(education.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := euo.mutation.Description(); ok {
		_spec.SetField(education.FieldDescription, field.TypeString, value)
	}
	if euo.mutation.DescriptionCleared() {
		_spec.ClearField(education.FieldDescription, field.TypeString)
	}
	if value, ok := euo.mutation.Grade(); ok {
		_spec.SetField(education.FieldGrade, field.TypeString, value)
	}
	if euo.mutation.GradeCleared() {
		_spec.ClearField(education.FieldGrade, field.TypeString)
	}
	if value, ok := euo.mutation.UpdatedAt(); ok {
		_spec.SetField(education.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Education{config: euo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, euo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{education.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	euo.mutation.done = true
	return _node, nil
}
