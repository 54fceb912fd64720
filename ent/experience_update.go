// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/experience"
	"portfolio-go-backend/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ExperienceUpdate is the builder for updating Experience entities.
type ExperienceUpdate struct {
	config
	hooks    []Hook
	mutation *ExperienceMutation
}

// Where appends a list predicates to the ExperienceUpdate builder.
func (eu *ExperienceUpdate) Where(ps ...predicate.Experience) *ExperienceUpdate {
	eu.mutation.Where(ps...)
	return eu
}

// SetTitle sets the "title" field.
func (eu *ExperienceUpdate) SetTitle(s string) *ExperienceUpdate {
	eu.mutation.SetTitle(s)
	return eu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableTitle(s *string) *ExperienceUpdate {
	if s != nil {
		eu.SetTitle(*s)
	}
	return eu
}

// SetCompany sets the "company" field.
func (eu *ExperienceUpdate) SetCompany(s string) *ExperienceUpdate {
	eu.mutation.SetCompany(s)
	return eu
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableCompany(s *string) *ExperienceUpdate {
	if s != nil {
		eu.SetCompany(*s)
	}
	return eu
}

// SetLocation sets the "location" field.
func (eu *ExperienceUpdate) SetLocation(s string) *ExperienceUpdate {
	eu.mutation.SetLocation(s)
	return eu
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableLocation(s *string) *ExperienceUpdate {
	if s != nil {
		eu.SetLocation(*s)
	}
	return eu
}

// ClearLocation clears the value of the "location" field.
func (eu *ExperienceUpdate) ClearLocation() *ExperienceUpdate {
	eu.mutation.ClearLocation()
	return eu
}

// SetJobType sets the "job_type" field.
func (eu *ExperienceUpdate) SetJobType(et experience.JobType) *ExperienceUpdate {
	eu.mutation.SetJobType(et)
	return eu
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableJobType(et *experience.JobType) *ExperienceUpdate {
	if et != nil {
		eu.SetJobType(*et)
	}
	return eu
}

// SetStartDate sets the "start_date" field.
func (eu *ExperienceUpdate) SetStartDate(t time.Time) *ExperienceUpdate {
	eu.mutation.SetStartDate(t)
	return eu
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableStartDate(t *time.Time) *ExperienceUpdate {
	if t != nil {
		eu.SetStartDate(*t)
	}
	return eu
}

// SetEndDate sets the "end_date" field.
func (eu *ExperienceUpdate) SetEndDate(t time.Time) *ExperienceUpdate {
	eu.mutation.SetEndDate(t)
	return eu
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableEndDate(t *time.Time) *ExperienceUpdate {
	if t != nil {
		eu.SetEndDate(*t)
	}
	return eu
}

// ClearEndDate clears the value of the "end_date" field.
func (eu *ExperienceUpdate) ClearEndDate() *ExperienceUpdate {
	eu.mutation.ClearEndDate()
	return eu
}

// SetIsCurrent sets the "is_current" field.
func (eu *ExperienceUpdate) SetIsCurrent(b bool) *ExperienceUpdate {
	eu.mutation.SetIsCurrent(b)
	return eu
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableIsCurrent(b *bool) *ExperienceUpdate {
	if b != nil {
		eu.SetIsCurrent(*b)
	}
	return eu
}

// SetDescription sets the "description" field.
func (eu *ExperienceUpdate) SetDescription(s string) *ExperienceUpdate {
	eu.mutation.SetDescription(s)
	return eu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableDescription(s *string) *ExperienceUpdate {
	if s != nil {
		eu.SetDescription(*s)
	}
	return eu
}

// SetAchievements sets the "achievements" field.
func (eu *ExperienceUpdate) SetAchievements(s string) *ExperienceUpdate {
	eu.mutation.SetAchievements(s)
	return eu
}

// SetNillableAchievements sets the "achievements" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableAchievements(s *string) *ExperienceUpdate {
	if s != nil {
		eu.SetAchievements(*s)
	}
	return eu
}

// ClearAchievements clears the value of the "achievements" field.
func (eu *ExperienceUpdate) ClearAchievements() *ExperienceUpdate {
	eu.mutation.ClearAchievements()
	return eu
}

// SetTechnologies sets the "technologies" field.
func (eu *ExperienceUpdate) SetTechnologies(s string) *ExperienceUpdate {
	eu.mutation.SetTechnologies(s)
	return eu
}

// SetNillableTechnologies sets the "technologies" field if the given value is not nil.
func (eu *ExperienceUpdate) SetNillableTechnologies(s *string) *ExperienceUpdate {
	if s != nil {
		eu.SetTechnologies(*s)
	}
	return eu
}

// ClearTechnologies clears the value of the "technologies" field.
func (eu *ExperienceUpdate) ClearTechnologies() *ExperienceUpdate {
	eu.mutation.ClearTechnologies()
	return eu
}

// SetUpdatedAt sets the "updated_at" field.
func (eu *ExperienceUpdate) SetUpdatedAt(t time.Time) *ExperienceUpdate {
	eu.mutation.SetUpdatedAt(t)
	return eu
}

// Mutation returns the ExperienceMutation object of the builder.
func (eu *ExperienceUpdate) Mutation() *ExperienceMutation {
	return eu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (eu *ExperienceUpdate) Save(ctx context.Context) (int, error) {
	eu.defaults()
	return withHooks(ctx, eu.sqlSave, eu.mutation, eu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eu *ExperienceUpdate) SaveX(ctx context.Context) int {
	affected, err := eu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (eu *ExperienceUpdate) Exec(ctx context.Context) error {
	_, err := eu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eu *ExperienceUpdate) ExecX(ctx context.Context) {
	if err := eu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (eu *ExperienceUpdate) defaults() {
	if _, ok := eu.mutation.UpdatedAt(); !ok {
		v := experience.UpdateDefaultUpdatedAt()
		eu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eu *ExperienceUpdate) check() error {
	if v, ok := eu.mutation.Title(); ok {
		if err := experience.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Experience.title": %w`, err)}
		}
	}
	if v, ok := eu.mutation.Company(); ok {
		if err := experience.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "Experience.company": %w`, err)}
		}
	}
	if v, ok := eu.mutation.Location(); ok {
		if err := experience.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Experience.location": %w`, err)}
		}
	}
	if v, ok := eu.mutation.JobType(); ok {
		if err := experience.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Experience.job_type": %w`, err)}
		}
	}
	if v, ok := eu.mutation.Technologies(); ok {
		if err := experience.TechnologiesValidator(v); err != nil {
			return &ValidationError{Name: "technologies", err: fmt.Errorf(`ent: validator failed for field "Experience.technologies": %w`, err)}
		}
	}
	return nil
}

func (eu *ExperienceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := eu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(experience.Table, experience.Columns, sqlgraph.NewFieldSpec(experience.FieldID, field.TypeString))
	if ps := eu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eu.mutation.Title(); ok {
		_spec.SetField(experience.FieldTitle, field.TypeString, value)
	}
	if value, ok := eu.mutation.Company(); ok {
		_spec.SetField(experience.FieldCompany, field.TypeString, value)
	}
	if value, ok := eu.mutation.Location(); ok {
		_spec.SetField(experience.FieldLocation, field.TypeString, value)
	}
	if eu.mutation.LocationCleared() {
		_spec.ClearField(experience.FieldLocation, field.TypeString)
	}
	if value, ok := eu.mutation.JobType(); ok {
		_spec.SetField(experience.FieldJobType, field.TypeEnum, value)
	}
	if value, ok := eu.mutation.StartDate(); ok {
		_spec.SetField(experience.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := eu.mutation.EndDate(); ok {
		_spec.SetField(experience.FieldEndDate, field.TypeTime, value)
	}
	if eu.mutation.EndDateCleared() {
		_spec.ClearField(experience.FieldEndDate, field.TypeTime)
	}
	if value, ok := eu.mutation.IsCurrent(); ok {
		_spec.SetField(experience.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := eu.mutation.Description(); ok {
		_spec.SetField(experience.FieldDescription, field.TypeString, value)
	}
	if value, ok := eu.mutation.Achievements(); ok {
		_spec.SetField(experience.FieldAchievements, field.TypeString, value)
	}
	if eu.mutation.AchievementsCleared() {
		_spec.ClearField(experience.FieldAchievements, field.TypeString)
	}
	if value, ok := eu.mutation.Technologies(); ok {
		_spec.SetField(experience.FieldTechnologies, field.TypeString, value)
	}
	if eu.mutation.TechnologiesCleared() {
		_spec.ClearField(experience.FieldTechnologies, field.TypeString)
	}
	if value, ok := eu.mutation.UpdatedAt(); ok {
		_spec.SetField(experience.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, eu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experience.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	eu.mutation.done = true
	return n, nil
}

// ExperienceUpdateOne is the builder for updating a single Experience entity.
type ExperienceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExperienceMutation
}

// SetTitle sets the "title" field.
func (euo *ExperienceUpdateOne) SetTitle(s string) *ExperienceUpdateOne {
	euo.mutation.SetTitle(s)
	return euo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableTitle(s *string) *ExperienceUpdateOne {
	if s != nil {
		euo.SetTitle(*s)
	}
	return euo
}

// SetCompany sets the "company" field.
func (euo *ExperienceUpdateOne) SetCompany(s string) *ExperienceUpdateOne {
	euo.mutation.SetCompany(s)
	return euo
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableCompany(s *string) *ExperienceUpdateOne {
	if s != nil {
		euo.SetCompany(*s)
	}
	return euo
}

// SetLocation sets the "location" field.
func (euo *ExperienceUpdateOne) SetLocation(s string) *ExperienceUpdateOne {
	euo.mutation.SetLocation(s)
	return euo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableLocation(s *string) *ExperienceUpdateOne {
	if s != nil {
		euo.SetLocation(*s)
	}
	return euo
}

// ClearLocation clears the value of the "location" field.
func (euo *ExperienceUpdateOne) ClearLocation() *ExperienceUpdateOne {
	euo.mutation.ClearLocation()
	return euo
}

// SetJobType sets the "job_type" field.
func (euo *ExperienceUpdateOne) SetJobType(et experience.JobType) *ExperienceUpdateOne {
	euo.mutation.SetJobType(et)
	return euo
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableJobType(et *experience.JobType) *ExperienceUpdateOne {
	if et != nil {
		euo.SetJobType(*et)
	}
	return euo
}

// SetStartDate sets the "start_date" field.
func (euo *ExperienceUpdateOne) SetStartDate(t time.Time) *ExperienceUpdateOne {
	euo.mutation.SetStartDate(t)
	return euo
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableStartDate(t *time.Time) *ExperienceUpdateOne {
	if t != nil {
		euo.SetStartDate(*t)
	}
	return euo
}

// SetEndDate sets the "end_date" field.
func (euo *ExperienceUpdateOne) SetEndDate(t time.Time) *ExperienceUpdateOne {
	euo.mutation.SetEndDate(t)
	return euo
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableEndDate(t *time.Time) *ExperienceUpdateOne {
	if t != nil {
		euo.SetEndDate(*t)
	}
	return euo
}

// ClearEndDate clears the value of the "end_date" field.
func (euo *ExperienceUpdateOne) ClearEndDate() *ExperienceUpdateOne {
	euo.mutation.ClearEndDate()
	return euo
}

// SetIsCurrent sets the "is_current" field.
func (euo *ExperienceUpdateOne) SetIsCurrent(b bool) *ExperienceUpdateOne {
	euo.mutation.SetIsCurrent(b)
	return euo
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableIsCurrent(b *bool) *ExperienceUpdateOne {
	if b != nil {
		euo.SetIsCurrent(*b)
	}
	return euo
}

// SetDescription sets the "description" field.
func (euo *ExperienceUpdateOne) SetDescription(s string) *ExperienceUpdateOne {
	euo.mutation.SetDescription(s)
	return euo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableDescription(s *string) *ExperienceUpdateOne {
	if s != nil {
		euo.SetDescription(*s)
	}
	return euo
}

// SetAchievements sets the "achievements" field.
func (euo *ExperienceUpdateOne) SetAchievements(s string) *ExperienceUpdateOne {
	euo.mutation.SetAchievements(s)
	return euo
}

// SetNillableAchievements sets the "achievements" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableAchievements(s *string) *ExperienceUpdateOne {
	if s != nil {
		euo.SetAchievements(*s)
	}
	return euo
}

// ClearAchievements clears the value of the "achievements" field.
func (euo *ExperienceUpdateOne) ClearAchievements() *ExperienceUpdateOne {
	euo.mutation.ClearAchievements()
	return euo
}

// SetTechnologies sets the "technologies" field.
func (euo *ExperienceUpdateOne) SetTechnologies(s string) *ExperienceUpdateOne {
	euo.mutation.SetTechnologies(s)
	return euo
}

// SetNillableTechnologies sets the "technologies" field if the given value is not nil.
func (euo *ExperienceUpdateOne) SetNillableTechnologies(s *string) *ExperienceUpdateOne {
	if s != nil {
		euo.SetTechnologies(*s)
	}
	return euo
}

// ClearTechnologies clears the value of the "technologies" field.
func (euo *ExperienceUpdateOne) ClearTechnologies() *ExperienceUpdateOne {
	euo.mutation.ClearTechnologies()
	return euo
}

// SetUpdatedAt sets the "updated_at" field.
func (euo *ExperienceUpdateOne) SetUpdatedAt(t time.Time) *ExperienceUpdateOne {
	euo.mutation.SetUpdatedAt(t)
	return euo
}

// Mutation returns the ExperienceMutation object of the builder.
func (euo *ExperienceUpdateOne) Mutation() *ExperienceMutation {
	return euo.mutation
}

// Where appends a list predicates to the ExperienceUpdate builder.
func (euo *ExperienceUpdateOne) Where(ps ...predicate.Experience) *ExperienceUpdateOne {
	euo.mutation.Where(ps...)
	return euo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (euo *ExperienceUpdateOne) Select(field string, fields ...string) *ExperienceUpdateOne {
	euo.fields = append([]string{field}, fields...)
	return euo
}

// Save executes the query and returns the updated Experience entity.
func (euo *ExperienceUpdateOne) Save(ctx context.Context) (*Experience, error) {
	euo.defaults()
	return withHooks(ctx, euo.sqlSave, euo.mutation, euo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (euo *ExperienceUpdateOne) SaveX(ctx context.Context) *Experience {
	node, err := euo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (euo *ExperienceUpdateOne) Exec(ctx context.Context) error {
	_, err := euo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (euo *ExperienceUpdateOne) ExecX(ctx context.Context) {
	if err := euo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (euo *ExperienceUpdateOne) defaults() {
	if _, ok := euo.mutation.UpdatedAt(); !ok {
		v := experience.UpdateDefaultUpdatedAt()
		euo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (euo *ExperienceUpdateOne) check() error {
	if v, ok := euo.mutation.Title(); ok {
		if err := experience.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Experience.title": %w`, err)}
		}
	}
	if v, ok := euo.mutation.Company(); ok {
		if err := experience.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "Experience.company": %w`, err)}
		}
	}
	if v, ok := euo.mutation.Location(); ok {
		if err := experience.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Experience.location": %w`, err)}
		}
	}
	if v, ok := euo.mutation.JobType(); ok {
		if err := experience.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Experience.job_type": %w`, err)}
		}
	}
	if v, ok := euo.mutation.Technologies(); ok {
		if err := experience.TechnologiesValidator(v); err != nil {
			return &ValidationError{Name: "technologies", err: fmt.Errorf(`ent: validator failed for field "Experience.technologies": %w`, err)}
		}
	}
	return nil
}

func (euo *ExperienceUpdateOne) sqlSave(ctx context.Context) (_node *Experience, err error) {
	if err := euo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experience.Table, experience.Columns, sqlgraph.NewFieldSpec(experience.FieldID, field.TypeString))
	id, ok := euo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Experience.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := euo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experience.FieldID)
		for _, f := range fields {
			if !experience.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != experience.FieldID {
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
	if value, ok := euo.mutation.Title(); ok {
		_spec.SetField(experience.FieldTitle, field.TypeString, value)
	}
	if value, ok := euo.mutation.Company(); ok {
		_spec.SetField(experience.FieldCompany, field.TypeString, value)
	}
	if value, ok := euo.mutation.Location(); ok {
		_spec.SetField(experience.FieldLocation, field.TypeString, value)
	}
	if euo.mutation.LocationCleared() {
		_spec.ClearField(experience.FieldLocation, field.TypeString)
	}
	if value, ok := euo.mutation.JobType(); ok {
		_spec.SetField(experience.FieldJobType, field.TypeEnum, value)
	}
	if value, ok := euo.mutation.StartDate(); ok {
		_spec.SetField(experience.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := euo.mutation.EndDate(); ok {
		_spec.SetField(experience.FieldEndDate, field.TypeTime, value)
	}
	if euo.mutation.EndDateCleared() {
		_spec.ClearField(experience.FieldEndDate, field.TypeTime)
	}
	if value, ok := euo.mutation.IsCurrent(); ok {
		_spec.SetField(experience.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := euo.mutation.Description(); ok {
		_spec.SetField(experience.FieldDescription, field.TypeString, value)
	}
	if value, ok := euo.mutation.Achievements(); ok {
		_spec.SetField(experience.FieldAchievements, field.TypeString, value)
	}
	if euo.mutation.AchievementsCleared() {
		_spec.ClearField(experience.FieldAchievements, field.TypeString)
	}
	if value, ok := euo.mutation.Technologies(); ok {
		_spec.SetField(experience.FieldTechnologies, field.TypeString, value)
	}
	if euo.mutation.TechnologiesCleared() {
		_spec.ClearField(experience.FieldTechnologies, field.TypeString)
	}
	if value, ok := euo.mutation.UpdatedAt(); ok {
		_spec.SetField(experience.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Experience{config: euo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, euo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experience.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	euo.mutation.done = true
	return _node, nil
}
