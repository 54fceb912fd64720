// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/skill"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SkillUpdate is the builder for updating Skill entities.
type SkillUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (su *SkillUpdate) Where(ps ...predicate.Skill) *SkillUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetName sets the "name" field.
func (su *SkillUpdate) SetName(s string) *SkillUpdate {
	su.mutation.SetName(s)
	return su
}

// SetNillableName sets the "name" field if the given value is not nil.
func (su *SkillUpdate) SetNillableName(s *string) *SkillUpdate {
	if s != nil {
		su.SetName(*s)
	}
	return su
}

// SetCategory sets the "category" field.
func (su *SkillUpdate) SetCategory(s skill.Category) *SkillUpdate {
	su.mutation.SetCategory(s)
	return su
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (su *SkillUpdate) SetNillableCategory(s *skill.Category) *SkillUpdate {
	if s != nil {
		su.SetCategory(*s)
	}
	return su
}

// SetProficiency sets the "proficiency" field.
func (su *SkillUpdate) SetProficiency(s skill.Proficiency) *SkillUpdate {
	su.mutation.SetProficiency(s)
	return su
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (su *SkillUpdate) SetNillableProficiency(s *skill.Proficiency) *SkillUpdate {
	if s != nil {
		su.SetProficiency(*s)
	}
	return su
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (su *SkillUpdate) SetYearsOfExperience(i int) *SkillUpdate {
	su.mutation.ResetYearsOfExperience()
	su.mutation.SetYearsOfExperience(i)
	return su
}

// SetNillableYearsOfExperience sets the "years_of_experience" field if the given value is not nil.
func (su *SkillUpdate) SetNillableYearsOfExperience(i *int) *SkillUpdate {
	if i != nil {
		su.SetYearsOfExperience(*i)
	}
	return su
}

// AddYearsOfExperience adds i to the "years_of_experience" field.
func (su *SkillUpdate) AddYearsOfExperience(i int) *SkillUpdate {
	su.mutation.AddYearsOfExperience(i)
	return su
}

// SetIsFeatured sets the "is_featured" field.
func (su *SkillUpdate) SetIsFeatured(b bool) *SkillUpdate {
	su.mutation.SetIsFeatured(b)
	return su
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (su *SkillUpdate) SetNillableIsFeatured(b *bool) *SkillUpdate {
	if b != nil {
		su.SetIsFeatured(*b)
	}
	return su
}

// SetUpdatedAt sets the "updated_at" field.
func (su *SkillUpdate) SetUpdatedAt(t time.Time) *SkillUpdate {
	su.mutation.SetUpdatedAt(t)
	return su
}

// Mutation returns the SkillMutation object of the builder.
func (su *SkillUpdate) Mutation() *SkillMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SkillUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SkillUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SkillUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SkillUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *SkillUpdate) defaults() {
	if _, ok := su.mutation.UpdatedAt(); !ok {
		v := skill.UpdateDefaultUpdatedAt()
		su.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *SkillUpdate) check() error {
	if v, ok := su.mutation.Name(); ok {
		if err := skill.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Skill.name": %w`, err)}
		}
	}
	if v, ok := su.mutation.Category(); ok {
		if err := skill.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Skill.category": %w`, err)}
		}
	}
	if v, ok := su.mutation.Proficiency(); ok {
		if err := skill.ProficiencyValidator(v); err != nil {
			return &ValidationError{Name: "proficiency", err: fmt.Errorf(`ent: validator failed for field "Skill.proficiency": %w`, err)}
		}
	}
	if v, ok := su.mutation.YearsOfExperience(); ok {
		if err := skill.YearsOfExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_of_experience", err: fmt.Errorf(`ent: validator failed for field "Skill.years_of_experience": %w`, err)}
		}
	}
	return nil
}

func (su *SkillUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.Name(); ok {
		_spec.SetField(skill.FieldName, field.TypeString, value)
	}
	if value, ok := su.mutation.Category(); ok {
		_spec.SetField(skill.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := su.mutation.Proficiency(); ok {
		_spec.SetField(skill.FieldProficiency, field.TypeEnum, value)
	}
	if value, ok := su.mutation.YearsOfExperience(); ok {
		_spec.SetField(skill.FieldYearsOfExperience, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedYearsOfExperience(); ok {
		_spec.AddField(skill.FieldYearsOfExperience, field.TypeInt, value)
	}
	if value, ok := su.mutation.IsFeatured(); ok {
		_spec.SetField(skill.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := su.mutation.UpdatedAt(); ok {
		_spec.SetField(skill.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SkillUpdateOne is the builder for updating a single Skill entity.
type SkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMutation
}

// SetName sets the "name" field.
func (suo *SkillUpdateOne) SetName(s string) *SkillUpdateOne {
	suo.mutation.SetName(s)
	return suo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (suo *SkillUpdateOne) SetNillableName(s *string) *SkillUpdateOne {
	if s != nil {
		suo.SetName(*s)
	}
	return suo
}

// SetCategory sets the "category" field.
func (suo *SkillUpdateOne) SetCategory(s skill.Category) *SkillUpdateOne {
	suo.mutation.SetCategory(s)
	return suo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (suo *SkillUpdateOne) SetNillableCategory(s *skill.Category) *SkillUpdateOne {
	if s != nil {
		suo.SetCategory(*s)
	}
	return suo
}

// SetProficiency sets the "proficiency" field.
func (suo *SkillUpdateOne) SetProficiency(s skill.Proficiency) *SkillUpdateOne {
	suo.mutation.SetProficiency(s)
	return suo
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (suo *SkillUpdateOne) SetNillableProficiency(s *skill.Proficiency) *SkillUpdateOne {
	if s != nil {
		suo.SetProficiency(*s)
	}
	return suo
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (suo *SkillUpdateOne) SetYearsOfExperience(i int) *SkillUpdateOne {
	suo.mutation.ResetYearsOfExperience()
	suo.mutation.SetYearsOfExperience(i)
	return suo
}

// SetNillableYearsOfExperience sets the "years_of_experience" field if the given value is not nil.
func (suo *SkillUpdateOne) SetNillableYearsOfExperience(i *int) *SkillUpdateOne {
	if i != nil {
		suo.SetYearsOfExperience(*i)
	}
	return suo
}

// AddYearsOfExperience adds i to the "years_of_experience" field.
func (suo *SkillUpdateOne) AddYearsOfExperience(i int) *SkillUpdateOne {
	suo.mutation.AddYearsOfExperience(i)
	return suo
}

// SetIsFeatured sets the "is_featured" field.
func (suo *SkillUpdateOne) SetIsFeatured(b bool) *SkillUpdateOne {
	suo.mutation.SetIsFeatured(b)
	return suo
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (suo *SkillUpdateOne) SetNillableIsFeatured(b *bool) *SkillUpdateOne {
	if b != nil {
		suo.SetIsFeatured(*b)
	}
	return suo
}

// SetUpdatedAt sets the "updated_at" field.
func (suo *SkillUpdateOne) SetUpdatedAt(t time.Time) *SkillUpdateOne {
	suo.mutation.SetUpdatedAt(t)
	return suo
}

// Mutation returns the SkillMutation object of the builder.
func (suo *SkillUpdateOne) Mutation() *SkillMutation {
	return suo.mutation
}

// Where appends a list predicates to the SkillUpdate builder.
func (suo *SkillUpdateOne) Where(ps ...predicate.Skill) *SkillUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SkillUpdateOne) Select(field string, fields ...string) *SkillUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Skill entity.
func (suo *SkillUpdateOne) Save(ctx context.Context) (*Skill, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SkillUpdateOne) SaveX(ctx context.Context) *Skill {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SkillUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SkillUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *SkillUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdatedAt(); !ok {
		v := skill.UpdateDefaultUpdatedAt()
		suo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *SkillUpdateOne) check() error {
	if v, ok := suo.mutation.Name(); ok {
		if err := skill.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Skill.name": %w`, err)}
		}
	}
	if v, ok := suo.mutation.Category(); ok {
		if err := skill.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Skill.category": %w`, err)}
		}
	}
	if v, ok := suo.mutation.Proficiency(); ok {
		if err := skill.ProficiencyValidator(v); err != nil {
			return &ValidationError{Name: "proficiency", err: fmt.Errorf(`ent: validator failed for field "Skill.proficiency": %w`, err)}
		}
	}
	if v, ok := suo.mutation.YearsOfExperience(); ok {
		if err := skill.YearsOfExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_of_experience", err: fmt.Errorf(`ent: validator failed for field "Skill.years_of_experience": %w`, err)}
		}
	}
	return nil
}

func (suo *SkillUpdateOne) sqlSave(ctx context.Context) (_node *Skill, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skill.Table, skill.Columns, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Skill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skill.FieldID)
		for _, f := range fields {
			if !skill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skill.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.Name(); ok {
		_spec.SetField(skill.FieldName, field.TypeString, value)
	}
	if value, ok := suo.mutation.Category(); ok {
		_spec.SetField(skill.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := suo.mutation.Proficiency(); ok {
		_spec.SetField(skill.FieldProficiency, field.TypeEnum, value)
	}
	if value, ok := suo.mutation.YearsOfExperience(); ok {
		_spec.SetField(skill.FieldYearsOfExperience, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedYearsOfExperience(); ok {
		_spec.AddField(skill.FieldYearsOfExperience, field.TypeInt, value)
	}
	if value, ok := suo.mutation.IsFeatured(); ok {
		_spec.SetField(skill.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := suo.mutation.UpdatedAt(); ok {
		_spec.SetField(skill.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Skill{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
