// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/ent/skill"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SkillCreate is the builder for creating a Skill entity.
type SkillCreate struct {
	config
	mutation *SkillMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (sc *SkillCreate) SetName(s string) *SkillCreate {
	sc.mutation.SetName(s)
	return sc
}

// SetCategory sets the "category" field.
func (sc *SkillCreate) SetCategory(s skill.Category) *SkillCreate {
	sc.mutation.SetCategory(s)
	return sc
}

// SetProficiency sets the "proficiency" field.
func (sc *SkillCreate) SetProficiency(s skill.Proficiency) *SkillCreate {
	sc.mutation.SetProficiency(s)
	return sc
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (sc *SkillCreate) SetYearsOfExperience(i int) *SkillCreate {
	sc.mutation.SetYearsOfExperience(i)
	return sc
}

// SetNillableYearsOfExperience sets the "years_of_experience" field if the given value is not nil.
func (sc *SkillCreate) SetNillableYearsOfExperience(i *int) *SkillCreate {
	if i != nil {
		sc.SetYearsOfExperience(*i)
	}
	return sc
}

// SetIsFeatured sets the "is_featured" field.
func (sc *SkillCreate) SetIsFeatured(b bool) *SkillCreate {
	sc.mutation.SetIsFeatured(b)
	return sc
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (sc *SkillCreate) SetNillableIsFeatured(b *bool) *SkillCreate {
	if b != nil {
		sc.SetIsFeatured(*b)
	}
	return sc
}

// SetCreatedAt sets the "created_at" field.
func (sc *SkillCreate) SetCreatedAt(t time.Time) *SkillCreate {
	sc.mutation.SetCreatedAt(t)
	return sc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sc *SkillCreate) SetNillableCreatedAt(t *time.Time) *SkillCreate {
	if t != nil {
		sc.SetCreatedAt(*t)
	}
	return sc
}

// SetUpdatedAt sets the "updated_at" field.
func (sc *SkillCreate) SetUpdatedAt(t time.Time) *SkillCreate {
	sc.mutation.SetUpdatedAt(t)
	return sc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sc *SkillCreate) SetNillableUpdatedAt(t *time.Time) *SkillCreate {
	if t != nil {
		sc.SetUpdatedAt(*t)
	}
	return sc
}

// SetID sets the "id" field.
func (sc *SkillCreate) SetID(u ulid.ID) *SkillCreate {
	sc.mutation.SetID(u)
	return sc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (sc *SkillCreate) SetNillableID(u *ulid.ID) *SkillCreate {
	if u != nil {
		sc.SetID(*u)
	}
	return sc
}

// Mutation returns the SkillMutation object of the builder.
func (sc *SkillCreate) Mutation() *SkillMutation {
	return sc.mutation
}

// Save creates the Skill in the database.
func (sc *SkillCreate) Save(ctx context.Context) (*Skill, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SkillCreate) SaveX(ctx context.Context) *Skill {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SkillCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SkillCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *SkillCreate) defaults() {
	if _, ok := sc.mutation.YearsOfExperience(); !ok {
		v := skill.DefaultYearsOfExperience
		sc.mutation.SetYearsOfExperience(v)
	}
	if _, ok := sc.mutation.IsFeatured(); !ok {
		v := skill.DefaultIsFeatured
		sc.mutation.SetIsFeatured(v)
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		v := skill.DefaultCreatedAt()
		sc.mutation.SetCreatedAt(v)
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		v := skill.DefaultUpdatedAt()
		sc.mutation.SetUpdatedAt(v)
	}
	if _, ok := sc.mutation.ID(); !ok {
		v := skill.DefaultID()
		sc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SkillCreate) check() error {
	if _, ok := sc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Skill.name"`)}
	}
	if v, ok := sc.mutation.Name(); ok {
		if err := skill.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Skill.name": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Skill.category"`)}
	}
	if v, ok := sc.mutation.Category(); ok {
		if err := skill.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Skill.category": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Proficiency(); !ok {
		return &ValidationError{Name: "proficiency", err: errors.New(`ent: missing required field "Skill.proficiency"`)}
	}
	if v, ok := sc.mutation.Proficiency(); ok {
		if err := skill.ProficiencyValidator(v); err != nil {
			return &ValidationError{Name: "proficiency", err: fmt.Errorf(`ent: validator failed for field "Skill.proficiency": %w`, err)}
		}
	}
	if _, ok := sc.mutation.YearsOfExperience(); !ok {
		return &ValidationError{Name: "years_of_experience", err: errors.New(`ent: missing required field "Skill.years_of_experience"`)}
	}
	if v, ok := sc.mutation.YearsOfExperience(); ok {
		if err := skill.YearsOfExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_of_experience", err: fmt.Errorf(`ent: validator failed for field "Skill.years_of_experience": %w`, err)}
		}
	}
	if _, ok := sc.mutation.IsFeatured(); !ok {
		return &ValidationError{Name: "is_featured", err: errors.New(`ent: missing required field "Skill.is_featured"`)}
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Skill.created_at"`)}
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Skill.updated_at"`)}
	}
	return nil
}

func (sc *SkillCreate) sqlSave(ctx context.Context) (*Skill, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(ulid.ID); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Skill.ID type: %T", _spec.ID.Value)
		}
	}
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SkillCreate) createSpec() (*Skill, *sqlgraph.CreateSpec) {
	var (
		_node = &Skill{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(skill.Table, sqlgraph.NewFieldSpec(skill.FieldID, field.TypeString))
	)
	_spec.OnConflict = sc.conflict
	if id, ok := sc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := sc.mutation.Name(); ok {
		_spec.SetField(skill.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := sc.mutation.Category(); ok {
		_spec.SetField(skill.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := sc.mutation.Proficiency(); ok {
		_spec.SetField(skill.FieldProficiency, field.TypeEnum, value)
		_node.Proficiency = value
	}
	if value, ok := sc.mutation.YearsOfExperience(); ok {
		_spec.SetField(skill.FieldYearsOfExperience, field.TypeInt, value)
		_node.YearsOfExperience = value
	}
	if value, ok := sc.mutation.IsFeatured(); ok {
		_spec.SetField(skill.FieldIsFeatured, field.TypeBool, value)
		_node.IsFeatured = value
	}
	if value, ok := sc.mutation.CreatedAt(); ok {
		_spec.SetField(skill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := sc.mutation.UpdatedAt(); ok {
		_spec.SetField(skill.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Skill.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (sc *SkillCreate) OnConflict(opts ...sql.ConflictOption) *SkillUpsertOne {
	sc.conflict = opts
	return &SkillUpsertOne{
		create: sc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sc *SkillCreate) OnConflictColumns(columns ...string) *SkillUpsertOne {
	sc.conflict = append(sc.conflict, sql.ConflictColumns(columns...))
	return &SkillUpsertOne{
		create: sc,
	}
}

type (
	// SkillUpsertOne is the builder for "upsert"-ing
	//  one Skill node.
	SkillUpsertOne struct {
		create *SkillCreate
	}

	// SkillUpsert is the "OnConflict" setter.
	SkillUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *SkillUpsert) SetName(v string) *SkillUpsert {
	u.Set(skill.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SkillUpsert) UpdateName() *SkillUpsert {
	u.SetExcluded(skill.FieldName)
	return u
}

// SetCategory sets the "category" field.
func (u *SkillUpsert) SetCategory(v skill.Category) *SkillUpsert {
	u.Set(skill.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *SkillUpsert) UpdateCategory() *SkillUpsert {
	u.SetExcluded(skill.FieldCategory)
	return u
}

// SetProficiency sets the "proficiency" field.
func (u *SkillUpsert) SetProficiency(v skill.Proficiency) *SkillUpsert {
	u.Set(skill.FieldProficiency, v)
	return u
}

// UpdateProficiency sets the "proficiency" field to the value that was provided on create.
func (u *SkillUpsert) UpdateProficiency() *SkillUpsert {
	u.SetExcluded(skill.FieldProficiency)
	return u
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (u *SkillUpsert) SetYearsOfExperience(v int) *SkillUpsert {
	u.Set(skill.FieldYearsOfExperience, v)
	return u
}

// UpdateYearsOfExperience sets the "years_of_experience" field to the value that was provided on create.
func (u *SkillUpsert) UpdateYearsOfExperience() *SkillUpsert {
	u.SetExcluded(skill.FieldYearsOfExperience)
	return u
}

// AddYearsOfExperience adds v to the "years_of_experience" field.
func (u *SkillUpsert) AddYearsOfExperience(v int) *SkillUpsert {
	u.Add(skill.FieldYearsOfExperience, v)
	return u
}

// SetIsFeatured sets the "is_featured" field.
func (u *SkillUpsert) SetIsFeatured(v bool) *SkillUpsert {
	u.Set(skill.FieldIsFeatured, v)
	return u
}

// UpdateIsFeatured sets the "is_featured" field to the value that was provided on create.
func (u *SkillUpsert) UpdateIsFeatured() *SkillUpsert {
	u.SetExcluded(skill.FieldIsFeatured)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SkillUpsert) SetUpdatedAt(v time.Time) *SkillUpsert {
	u.Set(skill.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SkillUpsert) UpdateUpdatedAt() *SkillUpsert {
	u.SetExcluded(skill.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(skill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SkillUpsertOne) UpdateNewValues() *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(skill.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(skill.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Skill.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SkillUpsertOne) Ignore() *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillUpsertOne) DoNothing() *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillCreate.OnConflict
// documentation for more info.
func (u *SkillUpsertOne) Update(set func(*SkillUpsert)) *SkillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *SkillUpsertOne) SetName(v string) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateName() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateName()
	})
}

// SetCategory sets the "category" field.
func (u *SkillUpsertOne) SetCategory(v skill.Category) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateCategory() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateCategory()
	})
}

// SetProficiency sets the "proficiency" field.
func (u *SkillUpsertOne) SetProficiency(v skill.Proficiency) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetProficiency(v)
	})
}

// UpdateProficiency sets the "proficiency" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateProficiency() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateProficiency()
	})
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (u *SkillUpsertOne) SetYearsOfExperience(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetYearsOfExperience(v)
	})
}

// AddYearsOfExperience adds v to the "years_of_experience" field.
func (u *SkillUpsertOne) AddYearsOfExperience(v int) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.AddYearsOfExperience(v)
	})
}

// UpdateYearsOfExperience sets the "years_of_experience" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateYearsOfExperience() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateYearsOfExperience()
	})
}

// SetIsFeatured sets the "is_featured" field.
func (u *SkillUpsertOne) SetIsFeatured(v bool) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetIsFeatured(v)
	})
}

// UpdateIsFeatured sets the "is_featured" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateIsFeatured() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateIsFeatured()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SkillUpsertOne) SetUpdatedAt(v time.Time) *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SkillUpsertOne) UpdateUpdatedAt() *SkillUpsertOne {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SkillUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SkillUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SkillUpsertOne.ID is not supported by MySQL driver. Use SkillUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SkillUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SkillCreateBulk is the builder for creating many Skill entities in bulk.
type SkillCreateBulk struct {
	config
	err      error
	builders []*SkillCreate
	conflict []sql.ConflictOption
}

// Save creates the Skill entities in the database.
func (scb *SkillCreateBulk) Save(ctx context.Context) ([]*Skill, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Skill, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = scb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SkillCreateBulk) SaveX(ctx context.Context) []*Skill {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SkillCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SkillCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Skill.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SkillUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (scb *SkillCreateBulk) OnConflict(opts ...sql.ConflictOption) *SkillUpsertBulk {
	scb.conflict = opts
	return &SkillUpsertBulk{
		create: scb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (scb *SkillCreateBulk) OnConflictColumns(columns ...string) *SkillUpsertBulk {
	scb.conflict = append(scb.conflict, sql.ConflictColumns(columns...))
	return &SkillUpsertBulk{
		create: scb,
	}
}

// SkillUpsertBulk is the builder for "upsert"-ing
// a bulk of Skill nodes.
type SkillUpsertBulk struct {
	create *SkillCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(skill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SkillUpsertBulk) UpdateNewValues() *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(skill.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(skill.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Skill.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SkillUpsertBulk) Ignore() *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SkillUpsertBulk) DoNothing() *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SkillCreateBulk.OnConflict
// documentation for more info.
func (u *SkillUpsertBulk) Update(set func(*SkillUpsert)) *SkillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SkillUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *SkillUpsertBulk) SetName(v string) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateName() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateName()
	})
}

// SetCategory sets the "category" field.
func (u *SkillUpsertBulk) SetCategory(v skill.Category) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateCategory() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateCategory()
	})
}

// SetProficiency sets the "proficiency" field.
func (u *SkillUpsertBulk) SetProficiency(v skill.Proficiency) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetProficiency(v)
	})
}

// UpdateProficiency sets the "proficiency" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateProficiency() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateProficiency()
	})
}

// SetYearsOfExperience sets the "years_of_experience" field.
func (u *SkillUpsertBulk) SetYearsOfExperience(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetYearsOfExperience(v)
	})
}

// AddYearsOfExperience adds v to the "years_of_experience" field.
func (u *SkillUpsertBulk) AddYearsOfExperience(v int) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.AddYearsOfExperience(v)
	})
}

// UpdateYearsOfExperience sets the "years_of_experience" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateYearsOfExperience() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateYearsOfExperience()
	})
}

// SetIsFeatured sets the "is_featured" field.
func (u *SkillUpsertBulk) SetIsFeatured(v bool) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetIsFeatured(v)
	})
}

// UpdateIsFeatured sets the "is_featured" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateIsFeatured() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateIsFeatured()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SkillUpsertBulk) SetUpdatedAt(v time.Time) *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SkillUpsertBulk) UpdateUpdatedAt() *SkillUpsertBulk {
	return u.Update(func(s *SkillUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SkillUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SkillCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SkillCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SkillUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
