// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/experience"
	"portfolio-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ExperienceCreate is the builder for creating a Experience entity.
type ExperienceCreate struct {
	config
	mutation *ExperienceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (ec *ExperienceCreate) SetTitle(s string) *ExperienceCreate {
	ec.mutation.SetTitle(s)
	return ec
}

// SetCompany sets the "company" field.
func (ec *ExperienceCreate) SetCompany(s string) *ExperienceCreate {
	ec.mutation.SetCompany(s)
	return ec
}

// SetLocation sets the "location" field.
func (ec *ExperienceCreate) SetLocation(s string) *ExperienceCreate {
	ec.mutation.SetLocation(s)
	return ec
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (ec *ExperienceCreate) SetNillableLocation(s *string) *ExperienceCreate {
	if s != nil {
		ec.SetLocation(*s)
	}
	return ec
}

// SetJobType sets the "job_type" field.
func (ec *ExperienceCreate) SetJobType(et experience.JobType) *ExperienceCreate {
	ec.mutation.SetJobType(et)
	return ec
}

// SetStartDate sets the "start_date" field.
func (ec *ExperienceCreate) SetStartDate(t time.Time) *ExperienceCreate {
	ec.mutation.SetStartDate(t)
	return ec
}

// SetEndDate sets the "end_date" field.
func (ec *ExperienceCreate) SetEndDate(t time.Time) *ExperienceCreate {
	ec.mutation.SetEndDate(t)
	return ec
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (ec *ExperienceCreate) SetNillableEndDate(t *time.Time) *ExperienceCreate {
	if t != nil {
		ec.SetEndDate(*t)
	}
	return ec
}

// SetIsCurrent sets the "is_current" field.
func (ec *ExperienceCreate) SetIsCurrent(b bool) *ExperienceCreate {
	ec.mutation.SetIsCurrent(b)
	return ec
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (ec *ExperienceCreate) SetNillableIsCurrent(b *bool) *ExperienceCreate {
	if b != nil {
		ec.SetIsCurrent(*b)
	}
	return ec
}

// SetDescription sets the "description" field.
func (ec *ExperienceCreate) SetDescription(s string) *ExperienceCreate {
	ec.mutation.SetDescription(s)
	return ec
}

// SetAchievements sets the "achievements" field.
func (ec *ExperienceCreate) SetAchievements(s string) *ExperienceCreate {
	ec.mutation.SetAchievements(s)
	return ec
}

// SetNillableAchievements sets the "achievements" field if the given value is not nil.
func (ec *ExperienceCreate) SetNillableAchievements(s *string) *ExperienceCreate {
	if s != nil {
		ec.SetAchievements(*s)
	}
	return ec
}

// SetTechnologies sets the "technologies" field.
func (ec *ExperienceCreate) SetTechnologies(s string) *ExperienceCreate {
	ec.mutation.SetTechnologies(s)
	return ec
}

// SetNillableTechnologies sets the "technologies" field if the given value is not nil.
func (ec *ExperienceCreate) SetNillableTechnologies(s *string) *ExperienceCreate {
	if s != nil {
		ec.SetTechnologies(*s)
	}
	return ec
}

// SetCreatedAt sets the "created_at" field.
func (ec *ExperienceCreate) SetCreatedAt(t time.Time) *ExperienceCreate {
	ec.mutation.SetCreatedAt(t)
	return ec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ec *ExperienceCreate) SetNillableCreatedAt(t *time.Time) *ExperienceCreate {
	if t != nil {
		ec.SetCreatedAt(*t)
	}
	return ec
}

// SetUpdatedAt sets the "updated_at" field.
func (ec *ExperienceCreate) SetUpdatedAt(t time.Time) *ExperienceCreate {
	ec.mutation.SetUpdatedAt(t)
	return ec
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ec *ExperienceCreate) SetNillableUpdatedAt(t *time.Time) *ExperienceCreate {
	if t != nil {
		ec.SetUpdatedAt(*t)
	}
	return ec
}

// SetID sets the "id" field.
func (ec *ExperienceCreate) SetID(u ulid.ID) *ExperienceCreate {
	ec.mutation.SetID(u)
	return ec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ec *ExperienceCreate) SetNillableID(u *ulid.ID) *ExperienceCreate {
	if u != nil {
		ec.SetID(*u)
	}
	return ec
}

// Mutation returns the ExperienceMutation object of the builder.
func (ec *ExperienceCreate) Mutation() *ExperienceMutation {
	return ec.mutation
}

// Save creates the Experience in the database.
func (ec *ExperienceCreate) Save(ctx context.Context) (*Experience, error) {
	ec.defaults()
	return withHooks(ctx, ec.sqlSave, ec.mutation, ec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ec *ExperienceCreate) SaveX(ctx context.Context) *Experience {
	v, err := ec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ec *ExperienceCreate) Exec(ctx context.Context) error {
	_, err := ec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ec *ExperienceCreate) ExecX(ctx context.Context) {
	if err := ec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ec *ExperienceCreate) defaults() {
	if _, ok := ec.mutation.IsCurrent(); !ok {
		v := experience.DefaultIsCurrent
		ec.mutation.SetIsCurrent(v)
	}
	if _, ok := ec.mutation.CreatedAt(); !ok {
		v := experience.DefaultCreatedAt()
		ec.mutation.SetCreatedAt(v)
	}
	if _, ok := ec.mutation.UpdatedAt(); !ok {
		v := experience.DefaultUpdatedAt()
		ec.mutation.SetUpdatedAt(v)
	}
	if _, ok := ec.mutation.ID(); !ok {
		v := experience.DefaultID()
		ec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ec *ExperienceCreate) check() error {
	if _, ok := ec.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Experience.title"`)}
	}
	if v, ok := ec.mutation.Title(); ok {
		if err := experience.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Experience.title": %w`, err)}
		}
	}
	if _, ok := ec.mutation.Company(); !ok {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required field "Experience.company"`)}
	}
	if v, ok := ec.mutation.Company(); ok {
		if err := experience.CompanyValidator(v); err != nil {
			return &ValidationError{Name: "company", err: fmt.Errorf(`ent: validator failed for field "Experience.company": %w`, err)}
		}
	}
	if v, ok := ec.mutation.Location(); ok {
		if err := experience.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Experience.location": %w`, err)}
		}
	}
	if _, ok := ec.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "Experience.job_type"`)}
	}
	if v, ok := ec.mutation.JobType(); ok {
		if err := experience.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Experience.job_type": %w`, err)}
		}
	}
	if _, ok := ec.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Experience.start_date"`)}
	}
	if _, ok := ec.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "Experience.is_current"`)}
	}
	if _, ok := ec.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Experience.description"`)}
	}
	if v, ok := ec.mutation.Technologies(); ok {
		if err := experience.TechnologiesValidator(v); err != nil {
			return &ValidationError{Name: "technologies", err: fmt.Errorf(`ent: validator failed for field "Experience.technologies": %w`, err)}
		}
	}
	if _, ok := ec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Experience.created_at"`)}
	}
	if _, ok := ec.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Experience.updated_at"`)}
	}
	return nil
}

func (ec *ExperienceCreate) sqlSave(ctx context.Context) (*Experience, error) {
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
			return nil, fmt.Errorf("unexpected Experience.ID type: %T", _spec.ID.Value)
		}
	}
	ec.mutation.id = &_node.ID
	ec.mutation.done = true
	return _node, nil
}

func (ec *ExperienceCreate) createSpec() (*Experience, *sqlgraph.CreateSpec) {
	var (
		_node = &Experience{config: ec.config}
		_spec = sqlgraph.NewCreateSpec(experience.Table, sqlgraph.NewFieldSpec(experience.FieldID, field.TypeString))
	)
	_spec.OnConflict = ec.conflict
	if id, ok := ec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ec.mutation.Title(); ok {
		_spec.SetField(experience.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := ec.mutation.Company(); ok {
		_spec.SetField(experience.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := ec.mutation.Location(); ok {
		_spec.SetField(experience.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := ec.mutation.JobType(); ok {
		_spec.SetField(experience.FieldJobType, field.TypeEnum, value)
		_node.JobType = value
	}
	if value, ok := ec.mutation.StartDate(); ok {
		_spec.SetField(experience.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := ec.mutation.EndDate(); ok {
		_spec.SetField(experience.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := ec.mutation.IsCurrent(); ok {
		_spec.SetField(experience.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := ec.mutation.Description(); ok {
		_spec.SetField(experience.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := ec.mutation.Achievements(); ok {
		_spec.SetField(experience.FieldAchievements, field.TypeString, value)
		_node.Achievements = value
	}
	if value, ok := ec.mutation.Technologies(); ok {
		_spec.SetField(experience.FieldTechnologies, field.TypeString, value)
		_node.Technologies = value
	}
	if value, ok := ec.mutation.CreatedAt(); ok {
		_spec.SetField(experience.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ec.mutation.UpdatedAt(); ok {
		_spec.SetField(experience.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Experience.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExperienceUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (ec *ExperienceCreate) OnConflict(opts ...sql.ConflictOption) *ExperienceUpsertOne {
	ec.conflict = opts
	return &ExperienceUpsertOne{
		create: ec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ec *ExperienceCreate) OnConflictColumns(columns ...string) *ExperienceUpsertOne {
	ec.conflict = append(ec.conflict, sql.ConflictColumns(columns...))
	return &ExperienceUpsertOne{
		create: ec,
	}
}

type (
	// ExperienceUpsertOne is the builder for "upsert"-ing
	//  one Experience node.
	ExperienceUpsertOne struct {
		create *ExperienceCreate
	}

	// ExperienceUpsert is the "OnConflict" setter.
	ExperienceUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ExperienceUpsert) SetTitle(v string) *ExperienceUpsert {
	u.Set(experience.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateTitle() *ExperienceUpsert {
	u.SetExcluded(experience.FieldTitle)
	return u
}

// SetCompany sets the "company" field.
func (u *ExperienceUpsert) SetCompany(v string) *ExperienceUpsert {
	u.Set(experience.FieldCompany, v)
	return u
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateCompany() *ExperienceUpsert {
	u.SetExcluded(experience.FieldCompany)
	return u
}

// SetLocation sets the "location" field.
func (u *ExperienceUpsert) SetLocation(v string) *ExperienceUpsert {
	u.Set(experience.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateLocation() *ExperienceUpsert {
	u.SetExcluded(experience.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *ExperienceUpsert) ClearLocation() *ExperienceUpsert {
	u.SetNull(experience.FieldLocation)
	return u
}

// SetJobType sets the "job_type" field.
func (u *ExperienceUpsert) SetJobType(v experience.JobType) *ExperienceUpsert {
	u.Set(experience.FieldJobType, v)
	return u
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateJobType() *ExperienceUpsert {
	u.SetExcluded(experience.FieldJobType)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *ExperienceUpsert) SetStartDate(v time.Time) *ExperienceUpsert {
	u.Set(experience.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateStartDate() *ExperienceUpsert {
	u.SetExcluded(experience.FieldStartDate)
	return u
}

// SetEndDate sets the "end_date" field.
func (u *ExperienceUpsert) SetEndDate(v time.Time) *ExperienceUpsert {
	u.Set(experience.FieldEndDate, v)
	return u
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateEndDate() *ExperienceUpsert {
	u.SetExcluded(experience.FieldEndDate)
	return u
}

// ClearEndDate clears the value of the "end_date" field.
func (u *ExperienceUpsert) ClearEndDate() *ExperienceUpsert {
	u.SetNull(experience.FieldEndDate)
	return u
}

// SetIsCurrent sets the "is_current" field.
func (u *ExperienceUpsert) SetIsCurrent(v bool) *ExperienceUpsert {
	u.Set(experience.FieldIsCurrent, v)
	return u
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateIsCurrent() *ExperienceUpsert {
	u.SetExcluded(experience.FieldIsCurrent)
	return u
}

// SetDescription sets the "description" field.
func (u *ExperienceUpsert) SetDescription(v string) *ExperienceUpsert {
	u.Set(experience.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateDescription() *ExperienceUpsert {
	u.SetExcluded(experience.FieldDescription)
	return u
}

// SetAchievements sets the "achievements" field.
func (u *ExperienceUpsert) SetAchievements(v string) *ExperienceUpsert {
	u.Set(experience.FieldAchievements, v)
	return u
}

// UpdateAchievements sets the "achievements" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateAchievements() *ExperienceUpsert {
	u.SetExcluded(experience.FieldAchievements)
	return u
}

// ClearAchievements clears the value of the "achievements" field.
func (u *ExperienceUpsert) ClearAchievements() *ExperienceUpsert {
	u.SetNull(experience.FieldAchievements)
	return u
}

// SetTechnologies sets the "technologies" field.
func (u *ExperienceUpsert) SetTechnologies(v string) *ExperienceUpsert {
	u.Set(experience.FieldTechnologies, v)
	return u
}

// UpdateTechnologies sets the "technologies" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateTechnologies() *ExperienceUpsert {
	u.SetExcluded(experience.FieldTechnologies)
	return u
}

// ClearTechnologies clears the value of the "technologies" field.
func (u *ExperienceUpsert) ClearTechnologies() *ExperienceUpsert {
	u.SetNull(experience.FieldTechnologies)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExperienceUpsert) SetUpdatedAt(v time.Time) *ExperienceUpsert {
	u.Set(experience.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExperienceUpsert) UpdateUpdatedAt() *ExperienceUpsert {
	u.SetExcluded(experience.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(experience.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExperienceUpsertOne) UpdateNewValues() *ExperienceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(experience.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(experience.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Experience.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExperienceUpsertOne) Ignore() *ExperienceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExperienceUpsertOne) DoNothing() *ExperienceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExperienceCreate.OnConflict
// documentation for more info.
func (u *ExperienceUpsertOne) Update(set func(*ExperienceUpsert)) *ExperienceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExperienceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ExperienceUpsertOne) SetTitle(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateTitle() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateTitle()
	})
}

// SetCompany sets the "company" field.
func (u *ExperienceUpsertOne) SetCompany(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateCompany() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateCompany()
	})
}

// SetLocation sets the "location" field.
func (u *ExperienceUpsertOne) SetLocation(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateLocation() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *ExperienceUpsertOne) ClearLocation() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearLocation()
	})
}

// SetJobType sets the "job_type" field.
func (u *ExperienceUpsertOne) SetJobType(v experience.JobType) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetJobType(v)
	})
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateJobType() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateJobType()
	})
}

// SetStartDate sets the "start_date" field.
func (u *ExperienceUpsertOne) SetStartDate(v time.Time) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateStartDate() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *ExperienceUpsertOne) SetEndDate(v time.Time) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateEndDate() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *ExperienceUpsertOne) ClearEndDate() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearEndDate()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *ExperienceUpsertOne) SetIsCurrent(v bool) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateIsCurrent() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetDescription sets the "description" field.
func (u *ExperienceUpsertOne) SetDescription(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateDescription() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateDescription()
	})
}

// SetAchievements sets the "achievements" field.
func (u *ExperienceUpsertOne) SetAchievements(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetAchievements(v)
	})
}

// UpdateAchievements sets the "achievements" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateAchievements() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateAchievements()
	})
}

// ClearAchievements clears the value of the "achievements" field.
func (u *ExperienceUpsertOne) ClearAchievements() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearAchievements()
	})
}

// SetTechnologies sets the "technologies" field.
func (u *ExperienceUpsertOne) SetTechnologies(v string) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetTechnologies(v)
	})
}

// UpdateTechnologies sets the "technologies" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateTechnologies() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateTechnologies()
	})
}

// ClearTechnologies clears the value of the "technologies" field.
func (u *ExperienceUpsertOne) ClearTechnologies() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearTechnologies()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExperienceUpsertOne) SetUpdatedAt(v time.Time) *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExperienceUpsertOne) UpdateUpdatedAt() *ExperienceUpsertOne {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExperienceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExperienceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExperienceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExperienceUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExperienceUpsertOne.ID is not supported by MySQL driver. Use ExperienceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExperienceUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExperienceCreateBulk is the builder for creating many Experience entities in bulk.
type ExperienceCreateBulk struct {
	config
	err      error
	builders []*ExperienceCreate
	conflict []sql.ConflictOption
}

// Save creates the Experience entities in the database.
func (ecb *ExperienceCreateBulk) Save(ctx context.Context) ([]*Experience, error) {
	if ecb.err != nil {
		return nil, ecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ecb.builders))
	nodes := make([]*Experience, len(ecb.builders))
	mutators := make([]Mutator, len(ecb.builders))
	for i := range ecb.builders {
		func(i int, root context.Context) {
			builder := ecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExperienceMutation)
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
func (ecb *ExperienceCreateBulk) SaveX(ctx context.Context) []*Experience {
	v, err := ecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ecb *ExperienceCreateBulk) Exec(ctx context.Context) error {
	_, err := ecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecb *ExperienceCreateBulk) ExecX(ctx context.Context) {
	if err := ecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Experience.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExperienceUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (ecb *ExperienceCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExperienceUpsertBulk {
	ecb.conflict = opts
	return &ExperienceUpsertBulk{
		create: ecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ecb *ExperienceCreateBulk) OnConflictColumns(columns ...string) *ExperienceUpsertBulk {
	ecb.conflict = append(ecb.conflict, sql.ConflictColumns(columns...))
	return &ExperienceUpsertBulk{
		create: ecb,
	}
}

// ExperienceUpsertBulk is the builder for "upsert"-ing
// a bulk of Experience nodes.
type ExperienceUpsertBulk struct {
	create *ExperienceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(experience.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExperienceUpsertBulk) UpdateNewValues() *ExperienceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(experience.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(experience.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Experience.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExperienceUpsertBulk) Ignore() *ExperienceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExperienceUpsertBulk) DoNothing() *ExperienceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExperienceCreateBulk.OnConflict
// documentation for more info.
func (u *ExperienceUpsertBulk) Update(set func(*ExperienceUpsert)) *ExperienceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExperienceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ExperienceUpsertBulk) SetTitle(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateTitle() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateTitle()
	})
}

// SetCompany sets the "company" field.
func (u *ExperienceUpsertBulk) SetCompany(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateCompany() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateCompany()
	})
}

// SetLocation sets the "location" field.
func (u *ExperienceUpsertBulk) SetLocation(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateLocation() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *ExperienceUpsertBulk) ClearLocation() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearLocation()
	})
}

// SetJobType sets the "job_type" field.
func (u *ExperienceUpsertBulk) SetJobType(v experience.JobType) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetJobType(v)
	})
}

// UpdateJobType sets the "job_type" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateJobType() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateJobType()
	})
}

// SetStartDate sets the "start_date" field.
func (u *ExperienceUpsertBulk) SetStartDate(v time.Time) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateStartDate() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *ExperienceUpsertBulk) SetEndDate(v time.Time) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateEndDate() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *ExperienceUpsertBulk) ClearEndDate() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearEndDate()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *ExperienceUpsertBulk) SetIsCurrent(v bool) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateIsCurrent() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetDescription sets the "description" field.
func (u *ExperienceUpsertBulk) SetDescription(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateDescription() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateDescription()
	})
}

// SetAchievements sets the "achievements" field.
func (u *ExperienceUpsertBulk) SetAchievements(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetAchievements(v)
	})
}

// UpdateAchievements sets the "achievements" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateAchievements() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateAchievements()
	})
}

// ClearAchievements clears the value of the "achievements" field.
func (u *ExperienceUpsertBulk) ClearAchievements() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearAchievements()
	})
}

// SetTechnologies sets the "technologies" field.
func (u *ExperienceUpsertBulk) SetTechnologies(v string) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetTechnologies(v)
	})
}

// UpdateTechnologies sets the "technologies" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateTechnologies() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateTechnologies()
	})
}

// ClearTechnologies clears the value of the "technologies" field.
func (u *ExperienceUpsertBulk) ClearTechnologies() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.ClearTechnologies()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExperienceUpsertBulk) SetUpdatedAt(v time.Time) *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExperienceUpsertBulk) UpdateUpdatedAt() *ExperienceUpsertBulk {
	return u.Update(func(s *ExperienceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExperienceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExperienceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExperienceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExperienceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
