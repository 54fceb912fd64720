// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/profile"
	"portfolio-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (pc *ProfileCreate) SetName(s string) *ProfileCreate {
	pc.mutation.SetName(s)
	return pc
}

// SetTitle sets the "title" field.
func (pc *ProfileCreate) SetTitle(s string) *ProfileCreate {
	pc.mutation.SetTitle(s)
	return pc
}

// SetBio sets the "bio" field.
func (pc *ProfileCreate) SetBio(s string) *ProfileCreate {
	pc.mutation.SetBio(s)
	return pc
}

// SetEmail sets the "email" field.
func (pc *ProfileCreate) SetEmail(s string) *ProfileCreate {
	pc.mutation.SetEmail(s)
	return pc
}

// SetPhone sets the "phone" field.
func (pc *ProfileCreate) SetPhone(s string) *ProfileCreate {
	pc.mutation.SetPhone(s)
	return pc
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (pc *ProfileCreate) SetNillablePhone(s *string) *ProfileCreate {
	if s != nil {
		pc.SetPhone(*s)
	}
	return pc
}

// SetLocation sets the "location" field.
func (pc *ProfileCreate) SetLocation(s string) *ProfileCreate {
	pc.mutation.SetLocation(s)
	return pc
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableLocation(s *string) *ProfileCreate {
	if s != nil {
		pc.SetLocation(*s)
	}
	return pc
}

// SetLinkedin sets the "linkedin" field.
func (pc *ProfileCreate) SetLinkedin(s string) *ProfileCreate {
	pc.mutation.SetLinkedin(s)
	return pc
}

// SetNillableLinkedin sets the "linkedin" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableLinkedin(s *string) *ProfileCreate {
	if s != nil {
		pc.SetLinkedin(*s)
	}
	return pc
}

// SetGithub sets the "github" field.
func (pc *ProfileCreate) SetGithub(s string) *ProfileCreate {
	pc.mutation.SetGithub(s)
	return pc
}

// SetNillableGithub sets the "github" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableGithub(s *string) *ProfileCreate {
	if s != nil {
		pc.SetGithub(*s)
	}
	return pc
}

// SetWebsite sets the "website" field.
func (pc *ProfileCreate) SetWebsite(s string) *ProfileCreate {
	pc.mutation.SetWebsite(s)
	return pc
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableWebsite(s *string) *ProfileCreate {
	if s != nil {
		pc.SetWebsite(*s)
	}
	return pc
}

// SetProfileImage sets the "profile_image" field.
func (pc *ProfileCreate) SetProfileImage(s string) *ProfileCreate {
	pc.mutation.SetProfileImage(s)
	return pc
}

// SetNillableProfileImage sets the "profile_image" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableProfileImage(s *string) *ProfileCreate {
	if s != nil {
		pc.SetProfileImage(*s)
	}
	return pc
}

// SetCvFile sets the "cv_file" field.
func (pc *ProfileCreate) SetCvFile(s string) *ProfileCreate {
	pc.mutation.SetCvFile(s)
	return pc
}

// SetNillableCvFile sets the "cv_file" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableCvFile(s *string) *ProfileCreate {
	if s != nil {
		pc.SetCvFile(*s)
	}
	return pc
}

// SetCreatedAt sets the "created_at" field.
func (pc *ProfileCreate) SetCreatedAt(t time.Time) *ProfileCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableCreatedAt(t *time.Time) *ProfileCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetUpdatedAt sets the "updated_at" field.
func (pc *ProfileCreate) SetUpdatedAt(t time.Time) *ProfileCreate {
	pc.mutation.SetUpdatedAt(t)
	return pc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableUpdatedAt(t *time.Time) *ProfileCreate {
	if t != nil {
		pc.SetUpdatedAt(*t)
	}
	return pc
}

// SetID sets the "id" field.
func (pc *ProfileCreate) SetID(u ulid.ID) *ProfileCreate {
	pc.mutation.SetID(u)
	return pc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (pc *ProfileCreate) SetNillableID(u *ulid.ID) *ProfileCreate {
	if u != nil {
		pc.SetID(*u)
	}
	return pc
}

// Mutation returns the ProfileMutation object of the builder.
func (pc *ProfileCreate) Mutation() *ProfileMutation {
	return pc.mutation
}

// Save creates the Profile in the database.
func (pc *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *ProfileCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *ProfileCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *ProfileCreate) defaults() {
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := profile.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		pc.mutation.SetUpdatedAt(v)
	}
	if _, ok := pc.mutation.ID(); !ok {
		v := profile.DefaultID()
		pc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *ProfileCreate) check() error {
	if _, ok := pc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Profile.name"`)}
	}
	if v, ok := pc.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Profile.title"`)}
	}
	if v, ok := pc.mutation.Title(); ok {
		if err := profile.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Profile.title": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Bio(); !ok {
		return &ValidationError{Name: "bio", err: errors.New(`ent: missing required field "Profile.bio"`)}
	}
	if _, ok := pc.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Profile.email"`)}
	}
	if v, ok := pc.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Profile.email": %w`, err)}
		}
	}
	if v, ok := pc.mutation.Phone(); ok {
		if err := profile.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Profile.phone": %w`, err)}
		}
	}
	if v, ok := pc.mutation.Location(); ok {
		if err := profile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Profile.location": %w`, err)}
		}
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Profile.created_at"`)}
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (pc *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(ulid.ID); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Profile.ID type: %T", _spec.ID.Value)
		}
	}
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	)
	_spec.OnConflict = pc.conflict
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := pc.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := pc.mutation.Title(); ok {
		_spec.SetField(profile.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := pc.mutation.Bio(); ok {
		_spec.SetField(profile.FieldBio, field.TypeString, value)
		_node.Bio = value
	}
	if value, ok := pc.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := pc.mutation.Phone(); ok {
		_spec.SetField(profile.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := pc.mutation.Location(); ok {
		_spec.SetField(profile.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := pc.mutation.Linkedin(); ok {
		_spec.SetField(profile.FieldLinkedin, field.TypeString, value)
		_node.Linkedin = value
	}
	if value, ok := pc.mutation.Github(); ok {
		_spec.SetField(profile.FieldGithub, field.TypeString, value)
		_node.Github = value
	}
	if value, ok := pc.mutation.Website(); ok {
		_spec.SetField(profile.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := pc.mutation.ProfileImage(); ok {
		_spec.SetField(profile.FieldProfileImage, field.TypeString, value)
		_node.ProfileImage = value
	}
	if value, ok := pc.mutation.CvFile(); ok {
		_spec.SetField(profile.FieldCvFile, field.TypeString, value)
		_node.CvFile = value
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pc.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (pc *ProfileCreate) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertOne {
	pc.conflict = opts
	return &ProfileUpsertOne{
		create: pc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pc *ProfileCreate) OnConflictColumns(columns ...string) *ProfileUpsertOne {
	pc.conflict = append(pc.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertOne{
		create: pc,
	}
}

type (
	// ProfileUpsertOne is the builder for "upsert"-ing
	//  one Profile node.
	ProfileUpsertOne struct {
		create *ProfileCreate
	}

	// ProfileUpsert is the "OnConflict" setter.
	ProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ProfileUpsert) SetName(v string) *ProfileUpsert {
	u.Set(profile.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateName() *ProfileUpsert {
	u.SetExcluded(profile.FieldName)
	return u
}

// SetTitle sets the "title" field.
func (u *ProfileUpsert) SetTitle(v string) *ProfileUpsert {
	u.Set(profile.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateTitle() *ProfileUpsert {
	u.SetExcluded(profile.FieldTitle)
	return u
}

// SetBio sets the "bio" field.
func (u *ProfileUpsert) SetBio(v string) *ProfileUpsert {
	u.Set(profile.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateBio() *ProfileUpsert {
	u.SetExcluded(profile.FieldBio)
	return u
}

// SetEmail sets the "email" field.
func (u *ProfileUpsert) SetEmail(v string) *ProfileUpsert {
	u.Set(profile.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateEmail() *ProfileUpsert {
	u.SetExcluded(profile.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *ProfileUpsert) SetPhone(v string) *ProfileUpsert {
	u.Set(profile.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ProfileUpsert) UpdatePhone() *ProfileUpsert {
	u.SetExcluded(profile.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *ProfileUpsert) ClearPhone() *ProfileUpsert {
	u.SetNull(profile.FieldPhone)
	return u
}

// SetLocation sets the "location" field.
func (u *ProfileUpsert) SetLocation(v string) *ProfileUpsert {
	u.Set(profile.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateLocation() *ProfileUpsert {
	u.SetExcluded(profile.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *ProfileUpsert) ClearLocation() *ProfileUpsert {
	u.SetNull(profile.FieldLocation)
	return u
}

// SetLinkedin sets the "linkedin" field.
func (u *ProfileUpsert) SetLinkedin(v string) *ProfileUpsert {
	u.Set(profile.FieldLinkedin, v)
	return u
}

// UpdateLinkedin sets the "linkedin" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateLinkedin() *ProfileUpsert {
	u.SetExcluded(profile.FieldLinkedin)
	return u
}

// ClearLinkedin clears the value of the "linkedin" field.
func (u *ProfileUpsert) ClearLinkedin() *ProfileUpsert {
	u.SetNull(profile.FieldLinkedin)
	return u
}

// SetGithub sets the "github" field.
func (u *ProfileUpsert) SetGithub(v string) *ProfileUpsert {
	u.Set(profile.FieldGithub, v)
	return u
}

// UpdateGithub sets the "github" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateGithub() *ProfileUpsert {
	u.SetExcluded(profile.FieldGithub)
	return u
}

// ClearGithub clears the value of the "github" field.
func (u *ProfileUpsert) ClearGithub() *ProfileUpsert {
	u.SetNull(profile.FieldGithub)
	return u
}

// SetWebsite sets the "website" field.
func (u *ProfileUpsert) SetWebsite(v string) *ProfileUpsert {
	u.Set(profile.FieldWebsite, v)
	return u
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateWebsite() *ProfileUpsert {
	u.SetExcluded(profile.FieldWebsite)
	return u
}

// ClearWebsite clears the value of the "website" field.
func (u *ProfileUpsert) ClearWebsite() *ProfileUpsert {
	u.SetNull(profile.FieldWebsite)
	return u
}

// SetProfileImage sets the "profile_image" field.
func (u *ProfileUpsert) SetProfileImage(v string) *ProfileUpsert {
	u.Set(profile.FieldProfileImage, v)
	return u
}

// UpdateProfileImage sets the "profile_image" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateProfileImage() *ProfileUpsert {
	u.SetExcluded(profile.FieldProfileImage)
	return u
}

// ClearProfileImage clears the value of the "profile_image" field.
func (u *ProfileUpsert) ClearProfileImage() *ProfileUpsert {
	u.SetNull(profile.FieldProfileImage)
	return u
}

// SetCvFile sets the "cv_file" field.
func (u *ProfileUpsert) SetCvFile(v string) *ProfileUpsert {
	u.Set(profile.FieldCvFile, v)
	return u
}

// UpdateCvFile sets the "cv_file" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateCvFile() *ProfileUpsert {
	u.SetExcluded(profile.FieldCvFile)
	return u
}

// ClearCvFile clears the value of the "cv_file" field.
func (u *ProfileUpsert) ClearCvFile() *ProfileUpsert {
	u.SetNull(profile.FieldCvFile)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsert) SetUpdatedAt(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateUpdatedAt() *ProfileUpsert {
	u.SetExcluded(profile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertOne) UpdateNewValues() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(profile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(profile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProfileUpsertOne) Ignore() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertOne) DoNothing() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreate.OnConflict
// documentation for more info.
func (u *ProfileUpsertOne) Update(set func(*ProfileUpsert)) *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ProfileUpsertOne) SetName(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateName() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateName()
	})
}

// SetTitle sets the "title" field.
func (u *ProfileUpsertOne) SetTitle(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateTitle() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateTitle()
	})
}

// SetBio sets the "bio" field.
func (u *ProfileUpsertOne) SetBio(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateBio() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateBio()
	})
}

// SetEmail sets the "email" field.
func (u *ProfileUpsertOne) SetEmail(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateEmail() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *ProfileUpsertOne) SetPhone(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdatePhone() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ProfileUpsertOne) ClearPhone() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearPhone()
	})
}

// SetLocation sets the "location" field.
func (u *ProfileUpsertOne) SetLocation(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateLocation() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *ProfileUpsertOne) ClearLocation() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLocation()
	})
}

// SetLinkedin sets the "linkedin" field.
func (u *ProfileUpsertOne) SetLinkedin(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLinkedin(v)
	})
}

// UpdateLinkedin sets the "linkedin" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateLinkedin() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLinkedin()
	})
}

// ClearLinkedin clears the value of the "linkedin" field.
func (u *ProfileUpsertOne) ClearLinkedin() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLinkedin()
	})
}

// SetGithub sets the "github" field.
func (u *ProfileUpsertOne) SetGithub(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetGithub(v)
	})
}

// UpdateGithub sets the "github" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateGithub() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateGithub()
	})
}

// ClearGithub clears the value of the "github" field.
func (u *ProfileUpsertOne) ClearGithub() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearGithub()
	})
}

// SetWebsite sets the "website" field.
func (u *ProfileUpsertOne) SetWebsite(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateWebsite() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *ProfileUpsertOne) ClearWebsite() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearWebsite()
	})
}

// SetProfileImage sets the "profile_image" field.
func (u *ProfileUpsertOne) SetProfileImage(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetProfileImage(v)
	})
}

// UpdateProfileImage sets the "profile_image" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateProfileImage() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateProfileImage()
	})
}

// ClearProfileImage clears the value of the "profile_image" field.
func (u *ProfileUpsertOne) ClearProfileImage() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearProfileImage()
	})
}

// SetCvFile sets the "cv_file" field.
func (u *ProfileUpsertOne) SetCvFile(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCvFile(v)
	})
}

// UpdateCvFile sets the "cv_file" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateCvFile() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCvFile()
	})
}

// ClearCvFile clears the value of the "cv_file" field.
func (u *ProfileUpsertOne) ClearCvFile() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearCvFile()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertOne) SetUpdatedAt(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateUpdatedAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProfileUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProfileUpsertOne.ID is not supported by MySQL driver. Use ProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProfileUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the Profile entities in the database.
func (pcb *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Profile, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = pcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (pcb *ProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertBulk {
	pcb.conflict = opts
	return &ProfileUpsertBulk{
		create: pcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pcb *ProfileCreateBulk) OnConflictColumns(columns ...string) *ProfileUpsertBulk {
	pcb.conflict = append(pcb.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertBulk{
		create: pcb,
	}
}

// ProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of Profile nodes.
type ProfileUpsertBulk struct {
	create *ProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertBulk) UpdateNewValues() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(profile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(profile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProfileUpsertBulk) Ignore() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertBulk) DoNothing() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreateBulk.OnConflict
// documentation for more info.
func (u *ProfileUpsertBulk) Update(set func(*ProfileUpsert)) *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ProfileUpsertBulk) SetName(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateName() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateName()
	})
}

// SetTitle sets the "title" field.
func (u *ProfileUpsertBulk) SetTitle(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateTitle() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateTitle()
	})
}

// SetBio sets the "bio" field.
func (u *ProfileUpsertBulk) SetBio(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateBio() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateBio()
	})
}

// SetEmail sets the "email" field.
func (u *ProfileUpsertBulk) SetEmail(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateEmail() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *ProfileUpsertBulk) SetPhone(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdatePhone() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ProfileUpsertBulk) ClearPhone() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearPhone()
	})
}

// SetLocation sets the "location" field.
func (u *ProfileUpsertBulk) SetLocation(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateLocation() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *ProfileUpsertBulk) ClearLocation() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLocation()
	})
}

// SetLinkedin sets the "linkedin" field.
func (u *ProfileUpsertBulk) SetLinkedin(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLinkedin(v)
	})
}

// UpdateLinkedin sets the "linkedin" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateLinkedin() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLinkedin()
	})
}

// ClearLinkedin clears the value of the "linkedin" field.
func (u *ProfileUpsertBulk) ClearLinkedin() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLinkedin()
	})
}

// SetGithub sets the "github" field.
func (u *ProfileUpsertBulk) SetGithub(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetGithub(v)
	})
}

// UpdateGithub sets the "github" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateGithub() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateGithub()
	})
}

// ClearGithub clears the value of the "github" field.
func (u *ProfileUpsertBulk) ClearGithub() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearGithub()
	})
}

// SetWebsite sets the "website" field.
func (u *ProfileUpsertBulk) SetWebsite(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateWebsite() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateWebsite()
	})
}

// ClearWebsite clears the value of the "website" field.
func (u *ProfileUpsertBulk) ClearWebsite() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearWebsite()
	})
}

// SetProfileImage sets the "profile_image" field.
func (u *ProfileUpsertBulk) SetProfileImage(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetProfileImage(v)
	})
}

// UpdateProfileImage sets the "profile_image" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateProfileImage() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateProfileImage()
	})
}

// ClearProfileImage clears the value of the "profile_image" field.
func (u *ProfileUpsertBulk) ClearProfileImage() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearProfileImage()
	})
}

// SetCvFile sets the "cv_file" field.
func (u *ProfileUpsertBulk) SetCvFile(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCvFile(v)
	})
}

// UpdateCvFile sets the "cv_file" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateCvFile() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCvFile()
	})
}

// ClearCvFile clears the value of the "cv_file" field.
func (u *ProfileUpsertBulk) ClearCvFile() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearCvFile()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertBulk) SetUpdatedAt(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateUpdatedAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
