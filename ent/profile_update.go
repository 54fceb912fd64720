// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/profile"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (pu *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetName sets the "name" field.
func (pu *ProfileUpdate) SetName(s string) *ProfileUpdate {
	pu.mutation.SetName(s)
	return pu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableName(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetName(*s)
	}
	return pu
}

// SetTitle sets the "title" field.
func (pu *ProfileUpdate) SetTitle(s string) *ProfileUpdate {
	pu.mutation.SetTitle(s)
	return pu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableTitle(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetTitle(*s)
	}
	return pu
}

// SetBio sets the "bio" field.
func (pu *ProfileUpdate) SetBio(s string) *ProfileUpdate {
	pu.mutation.SetBio(s)
	return pu
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableBio(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetBio(*s)
	}
	return pu
}

// SetEmail sets the "email" field.
func (pu *ProfileUpdate) SetEmail(s string) *ProfileUpdate {
	pu.mutation.SetEmail(s)
	return pu
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableEmail(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetEmail(*s)
	}
	return pu
}

// SetPhone sets the "phone" field.
func (pu *ProfileUpdate) SetPhone(s string) *ProfileUpdate {
	pu.mutation.SetPhone(s)
	return pu
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillablePhone(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetPhone(*s)
	}
	return pu
}

// ClearPhone clears the value of the "phone" field.
func (pu *ProfileUpdate) ClearPhone() *ProfileUpdate {
	pu.mutation.ClearPhone()
	return pu
}

// SetLocation sets the "location" field.
func (pu *ProfileUpdate) SetLocation(s string) *ProfileUpdate {
	pu.mutation.SetLocation(s)
	return pu
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableLocation(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetLocation(*s)
	}
	return pu
}

// ClearLocation clears the value of the "location" field.
func (pu *ProfileUpdate) ClearLocation() *ProfileUpdate {
	pu.mutation.ClearLocation()
	return pu
}

// SetLinkedin sets the "linkedin" field.
func (pu *ProfileUpdate) SetLinkedin(s string) *ProfileUpdate {
	pu.mutation.SetLinkedin(s)
	return pu
}

// SetNillableLinkedin sets the "linkedin" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableLinkedin(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetLinkedin(*s)
	}
	return pu
}

// ClearLinkedin clears the value of the "linkedin" field.
func (pu *ProfileUpdate) ClearLinkedin() *ProfileUpdate {
	pu.mutation.ClearLinkedin()
	return pu
}

// SetGithub sets the "github" field.
func (pu *ProfileUpdate) SetGithub(s string) *ProfileUpdate {
	pu.mutation.SetGithub(s)
	return pu
}

// SetNillableGithub sets the "github" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableGithub(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetGithub(*s)
	}
	return pu
}

// ClearGithub clears the value of the "github" field.
func (pu *ProfileUpdate) ClearGithub() *ProfileUpdate {
	pu.mutation.ClearGithub()
	return pu
}

// SetWebsite sets the "website" field.
func (pu *ProfileUpdate) SetWebsite(s string) *ProfileUpdate {
	pu.mutation.SetWebsite(s)
	return pu
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableWebsite(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetWebsite(*s)
	}
	return pu
}

// ClearWebsite clears the value of the "website" field.
func (pu *ProfileUpdate) ClearWebsite() *ProfileUpdate {
	pu.mutation.ClearWebsite()
	return pu
}

// SetProfileImage sets the "profile_image" field.
func (pu *ProfileUpdate) SetProfileImage(s string) *ProfileUpdate {
	pu.mutation.SetProfileImage(s)
	return pu
}

// SetNillableProfileImage sets the "profile_image" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableProfileImage(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetProfileImage(*s)
	}
	return pu
}

// ClearProfileImage clears the value of the "profile_image" field.
func (pu *ProfileUpdate) ClearProfileImage() *ProfileUpdate {
	pu.mutation.ClearProfileImage()
	return pu
}

// SetCvFile sets the "cv_file" field.
func (pu *ProfileUpdate) SetCvFile(s string) *ProfileUpdate {
	pu.mutation.SetCvFile(s)
	return pu
}

// SetNillableCvFile sets the "cv_file" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableCvFile(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetCvFile(*s)
	}
	return pu
}

// ClearCvFile clears the value of the "cv_file" field.
func (pu *ProfileUpdate) ClearCvFile() *ProfileUpdate {
	pu.mutation.ClearCvFile()
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *ProfileUpdate) SetUpdatedAt(t time.Time) *ProfileUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// Mutation returns the ProfileMutation object of the builder.
func (pu *ProfileUpdate) Mutation() *ProfileMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *ProfileUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *ProfileUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *ProfileUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *ProfileUpdate) check() error {
	if v, ok := pu.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Title(); ok {
		if err := profile.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Profile.title": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Profile.email": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Phone(); ok {
		if err := profile.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Profile.phone": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Location(); ok {
		if err := profile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Profile.location": %w`, err)}
		}
	}
	return nil
}

func (pu *ProfileUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := pu.mutation.Title(); ok {
		_spec.SetField(profile.FieldTitle, field.TypeString, value)
	}
	if value, ok := pu.mutation.Bio(); ok {
		_spec.SetField(profile.FieldBio, field.TypeString, value)
	}
	if value, ok := pu.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := pu.mutation.Phone(); ok {
		_spec.SetField(profile.FieldPhone, field.TypeString, value)
	}
	if pu.mutation.PhoneCleared() {
		_spec.ClearField(profile.FieldPhone, field.TypeString)
	}
	if value, ok := pu.mutation.Location(); ok {
		_spec.SetField(profile.FieldLocation, field.TypeString, value)
	}
	if pu.mutation.LocationCleared() {
		_spec.ClearField(profile.FieldLocation, field.TypeString)
	}
	if value, ok := pu.mutation.Linkedin(); ok {
		_spec.SetField(profile.FieldLinkedin, field.TypeString, value)
	}
	if pu.mutation.LinkedinCleared() {
		_spec.ClearField(profile.FieldLinkedin, field.TypeString)
	}
	if value, ok := pu.mutation.Github(); ok {
		_spec.SetField(profile.FieldGithub, field.TypeString, value)
	}
	if pu.mutation.GithubCleared() {
		_spec.ClearField(profile.FieldGithub, field.TypeString)
	}
	if value, ok := pu.mutation.Website(); ok {
		_spec.SetField(profile.FieldWebsite, field.TypeString, value)
	}
	if pu.mutation.WebsiteCleared() {
		_spec.ClearField(profile.FieldWebsite, field.TypeString)
	}
	if value, ok := pu.mutation.ProfileImage(); ok {
		_spec.SetField(profile.FieldProfileImage, field.TypeString, value)
	}
	if pu.mutation.ProfileImageCleared() {
		_spec.ClearField(profile.FieldProfileImage, field.TypeString)
	}
	if value, ok := pu.mutation.CvFile(); ok {
		_spec.SetField(profile.FieldCvFile, field.TypeString, value)
	}
	if pu.mutation.CvFileCleared() {
		_spec.ClearField(profile.FieldCvFile, field.TypeString)
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetName sets the "name" field.
func (puo *ProfileUpdateOne) SetName(s string) *ProfileUpdateOne {
	puo.mutation.SetName(s)
	return puo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableName(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetName(*s)
	}
	return puo
}

// SetTitle sets the "title" field.
func (puo *ProfileUpdateOne) SetTitle(s string) *ProfileUpdateOne {
	puo.mutation.SetTitle(s)
	return puo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableTitle(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetTitle(*s)
	}
	return puo
}

// SetBio sets the "bio" field.
func (puo *ProfileUpdateOne) SetBio(s string) *ProfileUpdateOne {
	puo.mutation.SetBio(s)
	return puo
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableBio(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetBio(*s)
	}
	return puo
}

// SetEmail sets the "email" field.
func (puo *ProfileUpdateOne) SetEmail(s string) *ProfileUpdateOne {
	puo.mutation.SetEmail(s)
	return puo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableEmail(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetEmail(*s)
	}
	return puo
}

// SetPhone sets the "phone" field.
func (puo *ProfileUpdateOne) SetPhone(s string) *ProfileUpdateOne {
	puo.mutation.SetPhone(s)
	return puo
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillablePhone(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetPhone(*s)
	}
	return puo
}

// ClearPhone clears the value of the "phone" field.
func (puo *ProfileUpdateOne) ClearPhone() *ProfileUpdateOne {
	puo.mutation.ClearPhone()
	return puo
}

// SetLocation sets the "location" field.
func (puo *ProfileUpdateOne) SetLocation(s string) *ProfileUpdateOne {
	puo.mutation.SetLocation(s)
	return puo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableLocation(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetLocation(*s)
	}
	return puo
}

// ClearLocation clears the value of the "location" field.
func (puo *ProfileUpdateOne) ClearLocation() *ProfileUpdateOne {
	puo.mutation.ClearLocation()
	return puo
}

// SetLinkedin sets the "linkedin" field.
func (puo *ProfileUpdateOne) SetLinkedin(s string) *ProfileUpdateOne {
	puo.mutation.SetLinkedin(s)
	return puo
}

// SetNillableLinkedin sets the "linkedin" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableLinkedin(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetLinkedin(*s)
	}
	return puo
}

// ClearLinkedin clears the value of the "linkedin" field.
func (puo *ProfileUpdateOne) ClearLinkedin() *ProfileUpdateOne {
	puo.mutation.ClearLinkedin()
	return puo
}

// SetGithub sets the "github" field.
func (puo *ProfileUpdateOne) SetGithub(s string) *ProfileUpdateOne {
	puo.mutation.SetGithub(s)
	return puo
}

// SetNillableGithub sets the "github" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableGithub(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetGithub(*s)
	}
	return puo
}

// ClearGithub clears the value of the "github" field.
func (puo *ProfileUpdateOne) ClearGithub() *ProfileUpdateOne {
	puo.mutation.ClearGithub()
	return puo
}

// SetWebsite sets the "website" field.
func (puo *ProfileUpdateOne) SetWebsite(s string) *ProfileUpdateOne {
	puo.mutation.SetWebsite(s)
	return puo
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableWebsite(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetWebsite(*s)
	}
	return puo
}

// ClearWebsite clears the value of the "website" field.
func (puo *ProfileUpdateOne) ClearWebsite() *ProfileUpdateOne {
	puo.mutation.ClearWebsite()
	return puo
}

// SetProfileImage sets the "profile_image" field.
func (puo *ProfileUpdateOne) SetProfileImage(s string) *ProfileUpdateOne {
	puo.mutation.SetProfileImage(s)
	return puo
}

// SetNillableProfileImage sets the "profile_image" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableProfileImage(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetProfileImage(*s)
	}
	return puo
}

// ClearProfileImage clears the value of the "profile_image" field.
func (puo *ProfileUpdateOne) ClearProfileImage() *ProfileUpdateOne {
	puo.mutation.ClearProfileImage()
	return puo
}

// SetCvFile sets the "cv_file" field.
func (puo *ProfileUpdateOne) SetCvFile(s string) *ProfileUpdateOne {
	puo.mutation.SetCvFile(s)
	return puo
}

// SetNillableCvFile sets the "cv_file" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableCvFile(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetCvFile(*s)
	}
	return puo
}

// ClearCvFile clears the value of the "cv_file" field.
func (puo *ProfileUpdateOne) ClearCvFile() *ProfileUpdateOne {
	puo.mutation.ClearCvFile()
	return puo
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *ProfileUpdateOne) SetUpdatedAt(t time.Time) *ProfileUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// Mutation returns the ProfileMutation object of the builder.
func (puo *ProfileUpdateOne) Mutation() *ProfileMutation {
	return puo.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (puo *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Profile entity.
func (puo *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *ProfileUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *ProfileUpdateOne) check() error {
	if v, ok := puo.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Title(); ok {
		if err := profile.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Profile.title": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Profile.email": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Phone(); ok {
		if err := profile.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Profile.phone": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Location(); ok {
		if err := profile.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Profile.location": %w`, err)}
		}
	}
	return nil
}

func (puo *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := puo.mutation.Title(); ok {
		_spec.SetField(profile.FieldTitle, field.TypeString, value)
	}
	if value, ok := puo.mutation.Bio(); ok {
		_spec.SetField(profile.FieldBio, field.TypeString, value)
	}
	if value, ok := puo.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := puo.mutation.Phone(); ok {
		_spec.SetField(profile.FieldPhone, field.TypeString, value)
	}
	if puo.mutation.PhoneCleared() {
		_spec.ClearField(profile.FieldPhone, field.TypeString)
	}
	if value, ok := puo.mutation.Location(); ok {
		_spec.SetField(profile.FieldLocation, field.TypeString, value)
	}
	if puo.mutation.LocationCleared() {
		_spec.ClearField(profile.FieldLocation, field.TypeString)
	}
	if value, ok := puo.mutation.Linkedin(); ok {
		_spec.SetField(profile.FieldLinkedin, field.TypeString, value)
	}
	if puo.mutation.LinkedinCleared() {
		_spec.ClearField(profile.FieldLinkedin, field.TypeString)
	}
	if value, ok := puo.mutation.Github(); ok {
		_spec.SetField(profile.FieldGithub, field.TypeString, value)
	}
	if puo.mutation.GithubCleared() {
		_spec.ClearField(profile.FieldGithub, field.TypeString)
	}
	if value, ok := puo.mutation.Website(); ok {
		_spec.SetField(profile.FieldWebsite, field.TypeString, value)
	}
	if puo.mutation.WebsiteCleared() {
		_spec.ClearField(profile.FieldWebsite, field.TypeString)
	}
	if value, ok := puo.mutation.ProfileImage(); ok {
		_spec.SetField(profile.FieldProfileImage, field.TypeString, value)
	}
	if puo.mutation.ProfileImageCleared() {
		_spec.ClearField(profile.FieldProfileImage, field.TypeString)
	}
	if value, ok := puo.mutation.CvFile(); ok {
		_spec.SetField(profile.FieldCvFile, field.TypeString, value)
	}
	if puo.mutation.CvFileCleared() {
		_spec.ClearField(profile.FieldCvFile, field.TypeString)
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
