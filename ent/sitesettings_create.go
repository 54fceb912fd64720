// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/ent/sitesettings"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SiteSettingsCreate is the builder for creating a SiteSettings entity.
type SiteSettingsCreate struct {
	config
	mutation *SiteSettingsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSiteTitle sets the "site_title" field.
func (ssc *SiteSettingsCreate) SetSiteTitle(s string) *SiteSettingsCreate {
	ssc.mutation.SetSiteTitle(s)
	return ssc
}

// SetNillableSiteTitle sets the "site_title" field if the given value is not nil.
func (ssc *SiteSettingsCreate) SetNillableSiteTitle(s *string) *SiteSettingsCreate {
	if s != nil {
		ssc.SetSiteTitle(*s)
	}
	return ssc
}

// SetSiteDescription sets the "site_description" field.
func (ssc *SiteSettingsCreate) SetSiteDescription(s string) *SiteSettingsCreate {
	ssc.mutation.SetSiteDescription(s)
	return ssc
}

// SetNillableSiteDescription sets the "site_description" field if the given value is not nil.
func (ssc *SiteSettingsCreate) SetNillableSiteDescription(s *string) *SiteSettingsCreate {
	if s != nil {
		ssc.SetSiteDescription(*s)
	}
	return ssc
}

// SetFooterText sets the "footer_text" field.
func (ssc *SiteSettingsCreate) SetFooterText(s string) *SiteSettingsCreate {
	ssc.mutation.SetFooterText(s)
	return ssc
}

// SetNillableFooterText sets the "footer_text" field if the given value is not nil.
func (ssc *SiteSettingsCreate) SetNillableFooterText(s *string) *SiteSettingsCreate {
	if s != nil {
		ssc.SetFooterText(*s)
	}
	return ssc
}

// SetGoogleAnalyticsID sets the "google_analytics_id" field.
func (ssc *SiteSettingsCreate) SetGoogleAnalyticsID(s string) *SiteSettingsCreate {
	ssc.mutation.SetGoogleAnalyticsID(s)
	return ssc
}

// SetNillableGoogleAnalyticsID sets the "google_analytics_id" field if the given value is not nil.
func (ssc *SiteSettingsCreate) SetNillableGoogleAnalyticsID(s *string) *SiteSettingsCreate {
	if s != nil {
		ssc.SetGoogleAnalyticsID(*s)
	}
	return ssc
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (ssc *SiteSettingsCreate) SetMaintenanceMode(b bool) *SiteSettingsCreate {
	ssc.mutation.SetMaintenanceMode(b)
	return ssc
}

// SetNillableMaintenanceMode sets the "maintenance_mode" field if the given value is not nil.
func (ssc *SiteSettingsCreate) SetNillableMaintenanceMode(b *bool) *SiteSettingsCreate {
	if b != nil {
		ssc.SetMaintenanceMode(*b)
	}
	return ssc
}

// SetCreatedAt sets the "created_at" field.
func (ssc *SiteSettingsCreate) SetCreatedAt(t time.Time) *SiteSettingsCreate {
	ssc.mutation.SetCreatedAt(t)
	return ssc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ssc *SiteSettingsCreate) SetNillableCreatedAt(t *time.Time) *SiteSettingsCreate {
	if t != nil {
		ssc.SetCreatedAt(*t)
	}
	return ssc
}

// SetUpdatedAt sets the "updated_at" field.
func (ssc *SiteSettingsCreate) SetUpdatedAt(t time.Time) *SiteSettingsCreate {
	ssc.mutation.SetUpdatedAt(t)
	return ssc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ssc *SiteSettingsCreate) SetNillableUpdatedAt(t *time.Time) *SiteSettingsCreate {
	if t != nil {
		ssc.SetUpdatedAt(*t)
	}
	return ssc
}

// SetID sets the "id" field.
func (ssc *SiteSettingsCreate) SetID(u ulid.ID) *SiteSettingsCreate {
	ssc.mutation.SetID(u)
	return ssc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ssc *SiteSettingsCreate) SetNillableID(u *ulid.ID) *SiteSettingsCreate {
	if u != nil {
		ssc.SetID(*u)
	}
	return ssc
}

// Mutation returns the SiteSettingsMutation object of the builder.
func (ssc *SiteSettingsCreate) Mutation() *SiteSettingsMutation {
	return ssc.mutation
}

// Save creates the SiteSettings in the database.
func (ssc *SiteSettingsCreate) Save(ctx context.Context) (*SiteSettings, error) {
	ssc.defaults()
	return withHooks(ctx, ssc.sqlSave, ssc.mutation, ssc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ssc *SiteSettingsCreate) SaveX(ctx context.Context) *SiteSettings {
	v, err := ssc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ssc *SiteSettingsCreate) Exec(ctx context.Context) error {
	_, err := ssc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssc *SiteSettingsCreate) ExecX(ctx context.Context) {
	if err := ssc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssc *SiteSettingsCreate) defaults() {
	if _, ok := ssc.mutation.SiteTitle(); !ok {
		v := sitesettings.DefaultSiteTitle
		ssc.mutation.SetSiteTitle(v)
	}
	if _, ok := ssc.mutation.MaintenanceMode(); !ok {
		v := sitesettings.DefaultMaintenanceMode
		ssc.mutation.SetMaintenanceMode(v)
	}
	if _, ok := ssc.mutation.CreatedAt(); !ok {
		v := sitesettings.DefaultCreatedAt()
		ssc.mutation.SetCreatedAt(v)
	}
	if _, ok := ssc.mutation.UpdatedAt(); !ok {
		v := sitesettings.DefaultUpdatedAt()
		ssc.mutation.SetUpdatedAt(v)
	}
	if _, ok := ssc.mutation.ID(); !ok {
		v := sitesettings.DefaultID()
		ssc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssc *SiteSettingsCreate) check() error {
	if _, ok := ssc.mutation.SiteTitle(); !ok {
		return &ValidationError{Name: "site_title", err: errors.New(`ent: missing required field "SiteSettings.site_title"`)}
	}
	if v, ok := ssc.mutation.SiteTitle(); ok {
		if err := sitesettings.SiteTitleValidator(v); err != nil {
			return &ValidationError{Name: "site_title", err: fmt.Errorf(`ent: validator failed for field "SiteSettings.site_title": %w`, err)}
		}
	}
	if v, ok := ssc.mutation.FooterText(); ok {
		if err := sitesettings.FooterTextValidator(v); err != nil {
			return &ValidationError{Name: "footer_text", err: fmt.Errorf(`ent: validator failed for field "SiteSettings.footer_text": %w`, err)}
		}
	}
	if v, ok := ssc.mutation.GoogleAnalyticsID(); ok {
		if err := sitesettings.GoogleAnalyticsIDValidator(v); err != nil {
			return &ValidationError{Name: "google_analytics_id", err: fmt.Errorf(`ent: validator failed for field "SiteSettings.google_analytics_id": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.MaintenanceMode(); !ok {
		return &ValidationError{Name: "maintenance_mode", err: errors.New(`ent: missing required field "SiteSettings.maintenance_mode"`)}
	}
	if _, ok := ssc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SiteSettings.created_at"`)}
	}
	if _, ok := ssc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SiteSettings.updated_at"`)}
	}
	return nil
}

func (ssc *SiteSettingsCreate) sqlSave(ctx context.Context) (*SiteSettings, error) {
	if err := ssc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ssc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ssc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(ulid.ID); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SiteSettings.ID type: %T", _spec.ID.Value)
		}
	}
	ssc.mutation.id = &_node.ID
	ssc.mutation.done = true
	return _node, nil
}

func (ssc *SiteSettingsCreate) createSpec() (*SiteSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &SiteSettings{config: ssc.config}
		_spec = sqlgraph.NewCreateSpec(sitesettings.Table, sqlgraph.NewFieldSpec(sitesettings.FieldID, field.TypeString))
	)
	_spec.OnConflict = ssc.conflict
	if id, ok := ssc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ssc.mutation.SiteTitle(); ok {
		_spec.SetField(sitesettings.FieldSiteTitle, field.TypeString, value)
		_node.SiteTitle = value
	}
	if value, ok := ssc.mutation.SiteDescription(); ok {
		_spec.SetField(sitesettings.FieldSiteDescription, field.TypeString, value)
		_node.SiteDescription = value
	}
	if value, ok := ssc.mutation.FooterText(); ok {
		_spec.SetField(sitesettings.FieldFooterText, field.TypeString, value)
		_node.FooterText = value
	}
	if value, ok := ssc.mutation.GoogleAnalyticsID(); ok {
		_spec.SetField(sitesettings.FieldGoogleAnalyticsID, field.TypeString, value)
		_node.GoogleAnalyticsID = value
	}
	if value, ok := ssc.mutation.MaintenanceMode(); ok {
		_spec.SetField(sitesettings.FieldMaintenanceMode, field.TypeBool, value)
		_node.MaintenanceMode = value
	}
	if value, ok := ssc.mutation.CreatedAt(); ok {
		_spec.SetField(sitesettings.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ssc.mutation.UpdatedAt(); ok {
		_spec.SetField(sitesettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SiteSettings.Create().
//		SetSiteTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SiteSettingsUpsert) {
//			SetSiteTitle(v+v).
//		}).
//		Exec(ctx)
func (ssc *SiteSettingsCreate) OnConflict(opts ...sql.ConflictOption) *SiteSettingsUpsertOne {
	ssc.conflict = opts
	return &SiteSettingsUpsertOne{
		create: ssc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SiteSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ssc *SiteSettingsCreate) OnConflictColumns(columns ...string) *SiteSettingsUpsertOne {
	ssc.conflict = append(ssc.conflict, sql.ConflictColumns(columns...))
	return &SiteSettingsUpsertOne{
		create: ssc,
	}
}

type (
	// SiteSettingsUpsertOne is the builder for "upsert"-ing
	//  one SiteSettings node.
	SiteSettingsUpsertOne struct {
		create *SiteSettingsCreate
	}

	// SiteSettingsUpsert is the "OnConflict" setter.
	SiteSettingsUpsert struct {
		*sql.UpdateSet
	}
)

// SetSiteTitle sets the "site_title" field.
func (u *SiteSettingsUpsert) SetSiteTitle(v string) *SiteSettingsUpsert {
	u.Set(sitesettings.FieldSiteTitle, v)
	return u
}

// UpdateSiteTitle sets the "site_title" field to the value that was provided on create.
func (u *SiteSettingsUpsert) UpdateSiteTitle() *SiteSettingsUpsert {
	u.SetExcluded(sitesettings.FieldSiteTitle)
	return u
}

// SetSiteDescription sets the "site_description" field.
func (u *SiteSettingsUpsert) SetSiteDescription(v string) *SiteSettingsUpsert {
	u.Set(sitesettings.FieldSiteDescription, v)
	return u
}

// UpdateSiteDescription sets the "site_description" field to the value that was provided on create.
func (u *SiteSettingsUpsert) UpdateSiteDescription() *SiteSettingsUpsert {
	u.SetExcluded(sitesettings.FieldSiteDescription)
	return u
}

// ClearSiteDescription clears the value of the "site_description" field.
func (u *SiteSettingsUpsert) ClearSiteDescription() *SiteSettingsUpsert {
	u.SetNull(sitesettings.FieldSiteDescription)
	return u
}

// SetFooterText sets the "footer_text" field.
func (u *SiteSettingsUpsert) SetFooterText(v string) *SiteSettingsUpsert {
	u.Set(sitesettings.FieldFooterText, v)
	return u
}

// UpdateFooterText sets the "footer_text" field to the value that was provided on create.
func (u *SiteSettingsUpsert) UpdateFooterText() *SiteSettingsUpsert {
	u.SetExcluded(sitesettings.FieldFooterText)
	return u
}

// ClearFooterText clears the value of the "footer_text" field.
func (u *SiteSettingsUpsert) ClearFooterText() *SiteSettingsUpsert {
	u.SetNull(sitesettings.FieldFooterText)
	return u
}

// SetGoogleAnalyticsID sets the "google_analytics_id" field.
func (u *SiteSettingsUpsert) SetGoogleAnalyticsID(v string) *SiteSettingsUpsert {
	u.Set(sitesettings.FieldGoogleAnalyticsID, v)
	return u
}

// UpdateGoogleAnalyticsID sets the "google_analytics_id" field to the value that was provided on create.
func (u *SiteSettingsUpsert) UpdateGoogleAnalyticsID() *SiteSettingsUpsert {
	u.SetExcluded(sitesettings.FieldGoogleAnalyticsID)
	return u
}

// ClearGoogleAnalyticsID clears the value of the "google_analytics_id" field.
func (u *SiteSettingsUpsert) ClearGoogleAnalyticsID() *SiteSettingsUpsert {
	u.SetNull(sitesettings.FieldGoogleAnalyticsID)
	return u
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (u *SiteSettingsUpsert) SetMaintenanceMode(v bool) *SiteSettingsUpsert {
	u.Set(sitesettings.FieldMaintenanceMode, v)
	return u
}

// UpdateMaintenanceMode sets the "maintenance_mode" field to the value that was provided on create.
func (u *SiteSettingsUpsert) UpdateMaintenanceMode() *SiteSettingsUpsert {
	u.SetExcluded(sitesettings.FieldMaintenanceMode)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SiteSettingsUpsert) SetUpdatedAt(v time.Time) *SiteSettingsUpsert {
	u.Set(sitesettings.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SiteSettingsUpsert) UpdateUpdatedAt() *SiteSettingsUpsert {
	u.SetExcluded(sitesettings.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SiteSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sitesettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SiteSettingsUpsertOne) UpdateNewValues() *SiteSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sitesettings.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sitesettings.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SiteSettings.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SiteSettingsUpsertOne) Ignore() *SiteSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SiteSettingsUpsertOne) DoNothing() *SiteSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SiteSettingsCreate.OnConflict
// documentation for more info.
func (u *SiteSettingsUpsertOne) Update(set func(*SiteSettingsUpsert)) *SiteSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SiteSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetSiteTitle sets the "site_title" field.
func (u *SiteSettingsUpsertOne) SetSiteTitle(v string) *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetSiteTitle(v)
	})
}

// UpdateSiteTitle sets the "site_title" field to the value that was provided on create.
func (u *SiteSettingsUpsertOne) UpdateSiteTitle() *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateSiteTitle()
	})
}

// SetSiteDescription sets the "site_description" field.
func (u *SiteSettingsUpsertOne) SetSiteDescription(v string) *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetSiteDescription(v)
	})
}

// UpdateSiteDescription sets the "site_description" field to the value that was provided on create.
func (u *SiteSettingsUpsertOne) UpdateSiteDescription() *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateSiteDescription()
	})
}

// ClearSiteDescription clears the value of the "site_description" field.
func (u *SiteSettingsUpsertOne) ClearSiteDescription() *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.ClearSiteDescription()
	})
}

// SetFooterText sets the "footer_text" field.
func (u *SiteSettingsUpsertOne) SetFooterText(v string) *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetFooterText(v)
	})
}

// UpdateFooterText sets the "footer_text" field to the value that was provided on create.
func (u *SiteSettingsUpsertOne) UpdateFooterText() *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateFooterText()
	})
}

// ClearFooterText clears the value of the "footer_text" field.
func (u *SiteSettingsUpsertOne) ClearFooterText() *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.ClearFooterText()
	})
}

// SetGoogleAnalyticsID sets the "google_analytics_id" field.
func (u *SiteSettingsUpsertOne) SetGoogleAnalyticsID(v string) *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetGoogleAnalyticsID(v)
	})
}

// UpdateGoogleAnalyticsID sets the "google_analytics_id" field to the value that was provided on create.
func (u *SiteSettingsUpsertOne) UpdateGoogleAnalyticsID() *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateGoogleAnalyticsID()
	})
}

// ClearGoogleAnalyticsID clears the value of the "google_analytics_id" field.
func (u *SiteSettingsUpsertOne) ClearGoogleAnalyticsID() *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.ClearGoogleAnalyticsID()
	})
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (u *SiteSettingsUpsertOne) SetMaintenanceMode(v bool) *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetMaintenanceMode(v)
	})
}

// UpdateMaintenanceMode sets the "maintenance_mode" field to the value that was provided on create.
func (u *SiteSettingsUpsertOne) UpdateMaintenanceMode() *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateMaintenanceMode()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SiteSettingsUpsertOne) SetUpdatedAt(v time.Time) *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SiteSettingsUpsertOne) UpdateUpdatedAt() *SiteSettingsUpsertOne {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SiteSettingsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SiteSettingsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SiteSettingsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SiteSettingsUpsertOne) ID(ctx context.Context) (id ulid.ID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SiteSettingsUpsertOne.ID is not supported by MySQL driver. Use SiteSettingsUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SiteSettingsUpsertOne) IDX(ctx context.Context) ulid.ID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SiteSettingsCreateBulk is the builder for creating many SiteSettings entities in bulk.
type SiteSettingsCreateBulk struct {
	config
	err      error
	builders []*SiteSettingsCreate
	conflict []sql.ConflictOption
}

// Save creates the SiteSettings entities in the database.
func (sscb *SiteSettingsCreateBulk) Save(ctx context.Context) ([]*SiteSettings, error) {
	if sscb.err != nil {
		return nil, sscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sscb.builders))
	nodes := make([]*SiteSettings, len(sscb.builders))
	mutators := make([]Mutator, len(sscb.builders))
	for i := range sscb.builders {
		func(i int, root context.Context) {
			builder := sscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SiteSettingsMutation)
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
					_, err = mutators[i+1].Mutate(root, sscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = sscb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sscb *SiteSettingsCreateBulk) SaveX(ctx context.Context) []*SiteSettings {
	v, err := sscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sscb *SiteSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := sscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sscb *SiteSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := sscb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SiteSettings.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SiteSettingsUpsert) {
//			SetSiteTitle(v+v).
//		}).
//		Exec(ctx)
func (sscb *SiteSettingsCreateBulk) OnConflict(opts ...sql.ConflictOption) *SiteSettingsUpsertBulk {
	sscb.conflict = opts
	return &SiteSettingsUpsertBulk{
		create: sscb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SiteSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sscb *SiteSettingsCreateBulk) OnConflictColumns(columns ...string) *SiteSettingsUpsertBulk {
	sscb.conflict = append(sscb.conflict, sql.ConflictColumns(columns...))
	return &SiteSettingsUpsertBulk{
		create: sscb,
	}
}

// SiteSettingsUpsertBulk is the builder for "upsert"-ing
// a bulk of SiteSettings nodes.
type SiteSettingsUpsertBulk struct {
	create *SiteSettingsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SiteSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sitesettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SiteSettingsUpsertBulk) UpdateNewValues() *SiteSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sitesettings.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sitesettings.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SiteSettings.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SiteSettingsUpsertBulk) Ignore() *SiteSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SiteSettingsUpsertBulk) DoNothing() *SiteSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SiteSettingsCreateBulk.OnConflict
// documentation for more info.
func (u *SiteSettingsUpsertBulk) Update(set func(*SiteSettingsUpsert)) *SiteSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SiteSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetSiteTitle sets the "site_title" field.
func (u *SiteSettingsUpsertBulk) SetSiteTitle(v string) *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetSiteTitle(v)
	})
}

// UpdateSiteTitle sets the "site_title" field to the value that was provided on create.
func (u *SiteSettingsUpsertBulk) UpdateSiteTitle() *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateSiteTitle()
	})
}

// SetSiteDescription sets the "site_description" field.
func (u *SiteSettingsUpsertBulk) SetSiteDescription(v string) *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetSiteDescription(v)
	})
}

// UpdateSiteDescription sets the "site_description" field to the value that was provided on create.
func (u *SiteSettingsUpsertBulk) UpdateSiteDescription() *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateSiteDescription()
	})
}

// ClearSiteDescription clears the value of the "site_description" field.
func (u *SiteSettingsUpsertBulk) ClearSiteDescription() *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.ClearSiteDescription()
	})
}

// SetFooterText sets the "footer_text" field.
func (u *SiteSettingsUpsertBulk) SetFooterText(v string) *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetFooterText(v)
	})
}

// UpdateFooterText sets the "footer_text" field to the value that was provided on create.
func (u *SiteSettingsUpsertBulk) UpdateFooterText() *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateFooterText()
	})
}

// ClearFooterText clears the value of the "footer_text" field.
func (u *SiteSettingsUpsertBulk) ClearFooterText() *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.ClearFooterText()
	})
}

// SetGoogleAnalyticsID sets the "google_analytics_id" field.
func (u *SiteSettingsUpsertBulk) SetGoogleAnalyticsID(v string) *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetGoogleAnalyticsID(v)
	})
}

// UpdateGoogleAnalyticsID sets the "google_analytics_id" field to the value that was provided on create.
func (u *SiteSettingsUpsertBulk) UpdateGoogleAnalyticsID() *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateGoogleAnalyticsID()
	})
}

// ClearGoogleAnalyticsID clears the value of the "google_analytics_id" field.
func (u *SiteSettingsUpsertBulk) ClearGoogleAnalyticsID() *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.ClearGoogleAnalyticsID()
	})
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (u *SiteSettingsUpsertBulk) SetMaintenanceMode(v bool) *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetMaintenanceMode(v)
	})
}

// UpdateMaintenanceMode sets the "maintenance_mode" field to the value that was provided on create.
func (u *SiteSettingsUpsertBulk) UpdateMaintenanceMode() *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateMaintenanceMode()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SiteSettingsUpsertBulk) SetUpdatedAt(v time.Time) *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SiteSettingsUpsertBulk) UpdateUpdatedAt() *SiteSettingsUpsertBulk {
	return u.Update(func(s *SiteSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SiteSettingsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SiteSettingsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SiteSettingsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SiteSettingsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
