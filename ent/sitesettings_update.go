// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/sitesettings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SiteSettingsUpdate is the builder for updating SiteSettings entities.
type SiteSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *SiteSettingsMutation
}

// Where appends a list predicates to the SiteSettingsUpdate builder.
func (ssu *SiteSettingsUpdate) Where(ps ...predicate.SiteSettings) *SiteSettingsUpdate {
	ssu.mutation.Where(ps...)
	return ssu
}

// SetSiteTitle sets the "site_title" field.
func (ssu *SiteSettingsUpdate) SetSiteTitle(s string) *SiteSettingsUpdate {
	ssu.mutation.SetSiteTitle(s)
	return ssu
}

// SetNillableSiteTitle sets the "site_title" field if the given value is not nil.
func (ssu *SiteSettingsUpdate) SetNillableSiteTitle(s *string) *SiteSettingsUpdate {
	if s != nil {
		ssu.SetSiteTitle(*s)
	}
	return ssu
}

// SetSiteDescription sets the "site_description" field.
func (ssu *SiteSettingsUpdate) SetSiteDescription(s string) *SiteSettingsUpdate {
	ssu.mutation.SetSiteDescription(s)
	return ssu
}

// SetNillableSiteDescription sets the "site_description" field if the given value is not nil.
func (ssu *SiteSettingsUpdate) SetNillableSiteDescription(s *string) *SiteSettingsUpdate {
	if s != nil {
		ssu.SetSiteDescription(*s)
	}
	return ssu
}

// ClearSiteDescription clears the value of the "site_description" field.
func (ssu *SiteSettingsUpdate) ClearSiteDescription() *SiteSettingsUpdate {
	ssu.mutation.ClearSiteDescription()
	return ssu
}

// SetFooterText sets the "footer_text" field.
func (ssu *SiteSettingsUpdate) SetFooterText(s string) *SiteSettingsUpdate {
	ssu.mutation.SetFooterText(s)
	return ssu
}

// SetNillableFooterText sets the "footer_text" field if the given value is not nil.
func (ssu *SiteSettingsUpdate) SetNillableFooterText(s *string) *SiteSettingsUpdate {
	if s != nil {
		ssu.SetFooterText(*s)
	}
	return ssu
}

// ClearFooterText clears the value of the "footer_text" field.
func (ssu *SiteSettingsUpdate) ClearFooterText() *SiteSettingsUpdate {
	ssu.mutation.ClearFooterText()
	return ssu
}

// SetGoogleAnalyticsID sets the "google_analytics_id" field.
func (ssu *SiteSettingsUpdate) SetGoogleAnalyticsID(s string) *SiteSettingsUpdate {
	ssu.mutation.SetGoogleAnalyticsID(s)
	return ssu
}

// SetNillableGoogleAnalyticsID sets the "google_analytics_id" field if the given value is not nil.
func (ssu *SiteSettingsUpdate) SetNillableGoogleAnalyticsID(s *string) *SiteSettingsUpdate {
	if s != nil {
		ssu.SetGoogleAnalyticsID(*s)
	}
	return ssu
}

// ClearGoogleAnalyticsID clears the value of the "google_analytics_id" field.
func (ssu *SiteSettingsUpdate) ClearGoogleAnalyticsID() *SiteSettingsUpdate {
	ssu.mutation.ClearGoogleAnalyticsID()
	return ssu
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (ssu *SiteSettingsUpdate) SetMaintenanceMode(b bool) *SiteSettingsUpdate {
	ssu.mutation.SetMaintenanceMode(b)
	return ssu
}

// SetNillableMaintenanceMode sets the "maintenance_mode" field if the given value is not nil.
func (ssu *SiteSettingsUpdate) SetNillableMaintenanceMode(b *bool) *SiteSettingsUpdate {
	if b != nil {
		ssu.SetMaintenanceMode(*b)
	}
	return ssu
}

// SetUpdatedAt sets the "updated_at" field.
func (ssu *SiteSettingsUpdate) SetUpdatedAt(t time.Time) *SiteSettingsUpdate {
	ssu.mutation.SetUpdatedAt(t)
	return ssu
}

// Mutation returns the SiteSettingsMutation object of the builder.
func (ssu *SiteSettingsUpdate) Mutation() *SiteSettingsMutation {
	return ssu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ssu *SiteSettingsUpdate) Save(ctx context.Context) (int, error) {
	ssu.defaults()
	return withHooks(ctx, ssu.sqlSave, ssu.mutation, ssu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssu *SiteSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := ssu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ssu *SiteSettingsUpdate) Exec(ctx context.Context) error {
	_, err := ssu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssu *SiteSettingsUpdate) ExecX(ctx context.Context) {
	if err := ssu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssu *SiteSettingsUpdate) defaults() {
	if _, ok := ssu.mutation.UpdatedAt(); !ok {
		v := sitesettings.UpdateDefaultUpdatedAt()
		ssu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssu *SiteSettingsUpdate) check() error {
	if v, ok := ssu.mutation.SiteTitle(); ok {
		if err := sitesettings.SiteTitleValidator(v); err != nil {
			return &ValidationError{Name: "site_title", err: fmt.Errorf(`ent: validator failed for field "SiteSettings.site_title": %w`, err)}
		}
	}
	if v, ok := ssu.mutation.FooterText(); ok {
		if err := sitesettings.FooterTextValidator(v); err != nil {
			return &ValidationError{Name: "footer_text", err: fmt.Errorf(`ent: validator failed for field "SiteSettings.footer_text": %w`, err)}
		}
	}
	if v, ok := ssu.mutation.GoogleAnalyticsID(); ok {
		if err := sitesettings.GoogleAnalyticsIDValidator(v); err != nil {
			return &ValidationError{Name: "google_analytics_id", err: fmt.Errorf(`ent: validator failed for field "SiteSettings.google_analytics_id": %w`, err)}
		}
	}
	return nil
}

func (ssu *SiteSettingsUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ssu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sitesettings.Table, sitesettings.Columns, sqlgraph.NewFieldSpec(sitesettings.FieldID, field.TypeString))
	if ps := ssu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssu.mutation.SiteTitle(); ok {
		_spec.SetField(sitesettings.FieldSiteTitle, field.TypeString, value)
	}
	if value, ok := ssu.mutation.SiteDescription(); ok {
		_spec.SetField(sitesettings.FieldSiteDescription, field.TypeString, value)
	}
	if ssu.mutation.SiteDescriptionCleared() {
		_spec.ClearField(sitesettings.FieldSiteDescription, field.TypeString)
	}
	if value, ok := ssu.mutation.FooterText(); ok {
		_spec.SetField(sitesettings.FieldFooterText, field.TypeString, value)
	}
	if ssu.mutation.FooterTextCleared() {
		_spec.ClearField(sitesettings.FieldFooterText, field.TypeString)
	}
	if value, ok := ssu.mutation.GoogleAnalyticsID(); ok {
		_spec.SetField(sitesettings.FieldGoogleAnalyticsID, field.TypeString, value)
	}
	if ssu.mutation.GoogleAnalyticsIDCleared() {
		_spec.ClearField(sitesettings.FieldGoogleAnalyticsID, field.TypeString)
	}
	if value, ok := ssu.mutation.MaintenanceMode(); ok {
		_spec.SetField(sitesettings.FieldMaintenanceMode, field.TypeBool, value)
	}
	if value, ok := ssu.mutation.UpdatedAt(); ok {
		_spec.SetField(sitesettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ssu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sitesettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ssu.mutation.done = true
	return n, nil
}

// SiteSettingsUpdateOne is the builder for updating a single SiteSettings entity.
type SiteSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SiteSettingsMutation
}

// SetSiteTitle sets the "site_title" field.
func (ssuo *SiteSettingsUpdateOne) SetSiteTitle(s string) *SiteSettingsUpdateOne {
	ssuo.mutation.SetSiteTitle(s)
	return ssuo
}

// SetNillableSiteTitle sets the "site_title" field if the given value is not nil.
func (ssuo *SiteSettingsUpdateOne) SetNillableSiteTitle(s *string) *SiteSettingsUpdateOne {
	if s != nil {
		ssuo.SetSiteTitle(*s)
	}
	return ssuo
}

// SetSiteDescription sets the "site_description" field.
func (ssuo *SiteSettingsUpdateOne) SetSiteDescription(s string) *SiteSettingsUpdateOne {
	ssuo.mutation.SetSiteDescription(s)
	return ssuo
}

// SetNillableSiteDescription sets the "site_description" field if the given value is not nil.
func (ssuo *SiteSettingsUpdateOne) SetNillableSiteDescription(s *string) *SiteSettingsUpdateOne {
	if s != nil {
		ssuo.SetSiteDescription(*s)
	}
	return ssuo
}

// ClearSiteDescription clears the value of the "site_description" field.
func (ssuo *SiteSettingsUpdateOne) ClearSiteDescription() *SiteSettingsUpdateOne {
	ssuo.mutation.ClearSiteDescription()
	return ssuo
}

// SetFooterText sets the "footer_text" field.
func (ssuo *SiteSettingsUpdateOne) SetFooterText(s string) *SiteSettingsUpdateOne {
	ssuo.mutation.SetFooterText(s)
	return ssuo
}

// SetNillableFooterText sets the "footer_text" field if the given value is not nil.
func (ssuo *SiteSettingsUpdateOne) SetNillableFooterText(s *string) *SiteSettingsUpdateOne {
	if s != nil {
		ssuo.SetFooterText(*s)
	}
	return ssuo
}

// ClearFooterText clears the value of the "footer_text" field.
func (ssuo *SiteSettingsUpdateOne) ClearFooterText() *SiteSettingsUpdateOne {
	ssuo.mutation.ClearFooterText()
	return ssuo
}

// SetGoogleAnalyticsID sets the "google_analytics_id" field.
func (ssuo *SiteSettingsUpdateOne) SetGoogleAnalyticsID(s string) *SiteSettingsUpdateOne {
	ssuo.mutation.SetGoogleAnalyticsID(s)
	return ssuo
}

// SetNillableGoogleAnalyticsID sets the "google_analytics_id" field if the given value is not nil.
func (ssuo *SiteSettingsUpdateOne) SetNillableGoogleAnalyticsID(s *string) *SiteSettingsUpdateOne {
	if s != nil {
		ssuo.SetGoogleAnalyticsID(*s)
	}
	return ssuo
}

// ClearGoogleAnalyticsID clears the value of the "google_analytics_id" field.
func (ssuo *SiteSettingsUpdateOne) ClearGoogleAnalyticsID() *SiteSettingsUpdateOne {
	ssuo.mutation.ClearGoogleAnalyticsID()
	return ssuo
}

// SetMaintenanceMode sets the "maintenance_mode" field.
func (ssuo *SiteSettingsUpdateOne) SetMaintenanceMode(b bool) *SiteSettingsUpdateOne {
	ssuo.mutation.SetMaintenanceMode(b)
	return ssuo
}

// SetNillableMaintenanceMode sets the "maintenance_mode" field if the given value is not nil.
func (ssuo *SiteSettingsUpdateOne) SetNillableMaintenanceMode(b *bool) *SiteSettingsUpdateOne {
	if b != nil {
		ssuo.SetMaintenanceMode(*b)
	}
	return ssuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ssuo *SiteSettingsUpdateOne) SetUpdatedAt(t time.Time) *SiteSettingsUpdateOne {
	ssuo.mutation.SetUpdatedAt(t)
	return ssuo
}

// Mutation returns the SiteSettingsMutation object of the builder.
func (ssuo *SiteSettingsUpdateOne) Mutation() *SiteSettingsMutation {
	return ssuo.mutation
}

// Where appends a list predicates to the SiteSettingsUpdate builder.
func (ssuo *SiteSettingsUpdateOne) Where(ps ...predicate.SiteSettings) *SiteSettingsUpdateOne {
	ssuo.mutation.Where(ps...)
	return ssuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ssuo *SiteSettingsUpdateOne) Select(field string, fields ...string) *SiteSettingsUpdateOne {
	ssuo.fields = append([]string{field}, fields...)
	return ssuo
}

// Save executes the query and returns the updated SiteSettings entity.
func (ssuo *SiteSettingsUpdateOne) Save(ctx context.Context) (*SiteSettings, error) {
	ssuo.defaults()
	return withHooks(ctx, ssuo.sqlSave, ssuo.mutation, ssuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssuo *SiteSettingsUpdateOne) SaveX(ctx context.Context) *SiteSettings {
	node, err := ssuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ssuo *SiteSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := ssuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssuo *SiteSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := ssuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssuo *SiteSettingsUpdateOne) defaults() {
	if _, ok := ssuo.mutation.UpdatedAt(); !ok {
		v := sitesettings.UpdateDefaultUpdatedAt()
		ssuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssuo *SiteSettingsUpdateOne) check() error {
	if v, ok := ssuo.mutation.SiteTitle(); ok {
		if err := sitesettings.SiteTitleValidator(v); err != nil {
			return &ValidationError{Name: "site_title", err: fmt.Errorf(`ent: validator failed for field "SiteSettings.site_title": %w`, err)}
		}
	}
	if v, ok := ssuo.mutation.FooterText(); ok {
		if err := sitesettings.FooterTextValidator(v); err != nil {
			return &ValidationError{Name: "footer_text", err: fmt.Errorf(`ent: validator failed for field "SiteSettings.footer_text": %w`, err)}
		}
	}
	if v, ok := ssuo.mutation.GoogleAnalyticsID(); ok {
		if err := sitesettings.GoogleAnalyticsIDValidator(v); err != nil {
			return &ValidationError{Name: "google_analytics_id", err: fmt.Errorf(`ent: validator failed for field "SiteSettings.google_analytics_id": %w`, err)}
		}
	}
	return nil
}

func (ssuo *SiteSettingsUpdateOne) sqlSave(ctx context.Context) (_node *SiteSettings, err error) {
	if err := ssuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sitesettings.Table, sitesettings.Columns, sqlgraph.NewFieldSpec(sitesettings.FieldID, field.TypeString))
	id, ok := ssuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SiteSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ssuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sitesettings.FieldID)
		for _, f := range fields {
			if !sitesettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sitesettings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ssuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssuo.mutation.SiteTitle(); ok {
		_spec.SetField(sitesettings.FieldSiteTitle, field.TypeString, value)
	}
	if value, ok := ssuo.mutation.SiteDescription(); ok {
		_spec.SetField(sitesettings.FieldSiteDescription, field.TypeString, value)
	}
	if ssuo.mutation.SiteDescriptionCleared() {
		_spec.ClearField(sitesettings.FieldSiteDescription, field.TypeString)
	}
	if value, ok := ssuo.mutation.FooterText(); ok {
		_spec.SetField(sitesettings.FieldFooterText, field.TypeString, value)
	}
	if ssuo.mutation.FooterTextCleared() {
		_spec.ClearField(sitesettings.FieldFooterText, field.TypeString)
	}
	if value, ok := ssuo.mutation.GoogleAnalyticsID(); ok {
		_spec.SetField(sitesettings.FieldGoogleAnalyticsID, field.TypeString, value)
	}
	if ssuo.mutation.GoogleAnalyticsIDCleared() {
		_spec.ClearField(sitesettings.FieldGoogleAnalyticsID, field.TypeString)
	}
	if value, ok := ssuo.mutation.MaintenanceMode(); ok {
		_spec.SetField(sitesettings.FieldMaintenanceMode, field.TypeBool, value)
	}
	if value, ok := ssuo.mutation.UpdatedAt(); ok {
		_spec.SetField(sitesettings.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SiteSettings{config: ssuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ssuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sitesettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ssuo.mutation.done = true
	return _node, nil
}
