// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/sitesettings"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SiteSettingsDelete is the builder for deleting a SiteSettings entity.
type SiteSettingsDelete struct {
	config
	hooks    []Hook
	mutation *SiteSettingsMutation
}

// Where appends a list predicates to the SiteSettingsDelete builder.
func (ssd *SiteSettingsDelete) Where(ps ...predicate.SiteSettings) *SiteSettingsDelete {
	ssd.mutation.Where(ps...)
	return ssd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ssd *SiteSettingsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ssd.sqlExec, ssd.mutation, ssd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ssd *SiteSettingsDelete) ExecX(ctx context.Context) int {
	n, err := ssd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ssd *SiteSettingsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sitesettings.Table, sqlgraph.NewFieldSpec(sitesettings.FieldID, field.TypeString))
	if ps := ssd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ssd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ssd.mutation.done = true
	return affected, err
}

// SiteSettingsDeleteOne is the builder for deleting a single SiteSettings entity.
type SiteSettingsDeleteOne struct {
	ssd *SiteSettingsDelete
}

// Where appends a list predicates to the SiteSettingsDelete builder.
func (ssdo *SiteSettingsDeleteOne) Where(ps ...predicate.SiteSettings) *SiteSettingsDeleteOne {
	ssdo.ssd.mutation.Where(ps...)
	return ssdo
}

// Exec executes the deletion query.
func (ssdo *SiteSettingsDeleteOne) Exec(ctx context.Context) error {
	n, err := ssdo.ssd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sitesettings.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ssdo *SiteSettingsDeleteOne) ExecX(ctx context.Context) {
	if err := ssdo.Exec(ctx); err != nil {
		panic(err)
	}
}
