// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/project"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (pu *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetTitle sets the "title" field.
func (pu *ProjectUpdate) SetTitle(s string) *ProjectUpdate {
	pu.mutation.SetTitle(s)
	return pu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableTitle(s *string) *ProjectUpdate {
	if s != nil {
		pu.SetTitle(*s)
	}
	return pu
}

// SetDescription sets the "description" field.
func (pu *ProjectUpdate) SetDescription(s string) *ProjectUpdate {
	pu.mutation.SetDescription(s)
	return pu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableDescription(s *string) *ProjectUpdate {
	if s != nil {
		pu.SetDescription(*s)
	}
	return pu
}

// SetDetailedDescription sets the "detailed_description" field.
func (pu *ProjectUpdate) SetDetailedDescription(s string) *ProjectUpdate {
	pu.mutation.SetDetailedDescription(s)
	return pu
}

// SetNillableDetailedDescription sets the "detailed_description" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableDetailedDescription(s *string) *ProjectUpdate {
	if s != nil {
		pu.SetDetailedDescription(*s)
	}
	return pu
}

// ClearDetailedDescription clears the value of the "detailed_description" field.
func (pu *ProjectUpdate) ClearDetailedDescription() *ProjectUpdate {
	pu.mutation.ClearDetailedDescription()
	return pu
}

// SetTechnologies sets the "technologies" field.
func (pu *ProjectUpdate) SetTechnologies(s string) *ProjectUpdate {
	pu.mutation.SetTechnologies(s)
	return pu
}

// SetNillableTechnologies sets the "technologies" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableTechnologies(s *string) *ProjectUpdate {
	if s != nil {
		pu.SetTechnologies(*s)
	}
	return pu
}

// SetStatus sets the "status" field.
func (pu *ProjectUpdate) SetStatus(pr project.Status) *ProjectUpdate {
	pu.mutation.SetStatus(pr)
	return pu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableStatus(pr *project.Status) *ProjectUpdate {
	if pr != nil {
		pu.SetStatus(*pr)
	}
	return pu
}

// SetStartDate sets the "start_date" field.
func (pu *ProjectUpdate) SetStartDate(t time.Time) *ProjectUpdate {
	pu.mutation.SetStartDate(t)
	return pu
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableStartDate(t *time.Time) *ProjectUpdate {
	if t != nil {
		pu.SetStartDate(*t)
	}
	return pu
}

// SetEndDate sets the "end_date" field.
func (pu *ProjectUpdate) SetEndDate(t time.Time) *ProjectUpdate {
	pu.mutation.SetEndDate(t)
	return pu
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableEndDate(t *time.Time) *ProjectUpdate {
	if t != nil {
		pu.SetEndDate(*t)
	}
	return pu
}

// ClearEndDate clears the value of the "end_date" field.
func (pu *ProjectUpdate) ClearEndDate() *ProjectUpdate {
	pu.mutation.ClearEndDate()
	return pu
}

// SetProjectURL sets the "project_url" field.
func (pu *ProjectUpdate) SetProjectURL(s string) *ProjectUpdate {
	pu.mutation.SetProjectURL(s)
	return pu
}

// SetNillableProjectURL sets the "project_url" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableProjectURL(s *string) *ProjectUpdate {
	if s != nil {
		pu.SetProjectURL(*s)
	}
	return pu
}

// ClearProjectURL clears the value of the "project_url" field.
func (pu *ProjectUpdate) ClearProjectURL() *ProjectUpdate {
	pu.mutation.ClearProjectURL()
	return pu
}

// SetGithubURL sets the "github_url" field.
func (pu *ProjectUpdate) SetGithubURL(s string) *ProjectUpdate {
	pu.mutation.SetGithubURL(s)
	return pu
}

// SetNillableGithubURL sets the "github_url" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableGithubURL(s *string) *ProjectUpdate {
	if s != nil {
		pu.SetGithubURL(*s)
	}
	return pu
}

// ClearGithubURL clears the value of the "github_url" field.
func (pu *ProjectUpdate) ClearGithubURL() *ProjectUpdate {
	pu.mutation.ClearGithubURL()
	return pu
}

// SetImage sets the "image" field.
func (pu *ProjectUpdate) SetImage(s string) *ProjectUpdate {
	pu.mutation.SetImage(s)
	return pu
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableImage(s *string) *ProjectUpdate {
	if s != nil {
		pu.SetImage(*s)
	}
	return pu
}

// ClearImage clears the value of the "image" field.
func (pu *ProjectUpdate) ClearImage() *ProjectUpdate {
	pu.mutation.ClearImage()
	return pu
}

// SetIsFeatured sets the "is_featured" field.
func (pu *ProjectUpdate) SetIsFeatured(b bool) *ProjectUpdate {
	pu.mutation.SetIsFeatured(b)
	return pu
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableIsFeatured(b *bool) *ProjectUpdate {
	if b != nil {
		pu.SetIsFeatured(*b)
	}
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *ProjectUpdate) SetUpdatedAt(t time.Time) *ProjectUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// Mutation returns the ProjectMutation object of the builder.
func (pu *ProjectUpdate) Mutation() *ProjectMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *ProjectUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *ProjectUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *ProjectUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *ProjectUpdate) check() error {
	if v, ok := pu.mutation.Title(); ok {
		if err := project.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Project.title": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Technologies(); ok {
		if err := project.TechnologiesValidator(v); err != nil {
			return &ValidationError{Name: "technologies", err: fmt.Errorf(`ent: validator failed for field "Project.technologies": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	return nil
}

func (pu *ProjectUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.Title(); ok {
		_spec.SetField(project.FieldTitle, field.TypeString, value)
	}
	if value, ok := pu.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if value, ok := pu.mutation.DetailedDescription(); ok {
		_spec.SetField(project.FieldDetailedDescription, field.TypeString, value)
	}
	if pu.mutation.DetailedDescriptionCleared() {
		_spec.ClearField(project.FieldDetailedDescription, field.TypeString)
	}
	if value, ok := pu.mutation.Technologies(); ok {
		_spec.SetField(project.FieldTechnologies, field.TypeString, value)
	}
	if value, ok := pu.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := pu.mutation.StartDate(); ok {
		_spec.SetField(project.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := pu.mutation.EndDate(); ok {
		_spec.SetField(project.FieldEndDate, field.TypeTime, value)
	}
	if pu.mutation.EndDateCleared() {
		_spec.ClearField(project.FieldEndDate, field.TypeTime)
	}
	if value, ok := pu.mutation.ProjectURL(); ok {
		_spec.SetField(project.FieldProjectURL, field.TypeString, value)
	}
	if pu.mutation.ProjectURLCleared() {
		_spec.ClearField(project.FieldProjectURL, field.TypeString)
	}
	if value, ok := pu.mutation.GithubURL(); ok {
		_spec.SetField(project.FieldGithubURL, field.TypeString, value)
	}
	if pu.mutation.GithubURLCleared() {
		_spec.ClearField(project.FieldGithubURL, field.TypeString)
	}
	if value, ok := pu.mutation.Image(); ok {
		_spec.SetField(project.FieldImage, field.TypeString, value)
	}
	if pu.mutation.ImageCleared() {
		_spec.ClearField(project.FieldImage, field.TypeString)
	}
	if value, ok := pu.mutation.IsFeatured(); ok {
		_spec.SetField(project.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetTitle sets the "title" field.
func (puo *ProjectUpdateOne) SetTitle(s string) *ProjectUpdateOne {
	puo.mutation.SetTitle(s)
	return puo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableTitle(s *string) *ProjectUpdateOne {
	if s != nil {
		puo.SetTitle(*s)
	}
	return puo
}

// SetDescription sets the "description" field.
func (puo *ProjectUpdateOne) SetDescription(s string) *ProjectUpdateOne {
	puo.mutation.SetDescription(s)
	return puo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableDescription(s *string) *ProjectUpdateOne {
	if s != nil {
		puo.SetDescription(*s)
	}
	return puo
}

// SetDetailedDescription sets the "detailed_description" field.
func (puo *ProjectUpdateOne) SetDetailedDescription(s string) *ProjectUpdateOne {
	puo.mutation.SetDetailedDescription(s)
	return puo
}

// SetNillableDetailedDescription sets the "detailed_description" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableDetailedDescription(s *string) *ProjectUpdateOne {
	if s != nil {
		puo.SetDetailedDescription(*s)
	}
	return puo
}

// ClearDetailedDescription clears the value of the "detailed_description" field.
func (puo *ProjectUpdateOne) ClearDetailedDescription() *ProjectUpdateOne {
	puo.mutation.ClearDetailedDescription()
	return puo
}

// SetTechnologies sets the "technologies" field.
func (puo *ProjectUpdateOne) SetTechnologies(s string) *ProjectUpdateOne {
	puo.mutation.SetTechnologies(s)
	return puo
}

// SetNillableTechnologies sets the "technologies" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableTechnologies(s *string) *ProjectUpdateOne {
	if s != nil {
		puo.SetTechnologies(*s)
	}
	return puo
}

// SetStatus sets the "status" field.
func (puo *ProjectUpdateOne) SetStatus(pr project.Status) *ProjectUpdateOne {
	puo.mutation.SetStatus(pr)
	return puo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableStatus(pr *project.Status) *ProjectUpdateOne {
	if pr != nil {
		puo.SetStatus(*pr)
	}
	return puo
}

// SetStartDate sets the "start_date" field.
func (puo *ProjectUpdateOne) SetStartDate(t time.Time) *ProjectUpdateOne {
	puo.mutation.SetStartDate(t)
	return puo
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableStartDate(t *time.Time) *ProjectUpdateOne {
	if t != nil {
		puo.SetStartDate(*t)
	}
	return puo
}

// SetEndDate sets the "end_date" field.
func (puo *ProjectUpdateOne) SetEndDate(t time.Time) *ProjectUpdateOne {
	puo.mutation.SetEndDate(t)
	return puo
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableEndDate(t *time.Time) *ProjectUpdateOne {
	if t != nil {
		puo.SetEndDate(*t)
	}
	return puo
}

// ClearEndDate clears the value of the "end_date" field.
func (puo *ProjectUpdateOne) ClearEndDate() *ProjectUpdateOne {
	puo.mutation.ClearEndDate()
	return puo
}

// SetProjectURL sets the "project_url" field.
func (puo *ProjectUpdateOne) SetProjectURL(s string) *ProjectUpdateOne {
	puo.mutation.SetProjectURL(s)
	return puo
}

// SetNillableProjectURL sets the "project_url" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableProjectURL(s *string) *ProjectUpdateOne {
	if s != nil {
		puo.SetProjectURL(*s)
	}
	return puo
}

// ClearProjectURL clears the value of the "project_url" field.
func (puo *ProjectUpdateOne) ClearProjectURL() *ProjectUpdateOne {
	puo.mutation.ClearProjectURL()
	return puo
}

// SetGithubURL sets the "github_url" field.
func (puo *ProjectUpdateOne) SetGithubURL(s string) *ProjectUpdateOne {
	puo.mutation.SetGithubURL(s)
	return puo
}

// SetNillableGithubURL sets the "github_url" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableGithubURL(s *string) *ProjectUpdateOne {
	if s != nil {
		puo.SetGithubURL(*s)
	}
	return puo
}

// ClearGithubURL clears the value of the "github_url" field.
func (puo *ProjectUpdateOne) ClearGithubURL() *ProjectUpdateOne {
	puo.mutation.ClearGithubURL()
	return puo
}

// SetImage sets the "image" field.
func (puo *ProjectUpdateOne) SetImage(s string) *ProjectUpdateOne {
	puo.mutation.SetImage(s)
	return puo
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableImage(s *string) *ProjectUpdateOne {
	if s != nil {
		puo.SetImage(*s)
	}
	return puo
}

// ClearImage clears the value of the "image" field.
func (puo *ProjectUpdateOne) ClearImage() *ProjectUpdateOne {
	puo.mutation.ClearImage()
	return puo
}

// SetIsFeatured sets the "is_featured" field.
func (puo *ProjectUpdateOne) SetIsFeatured(b bool) *ProjectUpdateOne {
	puo.mutation.SetIsFeatured(b)
	return puo
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableIsFeatured(b *bool) *ProjectUpdateOne {
	if b != nil {
		puo.SetIsFeatured(*b)
	}
	return puo
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *ProjectUpdateOne) SetUpdatedAt(t time.Time) *ProjectUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// Mutation returns the ProjectMutation object of the builder.
func (puo *ProjectUpdateOne) Mutation() *ProjectMutation {
	return puo.mutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (puo *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Project entity.
func (puo *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *ProjectUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *ProjectUpdateOne) check() error {
	if v, ok := puo.mutation.Title(); ok {
		if err := project.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Project.title": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Technologies(); ok {
		if err := project.TechnologiesValidator(v); err != nil {
			return &ValidationError{Name: "technologies", err: fmt.Errorf(`ent: validator failed for field "Project.technologies": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	return nil
}

func (puo *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := puo.mutation.Title(); ok {
		_spec.SetField(project.FieldTitle, field.TypeString, value)
	}
	if value, ok := puo.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if value, ok := puo.mutation.DetailedDescription(); ok {
		_spec.SetField(project.FieldDetailedDescription, field.TypeString, value)
	}
	if puo.mutation.DetailedDescriptionCleared() {
		_spec.ClearField(project.FieldDetailedDescription, field.TypeString)
	}
	if value, ok := puo.mutation.Technologies(); ok {
		_spec.SetField(project.FieldTechnologies, field.TypeString, value)
	}
	if value, ok := puo.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := puo.mutation.StartDate(); ok {
		_spec.SetField(project.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := puo.mutation.EndDate(); ok {
		_spec.SetField(project.FieldEndDate, field.TypeTime, value)
	}
	if puo.mutation.EndDateCleared() {
		_spec.ClearField(project.FieldEndDate, field.TypeTime)
	}
	if value, ok := puo.mutation.ProjectURL(); ok {
		_spec.SetField(project.FieldProjectURL, field.TypeString, value)
	}
	if puo.mutation.ProjectURLCleared() {
		_spec.ClearField(project.FieldProjectURL, field.TypeString)
	}
	if value, ok := puo.mutation.GithubURL(); ok {
		_spec.SetField(project.FieldGithubURL, field.TypeString, value)
	}
	if puo.mutation.GithubURLCleared() {
		_spec.ClearField(project.FieldGithubURL, field.TypeString)
	}
	if value, ok := puo.mutation.Image(); ok {
		_spec.SetField(project.FieldImage, field.TypeString, value)
	}
	if puo.mutation.ImageCleared() {
		_spec.ClearField(project.FieldImage, field.TypeString)
	}
	if value, ok := puo.mutation.IsFeatured(); ok {
		_spec.SetField(project.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Project{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
