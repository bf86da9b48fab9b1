// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
)

// PublishTrackerUpdate is the builder for updating PublishTracker entities.
type PublishTrackerUpdate struct {
	config
	hooks    []Hook
	mutation *PublishTrackerMutation
}

// Where appends a list predicates to the PublishTrackerUpdate builder.
func (_u *PublishTrackerUpdate) Where(ps ...predicate.PublishTracker) *PublishTrackerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PublishTrackerUpdate) SetUpdatedAt(v time.Time) *PublishTrackerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecitationID sets the "recitation_id" field.
func (_u *PublishTrackerUpdate) SetRecitationID(v int) *PublishTrackerUpdate {
	_u.mutation.SetRecitationID(v)
	return _u
}

// SetNillableRecitationID sets the "recitation_id" field if the given value is not nil.
func (_u *PublishTrackerUpdate) SetNillableRecitationID(v *int) *PublishTrackerUpdate {
	if v != nil {
		_u.SetRecitationID(*v)
	}
	return _u
}

// SetReplace sets the "replace" field.
func (_u *PublishTrackerUpdate) SetReplace(v bool) *PublishTrackerUpdate {
	_u.mutation.SetReplace(v)
	return _u
}

// SetNillableReplace sets the "replace" field if the given value is not nil.
func (_u *PublishTrackerUpdate) SetNillableReplace(v *bool) *PublishTrackerUpdate {
	if v != nil {
		_u.SetReplace(*v)
	}
	return _u
}

// SetXMLCopied sets the "xml_copied" field.
func (_u *PublishTrackerUpdate) SetXMLCopied(v bool) *PublishTrackerUpdate {
	_u.mutation.SetXMLCopied(v)
	return _u
}

// SetNillableXMLCopied sets the "xml_copied" field if the given value is not nil.
func (_u *PublishTrackerUpdate) SetNillableXMLCopied(v *bool) *PublishTrackerUpdate {
	if v != nil {
		_u.SetXMLCopied(*v)
	}
	return _u
}

// SetMp3Copied sets the "mp3_copied" field.
func (_u *PublishTrackerUpdate) SetMp3Copied(v bool) *PublishTrackerUpdate {
	_u.mutation.SetMp3Copied(v)
	return _u
}

// SetNillableMp3Copied sets the "mp3_copied" field if the given value is not nil.
func (_u *PublishTrackerUpdate) SetNillableMp3Copied(v *bool) *PublishTrackerUpdate {
	if v != nil {
		_u.SetMp3Copied(*v)
	}
	return _u
}

// SetFirstDbUpdated sets the "first_db_updated" field.
func (_u *PublishTrackerUpdate) SetFirstDbUpdated(v bool) *PublishTrackerUpdate {
	_u.mutation.SetFirstDbUpdated(v)
	return _u
}

// SetNillableFirstDbUpdated sets the "first_db_updated" field if the given value is not nil.
func (_u *PublishTrackerUpdate) SetNillableFirstDbUpdated(v *bool) *PublishTrackerUpdate {
	if v != nil {
		_u.SetFirstDbUpdated(*v)
	}
	return _u
}

// SetSecondDbUpdated sets the "second_db_updated" field.
func (_u *PublishTrackerUpdate) SetSecondDbUpdated(v bool) *PublishTrackerUpdate {
	_u.mutation.SetSecondDbUpdated(v)
	return _u
}

// SetNillableSecondDbUpdated sets the "second_db_updated" field if the given value is not nil.
func (_u *PublishTrackerUpdate) SetNillableSecondDbUpdated(v *bool) *PublishTrackerUpdate {
	if v != nil {
		_u.SetSecondDbUpdated(*v)
	}
	return _u
}

// SetFinished sets the "finished" field.
func (_u *PublishTrackerUpdate) SetFinished(v bool) *PublishTrackerUpdate {
	_u.mutation.SetFinished(v)
	return _u
}

// SetNillableFinished sets the "finished" field if the given value is not nil.
func (_u *PublishTrackerUpdate) SetNillableFinished(v *bool) *PublishTrackerUpdate {
	if v != nil {
		_u.SetFinished(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PublishTrackerUpdate) SetLastError(v string) *PublishTrackerUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PublishTrackerUpdate) SetNillableLastError(v *string) *PublishTrackerUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PublishTrackerUpdate) SetFinishedAt(v time.Time) *PublishTrackerUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PublishTrackerUpdate) SetNillableFinishedAt(v *time.Time) *PublishTrackerUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PublishTrackerUpdate) ClearFinishedAt() *PublishTrackerUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRecitation sets the "recitation" edge to the Recitation entity.
func (_u *PublishTrackerUpdate) SetRecitation(v *Recitation) *PublishTrackerUpdate {
	return _u.SetRecitationID(v.ID)
}

// Mutation returns the PublishTrackerMutation object of the builder.
func (_u *PublishTrackerUpdate) Mutation() *PublishTrackerMutation {
	return _u.mutation
}

// ClearRecitation clears the "recitation" edge to the Recitation entity.
func (_u *PublishTrackerUpdate) ClearRecitation() *PublishTrackerUpdate {
	_u.mutation.ClearRecitation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PublishTrackerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PublishTrackerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PublishTrackerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PublishTrackerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PublishTrackerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := publishtracker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PublishTrackerUpdate) check() error {
	if _u.mutation.RecitationCleared() && len(_u.mutation.RecitationIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "PublishTracker.recitation"`)
	}
	return nil
}

func (_u *PublishTrackerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(publishtracker.Table, publishtracker.Columns, sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(publishtracker.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Replace(); ok {
		_spec.SetField(publishtracker.FieldReplace, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XMLCopied(); ok {
		_spec.SetField(publishtracker.FieldXMLCopied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Mp3Copied(); ok {
		_spec.SetField(publishtracker.FieldMp3Copied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FirstDbUpdated(); ok {
		_spec.SetField(publishtracker.FieldFirstDbUpdated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SecondDbUpdated(); ok {
		_spec.SetField(publishtracker.FieldSecondDbUpdated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Finished(); ok {
		_spec.SetField(publishtracker.FieldFinished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(publishtracker.FieldLastError, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(publishtracker.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(publishtracker.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.RecitationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   publishtracker.RecitationTable,
			Columns: []string{publishtracker.RecitationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recitation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecitationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   publishtracker.RecitationTable,
			Columns: []string{publishtracker.RecitationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recitation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{publishtracker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PublishTrackerUpdateOne is the builder for updating a single PublishTracker entity.
type PublishTrackerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PublishTrackerMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PublishTrackerUpdateOne) SetUpdatedAt(v time.Time) *PublishTrackerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecitationID sets the "recitation_id" field.
func (_u *PublishTrackerUpdateOne) SetRecitationID(v int) *PublishTrackerUpdateOne {
	_u.mutation.SetRecitationID(v)
	return _u
}

// SetNillableRecitationID sets the "recitation_id" field if the given value is not nil.
func (_u *PublishTrackerUpdateOne) SetNillableRecitationID(v *int) *PublishTrackerUpdateOne {
	if v != nil {
		_u.SetRecitationID(*v)
	}
	return _u
}

// SetReplace sets the "replace" field.
func (_u *PublishTrackerUpdateOne) SetReplace(v bool) *PublishTrackerUpdateOne {
	_u.mutation.SetReplace(v)
	return _u
}

// SetNillableReplace sets the "replace" field if the given value is not nil.
func (_u *PublishTrackerUpdateOne) SetNillableReplace(v *bool) *PublishTrackerUpdateOne {
	if v != nil {
		_u.SetReplace(*v)
	}
	return _u
}

// SetXMLCopied sets the "xml_copied" field.
func (_u *PublishTrackerUpdateOne) SetXMLCopied(v bool) *PublishTrackerUpdateOne {
	_u.mutation.SetXMLCopied(v)
	return _u
}

// SetNillableXMLCopied sets the "xml_copied" field if the given value is not nil.
func (_u *PublishTrackerUpdateOne) SetNillableXMLCopied(v *bool) *PublishTrackerUpdateOne {
	if v != nil {
		_u.SetXMLCopied(*v)
	}
	return _u
}

// SetMp3Copied sets the "mp3_copied" field.
func (_u *PublishTrackerUpdateOne) SetMp3Copied(v bool) *PublishTrackerUpdateOne {
	_u.mutation.SetMp3Copied(v)
	return _u
}

// SetNillableMp3Copied sets the "mp3_copied" field if the given value is not nil.
func (_u *PublishTrackerUpdateOne) SetNillableMp3Copied(v *bool) *PublishTrackerUpdateOne {
	if v != nil {
		_u.SetMp3Copied(*v)
	}
	return _u
}

// SetFirstDbUpdated sets the "first_db_updated" field.
func (_u *PublishTrackerUpdateOne) SetFirstDbUpdated(v bool) *PublishTrackerUpdateOne {
	_u.mutation.SetFirstDbUpdated(v)
	return _u
}

// SetNillableFirstDbUpdated sets the "first_db_updated" field if the given value is not nil.
func (_u *PublishTrackerUpdateOne) SetNillableFirstDbUpdated(v *bool) *PublishTrackerUpdateOne {
	if v != nil {
		_u.SetFirstDbUpdated(*v)
	}
	return _u
}

// SetSecondDbUpdated sets the "second_db_updated" field.
func (_u *PublishTrackerUpdateOne) SetSecondDbUpdated(v bool) *PublishTrackerUpdateOne {
	_u.mutation.SetSecondDbUpdated(v)
	return _u
}

// SetNillableSecondDbUpdated sets the "second_db_updated" field if the given value is not nil.
func (_u *PublishTrackerUpdateOne) SetNillableSecondDbUpdated(v *bool) *PublishTrackerUpdateOne {
	if v != nil {
		_u.SetSecondDbUpdated(*v)
	}
	return _u
}

// SetFinished sets the "finished" field.
func (_u *PublishTrackerUpdateOne) SetFinished(v bool) *PublishTrackerUpdateOne {
	_u.mutation.SetFinished(v)
	return _u
}

// SetNillableFinished sets the "finished" field if the given value is not nil.
func (_u *PublishTrackerUpdateOne) SetNillableFinished(v *bool) *PublishTrackerUpdateOne {
	if v != nil {
		_u.SetFinished(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PublishTrackerUpdateOne) SetLastError(v string) *PublishTrackerUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PublishTrackerUpdateOne) SetNillableLastError(v *string) *PublishTrackerUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PublishTrackerUpdateOne) SetFinishedAt(v time.Time) *PublishTrackerUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PublishTrackerUpdateOne) SetNillableFinishedAt(v *time.Time) *PublishTrackerUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PublishTrackerUpdateOne) ClearFinishedAt() *PublishTrackerUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRecitation sets the "recitation" edge to the Recitation entity.
func (_u *PublishTrackerUpdateOne) SetRecitation(v *Recitation) *PublishTrackerUpdateOne {
	return _u.SetRecitationID(v.ID)
}

// Mutation returns the PublishTrackerMutation object of the builder.
func (_u *PublishTrackerUpdateOne) Mutation() *PublishTrackerMutation {
	return _u.mutation
}

// ClearRecitation clears the "recitation" edge to the Recitation entity.
func (_u *PublishTrackerUpdateOne) ClearRecitation() *PublishTrackerUpdateOne {
	_u.mutation.ClearRecitation()
	return _u
}

// Where appends a list predicates to the PublishTrackerUpdate builder.
func (_u *PublishTrackerUpdateOne) Where(ps ...predicate.PublishTracker) *PublishTrackerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PublishTrackerUpdateOne) Select(field string, fields ...string) *PublishTrackerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PublishTracker entity.
func (_u *PublishTrackerUpdateOne) Save(ctx context.Context) (*PublishTracker, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PublishTrackerUpdateOne) SaveX(ctx context.Context) *PublishTracker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PublishTrackerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PublishTrackerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PublishTrackerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := publishtracker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PublishTrackerUpdateOne) check() error {
	if _u.mutation.RecitationCleared() && len(_u.mutation.RecitationIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "PublishTracker.recitation"`)
	}
	return nil
}

func (_u *PublishTrackerUpdateOne) sqlSave(ctx context.Context) (_node *PublishTracker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(publishtracker.Table, publishtracker.Columns, sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "PublishTracker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, publishtracker.FieldID)
		for _, f := range fields {
			if !publishtracker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != publishtracker.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(publishtracker.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Replace(); ok {
		_spec.SetField(publishtracker.FieldReplace, field.TypeBool, value)
	}
	if value, ok := _u.mutation.XMLCopied(); ok {
		_spec.SetField(publishtracker.FieldXMLCopied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Mp3Copied(); ok {
		_spec.SetField(publishtracker.FieldMp3Copied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FirstDbUpdated(); ok {
		_spec.SetField(publishtracker.FieldFirstDbUpdated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SecondDbUpdated(); ok {
		_spec.SetField(publishtracker.FieldSecondDbUpdated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Finished(); ok {
		_spec.SetField(publishtracker.FieldFinished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(publishtracker.FieldLastError, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(publishtracker.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(publishtracker.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.RecitationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   publishtracker.RecitationTable,
			Columns: []string{publishtracker.RecitationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recitation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecitationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   publishtracker.RecitationTable,
			Columns: []string{publishtracker.RecitationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recitation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PublishTracker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{publishtracker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
