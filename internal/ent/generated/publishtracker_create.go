// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	ulid "github.com/oklog/ulid/v2"
)

// PublishTrackerCreate is the builder for creating a PublishTracker entity.
type PublishTrackerCreate struct {
	config
	mutation *PublishTrackerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PublishTrackerCreate) SetCreatedAt(v time.Time) *PublishTrackerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableCreatedAt(v *time.Time) *PublishTrackerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PublishTrackerCreate) SetUpdatedAt(v time.Time) *PublishTrackerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableUpdatedAt(v *time.Time) *PublishTrackerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRecitationID sets the "recitation_id" field.
func (_c *PublishTrackerCreate) SetRecitationID(v int) *PublishTrackerCreate {
	_c.mutation.SetRecitationID(v)
	return _c
}

// SetReplace sets the "replace" field.
func (_c *PublishTrackerCreate) SetReplace(v bool) *PublishTrackerCreate {
	_c.mutation.SetReplace(v)
	return _c
}

// SetNillableReplace sets the "replace" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableReplace(v *bool) *PublishTrackerCreate {
	if v != nil {
		_c.SetReplace(*v)
	}
	return _c
}

// SetXMLCopied sets the "xml_copied" field.
func (_c *PublishTrackerCreate) SetXMLCopied(v bool) *PublishTrackerCreate {
	_c.mutation.SetXMLCopied(v)
	return _c
}

// SetNillableXMLCopied sets the "xml_copied" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableXMLCopied(v *bool) *PublishTrackerCreate {
	if v != nil {
		_c.SetXMLCopied(*v)
	}
	return _c
}

// SetMp3Copied sets the "mp3_copied" field.
func (_c *PublishTrackerCreate) SetMp3Copied(v bool) *PublishTrackerCreate {
	_c.mutation.SetMp3Copied(v)
	return _c
}

// SetNillableMp3Copied sets the "mp3_copied" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableMp3Copied(v *bool) *PublishTrackerCreate {
	if v != nil {
		_c.SetMp3Copied(*v)
	}
	return _c
}

// SetFirstDbUpdated sets the "first_db_updated" field.
func (_c *PublishTrackerCreate) SetFirstDbUpdated(v bool) *PublishTrackerCreate {
	_c.mutation.SetFirstDbUpdated(v)
	return _c
}

// SetNillableFirstDbUpdated sets the "first_db_updated" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableFirstDbUpdated(v *bool) *PublishTrackerCreate {
	if v != nil {
		_c.SetFirstDbUpdated(*v)
	}
	return _c
}

// SetSecondDbUpdated sets the "second_db_updated" field.
func (_c *PublishTrackerCreate) SetSecondDbUpdated(v bool) *PublishTrackerCreate {
	_c.mutation.SetSecondDbUpdated(v)
	return _c
}

// SetNillableSecondDbUpdated sets the "second_db_updated" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableSecondDbUpdated(v *bool) *PublishTrackerCreate {
	if v != nil {
		_c.SetSecondDbUpdated(*v)
	}
	return _c
}

// SetFinished sets the "finished" field.
func (_c *PublishTrackerCreate) SetFinished(v bool) *PublishTrackerCreate {
	_c.mutation.SetFinished(v)
	return _c
}

// SetNillableFinished sets the "finished" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableFinished(v *bool) *PublishTrackerCreate {
	if v != nil {
		_c.SetFinished(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PublishTrackerCreate) SetLastError(v string) *PublishTrackerCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableLastError(v *string) *PublishTrackerCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *PublishTrackerCreate) SetFinishedAt(v time.Time) *PublishTrackerCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableFinishedAt(v *time.Time) *PublishTrackerCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PublishTrackerCreate) SetID(v ulid.ULID) *PublishTrackerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PublishTrackerCreate) SetNillableID(v *ulid.ULID) *PublishTrackerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRecitation sets the "recitation" edge to the Recitation entity.
func (_c *PublishTrackerCreate) SetRecitation(v *Recitation) *PublishTrackerCreate {
	return _c.SetRecitationID(v.ID)
}

// Mutation returns the PublishTrackerMutation object of the builder.
func (_c *PublishTrackerCreate) Mutation() *PublishTrackerMutation {
	return _c.mutation
}

// Save creates the PublishTracker in the database.
func (_c *PublishTrackerCreate) Save(ctx context.Context) (*PublishTracker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PublishTrackerCreate) SaveX(ctx context.Context) *PublishTracker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PublishTrackerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PublishTrackerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PublishTrackerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := publishtracker.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := publishtracker.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Replace(); !ok {
		v := publishtracker.DefaultReplace
		_c.mutation.SetReplace(v)
	}
	if _, ok := _c.mutation.XMLCopied(); !ok {
		v := publishtracker.DefaultXMLCopied
		_c.mutation.SetXMLCopied(v)
	}
	if _, ok := _c.mutation.Mp3Copied(); !ok {
		v := publishtracker.DefaultMp3Copied
		_c.mutation.SetMp3Copied(v)
	}
	if _, ok := _c.mutation.FirstDbUpdated(); !ok {
		v := publishtracker.DefaultFirstDbUpdated
		_c.mutation.SetFirstDbUpdated(v)
	}
	if _, ok := _c.mutation.SecondDbUpdated(); !ok {
		v := publishtracker.DefaultSecondDbUpdated
		_c.mutation.SetSecondDbUpdated(v)
	}
	if _, ok := _c.mutation.Finished(); !ok {
		v := publishtracker.DefaultFinished
		_c.mutation.SetFinished(v)
	}
	if _, ok := _c.mutation.LastError(); !ok {
		v := publishtracker.DefaultLastError
		_c.mutation.SetLastError(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := publishtracker.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PublishTrackerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "PublishTracker.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "PublishTracker.updated_at"`)}
	}
	if _, ok := _c.mutation.RecitationID(); !ok {
		return &ValidationError{Name: "recitation_id", err: errors.New(`generated: missing required field "PublishTracker.recitation_id"`)}
	}
	if _, ok := _c.mutation.Replace(); !ok {
		return &ValidationError{Name: "replace", err: errors.New(`generated: missing required field "PublishTracker.replace"`)}
	}
	if _, ok := _c.mutation.XMLCopied(); !ok {
		return &ValidationError{Name: "xml_copied", err: errors.New(`generated: missing required field "PublishTracker.xml_copied"`)}
	}
	if _, ok := _c.mutation.Mp3Copied(); !ok {
		return &ValidationError{Name: "mp3_copied", err: errors.New(`generated: missing required field "PublishTracker.mp3_copied"`)}
	}
	if _, ok := _c.mutation.FirstDbUpdated(); !ok {
		return &ValidationError{Name: "first_db_updated", err: errors.New(`generated: missing required field "PublishTracker.first_db_updated"`)}
	}
	if _, ok := _c.mutation.SecondDbUpdated(); !ok {
		return &ValidationError{Name: "second_db_updated", err: errors.New(`generated: missing required field "PublishTracker.second_db_updated"`)}
	}
	if _, ok := _c.mutation.Finished(); !ok {
		return &ValidationError{Name: "finished", err: errors.New(`generated: missing required field "PublishTracker.finished"`)}
	}
	if _, ok := _c.mutation.LastError(); !ok {
		return &ValidationError{Name: "last_error", err: errors.New(`generated: missing required field "PublishTracker.last_error"`)}
	}
	if len(_c.mutation.RecitationIDs()) == 0 {
		return &ValidationError{Name: "recitation", err: errors.New(`generated: missing required edge "PublishTracker.recitation"`)}
	}
	return nil
}

func (_c *PublishTrackerCreate) sqlSave(ctx context.Context) (*PublishTracker, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*ulid.ULID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PublishTrackerCreate) createSpec() (*PublishTracker, *sqlgraph.CreateSpec) {
	var (
		_node = &PublishTracker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(publishtracker.Table, sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(publishtracker.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(publishtracker.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Replace(); ok {
		_spec.SetField(publishtracker.FieldReplace, field.TypeBool, value)
		_node.Replace = value
	}
	if value, ok := _c.mutation.XMLCopied(); ok {
		_spec.SetField(publishtracker.FieldXMLCopied, field.TypeBool, value)
		_node.XMLCopied = value
	}
	if value, ok := _c.mutation.Mp3Copied(); ok {
		_spec.SetField(publishtracker.FieldMp3Copied, field.TypeBool, value)
		_node.Mp3Copied = value
	}
	if value, ok := _c.mutation.FirstDbUpdated(); ok {
		_spec.SetField(publishtracker.FieldFirstDbUpdated, field.TypeBool, value)
		_node.FirstDbUpdated = value
	}
	if value, ok := _c.mutation.SecondDbUpdated(); ok {
		_spec.SetField(publishtracker.FieldSecondDbUpdated, field.TypeBool, value)
		_node.SecondDbUpdated = value
	}
	if value, ok := _c.mutation.Finished(); ok {
		_spec.SetField(publishtracker.FieldFinished, field.TypeBool, value)
		_node.Finished = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(publishtracker.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(publishtracker.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.RecitationIDs(); len(nodes) > 0 {
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
		_node.RecitationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PublishTracker.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PublishTrackerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PublishTrackerCreate) OnConflict(opts ...sql.ConflictOption) *PublishTrackerUpsertOne {
	_c.conflict = opts
	return &PublishTrackerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PublishTracker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PublishTrackerCreate) OnConflictColumns(columns ...string) *PublishTrackerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PublishTrackerUpsertOne{
		create: _c,
	}
}

type (
	// PublishTrackerUpsertOne is the builder for "upsert"-ing
	//  one PublishTracker node.
	PublishTrackerUpsertOne struct {
		create *PublishTrackerCreate
	}

	// PublishTrackerUpsert is the "OnConflict" setter.
	PublishTrackerUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PublishTrackerUpsert) SetUpdatedAt(v time.Time) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateUpdatedAt() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldUpdatedAt)
	return u
}

// SetRecitationID sets the "recitation_id" field.
func (u *PublishTrackerUpsert) SetRecitationID(v int) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldRecitationID, v)
	return u
}

// UpdateRecitationID sets the "recitation_id" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateRecitationID() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldRecitationID)
	return u
}

// SetReplace sets the "replace" field.
func (u *PublishTrackerUpsert) SetReplace(v bool) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldReplace, v)
	return u
}

// UpdateReplace sets the "replace" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateReplace() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldReplace)
	return u
}

// SetXMLCopied sets the "xml_copied" field.
func (u *PublishTrackerUpsert) SetXMLCopied(v bool) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldXMLCopied, v)
	return u
}

// UpdateXMLCopied sets the "xml_copied" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateXMLCopied() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldXMLCopied)
	return u
}

// SetMp3Copied sets the "mp3_copied" field.
func (u *PublishTrackerUpsert) SetMp3Copied(v bool) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldMp3Copied, v)
	return u
}

// UpdateMp3Copied sets the "mp3_copied" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateMp3Copied() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldMp3Copied)
	return u
}

// SetFirstDbUpdated sets the "first_db_updated" field.
func (u *PublishTrackerUpsert) SetFirstDbUpdated(v bool) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldFirstDbUpdated, v)
	return u
}

// UpdateFirstDbUpdated sets the "first_db_updated" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateFirstDbUpdated() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldFirstDbUpdated)
	return u
}

// SetSecondDbUpdated sets the "second_db_updated" field.
func (u *PublishTrackerUpsert) SetSecondDbUpdated(v bool) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldSecondDbUpdated, v)
	return u
}

// UpdateSecondDbUpdated sets the "second_db_updated" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateSecondDbUpdated() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldSecondDbUpdated)
	return u
}

// SetFinished sets the "finished" field.
func (u *PublishTrackerUpsert) SetFinished(v bool) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldFinished, v)
	return u
}

// UpdateFinished sets the "finished" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateFinished() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldFinished)
	return u
}

// SetLastError sets the "last_error" field.
func (u *PublishTrackerUpsert) SetLastError(v string) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateLastError() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldLastError)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *PublishTrackerUpsert) SetFinishedAt(v time.Time) *PublishTrackerUpsert {
	u.Set(publishtracker.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *PublishTrackerUpsert) UpdateFinishedAt() *PublishTrackerUpsert {
	u.SetExcluded(publishtracker.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *PublishTrackerUpsert) ClearFinishedAt() *PublishTrackerUpsert {
	u.SetNull(publishtracker.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PublishTracker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(publishtracker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PublishTrackerUpsertOne) UpdateNewValues() *PublishTrackerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(publishtracker.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(publishtracker.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PublishTracker.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PublishTrackerUpsertOne) Ignore() *PublishTrackerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PublishTrackerUpsertOne) DoNothing() *PublishTrackerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PublishTrackerCreate.OnConflict
// documentation for more info.
func (u *PublishTrackerUpsertOne) Update(set func(*PublishTrackerUpsert)) *PublishTrackerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PublishTrackerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PublishTrackerUpsertOne) SetUpdatedAt(v time.Time) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateUpdatedAt() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRecitationID sets the "recitation_id" field.
func (u *PublishTrackerUpsertOne) SetRecitationID(v int) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetRecitationID(v)
	})
}

// UpdateRecitationID sets the "recitation_id" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateRecitationID() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateRecitationID()
	})
}

// SetReplace sets the "replace" field.
func (u *PublishTrackerUpsertOne) SetReplace(v bool) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetReplace(v)
	})
}

// UpdateReplace sets the "replace" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateReplace() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateReplace()
	})
}

// SetXMLCopied sets the "xml_copied" field.
func (u *PublishTrackerUpsertOne) SetXMLCopied(v bool) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetXMLCopied(v)
	})
}

// UpdateXMLCopied sets the "xml_copied" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateXMLCopied() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateXMLCopied()
	})
}

// SetMp3Copied sets the "mp3_copied" field.
func (u *PublishTrackerUpsertOne) SetMp3Copied(v bool) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetMp3Copied(v)
	})
}

// UpdateMp3Copied sets the "mp3_copied" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateMp3Copied() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateMp3Copied()
	})
}

// SetFirstDbUpdated sets the "first_db_updated" field.
func (u *PublishTrackerUpsertOne) SetFirstDbUpdated(v bool) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetFirstDbUpdated(v)
	})
}

// UpdateFirstDbUpdated sets the "first_db_updated" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateFirstDbUpdated() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateFirstDbUpdated()
	})
}

// SetSecondDbUpdated sets the "second_db_updated" field.
func (u *PublishTrackerUpsertOne) SetSecondDbUpdated(v bool) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetSecondDbUpdated(v)
	})
}

// UpdateSecondDbUpdated sets the "second_db_updated" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateSecondDbUpdated() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateSecondDbUpdated()
	})
}

// SetFinished sets the "finished" field.
func (u *PublishTrackerUpsertOne) SetFinished(v bool) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetFinished(v)
	})
}

// UpdateFinished sets the "finished" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateFinished() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateFinished()
	})
}

// SetLastError sets the "last_error" field.
func (u *PublishTrackerUpsertOne) SetLastError(v string) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateLastError() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateLastError()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *PublishTrackerUpsertOne) SetFinishedAt(v time.Time) *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *PublishTrackerUpsertOne) UpdateFinishedAt() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *PublishTrackerUpsertOne) ClearFinishedAt() *PublishTrackerUpsertOne {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *PublishTrackerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for PublishTrackerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PublishTrackerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PublishTrackerUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: PublishTrackerUpsertOne.ID is not supported by MySQL driver. Use PublishTrackerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PublishTrackerUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PublishTrackerCreateBulk is the builder for creating many PublishTracker entities in bulk.
type PublishTrackerCreateBulk struct {
	config
	err      error
	builders []*PublishTrackerCreate
	conflict []sql.ConflictOption
}

// Save creates the PublishTracker entities in the database.
func (_c *PublishTrackerCreateBulk) Save(ctx context.Context) ([]*PublishTracker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PublishTracker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PublishTrackerMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PublishTrackerCreateBulk) SaveX(ctx context.Context) []*PublishTracker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PublishTrackerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PublishTrackerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PublishTracker.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PublishTrackerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PublishTrackerCreateBulk) OnConflict(opts ...sql.ConflictOption) *PublishTrackerUpsertBulk {
	_c.conflict = opts
	return &PublishTrackerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PublishTracker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PublishTrackerCreateBulk) OnConflictColumns(columns ...string) *PublishTrackerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PublishTrackerUpsertBulk{
		create: _c,
	}
}

// PublishTrackerUpsertBulk is the builder for "upsert"-ing
// a bulk of PublishTracker nodes.
type PublishTrackerUpsertBulk struct {
	create *PublishTrackerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PublishTracker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(publishtracker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PublishTrackerUpsertBulk) UpdateNewValues() *PublishTrackerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(publishtracker.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(publishtracker.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PublishTracker.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PublishTrackerUpsertBulk) Ignore() *PublishTrackerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PublishTrackerUpsertBulk) DoNothing() *PublishTrackerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PublishTrackerCreateBulk.OnConflict
// documentation for more info.
func (u *PublishTrackerUpsertBulk) Update(set func(*PublishTrackerUpsert)) *PublishTrackerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PublishTrackerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PublishTrackerUpsertBulk) SetUpdatedAt(v time.Time) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateUpdatedAt() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRecitationID sets the "recitation_id" field.
func (u *PublishTrackerUpsertBulk) SetRecitationID(v int) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetRecitationID(v)
	})
}

// UpdateRecitationID sets the "recitation_id" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateRecitationID() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateRecitationID()
	})
}

// SetReplace sets the "replace" field.
func (u *PublishTrackerUpsertBulk) SetReplace(v bool) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetReplace(v)
	})
}

// UpdateReplace sets the "replace" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateReplace() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateReplace()
	})
}

// SetXMLCopied sets the "xml_copied" field.
func (u *PublishTrackerUpsertBulk) SetXMLCopied(v bool) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetXMLCopied(v)
	})
}

// UpdateXMLCopied sets the "xml_copied" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateXMLCopied() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateXMLCopied()
	})
}

// SetMp3Copied sets the "mp3_copied" field.
func (u *PublishTrackerUpsertBulk) SetMp3Copied(v bool) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetMp3Copied(v)
	})
}

// UpdateMp3Copied sets the "mp3_copied" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateMp3Copied() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateMp3Copied()
	})
}

// SetFirstDbUpdated sets the "first_db_updated" field.
func (u *PublishTrackerUpsertBulk) SetFirstDbUpdated(v bool) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetFirstDbUpdated(v)
	})
}

// UpdateFirstDbUpdated sets the "first_db_updated" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateFirstDbUpdated() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateFirstDbUpdated()
	})
}

// SetSecondDbUpdated sets the "second_db_updated" field.
func (u *PublishTrackerUpsertBulk) SetSecondDbUpdated(v bool) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetSecondDbUpdated(v)
	})
}

// UpdateSecondDbUpdated sets the "second_db_updated" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateSecondDbUpdated() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateSecondDbUpdated()
	})
}

// SetFinished sets the "finished" field.
func (u *PublishTrackerUpsertBulk) SetFinished(v bool) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetFinished(v)
	})
}

// UpdateFinished sets the "finished" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateFinished() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateFinished()
	})
}

// SetLastError sets the "last_error" field.
func (u *PublishTrackerUpsertBulk) SetLastError(v string) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateLastError() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateLastError()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *PublishTrackerUpsertBulk) SetFinishedAt(v time.Time) *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *PublishTrackerUpsertBulk) UpdateFinishedAt() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *PublishTrackerUpsertBulk) ClearFinishedAt() *PublishTrackerUpsertBulk {
	return u.Update(func(s *PublishTrackerUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *PublishTrackerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the PublishTrackerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for PublishTrackerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PublishTrackerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
