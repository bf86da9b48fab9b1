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
	"github.com/google/uuid"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsessionfile"
	ulid "github.com/oklog/ulid/v2"
)

// UploadSessionCreate is the builder for creating a UploadSession entity.
type UploadSessionCreate struct {
	config
	mutation *UploadSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadSessionCreate) SetCreatedAt(v time.Time) *UploadSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableCreatedAt(v *time.Time) *UploadSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UploadSessionCreate) SetUpdatedAt(v time.Time) *UploadSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableUpdatedAt(v *time.Time) *UploadSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UploadSessionCreate) SetUserID(v uuid.UUID) *UploadSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *UploadSessionCreate) SetKind(v uploadsession.Kind) *UploadSessionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableKind(v *uploadsession.Kind) *UploadSessionCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetProcessStatus sets the "process_status" field.
func (_c *UploadSessionCreate) SetProcessStatus(v uploadsession.ProcessStatus) *UploadSessionCreate {
	_c.mutation.SetProcessStatus(v)
	return _c
}

// SetNillableProcessStatus sets the "process_status" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableProcessStatus(v *uploadsession.ProcessStatus) *UploadSessionCreate {
	if v != nil {
		_c.SetProcessStatus(*v)
	}
	return _c
}

// SetProcessProgress sets the "process_progress" field.
func (_c *UploadSessionCreate) SetProcessProgress(v int) *UploadSessionCreate {
	_c.mutation.SetProcessProgress(v)
	return _c
}

// SetNillableProcessProgress sets the "process_progress" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableProcessProgress(v *int) *UploadSessionCreate {
	if v != nil {
		_c.SetProcessProgress(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *UploadSessionCreate) SetEndedAt(v time.Time) *UploadSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableEndedAt(v *time.Time) *UploadSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetProcessStartedAt sets the "process_started_at" field.
func (_c *UploadSessionCreate) SetProcessStartedAt(v time.Time) *UploadSessionCreate {
	_c.mutation.SetProcessStartedAt(v)
	return _c
}

// SetNillableProcessStartedAt sets the "process_started_at" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableProcessStartedAt(v *time.Time) *UploadSessionCreate {
	if v != nil {
		_c.SetProcessStartedAt(*v)
	}
	return _c
}

// SetProcessEndedAt sets the "process_ended_at" field.
func (_c *UploadSessionCreate) SetProcessEndedAt(v time.Time) *UploadSessionCreate {
	_c.mutation.SetProcessEndedAt(v)
	return _c
}

// SetNillableProcessEndedAt sets the "process_ended_at" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableProcessEndedAt(v *time.Time) *UploadSessionCreate {
	if v != nil {
		_c.SetProcessEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadSessionCreate) SetID(v ulid.ULID) *UploadSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableID(v *ulid.ULID) *UploadSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFileIDs adds the "files" edge to the UploadSessionFile entity by IDs.
func (_c *UploadSessionCreate) AddFileIDs(ids ...ulid.ULID) *UploadSessionCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the UploadSessionFile entity.
func (_c *UploadSessionCreate) AddFiles(v ...*UploadSessionFile) *UploadSessionCreate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the UploadSessionMutation object of the builder.
func (_c *UploadSessionCreate) Mutation() *UploadSessionMutation {
	return _c.mutation
}

// Save creates the UploadSession in the database.
func (_c *UploadSessionCreate) Save(ctx context.Context) (*UploadSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadSessionCreate) SaveX(ctx context.Context) *UploadSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uploadsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := uploadsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := uploadsession.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.ProcessStatus(); !ok {
		v := uploadsession.DefaultProcessStatus
		_c.mutation.SetProcessStatus(v)
	}
	if _, ok := _c.mutation.ProcessProgress(); !ok {
		v := uploadsession.DefaultProcessProgress
		_c.mutation.SetProcessProgress(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := uploadsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadSessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "UploadSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "UploadSession.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`generated: missing required field "UploadSession.user_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`generated: missing required field "UploadSession.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := uploadsession.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`generated: validator failed for field "UploadSession.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessStatus(); !ok {
		return &ValidationError{Name: "process_status", err: errors.New(`generated: missing required field "UploadSession.process_status"`)}
	}
	if v, ok := _c.mutation.ProcessStatus(); ok {
		if err := uploadsession.ProcessStatusValidator(v); err != nil {
			return &ValidationError{Name: "process_status", err: fmt.Errorf(`generated: validator failed for field "UploadSession.process_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessProgress(); !ok {
		return &ValidationError{Name: "process_progress", err: errors.New(`generated: missing required field "UploadSession.process_progress"`)}
	}
	return nil
}

func (_c *UploadSessionCreate) sqlSave(ctx context.Context) (*UploadSession, error) {
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

func (_c *UploadSessionCreate) createSpec() (*UploadSession, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadsession.Table, sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uploadsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(uploadsession.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(uploadsession.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.ProcessStatus(); ok {
		_spec.SetField(uploadsession.FieldProcessStatus, field.TypeEnum, value)
		_node.ProcessStatus = value
	}
	if value, ok := _c.mutation.ProcessProgress(); ok {
		_spec.SetField(uploadsession.FieldProcessProgress, field.TypeInt, value)
		_node.ProcessProgress = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(uploadsession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.ProcessStartedAt(); ok {
		_spec.SetField(uploadsession.FieldProcessStartedAt, field.TypeTime, value)
		_node.ProcessStartedAt = &value
	}
	if value, ok := _c.mutation.ProcessEndedAt(); ok {
		_spec.SetField(uploadsession.FieldProcessEndedAt, field.TypeTime, value)
		_node.ProcessEndedAt = &value
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadsession.FilesTable,
			Columns: []string{uploadsession.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsessionfile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UploadSession.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UploadSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UploadSessionCreate) OnConflict(opts ...sql.ConflictOption) *UploadSessionUpsertOne {
	_c.conflict = opts
	return &UploadSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UploadSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UploadSessionCreate) OnConflictColumns(columns ...string) *UploadSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UploadSessionUpsertOne{
		create: _c,
	}
}

type (
	// UploadSessionUpsertOne is the builder for "upsert"-ing
	//  one UploadSession node.
	UploadSessionUpsertOne struct {
		create *UploadSessionCreate
	}

	// UploadSessionUpsert is the "OnConflict" setter.
	UploadSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *UploadSessionUpsert) SetUpdatedAt(v time.Time) *UploadSessionUpsert {
	u.Set(uploadsession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UploadSessionUpsert) UpdateUpdatedAt() *UploadSessionUpsert {
	u.SetExcluded(uploadsession.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *UploadSessionUpsert) SetUserID(v uuid.UUID) *UploadSessionUpsert {
	u.Set(uploadsession.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UploadSessionUpsert) UpdateUserID() *UploadSessionUpsert {
	u.SetExcluded(uploadsession.FieldUserID)
	return u
}

// SetKind sets the "kind" field.
func (u *UploadSessionUpsert) SetKind(v uploadsession.Kind) *UploadSessionUpsert {
	u.Set(uploadsession.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *UploadSessionUpsert) UpdateKind() *UploadSessionUpsert {
	u.SetExcluded(uploadsession.FieldKind)
	return u
}

// SetProcessStatus sets the "process_status" field.
func (u *UploadSessionUpsert) SetProcessStatus(v uploadsession.ProcessStatus) *UploadSessionUpsert {
	u.Set(uploadsession.FieldProcessStatus, v)
	return u
}

// UpdateProcessStatus sets the "process_status" field to the value that was provided on create.
func (u *UploadSessionUpsert) UpdateProcessStatus() *UploadSessionUpsert {
	u.SetExcluded(uploadsession.FieldProcessStatus)
	return u
}

// SetProcessProgress sets the "process_progress" field.
func (u *UploadSessionUpsert) SetProcessProgress(v int) *UploadSessionUpsert {
	u.Set(uploadsession.FieldProcessProgress, v)
	return u
}

// UpdateProcessProgress sets the "process_progress" field to the value that was provided on create.
func (u *UploadSessionUpsert) UpdateProcessProgress() *UploadSessionUpsert {
	u.SetExcluded(uploadsession.FieldProcessProgress)
	return u
}

// AddProcessProgress adds v to the "process_progress" field.
func (u *UploadSessionUpsert) AddProcessProgress(v int) *UploadSessionUpsert {
	u.Add(uploadsession.FieldProcessProgress, v)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *UploadSessionUpsert) SetEndedAt(v time.Time) *UploadSessionUpsert {
	u.Set(uploadsession.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *UploadSessionUpsert) UpdateEndedAt() *UploadSessionUpsert {
	u.SetExcluded(uploadsession.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *UploadSessionUpsert) ClearEndedAt() *UploadSessionUpsert {
	u.SetNull(uploadsession.FieldEndedAt)
	return u
}

// SetProcessStartedAt sets the "process_started_at" field.
func (u *UploadSessionUpsert) SetProcessStartedAt(v time.Time) *UploadSessionUpsert {
	u.Set(uploadsession.FieldProcessStartedAt, v)
	return u
}

// UpdateProcessStartedAt sets the "process_started_at" field to the value that was provided on create.
func (u *UploadSessionUpsert) UpdateProcessStartedAt() *UploadSessionUpsert {
	u.SetExcluded(uploadsession.FieldProcessStartedAt)
	return u
}

// ClearProcessStartedAt clears the value of the "process_started_at" field.
func (u *UploadSessionUpsert) ClearProcessStartedAt() *UploadSessionUpsert {
	u.SetNull(uploadsession.FieldProcessStartedAt)
	return u
}

// SetProcessEndedAt sets the "process_ended_at" field.
func (u *UploadSessionUpsert) SetProcessEndedAt(v time.Time) *UploadSessionUpsert {
	u.Set(uploadsession.FieldProcessEndedAt, v)
	return u
}

// UpdateProcessEndedAt sets the "process_ended_at" field to the value that was provided on create.
func (u *UploadSessionUpsert) UpdateProcessEndedAt() *UploadSessionUpsert {
	u.SetExcluded(uploadsession.FieldProcessEndedAt)
	return u
}

// ClearProcessEndedAt clears the value of the "process_ended_at" field.
func (u *UploadSessionUpsert) ClearProcessEndedAt() *UploadSessionUpsert {
	u.SetNull(uploadsession.FieldProcessEndedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UploadSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(uploadsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UploadSessionUpsertOne) UpdateNewValues() *UploadSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(uploadsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(uploadsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UploadSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UploadSessionUpsertOne) Ignore() *UploadSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UploadSessionUpsertOne) DoNothing() *UploadSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UploadSessionCreate.OnConflict
// documentation for more info.
func (u *UploadSessionUpsertOne) Update(set func(*UploadSessionUpsert)) *UploadSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UploadSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UploadSessionUpsertOne) SetUpdatedAt(v time.Time) *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UploadSessionUpsertOne) UpdateUpdatedAt() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *UploadSessionUpsertOne) SetUserID(v uuid.UUID) *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UploadSessionUpsertOne) UpdateUserID() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetKind sets the "kind" field.
func (u *UploadSessionUpsertOne) SetKind(v uploadsession.Kind) *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *UploadSessionUpsertOne) UpdateKind() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateKind()
	})
}

// SetProcessStatus sets the "process_status" field.
func (u *UploadSessionUpsertOne) SetProcessStatus(v uploadsession.ProcessStatus) *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetProcessStatus(v)
	})
}

// UpdateProcessStatus sets the "process_status" field to the value that was provided on create.
func (u *UploadSessionUpsertOne) UpdateProcessStatus() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateProcessStatus()
	})
}

// SetProcessProgress sets the "process_progress" field.
func (u *UploadSessionUpsertOne) SetProcessProgress(v int) *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetProcessProgress(v)
	})
}

// AddProcessProgress adds v to the "process_progress" field.
func (u *UploadSessionUpsertOne) AddProcessProgress(v int) *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.AddProcessProgress(v)
	})
}

// UpdateProcessProgress sets the "process_progress" field to the value that was provided on create.
func (u *UploadSessionUpsertOne) UpdateProcessProgress() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateProcessProgress()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *UploadSessionUpsertOne) SetEndedAt(v time.Time) *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *UploadSessionUpsertOne) UpdateEndedAt() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *UploadSessionUpsertOne) ClearEndedAt() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetProcessStartedAt sets the "process_started_at" field.
func (u *UploadSessionUpsertOne) SetProcessStartedAt(v time.Time) *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetProcessStartedAt(v)
	})
}

// UpdateProcessStartedAt sets the "process_started_at" field to the value that was provided on create.
func (u *UploadSessionUpsertOne) UpdateProcessStartedAt() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateProcessStartedAt()
	})
}

// ClearProcessStartedAt clears the value of the "process_started_at" field.
func (u *UploadSessionUpsertOne) ClearProcessStartedAt() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.ClearProcessStartedAt()
	})
}

// SetProcessEndedAt sets the "process_ended_at" field.
func (u *UploadSessionUpsertOne) SetProcessEndedAt(v time.Time) *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetProcessEndedAt(v)
	})
}

// UpdateProcessEndedAt sets the "process_ended_at" field to the value that was provided on create.
func (u *UploadSessionUpsertOne) UpdateProcessEndedAt() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateProcessEndedAt()
	})
}

// ClearProcessEndedAt clears the value of the "process_ended_at" field.
func (u *UploadSessionUpsertOne) ClearProcessEndedAt() *UploadSessionUpsertOne {
	return u.Update(func(s *UploadSessionUpsert) {
		s.ClearProcessEndedAt()
	})
}

// Exec executes the query.
func (u *UploadSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for UploadSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UploadSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UploadSessionUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: UploadSessionUpsertOne.ID is not supported by MySQL driver. Use UploadSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UploadSessionUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UploadSessionCreateBulk is the builder for creating many UploadSession entities in bulk.
type UploadSessionCreateBulk struct {
	config
	err      error
	builders []*UploadSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the UploadSession entities in the database.
func (_c *UploadSessionCreateBulk) Save(ctx context.Context) ([]*UploadSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadSessionMutation)
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
func (_c *UploadSessionCreateBulk) SaveX(ctx context.Context) []*UploadSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UploadSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UploadSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UploadSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *UploadSessionUpsertBulk {
	_c.conflict = opts
	return &UploadSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UploadSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UploadSessionCreateBulk) OnConflictColumns(columns ...string) *UploadSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UploadSessionUpsertBulk{
		create: _c,
	}
}

// UploadSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of UploadSession nodes.
type UploadSessionUpsertBulk struct {
	create *UploadSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UploadSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(uploadsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UploadSessionUpsertBulk) UpdateNewValues() *UploadSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(uploadsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(uploadsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UploadSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UploadSessionUpsertBulk) Ignore() *UploadSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UploadSessionUpsertBulk) DoNothing() *UploadSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UploadSessionCreateBulk.OnConflict
// documentation for more info.
func (u *UploadSessionUpsertBulk) Update(set func(*UploadSessionUpsert)) *UploadSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UploadSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UploadSessionUpsertBulk) SetUpdatedAt(v time.Time) *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UploadSessionUpsertBulk) UpdateUpdatedAt() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *UploadSessionUpsertBulk) SetUserID(v uuid.UUID) *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UploadSessionUpsertBulk) UpdateUserID() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetKind sets the "kind" field.
func (u *UploadSessionUpsertBulk) SetKind(v uploadsession.Kind) *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *UploadSessionUpsertBulk) UpdateKind() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateKind()
	})
}

// SetProcessStatus sets the "process_status" field.
func (u *UploadSessionUpsertBulk) SetProcessStatus(v uploadsession.ProcessStatus) *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetProcessStatus(v)
	})
}

// UpdateProcessStatus sets the "process_status" field to the value that was provided on create.
func (u *UploadSessionUpsertBulk) UpdateProcessStatus() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateProcessStatus()
	})
}

// SetProcessProgress sets the "process_progress" field.
func (u *UploadSessionUpsertBulk) SetProcessProgress(v int) *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetProcessProgress(v)
	})
}

// AddProcessProgress adds v to the "process_progress" field.
func (u *UploadSessionUpsertBulk) AddProcessProgress(v int) *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.AddProcessProgress(v)
	})
}

// UpdateProcessProgress sets the "process_progress" field to the value that was provided on create.
func (u *UploadSessionUpsertBulk) UpdateProcessProgress() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateProcessProgress()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *UploadSessionUpsertBulk) SetEndedAt(v time.Time) *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *UploadSessionUpsertBulk) UpdateEndedAt() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *UploadSessionUpsertBulk) ClearEndedAt() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetProcessStartedAt sets the "process_started_at" field.
func (u *UploadSessionUpsertBulk) SetProcessStartedAt(v time.Time) *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetProcessStartedAt(v)
	})
}

// UpdateProcessStartedAt sets the "process_started_at" field to the value that was provided on create.
func (u *UploadSessionUpsertBulk) UpdateProcessStartedAt() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateProcessStartedAt()
	})
}

// ClearProcessStartedAt clears the value of the "process_started_at" field.
func (u *UploadSessionUpsertBulk) ClearProcessStartedAt() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.ClearProcessStartedAt()
	})
}

// SetProcessEndedAt sets the "process_ended_at" field.
func (u *UploadSessionUpsertBulk) SetProcessEndedAt(v time.Time) *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.SetProcessEndedAt(v)
	})
}

// UpdateProcessEndedAt sets the "process_ended_at" field to the value that was provided on create.
func (u *UploadSessionUpsertBulk) UpdateProcessEndedAt() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.UpdateProcessEndedAt()
	})
}

// ClearProcessEndedAt clears the value of the "process_ended_at" field.
func (u *UploadSessionUpsertBulk) ClearProcessEndedAt() *UploadSessionUpsertBulk {
	return u.Update(func(s *UploadSessionUpsert) {
		s.ClearProcessEndedAt()
	})
}

// Exec executes the query.
func (u *UploadSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the UploadSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for UploadSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UploadSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
