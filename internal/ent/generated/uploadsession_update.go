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
	"github.com/google/uuid"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsessionfile"
	ulid "github.com/oklog/ulid/v2"
)

// UploadSessionUpdate is the builder for updating UploadSession entities.
type UploadSessionUpdate struct {
	config
	hooks    []Hook
	mutation *UploadSessionMutation
}

// Where appends a list predicates to the UploadSessionUpdate builder.
func (_u *UploadSessionUpdate) Where(ps ...predicate.UploadSession) *UploadSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadSessionUpdate) SetUpdatedAt(v time.Time) *UploadSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UploadSessionUpdate) SetUserID(v uuid.UUID) *UploadSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableUserID(v *uuid.UUID) *UploadSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *UploadSessionUpdate) SetKind(v uploadsession.Kind) *UploadSessionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableKind(v *uploadsession.Kind) *UploadSessionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetProcessStatus sets the "process_status" field.
func (_u *UploadSessionUpdate) SetProcessStatus(v uploadsession.ProcessStatus) *UploadSessionUpdate {
	_u.mutation.SetProcessStatus(v)
	return _u
}

// SetNillableProcessStatus sets the "process_status" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableProcessStatus(v *uploadsession.ProcessStatus) *UploadSessionUpdate {
	if v != nil {
		_u.SetProcessStatus(*v)
	}
	return _u
}

// SetProcessProgress sets the "process_progress" field.
func (_u *UploadSessionUpdate) SetProcessProgress(v int) *UploadSessionUpdate {
	_u.mutation.ResetProcessProgress()
	_u.mutation.SetProcessProgress(v)
	return _u
}

// SetNillableProcessProgress sets the "process_progress" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableProcessProgress(v *int) *UploadSessionUpdate {
	if v != nil {
		_u.SetProcessProgress(*v)
	}
	return _u
}

// AddProcessProgress adds value to the "process_progress" field.
func (_u *UploadSessionUpdate) AddProcessProgress(v int) *UploadSessionUpdate {
	_u.mutation.AddProcessProgress(v)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *UploadSessionUpdate) SetEndedAt(v time.Time) *UploadSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableEndedAt(v *time.Time) *UploadSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *UploadSessionUpdate) ClearEndedAt() *UploadSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetProcessStartedAt sets the "process_started_at" field.
func (_u *UploadSessionUpdate) SetProcessStartedAt(v time.Time) *UploadSessionUpdate {
	_u.mutation.SetProcessStartedAt(v)
	return _u
}

// SetNillableProcessStartedAt sets the "process_started_at" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableProcessStartedAt(v *time.Time) *UploadSessionUpdate {
	if v != nil {
		_u.SetProcessStartedAt(*v)
	}
	return _u
}

// ClearProcessStartedAt clears the value of the "process_started_at" field.
func (_u *UploadSessionUpdate) ClearProcessStartedAt() *UploadSessionUpdate {
	_u.mutation.ClearProcessStartedAt()
	return _u
}

// SetProcessEndedAt sets the "process_ended_at" field.
func (_u *UploadSessionUpdate) SetProcessEndedAt(v time.Time) *UploadSessionUpdate {
	_u.mutation.SetProcessEndedAt(v)
	return _u
}

// SetNillableProcessEndedAt sets the "process_ended_at" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableProcessEndedAt(v *time.Time) *UploadSessionUpdate {
	if v != nil {
		_u.SetProcessEndedAt(*v)
	}
	return _u
}

// ClearProcessEndedAt clears the value of the "process_ended_at" field.
func (_u *UploadSessionUpdate) ClearProcessEndedAt() *UploadSessionUpdate {
	_u.mutation.ClearProcessEndedAt()
	return _u
}

// AddFileIDs adds the "files" edge to the UploadSessionFile entity by IDs.
func (_u *UploadSessionUpdate) AddFileIDs(ids ...ulid.ULID) *UploadSessionUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the UploadSessionFile entity.
func (_u *UploadSessionUpdate) AddFiles(v ...*UploadSessionFile) *UploadSessionUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the UploadSessionMutation object of the builder.
func (_u *UploadSessionUpdate) Mutation() *UploadSessionMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the UploadSessionFile entity.
func (_u *UploadSessionUpdate) ClearFiles() *UploadSessionUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to UploadSessionFile entities by IDs.
func (_u *UploadSessionUpdate) RemoveFileIDs(ids ...ulid.ULID) *UploadSessionUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to UploadSessionFile entities.
func (_u *UploadSessionUpdate) RemoveFiles(v ...*UploadSessionFile) *UploadSessionUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadSessionUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := uploadsession.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`generated: validator failed for field "UploadSession.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessStatus(); ok {
		if err := uploadsession.ProcessStatusValidator(v); err != nil {
			return &ValidationError{Name: "process_status", err: fmt.Errorf(`generated: validator failed for field "UploadSession.process_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadsession.Table, uploadsession.Columns, sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(uploadsession.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(uploadsession.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessStatus(); ok {
		_spec.SetField(uploadsession.FieldProcessStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessProgress(); ok {
		_spec.SetField(uploadsession.FieldProcessProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessProgress(); ok {
		_spec.AddField(uploadsession.FieldProcessProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(uploadsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(uploadsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessStartedAt(); ok {
		_spec.SetField(uploadsession.FieldProcessStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessStartedAtCleared() {
		_spec.ClearField(uploadsession.FieldProcessStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessEndedAt(); ok {
		_spec.SetField(uploadsession.FieldProcessEndedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessEndedAtCleared() {
		_spec.ClearField(uploadsession.FieldProcessEndedAt, field.TypeTime)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadSessionUpdateOne is the builder for updating a single UploadSession entity.
type UploadSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadSessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadSessionUpdateOne) SetUpdatedAt(v time.Time) *UploadSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UploadSessionUpdateOne) SetUserID(v uuid.UUID) *UploadSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableUserID(v *uuid.UUID) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *UploadSessionUpdateOne) SetKind(v uploadsession.Kind) *UploadSessionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableKind(v *uploadsession.Kind) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetProcessStatus sets the "process_status" field.
func (_u *UploadSessionUpdateOne) SetProcessStatus(v uploadsession.ProcessStatus) *UploadSessionUpdateOne {
	_u.mutation.SetProcessStatus(v)
	return _u
}

// SetNillableProcessStatus sets the "process_status" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableProcessStatus(v *uploadsession.ProcessStatus) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetProcessStatus(*v)
	}
	return _u
}

// SetProcessProgress sets the "process_progress" field.
func (_u *UploadSessionUpdateOne) SetProcessProgress(v int) *UploadSessionUpdateOne {
	_u.mutation.ResetProcessProgress()
	_u.mutation.SetProcessProgress(v)
	return _u
}

// SetNillableProcessProgress sets the "process_progress" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableProcessProgress(v *int) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetProcessProgress(*v)
	}
	return _u
}

// AddProcessProgress adds value to the "process_progress" field.
func (_u *UploadSessionUpdateOne) AddProcessProgress(v int) *UploadSessionUpdateOne {
	_u.mutation.AddProcessProgress(v)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *UploadSessionUpdateOne) SetEndedAt(v time.Time) *UploadSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableEndedAt(v *time.Time) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *UploadSessionUpdateOne) ClearEndedAt() *UploadSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetProcessStartedAt sets the "process_started_at" field.
func (_u *UploadSessionUpdateOne) SetProcessStartedAt(v time.Time) *UploadSessionUpdateOne {
	_u.mutation.SetProcessStartedAt(v)
	return _u
}

// SetNillableProcessStartedAt sets the "process_started_at" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableProcessStartedAt(v *time.Time) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetProcessStartedAt(*v)
	}
	return _u
}

// ClearProcessStartedAt clears the value of the "process_started_at" field.
func (_u *UploadSessionUpdateOne) ClearProcessStartedAt() *UploadSessionUpdateOne {
	_u.mutation.ClearProcessStartedAt()
	return _u
}

// SetProcessEndedAt sets the "process_ended_at" field.
func (_u *UploadSessionUpdateOne) SetProcessEndedAt(v time.Time) *UploadSessionUpdateOne {
	_u.mutation.SetProcessEndedAt(v)
	return _u
}

// SetNillableProcessEndedAt sets the "process_ended_at" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableProcessEndedAt(v *time.Time) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetProcessEndedAt(*v)
	}
	return _u
}

// ClearProcessEndedAt clears the value of the "process_ended_at" field.
func (_u *UploadSessionUpdateOne) ClearProcessEndedAt() *UploadSessionUpdateOne {
	_u.mutation.ClearProcessEndedAt()
	return _u
}

// AddFileIDs adds the "files" edge to the UploadSessionFile entity by IDs.
func (_u *UploadSessionUpdateOne) AddFileIDs(ids ...ulid.ULID) *UploadSessionUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the UploadSessionFile entity.
func (_u *UploadSessionUpdateOne) AddFiles(v ...*UploadSessionFile) *UploadSessionUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the UploadSessionMutation object of the builder.
func (_u *UploadSessionUpdateOne) Mutation() *UploadSessionMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the UploadSessionFile entity.
func (_u *UploadSessionUpdateOne) ClearFiles() *UploadSessionUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to UploadSessionFile entities by IDs.
func (_u *UploadSessionUpdateOne) RemoveFileIDs(ids ...ulid.ULID) *UploadSessionUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to UploadSessionFile entities.
func (_u *UploadSessionUpdateOne) RemoveFiles(v ...*UploadSessionFile) *UploadSessionUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the UploadSessionUpdate builder.
func (_u *UploadSessionUpdateOne) Where(ps ...predicate.UploadSession) *UploadSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadSessionUpdateOne) Select(field string, fields ...string) *UploadSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadSession entity.
func (_u *UploadSessionUpdateOne) Save(ctx context.Context) (*UploadSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadSessionUpdateOne) SaveX(ctx context.Context) *UploadSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := uploadsession.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`generated: validator failed for field "UploadSession.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessStatus(); ok {
		if err := uploadsession.ProcessStatusValidator(v); err != nil {
			return &ValidationError{Name: "process_status", err: fmt.Errorf(`generated: validator failed for field "UploadSession.process_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadSessionUpdateOne) sqlSave(ctx context.Context) (_node *UploadSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadsession.Table, uploadsession.Columns, sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "UploadSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadsession.FieldID)
		for _, f := range fields {
			if !uploadsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != uploadsession.FieldID {
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
		_spec.SetField(uploadsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(uploadsession.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(uploadsession.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessStatus(); ok {
		_spec.SetField(uploadsession.FieldProcessStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessProgress(); ok {
		_spec.SetField(uploadsession.FieldProcessProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessProgress(); ok {
		_spec.AddField(uploadsession.FieldProcessProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(uploadsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(uploadsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessStartedAt(); ok {
		_spec.SetField(uploadsession.FieldProcessStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessStartedAtCleared() {
		_spec.ClearField(uploadsession.FieldProcessStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessEndedAt(); ok {
		_spec.SetField(uploadsession.FieldProcessEndedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessEndedAtCleared() {
		_spec.ClearField(uploadsession.FieldProcessEndedAt, field.TypeTime)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UploadSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
