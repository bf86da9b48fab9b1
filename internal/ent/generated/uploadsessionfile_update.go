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
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsessionfile"
	ulid "github.com/oklog/ulid/v2"
)

// UploadSessionFileUpdate is the builder for updating UploadSessionFile entities.
type UploadSessionFileUpdate struct {
	config
	hooks    []Hook
	mutation *UploadSessionFileMutation
}

// Where appends a list predicates to the UploadSessionFileUpdate builder.
func (_u *UploadSessionFileUpdate) Where(ps ...predicate.UploadSessionFile) *UploadSessionFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadSessionFileUpdate) SetUpdatedAt(v time.Time) *UploadSessionFileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *UploadSessionFileUpdate) SetSessionID(v ulid.ULID) *UploadSessionFileUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *UploadSessionFileUpdate) SetNillableSessionID(v *ulid.ULID) *UploadSessionFileUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UploadSessionFileUpdate) SetDisplayName(v string) *UploadSessionFileUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UploadSessionFileUpdate) SetNillableDisplayName(v *string) *UploadSessionFileUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetOriginalName sets the "original_name" field.
func (_u *UploadSessionFileUpdate) SetOriginalName(v string) *UploadSessionFileUpdate {
	_u.mutation.SetOriginalName(v)
	return _u
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (_u *UploadSessionFileUpdate) SetNillableOriginalName(v *string) *UploadSessionFileUpdate {
	if v != nil {
		_u.SetOriginalName(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *UploadSessionFileUpdate) SetContentType(v string) *UploadSessionFileUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *UploadSessionFileUpdate) SetNillableContentType(v *string) *UploadSessionFileUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetByteLength sets the "byte_length" field.
func (_u *UploadSessionFileUpdate) SetByteLength(v int64) *UploadSessionFileUpdate {
	_u.mutation.ResetByteLength()
	_u.mutation.SetByteLength(v)
	return _u
}

// SetNillableByteLength sets the "byte_length" field if the given value is not nil.
func (_u *UploadSessionFileUpdate) SetNillableByteLength(v *int64) *UploadSessionFileUpdate {
	if v != nil {
		_u.SetByteLength(*v)
	}
	return _u
}

// AddByteLength adds value to the "byte_length" field.
func (_u *UploadSessionFileUpdate) AddByteLength(v int64) *UploadSessionFileUpdate {
	_u.mutation.AddByteLength(v)
	return _u
}

// SetTempPath sets the "temp_path" field.
func (_u *UploadSessionFileUpdate) SetTempPath(v string) *UploadSessionFileUpdate {
	_u.mutation.SetTempPath(v)
	return _u
}

// SetNillableTempPath sets the "temp_path" field if the given value is not nil.
func (_u *UploadSessionFileUpdate) SetNillableTempPath(v *string) *UploadSessionFileUpdate {
	if v != nil {
		_u.SetTempPath(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *UploadSessionFileUpdate) SetChecksum(v string) *UploadSessionFileUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *UploadSessionFileUpdate) SetNillableChecksum(v *string) *UploadSessionFileUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *UploadSessionFileUpdate) SetProcessed(v bool) *UploadSessionFileUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *UploadSessionFileUpdate) SetNillableProcessed(v *bool) *UploadSessionFileUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetResultMessage sets the "result_message" field.
func (_u *UploadSessionFileUpdate) SetResultMessage(v string) *UploadSessionFileUpdate {
	_u.mutation.SetResultMessage(v)
	return _u
}

// SetNillableResultMessage sets the "result_message" field if the given value is not nil.
func (_u *UploadSessionFileUpdate) SetNillableResultMessage(v *string) *UploadSessionFileUpdate {
	if v != nil {
		_u.SetResultMessage(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_u *UploadSessionFileUpdate) SetSession(v *UploadSession) *UploadSessionFileUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the UploadSessionFileMutation object of the builder.
func (_u *UploadSessionFileUpdate) Mutation() *UploadSessionFileMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (_u *UploadSessionFileUpdate) ClearSession() *UploadSessionFileUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadSessionFileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadSessionFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadSessionFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadSessionFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadSessionFileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadsessionfile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadSessionFileUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "UploadSessionFile.session"`)
	}
	return nil
}

func (_u *UploadSessionFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadsessionfile.Table, uploadsessionfile.Columns, sqlgraph.NewFieldSpec(uploadsessionfile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadsessionfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(uploadsessionfile.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalName(); ok {
		_spec.SetField(uploadsessionfile.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(uploadsessionfile.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ByteLength(); ok {
		_spec.SetField(uploadsessionfile.FieldByteLength, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedByteLength(); ok {
		_spec.AddField(uploadsessionfile.FieldByteLength, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TempPath(); ok {
		_spec.SetField(uploadsessionfile.FieldTempPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(uploadsessionfile.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(uploadsessionfile.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResultMessage(); ok {
		_spec.SetField(uploadsessionfile.FieldResultMessage, field.TypeString, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadsessionfile.SessionTable,
			Columns: []string{uploadsessionfile.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadsessionfile.SessionTable,
			Columns: []string{uploadsessionfile.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadsessionfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadSessionFileUpdateOne is the builder for updating a single UploadSessionFile entity.
type UploadSessionFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadSessionFileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadSessionFileUpdateOne) SetUpdatedAt(v time.Time) *UploadSessionFileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *UploadSessionFileUpdateOne) SetSessionID(v ulid.ULID) *UploadSessionFileUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *UploadSessionFileUpdateOne) SetNillableSessionID(v *ulid.ULID) *UploadSessionFileUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UploadSessionFileUpdateOne) SetDisplayName(v string) *UploadSessionFileUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UploadSessionFileUpdateOne) SetNillableDisplayName(v *string) *UploadSessionFileUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetOriginalName sets the "original_name" field.
func (_u *UploadSessionFileUpdateOne) SetOriginalName(v string) *UploadSessionFileUpdateOne {
	_u.mutation.SetOriginalName(v)
	return _u
}

// SetNillableOriginalName sets the "original_name" field if the given value is not nil.
func (_u *UploadSessionFileUpdateOne) SetNillableOriginalName(v *string) *UploadSessionFileUpdateOne {
	if v != nil {
		_u.SetOriginalName(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *UploadSessionFileUpdateOne) SetContentType(v string) *UploadSessionFileUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *UploadSessionFileUpdateOne) SetNillableContentType(v *string) *UploadSessionFileUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetByteLength sets the "byte_length" field.
func (_u *UploadSessionFileUpdateOne) SetByteLength(v int64) *UploadSessionFileUpdateOne {
	_u.mutation.ResetByteLength()
	_u.mutation.SetByteLength(v)
	return _u
}

// SetNillableByteLength sets the "byte_length" field if the given value is not nil.
func (_u *UploadSessionFileUpdateOne) SetNillableByteLength(v *int64) *UploadSessionFileUpdateOne {
	if v != nil {
		_u.SetByteLength(*v)
	}
	return _u
}

// AddByteLength adds value to the "byte_length" field.
func (_u *UploadSessionFileUpdateOne) AddByteLength(v int64) *UploadSessionFileUpdateOne {
	_u.mutation.AddByteLength(v)
	return _u
}

// SetTempPath sets the "temp_path" field.
func (_u *UploadSessionFileUpdateOne) SetTempPath(v string) *UploadSessionFileUpdateOne {
	_u.mutation.SetTempPath(v)
	return _u
}

// SetNillableTempPath sets the "temp_path" field if the given value is not nil.
func (_u *UploadSessionFileUpdateOne) SetNillableTempPath(v *string) *UploadSessionFileUpdateOne {
	if v != nil {
		_u.SetTempPath(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *UploadSessionFileUpdateOne) SetChecksum(v string) *UploadSessionFileUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *UploadSessionFileUpdateOne) SetNillableChecksum(v *string) *UploadSessionFileUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *UploadSessionFileUpdateOne) SetProcessed(v bool) *UploadSessionFileUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *UploadSessionFileUpdateOne) SetNillableProcessed(v *bool) *UploadSessionFileUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetResultMessage sets the "result_message" field.
func (_u *UploadSessionFileUpdateOne) SetResultMessage(v string) *UploadSessionFileUpdateOne {
	_u.mutation.SetResultMessage(v)
	return _u
}

// SetNillableResultMessage sets the "result_message" field if the given value is not nil.
func (_u *UploadSessionFileUpdateOne) SetNillableResultMessage(v *string) *UploadSessionFileUpdateOne {
	if v != nil {
		_u.SetResultMessage(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_u *UploadSessionFileUpdateOne) SetSession(v *UploadSession) *UploadSessionFileUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the UploadSessionFileMutation object of the builder.
func (_u *UploadSessionFileUpdateOne) Mutation() *UploadSessionFileMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (_u *UploadSessionFileUpdateOne) ClearSession() *UploadSessionFileUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the UploadSessionFileUpdate builder.
func (_u *UploadSessionFileUpdateOne) Where(ps ...predicate.UploadSessionFile) *UploadSessionFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadSessionFileUpdateOne) Select(field string, fields ...string) *UploadSessionFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadSessionFile entity.
func (_u *UploadSessionFileUpdateOne) Save(ctx context.Context) (*UploadSessionFile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadSessionFileUpdateOne) SaveX(ctx context.Context) *UploadSessionFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadSessionFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadSessionFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadSessionFileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadsessionfile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadSessionFileUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "UploadSessionFile.session"`)
	}
	return nil
}

func (_u *UploadSessionFileUpdateOne) sqlSave(ctx context.Context) (_node *UploadSessionFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadsessionfile.Table, uploadsessionfile.Columns, sqlgraph.NewFieldSpec(uploadsessionfile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "UploadSessionFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadsessionfile.FieldID)
		for _, f := range fields {
			if !uploadsessionfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != uploadsessionfile.FieldID {
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
		_spec.SetField(uploadsessionfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(uploadsessionfile.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalName(); ok {
		_spec.SetField(uploadsessionfile.FieldOriginalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(uploadsessionfile.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ByteLength(); ok {
		_spec.SetField(uploadsessionfile.FieldByteLength, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedByteLength(); ok {
		_spec.AddField(uploadsessionfile.FieldByteLength, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TempPath(); ok {
		_spec.SetField(uploadsessionfile.FieldTempPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(uploadsessionfile.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(uploadsessionfile.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResultMessage(); ok {
		_spec.SetField(uploadsessionfile.FieldResultMessage, field.TypeString, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadsessionfile.SessionTable,
			Columns: []string{uploadsessionfile.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadsessionfile.SessionTable,
			Columns: []string{uploadsessionfile.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UploadSessionFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadsessionfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
