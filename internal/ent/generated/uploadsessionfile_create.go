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
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsessionfile"
	ulid "github.com/oklog/ulid/v2"
)

// UploadSessionFileCreate is the builder for creating a UploadSessionFile entity.
type UploadSessionFileCreate struct {
	config
	mutation *UploadSessionFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadSessionFileCreate) SetCreatedAt(v time.Time) *UploadSessionFileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadSessionFileCreate) SetNillableCreatedAt(v *time.Time) *UploadSessionFileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UploadSessionFileCreate) SetUpdatedAt(v time.Time) *UploadSessionFileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UploadSessionFileCreate) SetNillableUpdatedAt(v *time.Time) *UploadSessionFileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *UploadSessionFileCreate) SetSessionID(v ulid.ULID) *UploadSessionFileCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *UploadSessionFileCreate) SetDisplayName(v string) *UploadSessionFileCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetOriginalName sets the "original_name" field.
func (_c *UploadSessionFileCreate) SetOriginalName(v string) *UploadSessionFileCreate {
	_c.mutation.SetOriginalName(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *UploadSessionFileCreate) SetContentType(v string) *UploadSessionFileCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *UploadSessionFileCreate) SetNillableContentType(v *string) *UploadSessionFileCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetByteLength sets the "byte_length" field.
func (_c *UploadSessionFileCreate) SetByteLength(v int64) *UploadSessionFileCreate {
	_c.mutation.SetByteLength(v)
	return _c
}

// SetNillableByteLength sets the "byte_length" field if the given value is not nil.
func (_c *UploadSessionFileCreate) SetNillableByteLength(v *int64) *UploadSessionFileCreate {
	if v != nil {
		_c.SetByteLength(*v)
	}
	return _c
}

// SetTempPath sets the "temp_path" field.
func (_c *UploadSessionFileCreate) SetTempPath(v string) *UploadSessionFileCreate {
	_c.mutation.SetTempPath(v)
	return _c
}

// SetNillableTempPath sets the "temp_path" field if the given value is not nil.
func (_c *UploadSessionFileCreate) SetNillableTempPath(v *string) *UploadSessionFileCreate {
	if v != nil {
		_c.SetTempPath(*v)
	}
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *UploadSessionFileCreate) SetChecksum(v string) *UploadSessionFileCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_c *UploadSessionFileCreate) SetNillableChecksum(v *string) *UploadSessionFileCreate {
	if v != nil {
		_c.SetChecksum(*v)
	}
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *UploadSessionFileCreate) SetProcessed(v bool) *UploadSessionFileCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *UploadSessionFileCreate) SetNillableProcessed(v *bool) *UploadSessionFileCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetResultMessage sets the "result_message" field.
func (_c *UploadSessionFileCreate) SetResultMessage(v string) *UploadSessionFileCreate {
	_c.mutation.SetResultMessage(v)
	return _c
}

// SetNillableResultMessage sets the "result_message" field if the given value is not nil.
func (_c *UploadSessionFileCreate) SetNillableResultMessage(v *string) *UploadSessionFileCreate {
	if v != nil {
		_c.SetResultMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadSessionFileCreate) SetID(v ulid.ULID) *UploadSessionFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadSessionFileCreate) SetNillableID(v *ulid.ULID) *UploadSessionFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_c *UploadSessionFileCreate) SetSession(v *UploadSession) *UploadSessionFileCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the UploadSessionFileMutation object of the builder.
func (_c *UploadSessionFileCreate) Mutation() *UploadSessionFileMutation {
	return _c.mutation
}

// Save creates the UploadSessionFile in the database.
func (_c *UploadSessionFileCreate) Save(ctx context.Context) (*UploadSessionFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadSessionFileCreate) SaveX(ctx context.Context) *UploadSessionFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadSessionFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadSessionFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadSessionFileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uploadsessionfile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := uploadsessionfile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		v := uploadsessionfile.DefaultContentType
		_c.mutation.SetContentType(v)
	}
	if _, ok := _c.mutation.ByteLength(); !ok {
		v := uploadsessionfile.DefaultByteLength
		_c.mutation.SetByteLength(v)
	}
	if _, ok := _c.mutation.TempPath(); !ok {
		v := uploadsessionfile.DefaultTempPath
		_c.mutation.SetTempPath(v)
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		v := uploadsessionfile.DefaultChecksum
		_c.mutation.SetChecksum(v)
	}
	if _, ok := _c.mutation.Processed(); !ok {
		v := uploadsessionfile.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.ResultMessage(); !ok {
		v := uploadsessionfile.DefaultResultMessage
		_c.mutation.SetResultMessage(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := uploadsessionfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadSessionFileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "UploadSessionFile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "UploadSessionFile.updated_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`generated: missing required field "UploadSessionFile.session_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`generated: missing required field "UploadSessionFile.display_name"`)}
	}
	if _, ok := _c.mutation.OriginalName(); !ok {
		return &ValidationError{Name: "original_name", err: errors.New(`generated: missing required field "UploadSessionFile.original_name"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`generated: missing required field "UploadSessionFile.content_type"`)}
	}
	if _, ok := _c.mutation.ByteLength(); !ok {
		return &ValidationError{Name: "byte_length", err: errors.New(`generated: missing required field "UploadSessionFile.byte_length"`)}
	}
	if _, ok := _c.mutation.TempPath(); !ok {
		return &ValidationError{Name: "temp_path", err: errors.New(`generated: missing required field "UploadSessionFile.temp_path"`)}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`generated: missing required field "UploadSessionFile.checksum"`)}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`generated: missing required field "UploadSessionFile.processed"`)}
	}
	if _, ok := _c.mutation.ResultMessage(); !ok {
		return &ValidationError{Name: "result_message", err: errors.New(`generated: missing required field "UploadSessionFile.result_message"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`generated: missing required edge "UploadSessionFile.session"`)}
	}
	return nil
}

func (_c *UploadSessionFileCreate) sqlSave(ctx context.Context) (*UploadSessionFile, error) {
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

func (_c *UploadSessionFileCreate) createSpec() (*UploadSessionFile, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadSessionFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadsessionfile.Table, sqlgraph.NewFieldSpec(uploadsessionfile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uploadsessionfile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadsessionfile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(uploadsessionfile.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.OriginalName(); ok {
		_spec.SetField(uploadsessionfile.FieldOriginalName, field.TypeString, value)
		_node.OriginalName = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(uploadsessionfile.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.ByteLength(); ok {
		_spec.SetField(uploadsessionfile.FieldByteLength, field.TypeInt64, value)
		_node.ByteLength = value
	}
	if value, ok := _c.mutation.TempPath(); ok {
		_spec.SetField(uploadsessionfile.FieldTempPath, field.TypeString, value)
		_node.TempPath = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(uploadsessionfile.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(uploadsessionfile.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.ResultMessage(); ok {
		_spec.SetField(uploadsessionfile.FieldResultMessage, field.TypeString, value)
		_node.ResultMessage = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UploadSessionFile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UploadSessionFileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UploadSessionFileCreate) OnConflict(opts ...sql.ConflictOption) *UploadSessionFileUpsertOne {
	_c.conflict = opts
	return &UploadSessionFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UploadSessionFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UploadSessionFileCreate) OnConflictColumns(columns ...string) *UploadSessionFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UploadSessionFileUpsertOne{
		create: _c,
	}
}

type (
	// UploadSessionFileUpsertOne is the builder for "upsert"-ing
	//  one UploadSessionFile node.
	UploadSessionFileUpsertOne struct {
		create *UploadSessionFileCreate
	}

	// UploadSessionFileUpsert is the "OnConflict" setter.
	UploadSessionFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *UploadSessionFileUpsert) SetUpdatedAt(v time.Time) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateUpdatedAt() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldUpdatedAt)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *UploadSessionFileUpsert) SetSessionID(v ulid.ULID) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateSessionID() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldSessionID)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *UploadSessionFileUpsert) SetDisplayName(v string) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateDisplayName() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldDisplayName)
	return u
}

// SetOriginalName sets the "original_name" field.
func (u *UploadSessionFileUpsert) SetOriginalName(v string) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldOriginalName, v)
	return u
}

// UpdateOriginalName sets the "original_name" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateOriginalName() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldOriginalName)
	return u
}

// SetContentType sets the "content_type" field.
func (u *UploadSessionFileUpsert) SetContentType(v string) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateContentType() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldContentType)
	return u
}

// SetByteLength sets the "byte_length" field.
func (u *UploadSessionFileUpsert) SetByteLength(v int64) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldByteLength, v)
	return u
}

// UpdateByteLength sets the "byte_length" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateByteLength() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldByteLength)
	return u
}

// AddByteLength adds v to the "byte_length" field.
func (u *UploadSessionFileUpsert) AddByteLength(v int64) *UploadSessionFileUpsert {
	u.Add(uploadsessionfile.FieldByteLength, v)
	return u
}

// SetTempPath sets the "temp_path" field.
func (u *UploadSessionFileUpsert) SetTempPath(v string) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldTempPath, v)
	return u
}

// UpdateTempPath sets the "temp_path" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateTempPath() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldTempPath)
	return u
}

// SetChecksum sets the "checksum" field.
func (u *UploadSessionFileUpsert) SetChecksum(v string) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldChecksum, v)
	return u
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateChecksum() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldChecksum)
	return u
}

// SetProcessed sets the "processed" field.
func (u *UploadSessionFileUpsert) SetProcessed(v bool) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldProcessed, v)
	return u
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateProcessed() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldProcessed)
	return u
}

// SetResultMessage sets the "result_message" field.
func (u *UploadSessionFileUpsert) SetResultMessage(v string) *UploadSessionFileUpsert {
	u.Set(uploadsessionfile.FieldResultMessage, v)
	return u
}

// UpdateResultMessage sets the "result_message" field to the value that was provided on create.
func (u *UploadSessionFileUpsert) UpdateResultMessage() *UploadSessionFileUpsert {
	u.SetExcluded(uploadsessionfile.FieldResultMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UploadSessionFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(uploadsessionfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UploadSessionFileUpsertOne) UpdateNewValues() *UploadSessionFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(uploadsessionfile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(uploadsessionfile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UploadSessionFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UploadSessionFileUpsertOne) Ignore() *UploadSessionFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UploadSessionFileUpsertOne) DoNothing() *UploadSessionFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UploadSessionFileCreate.OnConflict
// documentation for more info.
func (u *UploadSessionFileUpsertOne) Update(set func(*UploadSessionFileUpsert)) *UploadSessionFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UploadSessionFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UploadSessionFileUpsertOne) SetUpdatedAt(v time.Time) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateUpdatedAt() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSessionID sets the "session_id" field.
func (u *UploadSessionFileUpsertOne) SetSessionID(v ulid.ULID) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateSessionID() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateSessionID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *UploadSessionFileUpsertOne) SetDisplayName(v string) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateDisplayName() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateDisplayName()
	})
}

// SetOriginalName sets the "original_name" field.
func (u *UploadSessionFileUpsertOne) SetOriginalName(v string) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetOriginalName(v)
	})
}

// UpdateOriginalName sets the "original_name" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateOriginalName() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateOriginalName()
	})
}

// SetContentType sets the "content_type" field.
func (u *UploadSessionFileUpsertOne) SetContentType(v string) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateContentType() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateContentType()
	})
}

// SetByteLength sets the "byte_length" field.
func (u *UploadSessionFileUpsertOne) SetByteLength(v int64) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetByteLength(v)
	})
}

// AddByteLength adds v to the "byte_length" field.
func (u *UploadSessionFileUpsertOne) AddByteLength(v int64) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.AddByteLength(v)
	})
}

// UpdateByteLength sets the "byte_length" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateByteLength() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateByteLength()
	})
}

// SetTempPath sets the "temp_path" field.
func (u *UploadSessionFileUpsertOne) SetTempPath(v string) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetTempPath(v)
	})
}

// UpdateTempPath sets the "temp_path" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateTempPath() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateTempPath()
	})
}

// SetChecksum sets the "checksum" field.
func (u *UploadSessionFileUpsertOne) SetChecksum(v string) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetChecksum(v)
	})
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateChecksum() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateChecksum()
	})
}

// SetProcessed sets the "processed" field.
func (u *UploadSessionFileUpsertOne) SetProcessed(v bool) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetProcessed(v)
	})
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateProcessed() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateProcessed()
	})
}

// SetResultMessage sets the "result_message" field.
func (u *UploadSessionFileUpsertOne) SetResultMessage(v string) *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetResultMessage(v)
	})
}

// UpdateResultMessage sets the "result_message" field to the value that was provided on create.
func (u *UploadSessionFileUpsertOne) UpdateResultMessage() *UploadSessionFileUpsertOne {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateResultMessage()
	})
}

// Exec executes the query.
func (u *UploadSessionFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for UploadSessionFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UploadSessionFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UploadSessionFileUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: UploadSessionFileUpsertOne.ID is not supported by MySQL driver. Use UploadSessionFileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UploadSessionFileUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UploadSessionFileCreateBulk is the builder for creating many UploadSessionFile entities in bulk.
type UploadSessionFileCreateBulk struct {
	config
	err      error
	builders []*UploadSessionFileCreate
	conflict []sql.ConflictOption
}

// Save creates the UploadSessionFile entities in the database.
func (_c *UploadSessionFileCreateBulk) Save(ctx context.Context) ([]*UploadSessionFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadSessionFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadSessionFileMutation)
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
func (_c *UploadSessionFileCreateBulk) SaveX(ctx context.Context) []*UploadSessionFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadSessionFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadSessionFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UploadSessionFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UploadSessionFileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UploadSessionFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *UploadSessionFileUpsertBulk {
	_c.conflict = opts
	return &UploadSessionFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UploadSessionFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UploadSessionFileCreateBulk) OnConflictColumns(columns ...string) *UploadSessionFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UploadSessionFileUpsertBulk{
		create: _c,
	}
}

// UploadSessionFileUpsertBulk is the builder for "upsert"-ing
// a bulk of UploadSessionFile nodes.
type UploadSessionFileUpsertBulk struct {
	create *UploadSessionFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UploadSessionFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(uploadsessionfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UploadSessionFileUpsertBulk) UpdateNewValues() *UploadSessionFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(uploadsessionfile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(uploadsessionfile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UploadSessionFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UploadSessionFileUpsertBulk) Ignore() *UploadSessionFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UploadSessionFileUpsertBulk) DoNothing() *UploadSessionFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UploadSessionFileCreateBulk.OnConflict
// documentation for more info.
func (u *UploadSessionFileUpsertBulk) Update(set func(*UploadSessionFileUpsert)) *UploadSessionFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UploadSessionFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UploadSessionFileUpsertBulk) SetUpdatedAt(v time.Time) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateUpdatedAt() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetSessionID sets the "session_id" field.
func (u *UploadSessionFileUpsertBulk) SetSessionID(v ulid.ULID) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateSessionID() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateSessionID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *UploadSessionFileUpsertBulk) SetDisplayName(v string) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateDisplayName() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateDisplayName()
	})
}

// SetOriginalName sets the "original_name" field.
func (u *UploadSessionFileUpsertBulk) SetOriginalName(v string) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetOriginalName(v)
	})
}

// UpdateOriginalName sets the "original_name" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateOriginalName() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateOriginalName()
	})
}

// SetContentType sets the "content_type" field.
func (u *UploadSessionFileUpsertBulk) SetContentType(v string) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateContentType() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateContentType()
	})
}

// SetByteLength sets the "byte_length" field.
func (u *UploadSessionFileUpsertBulk) SetByteLength(v int64) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetByteLength(v)
	})
}

// AddByteLength adds v to the "byte_length" field.
func (u *UploadSessionFileUpsertBulk) AddByteLength(v int64) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.AddByteLength(v)
	})
}

// UpdateByteLength sets the "byte_length" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateByteLength() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateByteLength()
	})
}

// SetTempPath sets the "temp_path" field.
func (u *UploadSessionFileUpsertBulk) SetTempPath(v string) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetTempPath(v)
	})
}

// UpdateTempPath sets the "temp_path" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateTempPath() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateTempPath()
	})
}

// SetChecksum sets the "checksum" field.
func (u *UploadSessionFileUpsertBulk) SetChecksum(v string) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetChecksum(v)
	})
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateChecksum() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateChecksum()
	})
}

// SetProcessed sets the "processed" field.
func (u *UploadSessionFileUpsertBulk) SetProcessed(v bool) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetProcessed(v)
	})
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateProcessed() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateProcessed()
	})
}

// SetResultMessage sets the "result_message" field.
func (u *UploadSessionFileUpsertBulk) SetResultMessage(v string) *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.SetResultMessage(v)
	})
}

// UpdateResultMessage sets the "result_message" field to the value that was provided on create.
func (u *UploadSessionFileUpsertBulk) UpdateResultMessage() *UploadSessionFileUpsertBulk {
	return u.Update(func(s *UploadSessionFileUpsert) {
		s.UpdateResultMessage()
	})
}

// Exec executes the query.
func (u *UploadSessionFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the UploadSessionFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for UploadSessionFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UploadSessionFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
