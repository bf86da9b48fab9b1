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
	"github.com/khanesh/khanesh/internal/ent/generated/recitationprofile"
	ulid "github.com/oklog/ulid/v2"
)

// RecitationProfileCreate is the builder for creating a RecitationProfile entity.
type RecitationProfileCreate struct {
	config
	mutation *RecitationProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecitationProfileCreate) SetCreatedAt(v time.Time) *RecitationProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecitationProfileCreate) SetNillableCreatedAt(v *time.Time) *RecitationProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecitationProfileCreate) SetUpdatedAt(v time.Time) *RecitationProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecitationProfileCreate) SetNillableUpdatedAt(v *time.Time) *RecitationProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *RecitationProfileCreate) SetDeletedAt(v time.Time) *RecitationProfileCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *RecitationProfileCreate) SetNillableDeletedAt(v *time.Time) *RecitationProfileCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RecitationProfileCreate) SetUserID(v uuid.UUID) *RecitationProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RecitationProfileCreate) SetName(v string) *RecitationProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetArtistName sets the "artist_name" field.
func (_c *RecitationProfileCreate) SetArtistName(v string) *RecitationProfileCreate {
	_c.mutation.SetArtistName(v)
	return _c
}

// SetArtistURL sets the "artist_url" field.
func (_c *RecitationProfileCreate) SetArtistURL(v string) *RecitationProfileCreate {
	_c.mutation.SetArtistURL(v)
	return _c
}

// SetNillableArtistURL sets the "artist_url" field if the given value is not nil.
func (_c *RecitationProfileCreate) SetNillableArtistURL(v *string) *RecitationProfileCreate {
	if v != nil {
		_c.SetArtistURL(*v)
	}
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *RecitationProfileCreate) SetSourceName(v string) *RecitationProfileCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_c *RecitationProfileCreate) SetNillableSourceName(v *string) *RecitationProfileCreate {
	if v != nil {
		_c.SetSourceName(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *RecitationProfileCreate) SetSourceURL(v string) *RecitationProfileCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *RecitationProfileCreate) SetNillableSourceURL(v *string) *RecitationProfileCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetFileSuffix sets the "file_suffix" field.
func (_c *RecitationProfileCreate) SetFileSuffix(v string) *RecitationProfileCreate {
	_c.mutation.SetFileSuffix(v)
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *RecitationProfileCreate) SetIsDefault(v bool) *RecitationProfileCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *RecitationProfileCreate) SetNillableIsDefault(v *bool) *RecitationProfileCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecitationProfileCreate) SetID(v ulid.ULID) *RecitationProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecitationProfileCreate) SetNillableID(v *ulid.ULID) *RecitationProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RecitationProfileMutation object of the builder.
func (_c *RecitationProfileCreate) Mutation() *RecitationProfileMutation {
	return _c.mutation
}

// Save creates the RecitationProfile in the database.
func (_c *RecitationProfileCreate) Save(ctx context.Context) (*RecitationProfile, error) {
	if err := _c.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecitationProfileCreate) SaveX(ctx context.Context) *RecitationProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecitationProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecitationProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecitationProfileCreate) defaults() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		if recitationprofile.DefaultCreatedAt == nil {
			return fmt.Errorf("generated: uninitialized recitationprofile.DefaultCreatedAt (forgotten import generated/runtime?)")
		}
		v := recitationprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		if recitationprofile.DefaultUpdatedAt == nil {
			return fmt.Errorf("generated: uninitialized recitationprofile.DefaultUpdatedAt (forgotten import generated/runtime?)")
		}
		v := recitationprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ArtistURL(); !ok {
		v := recitationprofile.DefaultArtistURL
		_c.mutation.SetArtistURL(v)
	}
	if _, ok := _c.mutation.SourceName(); !ok {
		v := recitationprofile.DefaultSourceName
		_c.mutation.SetSourceName(v)
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		v := recitationprofile.DefaultSourceURL
		_c.mutation.SetSourceURL(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := recitationprofile.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		if recitationprofile.DefaultID == nil {
			return fmt.Errorf("generated: uninitialized recitationprofile.DefaultID (forgotten import generated/runtime?)")
		}
		v := recitationprofile.DefaultID()
		_c.mutation.SetID(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecitationProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "RecitationProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "RecitationProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`generated: missing required field "RecitationProfile.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`generated: missing required field "RecitationProfile.name"`)}
	}
	if _, ok := _c.mutation.ArtistName(); !ok {
		return &ValidationError{Name: "artist_name", err: errors.New(`generated: missing required field "RecitationProfile.artist_name"`)}
	}
	if _, ok := _c.mutation.ArtistURL(); !ok {
		return &ValidationError{Name: "artist_url", err: errors.New(`generated: missing required field "RecitationProfile.artist_url"`)}
	}
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`generated: missing required field "RecitationProfile.source_name"`)}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`generated: missing required field "RecitationProfile.source_url"`)}
	}
	if _, ok := _c.mutation.FileSuffix(); !ok {
		return &ValidationError{Name: "file_suffix", err: errors.New(`generated: missing required field "RecitationProfile.file_suffix"`)}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`generated: missing required field "RecitationProfile.is_default"`)}
	}
	return nil
}

func (_c *RecitationProfileCreate) sqlSave(ctx context.Context) (*RecitationProfile, error) {
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

func (_c *RecitationProfileCreate) createSpec() (*RecitationProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &RecitationProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recitationprofile.Table, sqlgraph.NewFieldSpec(recitationprofile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recitationprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recitationprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(recitationprofile.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(recitationprofile.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(recitationprofile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ArtistName(); ok {
		_spec.SetField(recitationprofile.FieldArtistName, field.TypeString, value)
		_node.ArtistName = value
	}
	if value, ok := _c.mutation.ArtistURL(); ok {
		_spec.SetField(recitationprofile.FieldArtistURL, field.TypeString, value)
		_node.ArtistURL = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(recitationprofile.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(recitationprofile.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.FileSuffix(); ok {
		_spec.SetField(recitationprofile.FieldFileSuffix, field.TypeString, value)
		_node.FileSuffix = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(recitationprofile.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RecitationProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecitationProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RecitationProfileCreate) OnConflict(opts ...sql.ConflictOption) *RecitationProfileUpsertOne {
	_c.conflict = opts
	return &RecitationProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecitationProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecitationProfileCreate) OnConflictColumns(columns ...string) *RecitationProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecitationProfileUpsertOne{
		create: _c,
	}
}

type (
	// RecitationProfileUpsertOne is the builder for "upsert"-ing
	//  one RecitationProfile node.
	RecitationProfileUpsertOne struct {
		create *RecitationProfileCreate
	}

	// RecitationProfileUpsert is the "OnConflict" setter.
	RecitationProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RecitationProfileUpsert) SetUpdatedAt(v time.Time) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateUpdatedAt() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RecitationProfileUpsert) SetDeletedAt(v time.Time) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateDeletedAt() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RecitationProfileUpsert) ClearDeletedAt() *RecitationProfileUpsert {
	u.SetNull(recitationprofile.FieldDeletedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *RecitationProfileUpsert) SetUserID(v uuid.UUID) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateUserID() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldUserID)
	return u
}

// SetName sets the "name" field.
func (u *RecitationProfileUpsert) SetName(v string) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateName() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldName)
	return u
}

// SetArtistName sets the "artist_name" field.
func (u *RecitationProfileUpsert) SetArtistName(v string) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldArtistName, v)
	return u
}

// UpdateArtistName sets the "artist_name" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateArtistName() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldArtistName)
	return u
}

// SetArtistURL sets the "artist_url" field.
func (u *RecitationProfileUpsert) SetArtistURL(v string) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldArtistURL, v)
	return u
}

// UpdateArtistURL sets the "artist_url" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateArtistURL() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldArtistURL)
	return u
}

// SetSourceName sets the "source_name" field.
func (u *RecitationProfileUpsert) SetSourceName(v string) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldSourceName, v)
	return u
}

// UpdateSourceName sets the "source_name" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateSourceName() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldSourceName)
	return u
}

// SetSourceURL sets the "source_url" field.
func (u *RecitationProfileUpsert) SetSourceURL(v string) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldSourceURL, v)
	return u
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateSourceURL() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldSourceURL)
	return u
}

// SetFileSuffix sets the "file_suffix" field.
func (u *RecitationProfileUpsert) SetFileSuffix(v string) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldFileSuffix, v)
	return u
}

// UpdateFileSuffix sets the "file_suffix" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateFileSuffix() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldFileSuffix)
	return u
}

// SetIsDefault sets the "is_default" field.
func (u *RecitationProfileUpsert) SetIsDefault(v bool) *RecitationProfileUpsert {
	u.Set(recitationprofile.FieldIsDefault, v)
	return u
}

// UpdateIsDefault sets the "is_default" field to the value that was provided on create.
func (u *RecitationProfileUpsert) UpdateIsDefault() *RecitationProfileUpsert {
	u.SetExcluded(recitationprofile.FieldIsDefault)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RecitationProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recitationprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecitationProfileUpsertOne) UpdateNewValues() *RecitationProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(recitationprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(recitationprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecitationProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RecitationProfileUpsertOne) Ignore() *RecitationProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecitationProfileUpsertOne) DoNothing() *RecitationProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecitationProfileCreate.OnConflict
// documentation for more info.
func (u *RecitationProfileUpsertOne) Update(set func(*RecitationProfileUpsert)) *RecitationProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecitationProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecitationProfileUpsertOne) SetUpdatedAt(v time.Time) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateUpdatedAt() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RecitationProfileUpsertOne) SetDeletedAt(v time.Time) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateDeletedAt() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RecitationProfileUpsertOne) ClearDeletedAt() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *RecitationProfileUpsertOne) SetUserID(v uuid.UUID) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateUserID() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *RecitationProfileUpsertOne) SetName(v string) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateName() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateName()
	})
}

// SetArtistName sets the "artist_name" field.
func (u *RecitationProfileUpsertOne) SetArtistName(v string) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetArtistName(v)
	})
}

// UpdateArtistName sets the "artist_name" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateArtistName() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateArtistName()
	})
}

// SetArtistURL sets the "artist_url" field.
func (u *RecitationProfileUpsertOne) SetArtistURL(v string) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetArtistURL(v)
	})
}

// UpdateArtistURL sets the "artist_url" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateArtistURL() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateArtistURL()
	})
}

// SetSourceName sets the "source_name" field.
func (u *RecitationProfileUpsertOne) SetSourceName(v string) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetSourceName(v)
	})
}

// UpdateSourceName sets the "source_name" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateSourceName() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateSourceName()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *RecitationProfileUpsertOne) SetSourceURL(v string) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateSourceURL() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateSourceURL()
	})
}

// SetFileSuffix sets the "file_suffix" field.
func (u *RecitationProfileUpsertOne) SetFileSuffix(v string) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetFileSuffix(v)
	})
}

// UpdateFileSuffix sets the "file_suffix" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateFileSuffix() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateFileSuffix()
	})
}

// SetIsDefault sets the "is_default" field.
func (u *RecitationProfileUpsertOne) SetIsDefault(v bool) *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetIsDefault(v)
	})
}

// UpdateIsDefault sets the "is_default" field to the value that was provided on create.
func (u *RecitationProfileUpsertOne) UpdateIsDefault() *RecitationProfileUpsertOne {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateIsDefault()
	})
}

// Exec executes the query.
func (u *RecitationProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for RecitationProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecitationProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RecitationProfileUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: RecitationProfileUpsertOne.ID is not supported by MySQL driver. Use RecitationProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RecitationProfileUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RecitationProfileCreateBulk is the builder for creating many RecitationProfile entities in bulk.
type RecitationProfileCreateBulk struct {
	config
	err      error
	builders []*RecitationProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the RecitationProfile entities in the database.
func (_c *RecitationProfileCreateBulk) Save(ctx context.Context) ([]*RecitationProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecitationProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecitationProfileMutation)
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
func (_c *RecitationProfileCreateBulk) SaveX(ctx context.Context) []*RecitationProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecitationProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecitationProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RecitationProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecitationProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RecitationProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *RecitationProfileUpsertBulk {
	_c.conflict = opts
	return &RecitationProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecitationProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecitationProfileCreateBulk) OnConflictColumns(columns ...string) *RecitationProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecitationProfileUpsertBulk{
		create: _c,
	}
}

// RecitationProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of RecitationProfile nodes.
type RecitationProfileUpsertBulk struct {
	create *RecitationProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RecitationProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recitationprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecitationProfileUpsertBulk) UpdateNewValues() *RecitationProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(recitationprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(recitationprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecitationProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RecitationProfileUpsertBulk) Ignore() *RecitationProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecitationProfileUpsertBulk) DoNothing() *RecitationProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecitationProfileCreateBulk.OnConflict
// documentation for more info.
func (u *RecitationProfileUpsertBulk) Update(set func(*RecitationProfileUpsert)) *RecitationProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecitationProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecitationProfileUpsertBulk) SetUpdatedAt(v time.Time) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateUpdatedAt() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RecitationProfileUpsertBulk) SetDeletedAt(v time.Time) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateDeletedAt() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RecitationProfileUpsertBulk) ClearDeletedAt() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *RecitationProfileUpsertBulk) SetUserID(v uuid.UUID) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateUserID() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *RecitationProfileUpsertBulk) SetName(v string) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateName() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateName()
	})
}

// SetArtistName sets the "artist_name" field.
func (u *RecitationProfileUpsertBulk) SetArtistName(v string) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetArtistName(v)
	})
}

// UpdateArtistName sets the "artist_name" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateArtistName() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateArtistName()
	})
}

// SetArtistURL sets the "artist_url" field.
func (u *RecitationProfileUpsertBulk) SetArtistURL(v string) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetArtistURL(v)
	})
}

// UpdateArtistURL sets the "artist_url" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateArtistURL() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateArtistURL()
	})
}

// SetSourceName sets the "source_name" field.
func (u *RecitationProfileUpsertBulk) SetSourceName(v string) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetSourceName(v)
	})
}

// UpdateSourceName sets the "source_name" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateSourceName() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateSourceName()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *RecitationProfileUpsertBulk) SetSourceURL(v string) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateSourceURL() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateSourceURL()
	})
}

// SetFileSuffix sets the "file_suffix" field.
func (u *RecitationProfileUpsertBulk) SetFileSuffix(v string) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetFileSuffix(v)
	})
}

// UpdateFileSuffix sets the "file_suffix" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateFileSuffix() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateFileSuffix()
	})
}

// SetIsDefault sets the "is_default" field.
func (u *RecitationProfileUpsertBulk) SetIsDefault(v bool) *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.SetIsDefault(v)
	})
}

// UpdateIsDefault sets the "is_default" field to the value that was provided on create.
func (u *RecitationProfileUpsertBulk) UpdateIsDefault() *RecitationProfileUpsertBulk {
	return u.Update(func(s *RecitationProfileUpsert) {
		s.UpdateIsDefault()
	})
}

// Exec executes the query.
func (u *RecitationProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the RecitationProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for RecitationProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecitationProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
