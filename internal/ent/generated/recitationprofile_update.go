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
	"github.com/khanesh/khanesh/internal/ent/generated/recitationprofile"
)

// RecitationProfileUpdate is the builder for updating RecitationProfile entities.
type RecitationProfileUpdate struct {
	config
	hooks    []Hook
	mutation *RecitationProfileMutation
}

// Where appends a list predicates to the RecitationProfileUpdate builder.
func (_u *RecitationProfileUpdate) Where(ps ...predicate.RecitationProfile) *RecitationProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecitationProfileUpdate) SetUpdatedAt(v time.Time) *RecitationProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RecitationProfileUpdate) SetDeletedAt(v time.Time) *RecitationProfileUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RecitationProfileUpdate) SetNillableDeletedAt(v *time.Time) *RecitationProfileUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RecitationProfileUpdate) ClearDeletedAt() *RecitationProfileUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RecitationProfileUpdate) SetUserID(v uuid.UUID) *RecitationProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecitationProfileUpdate) SetNillableUserID(v *uuid.UUID) *RecitationProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RecitationProfileUpdate) SetName(v string) *RecitationProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecitationProfileUpdate) SetNillableName(v *string) *RecitationProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetArtistName sets the "artist_name" field.
func (_u *RecitationProfileUpdate) SetArtistName(v string) *RecitationProfileUpdate {
	_u.mutation.SetArtistName(v)
	return _u
}

// SetNillableArtistName sets the "artist_name" field if the given value is not nil.
func (_u *RecitationProfileUpdate) SetNillableArtistName(v *string) *RecitationProfileUpdate {
	if v != nil {
		_u.SetArtistName(*v)
	}
	return _u
}

// SetArtistURL sets the "artist_url" field.
func (_u *RecitationProfileUpdate) SetArtistURL(v string) *RecitationProfileUpdate {
	_u.mutation.SetArtistURL(v)
	return _u
}

// SetNillableArtistURL sets the "artist_url" field if the given value is not nil.
func (_u *RecitationProfileUpdate) SetNillableArtistURL(v *string) *RecitationProfileUpdate {
	if v != nil {
		_u.SetArtistURL(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *RecitationProfileUpdate) SetSourceName(v string) *RecitationProfileUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *RecitationProfileUpdate) SetNillableSourceName(v *string) *RecitationProfileUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *RecitationProfileUpdate) SetSourceURL(v string) *RecitationProfileUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *RecitationProfileUpdate) SetNillableSourceURL(v *string) *RecitationProfileUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetFileSuffix sets the "file_suffix" field.
func (_u *RecitationProfileUpdate) SetFileSuffix(v string) *RecitationProfileUpdate {
	_u.mutation.SetFileSuffix(v)
	return _u
}

// SetNillableFileSuffix sets the "file_suffix" field if the given value is not nil.
func (_u *RecitationProfileUpdate) SetNillableFileSuffix(v *string) *RecitationProfileUpdate {
	if v != nil {
		_u.SetFileSuffix(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *RecitationProfileUpdate) SetIsDefault(v bool) *RecitationProfileUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *RecitationProfileUpdate) SetNillableIsDefault(v *bool) *RecitationProfileUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the RecitationProfileMutation object of the builder.
func (_u *RecitationProfileUpdate) Mutation() *RecitationProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecitationProfileUpdate) Save(ctx context.Context) (int, error) {
	if err := _u.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecitationProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecitationProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecitationProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecitationProfileUpdate) defaults() error {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		if recitationprofile.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("generated: uninitialized recitationprofile.UpdateDefaultUpdatedAt (forgotten import generated/runtime?)")
		}
		v := recitationprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
	return nil
}

func (_u *RecitationProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(recitationprofile.Table, recitationprofile.Columns, sqlgraph.NewFieldSpec(recitationprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recitationprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(recitationprofile.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(recitationprofile.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(recitationprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recitationprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtistName(); ok {
		_spec.SetField(recitationprofile.FieldArtistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtistURL(); ok {
		_spec.SetField(recitationprofile.FieldArtistURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(recitationprofile.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(recitationprofile.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSuffix(); ok {
		_spec.SetField(recitationprofile.FieldFileSuffix, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(recitationprofile.FieldIsDefault, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recitationprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecitationProfileUpdateOne is the builder for updating a single RecitationProfile entity.
type RecitationProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecitationProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecitationProfileUpdateOne) SetUpdatedAt(v time.Time) *RecitationProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RecitationProfileUpdateOne) SetDeletedAt(v time.Time) *RecitationProfileUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RecitationProfileUpdateOne) SetNillableDeletedAt(v *time.Time) *RecitationProfileUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RecitationProfileUpdateOne) ClearDeletedAt() *RecitationProfileUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RecitationProfileUpdateOne) SetUserID(v uuid.UUID) *RecitationProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecitationProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *RecitationProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RecitationProfileUpdateOne) SetName(v string) *RecitationProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecitationProfileUpdateOne) SetNillableName(v *string) *RecitationProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetArtistName sets the "artist_name" field.
func (_u *RecitationProfileUpdateOne) SetArtistName(v string) *RecitationProfileUpdateOne {
	_u.mutation.SetArtistName(v)
	return _u
}

// SetNillableArtistName sets the "artist_name" field if the given value is not nil.
func (_u *RecitationProfileUpdateOne) SetNillableArtistName(v *string) *RecitationProfileUpdateOne {
	if v != nil {
		_u.SetArtistName(*v)
	}
	return _u
}

// SetArtistURL sets the "artist_url" field.
func (_u *RecitationProfileUpdateOne) SetArtistURL(v string) *RecitationProfileUpdateOne {
	_u.mutation.SetArtistURL(v)
	return _u
}

// SetNillableArtistURL sets the "artist_url" field if the given value is not nil.
func (_u *RecitationProfileUpdateOne) SetNillableArtistURL(v *string) *RecitationProfileUpdateOne {
	if v != nil {
		_u.SetArtistURL(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *RecitationProfileUpdateOne) SetSourceName(v string) *RecitationProfileUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *RecitationProfileUpdateOne) SetNillableSourceName(v *string) *RecitationProfileUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *RecitationProfileUpdateOne) SetSourceURL(v string) *RecitationProfileUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *RecitationProfileUpdateOne) SetNillableSourceURL(v *string) *RecitationProfileUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetFileSuffix sets the "file_suffix" field.
func (_u *RecitationProfileUpdateOne) SetFileSuffix(v string) *RecitationProfileUpdateOne {
	_u.mutation.SetFileSuffix(v)
	return _u
}

// SetNillableFileSuffix sets the "file_suffix" field if the given value is not nil.
func (_u *RecitationProfileUpdateOne) SetNillableFileSuffix(v *string) *RecitationProfileUpdateOne {
	if v != nil {
		_u.SetFileSuffix(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *RecitationProfileUpdateOne) SetIsDefault(v bool) *RecitationProfileUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *RecitationProfileUpdateOne) SetNillableIsDefault(v *bool) *RecitationProfileUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the RecitationProfileMutation object of the builder.
func (_u *RecitationProfileUpdateOne) Mutation() *RecitationProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecitationProfileUpdate builder.
func (_u *RecitationProfileUpdateOne) Where(ps ...predicate.RecitationProfile) *RecitationProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecitationProfileUpdateOne) Select(field string, fields ...string) *RecitationProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecitationProfile entity.
func (_u *RecitationProfileUpdateOne) Save(ctx context.Context) (*RecitationProfile, error) {
	if err := _u.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecitationProfileUpdateOne) SaveX(ctx context.Context) *RecitationProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecitationProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecitationProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecitationProfileUpdateOne) defaults() error {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		if recitationprofile.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("generated: uninitialized recitationprofile.UpdateDefaultUpdatedAt (forgotten import generated/runtime?)")
		}
		v := recitationprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
	return nil
}

func (_u *RecitationProfileUpdateOne) sqlSave(ctx context.Context) (_node *RecitationProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(recitationprofile.Table, recitationprofile.Columns, sqlgraph.NewFieldSpec(recitationprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "RecitationProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recitationprofile.FieldID)
		for _, f := range fields {
			if !recitationprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != recitationprofile.FieldID {
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
		_spec.SetField(recitationprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(recitationprofile.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(recitationprofile.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(recitationprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recitationprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtistName(); ok {
		_spec.SetField(recitationprofile.FieldArtistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtistURL(); ok {
		_spec.SetField(recitationprofile.FieldArtistURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(recitationprofile.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(recitationprofile.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSuffix(); ok {
		_spec.SetField(recitationprofile.FieldFileSuffix, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(recitationprofile.FieldIsDefault, field.TypeBool, value)
	}
	_node = &RecitationProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recitationprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
