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
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	ulid "github.com/oklog/ulid/v2"
)

// RecitationUpdate is the builder for updating Recitation entities.
type RecitationUpdate struct {
	config
	hooks    []Hook
	mutation *RecitationMutation
}

// Where appends a list predicates to the RecitationUpdate builder.
func (_u *RecitationUpdate) Where(ps ...predicate.Recitation) *RecitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecitationUpdate) SetUpdatedAt(v time.Time) *RecitationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RecitationUpdate) SetUserID(v uuid.UUID) *RecitationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableUserID(v *uuid.UUID) *RecitationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPoemID sets the "poem_id" field.
func (_u *RecitationUpdate) SetPoemID(v int) *RecitationUpdate {
	_u.mutation.SetPoemID(v)
	return _u
}

// SetNillablePoemID sets the "poem_id" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillablePoemID(v *int) *RecitationUpdate {
	if v != nil {
		_u.SetPoemID(*v)
	}
	return _u
}

// SetAudioOrder sets the "audio_order" field.
func (_u *RecitationUpdate) SetAudioOrder(v int) *RecitationUpdate {
	_u.mutation.ResetAudioOrder()
	_u.mutation.SetAudioOrder(v)
	return _u
}

// SetNillableAudioOrder sets the "audio_order" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableAudioOrder(v *int) *RecitationUpdate {
	if v != nil {
		_u.SetAudioOrder(*v)
	}
	return _u
}

// AddAudioOrder adds value to the "audio_order" field.
func (_u *RecitationUpdate) AddAudioOrder(v int) *RecitationUpdate {
	_u.mutation.AddAudioOrder(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecitationUpdate) SetTitle(v string) *RecitationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableTitle(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetArtistName sets the "artist_name" field.
func (_u *RecitationUpdate) SetArtistName(v string) *RecitationUpdate {
	_u.mutation.SetArtistName(v)
	return _u
}

// SetNillableArtistName sets the "artist_name" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableArtistName(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetArtistName(*v)
	}
	return _u
}

// SetArtistURL sets the "artist_url" field.
func (_u *RecitationUpdate) SetArtistURL(v string) *RecitationUpdate {
	_u.mutation.SetArtistURL(v)
	return _u
}

// SetNillableArtistURL sets the "artist_url" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableArtistURL(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetArtistURL(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *RecitationUpdate) SetSourceName(v string) *RecitationUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableSourceName(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *RecitationUpdate) SetSourceURL(v string) *RecitationUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableSourceURL(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetFileSuffix sets the "file_suffix" field.
func (_u *RecitationUpdate) SetFileSuffix(v string) *RecitationUpdate {
	_u.mutation.SetFileSuffix(v)
	return _u
}

// SetNillableFileSuffix sets the "file_suffix" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableFileSuffix(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetFileSuffix(*v)
	}
	return _u
}

// SetLegacyGUID sets the "legacy_guid" field.
func (_u *RecitationUpdate) SetLegacyGUID(v uuid.UUID) *RecitationUpdate {
	_u.mutation.SetLegacyGUID(v)
	return _u
}

// SetNillableLegacyGUID sets the "legacy_guid" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableLegacyGUID(v *uuid.UUID) *RecitationUpdate {
	if v != nil {
		_u.SetLegacyGUID(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *RecitationUpdate) SetChecksum(v string) *RecitationUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableChecksum(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetMp3Size sets the "mp3_size" field.
func (_u *RecitationUpdate) SetMp3Size(v int64) *RecitationUpdate {
	_u.mutation.ResetMp3Size()
	_u.mutation.SetMp3Size(v)
	return _u
}

// SetNillableMp3Size sets the "mp3_size" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableMp3Size(v *int64) *RecitationUpdate {
	if v != nil {
		_u.SetMp3Size(*v)
	}
	return _u
}

// AddMp3Size adds value to the "mp3_size" field.
func (_u *RecitationUpdate) AddMp3Size(v int64) *RecitationUpdate {
	_u.mutation.AddMp3Size(v)
	return _u
}

// SetFileStem sets the "file_stem" field.
func (_u *RecitationUpdate) SetFileStem(v string) *RecitationUpdate {
	_u.mutation.SetFileStem(v)
	return _u
}

// SetNillableFileStem sets the "file_stem" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableFileStem(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetFileStem(*v)
	}
	return _u
}

// SetSoundFolder sets the "sound_folder" field.
func (_u *RecitationUpdate) SetSoundFolder(v string) *RecitationUpdate {
	_u.mutation.SetSoundFolder(v)
	return _u
}

// SetNillableSoundFolder sets the "sound_folder" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableSoundFolder(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetSoundFolder(*v)
	}
	return _u
}

// SetLocalMp3Path sets the "local_mp3_path" field.
func (_u *RecitationUpdate) SetLocalMp3Path(v string) *RecitationUpdate {
	_u.mutation.SetLocalMp3Path(v)
	return _u
}

// SetNillableLocalMp3Path sets the "local_mp3_path" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableLocalMp3Path(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetLocalMp3Path(*v)
	}
	return _u
}

// SetLocalXMLPath sets the "local_xml_path" field.
func (_u *RecitationUpdate) SetLocalXMLPath(v string) *RecitationUpdate {
	_u.mutation.SetLocalXMLPath(v)
	return _u
}

// SetNillableLocalXMLPath sets the "local_xml_path" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableLocalXMLPath(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetLocalXMLPath(*v)
	}
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *RecitationUpdate) SetReviewStatus(v recitation.ReviewStatus) *RecitationUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableReviewStatus(v *recitation.ReviewStatus) *RecitationUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewMessage sets the "review_message" field.
func (_u *RecitationUpdate) SetReviewMessage(v string) *RecitationUpdate {
	_u.mutation.SetReviewMessage(v)
	return _u
}

// SetNillableReviewMessage sets the "review_message" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableReviewMessage(v *string) *RecitationUpdate {
	if v != nil {
		_u.SetReviewMessage(*v)
	}
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *RecitationUpdate) SetReviewedAt(v time.Time) *RecitationUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableReviewedAt(v *time.Time) *RecitationUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *RecitationUpdate) ClearReviewedAt() *RecitationUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *RecitationUpdate) SetReviewerID(v uuid.UUID) *RecitationUpdate {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableReviewerID(v *uuid.UUID) *RecitationUpdate {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *RecitationUpdate) ClearReviewerID() *RecitationUpdate {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetFileUpdatedAt sets the "file_updated_at" field.
func (_u *RecitationUpdate) SetFileUpdatedAt(v time.Time) *RecitationUpdate {
	_u.mutation.SetFileUpdatedAt(v)
	return _u
}

// SetNillableFileUpdatedAt sets the "file_updated_at" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableFileUpdatedAt(v *time.Time) *RecitationUpdate {
	if v != nil {
		_u.SetFileUpdatedAt(*v)
	}
	return _u
}

// ClearFileUpdatedAt clears the value of the "file_updated_at" field.
func (_u *RecitationUpdate) ClearFileUpdatedAt() *RecitationUpdate {
	_u.mutation.ClearFileUpdatedAt()
	return _u
}

// SetSyncStatus sets the "sync_status" field.
func (_u *RecitationUpdate) SetSyncStatus(v recitation.SyncStatus) *RecitationUpdate {
	_u.mutation.SetSyncStatus(v)
	return _u
}

// SetNillableSyncStatus sets the "sync_status" field if the given value is not nil.
func (_u *RecitationUpdate) SetNillableSyncStatus(v *recitation.SyncStatus) *RecitationUpdate {
	if v != nil {
		_u.SetSyncStatus(*v)
	}
	return _u
}

// SetPoem sets the "poem" edge to the Poem entity.
func (_u *RecitationUpdate) SetPoem(v *Poem) *RecitationUpdate {
	return _u.SetPoemID(v.ID)
}

// AddTrackerIDs adds the "trackers" edge to the PublishTracker entity by IDs.
func (_u *RecitationUpdate) AddTrackerIDs(ids ...ulid.ULID) *RecitationUpdate {
	_u.mutation.AddTrackerIDs(ids...)
	return _u
}

// AddTrackers adds the "trackers" edges to the PublishTracker entity.
func (_u *RecitationUpdate) AddTrackers(v ...*PublishTracker) *RecitationUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrackerIDs(ids...)
}

// Mutation returns the RecitationMutation object of the builder.
func (_u *RecitationUpdate) Mutation() *RecitationMutation {
	return _u.mutation
}

// ClearPoem clears the "poem" edge to the Poem entity.
func (_u *RecitationUpdate) ClearPoem() *RecitationUpdate {
	_u.mutation.ClearPoem()
	return _u
}

// ClearTrackers clears all "trackers" edges to the PublishTracker entity.
func (_u *RecitationUpdate) ClearTrackers() *RecitationUpdate {
	_u.mutation.ClearTrackers()
	return _u
}

// RemoveTrackerIDs removes the "trackers" edge to PublishTracker entities by IDs.
func (_u *RecitationUpdate) RemoveTrackerIDs(ids ...ulid.ULID) *RecitationUpdate {
	_u.mutation.RemoveTrackerIDs(ids...)
	return _u
}

// RemoveTrackers removes "trackers" edges to PublishTracker entities.
func (_u *RecitationUpdate) RemoveTrackers(v ...*PublishTracker) *RecitationUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrackerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecitationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecitationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recitation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecitationUpdate) check() error {
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := recitation.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`generated: validator failed for field "Recitation.review_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncStatus(); ok {
		if err := recitation.SyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "sync_status", err: fmt.Errorf(`generated: validator failed for field "Recitation.sync_status": %w`, err)}
		}
	}
	if _u.mutation.PoemCleared() && len(_u.mutation.PoemIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Recitation.poem"`)
	}
	return nil
}

func (_u *RecitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recitation.Table, recitation.Columns, sqlgraph.NewFieldSpec(recitation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recitation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(recitation.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AudioOrder(); ok {
		_spec.SetField(recitation.FieldAudioOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioOrder(); ok {
		_spec.AddField(recitation.FieldAudioOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recitation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtistName(); ok {
		_spec.SetField(recitation.FieldArtistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtistURL(); ok {
		_spec.SetField(recitation.FieldArtistURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(recitation.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(recitation.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSuffix(); ok {
		_spec.SetField(recitation.FieldFileSuffix, field.TypeString, value)
	}
	if value, ok := _u.mutation.LegacyGUID(); ok {
		_spec.SetField(recitation.FieldLegacyGUID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(recitation.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mp3Size(); ok {
		_spec.SetField(recitation.FieldMp3Size, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMp3Size(); ok {
		_spec.AddField(recitation.FieldMp3Size, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileStem(); ok {
		_spec.SetField(recitation.FieldFileStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.SoundFolder(); ok {
		_spec.SetField(recitation.FieldSoundFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocalMp3Path(); ok {
		_spec.SetField(recitation.FieldLocalMp3Path, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocalXMLPath(); ok {
		_spec.SetField(recitation.FieldLocalXMLPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(recitation.FieldReviewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewMessage(); ok {
		_spec.SetField(recitation.FieldReviewMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(recitation.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(recitation.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(recitation.FieldReviewerID, field.TypeUUID, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(recitation.FieldReviewerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FileUpdatedAt(); ok {
		_spec.SetField(recitation.FieldFileUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileUpdatedAtCleared() {
		_spec.ClearField(recitation.FieldFileUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SyncStatus(); ok {
		_spec.SetField(recitation.FieldSyncStatus, field.TypeEnum, value)
	}
	if _u.mutation.PoemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recitation.PoemTable,
			Columns: []string{recitation.PoemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PoemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recitation.PoemTable,
			Columns: []string{recitation.PoemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrackersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recitation.TrackersTable,
			Columns: []string{recitation.TrackersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrackersIDs(); len(nodes) > 0 && !_u.mutation.TrackersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recitation.TrackersTable,
			Columns: []string{recitation.TrackersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recitation.TrackersTable,
			Columns: []string{recitation.TrackersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecitationUpdateOne is the builder for updating a single Recitation entity.
type RecitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecitationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecitationUpdateOne) SetUpdatedAt(v time.Time) *RecitationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RecitationUpdateOne) SetUserID(v uuid.UUID) *RecitationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableUserID(v *uuid.UUID) *RecitationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPoemID sets the "poem_id" field.
func (_u *RecitationUpdateOne) SetPoemID(v int) *RecitationUpdateOne {
	_u.mutation.SetPoemID(v)
	return _u
}

// SetNillablePoemID sets the "poem_id" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillablePoemID(v *int) *RecitationUpdateOne {
	if v != nil {
		_u.SetPoemID(*v)
	}
	return _u
}

// SetAudioOrder sets the "audio_order" field.
func (_u *RecitationUpdateOne) SetAudioOrder(v int) *RecitationUpdateOne {
	_u.mutation.ResetAudioOrder()
	_u.mutation.SetAudioOrder(v)
	return _u
}

// SetNillableAudioOrder sets the "audio_order" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableAudioOrder(v *int) *RecitationUpdateOne {
	if v != nil {
		_u.SetAudioOrder(*v)
	}
	return _u
}

// AddAudioOrder adds value to the "audio_order" field.
func (_u *RecitationUpdateOne) AddAudioOrder(v int) *RecitationUpdateOne {
	_u.mutation.AddAudioOrder(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecitationUpdateOne) SetTitle(v string) *RecitationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableTitle(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetArtistName sets the "artist_name" field.
func (_u *RecitationUpdateOne) SetArtistName(v string) *RecitationUpdateOne {
	_u.mutation.SetArtistName(v)
	return _u
}

// SetNillableArtistName sets the "artist_name" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableArtistName(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetArtistName(*v)
	}
	return _u
}

// SetArtistURL sets the "artist_url" field.
func (_u *RecitationUpdateOne) SetArtistURL(v string) *RecitationUpdateOne {
	_u.mutation.SetArtistURL(v)
	return _u
}

// SetNillableArtistURL sets the "artist_url" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableArtistURL(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetArtistURL(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *RecitationUpdateOne) SetSourceName(v string) *RecitationUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableSourceName(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *RecitationUpdateOne) SetSourceURL(v string) *RecitationUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableSourceURL(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetFileSuffix sets the "file_suffix" field.
func (_u *RecitationUpdateOne) SetFileSuffix(v string) *RecitationUpdateOne {
	_u.mutation.SetFileSuffix(v)
	return _u
}

// SetNillableFileSuffix sets the "file_suffix" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableFileSuffix(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetFileSuffix(*v)
	}
	return _u
}

// SetLegacyGUID sets the "legacy_guid" field.
func (_u *RecitationUpdateOne) SetLegacyGUID(v uuid.UUID) *RecitationUpdateOne {
	_u.mutation.SetLegacyGUID(v)
	return _u
}

// SetNillableLegacyGUID sets the "legacy_guid" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableLegacyGUID(v *uuid.UUID) *RecitationUpdateOne {
	if v != nil {
		_u.SetLegacyGUID(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *RecitationUpdateOne) SetChecksum(v string) *RecitationUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableChecksum(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetMp3Size sets the "mp3_size" field.
func (_u *RecitationUpdateOne) SetMp3Size(v int64) *RecitationUpdateOne {
	_u.mutation.ResetMp3Size()
	_u.mutation.SetMp3Size(v)
	return _u
}

// SetNillableMp3Size sets the "mp3_size" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableMp3Size(v *int64) *RecitationUpdateOne {
	if v != nil {
		_u.SetMp3Size(*v)
	}
	return _u
}

// AddMp3Size adds value to the "mp3_size" field.
func (_u *RecitationUpdateOne) AddMp3Size(v int64) *RecitationUpdateOne {
	_u.mutation.AddMp3Size(v)
	return _u
}

// SetFileStem sets the "file_stem" field.
func (_u *RecitationUpdateOne) SetFileStem(v string) *RecitationUpdateOne {
	_u.mutation.SetFileStem(v)
	return _u
}

// SetNillableFileStem sets the "file_stem" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableFileStem(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetFileStem(*v)
	}
	return _u
}

// SetSoundFolder sets the "sound_folder" field.
func (_u *RecitationUpdateOne) SetSoundFolder(v string) *RecitationUpdateOne {
	_u.mutation.SetSoundFolder(v)
	return _u
}

// SetNillableSoundFolder sets the "sound_folder" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableSoundFolder(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetSoundFolder(*v)
	}
	return _u
}

// SetLocalMp3Path sets the "local_mp3_path" field.
func (_u *RecitationUpdateOne) SetLocalMp3Path(v string) *RecitationUpdateOne {
	_u.mutation.SetLocalMp3Path(v)
	return _u
}

// SetNillableLocalMp3Path sets the "local_mp3_path" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableLocalMp3Path(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetLocalMp3Path(*v)
	}
	return _u
}

// SetLocalXMLPath sets the "local_xml_path" field.
func (_u *RecitationUpdateOne) SetLocalXMLPath(v string) *RecitationUpdateOne {
	_u.mutation.SetLocalXMLPath(v)
	return _u
}

// SetNillableLocalXMLPath sets the "local_xml_path" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableLocalXMLPath(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetLocalXMLPath(*v)
	}
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *RecitationUpdateOne) SetReviewStatus(v recitation.ReviewStatus) *RecitationUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableReviewStatus(v *recitation.ReviewStatus) *RecitationUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetReviewMessage sets the "review_message" field.
func (_u *RecitationUpdateOne) SetReviewMessage(v string) *RecitationUpdateOne {
	_u.mutation.SetReviewMessage(v)
	return _u
}

// SetNillableReviewMessage sets the "review_message" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableReviewMessage(v *string) *RecitationUpdateOne {
	if v != nil {
		_u.SetReviewMessage(*v)
	}
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *RecitationUpdateOne) SetReviewedAt(v time.Time) *RecitationUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableReviewedAt(v *time.Time) *RecitationUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *RecitationUpdateOne) ClearReviewedAt() *RecitationUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetReviewerID sets the "reviewer_id" field.
func (_u *RecitationUpdateOne) SetReviewerID(v uuid.UUID) *RecitationUpdateOne {
	_u.mutation.SetReviewerID(v)
	return _u
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableReviewerID(v *uuid.UUID) *RecitationUpdateOne {
	if v != nil {
		_u.SetReviewerID(*v)
	}
	return _u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (_u *RecitationUpdateOne) ClearReviewerID() *RecitationUpdateOne {
	_u.mutation.ClearReviewerID()
	return _u
}

// SetFileUpdatedAt sets the "file_updated_at" field.
func (_u *RecitationUpdateOne) SetFileUpdatedAt(v time.Time) *RecitationUpdateOne {
	_u.mutation.SetFileUpdatedAt(v)
	return _u
}

// SetNillableFileUpdatedAt sets the "file_updated_at" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableFileUpdatedAt(v *time.Time) *RecitationUpdateOne {
	if v != nil {
		_u.SetFileUpdatedAt(*v)
	}
	return _u
}

// ClearFileUpdatedAt clears the value of the "file_updated_at" field.
func (_u *RecitationUpdateOne) ClearFileUpdatedAt() *RecitationUpdateOne {
	_u.mutation.ClearFileUpdatedAt()
	return _u
}

// SetSyncStatus sets the "sync_status" field.
func (_u *RecitationUpdateOne) SetSyncStatus(v recitation.SyncStatus) *RecitationUpdateOne {
	_u.mutation.SetSyncStatus(v)
	return _u
}

// SetNillableSyncStatus sets the "sync_status" field if the given value is not nil.
func (_u *RecitationUpdateOne) SetNillableSyncStatus(v *recitation.SyncStatus) *RecitationUpdateOne {
	if v != nil {
		_u.SetSyncStatus(*v)
	}
	return _u
}

// SetPoem sets the "poem" edge to the Poem entity.
func (_u *RecitationUpdateOne) SetPoem(v *Poem) *RecitationUpdateOne {
	return _u.SetPoemID(v.ID)
}

// AddTrackerIDs adds the "trackers" edge to the PublishTracker entity by IDs.
func (_u *RecitationUpdateOne) AddTrackerIDs(ids ...ulid.ULID) *RecitationUpdateOne {
	_u.mutation.AddTrackerIDs(ids...)
	return _u
}

// AddTrackers adds the "trackers" edges to the PublishTracker entity.
func (_u *RecitationUpdateOne) AddTrackers(v ...*PublishTracker) *RecitationUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrackerIDs(ids...)
}

// Mutation returns the RecitationMutation object of the builder.
func (_u *RecitationUpdateOne) Mutation() *RecitationMutation {
	return _u.mutation
}

// ClearPoem clears the "poem" edge to the Poem entity.
func (_u *RecitationUpdateOne) ClearPoem() *RecitationUpdateOne {
	_u.mutation.ClearPoem()
	return _u
}

// ClearTrackers clears all "trackers" edges to the PublishTracker entity.
func (_u *RecitationUpdateOne) ClearTrackers() *RecitationUpdateOne {
	_u.mutation.ClearTrackers()
	return _u
}

// RemoveTrackerIDs removes the "trackers" edge to PublishTracker entities by IDs.
func (_u *RecitationUpdateOne) RemoveTrackerIDs(ids ...ulid.ULID) *RecitationUpdateOne {
	_u.mutation.RemoveTrackerIDs(ids...)
	return _u
}

// RemoveTrackers removes "trackers" edges to PublishTracker entities.
func (_u *RecitationUpdateOne) RemoveTrackers(v ...*PublishTracker) *RecitationUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrackerIDs(ids...)
}

// Where appends a list predicates to the RecitationUpdate builder.
func (_u *RecitationUpdateOne) Where(ps ...predicate.Recitation) *RecitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecitationUpdateOne) Select(field string, fields ...string) *RecitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recitation entity.
func (_u *RecitationUpdateOne) Save(ctx context.Context) (*Recitation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecitationUpdateOne) SaveX(ctx context.Context) *Recitation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecitationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recitation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecitationUpdateOne) check() error {
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := recitation.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`generated: validator failed for field "Recitation.review_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncStatus(); ok {
		if err := recitation.SyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "sync_status", err: fmt.Errorf(`generated: validator failed for field "Recitation.sync_status": %w`, err)}
		}
	}
	if _u.mutation.PoemCleared() && len(_u.mutation.PoemIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Recitation.poem"`)
	}
	return nil
}

func (_u *RecitationUpdateOne) sqlSave(ctx context.Context) (_node *Recitation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recitation.Table, recitation.Columns, sqlgraph.NewFieldSpec(recitation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Recitation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recitation.FieldID)
		for _, f := range fields {
			if !recitation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != recitation.FieldID {
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
		_spec.SetField(recitation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(recitation.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AudioOrder(); ok {
		_spec.SetField(recitation.FieldAudioOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioOrder(); ok {
		_spec.AddField(recitation.FieldAudioOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recitation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtistName(); ok {
		_spec.SetField(recitation.FieldArtistName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtistURL(); ok {
		_spec.SetField(recitation.FieldArtistURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(recitation.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(recitation.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSuffix(); ok {
		_spec.SetField(recitation.FieldFileSuffix, field.TypeString, value)
	}
	if value, ok := _u.mutation.LegacyGUID(); ok {
		_spec.SetField(recitation.FieldLegacyGUID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(recitation.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mp3Size(); ok {
		_spec.SetField(recitation.FieldMp3Size, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMp3Size(); ok {
		_spec.AddField(recitation.FieldMp3Size, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileStem(); ok {
		_spec.SetField(recitation.FieldFileStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.SoundFolder(); ok {
		_spec.SetField(recitation.FieldSoundFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocalMp3Path(); ok {
		_spec.SetField(recitation.FieldLocalMp3Path, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocalXMLPath(); ok {
		_spec.SetField(recitation.FieldLocalXMLPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(recitation.FieldReviewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewMessage(); ok {
		_spec.SetField(recitation.FieldReviewMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(recitation.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(recitation.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewerID(); ok {
		_spec.SetField(recitation.FieldReviewerID, field.TypeUUID, value)
	}
	if _u.mutation.ReviewerIDCleared() {
		_spec.ClearField(recitation.FieldReviewerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FileUpdatedAt(); ok {
		_spec.SetField(recitation.FieldFileUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileUpdatedAtCleared() {
		_spec.ClearField(recitation.FieldFileUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SyncStatus(); ok {
		_spec.SetField(recitation.FieldSyncStatus, field.TypeEnum, value)
	}
	if _u.mutation.PoemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recitation.PoemTable,
			Columns: []string{recitation.PoemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PoemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recitation.PoemTable,
			Columns: []string{recitation.PoemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrackersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recitation.TrackersTable,
			Columns: []string{recitation.TrackersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrackersIDs(); len(nodes) > 0 && !_u.mutation.TrackersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recitation.TrackersTable,
			Columns: []string{recitation.TrackersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recitation.TrackersTable,
			Columns: []string{recitation.TrackersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recitation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
