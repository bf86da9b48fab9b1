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
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	ulid "github.com/oklog/ulid/v2"
)

// RecitationCreate is the builder for creating a Recitation entity.
type RecitationCreate struct {
	config
	mutation *RecitationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecitationCreate) SetCreatedAt(v time.Time) *RecitationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableCreatedAt(v *time.Time) *RecitationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecitationCreate) SetUpdatedAt(v time.Time) *RecitationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableUpdatedAt(v *time.Time) *RecitationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RecitationCreate) SetUserID(v uuid.UUID) *RecitationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPoemID sets the "poem_id" field.
func (_c *RecitationCreate) SetPoemID(v int) *RecitationCreate {
	_c.mutation.SetPoemID(v)
	return _c
}

// SetAudioOrder sets the "audio_order" field.
func (_c *RecitationCreate) SetAudioOrder(v int) *RecitationCreate {
	_c.mutation.SetAudioOrder(v)
	return _c
}

// SetNillableAudioOrder sets the "audio_order" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableAudioOrder(v *int) *RecitationCreate {
	if v != nil {
		_c.SetAudioOrder(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *RecitationCreate) SetTitle(v string) *RecitationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetArtistName sets the "artist_name" field.
func (_c *RecitationCreate) SetArtistName(v string) *RecitationCreate {
	_c.mutation.SetArtistName(v)
	return _c
}

// SetArtistURL sets the "artist_url" field.
func (_c *RecitationCreate) SetArtistURL(v string) *RecitationCreate {
	_c.mutation.SetArtistURL(v)
	return _c
}

// SetNillableArtistURL sets the "artist_url" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableArtistURL(v *string) *RecitationCreate {
	if v != nil {
		_c.SetArtistURL(*v)
	}
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *RecitationCreate) SetSourceName(v string) *RecitationCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableSourceName(v *string) *RecitationCreate {
	if v != nil {
		_c.SetSourceName(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *RecitationCreate) SetSourceURL(v string) *RecitationCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableSourceURL(v *string) *RecitationCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetFileSuffix sets the "file_suffix" field.
func (_c *RecitationCreate) SetFileSuffix(v string) *RecitationCreate {
	_c.mutation.SetFileSuffix(v)
	return _c
}

// SetLegacyGUID sets the "legacy_guid" field.
func (_c *RecitationCreate) SetLegacyGUID(v uuid.UUID) *RecitationCreate {
	_c.mutation.SetLegacyGUID(v)
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *RecitationCreate) SetChecksum(v string) *RecitationCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetMp3Size sets the "mp3_size" field.
func (_c *RecitationCreate) SetMp3Size(v int64) *RecitationCreate {
	_c.mutation.SetMp3Size(v)
	return _c
}

// SetNillableMp3Size sets the "mp3_size" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableMp3Size(v *int64) *RecitationCreate {
	if v != nil {
		_c.SetMp3Size(*v)
	}
	return _c
}

// SetFileStem sets the "file_stem" field.
func (_c *RecitationCreate) SetFileStem(v string) *RecitationCreate {
	_c.mutation.SetFileStem(v)
	return _c
}

// SetSoundFolder sets the "sound_folder" field.
func (_c *RecitationCreate) SetSoundFolder(v string) *RecitationCreate {
	_c.mutation.SetSoundFolder(v)
	return _c
}

// SetNillableSoundFolder sets the "sound_folder" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableSoundFolder(v *string) *RecitationCreate {
	if v != nil {
		_c.SetSoundFolder(*v)
	}
	return _c
}

// SetLocalMp3Path sets the "local_mp3_path" field.
func (_c *RecitationCreate) SetLocalMp3Path(v string) *RecitationCreate {
	_c.mutation.SetLocalMp3Path(v)
	return _c
}

// SetNillableLocalMp3Path sets the "local_mp3_path" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableLocalMp3Path(v *string) *RecitationCreate {
	if v != nil {
		_c.SetLocalMp3Path(*v)
	}
	return _c
}

// SetLocalXMLPath sets the "local_xml_path" field.
func (_c *RecitationCreate) SetLocalXMLPath(v string) *RecitationCreate {
	_c.mutation.SetLocalXMLPath(v)
	return _c
}

// SetNillableLocalXMLPath sets the "local_xml_path" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableLocalXMLPath(v *string) *RecitationCreate {
	if v != nil {
		_c.SetLocalXMLPath(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *RecitationCreate) SetReviewStatus(v recitation.ReviewStatus) *RecitationCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableReviewStatus(v *recitation.ReviewStatus) *RecitationCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetReviewMessage sets the "review_message" field.
func (_c *RecitationCreate) SetReviewMessage(v string) *RecitationCreate {
	_c.mutation.SetReviewMessage(v)
	return _c
}

// SetNillableReviewMessage sets the "review_message" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableReviewMessage(v *string) *RecitationCreate {
	if v != nil {
		_c.SetReviewMessage(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *RecitationCreate) SetReviewedAt(v time.Time) *RecitationCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableReviewedAt(v *time.Time) *RecitationCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetReviewerID sets the "reviewer_id" field.
func (_c *RecitationCreate) SetReviewerID(v uuid.UUID) *RecitationCreate {
	_c.mutation.SetReviewerID(v)
	return _c
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableReviewerID(v *uuid.UUID) *RecitationCreate {
	if v != nil {
		_c.SetReviewerID(*v)
	}
	return _c
}

// SetFileUpdatedAt sets the "file_updated_at" field.
func (_c *RecitationCreate) SetFileUpdatedAt(v time.Time) *RecitationCreate {
	_c.mutation.SetFileUpdatedAt(v)
	return _c
}

// SetNillableFileUpdatedAt sets the "file_updated_at" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableFileUpdatedAt(v *time.Time) *RecitationCreate {
	if v != nil {
		_c.SetFileUpdatedAt(*v)
	}
	return _c
}

// SetSyncStatus sets the "sync_status" field.
func (_c *RecitationCreate) SetSyncStatus(v recitation.SyncStatus) *RecitationCreate {
	_c.mutation.SetSyncStatus(v)
	return _c
}

// SetNillableSyncStatus sets the "sync_status" field if the given value is not nil.
func (_c *RecitationCreate) SetNillableSyncStatus(v *recitation.SyncStatus) *RecitationCreate {
	if v != nil {
		_c.SetSyncStatus(*v)
	}
	return _c
}

// SetPoem sets the "poem" edge to the Poem entity.
func (_c *RecitationCreate) SetPoem(v *Poem) *RecitationCreate {
	return _c.SetPoemID(v.ID)
}

// AddTrackerIDs adds the "trackers" edge to the PublishTracker entity by IDs.
func (_c *RecitationCreate) AddTrackerIDs(ids ...ulid.ULID) *RecitationCreate {
	_c.mutation.AddTrackerIDs(ids...)
	return _c
}

// AddTrackers adds the "trackers" edges to the PublishTracker entity.
func (_c *RecitationCreate) AddTrackers(v ...*PublishTracker) *RecitationCreate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTrackerIDs(ids...)
}

// Mutation returns the RecitationMutation object of the builder.
func (_c *RecitationCreate) Mutation() *RecitationMutation {
	return _c.mutation
}

// Save creates the Recitation in the database.
func (_c *RecitationCreate) Save(ctx context.Context) (*Recitation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecitationCreate) SaveX(ctx context.Context) *Recitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecitationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecitationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecitationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recitation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recitation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AudioOrder(); !ok {
		v := recitation.DefaultAudioOrder
		_c.mutation.SetAudioOrder(v)
	}
	if _, ok := _c.mutation.ArtistURL(); !ok {
		v := recitation.DefaultArtistURL
		_c.mutation.SetArtistURL(v)
	}
	if _, ok := _c.mutation.SourceName(); !ok {
		v := recitation.DefaultSourceName
		_c.mutation.SetSourceName(v)
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		v := recitation.DefaultSourceURL
		_c.mutation.SetSourceURL(v)
	}
	if _, ok := _c.mutation.Mp3Size(); !ok {
		v := recitation.DefaultMp3Size
		_c.mutation.SetMp3Size(v)
	}
	if _, ok := _c.mutation.SoundFolder(); !ok {
		v := recitation.DefaultSoundFolder
		_c.mutation.SetSoundFolder(v)
	}
	if _, ok := _c.mutation.LocalMp3Path(); !ok {
		v := recitation.DefaultLocalMp3Path
		_c.mutation.SetLocalMp3Path(v)
	}
	if _, ok := _c.mutation.LocalXMLPath(); !ok {
		v := recitation.DefaultLocalXMLPath
		_c.mutation.SetLocalXMLPath(v)
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := recitation.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.ReviewMessage(); !ok {
		v := recitation.DefaultReviewMessage
		_c.mutation.SetReviewMessage(v)
	}
	if _, ok := _c.mutation.SyncStatus(); !ok {
		v := recitation.DefaultSyncStatus
		_c.mutation.SetSyncStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecitationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Recitation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Recitation.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`generated: missing required field "Recitation.user_id"`)}
	}
	if _, ok := _c.mutation.PoemID(); !ok {
		return &ValidationError{Name: "poem_id", err: errors.New(`generated: missing required field "Recitation.poem_id"`)}
	}
	if _, ok := _c.mutation.AudioOrder(); !ok {
		return &ValidationError{Name: "audio_order", err: errors.New(`generated: missing required field "Recitation.audio_order"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`generated: missing required field "Recitation.title"`)}
	}
	if _, ok := _c.mutation.ArtistName(); !ok {
		return &ValidationError{Name: "artist_name", err: errors.New(`generated: missing required field "Recitation.artist_name"`)}
	}
	if _, ok := _c.mutation.ArtistURL(); !ok {
		return &ValidationError{Name: "artist_url", err: errors.New(`generated: missing required field "Recitation.artist_url"`)}
	}
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`generated: missing required field "Recitation.source_name"`)}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`generated: missing required field "Recitation.source_url"`)}
	}
	if _, ok := _c.mutation.FileSuffix(); !ok {
		return &ValidationError{Name: "file_suffix", err: errors.New(`generated: missing required field "Recitation.file_suffix"`)}
	}
	if _, ok := _c.mutation.LegacyGUID(); !ok {
		return &ValidationError{Name: "legacy_guid", err: errors.New(`generated: missing required field "Recitation.legacy_guid"`)}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`generated: missing required field "Recitation.checksum"`)}
	}
	if _, ok := _c.mutation.Mp3Size(); !ok {
		return &ValidationError{Name: "mp3_size", err: errors.New(`generated: missing required field "Recitation.mp3_size"`)}
	}
	if _, ok := _c.mutation.FileStem(); !ok {
		return &ValidationError{Name: "file_stem", err: errors.New(`generated: missing required field "Recitation.file_stem"`)}
	}
	if _, ok := _c.mutation.SoundFolder(); !ok {
		return &ValidationError{Name: "sound_folder", err: errors.New(`generated: missing required field "Recitation.sound_folder"`)}
	}
	if _, ok := _c.mutation.LocalMp3Path(); !ok {
		return &ValidationError{Name: "local_mp3_path", err: errors.New(`generated: missing required field "Recitation.local_mp3_path"`)}
	}
	if _, ok := _c.mutation.LocalXMLPath(); !ok {
		return &ValidationError{Name: "local_xml_path", err: errors.New(`generated: missing required field "Recitation.local_xml_path"`)}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`generated: missing required field "Recitation.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := recitation.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`generated: validator failed for field "Recitation.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewMessage(); !ok {
		return &ValidationError{Name: "review_message", err: errors.New(`generated: missing required field "Recitation.review_message"`)}
	}
	if _, ok := _c.mutation.SyncStatus(); !ok {
		return &ValidationError{Name: "sync_status", err: errors.New(`generated: missing required field "Recitation.sync_status"`)}
	}
	if v, ok := _c.mutation.SyncStatus(); ok {
		if err := recitation.SyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "sync_status", err: fmt.Errorf(`generated: validator failed for field "Recitation.sync_status": %w`, err)}
		}
	}
	if len(_c.mutation.PoemIDs()) == 0 {
		return &ValidationError{Name: "poem", err: errors.New(`generated: missing required edge "Recitation.poem"`)}
	}
	return nil
}

func (_c *RecitationCreate) sqlSave(ctx context.Context) (*Recitation, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecitationCreate) createSpec() (*Recitation, *sqlgraph.CreateSpec) {
	var (
		_node = &Recitation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recitation.Table, sqlgraph.NewFieldSpec(recitation.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recitation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recitation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(recitation.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AudioOrder(); ok {
		_spec.SetField(recitation.FieldAudioOrder, field.TypeInt, value)
		_node.AudioOrder = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(recitation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ArtistName(); ok {
		_spec.SetField(recitation.FieldArtistName, field.TypeString, value)
		_node.ArtistName = value
	}
	if value, ok := _c.mutation.ArtistURL(); ok {
		_spec.SetField(recitation.FieldArtistURL, field.TypeString, value)
		_node.ArtistURL = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(recitation.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(recitation.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.FileSuffix(); ok {
		_spec.SetField(recitation.FieldFileSuffix, field.TypeString, value)
		_node.FileSuffix = value
	}
	if value, ok := _c.mutation.LegacyGUID(); ok {
		_spec.SetField(recitation.FieldLegacyGUID, field.TypeUUID, value)
		_node.LegacyGUID = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(recitation.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.Mp3Size(); ok {
		_spec.SetField(recitation.FieldMp3Size, field.TypeInt64, value)
		_node.Mp3Size = value
	}
	if value, ok := _c.mutation.FileStem(); ok {
		_spec.SetField(recitation.FieldFileStem, field.TypeString, value)
		_node.FileStem = value
	}
	if value, ok := _c.mutation.SoundFolder(); ok {
		_spec.SetField(recitation.FieldSoundFolder, field.TypeString, value)
		_node.SoundFolder = value
	}
	if value, ok := _c.mutation.LocalMp3Path(); ok {
		_spec.SetField(recitation.FieldLocalMp3Path, field.TypeString, value)
		_node.LocalMp3Path = value
	}
	if value, ok := _c.mutation.LocalXMLPath(); ok {
		_spec.SetField(recitation.FieldLocalXMLPath, field.TypeString, value)
		_node.LocalXMLPath = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(recitation.FieldReviewStatus, field.TypeEnum, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.ReviewMessage(); ok {
		_spec.SetField(recitation.FieldReviewMessage, field.TypeString, value)
		_node.ReviewMessage = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(recitation.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.ReviewerID(); ok {
		_spec.SetField(recitation.FieldReviewerID, field.TypeUUID, value)
		_node.ReviewerID = &value
	}
	if value, ok := _c.mutation.FileUpdatedAt(); ok {
		_spec.SetField(recitation.FieldFileUpdatedAt, field.TypeTime, value)
		_node.FileUpdatedAt = &value
	}
	if value, ok := _c.mutation.SyncStatus(); ok {
		_spec.SetField(recitation.FieldSyncStatus, field.TypeEnum, value)
		_node.SyncStatus = value
	}
	if nodes := _c.mutation.PoemIDs(); len(nodes) > 0 {
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
		_node.PoemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TrackersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Recitation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecitationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RecitationCreate) OnConflict(opts ...sql.ConflictOption) *RecitationUpsertOne {
	_c.conflict = opts
	return &RecitationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Recitation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecitationCreate) OnConflictColumns(columns ...string) *RecitationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecitationUpsertOne{
		create: _c,
	}
}

type (
	// RecitationUpsertOne is the builder for "upsert"-ing
	//  one Recitation node.
	RecitationUpsertOne struct {
		create *RecitationCreate
	}

	// RecitationUpsert is the "OnConflict" setter.
	RecitationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RecitationUpsert) SetUpdatedAt(v time.Time) *RecitationUpsert {
	u.Set(recitation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateUpdatedAt() *RecitationUpsert {
	u.SetExcluded(recitation.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *RecitationUpsert) SetUserID(v uuid.UUID) *RecitationUpsert {
	u.Set(recitation.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateUserID() *RecitationUpsert {
	u.SetExcluded(recitation.FieldUserID)
	return u
}

// SetPoemID sets the "poem_id" field.
func (u *RecitationUpsert) SetPoemID(v int) *RecitationUpsert {
	u.Set(recitation.FieldPoemID, v)
	return u
}

// UpdatePoemID sets the "poem_id" field to the value that was provided on create.
func (u *RecitationUpsert) UpdatePoemID() *RecitationUpsert {
	u.SetExcluded(recitation.FieldPoemID)
	return u
}

// SetAudioOrder sets the "audio_order" field.
func (u *RecitationUpsert) SetAudioOrder(v int) *RecitationUpsert {
	u.Set(recitation.FieldAudioOrder, v)
	return u
}

// UpdateAudioOrder sets the "audio_order" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateAudioOrder() *RecitationUpsert {
	u.SetExcluded(recitation.FieldAudioOrder)
	return u
}

// AddAudioOrder adds v to the "audio_order" field.
func (u *RecitationUpsert) AddAudioOrder(v int) *RecitationUpsert {
	u.Add(recitation.FieldAudioOrder, v)
	return u
}

// SetTitle sets the "title" field.
func (u *RecitationUpsert) SetTitle(v string) *RecitationUpsert {
	u.Set(recitation.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateTitle() *RecitationUpsert {
	u.SetExcluded(recitation.FieldTitle)
	return u
}

// SetArtistName sets the "artist_name" field.
func (u *RecitationUpsert) SetArtistName(v string) *RecitationUpsert {
	u.Set(recitation.FieldArtistName, v)
	return u
}

// UpdateArtistName sets the "artist_name" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateArtistName() *RecitationUpsert {
	u.SetExcluded(recitation.FieldArtistName)
	return u
}

// SetArtistURL sets the "artist_url" field.
func (u *RecitationUpsert) SetArtistURL(v string) *RecitationUpsert {
	u.Set(recitation.FieldArtistURL, v)
	return u
}

// UpdateArtistURL sets the "artist_url" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateArtistURL() *RecitationUpsert {
	u.SetExcluded(recitation.FieldArtistURL)
	return u
}

// SetSourceName sets the "source_name" field.
func (u *RecitationUpsert) SetSourceName(v string) *RecitationUpsert {
	u.Set(recitation.FieldSourceName, v)
	return u
}

// UpdateSourceName sets the "source_name" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateSourceName() *RecitationUpsert {
	u.SetExcluded(recitation.FieldSourceName)
	return u
}

// SetSourceURL sets the "source_url" field.
func (u *RecitationUpsert) SetSourceURL(v string) *RecitationUpsert {
	u.Set(recitation.FieldSourceURL, v)
	return u
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateSourceURL() *RecitationUpsert {
	u.SetExcluded(recitation.FieldSourceURL)
	return u
}

// SetFileSuffix sets the "file_suffix" field.
func (u *RecitationUpsert) SetFileSuffix(v string) *RecitationUpsert {
	u.Set(recitation.FieldFileSuffix, v)
	return u
}

// UpdateFileSuffix sets the "file_suffix" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateFileSuffix() *RecitationUpsert {
	u.SetExcluded(recitation.FieldFileSuffix)
	return u
}

// SetLegacyGUID sets the "legacy_guid" field.
func (u *RecitationUpsert) SetLegacyGUID(v uuid.UUID) *RecitationUpsert {
	u.Set(recitation.FieldLegacyGUID, v)
	return u
}

// UpdateLegacyGUID sets the "legacy_guid" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateLegacyGUID() *RecitationUpsert {
	u.SetExcluded(recitation.FieldLegacyGUID)
	return u
}

// SetChecksum sets the "checksum" field.
func (u *RecitationUpsert) SetChecksum(v string) *RecitationUpsert {
	u.Set(recitation.FieldChecksum, v)
	return u
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateChecksum() *RecitationUpsert {
	u.SetExcluded(recitation.FieldChecksum)
	return u
}

// SetMp3Size sets the "mp3_size" field.
func (u *RecitationUpsert) SetMp3Size(v int64) *RecitationUpsert {
	u.Set(recitation.FieldMp3Size, v)
	return u
}

// UpdateMp3Size sets the "mp3_size" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateMp3Size() *RecitationUpsert {
	u.SetExcluded(recitation.FieldMp3Size)
	return u
}

// AddMp3Size adds v to the "mp3_size" field.
func (u *RecitationUpsert) AddMp3Size(v int64) *RecitationUpsert {
	u.Add(recitation.FieldMp3Size, v)
	return u
}

// SetFileStem sets the "file_stem" field.
func (u *RecitationUpsert) SetFileStem(v string) *RecitationUpsert {
	u.Set(recitation.FieldFileStem, v)
	return u
}

// UpdateFileStem sets the "file_stem" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateFileStem() *RecitationUpsert {
	u.SetExcluded(recitation.FieldFileStem)
	return u
}

// SetSoundFolder sets the "sound_folder" field.
func (u *RecitationUpsert) SetSoundFolder(v string) *RecitationUpsert {
	u.Set(recitation.FieldSoundFolder, v)
	return u
}

// UpdateSoundFolder sets the "sound_folder" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateSoundFolder() *RecitationUpsert {
	u.SetExcluded(recitation.FieldSoundFolder)
	return u
}

// SetLocalMp3Path sets the "local_mp3_path" field.
func (u *RecitationUpsert) SetLocalMp3Path(v string) *RecitationUpsert {
	u.Set(recitation.FieldLocalMp3Path, v)
	return u
}

// UpdateLocalMp3Path sets the "local_mp3_path" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateLocalMp3Path() *RecitationUpsert {
	u.SetExcluded(recitation.FieldLocalMp3Path)
	return u
}

// SetLocalXMLPath sets the "local_xml_path" field.
func (u *RecitationUpsert) SetLocalXMLPath(v string) *RecitationUpsert {
	u.Set(recitation.FieldLocalXMLPath, v)
	return u
}

// UpdateLocalXMLPath sets the "local_xml_path" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateLocalXMLPath() *RecitationUpsert {
	u.SetExcluded(recitation.FieldLocalXMLPath)
	return u
}

// SetReviewStatus sets the "review_status" field.
func (u *RecitationUpsert) SetReviewStatus(v recitation.ReviewStatus) *RecitationUpsert {
	u.Set(recitation.FieldReviewStatus, v)
	return u
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateReviewStatus() *RecitationUpsert {
	u.SetExcluded(recitation.FieldReviewStatus)
	return u
}

// SetReviewMessage sets the "review_message" field.
func (u *RecitationUpsert) SetReviewMessage(v string) *RecitationUpsert {
	u.Set(recitation.FieldReviewMessage, v)
	return u
}

// UpdateReviewMessage sets the "review_message" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateReviewMessage() *RecitationUpsert {
	u.SetExcluded(recitation.FieldReviewMessage)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *RecitationUpsert) SetReviewedAt(v time.Time) *RecitationUpsert {
	u.Set(recitation.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateReviewedAt() *RecitationUpsert {
	u.SetExcluded(recitation.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *RecitationUpsert) ClearReviewedAt() *RecitationUpsert {
	u.SetNull(recitation.FieldReviewedAt)
	return u
}

// SetReviewerID sets the "reviewer_id" field.
func (u *RecitationUpsert) SetReviewerID(v uuid.UUID) *RecitationUpsert {
	u.Set(recitation.FieldReviewerID, v)
	return u
}

// UpdateReviewerID sets the "reviewer_id" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateReviewerID() *RecitationUpsert {
	u.SetExcluded(recitation.FieldReviewerID)
	return u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (u *RecitationUpsert) ClearReviewerID() *RecitationUpsert {
	u.SetNull(recitation.FieldReviewerID)
	return u
}

// SetFileUpdatedAt sets the "file_updated_at" field.
func (u *RecitationUpsert) SetFileUpdatedAt(v time.Time) *RecitationUpsert {
	u.Set(recitation.FieldFileUpdatedAt, v)
	return u
}

// UpdateFileUpdatedAt sets the "file_updated_at" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateFileUpdatedAt() *RecitationUpsert {
	u.SetExcluded(recitation.FieldFileUpdatedAt)
	return u
}

// ClearFileUpdatedAt clears the value of the "file_updated_at" field.
func (u *RecitationUpsert) ClearFileUpdatedAt() *RecitationUpsert {
	u.SetNull(recitation.FieldFileUpdatedAt)
	return u
}

// SetSyncStatus sets the "sync_status" field.
func (u *RecitationUpsert) SetSyncStatus(v recitation.SyncStatus) *RecitationUpsert {
	u.Set(recitation.FieldSyncStatus, v)
	return u
}

// UpdateSyncStatus sets the "sync_status" field to the value that was provided on create.
func (u *RecitationUpsert) UpdateSyncStatus() *RecitationUpsert {
	u.SetExcluded(recitation.FieldSyncStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Recitation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RecitationUpsertOne) UpdateNewValues() *RecitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(recitation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Recitation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RecitationUpsertOne) Ignore() *RecitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecitationUpsertOne) DoNothing() *RecitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecitationCreate.OnConflict
// documentation for more info.
func (u *RecitationUpsertOne) Update(set func(*RecitationUpsert)) *RecitationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecitationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecitationUpsertOne) SetUpdatedAt(v time.Time) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateUpdatedAt() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *RecitationUpsertOne) SetUserID(v uuid.UUID) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateUserID() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateUserID()
	})
}

// SetPoemID sets the "poem_id" field.
func (u *RecitationUpsertOne) SetPoemID(v int) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetPoemID(v)
	})
}

// UpdatePoemID sets the "poem_id" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdatePoemID() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdatePoemID()
	})
}

// SetAudioOrder sets the "audio_order" field.
func (u *RecitationUpsertOne) SetAudioOrder(v int) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetAudioOrder(v)
	})
}

// AddAudioOrder adds v to the "audio_order" field.
func (u *RecitationUpsertOne) AddAudioOrder(v int) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.AddAudioOrder(v)
	})
}

// UpdateAudioOrder sets the "audio_order" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateAudioOrder() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateAudioOrder()
	})
}

// SetTitle sets the "title" field.
func (u *RecitationUpsertOne) SetTitle(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateTitle() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateTitle()
	})
}

// SetArtistName sets the "artist_name" field.
func (u *RecitationUpsertOne) SetArtistName(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetArtistName(v)
	})
}

// UpdateArtistName sets the "artist_name" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateArtistName() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateArtistName()
	})
}

// SetArtistURL sets the "artist_url" field.
func (u *RecitationUpsertOne) SetArtistURL(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetArtistURL(v)
	})
}

// UpdateArtistURL sets the "artist_url" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateArtistURL() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateArtistURL()
	})
}

// SetSourceName sets the "source_name" field.
func (u *RecitationUpsertOne) SetSourceName(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetSourceName(v)
	})
}

// UpdateSourceName sets the "source_name" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateSourceName() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateSourceName()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *RecitationUpsertOne) SetSourceURL(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateSourceURL() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateSourceURL()
	})
}

// SetFileSuffix sets the "file_suffix" field.
func (u *RecitationUpsertOne) SetFileSuffix(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetFileSuffix(v)
	})
}

// UpdateFileSuffix sets the "file_suffix" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateFileSuffix() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateFileSuffix()
	})
}

// SetLegacyGUID sets the "legacy_guid" field.
func (u *RecitationUpsertOne) SetLegacyGUID(v uuid.UUID) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetLegacyGUID(v)
	})
}

// UpdateLegacyGUID sets the "legacy_guid" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateLegacyGUID() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateLegacyGUID()
	})
}

// SetChecksum sets the "checksum" field.
func (u *RecitationUpsertOne) SetChecksum(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetChecksum(v)
	})
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateChecksum() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateChecksum()
	})
}

// SetMp3Size sets the "mp3_size" field.
func (u *RecitationUpsertOne) SetMp3Size(v int64) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetMp3Size(v)
	})
}

// AddMp3Size adds v to the "mp3_size" field.
func (u *RecitationUpsertOne) AddMp3Size(v int64) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.AddMp3Size(v)
	})
}

// UpdateMp3Size sets the "mp3_size" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateMp3Size() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateMp3Size()
	})
}

// SetFileStem sets the "file_stem" field.
func (u *RecitationUpsertOne) SetFileStem(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetFileStem(v)
	})
}

// UpdateFileStem sets the "file_stem" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateFileStem() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateFileStem()
	})
}

// SetSoundFolder sets the "sound_folder" field.
func (u *RecitationUpsertOne) SetSoundFolder(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetSoundFolder(v)
	})
}

// UpdateSoundFolder sets the "sound_folder" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateSoundFolder() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateSoundFolder()
	})
}

// SetLocalMp3Path sets the "local_mp3_path" field.
func (u *RecitationUpsertOne) SetLocalMp3Path(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetLocalMp3Path(v)
	})
}

// UpdateLocalMp3Path sets the "local_mp3_path" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateLocalMp3Path() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateLocalMp3Path()
	})
}

// SetLocalXMLPath sets the "local_xml_path" field.
func (u *RecitationUpsertOne) SetLocalXMLPath(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetLocalXMLPath(v)
	})
}

// UpdateLocalXMLPath sets the "local_xml_path" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateLocalXMLPath() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateLocalXMLPath()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *RecitationUpsertOne) SetReviewStatus(v recitation.ReviewStatus) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateReviewStatus() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateReviewStatus()
	})
}

// SetReviewMessage sets the "review_message" field.
func (u *RecitationUpsertOne) SetReviewMessage(v string) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetReviewMessage(v)
	})
}

// UpdateReviewMessage sets the "review_message" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateReviewMessage() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateReviewMessage()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *RecitationUpsertOne) SetReviewedAt(v time.Time) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateReviewedAt() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *RecitationUpsertOne) ClearReviewedAt() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.ClearReviewedAt()
	})
}

// SetReviewerID sets the "reviewer_id" field.
func (u *RecitationUpsertOne) SetReviewerID(v uuid.UUID) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetReviewerID(v)
	})
}

// UpdateReviewerID sets the "reviewer_id" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateReviewerID() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateReviewerID()
	})
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (u *RecitationUpsertOne) ClearReviewerID() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.ClearReviewerID()
	})
}

// SetFileUpdatedAt sets the "file_updated_at" field.
func (u *RecitationUpsertOne) SetFileUpdatedAt(v time.Time) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetFileUpdatedAt(v)
	})
}

// UpdateFileUpdatedAt sets the "file_updated_at" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateFileUpdatedAt() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateFileUpdatedAt()
	})
}

// ClearFileUpdatedAt clears the value of the "file_updated_at" field.
func (u *RecitationUpsertOne) ClearFileUpdatedAt() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.ClearFileUpdatedAt()
	})
}

// SetSyncStatus sets the "sync_status" field.
func (u *RecitationUpsertOne) SetSyncStatus(v recitation.SyncStatus) *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.SetSyncStatus(v)
	})
}

// UpdateSyncStatus sets the "sync_status" field to the value that was provided on create.
func (u *RecitationUpsertOne) UpdateSyncStatus() *RecitationUpsertOne {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateSyncStatus()
	})
}

// Exec executes the query.
func (u *RecitationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for RecitationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecitationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RecitationUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RecitationUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RecitationCreateBulk is the builder for creating many Recitation entities in bulk.
type RecitationCreateBulk struct {
	config
	err      error
	builders []*RecitationCreate
	conflict []sql.ConflictOption
}

// Save creates the Recitation entities in the database.
func (_c *RecitationCreateBulk) Save(ctx context.Context) ([]*Recitation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recitation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecitationMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *RecitationCreateBulk) SaveX(ctx context.Context) []*Recitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecitationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecitationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Recitation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecitationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RecitationCreateBulk) OnConflict(opts ...sql.ConflictOption) *RecitationUpsertBulk {
	_c.conflict = opts
	return &RecitationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Recitation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecitationCreateBulk) OnConflictColumns(columns ...string) *RecitationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecitationUpsertBulk{
		create: _c,
	}
}

// RecitationUpsertBulk is the builder for "upsert"-ing
// a bulk of Recitation nodes.
type RecitationUpsertBulk struct {
	create *RecitationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Recitation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RecitationUpsertBulk) UpdateNewValues() *RecitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(recitation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Recitation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RecitationUpsertBulk) Ignore() *RecitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecitationUpsertBulk) DoNothing() *RecitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecitationCreateBulk.OnConflict
// documentation for more info.
func (u *RecitationUpsertBulk) Update(set func(*RecitationUpsert)) *RecitationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecitationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecitationUpsertBulk) SetUpdatedAt(v time.Time) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateUpdatedAt() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *RecitationUpsertBulk) SetUserID(v uuid.UUID) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateUserID() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateUserID()
	})
}

// SetPoemID sets the "poem_id" field.
func (u *RecitationUpsertBulk) SetPoemID(v int) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetPoemID(v)
	})
}

// UpdatePoemID sets the "poem_id" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdatePoemID() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdatePoemID()
	})
}

// SetAudioOrder sets the "audio_order" field.
func (u *RecitationUpsertBulk) SetAudioOrder(v int) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetAudioOrder(v)
	})
}

// AddAudioOrder adds v to the "audio_order" field.
func (u *RecitationUpsertBulk) AddAudioOrder(v int) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.AddAudioOrder(v)
	})
}

// UpdateAudioOrder sets the "audio_order" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateAudioOrder() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateAudioOrder()
	})
}

// SetTitle sets the "title" field.
func (u *RecitationUpsertBulk) SetTitle(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateTitle() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateTitle()
	})
}

// SetArtistName sets the "artist_name" field.
func (u *RecitationUpsertBulk) SetArtistName(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetArtistName(v)
	})
}

// UpdateArtistName sets the "artist_name" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateArtistName() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateArtistName()
	})
}

// SetArtistURL sets the "artist_url" field.
func (u *RecitationUpsertBulk) SetArtistURL(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetArtistURL(v)
	})
}

// UpdateArtistURL sets the "artist_url" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateArtistURL() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateArtistURL()
	})
}

// SetSourceName sets the "source_name" field.
func (u *RecitationUpsertBulk) SetSourceName(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetSourceName(v)
	})
}

// UpdateSourceName sets the "source_name" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateSourceName() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateSourceName()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *RecitationUpsertBulk) SetSourceURL(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateSourceURL() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateSourceURL()
	})
}

// SetFileSuffix sets the "file_suffix" field.
func (u *RecitationUpsertBulk) SetFileSuffix(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetFileSuffix(v)
	})
}

// UpdateFileSuffix sets the "file_suffix" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateFileSuffix() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateFileSuffix()
	})
}

// SetLegacyGUID sets the "legacy_guid" field.
func (u *RecitationUpsertBulk) SetLegacyGUID(v uuid.UUID) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetLegacyGUID(v)
	})
}

// UpdateLegacyGUID sets the "legacy_guid" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateLegacyGUID() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateLegacyGUID()
	})
}

// SetChecksum sets the "checksum" field.
func (u *RecitationUpsertBulk) SetChecksum(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetChecksum(v)
	})
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateChecksum() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateChecksum()
	})
}

// SetMp3Size sets the "mp3_size" field.
func (u *RecitationUpsertBulk) SetMp3Size(v int64) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetMp3Size(v)
	})
}

// AddMp3Size adds v to the "mp3_size" field.
func (u *RecitationUpsertBulk) AddMp3Size(v int64) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.AddMp3Size(v)
	})
}

// UpdateMp3Size sets the "mp3_size" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateMp3Size() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateMp3Size()
	})
}

// SetFileStem sets the "file_stem" field.
func (u *RecitationUpsertBulk) SetFileStem(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetFileStem(v)
	})
}

// UpdateFileStem sets the "file_stem" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateFileStem() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateFileStem()
	})
}

// SetSoundFolder sets the "sound_folder" field.
func (u *RecitationUpsertBulk) SetSoundFolder(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetSoundFolder(v)
	})
}

// UpdateSoundFolder sets the "sound_folder" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateSoundFolder() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateSoundFolder()
	})
}

// SetLocalMp3Path sets the "local_mp3_path" field.
func (u *RecitationUpsertBulk) SetLocalMp3Path(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetLocalMp3Path(v)
	})
}

// UpdateLocalMp3Path sets the "local_mp3_path" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateLocalMp3Path() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateLocalMp3Path()
	})
}

// SetLocalXMLPath sets the "local_xml_path" field.
func (u *RecitationUpsertBulk) SetLocalXMLPath(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetLocalXMLPath(v)
	})
}

// UpdateLocalXMLPath sets the "local_xml_path" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateLocalXMLPath() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateLocalXMLPath()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *RecitationUpsertBulk) SetReviewStatus(v recitation.ReviewStatus) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateReviewStatus() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateReviewStatus()
	})
}

// SetReviewMessage sets the "review_message" field.
func (u *RecitationUpsertBulk) SetReviewMessage(v string) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetReviewMessage(v)
	})
}

// UpdateReviewMessage sets the "review_message" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateReviewMessage() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateReviewMessage()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *RecitationUpsertBulk) SetReviewedAt(v time.Time) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateReviewedAt() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *RecitationUpsertBulk) ClearReviewedAt() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.ClearReviewedAt()
	})
}

// SetReviewerID sets the "reviewer_id" field.
func (u *RecitationUpsertBulk) SetReviewerID(v uuid.UUID) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetReviewerID(v)
	})
}

// UpdateReviewerID sets the "reviewer_id" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateReviewerID() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateReviewerID()
	})
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (u *RecitationUpsertBulk) ClearReviewerID() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.ClearReviewerID()
	})
}

// SetFileUpdatedAt sets the "file_updated_at" field.
func (u *RecitationUpsertBulk) SetFileUpdatedAt(v time.Time) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetFileUpdatedAt(v)
	})
}

// UpdateFileUpdatedAt sets the "file_updated_at" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateFileUpdatedAt() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateFileUpdatedAt()
	})
}

// ClearFileUpdatedAt clears the value of the "file_updated_at" field.
func (u *RecitationUpsertBulk) ClearFileUpdatedAt() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.ClearFileUpdatedAt()
	})
}

// SetSyncStatus sets the "sync_status" field.
func (u *RecitationUpsertBulk) SetSyncStatus(v recitation.SyncStatus) *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.SetSyncStatus(v)
	})
}

// UpdateSyncStatus sets the "sync_status" field to the value that was provided on create.
func (u *RecitationUpsertBulk) UpdateSyncStatus() *RecitationUpsertBulk {
	return u.Update(func(s *RecitationUpsert) {
		s.UpdateSyncStatus()
	})
}

// Exec executes the query.
func (u *RecitationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the RecitationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for RecitationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecitationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
