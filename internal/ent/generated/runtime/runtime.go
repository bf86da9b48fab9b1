// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"github.com/khanesh/khanesh/internal/ent/generated/event"
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/ent/generated/recitationprofile"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsessionfile"
	"github.com/khanesh/khanesh/internal/ent/schema"
	ulid "github.com/oklog/ulid/v2"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventMixin := schema.Event{}.Mixin()
	eventMixinFields0 := eventMixin[0].Fields()
	_ = eventMixinFields0
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescMessage is the schema descriptor for message field.
	eventDescMessage := eventFields[1].Descriptor()
	// event.DefaultMessage holds the default value on creation for the message field.
	event.DefaultMessage = eventDescMessage.Default.(string)
	// eventDescDetails is the schema descriptor for details field.
	eventDescDetails := eventFields[4].Descriptor()
	// event.DefaultDetails holds the default value on creation for the details field.
	event.DefaultDetails = eventDescDetails.Default.(string)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventMixinFields0[0].Descriptor()
	// event.DefaultID holds the default value on creation for the id field.
	event.DefaultID = eventDescID.Default.(func() ulid.ULID)
	poemMixin := schema.Poem{}.Mixin()
	poemMixinFields0 := poemMixin[0].Fields()
	_ = poemMixinFields0
	poemFields := schema.Poem{}.Fields()
	_ = poemFields
	// poemDescCreatedAt is the schema descriptor for created_at field.
	poemDescCreatedAt := poemMixinFields0[0].Descriptor()
	// poem.DefaultCreatedAt holds the default value on creation for the created_at field.
	poem.DefaultCreatedAt = poemDescCreatedAt.Default.(func() time.Time)
	// poemDescUpdatedAt is the schema descriptor for updated_at field.
	poemDescUpdatedAt := poemMixinFields0[1].Descriptor()
	// poem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	poem.DefaultUpdatedAt = poemDescUpdatedAt.Default.(func() time.Time)
	// poem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	poem.UpdateDefaultUpdatedAt = poemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// poemDescFullURL is the schema descriptor for full_url field.
	poemDescFullURL := poemFields[2].Descriptor()
	// poem.DefaultFullURL holds the default value on creation for the full_url field.
	poem.DefaultFullURL = poemDescFullURL.Default.(string)
	publishtrackerMixin := schema.PublishTracker{}.Mixin()
	publishtrackerMixinFields0 := publishtrackerMixin[0].Fields()
	_ = publishtrackerMixinFields0
	publishtrackerMixinFields1 := publishtrackerMixin[1].Fields()
	_ = publishtrackerMixinFields1
	publishtrackerFields := schema.PublishTracker{}.Fields()
	_ = publishtrackerFields
	// publishtrackerDescCreatedAt is the schema descriptor for created_at field.
	publishtrackerDescCreatedAt := publishtrackerMixinFields1[0].Descriptor()
	// publishtracker.DefaultCreatedAt holds the default value on creation for the created_at field.
	publishtracker.DefaultCreatedAt = publishtrackerDescCreatedAt.Default.(func() time.Time)
	// publishtrackerDescUpdatedAt is the schema descriptor for updated_at field.
	publishtrackerDescUpdatedAt := publishtrackerMixinFields1[1].Descriptor()
	// publishtracker.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	publishtracker.DefaultUpdatedAt = publishtrackerDescUpdatedAt.Default.(func() time.Time)
	// publishtracker.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	publishtracker.UpdateDefaultUpdatedAt = publishtrackerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// publishtrackerDescReplace is the schema descriptor for replace field.
	publishtrackerDescReplace := publishtrackerFields[1].Descriptor()
	// publishtracker.DefaultReplace holds the default value on creation for the replace field.
	publishtracker.DefaultReplace = publishtrackerDescReplace.Default.(bool)
	// publishtrackerDescXMLCopied is the schema descriptor for xml_copied field.
	publishtrackerDescXMLCopied := publishtrackerFields[2].Descriptor()
	// publishtracker.DefaultXMLCopied holds the default value on creation for the xml_copied field.
	publishtracker.DefaultXMLCopied = publishtrackerDescXMLCopied.Default.(bool)
	// publishtrackerDescMp3Copied is the schema descriptor for mp3_copied field.
	publishtrackerDescMp3Copied := publishtrackerFields[3].Descriptor()
	// publishtracker.DefaultMp3Copied holds the default value on creation for the mp3_copied field.
	publishtracker.DefaultMp3Copied = publishtrackerDescMp3Copied.Default.(bool)
	// publishtrackerDescFirstDbUpdated is the schema descriptor for first_db_updated field.
	publishtrackerDescFirstDbUpdated := publishtrackerFields[4].Descriptor()
	// publishtracker.DefaultFirstDbUpdated holds the default value on creation for the first_db_updated field.
	publishtracker.DefaultFirstDbUpdated = publishtrackerDescFirstDbUpdated.Default.(bool)
	// publishtrackerDescSecondDbUpdated is the schema descriptor for second_db_updated field.
	publishtrackerDescSecondDbUpdated := publishtrackerFields[5].Descriptor()
	// publishtracker.DefaultSecondDbUpdated holds the default value on creation for the second_db_updated field.
	publishtracker.DefaultSecondDbUpdated = publishtrackerDescSecondDbUpdated.Default.(bool)
	// publishtrackerDescFinished is the schema descriptor for finished field.
	publishtrackerDescFinished := publishtrackerFields[6].Descriptor()
	// publishtracker.DefaultFinished holds the default value on creation for the finished field.
	publishtracker.DefaultFinished = publishtrackerDescFinished.Default.(bool)
	// publishtrackerDescLastError is the schema descriptor for last_error field.
	publishtrackerDescLastError := publishtrackerFields[7].Descriptor()
	// publishtracker.DefaultLastError holds the default value on creation for the last_error field.
	publishtracker.DefaultLastError = publishtrackerDescLastError.Default.(string)
	// publishtrackerDescID is the schema descriptor for id field.
	publishtrackerDescID := publishtrackerMixinFields0[0].Descriptor()
	// publishtracker.DefaultID holds the default value on creation for the id field.
	publishtracker.DefaultID = publishtrackerDescID.Default.(func() ulid.ULID)
	recitationMixin := schema.Recitation{}.Mixin()
	recitationMixinFields0 := recitationMixin[0].Fields()
	_ = recitationMixinFields0
	recitationFields := schema.Recitation{}.Fields()
	_ = recitationFields
	// recitationDescCreatedAt is the schema descriptor for created_at field.
	recitationDescCreatedAt := recitationMixinFields0[0].Descriptor()
	// recitation.DefaultCreatedAt holds the default value on creation for the created_at field.
	recitation.DefaultCreatedAt = recitationDescCreatedAt.Default.(func() time.Time)
	// recitationDescUpdatedAt is the schema descriptor for updated_at field.
	recitationDescUpdatedAt := recitationMixinFields0[1].Descriptor()
	// recitation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recitation.DefaultUpdatedAt = recitationDescUpdatedAt.Default.(func() time.Time)
	// recitation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recitation.UpdateDefaultUpdatedAt = recitationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// recitationDescAudioOrder is the schema descriptor for audio_order field.
	recitationDescAudioOrder := recitationFields[2].Descriptor()
	// recitation.DefaultAudioOrder holds the default value on creation for the audio_order field.
	recitation.DefaultAudioOrder = recitationDescAudioOrder.Default.(int)
	// recitationDescArtistURL is the schema descriptor for artist_url field.
	recitationDescArtistURL := recitationFields[5].Descriptor()
	// recitation.DefaultArtistURL holds the default value on creation for the artist_url field.
	recitation.DefaultArtistURL = recitationDescArtistURL.Default.(string)
	// recitationDescSourceName is the schema descriptor for source_name field.
	recitationDescSourceName := recitationFields[6].Descriptor()
	// recitation.DefaultSourceName holds the default value on creation for the source_name field.
	recitation.DefaultSourceName = recitationDescSourceName.Default.(string)
	// recitationDescSourceURL is the schema descriptor for source_url field.
	recitationDescSourceURL := recitationFields[7].Descriptor()
	// recitation.DefaultSourceURL holds the default value on creation for the source_url field.
	recitation.DefaultSourceURL = recitationDescSourceURL.Default.(string)
	// recitationDescMp3Size is the schema descriptor for mp3_size field.
	recitationDescMp3Size := recitationFields[11].Descriptor()
	// recitation.DefaultMp3Size holds the default value on creation for the mp3_size field.
	recitation.DefaultMp3Size = recitationDescMp3Size.Default.(int64)
	// recitationDescSoundFolder is the schema descriptor for sound_folder field.
	recitationDescSoundFolder := recitationFields[13].Descriptor()
	// recitation.DefaultSoundFolder holds the default value on creation for the sound_folder field.
	recitation.DefaultSoundFolder = recitationDescSoundFolder.Default.(string)
	// recitationDescLocalMp3Path is the schema descriptor for local_mp3_path field.
	recitationDescLocalMp3Path := recitationFields[14].Descriptor()
	// recitation.DefaultLocalMp3Path holds the default value on creation for the local_mp3_path field.
	recitation.DefaultLocalMp3Path = recitationDescLocalMp3Path.Default.(string)
	// recitationDescLocalXMLPath is the schema descriptor for local_xml_path field.
	recitationDescLocalXMLPath := recitationFields[15].Descriptor()
	// recitation.DefaultLocalXMLPath holds the default value on creation for the local_xml_path field.
	recitation.DefaultLocalXMLPath = recitationDescLocalXMLPath.Default.(string)
	// recitationDescReviewMessage is the schema descriptor for review_message field.
	recitationDescReviewMessage := recitationFields[17].Descriptor()
	// recitation.DefaultReviewMessage holds the default value on creation for the review_message field.
	recitation.DefaultReviewMessage = recitationDescReviewMessage.Default.(string)
	recitationprofileMixin := schema.RecitationProfile{}.Mixin()
	recitationprofileMixinHooks2 := recitationprofileMixin[2].Hooks()
	recitationprofile.Hooks[0] = recitationprofileMixinHooks2[0]
	recitationprofileMixinInters2 := recitationprofileMixin[2].Interceptors()
	recitationprofile.Interceptors[0] = recitationprofileMixinInters2[0]
	recitationprofileMixinFields0 := recitationprofileMixin[0].Fields()
	_ = recitationprofileMixinFields0
	recitationprofileMixinFields1 := recitationprofileMixin[1].Fields()
	_ = recitationprofileMixinFields1
	recitationprofileFields := schema.RecitationProfile{}.Fields()
	_ = recitationprofileFields
	// recitationprofileDescCreatedAt is the schema descriptor for created_at field.
	recitationprofileDescCreatedAt := recitationprofileMixinFields1[0].Descriptor()
	// recitationprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	recitationprofile.DefaultCreatedAt = recitationprofileDescCreatedAt.Default.(func() time.Time)
	// recitationprofileDescUpdatedAt is the schema descriptor for updated_at field.
	recitationprofileDescUpdatedAt := recitationprofileMixinFields1[1].Descriptor()
	// recitationprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recitationprofile.DefaultUpdatedAt = recitationprofileDescUpdatedAt.Default.(func() time.Time)
	// recitationprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recitationprofile.UpdateDefaultUpdatedAt = recitationprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// recitationprofileDescArtistURL is the schema descriptor for artist_url field.
	recitationprofileDescArtistURL := recitationprofileFields[3].Descriptor()
	// recitationprofile.DefaultArtistURL holds the default value on creation for the artist_url field.
	recitationprofile.DefaultArtistURL = recitationprofileDescArtistURL.Default.(string)
	// recitationprofileDescSourceName is the schema descriptor for source_name field.
	recitationprofileDescSourceName := recitationprofileFields[4].Descriptor()
	// recitationprofile.DefaultSourceName holds the default value on creation for the source_name field.
	recitationprofile.DefaultSourceName = recitationprofileDescSourceName.Default.(string)
	// recitationprofileDescSourceURL is the schema descriptor for source_url field.
	recitationprofileDescSourceURL := recitationprofileFields[5].Descriptor()
	// recitationprofile.DefaultSourceURL holds the default value on creation for the source_url field.
	recitationprofile.DefaultSourceURL = recitationprofileDescSourceURL.Default.(string)
	// recitationprofileDescIsDefault is the schema descriptor for is_default field.
	recitationprofileDescIsDefault := recitationprofileFields[7].Descriptor()
	// recitationprofile.DefaultIsDefault holds the default value on creation for the is_default field.
	recitationprofile.DefaultIsDefault = recitationprofileDescIsDefault.Default.(bool)
	// recitationprofileDescID is the schema descriptor for id field.
	recitationprofileDescID := recitationprofileMixinFields0[0].Descriptor()
	// recitationprofile.DefaultID holds the default value on creation for the id field.
	recitationprofile.DefaultID = recitationprofileDescID.Default.(func() ulid.ULID)
	uploadsessionMixin := schema.UploadSession{}.Mixin()
	uploadsessionMixinFields0 := uploadsessionMixin[0].Fields()
	_ = uploadsessionMixinFields0
	uploadsessionMixinFields1 := uploadsessionMixin[1].Fields()
	_ = uploadsessionMixinFields1
	uploadsessionFields := schema.UploadSession{}.Fields()
	_ = uploadsessionFields
	// uploadsessionDescCreatedAt is the schema descriptor for created_at field.
	uploadsessionDescCreatedAt := uploadsessionMixinFields1[0].Descriptor()
	// uploadsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	uploadsession.DefaultCreatedAt = uploadsessionDescCreatedAt.Default.(func() time.Time)
	// uploadsessionDescUpdatedAt is the schema descriptor for updated_at field.
	uploadsessionDescUpdatedAt := uploadsessionMixinFields1[1].Descriptor()
	// uploadsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	uploadsession.DefaultUpdatedAt = uploadsessionDescUpdatedAt.Default.(func() time.Time)
	// uploadsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	uploadsession.UpdateDefaultUpdatedAt = uploadsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// uploadsessionDescProcessProgress is the schema descriptor for process_progress field.
	uploadsessionDescProcessProgress := uploadsessionFields[3].Descriptor()
	// uploadsession.DefaultProcessProgress holds the default value on creation for the process_progress field.
	uploadsession.DefaultProcessProgress = uploadsessionDescProcessProgress.Default.(int)
	// uploadsessionDescID is the schema descriptor for id field.
	uploadsessionDescID := uploadsessionMixinFields0[0].Descriptor()
	// uploadsession.DefaultID holds the default value on creation for the id field.
	uploadsession.DefaultID = uploadsessionDescID.Default.(func() ulid.ULID)
	uploadsessionfileMixin := schema.UploadSessionFile{}.Mixin()
	uploadsessionfileMixinFields0 := uploadsessionfileMixin[0].Fields()
	_ = uploadsessionfileMixinFields0
	uploadsessionfileMixinFields1 := uploadsessionfileMixin[1].Fields()
	_ = uploadsessionfileMixinFields1
	uploadsessionfileFields := schema.UploadSessionFile{}.Fields()
	_ = uploadsessionfileFields
	// uploadsessionfileDescCreatedAt is the schema descriptor for created_at field.
	uploadsessionfileDescCreatedAt := uploadsessionfileMixinFields1[0].Descriptor()
	// uploadsessionfile.DefaultCreatedAt holds the default value on creation for the created_at field.
	uploadsessionfile.DefaultCreatedAt = uploadsessionfileDescCreatedAt.Default.(func() time.Time)
	// uploadsessionfileDescUpdatedAt is the schema descriptor for updated_at field.
	uploadsessionfileDescUpdatedAt := uploadsessionfileMixinFields1[1].Descriptor()
	// uploadsessionfile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	uploadsessionfile.DefaultUpdatedAt = uploadsessionfileDescUpdatedAt.Default.(func() time.Time)
	// uploadsessionfile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	uploadsessionfile.UpdateDefaultUpdatedAt = uploadsessionfileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// uploadsessionfileDescContentType is the schema descriptor for content_type field.
	uploadsessionfileDescContentType := uploadsessionfileFields[3].Descriptor()
	// uploadsessionfile.DefaultContentType holds the default value on creation for the content_type field.
	uploadsessionfile.DefaultContentType = uploadsessionfileDescContentType.Default.(string)
	// uploadsessionfileDescByteLength is the schema descriptor for byte_length field.
	uploadsessionfileDescByteLength := uploadsessionfileFields[4].Descriptor()
	// uploadsessionfile.DefaultByteLength holds the default value on creation for the byte_length field.
	uploadsessionfile.DefaultByteLength = uploadsessionfileDescByteLength.Default.(int64)
	// uploadsessionfileDescTempPath is the schema descriptor for temp_path field.
	uploadsessionfileDescTempPath := uploadsessionfileFields[5].Descriptor()
	// uploadsessionfile.DefaultTempPath holds the default value on creation for the temp_path field.
	uploadsessionfile.DefaultTempPath = uploadsessionfileDescTempPath.Default.(string)
	// uploadsessionfileDescChecksum is the schema descriptor for checksum field.
	uploadsessionfileDescChecksum := uploadsessionfileFields[6].Descriptor()
	// uploadsessionfile.DefaultChecksum holds the default value on creation for the checksum field.
	uploadsessionfile.DefaultChecksum = uploadsessionfileDescChecksum.Default.(string)
	// uploadsessionfileDescProcessed is the schema descriptor for processed field.
	uploadsessionfileDescProcessed := uploadsessionfileFields[7].Descriptor()
	// uploadsessionfile.DefaultProcessed holds the default value on creation for the processed field.
	uploadsessionfile.DefaultProcessed = uploadsessionfileDescProcessed.Default.(bool)
	// uploadsessionfileDescResultMessage is the schema descriptor for result_message field.
	uploadsessionfileDescResultMessage := uploadsessionfileFields[8].Descriptor()
	// uploadsessionfile.DefaultResultMessage holds the default value on creation for the result_message field.
	uploadsessionfile.DefaultResultMessage = uploadsessionfileDescResultMessage.Default.(string)
	// uploadsessionfileDescID is the schema descriptor for id field.
	uploadsessionfileDescID := uploadsessionfileMixinFields0[0].Descriptor()
	// uploadsessionfile.DefaultID holds the default value on creation for the id field.
	uploadsessionfile.DefaultID = uploadsessionfileDescID.Default.(func() ulid.ULID)
}

const (
	Version = "v0.14.5"                                         // Version of ent codegen.
	Sum     = "h1:Rj2WOYJtCkWyFo6a+5wB3EfBRP0rnx1fMk6gGA0UUe4=" // Sum of ent codegen.
)
