// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
)

// Recitation is the model entity for the Recitation schema.
type Recitation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Uploader who owns this recitation
	UserID uuid.UUID `json:"user_id,omitempty"`
	// PoemID holds the value of the "poem_id" field.
	PoemID int `json:"poem_id,omitempty"`
	// Position among recitations of the same poem
	AudioOrder int `json:"audio_order,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// ArtistName holds the value of the "artist_name" field.
	ArtistName string `json:"artist_name,omitempty"`
	// ArtistURL holds the value of the "artist_url" field.
	ArtistURL string `json:"artist_url,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// FileSuffix holds the value of the "file_suffix" field.
	FileSuffix string `json:"file_suffix,omitempty"`
	// Identifier carried into the external catalogs
	LegacyGUID uuid.UUID `json:"legacy_guid,omitempty"`
	// MD5 of the audio file, used for duplicate detection
	Checksum string `json:"checksum,omitempty"`
	// Mp3Size holds the value of the "mp3_size" field.
	Mp3Size int64 `json:"mp3_size,omitempty"`
	// Published name without extension, e.g. 1209-hrm
	FileStem string `json:"file_stem,omitempty"`
	// SoundFolder holds the value of the "sound_folder" field.
	SoundFolder string `json:"sound_folder,omitempty"`
	// LocalMp3Path holds the value of the "local_mp3_path" field.
	LocalMp3Path string `json:"local_mp3_path,omitempty"`
	// LocalXMLPath holds the value of the "local_xml_path" field.
	LocalXMLPath string `json:"local_xml_path,omitempty"`
	// ReviewStatus holds the value of the "review_status" field.
	ReviewStatus recitation.ReviewStatus `json:"review_status,omitempty"`
	// ReviewMessage holds the value of the "review_message" field.
	ReviewMessage string `json:"review_message,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// ReviewerID holds the value of the "reviewer_id" field.
	ReviewerID *uuid.UUID `json:"reviewer_id,omitempty"`
	// Set when the audio is replaced after initial placement
	FileUpdatedAt *time.Time `json:"file_updated_at,omitempty"`
	// SyncStatus holds the value of the "sync_status" field.
	SyncStatus recitation.SyncStatus `json:"sync_status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecitationQuery when eager-loading is set.
	Edges        RecitationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecitationEdges holds the relations/edges for other nodes in the graph.
type RecitationEdges struct {
	// Poem holds the value of the poem edge.
	Poem *Poem `json:"poem,omitempty"`
	// Trackers holds the value of the trackers edge.
	Trackers []*PublishTracker `json:"trackers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PoemOrErr returns the Poem value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecitationEdges) PoemOrErr() (*Poem, error) {
	if e.Poem != nil {
		return e.Poem, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: poem.Label}
	}
	return nil, &NotLoadedError{edge: "poem"}
}

// TrackersOrErr returns the Trackers value or an error if the edge
// was not loaded in eager-loading.
func (e RecitationEdges) TrackersOrErr() ([]*PublishTracker, error) {
	if e.loadedTypes[1] {
		return e.Trackers, nil
	}
	return nil, &NotLoadedError{edge: "trackers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recitation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recitation.FieldReviewerID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case recitation.FieldID, recitation.FieldPoemID, recitation.FieldAudioOrder, recitation.FieldMp3Size:
			values[i] = new(sql.NullInt64)
		case recitation.FieldTitle, recitation.FieldArtistName, recitation.FieldArtistURL, recitation.FieldSourceName, recitation.FieldSourceURL, recitation.FieldFileSuffix, recitation.FieldChecksum, recitation.FieldFileStem, recitation.FieldSoundFolder, recitation.FieldLocalMp3Path, recitation.FieldLocalXMLPath, recitation.FieldReviewStatus, recitation.FieldReviewMessage, recitation.FieldSyncStatus:
			values[i] = new(sql.NullString)
		case recitation.FieldCreatedAt, recitation.FieldUpdatedAt, recitation.FieldReviewedAt, recitation.FieldFileUpdatedAt:
			values[i] = new(sql.NullTime)
		case recitation.FieldUserID, recitation.FieldLegacyGUID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recitation fields.
func (_m *Recitation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recitation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case recitation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recitation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case recitation.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case recitation.FieldPoemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field poem_id", values[i])
			} else if value.Valid {
				_m.PoemID = int(value.Int64)
			}
		case recitation.FieldAudioOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field audio_order", values[i])
			} else if value.Valid {
				_m.AudioOrder = int(value.Int64)
			}
		case recitation.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case recitation.FieldArtistName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artist_name", values[i])
			} else if value.Valid {
				_m.ArtistName = value.String
			}
		case recitation.FieldArtistURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artist_url", values[i])
			} else if value.Valid {
				_m.ArtistURL = value.String
			}
		case recitation.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case recitation.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case recitation.FieldFileSuffix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_suffix", values[i])
			} else if value.Valid {
				_m.FileSuffix = value.String
			}
		case recitation.FieldLegacyGUID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_guid", values[i])
			} else if value != nil {
				_m.LegacyGUID = *value
			}
		case recitation.FieldChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checksum", values[i])
			} else if value.Valid {
				_m.Checksum = value.String
			}
		case recitation.FieldMp3Size:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mp3_size", values[i])
			} else if value.Valid {
				_m.Mp3Size = value.Int64
			}
		case recitation.FieldFileStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_stem", values[i])
			} else if value.Valid {
				_m.FileStem = value.String
			}
		case recitation.FieldSoundFolder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sound_folder", values[i])
			} else if value.Valid {
				_m.SoundFolder = value.String
			}
		case recitation.FieldLocalMp3Path:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field local_mp3_path", values[i])
			} else if value.Valid {
				_m.LocalMp3Path = value.String
			}
		case recitation.FieldLocalXMLPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field local_xml_path", values[i])
			} else if value.Valid {
				_m.LocalXMLPath = value.String
			}
		case recitation.FieldReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_status", values[i])
			} else if value.Valid {
				_m.ReviewStatus = recitation.ReviewStatus(value.String)
			}
		case recitation.FieldReviewMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_message", values[i])
			} else if value.Valid {
				_m.ReviewMessage = value.String
			}
		case recitation.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case recitation.FieldReviewerID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field reviewer_id", values[i])
			} else if value.Valid {
				_m.ReviewerID = new(uuid.UUID)
				*_m.ReviewerID = *value.S.(*uuid.UUID)
			}
		case recitation.FieldFileUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field file_updated_at", values[i])
			} else if value.Valid {
				_m.FileUpdatedAt = new(time.Time)
				*_m.FileUpdatedAt = value.Time
			}
		case recitation.FieldSyncStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sync_status", values[i])
			} else if value.Valid {
				_m.SyncStatus = recitation.SyncStatus(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recitation.
// This includes values selected through modifiers, order, etc.
func (_m *Recitation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPoem queries the "poem" edge of the Recitation entity.
func (_m *Recitation) QueryPoem() *PoemQuery {
	return NewRecitationClient(_m.config).QueryPoem(_m)
}

// QueryTrackers queries the "trackers" edge of the Recitation entity.
func (_m *Recitation) QueryTrackers() *PublishTrackerQuery {
	return NewRecitationClient(_m.config).QueryTrackers(_m)
}

// Update returns a builder for updating this Recitation.
// Note that you need to call Recitation.Unwrap() before calling this method if this Recitation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recitation) Update() *RecitationUpdateOne {
	return NewRecitationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recitation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recitation) Unwrap() *Recitation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: Recitation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recitation) String() string {
	var builder strings.Builder
	builder.WriteString("Recitation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("poem_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PoemID))
	builder.WriteString(", ")
	builder.WriteString("audio_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.AudioOrder))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("artist_name=")
	builder.WriteString(_m.ArtistName)
	builder.WriteString(", ")
	builder.WriteString("artist_url=")
	builder.WriteString(_m.ArtistURL)
	builder.WriteString(", ")
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("file_suffix=")
	builder.WriteString(_m.FileSuffix)
	builder.WriteString(", ")
	builder.WriteString("legacy_guid=")
	builder.WriteString(fmt.Sprintf("%v", _m.LegacyGUID))
	builder.WriteString(", ")
	builder.WriteString("checksum=")
	builder.WriteString(_m.Checksum)
	builder.WriteString(", ")
	builder.WriteString("mp3_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mp3Size))
	builder.WriteString(", ")
	builder.WriteString("file_stem=")
	builder.WriteString(_m.FileStem)
	builder.WriteString(", ")
	builder.WriteString("sound_folder=")
	builder.WriteString(_m.SoundFolder)
	builder.WriteString(", ")
	builder.WriteString("local_mp3_path=")
	builder.WriteString(_m.LocalMp3Path)
	builder.WriteString(", ")
	builder.WriteString("local_xml_path=")
	builder.WriteString(_m.LocalXMLPath)
	builder.WriteString(", ")
	builder.WriteString("review_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewStatus))
	builder.WriteString(", ")
	builder.WriteString("review_message=")
	builder.WriteString(_m.ReviewMessage)
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewerID; v != nil {
		builder.WriteString("reviewer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FileUpdatedAt; v != nil {
		builder.WriteString("file_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("sync_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyncStatus))
	builder.WriteByte(')')
	return builder.String()
}

// Recitations is a parsable slice of Recitation.
type Recitations []*Recitation
