// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsessionfile"
	ulid "github.com/oklog/ulid/v2"
)

// UploadSessionFile is the model entity for the UploadSessionFile schema.
type UploadSessionFile struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// References UploadSession.ID
	SessionID ulid.ULID `json:"session_id,omitempty"`
	// Client-provided file name, extension stripped
	DisplayName string `json:"display_name,omitempty"`
	// OriginalName holds the value of the "original_name" field.
	OriginalName string `json:"original_name,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// ByteLength holds the value of the "byte_length" field.
	ByteLength int64 `json:"byte_length,omitempty"`
	// Where the raw upload was staged on local disk; empty for rejected files
	TempPath string `json:"temp_path,omitempty"`
	// MD5 of the file contents, hex encoded
	Checksum string `json:"checksum,omitempty"`
	// Processed holds the value of the "processed" field.
	Processed bool `json:"processed,omitempty"`
	// ResultMessage holds the value of the "result_message" field.
	ResultMessage string `json:"result_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadSessionFileQuery when eager-loading is set.
	Edges        UploadSessionFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadSessionFileEdges holds the relations/edges for other nodes in the graph.
type UploadSessionFileEdges struct {
	// Session holds the value of the session edge.
	Session *UploadSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UploadSessionFileEdges) SessionOrErr() (*UploadSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: uploadsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadSessionFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadsessionfile.FieldProcessed:
			values[i] = new(sql.NullBool)
		case uploadsessionfile.FieldByteLength:
			values[i] = new(sql.NullInt64)
		case uploadsessionfile.FieldDisplayName, uploadsessionfile.FieldOriginalName, uploadsessionfile.FieldContentType, uploadsessionfile.FieldTempPath, uploadsessionfile.FieldChecksum, uploadsessionfile.FieldResultMessage:
			values[i] = new(sql.NullString)
		case uploadsessionfile.FieldCreatedAt, uploadsessionfile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case uploadsessionfile.FieldID, uploadsessionfile.FieldSessionID:
			values[i] = new(ulid.ULID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadSessionFile fields.
func (_m *UploadSessionFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadsessionfile.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case uploadsessionfile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case uploadsessionfile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case uploadsessionfile.FieldSessionID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case uploadsessionfile.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case uploadsessionfile.FieldOriginalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_name", values[i])
			} else if value.Valid {
				_m.OriginalName = value.String
			}
		case uploadsessionfile.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case uploadsessionfile.FieldByteLength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field byte_length", values[i])
			} else if value.Valid {
				_m.ByteLength = value.Int64
			}
		case uploadsessionfile.FieldTempPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field temp_path", values[i])
			} else if value.Valid {
				_m.TempPath = value.String
			}
		case uploadsessionfile.FieldChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checksum", values[i])
			} else if value.Valid {
				_m.Checksum = value.String
			}
		case uploadsessionfile.FieldProcessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field processed", values[i])
			} else if value.Valid {
				_m.Processed = value.Bool
			}
		case uploadsessionfile.FieldResultMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_message", values[i])
			} else if value.Valid {
				_m.ResultMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UploadSessionFile.
// This includes values selected through modifiers, order, etc.
func (_m *UploadSessionFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the UploadSessionFile entity.
func (_m *UploadSessionFile) QuerySession() *UploadSessionQuery {
	return NewUploadSessionFileClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this UploadSessionFile.
// Note that you need to call UploadSessionFile.Unwrap() before calling this method if this UploadSessionFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UploadSessionFile) Update() *UploadSessionFileUpdateOne {
	return NewUploadSessionFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UploadSessionFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UploadSessionFile) Unwrap() *UploadSessionFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: UploadSessionFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UploadSessionFile) String() string {
	var builder strings.Builder
	builder.WriteString("UploadSessionFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("original_name=")
	builder.WriteString(_m.OriginalName)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("byte_length=")
	builder.WriteString(fmt.Sprintf("%v", _m.ByteLength))
	builder.WriteString(", ")
	builder.WriteString("temp_path=")
	builder.WriteString(_m.TempPath)
	builder.WriteString(", ")
	builder.WriteString("checksum=")
	builder.WriteString(_m.Checksum)
	builder.WriteString(", ")
	builder.WriteString("processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Processed))
	builder.WriteString(", ")
	builder.WriteString("result_message=")
	builder.WriteString(_m.ResultMessage)
	builder.WriteByte(')')
	return builder.String()
}

// UploadSessionFiles is a parsable slice of UploadSessionFile.
type UploadSessionFiles []*UploadSessionFile
