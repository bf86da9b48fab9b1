// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	ulid "github.com/oklog/ulid/v2"
)

// UploadSession is the model entity for the UploadSession schema.
type UploadSession struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Owner of the uploaded files
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind uploadsession.Kind `json:"kind,omitempty"`
	// ProcessStatus holds the value of the "process_status" field.
	ProcessStatus uploadsession.ProcessStatus `json:"process_status,omitempty"`
	// Percentage 0-100
	ProcessProgress int `json:"process_progress,omitempty"`
	// Set when the uploader finalizes the session
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Set when background processing begins
	ProcessStartedAt *time.Time `json:"process_started_at,omitempty"`
	// ProcessEndedAt holds the value of the "process_ended_at" field.
	ProcessEndedAt *time.Time `json:"process_ended_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadSessionQuery when eager-loading is set.
	Edges        UploadSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadSessionEdges holds the relations/edges for other nodes in the graph.
type UploadSessionEdges struct {
	// Files holds the value of the files edge.
	Files []*UploadSessionFile `json:"files,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e UploadSessionEdges) FilesOrErr() ([]*UploadSessionFile, error) {
	if e.loadedTypes[0] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadsession.FieldProcessProgress:
			values[i] = new(sql.NullInt64)
		case uploadsession.FieldKind, uploadsession.FieldProcessStatus:
			values[i] = new(sql.NullString)
		case uploadsession.FieldCreatedAt, uploadsession.FieldUpdatedAt, uploadsession.FieldEndedAt, uploadsession.FieldProcessStartedAt, uploadsession.FieldProcessEndedAt:
			values[i] = new(sql.NullTime)
		case uploadsession.FieldID:
			values[i] = new(ulid.ULID)
		case uploadsession.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadSession fields.
func (_m *UploadSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadsession.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case uploadsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case uploadsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case uploadsession.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case uploadsession.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = uploadsession.Kind(value.String)
			}
		case uploadsession.FieldProcessStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_status", values[i])
			} else if value.Valid {
				_m.ProcessStatus = uploadsession.ProcessStatus(value.String)
			}
		case uploadsession.FieldProcessProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field process_progress", values[i])
			} else if value.Valid {
				_m.ProcessProgress = int(value.Int64)
			}
		case uploadsession.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case uploadsession.FieldProcessStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field process_started_at", values[i])
			} else if value.Valid {
				_m.ProcessStartedAt = new(time.Time)
				*_m.ProcessStartedAt = value.Time
			}
		case uploadsession.FieldProcessEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field process_ended_at", values[i])
			} else if value.Valid {
				_m.ProcessEndedAt = new(time.Time)
				*_m.ProcessEndedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UploadSession.
// This includes values selected through modifiers, order, etc.
func (_m *UploadSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFiles queries the "files" edge of the UploadSession entity.
func (_m *UploadSession) QueryFiles() *UploadSessionFileQuery {
	return NewUploadSessionClient(_m.config).QueryFiles(_m)
}

// Update returns a builder for updating this UploadSession.
// Note that you need to call UploadSession.Unwrap() before calling this method if this UploadSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UploadSession) Update() *UploadSessionUpdateOne {
	return NewUploadSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UploadSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UploadSession) Unwrap() *UploadSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: UploadSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UploadSession) String() string {
	var builder strings.Builder
	builder.WriteString("UploadSession(")
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
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("process_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessStatus))
	builder.WriteString(", ")
	builder.WriteString("process_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessProgress))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProcessStartedAt; v != nil {
		builder.WriteString("process_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProcessEndedAt; v != nil {
		builder.WriteString("process_ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UploadSessions is a parsable slice of UploadSession.
type UploadSessions []*UploadSession
