// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	ulid "github.com/oklog/ulid/v2"
)

// PublishTracker is the model entity for the PublishTracker schema.
type PublishTracker struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// References Recitation.ID
	RecitationID int `json:"recitation_id,omitempty"`
	// Files-only publish; the catalog rows already exist
	Replace bool `json:"replace,omitempty"`
	// XMLCopied holds the value of the "xml_copied" field.
	XMLCopied bool `json:"xml_copied,omitempty"`
	// Mp3Copied holds the value of the "mp3_copied" field.
	Mp3Copied bool `json:"mp3_copied,omitempty"`
	// FirstDbUpdated holds the value of the "first_db_updated" field.
	FirstDbUpdated bool `json:"first_db_updated,omitempty"`
	// SecondDbUpdated holds the value of the "second_db_updated" field.
	SecondDbUpdated bool `json:"second_db_updated,omitempty"`
	// Finished holds the value of the "finished" field.
	Finished bool `json:"finished,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError string `json:"last_error,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PublishTrackerQuery when eager-loading is set.
	Edges        PublishTrackerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PublishTrackerEdges holds the relations/edges for other nodes in the graph.
type PublishTrackerEdges struct {
	// Recitation holds the value of the recitation edge.
	Recitation *Recitation `json:"recitation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecitationOrErr returns the Recitation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PublishTrackerEdges) RecitationOrErr() (*Recitation, error) {
	if e.Recitation != nil {
		return e.Recitation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recitation.Label}
	}
	return nil, &NotLoadedError{edge: "recitation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PublishTracker) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case publishtracker.FieldReplace, publishtracker.FieldXMLCopied, publishtracker.FieldMp3Copied, publishtracker.FieldFirstDbUpdated, publishtracker.FieldSecondDbUpdated, publishtracker.FieldFinished:
			values[i] = new(sql.NullBool)
		case publishtracker.FieldRecitationID:
			values[i] = new(sql.NullInt64)
		case publishtracker.FieldLastError:
			values[i] = new(sql.NullString)
		case publishtracker.FieldCreatedAt, publishtracker.FieldUpdatedAt, publishtracker.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case publishtracker.FieldID:
			values[i] = new(ulid.ULID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PublishTracker fields.
func (_m *PublishTracker) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case publishtracker.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case publishtracker.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case publishtracker.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case publishtracker.FieldRecitationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recitation_id", values[i])
			} else if value.Valid {
				_m.RecitationID = int(value.Int64)
			}
		case publishtracker.FieldReplace:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field replace", values[i])
			} else if value.Valid {
				_m.Replace = value.Bool
			}
		case publishtracker.FieldXMLCopied:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field xml_copied", values[i])
			} else if value.Valid {
				_m.XMLCopied = value.Bool
			}
		case publishtracker.FieldMp3Copied:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mp3_copied", values[i])
			} else if value.Valid {
				_m.Mp3Copied = value.Bool
			}
		case publishtracker.FieldFirstDbUpdated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field first_db_updated", values[i])
			} else if value.Valid {
				_m.FirstDbUpdated = value.Bool
			}
		case publishtracker.FieldSecondDbUpdated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field second_db_updated", values[i])
			} else if value.Valid {
				_m.SecondDbUpdated = value.Bool
			}
		case publishtracker.FieldFinished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field finished", values[i])
			} else if value.Valid {
				_m.Finished = value.Bool
			}
		case publishtracker.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		case publishtracker.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PublishTracker.
// This includes values selected through modifiers, order, etc.
func (_m *PublishTracker) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecitation queries the "recitation" edge of the PublishTracker entity.
func (_m *PublishTracker) QueryRecitation() *RecitationQuery {
	return NewPublishTrackerClient(_m.config).QueryRecitation(_m)
}

// Update returns a builder for updating this PublishTracker.
// Note that you need to call PublishTracker.Unwrap() before calling this method if this PublishTracker
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PublishTracker) Update() *PublishTrackerUpdateOne {
	return NewPublishTrackerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PublishTracker entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PublishTracker) Unwrap() *PublishTracker {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: PublishTracker is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PublishTracker) String() string {
	var builder strings.Builder
	builder.WriteString("PublishTracker(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("recitation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecitationID))
	builder.WriteString(", ")
	builder.WriteString("replace=")
	builder.WriteString(fmt.Sprintf("%v", _m.Replace))
	builder.WriteString(", ")
	builder.WriteString("xml_copied=")
	builder.WriteString(fmt.Sprintf("%v", _m.XMLCopied))
	builder.WriteString(", ")
	builder.WriteString("mp3_copied=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mp3Copied))
	builder.WriteString(", ")
	builder.WriteString("first_db_updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstDbUpdated))
	builder.WriteString(", ")
	builder.WriteString("second_db_updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.SecondDbUpdated))
	builder.WriteString(", ")
	builder.WriteString("finished=")
	builder.WriteString(fmt.Sprintf("%v", _m.Finished))
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PublishTrackers is a parsable slice of PublishTracker.
type PublishTrackers []*PublishTracker
