// Code generated by ent, DO NOT EDIT.

package generated

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
)

// Poem is the model entity for the Poem schema.
type Poem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// FullURL holds the value of the "full_url" field.
	FullURL string `json:"full_url,omitempty"`
	// Verse texts in reading order, for resolving sync offsets
	Verses []string `json:"verses,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PoemQuery when eager-loading is set.
	Edges        PoemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PoemEdges holds the relations/edges for other nodes in the graph.
type PoemEdges struct {
	// Recitations holds the value of the recitations edge.
	Recitations []*Recitation `json:"recitations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecitationsOrErr returns the Recitations value or an error if the edge
// was not loaded in eager-loading.
func (e PoemEdges) RecitationsOrErr() ([]*Recitation, error) {
	if e.loadedTypes[0] {
		return e.Recitations, nil
	}
	return nil, &NotLoadedError{edge: "recitations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Poem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case poem.FieldVerses:
			values[i] = new([]byte)
		case poem.FieldID:
			values[i] = new(sql.NullInt64)
		case poem.FieldTitle, poem.FieldFullURL:
			values[i] = new(sql.NullString)
		case poem.FieldCreatedAt, poem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Poem fields.
func (_m *Poem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case poem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case poem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case poem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case poem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case poem.FieldFullURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_url", values[i])
			} else if value.Valid {
				_m.FullURL = value.String
			}
		case poem.FieldVerses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field verses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Verses); err != nil {
					return fmt.Errorf("unmarshal field verses: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Poem.
// This includes values selected through modifiers, order, etc.
func (_m *Poem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecitations queries the "recitations" edge of the Poem entity.
func (_m *Poem) QueryRecitations() *RecitationQuery {
	return NewPoemClient(_m.config).QueryRecitations(_m)
}

// Update returns a builder for updating this Poem.
// Note that you need to call Poem.Unwrap() before calling this method if this Poem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Poem) Update() *PoemUpdateOne {
	return NewPoemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Poem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Poem) Unwrap() *Poem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: Poem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Poem) String() string {
	var builder strings.Builder
	builder.WriteString("Poem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("full_url=")
	builder.WriteString(_m.FullURL)
	builder.WriteString(", ")
	builder.WriteString("verses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verses))
	builder.WriteByte(')')
	return builder.String()
}

// Poems is a parsable slice of Poem.
type Poems []*Poem
