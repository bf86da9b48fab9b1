// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/khanesh/khanesh/internal/ent/generated/event"
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/ent/generated/recitationprofile"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsessionfile"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent             = "Event"
	TypePoem              = "Poem"
	TypePublishTracker    = "PublishTracker"
	TypeRecitation        = "Recitation"
	TypeRecitationProfile = "RecitationProfile"
	TypeUploadSession     = "UploadSession"
	TypeUploadSessionFile = "UploadSessionFile"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *ulid.ULID
	_type         *string
	message       *string
	subject_type  *event.SubjectType
	subject_id    *string
	details       *string
	timestamp     *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id ulid.ULID) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *EventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *EventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EventMutation) ResetType() {
	m._type = nil
}

// SetMessage sets the "message" field.
func (m *EventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *EventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *EventMutation) ResetMessage() {
	m.message = nil
}

// SetSubjectType sets the "subject_type" field.
func (m *EventMutation) SetSubjectType(et event.SubjectType) {
	m.subject_type = &et
}

// SubjectType returns the value of the "subject_type" field in the mutation.
func (m *EventMutation) SubjectType() (r event.SubjectType, exists bool) {
	v := m.subject_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectType returns the old "subject_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSubjectType(ctx context.Context) (v event.SubjectType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectType: %w", err)
	}
	return oldValue.SubjectType, nil
}

// ResetSubjectType resets all changes to the "subject_type" field.
func (m *EventMutation) ResetSubjectType() {
	m.subject_type = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *EventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *EventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSubjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ClearSubjectID clears the value of the "subject_id" field.
func (m *EventMutation) ClearSubjectID() {
	m.subject_id = nil
	m.clearedFields[event.FieldSubjectID] = struct{}{}
}

// SubjectIDCleared returns if the "subject_id" field was cleared in this mutation.
func (m *EventMutation) SubjectIDCleared() bool {
	_, ok := m.clearedFields[event.FieldSubjectID]
	return ok
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *EventMutation) ResetSubjectID() {
	m.subject_id = nil
	delete(m.clearedFields, event.FieldSubjectID)
}

// SetDetails sets the "details" field.
func (m *EventMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *EventMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ResetDetails resets all changes to the "details" field.
func (m *EventMutation) ResetDetails() {
	m.details = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m._type != nil {
		fields = append(fields, event.FieldType)
	}
	if m.message != nil {
		fields = append(fields, event.FieldMessage)
	}
	if m.subject_type != nil {
		fields = append(fields, event.FieldSubjectType)
	}
	if m.subject_id != nil {
		fields = append(fields, event.FieldSubjectID)
	}
	if m.details != nil {
		fields = append(fields, event.FieldDetails)
	}
	if m.timestamp != nil {
		fields = append(fields, event.FieldTimestamp)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldType:
		return m.GetType()
	case event.FieldMessage:
		return m.Message()
	case event.FieldSubjectType:
		return m.SubjectType()
	case event.FieldSubjectID:
		return m.SubjectID()
	case event.FieldDetails:
		return m.Details()
	case event.FieldTimestamp:
		return m.Timestamp()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldType:
		return m.OldType(ctx)
	case event.FieldMessage:
		return m.OldMessage(ctx)
	case event.FieldSubjectType:
		return m.OldSubjectType(ctx)
	case event.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case event.FieldDetails:
		return m.OldDetails(ctx)
	case event.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case event.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case event.FieldSubjectType:
		v, ok := value.(event.SubjectType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectType(v)
		return nil
	case event.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case event.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case event.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldSubjectID) {
		fields = append(fields, event.FieldSubjectID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldSubjectID:
		m.ClearSubjectID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldType:
		m.ResetType()
		return nil
	case event.FieldMessage:
		m.ResetMessage()
		return nil
	case event.FieldSubjectType:
		m.ResetSubjectType()
		return nil
	case event.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case event.FieldDetails:
		m.ResetDetails()
		return nil
	case event.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// PoemMutation represents an operation that mutates the Poem nodes in the graph.
type PoemMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	created_at         *time.Time
	updated_at         *time.Time
	title              *string
	full_url           *string
	verses             *[]string
	appendverses       []string
	clearedFields      map[string]struct{}
	recitations        map[int]struct{}
	removedrecitations map[int]struct{}
	clearedrecitations bool
	done               bool
	oldValue           func(context.Context) (*Poem, error)
	predicates         []predicate.Poem
}

var _ ent.Mutation = (*PoemMutation)(nil)

// poemOption allows management of the mutation configuration using functional options.
type poemOption func(*PoemMutation)

// newPoemMutation creates new mutation for the Poem entity.
func newPoemMutation(c config, op Op, opts ...poemOption) *PoemMutation {
	m := &PoemMutation{
		config:        c,
		op:            op,
		typ:           TypePoem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPoemID sets the ID field of the mutation.
func withPoemID(id int) poemOption {
	return func(m *PoemMutation) {
		var (
			err   error
			once  sync.Once
			value *Poem
		)
		m.oldValue = func(ctx context.Context) (*Poem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Poem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPoem sets the old Poem of the mutation.
func withPoem(node *Poem) poemOption {
	return func(m *PoemMutation) {
		m.oldValue = func(context.Context) (*Poem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PoemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PoemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Poem entities.
func (m *PoemMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PoemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PoemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Poem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PoemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PoemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Poem entity.
// If the Poem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PoemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PoemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PoemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Poem entity.
// If the Poem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PoemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *PoemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PoemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Poem entity.
// If the Poem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PoemMutation) ResetTitle() {
	m.title = nil
}

// SetFullURL sets the "full_url" field.
func (m *PoemMutation) SetFullURL(s string) {
	m.full_url = &s
}

// FullURL returns the value of the "full_url" field in the mutation.
func (m *PoemMutation) FullURL() (r string, exists bool) {
	v := m.full_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFullURL returns the old "full_url" field's value of the Poem entity.
// If the Poem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoemMutation) OldFullURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullURL: %w", err)
	}
	return oldValue.FullURL, nil
}

// ResetFullURL resets all changes to the "full_url" field.
func (m *PoemMutation) ResetFullURL() {
	m.full_url = nil
}

// SetVerses sets the "verses" field.
func (m *PoemMutation) SetVerses(s []string) {
	m.verses = &s
	m.appendverses = nil
}

// Verses returns the value of the "verses" field in the mutation.
func (m *PoemMutation) Verses() (r []string, exists bool) {
	v := m.verses
	if v == nil {
		return
	}
	return *v, true
}

// OldVerses returns the old "verses" field's value of the Poem entity.
// If the Poem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoemMutation) OldVerses(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerses: %w", err)
	}
	return oldValue.Verses, nil
}

// AppendVerses adds s to the "verses" field.
func (m *PoemMutation) AppendVerses(s []string) {
	m.appendverses = append(m.appendverses, s...)
}

// AppendedVerses returns the list of values that were appended to the "verses" field in this mutation.
func (m *PoemMutation) AppendedVerses() ([]string, bool) {
	if len(m.appendverses) == 0 {
		return nil, false
	}
	return m.appendverses, true
}

// ClearVerses clears the value of the "verses" field.
func (m *PoemMutation) ClearVerses() {
	m.verses = nil
	m.appendverses = nil
	m.clearedFields[poem.FieldVerses] = struct{}{}
}

// VersesCleared returns if the "verses" field was cleared in this mutation.
func (m *PoemMutation) VersesCleared() bool {
	_, ok := m.clearedFields[poem.FieldVerses]
	return ok
}

// ResetVerses resets all changes to the "verses" field.
func (m *PoemMutation) ResetVerses() {
	m.verses = nil
	m.appendverses = nil
	delete(m.clearedFields, poem.FieldVerses)
}

// AddRecitationIDs adds the "recitations" edge to the Recitation entity by ids.
func (m *PoemMutation) AddRecitationIDs(ids ...int) {
	if m.recitations == nil {
		m.recitations = make(map[int]struct{})
	}
	for i := range ids {
		m.recitations[ids[i]] = struct{}{}
	}
}

// ClearRecitations clears the "recitations" edge to the Recitation entity.
func (m *PoemMutation) ClearRecitations() {
	m.clearedrecitations = true
}

// RecitationsCleared reports if the "recitations" edge to the Recitation entity was cleared.
func (m *PoemMutation) RecitationsCleared() bool {
	return m.clearedrecitations
}

// RemoveRecitationIDs removes the "recitations" edge to the Recitation entity by IDs.
func (m *PoemMutation) RemoveRecitationIDs(ids ...int) {
	if m.removedrecitations == nil {
		m.removedrecitations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.recitations, ids[i])
		m.removedrecitations[ids[i]] = struct{}{}
	}
}

// RemovedRecitations returns the removed IDs of the "recitations" edge to the Recitation entity.
func (m *PoemMutation) RemovedRecitationsIDs() (ids []int) {
	for id := range m.removedrecitations {
		ids = append(ids, id)
	}
	return
}

// RecitationsIDs returns the "recitations" edge IDs in the mutation.
func (m *PoemMutation) RecitationsIDs() (ids []int) {
	for id := range m.recitations {
		ids = append(ids, id)
	}
	return
}

// ResetRecitations resets all changes to the "recitations" edge.
func (m *PoemMutation) ResetRecitations() {
	m.recitations = nil
	m.clearedrecitations = false
	m.removedrecitations = nil
}

// Where appends a list predicates to the PoemMutation builder.
func (m *PoemMutation) Where(ps ...predicate.Poem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PoemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PoemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Poem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PoemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PoemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Poem).
func (m *PoemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PoemMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, poem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, poem.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, poem.FieldTitle)
	}
	if m.full_url != nil {
		fields = append(fields, poem.FieldFullURL)
	}
	if m.verses != nil {
		fields = append(fields, poem.FieldVerses)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PoemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case poem.FieldCreatedAt:
		return m.CreatedAt()
	case poem.FieldUpdatedAt:
		return m.UpdatedAt()
	case poem.FieldTitle:
		return m.Title()
	case poem.FieldFullURL:
		return m.FullURL()
	case poem.FieldVerses:
		return m.Verses()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PoemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case poem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case poem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case poem.FieldTitle:
		return m.OldTitle(ctx)
	case poem.FieldFullURL:
		return m.OldFullURL(ctx)
	case poem.FieldVerses:
		return m.OldVerses(ctx)
	}
	return nil, fmt.Errorf("unknown Poem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PoemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case poem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case poem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case poem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case poem.FieldFullURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullURL(v)
		return nil
	case poem.FieldVerses:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerses(v)
		return nil
	}
	return fmt.Errorf("unknown Poem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PoemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PoemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PoemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Poem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PoemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(poem.FieldVerses) {
		fields = append(fields, poem.FieldVerses)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PoemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PoemMutation) ClearField(name string) error {
	switch name {
	case poem.FieldVerses:
		m.ClearVerses()
		return nil
	}
	return fmt.Errorf("unknown Poem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PoemMutation) ResetField(name string) error {
	switch name {
	case poem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case poem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case poem.FieldTitle:
		m.ResetTitle()
		return nil
	case poem.FieldFullURL:
		m.ResetFullURL()
		return nil
	case poem.FieldVerses:
		m.ResetVerses()
		return nil
	}
	return fmt.Errorf("unknown Poem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PoemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recitations != nil {
		edges = append(edges, poem.EdgeRecitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PoemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case poem.EdgeRecitations:
		ids := make([]ent.Value, 0, len(m.recitations))
		for id := range m.recitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PoemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrecitations != nil {
		edges = append(edges, poem.EdgeRecitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PoemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case poem.EdgeRecitations:
		ids := make([]ent.Value, 0, len(m.removedrecitations))
		for id := range m.removedrecitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PoemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecitations {
		edges = append(edges, poem.EdgeRecitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PoemMutation) EdgeCleared(name string) bool {
	switch name {
	case poem.EdgeRecitations:
		return m.clearedrecitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PoemMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Poem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PoemMutation) ResetEdge(name string) error {
	switch name {
	case poem.EdgeRecitations:
		m.ResetRecitations()
		return nil
	}
	return fmt.Errorf("unknown Poem edge %s", name)
}

// PublishTrackerMutation represents an operation that mutates the PublishTracker nodes in the graph.
type PublishTrackerMutation struct {
	config
	op                Op
	typ               string
	id                *ulid.ULID
	created_at        *time.Time
	updated_at        *time.Time
	replace           *bool
	xml_copied        *bool
	mp3_copied        *bool
	first_db_updated  *bool
	second_db_updated *bool
	finished          *bool
	last_error        *string
	finished_at       *time.Time
	clearedFields     map[string]struct{}
	recitation        *int
	clearedrecitation bool
	done              bool
	oldValue          func(context.Context) (*PublishTracker, error)
	predicates        []predicate.PublishTracker
}

var _ ent.Mutation = (*PublishTrackerMutation)(nil)

// publishtrackerOption allows management of the mutation configuration using functional options.
type publishtrackerOption func(*PublishTrackerMutation)

// newPublishTrackerMutation creates new mutation for the PublishTracker entity.
func newPublishTrackerMutation(c config, op Op, opts ...publishtrackerOption) *PublishTrackerMutation {
	m := &PublishTrackerMutation{
		config:        c,
		op:            op,
		typ:           TypePublishTracker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPublishTrackerID sets the ID field of the mutation.
func withPublishTrackerID(id ulid.ULID) publishtrackerOption {
	return func(m *PublishTrackerMutation) {
		var (
			err   error
			once  sync.Once
			value *PublishTracker
		)
		m.oldValue = func(ctx context.Context) (*PublishTracker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PublishTracker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPublishTracker sets the old PublishTracker of the mutation.
func withPublishTracker(node *PublishTracker) publishtrackerOption {
	return func(m *PublishTrackerMutation) {
		m.oldValue = func(context.Context) (*PublishTracker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PublishTrackerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PublishTrackerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PublishTracker entities.
func (m *PublishTrackerMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PublishTrackerMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PublishTrackerMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PublishTracker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PublishTrackerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PublishTrackerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PublishTrackerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PublishTrackerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PublishTrackerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PublishTrackerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRecitationID sets the "recitation_id" field.
func (m *PublishTrackerMutation) SetRecitationID(i int) {
	m.recitation = &i
}

// RecitationID returns the value of the "recitation_id" field in the mutation.
func (m *PublishTrackerMutation) RecitationID() (r int, exists bool) {
	v := m.recitation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecitationID returns the old "recitation_id" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldRecitationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecitationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecitationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecitationID: %w", err)
	}
	return oldValue.RecitationID, nil
}

// ResetRecitationID resets all changes to the "recitation_id" field.
func (m *PublishTrackerMutation) ResetRecitationID() {
	m.recitation = nil
}

// SetReplace sets the "replace" field.
func (m *PublishTrackerMutation) SetReplace(b bool) {
	m.replace = &b
}

// Replace returns the value of the "replace" field in the mutation.
func (m *PublishTrackerMutation) Replace() (r bool, exists bool) {
	v := m.replace
	if v == nil {
		return
	}
	return *v, true
}

// OldReplace returns the old "replace" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldReplace(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplace: %w", err)
	}
	return oldValue.Replace, nil
}

// ResetReplace resets all changes to the "replace" field.
func (m *PublishTrackerMutation) ResetReplace() {
	m.replace = nil
}

// SetXMLCopied sets the "xml_copied" field.
func (m *PublishTrackerMutation) SetXMLCopied(b bool) {
	m.xml_copied = &b
}

// XMLCopied returns the value of the "xml_copied" field in the mutation.
func (m *PublishTrackerMutation) XMLCopied() (r bool, exists bool) {
	v := m.xml_copied
	if v == nil {
		return
	}
	return *v, true
}

// OldXMLCopied returns the old "xml_copied" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldXMLCopied(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXMLCopied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXMLCopied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXMLCopied: %w", err)
	}
	return oldValue.XMLCopied, nil
}

// ResetXMLCopied resets all changes to the "xml_copied" field.
func (m *PublishTrackerMutation) ResetXMLCopied() {
	m.xml_copied = nil
}

// SetMp3Copied sets the "mp3_copied" field.
func (m *PublishTrackerMutation) SetMp3Copied(b bool) {
	m.mp3_copied = &b
}

// Mp3Copied returns the value of the "mp3_copied" field in the mutation.
func (m *PublishTrackerMutation) Mp3Copied() (r bool, exists bool) {
	v := m.mp3_copied
	if v == nil {
		return
	}
	return *v, true
}

// OldMp3Copied returns the old "mp3_copied" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldMp3Copied(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMp3Copied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMp3Copied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMp3Copied: %w", err)
	}
	return oldValue.Mp3Copied, nil
}

// ResetMp3Copied resets all changes to the "mp3_copied" field.
func (m *PublishTrackerMutation) ResetMp3Copied() {
	m.mp3_copied = nil
}

// SetFirstDbUpdated sets the "first_db_updated" field.
func (m *PublishTrackerMutation) SetFirstDbUpdated(b bool) {
	m.first_db_updated = &b
}

// FirstDbUpdated returns the value of the "first_db_updated" field in the mutation.
func (m *PublishTrackerMutation) FirstDbUpdated() (r bool, exists bool) {
	v := m.first_db_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstDbUpdated returns the old "first_db_updated" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldFirstDbUpdated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstDbUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstDbUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstDbUpdated: %w", err)
	}
	return oldValue.FirstDbUpdated, nil
}

// ResetFirstDbUpdated resets all changes to the "first_db_updated" field.
func (m *PublishTrackerMutation) ResetFirstDbUpdated() {
	m.first_db_updated = nil
}

// SetSecondDbUpdated sets the "second_db_updated" field.
func (m *PublishTrackerMutation) SetSecondDbUpdated(b bool) {
	m.second_db_updated = &b
}

// SecondDbUpdated returns the value of the "second_db_updated" field in the mutation.
func (m *PublishTrackerMutation) SecondDbUpdated() (r bool, exists bool) {
	v := m.second_db_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondDbUpdated returns the old "second_db_updated" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldSecondDbUpdated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondDbUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondDbUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondDbUpdated: %w", err)
	}
	return oldValue.SecondDbUpdated, nil
}

// ResetSecondDbUpdated resets all changes to the "second_db_updated" field.
func (m *PublishTrackerMutation) ResetSecondDbUpdated() {
	m.second_db_updated = nil
}

// SetFinished sets the "finished" field.
func (m *PublishTrackerMutation) SetFinished(b bool) {
	m.finished = &b
}

// Finished returns the value of the "finished" field in the mutation.
func (m *PublishTrackerMutation) Finished() (r bool, exists bool) {
	v := m.finished
	if v == nil {
		return
	}
	return *v, true
}

// OldFinished returns the old "finished" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldFinished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinished: %w", err)
	}
	return oldValue.Finished, nil
}

// ResetFinished resets all changes to the "finished" field.
func (m *PublishTrackerMutation) ResetFinished() {
	m.finished = nil
}

// SetLastError sets the "last_error" field.
func (m *PublishTrackerMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PublishTrackerMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PublishTrackerMutation) ResetLastError() {
	m.last_error = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *PublishTrackerMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *PublishTrackerMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the PublishTracker entity.
// If the PublishTracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishTrackerMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *PublishTrackerMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[publishtracker.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *PublishTrackerMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[publishtracker.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *PublishTrackerMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, publishtracker.FieldFinishedAt)
}

// ClearRecitation clears the "recitation" edge to the Recitation entity.
func (m *PublishTrackerMutation) ClearRecitation() {
	m.clearedrecitation = true
	m.clearedFields[publishtracker.FieldRecitationID] = struct{}{}
}

// RecitationCleared reports if the "recitation" edge to the Recitation entity was cleared.
func (m *PublishTrackerMutation) RecitationCleared() bool {
	return m.clearedrecitation
}

// RecitationIDs returns the "recitation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecitationID instead. It exists only for internal usage by the builders.
func (m *PublishTrackerMutation) RecitationIDs() (ids []int) {
	if id := m.recitation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecitation resets all changes to the "recitation" edge.
func (m *PublishTrackerMutation) ResetRecitation() {
	m.recitation = nil
	m.clearedrecitation = false
}

// Where appends a list predicates to the PublishTrackerMutation builder.
func (m *PublishTrackerMutation) Where(ps ...predicate.PublishTracker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PublishTrackerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PublishTrackerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PublishTracker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PublishTrackerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PublishTrackerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PublishTracker).
func (m *PublishTrackerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PublishTrackerMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, publishtracker.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, publishtracker.FieldUpdatedAt)
	}
	if m.recitation != nil {
		fields = append(fields, publishtracker.FieldRecitationID)
	}
	if m.replace != nil {
		fields = append(fields, publishtracker.FieldReplace)
	}
	if m.xml_copied != nil {
		fields = append(fields, publishtracker.FieldXMLCopied)
	}
	if m.mp3_copied != nil {
		fields = append(fields, publishtracker.FieldMp3Copied)
	}
	if m.first_db_updated != nil {
		fields = append(fields, publishtracker.FieldFirstDbUpdated)
	}
	if m.second_db_updated != nil {
		fields = append(fields, publishtracker.FieldSecondDbUpdated)
	}
	if m.finished != nil {
		fields = append(fields, publishtracker.FieldFinished)
	}
	if m.last_error != nil {
		fields = append(fields, publishtracker.FieldLastError)
	}
	if m.finished_at != nil {
		fields = append(fields, publishtracker.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PublishTrackerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case publishtracker.FieldCreatedAt:
		return m.CreatedAt()
	case publishtracker.FieldUpdatedAt:
		return m.UpdatedAt()
	case publishtracker.FieldRecitationID:
		return m.RecitationID()
	case publishtracker.FieldReplace:
		return m.Replace()
	case publishtracker.FieldXMLCopied:
		return m.XMLCopied()
	case publishtracker.FieldMp3Copied:
		return m.Mp3Copied()
	case publishtracker.FieldFirstDbUpdated:
		return m.FirstDbUpdated()
	case publishtracker.FieldSecondDbUpdated:
		return m.SecondDbUpdated()
	case publishtracker.FieldFinished:
		return m.Finished()
	case publishtracker.FieldLastError:
		return m.LastError()
	case publishtracker.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PublishTrackerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case publishtracker.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case publishtracker.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case publishtracker.FieldRecitationID:
		return m.OldRecitationID(ctx)
	case publishtracker.FieldReplace:
		return m.OldReplace(ctx)
	case publishtracker.FieldXMLCopied:
		return m.OldXMLCopied(ctx)
	case publishtracker.FieldMp3Copied:
		return m.OldMp3Copied(ctx)
	case publishtracker.FieldFirstDbUpdated:
		return m.OldFirstDbUpdated(ctx)
	case publishtracker.FieldSecondDbUpdated:
		return m.OldSecondDbUpdated(ctx)
	case publishtracker.FieldFinished:
		return m.OldFinished(ctx)
	case publishtracker.FieldLastError:
		return m.OldLastError(ctx)
	case publishtracker.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PublishTracker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PublishTrackerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case publishtracker.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case publishtracker.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case publishtracker.FieldRecitationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecitationID(v)
		return nil
	case publishtracker.FieldReplace:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplace(v)
		return nil
	case publishtracker.FieldXMLCopied:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXMLCopied(v)
		return nil
	case publishtracker.FieldMp3Copied:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMp3Copied(v)
		return nil
	case publishtracker.FieldFirstDbUpdated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstDbUpdated(v)
		return nil
	case publishtracker.FieldSecondDbUpdated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondDbUpdated(v)
		return nil
	case publishtracker.FieldFinished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinished(v)
		return nil
	case publishtracker.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case publishtracker.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PublishTracker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PublishTrackerMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PublishTrackerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PublishTrackerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PublishTracker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PublishTrackerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(publishtracker.FieldFinishedAt) {
		fields = append(fields, publishtracker.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PublishTrackerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PublishTrackerMutation) ClearField(name string) error {
	switch name {
	case publishtracker.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PublishTracker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PublishTrackerMutation) ResetField(name string) error {
	switch name {
	case publishtracker.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case publishtracker.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case publishtracker.FieldRecitationID:
		m.ResetRecitationID()
		return nil
	case publishtracker.FieldReplace:
		m.ResetReplace()
		return nil
	case publishtracker.FieldXMLCopied:
		m.ResetXMLCopied()
		return nil
	case publishtracker.FieldMp3Copied:
		m.ResetMp3Copied()
		return nil
	case publishtracker.FieldFirstDbUpdated:
		m.ResetFirstDbUpdated()
		return nil
	case publishtracker.FieldSecondDbUpdated:
		m.ResetSecondDbUpdated()
		return nil
	case publishtracker.FieldFinished:
		m.ResetFinished()
		return nil
	case publishtracker.FieldLastError:
		m.ResetLastError()
		return nil
	case publishtracker.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PublishTracker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PublishTrackerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recitation != nil {
		edges = append(edges, publishtracker.EdgeRecitation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PublishTrackerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case publishtracker.EdgeRecitation:
		if id := m.recitation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PublishTrackerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PublishTrackerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PublishTrackerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecitation {
		edges = append(edges, publishtracker.EdgeRecitation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PublishTrackerMutation) EdgeCleared(name string) bool {
	switch name {
	case publishtracker.EdgeRecitation:
		return m.clearedrecitation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PublishTrackerMutation) ClearEdge(name string) error {
	switch name {
	case publishtracker.EdgeRecitation:
		m.ClearRecitation()
		return nil
	}
	return fmt.Errorf("unknown PublishTracker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PublishTrackerMutation) ResetEdge(name string) error {
	switch name {
	case publishtracker.EdgeRecitation:
		m.ResetRecitation()
		return nil
	}
	return fmt.Errorf("unknown PublishTracker edge %s", name)
}

// RecitationMutation represents an operation that mutates the Recitation nodes in the graph.
type RecitationMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	updated_at      *time.Time
	user_id         *uuid.UUID
	audio_order     *int
	addaudio_order  *int
	title           *string
	artist_name     *string
	artist_url      *string
	source_name     *string
	source_url      *string
	file_suffix     *string
	legacy_guid     *uuid.UUID
	checksum        *string
	mp3_size        *int64
	addmp3_size     *int64
	file_stem       *string
	sound_folder    *string
	local_mp3_path  *string
	local_xml_path  *string
	review_status   *recitation.ReviewStatus
	review_message  *string
	reviewed_at     *time.Time
	reviewer_id     *uuid.UUID
	file_updated_at *time.Time
	sync_status     *recitation.SyncStatus
	clearedFields   map[string]struct{}
	poem            *int
	clearedpoem     bool
	trackers        map[ulid.ULID]struct{}
	removedtrackers map[ulid.ULID]struct{}
	clearedtrackers bool
	done            bool
	oldValue        func(context.Context) (*Recitation, error)
	predicates      []predicate.Recitation
}

var _ ent.Mutation = (*RecitationMutation)(nil)

// recitationOption allows management of the mutation configuration using functional options.
type recitationOption func(*RecitationMutation)

// newRecitationMutation creates new mutation for the Recitation entity.
func newRecitationMutation(c config, op Op, opts ...recitationOption) *RecitationMutation {
	m := &RecitationMutation{
		config:        c,
		op:            op,
		typ:           TypeRecitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecitationID sets the ID field of the mutation.
func withRecitationID(id int) recitationOption {
	return func(m *RecitationMutation) {
		var (
			err   error
			once  sync.Once
			value *Recitation
		)
		m.oldValue = func(ctx context.Context) (*Recitation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recitation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecitation sets the old Recitation of the mutation.
func withRecitation(node *Recitation) recitationOption {
	return func(m *RecitationMutation) {
		m.oldValue = func(context.Context) (*Recitation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecitationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecitationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recitation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RecitationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecitationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecitationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecitationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecitationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecitationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *RecitationMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RecitationMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RecitationMutation) ResetUserID() {
	m.user_id = nil
}

// SetPoemID sets the "poem_id" field.
func (m *RecitationMutation) SetPoemID(i int) {
	m.poem = &i
}

// PoemID returns the value of the "poem_id" field in the mutation.
func (m *RecitationMutation) PoemID() (r int, exists bool) {
	v := m.poem
	if v == nil {
		return
	}
	return *v, true
}

// OldPoemID returns the old "poem_id" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldPoemID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoemID: %w", err)
	}
	return oldValue.PoemID, nil
}

// ResetPoemID resets all changes to the "poem_id" field.
func (m *RecitationMutation) ResetPoemID() {
	m.poem = nil
}

// SetAudioOrder sets the "audio_order" field.
func (m *RecitationMutation) SetAudioOrder(i int) {
	m.audio_order = &i
	m.addaudio_order = nil
}

// AudioOrder returns the value of the "audio_order" field in the mutation.
func (m *RecitationMutation) AudioOrder() (r int, exists bool) {
	v := m.audio_order
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioOrder returns the old "audio_order" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldAudioOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioOrder: %w", err)
	}
	return oldValue.AudioOrder, nil
}

// AddAudioOrder adds i to the "audio_order" field.
func (m *RecitationMutation) AddAudioOrder(i int) {
	if m.addaudio_order != nil {
		*m.addaudio_order += i
	} else {
		m.addaudio_order = &i
	}
}

// AddedAudioOrder returns the value that was added to the "audio_order" field in this mutation.
func (m *RecitationMutation) AddedAudioOrder() (r int, exists bool) {
	v := m.addaudio_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetAudioOrder resets all changes to the "audio_order" field.
func (m *RecitationMutation) ResetAudioOrder() {
	m.audio_order = nil
	m.addaudio_order = nil
}

// SetTitle sets the "title" field.
func (m *RecitationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RecitationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RecitationMutation) ResetTitle() {
	m.title = nil
}

// SetArtistName sets the "artist_name" field.
func (m *RecitationMutation) SetArtistName(s string) {
	m.artist_name = &s
}

// ArtistName returns the value of the "artist_name" field in the mutation.
func (m *RecitationMutation) ArtistName() (r string, exists bool) {
	v := m.artist_name
	if v == nil {
		return
	}
	return *v, true
}

// OldArtistName returns the old "artist_name" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldArtistName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtistName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtistName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtistName: %w", err)
	}
	return oldValue.ArtistName, nil
}

// ResetArtistName resets all changes to the "artist_name" field.
func (m *RecitationMutation) ResetArtistName() {
	m.artist_name = nil
}

// SetArtistURL sets the "artist_url" field.
func (m *RecitationMutation) SetArtistURL(s string) {
	m.artist_url = &s
}

// ArtistURL returns the value of the "artist_url" field in the mutation.
func (m *RecitationMutation) ArtistURL() (r string, exists bool) {
	v := m.artist_url
	if v == nil {
		return
	}
	return *v, true
}

// OldArtistURL returns the old "artist_url" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldArtistURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtistURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtistURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtistURL: %w", err)
	}
	return oldValue.ArtistURL, nil
}

// ResetArtistURL resets all changes to the "artist_url" field.
func (m *RecitationMutation) ResetArtistURL() {
	m.artist_url = nil
}

// SetSourceName sets the "source_name" field.
func (m *RecitationMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *RecitationMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *RecitationMutation) ResetSourceName() {
	m.source_name = nil
}

// SetSourceURL sets the "source_url" field.
func (m *RecitationMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *RecitationMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *RecitationMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetFileSuffix sets the "file_suffix" field.
func (m *RecitationMutation) SetFileSuffix(s string) {
	m.file_suffix = &s
}

// FileSuffix returns the value of the "file_suffix" field in the mutation.
func (m *RecitationMutation) FileSuffix() (r string, exists bool) {
	v := m.file_suffix
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSuffix returns the old "file_suffix" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldFileSuffix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSuffix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSuffix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSuffix: %w", err)
	}
	return oldValue.FileSuffix, nil
}

// ResetFileSuffix resets all changes to the "file_suffix" field.
func (m *RecitationMutation) ResetFileSuffix() {
	m.file_suffix = nil
}

// SetLegacyGUID sets the "legacy_guid" field.
func (m *RecitationMutation) SetLegacyGUID(u uuid.UUID) {
	m.legacy_guid = &u
}

// LegacyGUID returns the value of the "legacy_guid" field in the mutation.
func (m *RecitationMutation) LegacyGUID() (r uuid.UUID, exists bool) {
	v := m.legacy_guid
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyGUID returns the old "legacy_guid" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldLegacyGUID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyGUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyGUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyGUID: %w", err)
	}
	return oldValue.LegacyGUID, nil
}

// ResetLegacyGUID resets all changes to the "legacy_guid" field.
func (m *RecitationMutation) ResetLegacyGUID() {
	m.legacy_guid = nil
}

// SetChecksum sets the "checksum" field.
func (m *RecitationMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *RecitationMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *RecitationMutation) ResetChecksum() {
	m.checksum = nil
}

// SetMp3Size sets the "mp3_size" field.
func (m *RecitationMutation) SetMp3Size(i int64) {
	m.mp3_size = &i
	m.addmp3_size = nil
}

// Mp3Size returns the value of the "mp3_size" field in the mutation.
func (m *RecitationMutation) Mp3Size() (r int64, exists bool) {
	v := m.mp3_size
	if v == nil {
		return
	}
	return *v, true
}

// OldMp3Size returns the old "mp3_size" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldMp3Size(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMp3Size is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMp3Size requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMp3Size: %w", err)
	}
	return oldValue.Mp3Size, nil
}

// AddMp3Size adds i to the "mp3_size" field.
func (m *RecitationMutation) AddMp3Size(i int64) {
	if m.addmp3_size != nil {
		*m.addmp3_size += i
	} else {
		m.addmp3_size = &i
	}
}

// AddedMp3Size returns the value that was added to the "mp3_size" field in this mutation.
func (m *RecitationMutation) AddedMp3Size() (r int64, exists bool) {
	v := m.addmp3_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetMp3Size resets all changes to the "mp3_size" field.
func (m *RecitationMutation) ResetMp3Size() {
	m.mp3_size = nil
	m.addmp3_size = nil
}

// SetFileStem sets the "file_stem" field.
func (m *RecitationMutation) SetFileStem(s string) {
	m.file_stem = &s
}

// FileStem returns the value of the "file_stem" field in the mutation.
func (m *RecitationMutation) FileStem() (r string, exists bool) {
	v := m.file_stem
	if v == nil {
		return
	}
	return *v, true
}

// OldFileStem returns the old "file_stem" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldFileStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileStem: %w", err)
	}
	return oldValue.FileStem, nil
}

// ResetFileStem resets all changes to the "file_stem" field.
func (m *RecitationMutation) ResetFileStem() {
	m.file_stem = nil
}

// SetSoundFolder sets the "sound_folder" field.
func (m *RecitationMutation) SetSoundFolder(s string) {
	m.sound_folder = &s
}

// SoundFolder returns the value of the "sound_folder" field in the mutation.
func (m *RecitationMutation) SoundFolder() (r string, exists bool) {
	v := m.sound_folder
	if v == nil {
		return
	}
	return *v, true
}

// OldSoundFolder returns the old "sound_folder" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldSoundFolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoundFolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoundFolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoundFolder: %w", err)
	}
	return oldValue.SoundFolder, nil
}

// ResetSoundFolder resets all changes to the "sound_folder" field.
func (m *RecitationMutation) ResetSoundFolder() {
	m.sound_folder = nil
}

// SetLocalMp3Path sets the "local_mp3_path" field.
func (m *RecitationMutation) SetLocalMp3Path(s string) {
	m.local_mp3_path = &s
}

// LocalMp3Path returns the value of the "local_mp3_path" field in the mutation.
func (m *RecitationMutation) LocalMp3Path() (r string, exists bool) {
	v := m.local_mp3_path
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalMp3Path returns the old "local_mp3_path" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldLocalMp3Path(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalMp3Path is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalMp3Path requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalMp3Path: %w", err)
	}
	return oldValue.LocalMp3Path, nil
}

// ResetLocalMp3Path resets all changes to the "local_mp3_path" field.
func (m *RecitationMutation) ResetLocalMp3Path() {
	m.local_mp3_path = nil
}

// SetLocalXMLPath sets the "local_xml_path" field.
func (m *RecitationMutation) SetLocalXMLPath(s string) {
	m.local_xml_path = &s
}

// LocalXMLPath returns the value of the "local_xml_path" field in the mutation.
func (m *RecitationMutation) LocalXMLPath() (r string, exists bool) {
	v := m.local_xml_path
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalXMLPath returns the old "local_xml_path" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldLocalXMLPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalXMLPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalXMLPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalXMLPath: %w", err)
	}
	return oldValue.LocalXMLPath, nil
}

// ResetLocalXMLPath resets all changes to the "local_xml_path" field.
func (m *RecitationMutation) ResetLocalXMLPath() {
	m.local_xml_path = nil
}

// SetReviewStatus sets the "review_status" field.
func (m *RecitationMutation) SetReviewStatus(rs recitation.ReviewStatus) {
	m.review_status = &rs
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *RecitationMutation) ReviewStatus() (r recitation.ReviewStatus, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldReviewStatus(ctx context.Context) (v recitation.ReviewStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *RecitationMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetReviewMessage sets the "review_message" field.
func (m *RecitationMutation) SetReviewMessage(s string) {
	m.review_message = &s
}

// ReviewMessage returns the value of the "review_message" field in the mutation.
func (m *RecitationMutation) ReviewMessage() (r string, exists bool) {
	v := m.review_message
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewMessage returns the old "review_message" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldReviewMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewMessage: %w", err)
	}
	return oldValue.ReviewMessage, nil
}

// ResetReviewMessage resets all changes to the "review_message" field.
func (m *RecitationMutation) ResetReviewMessage() {
	m.review_message = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *RecitationMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *RecitationMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *RecitationMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[recitation.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *RecitationMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[recitation.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *RecitationMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, recitation.FieldReviewedAt)
}

// SetReviewerID sets the "reviewer_id" field.
func (m *RecitationMutation) SetReviewerID(u uuid.UUID) {
	m.reviewer_id = &u
}

// ReviewerID returns the value of the "reviewer_id" field in the mutation.
func (m *RecitationMutation) ReviewerID() (r uuid.UUID, exists bool) {
	v := m.reviewer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerID returns the old "reviewer_id" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldReviewerID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerID: %w", err)
	}
	return oldValue.ReviewerID, nil
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (m *RecitationMutation) ClearReviewerID() {
	m.reviewer_id = nil
	m.clearedFields[recitation.FieldReviewerID] = struct{}{}
}

// ReviewerIDCleared returns if the "reviewer_id" field was cleared in this mutation.
func (m *RecitationMutation) ReviewerIDCleared() bool {
	_, ok := m.clearedFields[recitation.FieldReviewerID]
	return ok
}

// ResetReviewerID resets all changes to the "reviewer_id" field.
func (m *RecitationMutation) ResetReviewerID() {
	m.reviewer_id = nil
	delete(m.clearedFields, recitation.FieldReviewerID)
}

// SetFileUpdatedAt sets the "file_updated_at" field.
func (m *RecitationMutation) SetFileUpdatedAt(t time.Time) {
	m.file_updated_at = &t
}

// FileUpdatedAt returns the value of the "file_updated_at" field in the mutation.
func (m *RecitationMutation) FileUpdatedAt() (r time.Time, exists bool) {
	v := m.file_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFileUpdatedAt returns the old "file_updated_at" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldFileUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileUpdatedAt: %w", err)
	}
	return oldValue.FileUpdatedAt, nil
}

// ClearFileUpdatedAt clears the value of the "file_updated_at" field.
func (m *RecitationMutation) ClearFileUpdatedAt() {
	m.file_updated_at = nil
	m.clearedFields[recitation.FieldFileUpdatedAt] = struct{}{}
}

// FileUpdatedAtCleared returns if the "file_updated_at" field was cleared in this mutation.
func (m *RecitationMutation) FileUpdatedAtCleared() bool {
	_, ok := m.clearedFields[recitation.FieldFileUpdatedAt]
	return ok
}

// ResetFileUpdatedAt resets all changes to the "file_updated_at" field.
func (m *RecitationMutation) ResetFileUpdatedAt() {
	m.file_updated_at = nil
	delete(m.clearedFields, recitation.FieldFileUpdatedAt)
}

// SetSyncStatus sets the "sync_status" field.
func (m *RecitationMutation) SetSyncStatus(rs recitation.SyncStatus) {
	m.sync_status = &rs
}

// SyncStatus returns the value of the "sync_status" field in the mutation.
func (m *RecitationMutation) SyncStatus() (r recitation.SyncStatus, exists bool) {
	v := m.sync_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncStatus returns the old "sync_status" field's value of the Recitation entity.
// If the Recitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationMutation) OldSyncStatus(ctx context.Context) (v recitation.SyncStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncStatus: %w", err)
	}
	return oldValue.SyncStatus, nil
}

// ResetSyncStatus resets all changes to the "sync_status" field.
func (m *RecitationMutation) ResetSyncStatus() {
	m.sync_status = nil
}

// ClearPoem clears the "poem" edge to the Poem entity.
func (m *RecitationMutation) ClearPoem() {
	m.clearedpoem = true
	m.clearedFields[recitation.FieldPoemID] = struct{}{}
}

// PoemCleared reports if the "poem" edge to the Poem entity was cleared.
func (m *RecitationMutation) PoemCleared() bool {
	return m.clearedpoem
}

// PoemIDs returns the "poem" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PoemID instead. It exists only for internal usage by the builders.
func (m *RecitationMutation) PoemIDs() (ids []int) {
	if id := m.poem; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPoem resets all changes to the "poem" edge.
func (m *RecitationMutation) ResetPoem() {
	m.poem = nil
	m.clearedpoem = false
}

// AddTrackerIDs adds the "trackers" edge to the PublishTracker entity by ids.
func (m *RecitationMutation) AddTrackerIDs(ids ...ulid.ULID) {
	if m.trackers == nil {
		m.trackers = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		m.trackers[ids[i]] = struct{}{}
	}
}

// ClearTrackers clears the "trackers" edge to the PublishTracker entity.
func (m *RecitationMutation) ClearTrackers() {
	m.clearedtrackers = true
}

// TrackersCleared reports if the "trackers" edge to the PublishTracker entity was cleared.
func (m *RecitationMutation) TrackersCleared() bool {
	return m.clearedtrackers
}

// RemoveTrackerIDs removes the "trackers" edge to the PublishTracker entity by IDs.
func (m *RecitationMutation) RemoveTrackerIDs(ids ...ulid.ULID) {
	if m.removedtrackers == nil {
		m.removedtrackers = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		delete(m.trackers, ids[i])
		m.removedtrackers[ids[i]] = struct{}{}
	}
}

// RemovedTrackers returns the removed IDs of the "trackers" edge to the PublishTracker entity.
func (m *RecitationMutation) RemovedTrackersIDs() (ids []ulid.ULID) {
	for id := range m.removedtrackers {
		ids = append(ids, id)
	}
	return
}

// TrackersIDs returns the "trackers" edge IDs in the mutation.
func (m *RecitationMutation) TrackersIDs() (ids []ulid.ULID) {
	for id := range m.trackers {
		ids = append(ids, id)
	}
	return
}

// ResetTrackers resets all changes to the "trackers" edge.
func (m *RecitationMutation) ResetTrackers() {
	m.trackers = nil
	m.clearedtrackers = false
	m.removedtrackers = nil
}

// Where appends a list predicates to the RecitationMutation builder.
func (m *RecitationMutation) Where(ps ...predicate.Recitation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recitation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recitation).
func (m *RecitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecitationMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.created_at != nil {
		fields = append(fields, recitation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recitation.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, recitation.FieldUserID)
	}
	if m.poem != nil {
		fields = append(fields, recitation.FieldPoemID)
	}
	if m.audio_order != nil {
		fields = append(fields, recitation.FieldAudioOrder)
	}
	if m.title != nil {
		fields = append(fields, recitation.FieldTitle)
	}
	if m.artist_name != nil {
		fields = append(fields, recitation.FieldArtistName)
	}
	if m.artist_url != nil {
		fields = append(fields, recitation.FieldArtistURL)
	}
	if m.source_name != nil {
		fields = append(fields, recitation.FieldSourceName)
	}
	if m.source_url != nil {
		fields = append(fields, recitation.FieldSourceURL)
	}
	if m.file_suffix != nil {
		fields = append(fields, recitation.FieldFileSuffix)
	}
	if m.legacy_guid != nil {
		fields = append(fields, recitation.FieldLegacyGUID)
	}
	if m.checksum != nil {
		fields = append(fields, recitation.FieldChecksum)
	}
	if m.mp3_size != nil {
		fields = append(fields, recitation.FieldMp3Size)
	}
	if m.file_stem != nil {
		fields = append(fields, recitation.FieldFileStem)
	}
	if m.sound_folder != nil {
		fields = append(fields, recitation.FieldSoundFolder)
	}
	if m.local_mp3_path != nil {
		fields = append(fields, recitation.FieldLocalMp3Path)
	}
	if m.local_xml_path != nil {
		fields = append(fields, recitation.FieldLocalXMLPath)
	}
	if m.review_status != nil {
		fields = append(fields, recitation.FieldReviewStatus)
	}
	if m.review_message != nil {
		fields = append(fields, recitation.FieldReviewMessage)
	}
	if m.reviewed_at != nil {
		fields = append(fields, recitation.FieldReviewedAt)
	}
	if m.reviewer_id != nil {
		fields = append(fields, recitation.FieldReviewerID)
	}
	if m.file_updated_at != nil {
		fields = append(fields, recitation.FieldFileUpdatedAt)
	}
	if m.sync_status != nil {
		fields = append(fields, recitation.FieldSyncStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recitation.FieldCreatedAt:
		return m.CreatedAt()
	case recitation.FieldUpdatedAt:
		return m.UpdatedAt()
	case recitation.FieldUserID:
		return m.UserID()
	case recitation.FieldPoemID:
		return m.PoemID()
	case recitation.FieldAudioOrder:
		return m.AudioOrder()
	case recitation.FieldTitle:
		return m.Title()
	case recitation.FieldArtistName:
		return m.ArtistName()
	case recitation.FieldArtistURL:
		return m.ArtistURL()
	case recitation.FieldSourceName:
		return m.SourceName()
	case recitation.FieldSourceURL:
		return m.SourceURL()
	case recitation.FieldFileSuffix:
		return m.FileSuffix()
	case recitation.FieldLegacyGUID:
		return m.LegacyGUID()
	case recitation.FieldChecksum:
		return m.Checksum()
	case recitation.FieldMp3Size:
		return m.Mp3Size()
	case recitation.FieldFileStem:
		return m.FileStem()
	case recitation.FieldSoundFolder:
		return m.SoundFolder()
	case recitation.FieldLocalMp3Path:
		return m.LocalMp3Path()
	case recitation.FieldLocalXMLPath:
		return m.LocalXMLPath()
	case recitation.FieldReviewStatus:
		return m.ReviewStatus()
	case recitation.FieldReviewMessage:
		return m.ReviewMessage()
	case recitation.FieldReviewedAt:
		return m.ReviewedAt()
	case recitation.FieldReviewerID:
		return m.ReviewerID()
	case recitation.FieldFileUpdatedAt:
		return m.FileUpdatedAt()
	case recitation.FieldSyncStatus:
		return m.SyncStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recitation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recitation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case recitation.FieldUserID:
		return m.OldUserID(ctx)
	case recitation.FieldPoemID:
		return m.OldPoemID(ctx)
	case recitation.FieldAudioOrder:
		return m.OldAudioOrder(ctx)
	case recitation.FieldTitle:
		return m.OldTitle(ctx)
	case recitation.FieldArtistName:
		return m.OldArtistName(ctx)
	case recitation.FieldArtistURL:
		return m.OldArtistURL(ctx)
	case recitation.FieldSourceName:
		return m.OldSourceName(ctx)
	case recitation.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case recitation.FieldFileSuffix:
		return m.OldFileSuffix(ctx)
	case recitation.FieldLegacyGUID:
		return m.OldLegacyGUID(ctx)
	case recitation.FieldChecksum:
		return m.OldChecksum(ctx)
	case recitation.FieldMp3Size:
		return m.OldMp3Size(ctx)
	case recitation.FieldFileStem:
		return m.OldFileStem(ctx)
	case recitation.FieldSoundFolder:
		return m.OldSoundFolder(ctx)
	case recitation.FieldLocalMp3Path:
		return m.OldLocalMp3Path(ctx)
	case recitation.FieldLocalXMLPath:
		return m.OldLocalXMLPath(ctx)
	case recitation.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case recitation.FieldReviewMessage:
		return m.OldReviewMessage(ctx)
	case recitation.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case recitation.FieldReviewerID:
		return m.OldReviewerID(ctx)
	case recitation.FieldFileUpdatedAt:
		return m.OldFileUpdatedAt(ctx)
	case recitation.FieldSyncStatus:
		return m.OldSyncStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Recitation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recitation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recitation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case recitation.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case recitation.FieldPoemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoemID(v)
		return nil
	case recitation.FieldAudioOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioOrder(v)
		return nil
	case recitation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case recitation.FieldArtistName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtistName(v)
		return nil
	case recitation.FieldArtistURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtistURL(v)
		return nil
	case recitation.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case recitation.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case recitation.FieldFileSuffix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSuffix(v)
		return nil
	case recitation.FieldLegacyGUID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyGUID(v)
		return nil
	case recitation.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case recitation.FieldMp3Size:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMp3Size(v)
		return nil
	case recitation.FieldFileStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileStem(v)
		return nil
	case recitation.FieldSoundFolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoundFolder(v)
		return nil
	case recitation.FieldLocalMp3Path:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalMp3Path(v)
		return nil
	case recitation.FieldLocalXMLPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalXMLPath(v)
		return nil
	case recitation.FieldReviewStatus:
		v, ok := value.(recitation.ReviewStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case recitation.FieldReviewMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewMessage(v)
		return nil
	case recitation.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case recitation.FieldReviewerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerID(v)
		return nil
	case recitation.FieldFileUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileUpdatedAt(v)
		return nil
	case recitation.FieldSyncStatus:
		v, ok := value.(recitation.SyncStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Recitation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecitationMutation) AddedFields() []string {
	var fields []string
	if m.addaudio_order != nil {
		fields = append(fields, recitation.FieldAudioOrder)
	}
	if m.addmp3_size != nil {
		fields = append(fields, recitation.FieldMp3Size)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecitationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recitation.FieldAudioOrder:
		return m.AddedAudioOrder()
	case recitation.FieldMp3Size:
		return m.AddedMp3Size()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recitation.FieldAudioOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAudioOrder(v)
		return nil
	case recitation.FieldMp3Size:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMp3Size(v)
		return nil
	}
	return fmt.Errorf("unknown Recitation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecitationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recitation.FieldReviewedAt) {
		fields = append(fields, recitation.FieldReviewedAt)
	}
	if m.FieldCleared(recitation.FieldReviewerID) {
		fields = append(fields, recitation.FieldReviewerID)
	}
	if m.FieldCleared(recitation.FieldFileUpdatedAt) {
		fields = append(fields, recitation.FieldFileUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecitationMutation) ClearField(name string) error {
	switch name {
	case recitation.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	case recitation.FieldReviewerID:
		m.ClearReviewerID()
		return nil
	case recitation.FieldFileUpdatedAt:
		m.ClearFileUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Recitation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecitationMutation) ResetField(name string) error {
	switch name {
	case recitation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recitation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case recitation.FieldUserID:
		m.ResetUserID()
		return nil
	case recitation.FieldPoemID:
		m.ResetPoemID()
		return nil
	case recitation.FieldAudioOrder:
		m.ResetAudioOrder()
		return nil
	case recitation.FieldTitle:
		m.ResetTitle()
		return nil
	case recitation.FieldArtistName:
		m.ResetArtistName()
		return nil
	case recitation.FieldArtistURL:
		m.ResetArtistURL()
		return nil
	case recitation.FieldSourceName:
		m.ResetSourceName()
		return nil
	case recitation.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case recitation.FieldFileSuffix:
		m.ResetFileSuffix()
		return nil
	case recitation.FieldLegacyGUID:
		m.ResetLegacyGUID()
		return nil
	case recitation.FieldChecksum:
		m.ResetChecksum()
		return nil
	case recitation.FieldMp3Size:
		m.ResetMp3Size()
		return nil
	case recitation.FieldFileStem:
		m.ResetFileStem()
		return nil
	case recitation.FieldSoundFolder:
		m.ResetSoundFolder()
		return nil
	case recitation.FieldLocalMp3Path:
		m.ResetLocalMp3Path()
		return nil
	case recitation.FieldLocalXMLPath:
		m.ResetLocalXMLPath()
		return nil
	case recitation.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case recitation.FieldReviewMessage:
		m.ResetReviewMessage()
		return nil
	case recitation.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case recitation.FieldReviewerID:
		m.ResetReviewerID()
		return nil
	case recitation.FieldFileUpdatedAt:
		m.ResetFileUpdatedAt()
		return nil
	case recitation.FieldSyncStatus:
		m.ResetSyncStatus()
		return nil
	}
	return fmt.Errorf("unknown Recitation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.poem != nil {
		edges = append(edges, recitation.EdgePoem)
	}
	if m.trackers != nil {
		edges = append(edges, recitation.EdgeTrackers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecitationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recitation.EdgePoem:
		if id := m.poem; id != nil {
			return []ent.Value{*id}
		}
	case recitation.EdgeTrackers:
		ids := make([]ent.Value, 0, len(m.trackers))
		for id := range m.trackers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtrackers != nil {
		edges = append(edges, recitation.EdgeTrackers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecitationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recitation.EdgeTrackers:
		ids := make([]ent.Value, 0, len(m.removedtrackers))
		for id := range m.removedtrackers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpoem {
		edges = append(edges, recitation.EdgePoem)
	}
	if m.clearedtrackers {
		edges = append(edges, recitation.EdgeTrackers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecitationMutation) EdgeCleared(name string) bool {
	switch name {
	case recitation.EdgePoem:
		return m.clearedpoem
	case recitation.EdgeTrackers:
		return m.clearedtrackers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecitationMutation) ClearEdge(name string) error {
	switch name {
	case recitation.EdgePoem:
		m.ClearPoem()
		return nil
	}
	return fmt.Errorf("unknown Recitation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecitationMutation) ResetEdge(name string) error {
	switch name {
	case recitation.EdgePoem:
		m.ResetPoem()
		return nil
	case recitation.EdgeTrackers:
		m.ResetTrackers()
		return nil
	}
	return fmt.Errorf("unknown Recitation edge %s", name)
}

// RecitationProfileMutation represents an operation that mutates the RecitationProfile nodes in the graph.
type RecitationProfileMutation struct {
	config
	op            Op
	typ           string
	id            *ulid.ULID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	user_id       *uuid.UUID
	name          *string
	artist_name   *string
	artist_url    *string
	source_name   *string
	source_url    *string
	file_suffix   *string
	is_default    *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RecitationProfile, error)
	predicates    []predicate.RecitationProfile
}

var _ ent.Mutation = (*RecitationProfileMutation)(nil)

// recitationprofileOption allows management of the mutation configuration using functional options.
type recitationprofileOption func(*RecitationProfileMutation)

// newRecitationProfileMutation creates new mutation for the RecitationProfile entity.
func newRecitationProfileMutation(c config, op Op, opts ...recitationprofileOption) *RecitationProfileMutation {
	m := &RecitationProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeRecitationProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecitationProfileID sets the ID field of the mutation.
func withRecitationProfileID(id ulid.ULID) recitationprofileOption {
	return func(m *RecitationProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *RecitationProfile
		)
		m.oldValue = func(ctx context.Context) (*RecitationProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecitationProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecitationProfile sets the old RecitationProfile of the mutation.
func withRecitationProfile(node *RecitationProfile) recitationprofileOption {
	return func(m *RecitationProfileMutation) {
		m.oldValue = func(context.Context) (*RecitationProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecitationProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecitationProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecitationProfile entities.
func (m *RecitationProfileMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecitationProfileMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecitationProfileMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecitationProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RecitationProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecitationProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecitationProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecitationProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecitationProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecitationProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *RecitationProfileMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *RecitationProfileMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *RecitationProfileMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[recitationprofile.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *RecitationProfileMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[recitationprofile.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *RecitationProfileMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, recitationprofile.FieldDeletedAt)
}

// SetUserID sets the "user_id" field.
func (m *RecitationProfileMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RecitationProfileMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RecitationProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *RecitationProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RecitationProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RecitationProfileMutation) ResetName() {
	m.name = nil
}

// SetArtistName sets the "artist_name" field.
func (m *RecitationProfileMutation) SetArtistName(s string) {
	m.artist_name = &s
}

// ArtistName returns the value of the "artist_name" field in the mutation.
func (m *RecitationProfileMutation) ArtistName() (r string, exists bool) {
	v := m.artist_name
	if v == nil {
		return
	}
	return *v, true
}

// OldArtistName returns the old "artist_name" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldArtistName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtistName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtistName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtistName: %w", err)
	}
	return oldValue.ArtistName, nil
}

// ResetArtistName resets all changes to the "artist_name" field.
func (m *RecitationProfileMutation) ResetArtistName() {
	m.artist_name = nil
}

// SetArtistURL sets the "artist_url" field.
func (m *RecitationProfileMutation) SetArtistURL(s string) {
	m.artist_url = &s
}

// ArtistURL returns the value of the "artist_url" field in the mutation.
func (m *RecitationProfileMutation) ArtistURL() (r string, exists bool) {
	v := m.artist_url
	if v == nil {
		return
	}
	return *v, true
}

// OldArtistURL returns the old "artist_url" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldArtistURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtistURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtistURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtistURL: %w", err)
	}
	return oldValue.ArtistURL, nil
}

// ResetArtistURL resets all changes to the "artist_url" field.
func (m *RecitationProfileMutation) ResetArtistURL() {
	m.artist_url = nil
}

// SetSourceName sets the "source_name" field.
func (m *RecitationProfileMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *RecitationProfileMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *RecitationProfileMutation) ResetSourceName() {
	m.source_name = nil
}

// SetSourceURL sets the "source_url" field.
func (m *RecitationProfileMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *RecitationProfileMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *RecitationProfileMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetFileSuffix sets the "file_suffix" field.
func (m *RecitationProfileMutation) SetFileSuffix(s string) {
	m.file_suffix = &s
}

// FileSuffix returns the value of the "file_suffix" field in the mutation.
func (m *RecitationProfileMutation) FileSuffix() (r string, exists bool) {
	v := m.file_suffix
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSuffix returns the old "file_suffix" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldFileSuffix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSuffix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSuffix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSuffix: %w", err)
	}
	return oldValue.FileSuffix, nil
}

// ResetFileSuffix resets all changes to the "file_suffix" field.
func (m *RecitationProfileMutation) ResetFileSuffix() {
	m.file_suffix = nil
}

// SetIsDefault sets the "is_default" field.
func (m *RecitationProfileMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *RecitationProfileMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the RecitationProfile entity.
// If the RecitationProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecitationProfileMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *RecitationProfileMutation) ResetIsDefault() {
	m.is_default = nil
}

// Where appends a list predicates to the RecitationProfileMutation builder.
func (m *RecitationProfileMutation) Where(ps ...predicate.RecitationProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecitationProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecitationProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecitationProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecitationProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecitationProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecitationProfile).
func (m *RecitationProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecitationProfileMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, recitationprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recitationprofile.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, recitationprofile.FieldDeletedAt)
	}
	if m.user_id != nil {
		fields = append(fields, recitationprofile.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, recitationprofile.FieldName)
	}
	if m.artist_name != nil {
		fields = append(fields, recitationprofile.FieldArtistName)
	}
	if m.artist_url != nil {
		fields = append(fields, recitationprofile.FieldArtistURL)
	}
	if m.source_name != nil {
		fields = append(fields, recitationprofile.FieldSourceName)
	}
	if m.source_url != nil {
		fields = append(fields, recitationprofile.FieldSourceURL)
	}
	if m.file_suffix != nil {
		fields = append(fields, recitationprofile.FieldFileSuffix)
	}
	if m.is_default != nil {
		fields = append(fields, recitationprofile.FieldIsDefault)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecitationProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recitationprofile.FieldCreatedAt:
		return m.CreatedAt()
	case recitationprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case recitationprofile.FieldDeletedAt:
		return m.DeletedAt()
	case recitationprofile.FieldUserID:
		return m.UserID()
	case recitationprofile.FieldName:
		return m.Name()
	case recitationprofile.FieldArtistName:
		return m.ArtistName()
	case recitationprofile.FieldArtistURL:
		return m.ArtistURL()
	case recitationprofile.FieldSourceName:
		return m.SourceName()
	case recitationprofile.FieldSourceURL:
		return m.SourceURL()
	case recitationprofile.FieldFileSuffix:
		return m.FileSuffix()
	case recitationprofile.FieldIsDefault:
		return m.IsDefault()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecitationProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recitationprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recitationprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case recitationprofile.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case recitationprofile.FieldUserID:
		return m.OldUserID(ctx)
	case recitationprofile.FieldName:
		return m.OldName(ctx)
	case recitationprofile.FieldArtistName:
		return m.OldArtistName(ctx)
	case recitationprofile.FieldArtistURL:
		return m.OldArtistURL(ctx)
	case recitationprofile.FieldSourceName:
		return m.OldSourceName(ctx)
	case recitationprofile.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case recitationprofile.FieldFileSuffix:
		return m.OldFileSuffix(ctx)
	case recitationprofile.FieldIsDefault:
		return m.OldIsDefault(ctx)
	}
	return nil, fmt.Errorf("unknown RecitationProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecitationProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recitationprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recitationprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case recitationprofile.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case recitationprofile.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case recitationprofile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case recitationprofile.FieldArtistName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtistName(v)
		return nil
	case recitationprofile.FieldArtistURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtistURL(v)
		return nil
	case recitationprofile.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case recitationprofile.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case recitationprofile.FieldFileSuffix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSuffix(v)
		return nil
	case recitationprofile.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	}
	return fmt.Errorf("unknown RecitationProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecitationProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecitationProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecitationProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RecitationProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecitationProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recitationprofile.FieldDeletedAt) {
		fields = append(fields, recitationprofile.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecitationProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecitationProfileMutation) ClearField(name string) error {
	switch name {
	case recitationprofile.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown RecitationProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecitationProfileMutation) ResetField(name string) error {
	switch name {
	case recitationprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recitationprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case recitationprofile.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case recitationprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case recitationprofile.FieldName:
		m.ResetName()
		return nil
	case recitationprofile.FieldArtistName:
		m.ResetArtistName()
		return nil
	case recitationprofile.FieldArtistURL:
		m.ResetArtistURL()
		return nil
	case recitationprofile.FieldSourceName:
		m.ResetSourceName()
		return nil
	case recitationprofile.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case recitationprofile.FieldFileSuffix:
		m.ResetFileSuffix()
		return nil
	case recitationprofile.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	}
	return fmt.Errorf("unknown RecitationProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecitationProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecitationProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecitationProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecitationProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecitationProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecitationProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecitationProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RecitationProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecitationProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RecitationProfile edge %s", name)
}

// UploadSessionMutation represents an operation that mutates the UploadSession nodes in the graph.
type UploadSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *ulid.ULID
	created_at          *time.Time
	updated_at          *time.Time
	user_id             *uuid.UUID
	kind                *uploadsession.Kind
	process_status      *uploadsession.ProcessStatus
	process_progress    *int
	addprocess_progress *int
	ended_at            *time.Time
	process_started_at  *time.Time
	process_ended_at    *time.Time
	clearedFields       map[string]struct{}
	files               map[ulid.ULID]struct{}
	removedfiles        map[ulid.ULID]struct{}
	clearedfiles        bool
	done                bool
	oldValue            func(context.Context) (*UploadSession, error)
	predicates          []predicate.UploadSession
}

var _ ent.Mutation = (*UploadSessionMutation)(nil)

// uploadsessionOption allows management of the mutation configuration using functional options.
type uploadsessionOption func(*UploadSessionMutation)

// newUploadSessionMutation creates new mutation for the UploadSession entity.
func newUploadSessionMutation(c config, op Op, opts ...uploadsessionOption) *UploadSessionMutation {
	m := &UploadSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadSessionID sets the ID field of the mutation.
func withUploadSessionID(id ulid.ULID) uploadsessionOption {
	return func(m *UploadSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadSession
		)
		m.oldValue = func(ctx context.Context) (*UploadSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadSession sets the old UploadSession of the mutation.
func withUploadSession(node *UploadSession) uploadsessionOption {
	return func(m *UploadSessionMutation) {
		m.oldValue = func(context.Context) (*UploadSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadSession entities.
func (m *UploadSessionMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadSessionMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadSessionMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UploadSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UploadSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UploadSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UploadSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UploadSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UploadSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UploadSessionMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UploadSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UploadSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetKind sets the "kind" field.
func (m *UploadSessionMutation) SetKind(u uploadsession.Kind) {
	m.kind = &u
}

// Kind returns the value of the "kind" field in the mutation.
func (m *UploadSessionMutation) Kind() (r uploadsession.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldKind(ctx context.Context) (v uploadsession.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *UploadSessionMutation) ResetKind() {
	m.kind = nil
}

// SetProcessStatus sets the "process_status" field.
func (m *UploadSessionMutation) SetProcessStatus(us uploadsession.ProcessStatus) {
	m.process_status = &us
}

// ProcessStatus returns the value of the "process_status" field in the mutation.
func (m *UploadSessionMutation) ProcessStatus() (r uploadsession.ProcessStatus, exists bool) {
	v := m.process_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessStatus returns the old "process_status" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldProcessStatus(ctx context.Context) (v uploadsession.ProcessStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessStatus: %w", err)
	}
	return oldValue.ProcessStatus, nil
}

// ResetProcessStatus resets all changes to the "process_status" field.
func (m *UploadSessionMutation) ResetProcessStatus() {
	m.process_status = nil
}

// SetProcessProgress sets the "process_progress" field.
func (m *UploadSessionMutation) SetProcessProgress(i int) {
	m.process_progress = &i
	m.addprocess_progress = nil
}

// ProcessProgress returns the value of the "process_progress" field in the mutation.
func (m *UploadSessionMutation) ProcessProgress() (r int, exists bool) {
	v := m.process_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessProgress returns the old "process_progress" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldProcessProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessProgress: %w", err)
	}
	return oldValue.ProcessProgress, nil
}

// AddProcessProgress adds i to the "process_progress" field.
func (m *UploadSessionMutation) AddProcessProgress(i int) {
	if m.addprocess_progress != nil {
		*m.addprocess_progress += i
	} else {
		m.addprocess_progress = &i
	}
}

// AddedProcessProgress returns the value that was added to the "process_progress" field in this mutation.
func (m *UploadSessionMutation) AddedProcessProgress() (r int, exists bool) {
	v := m.addprocess_progress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessProgress resets all changes to the "process_progress" field.
func (m *UploadSessionMutation) ResetProcessProgress() {
	m.process_progress = nil
	m.addprocess_progress = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *UploadSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *UploadSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *UploadSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[uploadsession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *UploadSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[uploadsession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *UploadSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, uploadsession.FieldEndedAt)
}

// SetProcessStartedAt sets the "process_started_at" field.
func (m *UploadSessionMutation) SetProcessStartedAt(t time.Time) {
	m.process_started_at = &t
}

// ProcessStartedAt returns the value of the "process_started_at" field in the mutation.
func (m *UploadSessionMutation) ProcessStartedAt() (r time.Time, exists bool) {
	v := m.process_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessStartedAt returns the old "process_started_at" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldProcessStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessStartedAt: %w", err)
	}
	return oldValue.ProcessStartedAt, nil
}

// ClearProcessStartedAt clears the value of the "process_started_at" field.
func (m *UploadSessionMutation) ClearProcessStartedAt() {
	m.process_started_at = nil
	m.clearedFields[uploadsession.FieldProcessStartedAt] = struct{}{}
}

// ProcessStartedAtCleared returns if the "process_started_at" field was cleared in this mutation.
func (m *UploadSessionMutation) ProcessStartedAtCleared() bool {
	_, ok := m.clearedFields[uploadsession.FieldProcessStartedAt]
	return ok
}

// ResetProcessStartedAt resets all changes to the "process_started_at" field.
func (m *UploadSessionMutation) ResetProcessStartedAt() {
	m.process_started_at = nil
	delete(m.clearedFields, uploadsession.FieldProcessStartedAt)
}

// SetProcessEndedAt sets the "process_ended_at" field.
func (m *UploadSessionMutation) SetProcessEndedAt(t time.Time) {
	m.process_ended_at = &t
}

// ProcessEndedAt returns the value of the "process_ended_at" field in the mutation.
func (m *UploadSessionMutation) ProcessEndedAt() (r time.Time, exists bool) {
	v := m.process_ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessEndedAt returns the old "process_ended_at" field's value of the UploadSession entity.
// If the UploadSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionMutation) OldProcessEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessEndedAt: %w", err)
	}
	return oldValue.ProcessEndedAt, nil
}

// ClearProcessEndedAt clears the value of the "process_ended_at" field.
func (m *UploadSessionMutation) ClearProcessEndedAt() {
	m.process_ended_at = nil
	m.clearedFields[uploadsession.FieldProcessEndedAt] = struct{}{}
}

// ProcessEndedAtCleared returns if the "process_ended_at" field was cleared in this mutation.
func (m *UploadSessionMutation) ProcessEndedAtCleared() bool {
	_, ok := m.clearedFields[uploadsession.FieldProcessEndedAt]
	return ok
}

// ResetProcessEndedAt resets all changes to the "process_ended_at" field.
func (m *UploadSessionMutation) ResetProcessEndedAt() {
	m.process_ended_at = nil
	delete(m.clearedFields, uploadsession.FieldProcessEndedAt)
}

// AddFileIDs adds the "files" edge to the UploadSessionFile entity by ids.
func (m *UploadSessionMutation) AddFileIDs(ids ...ulid.ULID) {
	if m.files == nil {
		m.files = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the UploadSessionFile entity.
func (m *UploadSessionMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the UploadSessionFile entity was cleared.
func (m *UploadSessionMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the UploadSessionFile entity by IDs.
func (m *UploadSessionMutation) RemoveFileIDs(ids ...ulid.ULID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the UploadSessionFile entity.
func (m *UploadSessionMutation) RemovedFilesIDs() (ids []ulid.ULID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *UploadSessionMutation) FilesIDs() (ids []ulid.ULID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *UploadSessionMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the UploadSessionMutation builder.
func (m *UploadSessionMutation) Where(ps ...predicate.UploadSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadSession).
func (m *UploadSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, uploadsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, uploadsession.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, uploadsession.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, uploadsession.FieldKind)
	}
	if m.process_status != nil {
		fields = append(fields, uploadsession.FieldProcessStatus)
	}
	if m.process_progress != nil {
		fields = append(fields, uploadsession.FieldProcessProgress)
	}
	if m.ended_at != nil {
		fields = append(fields, uploadsession.FieldEndedAt)
	}
	if m.process_started_at != nil {
		fields = append(fields, uploadsession.FieldProcessStartedAt)
	}
	if m.process_ended_at != nil {
		fields = append(fields, uploadsession.FieldProcessEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadsession.FieldCreatedAt:
		return m.CreatedAt()
	case uploadsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case uploadsession.FieldUserID:
		return m.UserID()
	case uploadsession.FieldKind:
		return m.Kind()
	case uploadsession.FieldProcessStatus:
		return m.ProcessStatus()
	case uploadsession.FieldProcessProgress:
		return m.ProcessProgress()
	case uploadsession.FieldEndedAt:
		return m.EndedAt()
	case uploadsession.FieldProcessStartedAt:
		return m.ProcessStartedAt()
	case uploadsession.FieldProcessEndedAt:
		return m.ProcessEndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case uploadsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case uploadsession.FieldUserID:
		return m.OldUserID(ctx)
	case uploadsession.FieldKind:
		return m.OldKind(ctx)
	case uploadsession.FieldProcessStatus:
		return m.OldProcessStatus(ctx)
	case uploadsession.FieldProcessProgress:
		return m.OldProcessProgress(ctx)
	case uploadsession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case uploadsession.FieldProcessStartedAt:
		return m.OldProcessStartedAt(ctx)
	case uploadsession.FieldProcessEndedAt:
		return m.OldProcessEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case uploadsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case uploadsession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case uploadsession.FieldKind:
		v, ok := value.(uploadsession.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case uploadsession.FieldProcessStatus:
		v, ok := value.(uploadsession.ProcessStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessStatus(v)
		return nil
	case uploadsession.FieldProcessProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessProgress(v)
		return nil
	case uploadsession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case uploadsession.FieldProcessStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessStartedAt(v)
		return nil
	case uploadsession.FieldProcessEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadSessionMutation) AddedFields() []string {
	var fields []string
	if m.addprocess_progress != nil {
		fields = append(fields, uploadsession.FieldProcessProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadsession.FieldProcessProgress:
		return m.AddedProcessProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadsession.FieldProcessProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessProgress(v)
		return nil
	}
	return fmt.Errorf("unknown UploadSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uploadsession.FieldEndedAt) {
		fields = append(fields, uploadsession.FieldEndedAt)
	}
	if m.FieldCleared(uploadsession.FieldProcessStartedAt) {
		fields = append(fields, uploadsession.FieldProcessStartedAt)
	}
	if m.FieldCleared(uploadsession.FieldProcessEndedAt) {
		fields = append(fields, uploadsession.FieldProcessEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadSessionMutation) ClearField(name string) error {
	switch name {
	case uploadsession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case uploadsession.FieldProcessStartedAt:
		m.ClearProcessStartedAt()
		return nil
	case uploadsession.FieldProcessEndedAt:
		m.ClearProcessEndedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadSessionMutation) ResetField(name string) error {
	switch name {
	case uploadsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case uploadsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case uploadsession.FieldUserID:
		m.ResetUserID()
		return nil
	case uploadsession.FieldKind:
		m.ResetKind()
		return nil
	case uploadsession.FieldProcessStatus:
		m.ResetProcessStatus()
		return nil
	case uploadsession.FieldProcessProgress:
		m.ResetProcessProgress()
		return nil
	case uploadsession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case uploadsession.FieldProcessStartedAt:
		m.ResetProcessStartedAt()
		return nil
	case uploadsession.FieldProcessEndedAt:
		m.ResetProcessEndedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.files != nil {
		edges = append(edges, uploadsession.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadsession.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedfiles != nil {
		edges = append(edges, uploadsession.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case uploadsession.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfiles {
		edges = append(edges, uploadsession.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadsession.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UploadSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadSessionMutation) ResetEdge(name string) error {
	switch name {
	case uploadsession.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown UploadSession edge %s", name)
}

// UploadSessionFileMutation represents an operation that mutates the UploadSessionFile nodes in the graph.
type UploadSessionFileMutation struct {
	config
	op             Op
	typ            string
	id             *ulid.ULID
	created_at     *time.Time
	updated_at     *time.Time
	display_name   *string
	original_name  *string
	content_type   *string
	byte_length    *int64
	addbyte_length *int64
	temp_path      *string
	checksum       *string
	processed      *bool
	result_message *string
	clearedFields  map[string]struct{}
	session        *ulid.ULID
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*UploadSessionFile, error)
	predicates     []predicate.UploadSessionFile
}

var _ ent.Mutation = (*UploadSessionFileMutation)(nil)

// uploadsessionfileOption allows management of the mutation configuration using functional options.
type uploadsessionfileOption func(*UploadSessionFileMutation)

// newUploadSessionFileMutation creates new mutation for the UploadSessionFile entity.
func newUploadSessionFileMutation(c config, op Op, opts ...uploadsessionfileOption) *UploadSessionFileMutation {
	m := &UploadSessionFileMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadSessionFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadSessionFileID sets the ID field of the mutation.
func withUploadSessionFileID(id ulid.ULID) uploadsessionfileOption {
	return func(m *UploadSessionFileMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadSessionFile
		)
		m.oldValue = func(ctx context.Context) (*UploadSessionFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadSessionFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadSessionFile sets the old UploadSessionFile of the mutation.
func withUploadSessionFile(node *UploadSessionFile) uploadsessionfileOption {
	return func(m *UploadSessionFileMutation) {
		m.oldValue = func(context.Context) (*UploadSessionFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadSessionFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadSessionFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadSessionFile entities.
func (m *UploadSessionFileMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadSessionFileMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadSessionFileMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadSessionFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UploadSessionFileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UploadSessionFileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UploadSessionFileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UploadSessionFileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UploadSessionFileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UploadSessionFileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *UploadSessionFileMutation) SetSessionID(u ulid.ULID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UploadSessionFileMutation) SessionID() (r ulid.ULID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldSessionID(ctx context.Context) (v ulid.ULID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UploadSessionFileMutation) ResetSessionID() {
	m.session = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UploadSessionFileMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UploadSessionFileMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UploadSessionFileMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetOriginalName sets the "original_name" field.
func (m *UploadSessionFileMutation) SetOriginalName(s string) {
	m.original_name = &s
}

// OriginalName returns the value of the "original_name" field in the mutation.
func (m *UploadSessionFileMutation) OriginalName() (r string, exists bool) {
	v := m.original_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalName returns the old "original_name" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldOriginalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalName: %w", err)
	}
	return oldValue.OriginalName, nil
}

// ResetOriginalName resets all changes to the "original_name" field.
func (m *UploadSessionFileMutation) ResetOriginalName() {
	m.original_name = nil
}

// SetContentType sets the "content_type" field.
func (m *UploadSessionFileMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *UploadSessionFileMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *UploadSessionFileMutation) ResetContentType() {
	m.content_type = nil
}

// SetByteLength sets the "byte_length" field.
func (m *UploadSessionFileMutation) SetByteLength(i int64) {
	m.byte_length = &i
	m.addbyte_length = nil
}

// ByteLength returns the value of the "byte_length" field in the mutation.
func (m *UploadSessionFileMutation) ByteLength() (r int64, exists bool) {
	v := m.byte_length
	if v == nil {
		return
	}
	return *v, true
}

// OldByteLength returns the old "byte_length" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldByteLength(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldByteLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldByteLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldByteLength: %w", err)
	}
	return oldValue.ByteLength, nil
}

// AddByteLength adds i to the "byte_length" field.
func (m *UploadSessionFileMutation) AddByteLength(i int64) {
	if m.addbyte_length != nil {
		*m.addbyte_length += i
	} else {
		m.addbyte_length = &i
	}
}

// AddedByteLength returns the value that was added to the "byte_length" field in this mutation.
func (m *UploadSessionFileMutation) AddedByteLength() (r int64, exists bool) {
	v := m.addbyte_length
	if v == nil {
		return
	}
	return *v, true
}

// ResetByteLength resets all changes to the "byte_length" field.
func (m *UploadSessionFileMutation) ResetByteLength() {
	m.byte_length = nil
	m.addbyte_length = nil
}

// SetTempPath sets the "temp_path" field.
func (m *UploadSessionFileMutation) SetTempPath(s string) {
	m.temp_path = &s
}

// TempPath returns the value of the "temp_path" field in the mutation.
func (m *UploadSessionFileMutation) TempPath() (r string, exists bool) {
	v := m.temp_path
	if v == nil {
		return
	}
	return *v, true
}

// OldTempPath returns the old "temp_path" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldTempPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTempPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTempPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTempPath: %w", err)
	}
	return oldValue.TempPath, nil
}

// ResetTempPath resets all changes to the "temp_path" field.
func (m *UploadSessionFileMutation) ResetTempPath() {
	m.temp_path = nil
}

// SetChecksum sets the "checksum" field.
func (m *UploadSessionFileMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *UploadSessionFileMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *UploadSessionFileMutation) ResetChecksum() {
	m.checksum = nil
}

// SetProcessed sets the "processed" field.
func (m *UploadSessionFileMutation) SetProcessed(b bool) {
	m.processed = &b
}

// Processed returns the value of the "processed" field in the mutation.
func (m *UploadSessionFileMutation) Processed() (r bool, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// ResetProcessed resets all changes to the "processed" field.
func (m *UploadSessionFileMutation) ResetProcessed() {
	m.processed = nil
}

// SetResultMessage sets the "result_message" field.
func (m *UploadSessionFileMutation) SetResultMessage(s string) {
	m.result_message = &s
}

// ResultMessage returns the value of the "result_message" field in the mutation.
func (m *UploadSessionFileMutation) ResultMessage() (r string, exists bool) {
	v := m.result_message
	if v == nil {
		return
	}
	return *v, true
}

// OldResultMessage returns the old "result_message" field's value of the UploadSessionFile entity.
// If the UploadSessionFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadSessionFileMutation) OldResultMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultMessage: %w", err)
	}
	return oldValue.ResultMessage, nil
}

// ResetResultMessage resets all changes to the "result_message" field.
func (m *UploadSessionFileMutation) ResetResultMessage() {
	m.result_message = nil
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (m *UploadSessionFileMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[uploadsessionfile.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the UploadSession entity was cleared.
func (m *UploadSessionFileMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *UploadSessionFileMutation) SessionIDs() (ids []ulid.ULID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *UploadSessionFileMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the UploadSessionFileMutation builder.
func (m *UploadSessionFileMutation) Where(ps ...predicate.UploadSessionFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadSessionFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadSessionFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadSessionFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadSessionFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadSessionFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadSessionFile).
func (m *UploadSessionFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadSessionFileMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, uploadsessionfile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, uploadsessionfile.FieldUpdatedAt)
	}
	if m.session != nil {
		fields = append(fields, uploadsessionfile.FieldSessionID)
	}
	if m.display_name != nil {
		fields = append(fields, uploadsessionfile.FieldDisplayName)
	}
	if m.original_name != nil {
		fields = append(fields, uploadsessionfile.FieldOriginalName)
	}
	if m.content_type != nil {
		fields = append(fields, uploadsessionfile.FieldContentType)
	}
	if m.byte_length != nil {
		fields = append(fields, uploadsessionfile.FieldByteLength)
	}
	if m.temp_path != nil {
		fields = append(fields, uploadsessionfile.FieldTempPath)
	}
	if m.checksum != nil {
		fields = append(fields, uploadsessionfile.FieldChecksum)
	}
	if m.processed != nil {
		fields = append(fields, uploadsessionfile.FieldProcessed)
	}
	if m.result_message != nil {
		fields = append(fields, uploadsessionfile.FieldResultMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadSessionFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadsessionfile.FieldCreatedAt:
		return m.CreatedAt()
	case uploadsessionfile.FieldUpdatedAt:
		return m.UpdatedAt()
	case uploadsessionfile.FieldSessionID:
		return m.SessionID()
	case uploadsessionfile.FieldDisplayName:
		return m.DisplayName()
	case uploadsessionfile.FieldOriginalName:
		return m.OriginalName()
	case uploadsessionfile.FieldContentType:
		return m.ContentType()
	case uploadsessionfile.FieldByteLength:
		return m.ByteLength()
	case uploadsessionfile.FieldTempPath:
		return m.TempPath()
	case uploadsessionfile.FieldChecksum:
		return m.Checksum()
	case uploadsessionfile.FieldProcessed:
		return m.Processed()
	case uploadsessionfile.FieldResultMessage:
		return m.ResultMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadSessionFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadsessionfile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case uploadsessionfile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case uploadsessionfile.FieldSessionID:
		return m.OldSessionID(ctx)
	case uploadsessionfile.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case uploadsessionfile.FieldOriginalName:
		return m.OldOriginalName(ctx)
	case uploadsessionfile.FieldContentType:
		return m.OldContentType(ctx)
	case uploadsessionfile.FieldByteLength:
		return m.OldByteLength(ctx)
	case uploadsessionfile.FieldTempPath:
		return m.OldTempPath(ctx)
	case uploadsessionfile.FieldChecksum:
		return m.OldChecksum(ctx)
	case uploadsessionfile.FieldProcessed:
		return m.OldProcessed(ctx)
	case uploadsessionfile.FieldResultMessage:
		return m.OldResultMessage(ctx)
	}
	return nil, fmt.Errorf("unknown UploadSessionFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadSessionFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadsessionfile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case uploadsessionfile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case uploadsessionfile.FieldSessionID:
		v, ok := value.(ulid.ULID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case uploadsessionfile.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case uploadsessionfile.FieldOriginalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalName(v)
		return nil
	case uploadsessionfile.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case uploadsessionfile.FieldByteLength:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetByteLength(v)
		return nil
	case uploadsessionfile.FieldTempPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTempPath(v)
		return nil
	case uploadsessionfile.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case uploadsessionfile.FieldProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case uploadsessionfile.FieldResultMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultMessage(v)
		return nil
	}
	return fmt.Errorf("unknown UploadSessionFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadSessionFileMutation) AddedFields() []string {
	var fields []string
	if m.addbyte_length != nil {
		fields = append(fields, uploadsessionfile.FieldByteLength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadSessionFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadsessionfile.FieldByteLength:
		return m.AddedByteLength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadSessionFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadsessionfile.FieldByteLength:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddByteLength(v)
		return nil
	}
	return fmt.Errorf("unknown UploadSessionFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadSessionFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadSessionFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadSessionFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UploadSessionFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadSessionFileMutation) ResetField(name string) error {
	switch name {
	case uploadsessionfile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case uploadsessionfile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case uploadsessionfile.FieldSessionID:
		m.ResetSessionID()
		return nil
	case uploadsessionfile.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case uploadsessionfile.FieldOriginalName:
		m.ResetOriginalName()
		return nil
	case uploadsessionfile.FieldContentType:
		m.ResetContentType()
		return nil
	case uploadsessionfile.FieldByteLength:
		m.ResetByteLength()
		return nil
	case uploadsessionfile.FieldTempPath:
		m.ResetTempPath()
		return nil
	case uploadsessionfile.FieldChecksum:
		m.ResetChecksum()
		return nil
	case uploadsessionfile.FieldProcessed:
		m.ResetProcessed()
		return nil
	case uploadsessionfile.FieldResultMessage:
		m.ResetResultMessage()
		return nil
	}
	return fmt.Errorf("unknown UploadSessionFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadSessionFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, uploadsessionfile.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadSessionFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadsessionfile.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadSessionFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadSessionFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadSessionFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, uploadsessionfile.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadSessionFileMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadsessionfile.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadSessionFileMutation) ClearEdge(name string) error {
	switch name {
	case uploadsessionfile.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown UploadSessionFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadSessionFileMutation) ResetEdge(name string) error {
	switch name {
	case uploadsessionfile.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown UploadSessionFile edge %s", name)
}
