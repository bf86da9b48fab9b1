// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/khanesh/khanesh/internal/ent/generated/migrate"
	ulid "github.com/oklog/ulid/v2"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/khanesh/khanesh/internal/ent/generated/event"
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/ent/generated/recitationprofile"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsessionfile"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Poem is the client for interacting with the Poem builders.
	Poem *PoemClient
	// PublishTracker is the client for interacting with the PublishTracker builders.
	PublishTracker *PublishTrackerClient
	// Recitation is the client for interacting with the Recitation builders.
	Recitation *RecitationClient
	// RecitationProfile is the client for interacting with the RecitationProfile builders.
	RecitationProfile *RecitationProfileClient
	// UploadSession is the client for interacting with the UploadSession builders.
	UploadSession *UploadSessionClient
	// UploadSessionFile is the client for interacting with the UploadSessionFile builders.
	UploadSessionFile *UploadSessionFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Event = NewEventClient(c.config)
	c.Poem = NewPoemClient(c.config)
	c.PublishTracker = NewPublishTrackerClient(c.config)
	c.Recitation = NewRecitationClient(c.config)
	c.RecitationProfile = NewRecitationProfileClient(c.config)
	c.UploadSession = NewUploadSessionClient(c.config)
	c.UploadSessionFile = NewUploadSessionFileClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("generated: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("generated: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Event:             NewEventClient(cfg),
		Poem:              NewPoemClient(cfg),
		PublishTracker:    NewPublishTrackerClient(cfg),
		Recitation:        NewRecitationClient(cfg),
		RecitationProfile: NewRecitationProfileClient(cfg),
		UploadSession:     NewUploadSessionClient(cfg),
		UploadSessionFile: NewUploadSessionFileClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Event:             NewEventClient(cfg),
		Poem:              NewPoemClient(cfg),
		PublishTracker:    NewPublishTrackerClient(cfg),
		Recitation:        NewRecitationClient(cfg),
		RecitationProfile: NewRecitationProfileClient(cfg),
		UploadSession:     NewUploadSessionClient(cfg),
		UploadSessionFile: NewUploadSessionFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Event.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Event, c.Poem, c.PublishTracker, c.Recitation, c.RecitationProfile,
		c.UploadSession, c.UploadSessionFile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Event, c.Poem, c.PublishTracker, c.Recitation, c.RecitationProfile,
		c.UploadSession, c.UploadSessionFile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *PoemMutation:
		return c.Poem.mutate(ctx, m)
	case *PublishTrackerMutation:
		return c.PublishTracker.mutate(ctx, m)
	case *RecitationMutation:
		return c.Recitation.mutate(ctx, m)
	case *RecitationProfileMutation:
		return c.RecitationProfile.mutate(ctx, m)
	case *UploadSessionMutation:
		return c.UploadSession.mutate(ctx, m)
	case *UploadSessionFileMutation:
		return c.UploadSessionFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("generated: unknown mutation type %T", m)
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id ulid.ULID) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id ulid.ULID) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id ulid.ULID) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id ulid.ULID) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Event mutation op: %q", m.Op())
	}
}

// PoemClient is a client for the Poem schema.
type PoemClient struct {
	config
}

// NewPoemClient returns a client for the Poem from the given config.
func NewPoemClient(c config) *PoemClient {
	return &PoemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `poem.Hooks(f(g(h())))`.
func (c *PoemClient) Use(hooks ...Hook) {
	c.hooks.Poem = append(c.hooks.Poem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `poem.Intercept(f(g(h())))`.
func (c *PoemClient) Intercept(interceptors ...Interceptor) {
	c.inters.Poem = append(c.inters.Poem, interceptors...)
}

// Create returns a builder for creating a Poem entity.
func (c *PoemClient) Create() *PoemCreate {
	mutation := newPoemMutation(c.config, OpCreate)
	return &PoemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Poem entities.
func (c *PoemClient) CreateBulk(builders ...*PoemCreate) *PoemCreateBulk {
	return &PoemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PoemClient) MapCreateBulk(slice any, setFunc func(*PoemCreate, int)) *PoemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PoemCreateBulk{err: fmt.Errorf("calling to PoemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PoemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PoemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Poem.
func (c *PoemClient) Update() *PoemUpdate {
	mutation := newPoemMutation(c.config, OpUpdate)
	return &PoemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PoemClient) UpdateOne(_m *Poem) *PoemUpdateOne {
	mutation := newPoemMutation(c.config, OpUpdateOne, withPoem(_m))
	return &PoemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PoemClient) UpdateOneID(id int) *PoemUpdateOne {
	mutation := newPoemMutation(c.config, OpUpdateOne, withPoemID(id))
	return &PoemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Poem.
func (c *PoemClient) Delete() *PoemDelete {
	mutation := newPoemMutation(c.config, OpDelete)
	return &PoemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PoemClient) DeleteOne(_m *Poem) *PoemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PoemClient) DeleteOneID(id int) *PoemDeleteOne {
	builder := c.Delete().Where(poem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PoemDeleteOne{builder}
}

// Query returns a query builder for Poem.
func (c *PoemClient) Query() *PoemQuery {
	return &PoemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePoem},
		inters: c.Interceptors(),
	}
}

// Get returns a Poem entity by its id.
func (c *PoemClient) Get(ctx context.Context, id int) (*Poem, error) {
	return c.Query().Where(poem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PoemClient) GetX(ctx context.Context, id int) *Poem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecitations queries the recitations edge of a Poem.
func (c *PoemClient) QueryRecitations(_m *Poem) *RecitationQuery {
	query := (&RecitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poem.Table, poem.FieldID, id),
			sqlgraph.To(recitation.Table, recitation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, poem.RecitationsTable, poem.RecitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PoemClient) Hooks() []Hook {
	return c.hooks.Poem
}

// Interceptors returns the client interceptors.
func (c *PoemClient) Interceptors() []Interceptor {
	return c.inters.Poem
}

func (c *PoemClient) mutate(ctx context.Context, m *PoemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PoemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PoemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PoemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PoemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Poem mutation op: %q", m.Op())
	}
}

// PublishTrackerClient is a client for the PublishTracker schema.
type PublishTrackerClient struct {
	config
}

// NewPublishTrackerClient returns a client for the PublishTracker from the given config.
func NewPublishTrackerClient(c config) *PublishTrackerClient {
	return &PublishTrackerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `publishtracker.Hooks(f(g(h())))`.
func (c *PublishTrackerClient) Use(hooks ...Hook) {
	c.hooks.PublishTracker = append(c.hooks.PublishTracker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `publishtracker.Intercept(f(g(h())))`.
func (c *PublishTrackerClient) Intercept(interceptors ...Interceptor) {
	c.inters.PublishTracker = append(c.inters.PublishTracker, interceptors...)
}

// Create returns a builder for creating a PublishTracker entity.
func (c *PublishTrackerClient) Create() *PublishTrackerCreate {
	mutation := newPublishTrackerMutation(c.config, OpCreate)
	return &PublishTrackerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PublishTracker entities.
func (c *PublishTrackerClient) CreateBulk(builders ...*PublishTrackerCreate) *PublishTrackerCreateBulk {
	return &PublishTrackerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PublishTrackerClient) MapCreateBulk(slice any, setFunc func(*PublishTrackerCreate, int)) *PublishTrackerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PublishTrackerCreateBulk{err: fmt.Errorf("calling to PublishTrackerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PublishTrackerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PublishTrackerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PublishTracker.
func (c *PublishTrackerClient) Update() *PublishTrackerUpdate {
	mutation := newPublishTrackerMutation(c.config, OpUpdate)
	return &PublishTrackerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PublishTrackerClient) UpdateOne(_m *PublishTracker) *PublishTrackerUpdateOne {
	mutation := newPublishTrackerMutation(c.config, OpUpdateOne, withPublishTracker(_m))
	return &PublishTrackerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PublishTrackerClient) UpdateOneID(id ulid.ULID) *PublishTrackerUpdateOne {
	mutation := newPublishTrackerMutation(c.config, OpUpdateOne, withPublishTrackerID(id))
	return &PublishTrackerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PublishTracker.
func (c *PublishTrackerClient) Delete() *PublishTrackerDelete {
	mutation := newPublishTrackerMutation(c.config, OpDelete)
	return &PublishTrackerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PublishTrackerClient) DeleteOne(_m *PublishTracker) *PublishTrackerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PublishTrackerClient) DeleteOneID(id ulid.ULID) *PublishTrackerDeleteOne {
	builder := c.Delete().Where(publishtracker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PublishTrackerDeleteOne{builder}
}

// Query returns a query builder for PublishTracker.
func (c *PublishTrackerClient) Query() *PublishTrackerQuery {
	return &PublishTrackerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePublishTracker},
		inters: c.Interceptors(),
	}
}

// Get returns a PublishTracker entity by its id.
func (c *PublishTrackerClient) Get(ctx context.Context, id ulid.ULID) (*PublishTracker, error) {
	return c.Query().Where(publishtracker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PublishTrackerClient) GetX(ctx context.Context, id ulid.ULID) *PublishTracker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecitation queries the recitation edge of a PublishTracker.
func (c *PublishTrackerClient) QueryRecitation(_m *PublishTracker) *RecitationQuery {
	query := (&RecitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(publishtracker.Table, publishtracker.FieldID, id),
			sqlgraph.To(recitation.Table, recitation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, publishtracker.RecitationTable, publishtracker.RecitationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PublishTrackerClient) Hooks() []Hook {
	return c.hooks.PublishTracker
}

// Interceptors returns the client interceptors.
func (c *PublishTrackerClient) Interceptors() []Interceptor {
	return c.inters.PublishTracker
}

func (c *PublishTrackerClient) mutate(ctx context.Context, m *PublishTrackerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PublishTrackerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PublishTrackerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PublishTrackerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PublishTrackerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown PublishTracker mutation op: %q", m.Op())
	}
}

// RecitationClient is a client for the Recitation schema.
type RecitationClient struct {
	config
}

// NewRecitationClient returns a client for the Recitation from the given config.
func NewRecitationClient(c config) *RecitationClient {
	return &RecitationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recitation.Hooks(f(g(h())))`.
func (c *RecitationClient) Use(hooks ...Hook) {
	c.hooks.Recitation = append(c.hooks.Recitation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recitation.Intercept(f(g(h())))`.
func (c *RecitationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Recitation = append(c.inters.Recitation, interceptors...)
}

// Create returns a builder for creating a Recitation entity.
func (c *RecitationClient) Create() *RecitationCreate {
	mutation := newRecitationMutation(c.config, OpCreate)
	return &RecitationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Recitation entities.
func (c *RecitationClient) CreateBulk(builders ...*RecitationCreate) *RecitationCreateBulk {
	return &RecitationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecitationClient) MapCreateBulk(slice any, setFunc func(*RecitationCreate, int)) *RecitationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecitationCreateBulk{err: fmt.Errorf("calling to RecitationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecitationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecitationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Recitation.
func (c *RecitationClient) Update() *RecitationUpdate {
	mutation := newRecitationMutation(c.config, OpUpdate)
	return &RecitationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecitationClient) UpdateOne(_m *Recitation) *RecitationUpdateOne {
	mutation := newRecitationMutation(c.config, OpUpdateOne, withRecitation(_m))
	return &RecitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecitationClient) UpdateOneID(id int) *RecitationUpdateOne {
	mutation := newRecitationMutation(c.config, OpUpdateOne, withRecitationID(id))
	return &RecitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Recitation.
func (c *RecitationClient) Delete() *RecitationDelete {
	mutation := newRecitationMutation(c.config, OpDelete)
	return &RecitationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecitationClient) DeleteOne(_m *Recitation) *RecitationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecitationClient) DeleteOneID(id int) *RecitationDeleteOne {
	builder := c.Delete().Where(recitation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecitationDeleteOne{builder}
}

// Query returns a query builder for Recitation.
func (c *RecitationClient) Query() *RecitationQuery {
	return &RecitationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecitation},
		inters: c.Interceptors(),
	}
}

// Get returns a Recitation entity by its id.
func (c *RecitationClient) Get(ctx context.Context, id int) (*Recitation, error) {
	return c.Query().Where(recitation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecitationClient) GetX(ctx context.Context, id int) *Recitation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPoem queries the poem edge of a Recitation.
func (c *RecitationClient) QueryPoem(_m *Recitation) *PoemQuery {
	query := (&PoemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recitation.Table, recitation.FieldID, id),
			sqlgraph.To(poem.Table, poem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recitation.PoemTable, recitation.PoemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrackers queries the trackers edge of a Recitation.
func (c *RecitationClient) QueryTrackers(_m *Recitation) *PublishTrackerQuery {
	query := (&PublishTrackerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recitation.Table, recitation.FieldID, id),
			sqlgraph.To(publishtracker.Table, publishtracker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recitation.TrackersTable, recitation.TrackersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecitationClient) Hooks() []Hook {
	return c.hooks.Recitation
}

// Interceptors returns the client interceptors.
func (c *RecitationClient) Interceptors() []Interceptor {
	return c.inters.Recitation
}

func (c *RecitationClient) mutate(ctx context.Context, m *RecitationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecitationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecitationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecitationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Recitation mutation op: %q", m.Op())
	}
}

// RecitationProfileClient is a client for the RecitationProfile schema.
type RecitationProfileClient struct {
	config
}

// NewRecitationProfileClient returns a client for the RecitationProfile from the given config.
func NewRecitationProfileClient(c config) *RecitationProfileClient {
	return &RecitationProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recitationprofile.Hooks(f(g(h())))`.
func (c *RecitationProfileClient) Use(hooks ...Hook) {
	c.hooks.RecitationProfile = append(c.hooks.RecitationProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recitationprofile.Intercept(f(g(h())))`.
func (c *RecitationProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecitationProfile = append(c.inters.RecitationProfile, interceptors...)
}

// Create returns a builder for creating a RecitationProfile entity.
func (c *RecitationProfileClient) Create() *RecitationProfileCreate {
	mutation := newRecitationProfileMutation(c.config, OpCreate)
	return &RecitationProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecitationProfile entities.
func (c *RecitationProfileClient) CreateBulk(builders ...*RecitationProfileCreate) *RecitationProfileCreateBulk {
	return &RecitationProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecitationProfileClient) MapCreateBulk(slice any, setFunc func(*RecitationProfileCreate, int)) *RecitationProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecitationProfileCreateBulk{err: fmt.Errorf("calling to RecitationProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecitationProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecitationProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecitationProfile.
func (c *RecitationProfileClient) Update() *RecitationProfileUpdate {
	mutation := newRecitationProfileMutation(c.config, OpUpdate)
	return &RecitationProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecitationProfileClient) UpdateOne(_m *RecitationProfile) *RecitationProfileUpdateOne {
	mutation := newRecitationProfileMutation(c.config, OpUpdateOne, withRecitationProfile(_m))
	return &RecitationProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecitationProfileClient) UpdateOneID(id ulid.ULID) *RecitationProfileUpdateOne {
	mutation := newRecitationProfileMutation(c.config, OpUpdateOne, withRecitationProfileID(id))
	return &RecitationProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecitationProfile.
func (c *RecitationProfileClient) Delete() *RecitationProfileDelete {
	mutation := newRecitationProfileMutation(c.config, OpDelete)
	return &RecitationProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecitationProfileClient) DeleteOne(_m *RecitationProfile) *RecitationProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecitationProfileClient) DeleteOneID(id ulid.ULID) *RecitationProfileDeleteOne {
	builder := c.Delete().Where(recitationprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecitationProfileDeleteOne{builder}
}

// Query returns a query builder for RecitationProfile.
func (c *RecitationProfileClient) Query() *RecitationProfileQuery {
	return &RecitationProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecitationProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a RecitationProfile entity by its id.
func (c *RecitationProfileClient) Get(ctx context.Context, id ulid.ULID) (*RecitationProfile, error) {
	return c.Query().Where(recitationprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecitationProfileClient) GetX(ctx context.Context, id ulid.ULID) *RecitationProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RecitationProfileClient) Hooks() []Hook {
	hooks := c.hooks.RecitationProfile
	return append(hooks[:len(hooks):len(hooks)], recitationprofile.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *RecitationProfileClient) Interceptors() []Interceptor {
	inters := c.inters.RecitationProfile
	return append(inters[:len(inters):len(inters)], recitationprofile.Interceptors[:]...)
}

func (c *RecitationProfileClient) mutate(ctx context.Context, m *RecitationProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecitationProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecitationProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecitationProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecitationProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown RecitationProfile mutation op: %q", m.Op())
	}
}

// UploadSessionClient is a client for the UploadSession schema.
type UploadSessionClient struct {
	config
}

// NewUploadSessionClient returns a client for the UploadSession from the given config.
func NewUploadSessionClient(c config) *UploadSessionClient {
	return &UploadSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadsession.Hooks(f(g(h())))`.
func (c *UploadSessionClient) Use(hooks ...Hook) {
	c.hooks.UploadSession = append(c.hooks.UploadSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadsession.Intercept(f(g(h())))`.
func (c *UploadSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadSession = append(c.inters.UploadSession, interceptors...)
}

// Create returns a builder for creating a UploadSession entity.
func (c *UploadSessionClient) Create() *UploadSessionCreate {
	mutation := newUploadSessionMutation(c.config, OpCreate)
	return &UploadSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadSession entities.
func (c *UploadSessionClient) CreateBulk(builders ...*UploadSessionCreate) *UploadSessionCreateBulk {
	return &UploadSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadSessionClient) MapCreateBulk(slice any, setFunc func(*UploadSessionCreate, int)) *UploadSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadSessionCreateBulk{err: fmt.Errorf("calling to UploadSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadSession.
func (c *UploadSessionClient) Update() *UploadSessionUpdate {
	mutation := newUploadSessionMutation(c.config, OpUpdate)
	return &UploadSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadSessionClient) UpdateOne(_m *UploadSession) *UploadSessionUpdateOne {
	mutation := newUploadSessionMutation(c.config, OpUpdateOne, withUploadSession(_m))
	return &UploadSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadSessionClient) UpdateOneID(id ulid.ULID) *UploadSessionUpdateOne {
	mutation := newUploadSessionMutation(c.config, OpUpdateOne, withUploadSessionID(id))
	return &UploadSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadSession.
func (c *UploadSessionClient) Delete() *UploadSessionDelete {
	mutation := newUploadSessionMutation(c.config, OpDelete)
	return &UploadSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadSessionClient) DeleteOne(_m *UploadSession) *UploadSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadSessionClient) DeleteOneID(id ulid.ULID) *UploadSessionDeleteOne {
	builder := c.Delete().Where(uploadsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadSessionDeleteOne{builder}
}

// Query returns a query builder for UploadSession.
func (c *UploadSessionClient) Query() *UploadSessionQuery {
	return &UploadSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadSession entity by its id.
func (c *UploadSessionClient) Get(ctx context.Context, id ulid.ULID) (*UploadSession, error) {
	return c.Query().Where(uploadsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadSessionClient) GetX(ctx context.Context, id ulid.ULID) *UploadSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiles queries the files edge of a UploadSession.
func (c *UploadSessionClient) QueryFiles(_m *UploadSession) *UploadSessionFileQuery {
	query := (&UploadSessionFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsession.Table, uploadsession.FieldID, id),
			sqlgraph.To(uploadsessionfile.Table, uploadsessionfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadsession.FilesTable, uploadsession.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadSessionClient) Hooks() []Hook {
	return c.hooks.UploadSession
}

// Interceptors returns the client interceptors.
func (c *UploadSessionClient) Interceptors() []Interceptor {
	return c.inters.UploadSession
}

func (c *UploadSessionClient) mutate(ctx context.Context, m *UploadSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown UploadSession mutation op: %q", m.Op())
	}
}

// UploadSessionFileClient is a client for the UploadSessionFile schema.
type UploadSessionFileClient struct {
	config
}

// NewUploadSessionFileClient returns a client for the UploadSessionFile from the given config.
func NewUploadSessionFileClient(c config) *UploadSessionFileClient {
	return &UploadSessionFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadsessionfile.Hooks(f(g(h())))`.
func (c *UploadSessionFileClient) Use(hooks ...Hook) {
	c.hooks.UploadSessionFile = append(c.hooks.UploadSessionFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadsessionfile.Intercept(f(g(h())))`.
func (c *UploadSessionFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadSessionFile = append(c.inters.UploadSessionFile, interceptors...)
}

// Create returns a builder for creating a UploadSessionFile entity.
func (c *UploadSessionFileClient) Create() *UploadSessionFileCreate {
	mutation := newUploadSessionFileMutation(c.config, OpCreate)
	return &UploadSessionFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadSessionFile entities.
func (c *UploadSessionFileClient) CreateBulk(builders ...*UploadSessionFileCreate) *UploadSessionFileCreateBulk {
	return &UploadSessionFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadSessionFileClient) MapCreateBulk(slice any, setFunc func(*UploadSessionFileCreate, int)) *UploadSessionFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadSessionFileCreateBulk{err: fmt.Errorf("calling to UploadSessionFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadSessionFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadSessionFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadSessionFile.
func (c *UploadSessionFileClient) Update() *UploadSessionFileUpdate {
	mutation := newUploadSessionFileMutation(c.config, OpUpdate)
	return &UploadSessionFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadSessionFileClient) UpdateOne(_m *UploadSessionFile) *UploadSessionFileUpdateOne {
	mutation := newUploadSessionFileMutation(c.config, OpUpdateOne, withUploadSessionFile(_m))
	return &UploadSessionFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadSessionFileClient) UpdateOneID(id ulid.ULID) *UploadSessionFileUpdateOne {
	mutation := newUploadSessionFileMutation(c.config, OpUpdateOne, withUploadSessionFileID(id))
	return &UploadSessionFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadSessionFile.
func (c *UploadSessionFileClient) Delete() *UploadSessionFileDelete {
	mutation := newUploadSessionFileMutation(c.config, OpDelete)
	return &UploadSessionFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadSessionFileClient) DeleteOne(_m *UploadSessionFile) *UploadSessionFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadSessionFileClient) DeleteOneID(id ulid.ULID) *UploadSessionFileDeleteOne {
	builder := c.Delete().Where(uploadsessionfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadSessionFileDeleteOne{builder}
}

// Query returns a query builder for UploadSessionFile.
func (c *UploadSessionFileClient) Query() *UploadSessionFileQuery {
	return &UploadSessionFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadSessionFile},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadSessionFile entity by its id.
func (c *UploadSessionFileClient) Get(ctx context.Context, id ulid.ULID) (*UploadSessionFile, error) {
	return c.Query().Where(uploadsessionfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadSessionFileClient) GetX(ctx context.Context, id ulid.ULID) *UploadSessionFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a UploadSessionFile.
func (c *UploadSessionFileClient) QuerySession(_m *UploadSessionFile) *UploadSessionQuery {
	query := (&UploadSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsessionfile.Table, uploadsessionfile.FieldID, id),
			sqlgraph.To(uploadsession.Table, uploadsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, uploadsessionfile.SessionTable, uploadsessionfile.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadSessionFileClient) Hooks() []Hook {
	return c.hooks.UploadSessionFile
}

// Interceptors returns the client interceptors.
func (c *UploadSessionFileClient) Interceptors() []Interceptor {
	return c.inters.UploadSessionFile
}

func (c *UploadSessionFileClient) mutate(ctx context.Context, m *UploadSessionFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadSessionFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadSessionFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadSessionFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadSessionFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown UploadSessionFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Event, Poem, PublishTracker, Recitation, RecitationProfile, UploadSession,
		UploadSessionFile []ent.Hook
	}
	inters struct {
		Event, Poem, PublishTracker, Recitation, RecitationProfile, UploadSession,
		UploadSessionFile []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
