// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/tuitionlab/assignflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/broadcastrecord"
	"github.com/tuitionlab/assignflow/ent/clickrecord"
	"github.com/tuitionlab/assignflow/ent/deliveryrecord"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/ent/rating"
	"github.com/tuitionlab/assignflow/ent/rawmessage"
	"github.com/tuitionlab/assignflow/ent/tutorprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Assignment is the client for interacting with the Assignment builders.
	Assignment *AssignmentClient
	// BroadcastRecord is the client for interacting with the BroadcastRecord builders.
	BroadcastRecord *BroadcastRecordClient
	// ClickRecord is the client for interacting with the ClickRecord builders.
	ClickRecord *ClickRecordClient
	// DeliveryRecord is the client for interacting with the DeliveryRecord builders.
	DeliveryRecord *DeliveryRecordClient
	// DuplicateGroup is the client for interacting with the DuplicateGroup builders.
	DuplicateGroup *DuplicateGroupClient
	// ExtractionJob is the client for interacting with the ExtractionJob builders.
	ExtractionJob *ExtractionJobClient
	// Rating is the client for interacting with the Rating builders.
	Rating *RatingClient
	// RawMessage is the client for interacting with the RawMessage builders.
	RawMessage *RawMessageClient
	// TutorProfile is the client for interacting with the TutorProfile builders.
	TutorProfile *TutorProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Assignment = NewAssignmentClient(c.config)
	c.BroadcastRecord = NewBroadcastRecordClient(c.config)
	c.ClickRecord = NewClickRecordClient(c.config)
	c.DeliveryRecord = NewDeliveryRecordClient(c.config)
	c.DuplicateGroup = NewDuplicateGroupClient(c.config)
	c.ExtractionJob = NewExtractionJobClient(c.config)
	c.Rating = NewRatingClient(c.config)
	c.RawMessage = NewRawMessageClient(c.config)
	c.TutorProfile = NewTutorProfileClient(c.config)
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
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Assignment:      NewAssignmentClient(cfg),
		BroadcastRecord: NewBroadcastRecordClient(cfg),
		ClickRecord:     NewClickRecordClient(cfg),
		DeliveryRecord:  NewDeliveryRecordClient(cfg),
		DuplicateGroup:  NewDuplicateGroupClient(cfg),
		ExtractionJob:   NewExtractionJobClient(cfg),
		Rating:          NewRatingClient(cfg),
		RawMessage:      NewRawMessageClient(cfg),
		TutorProfile:    NewTutorProfileClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Assignment:      NewAssignmentClient(cfg),
		BroadcastRecord: NewBroadcastRecordClient(cfg),
		ClickRecord:     NewClickRecordClient(cfg),
		DeliveryRecord:  NewDeliveryRecordClient(cfg),
		DuplicateGroup:  NewDuplicateGroupClient(cfg),
		ExtractionJob:   NewExtractionJobClient(cfg),
		Rating:          NewRatingClient(cfg),
		RawMessage:      NewRawMessageClient(cfg),
		TutorProfile:    NewTutorProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Assignment.
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
		c.Assignment, c.BroadcastRecord, c.ClickRecord, c.DeliveryRecord,
		c.DuplicateGroup, c.ExtractionJob, c.Rating, c.RawMessage, c.TutorProfile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Assignment, c.BroadcastRecord, c.ClickRecord, c.DeliveryRecord,
		c.DuplicateGroup, c.ExtractionJob, c.Rating, c.RawMessage, c.TutorProfile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssignmentMutation:
		return c.Assignment.mutate(ctx, m)
	case *BroadcastRecordMutation:
		return c.BroadcastRecord.mutate(ctx, m)
	case *ClickRecordMutation:
		return c.ClickRecord.mutate(ctx, m)
	case *DeliveryRecordMutation:
		return c.DeliveryRecord.mutate(ctx, m)
	case *DuplicateGroupMutation:
		return c.DuplicateGroup.mutate(ctx, m)
	case *ExtractionJobMutation:
		return c.ExtractionJob.mutate(ctx, m)
	case *RatingMutation:
		return c.Rating.mutate(ctx, m)
	case *RawMessageMutation:
		return c.RawMessage.mutate(ctx, m)
	case *TutorProfileMutation:
		return c.TutorProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssignmentClient is a client for the Assignment schema.
type AssignmentClient struct {
	config
}

// NewAssignmentClient returns a client for the Assignment from the given config.
func NewAssignmentClient(c config) *AssignmentClient {
	return &AssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assignment.Hooks(f(g(h())))`.
func (c *AssignmentClient) Use(hooks ...Hook) {
	c.hooks.Assignment = append(c.hooks.Assignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assignment.Intercept(f(g(h())))`.
func (c *AssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Assignment = append(c.inters.Assignment, interceptors...)
}

// Create returns a builder for creating a Assignment entity.
func (c *AssignmentClient) Create() *AssignmentCreate {
	mutation := newAssignmentMutation(c.config, OpCreate)
	return &AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Assignment entities.
func (c *AssignmentClient) CreateBulk(builders ...*AssignmentCreate) *AssignmentCreateBulk {
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssignmentClient) MapCreateBulk(slice any, setFunc func(*AssignmentCreate, int)) *AssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssignmentCreateBulk{err: fmt.Errorf("calling to AssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Assignment.
func (c *AssignmentClient) Update() *AssignmentUpdate {
	mutation := newAssignmentMutation(c.config, OpUpdate)
	return &AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssignmentClient) UpdateOne(_m *Assignment) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignment(_m))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssignmentClient) UpdateOneID(id string) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignmentID(id))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Assignment.
func (c *AssignmentClient) Delete() *AssignmentDelete {
	mutation := newAssignmentMutation(c.config, OpDelete)
	return &AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssignmentClient) DeleteOne(_m *Assignment) *AssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssignmentClient) DeleteOneID(id string) *AssignmentDeleteOne {
	builder := c.Delete().Where(assignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssignmentDeleteOne{builder}
}

// Query returns a query builder for Assignment.
func (c *AssignmentClient) Query() *AssignmentQuery {
	return &AssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a Assignment entity by its id.
func (c *AssignmentClient) Get(ctx context.Context, id string) (*Assignment, error) {
	return c.Query().Where(assignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssignmentClient) GetX(ctx context.Context, id string) *Assignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a Assignment.
func (c *AssignmentClient) QueryGroup(_m *Assignment) *DuplicateGroupQuery {
	query := (&DuplicateGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assignment.Table, assignment.FieldID, id),
			sqlgraph.To(duplicategroup.Table, duplicategroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assignment.GroupTable, assignment.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssignmentClient) Hooks() []Hook {
	return c.hooks.Assignment
}

// Interceptors returns the client interceptors.
func (c *AssignmentClient) Interceptors() []Interceptor {
	return c.inters.Assignment
}

func (c *AssignmentClient) mutate(ctx context.Context, m *AssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Assignment mutation op: %q", m.Op())
	}
}

// BroadcastRecordClient is a client for the BroadcastRecord schema.
type BroadcastRecordClient struct {
	config
}

// NewBroadcastRecordClient returns a client for the BroadcastRecord from the given config.
func NewBroadcastRecordClient(c config) *BroadcastRecordClient {
	return &BroadcastRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `broadcastrecord.Hooks(f(g(h())))`.
func (c *BroadcastRecordClient) Use(hooks ...Hook) {
	c.hooks.BroadcastRecord = append(c.hooks.BroadcastRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `broadcastrecord.Intercept(f(g(h())))`.
func (c *BroadcastRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.BroadcastRecord = append(c.inters.BroadcastRecord, interceptors...)
}

// Create returns a builder for creating a BroadcastRecord entity.
func (c *BroadcastRecordClient) Create() *BroadcastRecordCreate {
	mutation := newBroadcastRecordMutation(c.config, OpCreate)
	return &BroadcastRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BroadcastRecord entities.
func (c *BroadcastRecordClient) CreateBulk(builders ...*BroadcastRecordCreate) *BroadcastRecordCreateBulk {
	return &BroadcastRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BroadcastRecordClient) MapCreateBulk(slice any, setFunc func(*BroadcastRecordCreate, int)) *BroadcastRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BroadcastRecordCreateBulk{err: fmt.Errorf("calling to BroadcastRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BroadcastRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BroadcastRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BroadcastRecord.
func (c *BroadcastRecordClient) Update() *BroadcastRecordUpdate {
	mutation := newBroadcastRecordMutation(c.config, OpUpdate)
	return &BroadcastRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BroadcastRecordClient) UpdateOne(_m *BroadcastRecord) *BroadcastRecordUpdateOne {
	mutation := newBroadcastRecordMutation(c.config, OpUpdateOne, withBroadcastRecord(_m))
	return &BroadcastRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BroadcastRecordClient) UpdateOneID(id string) *BroadcastRecordUpdateOne {
	mutation := newBroadcastRecordMutation(c.config, OpUpdateOne, withBroadcastRecordID(id))
	return &BroadcastRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BroadcastRecord.
func (c *BroadcastRecordClient) Delete() *BroadcastRecordDelete {
	mutation := newBroadcastRecordMutation(c.config, OpDelete)
	return &BroadcastRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BroadcastRecordClient) DeleteOne(_m *BroadcastRecord) *BroadcastRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BroadcastRecordClient) DeleteOneID(id string) *BroadcastRecordDeleteOne {
	builder := c.Delete().Where(broadcastrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BroadcastRecordDeleteOne{builder}
}

// Query returns a query builder for BroadcastRecord.
func (c *BroadcastRecordClient) Query() *BroadcastRecordQuery {
	return &BroadcastRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBroadcastRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a BroadcastRecord entity by its id.
func (c *BroadcastRecordClient) Get(ctx context.Context, id string) (*BroadcastRecord, error) {
	return c.Query().Where(broadcastrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BroadcastRecordClient) GetX(ctx context.Context, id string) *BroadcastRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BroadcastRecordClient) Hooks() []Hook {
	return c.hooks.BroadcastRecord
}

// Interceptors returns the client interceptors.
func (c *BroadcastRecordClient) Interceptors() []Interceptor {
	return c.inters.BroadcastRecord
}

func (c *BroadcastRecordClient) mutate(ctx context.Context, m *BroadcastRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BroadcastRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BroadcastRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BroadcastRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BroadcastRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BroadcastRecord mutation op: %q", m.Op())
	}
}

// ClickRecordClient is a client for the ClickRecord schema.
type ClickRecordClient struct {
	config
}

// NewClickRecordClient returns a client for the ClickRecord from the given config.
func NewClickRecordClient(c config) *ClickRecordClient {
	return &ClickRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clickrecord.Hooks(f(g(h())))`.
func (c *ClickRecordClient) Use(hooks ...Hook) {
	c.hooks.ClickRecord = append(c.hooks.ClickRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clickrecord.Intercept(f(g(h())))`.
func (c *ClickRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClickRecord = append(c.inters.ClickRecord, interceptors...)
}

// Create returns a builder for creating a ClickRecord entity.
func (c *ClickRecordClient) Create() *ClickRecordCreate {
	mutation := newClickRecordMutation(c.config, OpCreate)
	return &ClickRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClickRecord entities.
func (c *ClickRecordClient) CreateBulk(builders ...*ClickRecordCreate) *ClickRecordCreateBulk {
	return &ClickRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClickRecordClient) MapCreateBulk(slice any, setFunc func(*ClickRecordCreate, int)) *ClickRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClickRecordCreateBulk{err: fmt.Errorf("calling to ClickRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClickRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClickRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClickRecord.
func (c *ClickRecordClient) Update() *ClickRecordUpdate {
	mutation := newClickRecordMutation(c.config, OpUpdate)
	return &ClickRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClickRecordClient) UpdateOne(_m *ClickRecord) *ClickRecordUpdateOne {
	mutation := newClickRecordMutation(c.config, OpUpdateOne, withClickRecord(_m))
	return &ClickRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClickRecordClient) UpdateOneID(id string) *ClickRecordUpdateOne {
	mutation := newClickRecordMutation(c.config, OpUpdateOne, withClickRecordID(id))
	return &ClickRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClickRecord.
func (c *ClickRecordClient) Delete() *ClickRecordDelete {
	mutation := newClickRecordMutation(c.config, OpDelete)
	return &ClickRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClickRecordClient) DeleteOne(_m *ClickRecord) *ClickRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClickRecordClient) DeleteOneID(id string) *ClickRecordDeleteOne {
	builder := c.Delete().Where(clickrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClickRecordDeleteOne{builder}
}

// Query returns a query builder for ClickRecord.
func (c *ClickRecordClient) Query() *ClickRecordQuery {
	return &ClickRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClickRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ClickRecord entity by its id.
func (c *ClickRecordClient) Get(ctx context.Context, id string) (*ClickRecord, error) {
	return c.Query().Where(clickrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClickRecordClient) GetX(ctx context.Context, id string) *ClickRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClickRecordClient) Hooks() []Hook {
	return c.hooks.ClickRecord
}

// Interceptors returns the client interceptors.
func (c *ClickRecordClient) Interceptors() []Interceptor {
	return c.inters.ClickRecord
}

func (c *ClickRecordClient) mutate(ctx context.Context, m *ClickRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClickRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClickRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClickRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClickRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClickRecord mutation op: %q", m.Op())
	}
}

// DeliveryRecordClient is a client for the DeliveryRecord schema.
type DeliveryRecordClient struct {
	config
}

// NewDeliveryRecordClient returns a client for the DeliveryRecord from the given config.
func NewDeliveryRecordClient(c config) *DeliveryRecordClient {
	return &DeliveryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deliveryrecord.Hooks(f(g(h())))`.
func (c *DeliveryRecordClient) Use(hooks ...Hook) {
	c.hooks.DeliveryRecord = append(c.hooks.DeliveryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deliveryrecord.Intercept(f(g(h())))`.
func (c *DeliveryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeliveryRecord = append(c.inters.DeliveryRecord, interceptors...)
}

// Create returns a builder for creating a DeliveryRecord entity.
func (c *DeliveryRecordClient) Create() *DeliveryRecordCreate {
	mutation := newDeliveryRecordMutation(c.config, OpCreate)
	return &DeliveryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeliveryRecord entities.
func (c *DeliveryRecordClient) CreateBulk(builders ...*DeliveryRecordCreate) *DeliveryRecordCreateBulk {
	return &DeliveryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeliveryRecordClient) MapCreateBulk(slice any, setFunc func(*DeliveryRecordCreate, int)) *DeliveryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeliveryRecordCreateBulk{err: fmt.Errorf("calling to DeliveryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeliveryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeliveryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeliveryRecord.
func (c *DeliveryRecordClient) Update() *DeliveryRecordUpdate {
	mutation := newDeliveryRecordMutation(c.config, OpUpdate)
	return &DeliveryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeliveryRecordClient) UpdateOne(_m *DeliveryRecord) *DeliveryRecordUpdateOne {
	mutation := newDeliveryRecordMutation(c.config, OpUpdateOne, withDeliveryRecord(_m))
	return &DeliveryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeliveryRecordClient) UpdateOneID(id string) *DeliveryRecordUpdateOne {
	mutation := newDeliveryRecordMutation(c.config, OpUpdateOne, withDeliveryRecordID(id))
	return &DeliveryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeliveryRecord.
func (c *DeliveryRecordClient) Delete() *DeliveryRecordDelete {
	mutation := newDeliveryRecordMutation(c.config, OpDelete)
	return &DeliveryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeliveryRecordClient) DeleteOne(_m *DeliveryRecord) *DeliveryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeliveryRecordClient) DeleteOneID(id string) *DeliveryRecordDeleteOne {
	builder := c.Delete().Where(deliveryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeliveryRecordDeleteOne{builder}
}

// Query returns a query builder for DeliveryRecord.
func (c *DeliveryRecordClient) Query() *DeliveryRecordQuery {
	return &DeliveryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeliveryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a DeliveryRecord entity by its id.
func (c *DeliveryRecordClient) Get(ctx context.Context, id string) (*DeliveryRecord, error) {
	return c.Query().Where(deliveryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeliveryRecordClient) GetX(ctx context.Context, id string) *DeliveryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeliveryRecordClient) Hooks() []Hook {
	return c.hooks.DeliveryRecord
}

// Interceptors returns the client interceptors.
func (c *DeliveryRecordClient) Interceptors() []Interceptor {
	return c.inters.DeliveryRecord
}

func (c *DeliveryRecordClient) mutate(ctx context.Context, m *DeliveryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeliveryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeliveryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeliveryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeliveryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeliveryRecord mutation op: %q", m.Op())
	}
}

// DuplicateGroupClient is a client for the DuplicateGroup schema.
type DuplicateGroupClient struct {
	config
}

// NewDuplicateGroupClient returns a client for the DuplicateGroup from the given config.
func NewDuplicateGroupClient(c config) *DuplicateGroupClient {
	return &DuplicateGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `duplicategroup.Hooks(f(g(h())))`.
func (c *DuplicateGroupClient) Use(hooks ...Hook) {
	c.hooks.DuplicateGroup = append(c.hooks.DuplicateGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `duplicategroup.Intercept(f(g(h())))`.
func (c *DuplicateGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.DuplicateGroup = append(c.inters.DuplicateGroup, interceptors...)
}

// Create returns a builder for creating a DuplicateGroup entity.
func (c *DuplicateGroupClient) Create() *DuplicateGroupCreate {
	mutation := newDuplicateGroupMutation(c.config, OpCreate)
	return &DuplicateGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DuplicateGroup entities.
func (c *DuplicateGroupClient) CreateBulk(builders ...*DuplicateGroupCreate) *DuplicateGroupCreateBulk {
	return &DuplicateGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DuplicateGroupClient) MapCreateBulk(slice any, setFunc func(*DuplicateGroupCreate, int)) *DuplicateGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DuplicateGroupCreateBulk{err: fmt.Errorf("calling to DuplicateGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DuplicateGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DuplicateGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DuplicateGroup.
func (c *DuplicateGroupClient) Update() *DuplicateGroupUpdate {
	mutation := newDuplicateGroupMutation(c.config, OpUpdate)
	return &DuplicateGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DuplicateGroupClient) UpdateOne(_m *DuplicateGroup) *DuplicateGroupUpdateOne {
	mutation := newDuplicateGroupMutation(c.config, OpUpdateOne, withDuplicateGroup(_m))
	return &DuplicateGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DuplicateGroupClient) UpdateOneID(id string) *DuplicateGroupUpdateOne {
	mutation := newDuplicateGroupMutation(c.config, OpUpdateOne, withDuplicateGroupID(id))
	return &DuplicateGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DuplicateGroup.
func (c *DuplicateGroupClient) Delete() *DuplicateGroupDelete {
	mutation := newDuplicateGroupMutation(c.config, OpDelete)
	return &DuplicateGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DuplicateGroupClient) DeleteOne(_m *DuplicateGroup) *DuplicateGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DuplicateGroupClient) DeleteOneID(id string) *DuplicateGroupDeleteOne {
	builder := c.Delete().Where(duplicategroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DuplicateGroupDeleteOne{builder}
}

// Query returns a query builder for DuplicateGroup.
func (c *DuplicateGroupClient) Query() *DuplicateGroupQuery {
	return &DuplicateGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDuplicateGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a DuplicateGroup entity by its id.
func (c *DuplicateGroupClient) Get(ctx context.Context, id string) (*DuplicateGroup, error) {
	return c.Query().Where(duplicategroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DuplicateGroupClient) GetX(ctx context.Context, id string) *DuplicateGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembers queries the members edge of a DuplicateGroup.
func (c *DuplicateGroupClient) QueryMembers(_m *DuplicateGroup) *AssignmentQuery {
	query := (&AssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(duplicategroup.Table, duplicategroup.FieldID, id),
			sqlgraph.To(assignment.Table, assignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, duplicategroup.MembersTable, duplicategroup.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DuplicateGroupClient) Hooks() []Hook {
	return c.hooks.DuplicateGroup
}

// Interceptors returns the client interceptors.
func (c *DuplicateGroupClient) Interceptors() []Interceptor {
	return c.inters.DuplicateGroup
}

func (c *DuplicateGroupClient) mutate(ctx context.Context, m *DuplicateGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DuplicateGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DuplicateGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DuplicateGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DuplicateGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DuplicateGroup mutation op: %q", m.Op())
	}
}

// ExtractionJobClient is a client for the ExtractionJob schema.
type ExtractionJobClient struct {
	config
}

// NewExtractionJobClient returns a client for the ExtractionJob from the given config.
func NewExtractionJobClient(c config) *ExtractionJobClient {
	return &ExtractionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionjob.Hooks(f(g(h())))`.
func (c *ExtractionJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractionJob = append(c.hooks.ExtractionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionjob.Intercept(f(g(h())))`.
func (c *ExtractionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionJob = append(c.inters.ExtractionJob, interceptors...)
}

// Create returns a builder for creating a ExtractionJob entity.
func (c *ExtractionJobClient) Create() *ExtractionJobCreate {
	mutation := newExtractionJobMutation(c.config, OpCreate)
	return &ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionJob entities.
func (c *ExtractionJobClient) CreateBulk(builders ...*ExtractionJobCreate) *ExtractionJobCreateBulk {
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionJobClient) MapCreateBulk(slice any, setFunc func(*ExtractionJobCreate, int)) *ExtractionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionJobCreateBulk{err: fmt.Errorf("calling to ExtractionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionJob.
func (c *ExtractionJobClient) Update() *ExtractionJobUpdate {
	mutation := newExtractionJobMutation(c.config, OpUpdate)
	return &ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionJobClient) UpdateOne(_m *ExtractionJob) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJob(_m))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionJobClient) UpdateOneID(id string) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJobID(id))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionJob.
func (c *ExtractionJobClient) Delete() *ExtractionJobDelete {
	mutation := newExtractionJobMutation(c.config, OpDelete)
	return &ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionJobClient) DeleteOne(_m *ExtractionJob) *ExtractionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionJobClient) DeleteOneID(id string) *ExtractionJobDeleteOne {
	builder := c.Delete().Where(extractionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionJobDeleteOne{builder}
}

// Query returns a query builder for ExtractionJob.
func (c *ExtractionJobClient) Query() *ExtractionJobQuery {
	return &ExtractionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionJob entity by its id.
func (c *ExtractionJobClient) Get(ctx context.Context, id string) (*ExtractionJob, error) {
	return c.Query().Where(extractionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionJobClient) GetX(ctx context.Context, id string) *ExtractionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRaw queries the raw edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryRaw(_m *ExtractionJob) *RawMessageQuery {
	query := (&RawMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(rawmessage.Table, rawmessage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionjob.RawTable, extractionjob.RawColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionJobClient) Hooks() []Hook {
	return c.hooks.ExtractionJob
}

// Interceptors returns the client interceptors.
func (c *ExtractionJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractionJob
}

func (c *ExtractionJobClient) mutate(ctx context.Context, m *ExtractionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionJob mutation op: %q", m.Op())
	}
}

// RatingClient is a client for the Rating schema.
type RatingClient struct {
	config
}

// NewRatingClient returns a client for the Rating from the given config.
func NewRatingClient(c config) *RatingClient {
	return &RatingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rating.Hooks(f(g(h())))`.
func (c *RatingClient) Use(hooks ...Hook) {
	c.hooks.Rating = append(c.hooks.Rating, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rating.Intercept(f(g(h())))`.
func (c *RatingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Rating = append(c.inters.Rating, interceptors...)
}

// Create returns a builder for creating a Rating entity.
func (c *RatingClient) Create() *RatingCreate {
	mutation := newRatingMutation(c.config, OpCreate)
	return &RatingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Rating entities.
func (c *RatingClient) CreateBulk(builders ...*RatingCreate) *RatingCreateBulk {
	return &RatingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RatingClient) MapCreateBulk(slice any, setFunc func(*RatingCreate, int)) *RatingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RatingCreateBulk{err: fmt.Errorf("calling to RatingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RatingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RatingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Rating.
func (c *RatingClient) Update() *RatingUpdate {
	mutation := newRatingMutation(c.config, OpUpdate)
	return &RatingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RatingClient) UpdateOne(_m *Rating) *RatingUpdateOne {
	mutation := newRatingMutation(c.config, OpUpdateOne, withRating(_m))
	return &RatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RatingClient) UpdateOneID(id string) *RatingUpdateOne {
	mutation := newRatingMutation(c.config, OpUpdateOne, withRatingID(id))
	return &RatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Rating.
func (c *RatingClient) Delete() *RatingDelete {
	mutation := newRatingMutation(c.config, OpDelete)
	return &RatingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RatingClient) DeleteOne(_m *Rating) *RatingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RatingClient) DeleteOneID(id string) *RatingDeleteOne {
	builder := c.Delete().Where(rating.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RatingDeleteOne{builder}
}

// Query returns a query builder for Rating.
func (c *RatingClient) Query() *RatingQuery {
	return &RatingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRating},
		inters: c.Interceptors(),
	}
}

// Get returns a Rating entity by its id.
func (c *RatingClient) Get(ctx context.Context, id string) (*Rating, error) {
	return c.Query().Where(rating.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RatingClient) GetX(ctx context.Context, id string) *Rating {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RatingClient) Hooks() []Hook {
	return c.hooks.Rating
}

// Interceptors returns the client interceptors.
func (c *RatingClient) Interceptors() []Interceptor {
	return c.inters.Rating
}

func (c *RatingClient) mutate(ctx context.Context, m *RatingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RatingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RatingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RatingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Rating mutation op: %q", m.Op())
	}
}

// RawMessageClient is a client for the RawMessage schema.
type RawMessageClient struct {
	config
}

// NewRawMessageClient returns a client for the RawMessage from the given config.
func NewRawMessageClient(c config) *RawMessageClient {
	return &RawMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rawmessage.Hooks(f(g(h())))`.
func (c *RawMessageClient) Use(hooks ...Hook) {
	c.hooks.RawMessage = append(c.hooks.RawMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rawmessage.Intercept(f(g(h())))`.
func (c *RawMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.RawMessage = append(c.inters.RawMessage, interceptors...)
}

// Create returns a builder for creating a RawMessage entity.
func (c *RawMessageClient) Create() *RawMessageCreate {
	mutation := newRawMessageMutation(c.config, OpCreate)
	return &RawMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RawMessage entities.
func (c *RawMessageClient) CreateBulk(builders ...*RawMessageCreate) *RawMessageCreateBulk {
	return &RawMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RawMessageClient) MapCreateBulk(slice any, setFunc func(*RawMessageCreate, int)) *RawMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RawMessageCreateBulk{err: fmt.Errorf("calling to RawMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RawMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RawMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RawMessage.
func (c *RawMessageClient) Update() *RawMessageUpdate {
	mutation := newRawMessageMutation(c.config, OpUpdate)
	return &RawMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RawMessageClient) UpdateOne(_m *RawMessage) *RawMessageUpdateOne {
	mutation := newRawMessageMutation(c.config, OpUpdateOne, withRawMessage(_m))
	return &RawMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RawMessageClient) UpdateOneID(id string) *RawMessageUpdateOne {
	mutation := newRawMessageMutation(c.config, OpUpdateOne, withRawMessageID(id))
	return &RawMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RawMessage.
func (c *RawMessageClient) Delete() *RawMessageDelete {
	mutation := newRawMessageMutation(c.config, OpDelete)
	return &RawMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RawMessageClient) DeleteOne(_m *RawMessage) *RawMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RawMessageClient) DeleteOneID(id string) *RawMessageDeleteOne {
	builder := c.Delete().Where(rawmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RawMessageDeleteOne{builder}
}

// Query returns a query builder for RawMessage.
func (c *RawMessageClient) Query() *RawMessageQuery {
	return &RawMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRawMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a RawMessage entity by its id.
func (c *RawMessageClient) Get(ctx context.Context, id string) (*RawMessage, error) {
	return c.Query().Where(rawmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RawMessageClient) GetX(ctx context.Context, id string) *RawMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a RawMessage.
func (c *RawMessageClient) QueryJobs(_m *RawMessage) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawmessage.JobsTable, rawmessage.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RawMessageClient) Hooks() []Hook {
	return c.hooks.RawMessage
}

// Interceptors returns the client interceptors.
func (c *RawMessageClient) Interceptors() []Interceptor {
	return c.inters.RawMessage
}

func (c *RawMessageClient) mutate(ctx context.Context, m *RawMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RawMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RawMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RawMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RawMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RawMessage mutation op: %q", m.Op())
	}
}

// TutorProfileClient is a client for the TutorProfile schema.
type TutorProfileClient struct {
	config
}

// NewTutorProfileClient returns a client for the TutorProfile from the given config.
func NewTutorProfileClient(c config) *TutorProfileClient {
	return &TutorProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tutorprofile.Hooks(f(g(h())))`.
func (c *TutorProfileClient) Use(hooks ...Hook) {
	c.hooks.TutorProfile = append(c.hooks.TutorProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tutorprofile.Intercept(f(g(h())))`.
func (c *TutorProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.TutorProfile = append(c.inters.TutorProfile, interceptors...)
}

// Create returns a builder for creating a TutorProfile entity.
func (c *TutorProfileClient) Create() *TutorProfileCreate {
	mutation := newTutorProfileMutation(c.config, OpCreate)
	return &TutorProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TutorProfile entities.
func (c *TutorProfileClient) CreateBulk(builders ...*TutorProfileCreate) *TutorProfileCreateBulk {
	return &TutorProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TutorProfileClient) MapCreateBulk(slice any, setFunc func(*TutorProfileCreate, int)) *TutorProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TutorProfileCreateBulk{err: fmt.Errorf("calling to TutorProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TutorProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TutorProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TutorProfile.
func (c *TutorProfileClient) Update() *TutorProfileUpdate {
	mutation := newTutorProfileMutation(c.config, OpUpdate)
	return &TutorProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TutorProfileClient) UpdateOne(_m *TutorProfile) *TutorProfileUpdateOne {
	mutation := newTutorProfileMutation(c.config, OpUpdateOne, withTutorProfile(_m))
	return &TutorProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TutorProfileClient) UpdateOneID(id string) *TutorProfileUpdateOne {
	mutation := newTutorProfileMutation(c.config, OpUpdateOne, withTutorProfileID(id))
	return &TutorProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TutorProfile.
func (c *TutorProfileClient) Delete() *TutorProfileDelete {
	mutation := newTutorProfileMutation(c.config, OpDelete)
	return &TutorProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TutorProfileClient) DeleteOne(_m *TutorProfile) *TutorProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TutorProfileClient) DeleteOneID(id string) *TutorProfileDeleteOne {
	builder := c.Delete().Where(tutorprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TutorProfileDeleteOne{builder}
}

// Query returns a query builder for TutorProfile.
func (c *TutorProfileClient) Query() *TutorProfileQuery {
	return &TutorProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTutorProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a TutorProfile entity by its id.
func (c *TutorProfileClient) Get(ctx context.Context, id string) (*TutorProfile, error) {
	return c.Query().Where(tutorprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TutorProfileClient) GetX(ctx context.Context, id string) *TutorProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TutorProfileClient) Hooks() []Hook {
	return c.hooks.TutorProfile
}

// Interceptors returns the client interceptors.
func (c *TutorProfileClient) Interceptors() []Interceptor {
	return c.inters.TutorProfile
}

func (c *TutorProfileClient) mutate(ctx context.Context, m *TutorProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TutorProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TutorProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TutorProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TutorProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TutorProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Assignment, BroadcastRecord, ClickRecord, DeliveryRecord, DuplicateGroup,
		ExtractionJob, Rating, RawMessage, TutorProfile []ent.Hook
	}
	inters struct {
		Assignment, BroadcastRecord, ClickRecord, DeliveryRecord, DuplicateGroup,
		ExtractionJob, Rating, RawMessage, TutorProfile []ent.Interceptor
	}
)
