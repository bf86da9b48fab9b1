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
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
)

// PoemCreate is the builder for creating a Poem entity.
type PoemCreate struct {
	config
	mutation *PoemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PoemCreate) SetCreatedAt(v time.Time) *PoemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PoemCreate) SetNillableCreatedAt(v *time.Time) *PoemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PoemCreate) SetUpdatedAt(v time.Time) *PoemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PoemCreate) SetNillableUpdatedAt(v *time.Time) *PoemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *PoemCreate) SetTitle(v string) *PoemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetFullURL sets the "full_url" field.
func (_c *PoemCreate) SetFullURL(v string) *PoemCreate {
	_c.mutation.SetFullURL(v)
	return _c
}

// SetNillableFullURL sets the "full_url" field if the given value is not nil.
func (_c *PoemCreate) SetNillableFullURL(v *string) *PoemCreate {
	if v != nil {
		_c.SetFullURL(*v)
	}
	return _c
}

// SetVerses sets the "verses" field.
func (_c *PoemCreate) SetVerses(v []string) *PoemCreate {
	_c.mutation.SetVerses(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PoemCreate) SetID(v int) *PoemCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRecitationIDs adds the "recitations" edge to the Recitation entity by IDs.
func (_c *PoemCreate) AddRecitationIDs(ids ...int) *PoemCreate {
	_c.mutation.AddRecitationIDs(ids...)
	return _c
}

// AddRecitations adds the "recitations" edges to the Recitation entity.
func (_c *PoemCreate) AddRecitations(v ...*Recitation) *PoemCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecitationIDs(ids...)
}

// Mutation returns the PoemMutation object of the builder.
func (_c *PoemCreate) Mutation() *PoemMutation {
	return _c.mutation
}

// Save creates the Poem in the database.
func (_c *PoemCreate) Save(ctx context.Context) (*Poem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PoemCreate) SaveX(ctx context.Context) *Poem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PoemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PoemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PoemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := poem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := poem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.FullURL(); !ok {
		v := poem.DefaultFullURL
		_c.mutation.SetFullURL(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PoemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Poem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Poem.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`generated: missing required field "Poem.title"`)}
	}
	if _, ok := _c.mutation.FullURL(); !ok {
		return &ValidationError{Name: "full_url", err: errors.New(`generated: missing required field "Poem.full_url"`)}
	}
	return nil
}

func (_c *PoemCreate) sqlSave(ctx context.Context) (*Poem, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PoemCreate) createSpec() (*Poem, *sqlgraph.CreateSpec) {
	var (
		_node = &Poem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(poem.Table, sqlgraph.NewFieldSpec(poem.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(poem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(poem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(poem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.FullURL(); ok {
		_spec.SetField(poem.FieldFullURL, field.TypeString, value)
		_node.FullURL = value
	}
	if value, ok := _c.mutation.Verses(); ok {
		_spec.SetField(poem.FieldVerses, field.TypeJSON, value)
		_node.Verses = value
	}
	if nodes := _c.mutation.RecitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poem.RecitationsTable,
			Columns: []string{poem.RecitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recitation.FieldID, field.TypeInt),
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
//	client.Poem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PoemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PoemCreate) OnConflict(opts ...sql.ConflictOption) *PoemUpsertOne {
	_c.conflict = opts
	return &PoemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Poem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PoemCreate) OnConflictColumns(columns ...string) *PoemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PoemUpsertOne{
		create: _c,
	}
}

type (
	// PoemUpsertOne is the builder for "upsert"-ing
	//  one Poem node.
	PoemUpsertOne struct {
		create *PoemCreate
	}

	// PoemUpsert is the "OnConflict" setter.
	PoemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PoemUpsert) SetUpdatedAt(v time.Time) *PoemUpsert {
	u.Set(poem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PoemUpsert) UpdateUpdatedAt() *PoemUpsert {
	u.SetExcluded(poem.FieldUpdatedAt)
	return u
}

// SetTitle sets the "title" field.
func (u *PoemUpsert) SetTitle(v string) *PoemUpsert {
	u.Set(poem.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PoemUpsert) UpdateTitle() *PoemUpsert {
	u.SetExcluded(poem.FieldTitle)
	return u
}

// SetFullURL sets the "full_url" field.
func (u *PoemUpsert) SetFullURL(v string) *PoemUpsert {
	u.Set(poem.FieldFullURL, v)
	return u
}

// UpdateFullURL sets the "full_url" field to the value that was provided on create.
func (u *PoemUpsert) UpdateFullURL() *PoemUpsert {
	u.SetExcluded(poem.FieldFullURL)
	return u
}

// SetVerses sets the "verses" field.
func (u *PoemUpsert) SetVerses(v []string) *PoemUpsert {
	u.Set(poem.FieldVerses, v)
	return u
}

// UpdateVerses sets the "verses" field to the value that was provided on create.
func (u *PoemUpsert) UpdateVerses() *PoemUpsert {
	u.SetExcluded(poem.FieldVerses)
	return u
}

// ClearVerses clears the value of the "verses" field.
func (u *PoemUpsert) ClearVerses() *PoemUpsert {
	u.SetNull(poem.FieldVerses)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Poem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(poem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PoemUpsertOne) UpdateNewValues() *PoemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(poem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(poem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Poem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PoemUpsertOne) Ignore() *PoemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PoemUpsertOne) DoNothing() *PoemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PoemCreate.OnConflict
// documentation for more info.
func (u *PoemUpsertOne) Update(set func(*PoemUpsert)) *PoemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PoemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PoemUpsertOne) SetUpdatedAt(v time.Time) *PoemUpsertOne {
	return u.Update(func(s *PoemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PoemUpsertOne) UpdateUpdatedAt() *PoemUpsertOne {
	return u.Update(func(s *PoemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTitle sets the "title" field.
func (u *PoemUpsertOne) SetTitle(v string) *PoemUpsertOne {
	return u.Update(func(s *PoemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PoemUpsertOne) UpdateTitle() *PoemUpsertOne {
	return u.Update(func(s *PoemUpsert) {
		s.UpdateTitle()
	})
}

// SetFullURL sets the "full_url" field.
func (u *PoemUpsertOne) SetFullURL(v string) *PoemUpsertOne {
	return u.Update(func(s *PoemUpsert) {
		s.SetFullURL(v)
	})
}

// UpdateFullURL sets the "full_url" field to the value that was provided on create.
func (u *PoemUpsertOne) UpdateFullURL() *PoemUpsertOne {
	return u.Update(func(s *PoemUpsert) {
		s.UpdateFullURL()
	})
}

// SetVerses sets the "verses" field.
func (u *PoemUpsertOne) SetVerses(v []string) *PoemUpsertOne {
	return u.Update(func(s *PoemUpsert) {
		s.SetVerses(v)
	})
}

// UpdateVerses sets the "verses" field to the value that was provided on create.
func (u *PoemUpsertOne) UpdateVerses() *PoemUpsertOne {
	return u.Update(func(s *PoemUpsert) {
		s.UpdateVerses()
	})
}

// ClearVerses clears the value of the "verses" field.
func (u *PoemUpsertOne) ClearVerses() *PoemUpsertOne {
	return u.Update(func(s *PoemUpsert) {
		s.ClearVerses()
	})
}

// Exec executes the query.
func (u *PoemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for PoemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PoemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PoemUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PoemUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PoemCreateBulk is the builder for creating many Poem entities in bulk.
type PoemCreateBulk struct {
	config
	err      error
	builders []*PoemCreate
	conflict []sql.ConflictOption
}

// Save creates the Poem entities in the database.
func (_c *PoemCreateBulk) Save(ctx context.Context) ([]*Poem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Poem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PoemMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
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
func (_c *PoemCreateBulk) SaveX(ctx context.Context) []*Poem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PoemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PoemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Poem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PoemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PoemCreateBulk) OnConflict(opts ...sql.ConflictOption) *PoemUpsertBulk {
	_c.conflict = opts
	return &PoemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Poem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PoemCreateBulk) OnConflictColumns(columns ...string) *PoemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PoemUpsertBulk{
		create: _c,
	}
}

// PoemUpsertBulk is the builder for "upsert"-ing
// a bulk of Poem nodes.
type PoemUpsertBulk struct {
	create *PoemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Poem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(poem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PoemUpsertBulk) UpdateNewValues() *PoemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(poem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(poem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Poem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PoemUpsertBulk) Ignore() *PoemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PoemUpsertBulk) DoNothing() *PoemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PoemCreateBulk.OnConflict
// documentation for more info.
func (u *PoemUpsertBulk) Update(set func(*PoemUpsert)) *PoemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PoemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PoemUpsertBulk) SetUpdatedAt(v time.Time) *PoemUpsertBulk {
	return u.Update(func(s *PoemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PoemUpsertBulk) UpdateUpdatedAt() *PoemUpsertBulk {
	return u.Update(func(s *PoemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTitle sets the "title" field.
func (u *PoemUpsertBulk) SetTitle(v string) *PoemUpsertBulk {
	return u.Update(func(s *PoemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PoemUpsertBulk) UpdateTitle() *PoemUpsertBulk {
	return u.Update(func(s *PoemUpsert) {
		s.UpdateTitle()
	})
}

// SetFullURL sets the "full_url" field.
func (u *PoemUpsertBulk) SetFullURL(v string) *PoemUpsertBulk {
	return u.Update(func(s *PoemUpsert) {
		s.SetFullURL(v)
	})
}

// UpdateFullURL sets the "full_url" field to the value that was provided on create.
func (u *PoemUpsertBulk) UpdateFullURL() *PoemUpsertBulk {
	return u.Update(func(s *PoemUpsert) {
		s.UpdateFullURL()
	})
}

// SetVerses sets the "verses" field.
func (u *PoemUpsertBulk) SetVerses(v []string) *PoemUpsertBulk {
	return u.Update(func(s *PoemUpsert) {
		s.SetVerses(v)
	})
}

// UpdateVerses sets the "verses" field to the value that was provided on create.
func (u *PoemUpsertBulk) UpdateVerses() *PoemUpsertBulk {
	return u.Update(func(s *PoemUpsert) {
		s.UpdateVerses()
	})
}

// ClearVerses clears the value of the "verses" field.
func (u *PoemUpsertBulk) ClearVerses() *PoemUpsertBulk {
	return u.Update(func(s *PoemUpsert) {
		s.ClearVerses()
	})
}

// Exec executes the query.
func (u *PoemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the PoemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for PoemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PoemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
