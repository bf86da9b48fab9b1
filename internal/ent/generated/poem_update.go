// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
)

// PoemUpdate is the builder for updating Poem entities.
type PoemUpdate struct {
	config
	hooks    []Hook
	mutation *PoemMutation
}

// Where appends a list predicates to the PoemUpdate builder.
func (_u *PoemUpdate) Where(ps ...predicate.Poem) *PoemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PoemUpdate) SetUpdatedAt(v time.Time) *PoemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PoemUpdate) SetTitle(v string) *PoemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PoemUpdate) SetNillableTitle(v *string) *PoemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFullURL sets the "full_url" field.
func (_u *PoemUpdate) SetFullURL(v string) *PoemUpdate {
	_u.mutation.SetFullURL(v)
	return _u
}

// SetNillableFullURL sets the "full_url" field if the given value is not nil.
func (_u *PoemUpdate) SetNillableFullURL(v *string) *PoemUpdate {
	if v != nil {
		_u.SetFullURL(*v)
	}
	return _u
}

// SetVerses sets the "verses" field.
func (_u *PoemUpdate) SetVerses(v []string) *PoemUpdate {
	_u.mutation.SetVerses(v)
	return _u
}

// AppendVerses appends value to the "verses" field.
func (_u *PoemUpdate) AppendVerses(v []string) *PoemUpdate {
	_u.mutation.AppendVerses(v)
	return _u
}

// ClearVerses clears the value of the "verses" field.
func (_u *PoemUpdate) ClearVerses() *PoemUpdate {
	_u.mutation.ClearVerses()
	return _u
}

// AddRecitationIDs adds the "recitations" edge to the Recitation entity by IDs.
func (_u *PoemUpdate) AddRecitationIDs(ids ...int) *PoemUpdate {
	_u.mutation.AddRecitationIDs(ids...)
	return _u
}

// AddRecitations adds the "recitations" edges to the Recitation entity.
func (_u *PoemUpdate) AddRecitations(v ...*Recitation) *PoemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecitationIDs(ids...)
}

// Mutation returns the PoemMutation object of the builder.
func (_u *PoemUpdate) Mutation() *PoemMutation {
	return _u.mutation
}

// ClearRecitations clears all "recitations" edges to the Recitation entity.
func (_u *PoemUpdate) ClearRecitations() *PoemUpdate {
	_u.mutation.ClearRecitations()
	return _u
}

// RemoveRecitationIDs removes the "recitations" edge to Recitation entities by IDs.
func (_u *PoemUpdate) RemoveRecitationIDs(ids ...int) *PoemUpdate {
	_u.mutation.RemoveRecitationIDs(ids...)
	return _u
}

// RemoveRecitations removes "recitations" edges to Recitation entities.
func (_u *PoemUpdate) RemoveRecitations(v ...*Recitation) *PoemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PoemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PoemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PoemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PoemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PoemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := poem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PoemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(poem.Table, poem.Columns, sqlgraph.NewFieldSpec(poem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(poem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(poem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullURL(); ok {
		_spec.SetField(poem.FieldFullURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verses(); ok {
		_spec.SetField(poem.FieldVerses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, poem.FieldVerses, value)
		})
	}
	if _u.mutation.VersesCleared() {
		_spec.ClearField(poem.FieldVerses, field.TypeJSON)
	}
	if _u.mutation.RecitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecitationsIDs(); len(nodes) > 0 && !_u.mutation.RecitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PoemUpdateOne is the builder for updating a single Poem entity.
type PoemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PoemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PoemUpdateOne) SetUpdatedAt(v time.Time) *PoemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PoemUpdateOne) SetTitle(v string) *PoemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PoemUpdateOne) SetNillableTitle(v *string) *PoemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFullURL sets the "full_url" field.
func (_u *PoemUpdateOne) SetFullURL(v string) *PoemUpdateOne {
	_u.mutation.SetFullURL(v)
	return _u
}

// SetNillableFullURL sets the "full_url" field if the given value is not nil.
func (_u *PoemUpdateOne) SetNillableFullURL(v *string) *PoemUpdateOne {
	if v != nil {
		_u.SetFullURL(*v)
	}
	return _u
}

// SetVerses sets the "verses" field.
func (_u *PoemUpdateOne) SetVerses(v []string) *PoemUpdateOne {
	_u.mutation.SetVerses(v)
	return _u
}

// AppendVerses appends value to the "verses" field.
func (_u *PoemUpdateOne) AppendVerses(v []string) *PoemUpdateOne {
	_u.mutation.AppendVerses(v)
	return _u
}

// ClearVerses clears the value of the "verses" field.
func (_u *PoemUpdateOne) ClearVerses() *PoemUpdateOne {
	_u.mutation.ClearVerses()
	return _u
}

// AddRecitationIDs adds the "recitations" edge to the Recitation entity by IDs.
func (_u *PoemUpdateOne) AddRecitationIDs(ids ...int) *PoemUpdateOne {
	_u.mutation.AddRecitationIDs(ids...)
	return _u
}

// AddRecitations adds the "recitations" edges to the Recitation entity.
func (_u *PoemUpdateOne) AddRecitations(v ...*Recitation) *PoemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecitationIDs(ids...)
}

// Mutation returns the PoemMutation object of the builder.
func (_u *PoemUpdateOne) Mutation() *PoemMutation {
	return _u.mutation
}

// ClearRecitations clears all "recitations" edges to the Recitation entity.
func (_u *PoemUpdateOne) ClearRecitations() *PoemUpdateOne {
	_u.mutation.ClearRecitations()
	return _u
}

// RemoveRecitationIDs removes the "recitations" edge to Recitation entities by IDs.
func (_u *PoemUpdateOne) RemoveRecitationIDs(ids ...int) *PoemUpdateOne {
	_u.mutation.RemoveRecitationIDs(ids...)
	return _u
}

// RemoveRecitations removes "recitations" edges to Recitation entities.
func (_u *PoemUpdateOne) RemoveRecitations(v ...*Recitation) *PoemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecitationIDs(ids...)
}

// Where appends a list predicates to the PoemUpdate builder.
func (_u *PoemUpdateOne) Where(ps ...predicate.Poem) *PoemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PoemUpdateOne) Select(field string, fields ...string) *PoemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Poem entity.
func (_u *PoemUpdateOne) Save(ctx context.Context) (*Poem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PoemUpdateOne) SaveX(ctx context.Context) *Poem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PoemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PoemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PoemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := poem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PoemUpdateOne) sqlSave(ctx context.Context) (_node *Poem, err error) {
	_spec := sqlgraph.NewUpdateSpec(poem.Table, poem.Columns, sqlgraph.NewFieldSpec(poem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Poem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, poem.FieldID)
		for _, f := range fields {
			if !poem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != poem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(poem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(poem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullURL(); ok {
		_spec.SetField(poem.FieldFullURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verses(); ok {
		_spec.SetField(poem.FieldVerses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, poem.FieldVerses, value)
		})
	}
	if _u.mutation.VersesCleared() {
		_spec.ClearField(poem.FieldVerses, field.TypeJSON)
	}
	if _u.mutation.RecitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecitationsIDs(); len(nodes) > 0 && !_u.mutation.RecitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Poem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
