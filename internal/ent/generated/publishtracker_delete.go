// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
)

// PublishTrackerDelete is the builder for deleting a PublishTracker entity.
type PublishTrackerDelete struct {
	config
	hooks    []Hook
	mutation *PublishTrackerMutation
}

// Where appends a list predicates to the PublishTrackerDelete builder.
func (_d *PublishTrackerDelete) Where(ps ...predicate.PublishTracker) *PublishTrackerDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PublishTrackerDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PublishTrackerDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PublishTrackerDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(publishtracker.Table, sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PublishTrackerDeleteOne is the builder for deleting a single PublishTracker entity.
type PublishTrackerDeleteOne struct {
	_d *PublishTrackerDelete
}

// Where appends a list predicates to the PublishTrackerDelete builder.
func (_d *PublishTrackerDeleteOne) Where(ps ...predicate.PublishTracker) *PublishTrackerDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PublishTrackerDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{publishtracker.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PublishTrackerDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
