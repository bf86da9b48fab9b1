// Code generated by ent, DO NOT EDIT.

package intercept

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/event"
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/ent/generated/recitationprofile"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsessionfile"
)

// The Query interface represents an operation that queries a graph.
// By using this interface, users can write generic code that manipulates
// query builders of different types.
type Query interface {
	// Type returns the string representation of the query type.
	Type() string
	// Limit the number of records to be returned by this query.
	Limit(int)
	// Offset to start from.
	Offset(int)
	// Unique configures the query builder to filter duplicate records.
	Unique(bool)
	// Order specifies how the records should be ordered.
	Order(...func(*sql.Selector))
	// WhereP appends storage-level predicates to the query builder. Using this method, users
	// can use type-assertion to append predicates that do not depend on any generated package.
	WhereP(...func(*sql.Selector))
}

// The Func type is an adapter that allows ordinary functions to be used as interceptors.
// Unlike traversal functions, interceptors are skipped during graph traversals. Note that the
// implementation of Func is different from the one defined in entgo.io/ent.InterceptFunc.
type Func func(context.Context, Query) error

// Intercept calls f(ctx, q) and then applied the next Querier.
func (f Func) Intercept(next generated.Querier) generated.Querier {
	return generated.QuerierFunc(func(ctx context.Context, q generated.Query) (generated.Value, error) {
		query, err := NewQuery(q)
		if err != nil {
			return nil, err
		}
		if err := f(ctx, query); err != nil {
			return nil, err
		}
		return next.Query(ctx, q)
	})
}

// The TraverseFunc type is an adapter to allow the use of ordinary function as Traverser.
// If f is a function with the appropriate signature, TraverseFunc(f) is a Traverser that calls f.
type TraverseFunc func(context.Context, Query) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseFunc) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseFunc) Traverse(ctx context.Context, q generated.Query) error {
	query, err := NewQuery(q)
	if err != nil {
		return err
	}
	return f(ctx, query)
}

// The EventFunc type is an adapter to allow the use of ordinary function as a Querier.
type EventFunc func(context.Context, *generated.EventQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f EventFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.EventQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.EventQuery", q)
}

// The TraverseEvent type is an adapter to allow the use of ordinary function as Traverser.
type TraverseEvent func(context.Context, *generated.EventQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseEvent) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseEvent) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.EventQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.EventQuery", q)
}

// The PoemFunc type is an adapter to allow the use of ordinary function as a Querier.
type PoemFunc func(context.Context, *generated.PoemQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f PoemFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.PoemQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.PoemQuery", q)
}

// The TraversePoem type is an adapter to allow the use of ordinary function as Traverser.
type TraversePoem func(context.Context, *generated.PoemQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraversePoem) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraversePoem) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.PoemQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.PoemQuery", q)
}

// The PublishTrackerFunc type is an adapter to allow the use of ordinary function as a Querier.
type PublishTrackerFunc func(context.Context, *generated.PublishTrackerQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f PublishTrackerFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.PublishTrackerQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.PublishTrackerQuery", q)
}

// The TraversePublishTracker type is an adapter to allow the use of ordinary function as Traverser.
type TraversePublishTracker func(context.Context, *generated.PublishTrackerQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraversePublishTracker) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraversePublishTracker) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.PublishTrackerQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.PublishTrackerQuery", q)
}

// The RecitationFunc type is an adapter to allow the use of ordinary function as a Querier.
type RecitationFunc func(context.Context, *generated.RecitationQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f RecitationFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.RecitationQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.RecitationQuery", q)
}

// The TraverseRecitation type is an adapter to allow the use of ordinary function as Traverser.
type TraverseRecitation func(context.Context, *generated.RecitationQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseRecitation) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseRecitation) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.RecitationQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.RecitationQuery", q)
}

// The RecitationProfileFunc type is an adapter to allow the use of ordinary function as a Querier.
type RecitationProfileFunc func(context.Context, *generated.RecitationProfileQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f RecitationProfileFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.RecitationProfileQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.RecitationProfileQuery", q)
}

// The TraverseRecitationProfile type is an adapter to allow the use of ordinary function as Traverser.
type TraverseRecitationProfile func(context.Context, *generated.RecitationProfileQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseRecitationProfile) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseRecitationProfile) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.RecitationProfileQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.RecitationProfileQuery", q)
}

// The UploadSessionFunc type is an adapter to allow the use of ordinary function as a Querier.
type UploadSessionFunc func(context.Context, *generated.UploadSessionQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f UploadSessionFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.UploadSessionQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.UploadSessionQuery", q)
}

// The TraverseUploadSession type is an adapter to allow the use of ordinary function as Traverser.
type TraverseUploadSession func(context.Context, *generated.UploadSessionQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseUploadSession) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseUploadSession) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.UploadSessionQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.UploadSessionQuery", q)
}

// The UploadSessionFileFunc type is an adapter to allow the use of ordinary function as a Querier.
type UploadSessionFileFunc func(context.Context, *generated.UploadSessionFileQuery) (generated.Value, error)

// Query calls f(ctx, q).
func (f UploadSessionFileFunc) Query(ctx context.Context, q generated.Query) (generated.Value, error) {
	if q, ok := q.(*generated.UploadSessionFileQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *generated.UploadSessionFileQuery", q)
}

// The TraverseUploadSessionFile type is an adapter to allow the use of ordinary function as Traverser.
type TraverseUploadSessionFile func(context.Context, *generated.UploadSessionFileQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseUploadSessionFile) Intercept(next generated.Querier) generated.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseUploadSessionFile) Traverse(ctx context.Context, q generated.Query) error {
	if q, ok := q.(*generated.UploadSessionFileQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *generated.UploadSessionFileQuery", q)
}

// NewQuery returns the generic Query interface for the given typed query.
func NewQuery(q generated.Query) (Query, error) {
	switch q := q.(type) {
	case *generated.EventQuery:
		return &query[*generated.EventQuery, predicate.Event, event.OrderOption]{typ: generated.TypeEvent, tq: q}, nil
	case *generated.PoemQuery:
		return &query[*generated.PoemQuery, predicate.Poem, poem.OrderOption]{typ: generated.TypePoem, tq: q}, nil
	case *generated.PublishTrackerQuery:
		return &query[*generated.PublishTrackerQuery, predicate.PublishTracker, publishtracker.OrderOption]{typ: generated.TypePublishTracker, tq: q}, nil
	case *generated.RecitationQuery:
		return &query[*generated.RecitationQuery, predicate.Recitation, recitation.OrderOption]{typ: generated.TypeRecitation, tq: q}, nil
	case *generated.RecitationProfileQuery:
		return &query[*generated.RecitationProfileQuery, predicate.RecitationProfile, recitationprofile.OrderOption]{typ: generated.TypeRecitationProfile, tq: q}, nil
	case *generated.UploadSessionQuery:
		return &query[*generated.UploadSessionQuery, predicate.UploadSession, uploadsession.OrderOption]{typ: generated.TypeUploadSession, tq: q}, nil
	case *generated.UploadSessionFileQuery:
		return &query[*generated.UploadSessionFileQuery, predicate.UploadSessionFile, uploadsessionfile.OrderOption]{typ: generated.TypeUploadSessionFile, tq: q}, nil
	default:
		return nil, fmt.Errorf("unknown query type %T", q)
	}
}

type query[T any, P ~func(*sql.Selector), R ~func(*sql.Selector)] struct {
	typ string
	tq  interface {
		Limit(int) T
		Offset(int) T
		Unique(bool) T
		Order(...R) T
		Where(...P) T
	}
}

func (q query[T, P, R]) Type() string {
	return q.typ
}

func (q query[T, P, R]) Limit(limit int) {
	q.tq.Limit(limit)
}

func (q query[T, P, R]) Offset(offset int) {
	q.tq.Offset(offset)
}

func (q query[T, P, R]) Unique(unique bool) {
	q.tq.Unique(unique)
}

func (q query[T, P, R]) Order(orders ...func(*sql.Selector)) {
	rs := make([]R, len(orders))
	for i := range orders {
		rs[i] = orders[i]
	}
	q.tq.Order(rs...)
}

func (q query[T, P, R]) WhereP(ps ...func(*sql.Selector)) {
	p := make([]P, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	q.tq.Where(p...)
}
