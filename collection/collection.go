// Package collection implements CRUD helpers over an ordered slice of
// records that share one schema. Every slice crossing an operation boundary
// is re-validated through the devcheck gate, so the same code runs with full
// validation in development and as plain slice plumbing in production.
//
// All operations are pure: they read their inputs and build fresh slices,
// never touching the caller's storage. Either the whole operation succeeds
// or it fails and the caller's slice is still valid.
package collection

import (
	"context"
	"errors"
	"fmt"

	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/dsl"

	"github.com/fulldump/devcheck"
	"github.com/fulldump/devcheck/utils"
)

var (
	ErrMissingCollection = errors.New("missing collection")
	ErrMissingQuery      = errors.New("missing query")
	ErrMissingOperation  = errors.New("missing operation")
	ErrNotFound          = errors.New("not found")
)

// Position selects where Add concatenates new records.
type Position string

const (
	AtStart Position = "start"
	AtEnd   Position = "end"
)

// Ops holds the pieces shared by all operations: the gate condition, the
// item schema and the array-of schema derived from it. Everything captured
// here is read-only after New, so an Ops value can be shared by concurrent
// callers.
type Ops[T any] struct {
	cond    devcheck.Condition
	item    goskema.Schema[T]
	items   goskema.Schema[[]T]
	idField string
}

// New builds the operation set for records validated by item. The condition
// is evaluated on every operation.
func New[T any](cond devcheck.Condition, item goskema.Schema[T]) *Ops[T] {
	return &Ops[T]{
		cond:    cond,
		item:    item,
		items:   dsl.Array(item),
		idField: "id",
	}
}

// WithIdField overrides the record field used as lookup key, "id" by default.
func (o *Ops[T]) WithIdField(name string) *Ops[T] {
	o.idField = name
	return o
}

// Validate gates rows through the array-of-item schema. With the condition
// disabled rows pass through untouched.
func (o *Ops[T]) Validate(ctx context.Context, rows []T) ([]T, error) {
	return devcheck.Parse(ctx, o.items, rows, o.cond())
}

// Locate resolves q to record positions within rows. Identifier queries keep
// the order the identifiers were given in and fail when any of them is
// absent; predicate and filter queries keep ascending index order.
func (o *Ops[T]) Locate(ctx context.Context, rows []T, q *Query[T]) ([]int, error) {

	if rows == nil {
		return nil, ErrMissingCollection
	}
	if q == nil {
		return nil, ErrMissingQuery
	}

	rows, err := o.Validate(ctx, rows)
	if err != nil {
		return nil, err
	}

	return q.positions(o, rows)
}

// Fetch returns the records located by q, as a new re-validated slice.
func (o *Ops[T]) Fetch(ctx context.Context, rows []T, q *Query[T]) ([]T, error) {

	positions, err := o.Locate(ctx, rows, q)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(positions))
	for _, i := range positions {
		result = append(result, rows[i])
	}

	return o.Validate(ctx, result)
}

// Add concatenates records before (AtStart) or after (AtEnd) the existing
// rows. The zero Position means AtEnd.
func (o *Ops[T]) Add(ctx context.Context, rows []T, records []T, at Position) ([]T, error) {

	if rows == nil {
		return nil, ErrMissingCollection
	}

	rows, err := o.Validate(ctx, rows)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(rows)+len(records))
	switch at {
	case AtStart:
		result = append(result, records...)
		result = append(result, rows...)
	case AtEnd, "":
		result = append(result, rows...)
		result = append(result, records...)
	default:
		return nil, fmt.Errorf("position '%s' is not valid, must be [%s|%s]", at, AtStart, AtEnd)
	}

	return o.Validate(ctx, result)
}

// Remove drops every record located by q. The remaining records keep their
// original relative order.
func (o *Ops[T]) Remove(ctx context.Context, rows []T, q *Query[T]) ([]T, error) {

	positions, err := o.Locate(ctx, rows, q)
	if err != nil {
		return nil, err
	}

	drop := map[int]bool{}
	for _, i := range positions {
		drop[i] = true
	}

	result := make([]T, 0, len(rows)-len(drop))
	for i, row := range rows {
		if drop[i] {
			continue
		}
		result = append(result, row)
	}

	return o.Validate(ctx, result)
}

// Update replaces every record matched by q with op's result, leaving the
// rest untouched and preserving order. A nil q applies op to every record.
// The operation must build a new record instead of mutating its argument.
func (o *Ops[T]) Update(ctx context.Context, rows []T, op func(T) T, q *Query[T]) ([]T, error) {

	if op == nil {
		return nil, ErrMissingOperation
	}

	positions, err := o.target(ctx, rows, q)
	if err != nil {
		return nil, err
	}

	result := make([]T, len(rows))
	copy(result, rows)
	for _, i := range positions {
		result[i] = op(rows[i])
	}

	return o.Validate(ctx, result)
}

// target resolves q like Locate, except that a nil q selects all positions.
func (o *Ops[T]) target(ctx context.Context, rows []T, q *Query[T]) ([]int, error) {

	if rows == nil {
		return nil, ErrMissingCollection
	}

	if q == nil {
		rows, err := o.Validate(ctx, rows)
		if err != nil {
			return nil, err
		}
		all := make([]int, len(rows))
		for i := range rows {
			all[i] = i
		}
		return all, nil
	}

	return o.Locate(ctx, rows, q)
}

// recordId projects a record to a map and reads the id field from it, the
// same way ids travel through JSON at the boundary.
func (o *Ops[T]) recordId(row T) (string, bool) {

	item := map[string]any{}
	err := utils.Remarshal(row, &item)
	if err != nil {
		return "", false
	}

	id, ok := item[o.idField].(string)
	return id, ok
}
