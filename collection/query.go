package collection

import (
	"fmt"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/devcheck/utils"
)

// A Query selects positions within a collection: by identifier, by a
// boolean predicate over the record, or by a connor condition document
// evaluated against the record's JSON shape.
type Query[T any] struct {
	ids       []string
	predicate func(T) bool
	filter    map[string]any
}

// ById selects the first record carrying each given identifier, in the
// order the identifiers are given.
func ById[T any](ids ...string) *Query[T] {
	return &Query[T]{ids: ids}
}

// Where selects every record for which pred returns true, in ascending
// index order. Predicates are strictly boolean valued.
func Where[T any](pred func(T) bool) *Query[T] {
	return &Query[T]{predicate: pred}
}

// Filter selects every record matching the condition document, in ascending
// index order. Filters use connor operators, e.g. {"age": {"$ge": 18}}.
func Filter[T any](filter map[string]any) *Query[T] {
	return &Query[T]{filter: filter}
}

func (q *Query[T]) positions(o *Ops[T], rows []T) ([]int, error) {

	if len(q.ids) > 0 {
		return q.byIds(o, rows)
	}
	if q.predicate != nil {
		return q.byPredicate(rows)
	}
	if q.filter != nil {
		return q.byFilter(rows)
	}

	return nil, ErrMissingQuery
}

func (q *Query[T]) byIds(o *Ops[T], rows []T) ([]int, error) {

	positions := make([]int, 0, len(q.ids))
	for _, id := range q.ids {
		found := false
		for i, row := range rows {
			rowId, ok := o.recordId(row)
			if ok && rowId == id {
				positions = append(positions, i)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%s '%s': %w", o.idField, id, ErrNotFound)
		}
	}

	return positions, nil
}

func (q *Query[T]) byPredicate(rows []T) ([]int, error) {

	positions := []int{}
	for i, row := range rows {
		if q.predicate(row) {
			positions = append(positions, i)
		}
	}

	return positions, nil
}

func (q *Query[T]) byFilter(rows []T) ([]int, error) {

	// Both the filter and the rows go through their JSON shape, so numbers
	// always compare as float64 no matter how the caller wrote them.
	filter := map[string]any{}
	err := utils.Remarshal(q.filter, &filter)
	if err != nil {
		return nil, fmt.Errorf("remarshal filter: %w", err)
	}

	positions := []int{}
	for i, row := range rows {

		item := map[string]any{}
		err := utils.Remarshal(row, &item)
		if err != nil {
			return nil, fmt.Errorf("remarshal row %d: %w", i, err)
		}

		matches, err := connor.Match(filter, item)
		if err != nil {
			return nil, fmt.Errorf("match: %w", err)
		}
		if matches {
			positions = append(positions, i)
		}
	}

	return positions, nil
}
