package collection

import (
	"context"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	jsonv2 "github.com/go-json-experiment/json"
)

// Patch applies a JSON merge patch to every record matched by q and returns
// a new re-validated collection. A nil q patches every record. Fields set to
// null in diff are removed, the rest are merged over the record.
func (o *Ops[T]) Patch(ctx context.Context, rows []T, diff any, q *Query[T]) ([]T, error) {

	if diff == nil {
		return nil, ErrMissingOperation
	}

	diffBytes, err := jsonv2.Marshal(diff)
	if err != nil {
		return nil, fmt.Errorf("marshal patch: %w", err)
	}

	positions, err := o.target(ctx, rows, q)
	if err != nil {
		return nil, err
	}

	on := o.cond()

	result := make([]T, len(rows))
	copy(result, rows)
	for _, i := range positions {

		payload, err := jsonv2.Marshal(rows[i])
		if err != nil {
			return nil, fmt.Errorf("marshal row %d: %w", i, err)
		}

		newPayload, err := jsonpatch.MergePatch(payload, diffBytes)
		if err != nil {
			return nil, fmt.Errorf("cannot apply patch: %w", err)
		}

		row, err := o.reparse(ctx, newPayload, on)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		result[i] = row
	}

	return o.Validate(ctx, result)
}

// reparse turns a patched payload back into a record. With the gate enabled
// the payload goes through the item schema's Parse, so coercions keep the
// record in the same shape a validated insert would produce; disabled, it is
// a plain decode.
func (o *Ops[T]) reparse(ctx context.Context, payload []byte, on bool) (T, error) {

	var row T

	if !on {
		err := jsonv2.Unmarshal(payload, &row)
		return row, err
	}

	var wire any
	err := jsonv2.Unmarshal(payload, &wire)
	if err != nil {
		return row, err
	}

	return o.item.Parse(ctx, wire)
}
