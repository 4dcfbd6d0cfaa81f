// Package devcheck gates schema validation behind a condition. When the
// condition holds, values go through the full goskema pipeline; when it does
// not, values pass through untouched and keep their static type. The typical
// setup enables validation in development and disables it in production,
// where the same data has already been validated at the trust boundary.
package devcheck

import (
	"context"
	"fmt"

	goskema "github.com/reoring/goskema"
)

// Parse returns v untouched when on is false. When on is true it runs the
// schema's validate, normalize and refine phases and returns the result.
// Schema rejections are returned as-is (goskema.Issues).
func Parse[T any](ctx context.Context, s goskema.Schema[T], v T, on bool) (T, error) {
	if !on {
		return v, nil
	}

	var zero T

	err := s.ValidateValue(ctx, v)
	if err != nil {
		return zero, err
	}

	v, err = goskema.ApplyNormalize[T](ctx, v, s)
	if err != nil {
		return zero, err
	}

	err = goskema.ApplyRefine[T](ctx, v, s)
	if err != nil {
		return zero, err
	}

	return v, nil
}

// Decode is the gate for untyped boundary input, such as request bodies
// already decoded into maps. When on is true the input goes through the
// schema's Parse, with all its coercions; when on is false the input is
// returned as-is, and only its dynamic type is required to already be T.
func Decode[T any](ctx context.Context, s goskema.Schema[T], v any, on bool) (T, error) {
	if on {
		return s.Parse(ctx, v)
	}

	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("passthrough: value is %T, not %T", v, zero)
	}
	return t, nil
}

// Schema attaches a gated entry point to a goskema schema. The original
// schema is embedded, not copied or modified, so its whole capability set
// (Parse, Validate, JSONSchema...) remains available through delegation.
type Schema[T any] struct {
	goskema.Schema[T]
}

// Wrap builds a gated view of s. The wrapped schema is left untouched.
func Wrap[T any](s goskema.Schema[T]) Schema[T] {
	return Schema[T]{s}
}

// Check validates v with the wrapped schema when on is true, otherwise it
// returns v unchanged.
func (s Schema[T]) Check(ctx context.Context, v T, on bool) (T, error) {
	return Parse(ctx, s.Schema, v, on)
}

// Checker fixes a condition once and returns a reusable function taking the
// value and the schema. The condition is evaluated again on every call.
func Checker[T any](cond Condition) func(ctx context.Context, s goskema.Schema[T], v T) (T, error) {
	return func(ctx context.Context, s goskema.Schema[T], v T) (T, error) {
		return Parse(ctx, s, v, cond())
	}
}
