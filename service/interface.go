package service

import (
	"context"
)

type JSON = map[string]any

type Servicer interface {
	Records(ctx context.Context) ([]JSON, error)
	Insert(ctx context.Context, records ...JSON) ([]JSON, error)
	Find(ctx context.Context, filter JSON) ([]JSON, error)
	Get(ctx context.Context, id string) (JSON, error)
	Delete(ctx context.Context, id string) error
	Remove(ctx context.Context, filter JSON) ([]JSON, error)
	Patch(ctx context.Context, filter JSON, diff JSON) ([]JSON, error)
}
