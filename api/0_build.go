package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/devcheck/service"
)

// Build mounts the record endpoints. Validation behavior depends entirely on
// the condition the servicer was built with; the API surface is identical
// either way.
func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		injectServicer(s),
	)

	v1.Resource("/records").
		WithActions(
			box.Get(listRecords),
			box.ActionPost(insert),
			box.ActionPost(find),
			box.ActionPost(remove),
			box.ActionPost(patch),
		)

	v1.Resource("/records/{recordId}").
		WithActions(
			box.Get(getRecord),
			box.Delete(deleteRecord),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}
