package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/dequedb/api/apiqueuev1"
	"github.com/fulldump/dequedb/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	apiqueuev1.BuildV1Queue(v1, s).
		WithInterceptors(
			injectServicer(s),
		)

	b.Resource("/version").
		WithActions(
			box.Get(func() string {
				return version
			}),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apiqueuev1.SetServicer(ctx, s))
		}
	}
}
