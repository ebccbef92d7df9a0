package apiqueuev1

import (
	"context"

	"github.com/fulldump/dequedb/service"
)

const ContextServicerKey = "3e9d3a52-6f1e-11ee-b57a-7f0f4be87f63"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}
