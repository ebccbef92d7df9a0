package apiqueuev1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/dequedb/queue"
)

// stats exposes the backing store geometry: length, capacity and the
// current head pool size.
func stats(ctx context.Context) (*queue.Stats, error) {

	s := GetServicer(ctx)
	queueName := box.GetUrlParameter(ctx, "queueName")
	q, err := s.GetQueue(queueName)
	if err != nil {
		box.GetResponse(ctx).WriteHeader(http.StatusNotFound)
		return nil, err
	}

	result := q.Stats()

	return &result, nil
}
