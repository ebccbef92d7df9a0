package apiqueuev1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/dequedb/service"
)

func getQueue(ctx context.Context) (*QueueResponse, error) {

	s := GetServicer(ctx)

	queueName := box.GetUrlParameter(ctx, "queueName")

	q, err := s.GetQueue(queueName)
	if err == service.ErrorQueueNotFound {
		box.GetResponse(ctx).WriteHeader(http.StatusNotFound)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return newQueueResponse(q), nil
}
