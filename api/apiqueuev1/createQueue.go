package apiqueuev1

import (
	"context"
	"net/http"

	"github.com/fulldump/dequedb/darray"
	"github.com/fulldump/dequedb/queue"
	"github.com/fulldump/dequedb/service"
)

type createQueueRequest struct {
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	MaxPoolSize *float64 `json:"max_pool_size"`
	ExpandRate  float64  `json:"expand_rate"`
	PoolSize    *int     `json:"pool_size"`
}

func createQueue(ctx context.Context, w http.ResponseWriter, input *createQueueRequest) (*QueueResponse, error) {

	s := GetServicer(ctx)

	options := queue.DefaultOptions()
	if input.Capacity > 0 {
		options.Capacity = input.Capacity
	}
	if input.MaxPoolSize != nil {
		options.MaxPoolSize = *input.MaxPoolSize
	}
	if input.ExpandRate > 0 {
		options.ExpandRate = input.ExpandRate
	}
	if input.PoolSize != nil {
		options.PoolSize = *input.PoolSize
	}
	if input.MaxPoolSize != nil && *input.MaxPoolSize == 0 && input.PoolSize == nil {
		options.PoolSize = 0
	}

	q, err := s.CreateQueue(input.Name, options)
	if err == service.ErrorQueueAlreadyExists {
		w.WriteHeader(http.StatusConflict)
		return nil, err
	}
	if darray.ClassOf(err) == darray.ClassArgs {
		w.WriteHeader(http.StatusBadRequest)
		return nil, err
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return newQueueResponse(q), nil
}
