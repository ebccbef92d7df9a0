package apiqueuev1

import (
	"context"
)

func listQueues(ctx context.Context) ([]*QueueResponse, error) {

	s := GetServicer(ctx)

	result := []*QueueResponse{}
	for _, q := range s.ListQueues() {
		result = append(result, newQueueResponse(q))
	}

	return result, nil
}
