package apiqueuev1

import (
	"github.com/fulldump/dequedb/queue"
)

type QueueResponse struct {
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Capacity int    `json:"capacity"`
	Pool     int    `json:"pool"`
}

func newQueueResponse(q *queue.Queue) *QueueResponse {
	stats := q.Stats()
	return &QueueResponse{
		Name:     q.Name,
		Total:    stats.Length,
		Capacity: stats.Capacity,
		Pool:     stats.Pool,
	}
}
