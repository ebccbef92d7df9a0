package service

import (
	"github.com/fulldump/dequedb/queue"
)

type Servicer interface {
	CreateQueue(name string, options queue.Options) (*queue.Queue, error)
	GetQueue(name string) (*queue.Queue, error)
	ListQueues() []*queue.Queue
	DeleteQueue(name string) error
}
