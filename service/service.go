package service

import (
	"errors"
	"sync"

	"github.com/google/btree"

	"github.com/fulldump/dequedb/queue"
)

var ErrorQueueAlreadyExists = errors.New("queue already exists")
var ErrorQueueNotFound = errors.New("queue not found")

// Service is the in-memory registry of named queues. Names are kept in
// a btree so listings come out in lexical order.
type Service struct {
	mutex  *sync.RWMutex
	queues map[string]*queue.Queue
	names  *btree.BTreeG[string]
}

func NewService() *Service {
	return &Service{
		mutex:  &sync.RWMutex{},
		queues: map[string]*queue.Queue{},
		names: btree.NewG(32, func(a, b string) bool {
			return a < b
		}),
	}
}

func (s *Service) CreateQueue(name string, options queue.Options) (*queue.Queue, error) {

	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, exist := s.queues[name]
	if exist {
		return nil, ErrorQueueAlreadyExists
	}

	q, err := queue.NewQueue(name, options)
	if err != nil {
		return nil, err
	}

	s.queues[name] = q
	s.names.ReplaceOrInsert(name)

	return q, nil
}

func (s *Service) GetQueue(name string) (*queue.Queue, error) {

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	q, exist := s.queues[name]
	if !exist {
		return nil, ErrorQueueNotFound
	}

	return q, nil
}

func (s *Service) ListQueues() []*queue.Queue {

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := []*queue.Queue{}
	s.names.Ascend(func(name string) bool {
		result = append(result, s.queues[name])
		return true
	})

	return result
}

func (s *Service) DeleteQueue(name string) error {

	s.mutex.Lock()
	defer s.mutex.Unlock()

	q, exist := s.queues[name]
	if !exist {
		return ErrorQueueNotFound
	}

	delete(s.queues, name)
	s.names.Delete(name)
	q.Drop()

	return nil
}
