package queue

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fulldump/dequedb/darray"
)

// Options are the store parameters of a queue, exposed through the API
// so callers can tune the head pool per queue.
type Options struct {
	Capacity    int     `json:"capacity"`
	MaxPoolSize float64 `json:"max_pool_size"`
	ExpandRate  float64 `json:"expand_rate"`
	PoolSize    int     `json:"pool_size"`
}

func DefaultOptions() Options {
	return Options{
		Capacity:    16,
		MaxPoolSize: 0.25,
		ExpandRate:  1.5,
		PoolSize:    4,
	}
}

// Queue is a named double-ended queue of JSON documents. Documents are
// opaque payloads: the queue never interprets or owns what they
// reference. The underlying array is single-threaded; the queue mutex
// provides the external synchronization.
type Queue struct {
	Name      string
	Uuid      string
	CreatedAt time.Time
	Options   Options

	items      *darray.DArray[json.RawMessage]
	itemsMutex *sync.Mutex
}

func NewQueue(name string, options Options) (*Queue, error) {

	items, err := darray.New[json.RawMessage](options.Capacity, options.MaxPoolSize, options.ExpandRate, options.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("new store: %w", err)
	}

	return &Queue{
		Name:       name,
		Uuid:       uuid.New().String(),
		CreatedAt:  time.Now(),
		Options:    options,
		items:      items,
		itemsMutex: &sync.Mutex{},
	}, nil
}

// Stats is the observable geometry of the backing store.
type Stats struct {
	Length   int `json:"length"`
	Capacity int `json:"capacity"`
	Pool     int `json:"pool"`
}

func lockBlock(m *sync.Mutex, f func() error) error {
	m.Lock()
	defer m.Unlock()
	return f()
}

// Push appends a document at the back of the queue.
func (q *Queue) Push(payload json.RawMessage) error {
	return lockBlock(q.itemsMutex, func() error {
		return q.items.Push(payload)
	})
}

// Pop removes and returns the document at the back of the queue.
func (q *Queue) Pop() (payload json.RawMessage, err error) {
	lockBlock(q.itemsMutex, func() error {
		payload, err = q.items.Pop()
		return err
	})
	return
}

// Unshift inserts a document at the front of the queue.
func (q *Queue) Unshift(payload json.RawMessage) error {
	return lockBlock(q.itemsMutex, func() error {
		return q.items.Unshift(payload)
	})
}

// Shift removes and returns the document at the front of the queue.
func (q *Queue) Shift() (payload json.RawMessage, err error) {
	lockBlock(q.itemsMutex, func() error {
		payload, err = q.items.Shift()
		return err
	})
	return
}

// Item returns the document at position i, or nil when i is out of
// range (same policy as the array underneath).
func (q *Queue) Item(i int) (payload json.RawMessage) {
	lockBlock(q.itemsMutex, func() error {
		payload = q.items.Index(i)
		return nil
	})
	return
}

func (q *Queue) Len() (n int) {
	lockBlock(q.itemsMutex, func() error {
		n = q.items.Len()
		return nil
	})
	return
}

func (q *Queue) Stats() (stats Stats) {
	lockBlock(q.itemsMutex, func() error {
		stats = Stats{
			Length:   q.items.Len(),
			Capacity: q.items.Cap(),
			Pool:     q.items.Pool(),
		}
		return nil
	})
	return
}

// Traverse visits documents front to back until f returns false.
func (q *Queue) Traverse(f func(payload json.RawMessage) bool) {
	lockBlock(q.itemsMutex, func() error {
		for i := 0; i < q.items.Len(); i++ {
			if !f(q.items.Index(i)) {
				break
			}
		}
		return nil
	})
}

// Drop releases the backing store. Any operation on a dropped queue
// reports a darray ClassData error.
func (q *Queue) Drop() {
	lockBlock(q.itemsMutex, func() error {
		q.items.Destroy()
		return nil
	})
}
