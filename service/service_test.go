package service

import (
	"testing"

	. "github.com/fulldump/biff"

	"github.com/fulldump/dequedb/queue"
)

func TestCreateQueue(t *testing.T) {
	s := NewService()

	q, err := s.CreateQueue("jobs", queue.DefaultOptions())

	AssertNil(err)
	AssertEqual(q.Name, "jobs")

	_, err = s.CreateQueue("jobs", queue.DefaultOptions())
	AssertEqual(err, ErrorQueueAlreadyExists)
}

func TestGetQueue(t *testing.T) {
	s := NewService()

	_, err := s.GetQueue("missing")
	AssertEqual(err, ErrorQueueNotFound)

	s.CreateQueue("jobs", queue.DefaultOptions())
	q, err := s.GetQueue("jobs")
	AssertNil(err)
	AssertEqual(q.Name, "jobs")
}

func TestListQueuesOrdered(t *testing.T) {
	s := NewService()

	s.CreateQueue("zebra", queue.DefaultOptions())
	s.CreateQueue("alpha", queue.DefaultOptions())
	s.CreateQueue("melon", queue.DefaultOptions())

	names := []string{}
	for _, q := range s.ListQueues() {
		names = append(names, q.Name)
	}

	AssertEqual(names, []string{"alpha", "melon", "zebra"})
}

func TestDeleteQueue(t *testing.T) {
	s := NewService()

	s.CreateQueue("jobs", queue.DefaultOptions())

	AssertNil(s.DeleteQueue("jobs"))
	AssertEqual(s.DeleteQueue("jobs"), ErrorQueueNotFound)
	AssertEqual(len(s.ListQueues()), 0)
}
