package apiqueuev1

import (
	"context"
	"errors"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/dequedb/darray"
)

// shift removes and returns the document at the front of the queue.
// Responds 204 when the queue is empty.
func shift(ctx context.Context, w http.ResponseWriter) error {

	s := GetServicer(ctx)
	queueName := box.GetUrlParameter(ctx, "queueName")
	q, err := s.GetQueue(queueName)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return err
	}

	payload, err := q.Shift()
	if errors.Is(err, darray.ErrEmpty) {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
	w.Write([]byte("\n"))

	return nil
}
