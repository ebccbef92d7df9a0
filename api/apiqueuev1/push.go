package apiqueuev1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"
)

// push appends documents at the back of the queue. The body is a
// stream of JSON documents, so one request can push many.
func push(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)
	queueName := box.GetUrlParameter(ctx, "queueName")
	q, err := s.GetQueue(queueName)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return err
	}

	jsonReader := json.NewDecoder(r.Body)
	jsonWriter := json.NewEncoder(w)

	for i := 0; true; i++ {
		item := json.RawMessage{}
		err := jsonReader.Decode(&item)
		if err == io.EOF {
			if i == 0 {
				w.WriteHeader(http.StatusNoContent)
			}
			return nil
		}
		if err != nil {
			if i == 0 {
				w.WriteHeader(http.StatusBadRequest)
			}
			return err
		}
		err = q.Push(item)
		if err != nil {
			if i == 0 {
				w.WriteHeader(http.StatusConflict)
			}
			return err
		}

		if i == 0 {
			w.WriteHeader(http.StatusCreated)
		}
		jsonWriter.Encode(item)
	}

	return nil
}
