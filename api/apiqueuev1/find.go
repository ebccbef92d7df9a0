package apiqueuev1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fulldump/box"

	"github.com/fulldump/dequedb/queue"
	"github.com/fulldump/dequedb/utils"
)

func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	input := struct {
		Mode string
	}{
		Mode: "fullscan",
	}
	if len(requestBody) > 0 {
		err = json.Unmarshal(requestBody, &input)
		if err != nil {
			return err
		}
	}

	f, exist := findModes[input.Mode]
	if !exist {
		w.WriteHeader(http.StatusBadRequest)
		return fmt.Errorf("bad mode '%s', must be [%s]", input.Mode, strings.Join(utils.GetKeys(findModes), "|"))
	}

	s := GetServicer(ctx)
	queueName := box.GetUrlParameter(ctx, "queueName")
	q, err := s.GetQueue(queueName)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return err
	}

	return f(requestBody, q, w)
}

var findModes = map[string]func(input []byte, q *queue.Queue, w http.ResponseWriter) error{
	"fullscan": func(input []byte, q *queue.Queue, w http.ResponseWriter) error {
		return traverseFullscan(input, q, writeItem(w))
	},
	"range": func(input []byte, q *queue.Queue, w http.ResponseWriter) error {
		return traverseRange(input, q, writeItem(w))
	},
}

func writeItem(w http.ResponseWriter) func(payload json.RawMessage) {
	return func(payload json.RawMessage) {
		w.Write(payload)
		w.Write([]byte("\n"))
	}
}
