package apiqueuev1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fulldump/box"
	jsonv2 "github.com/go-json-experiment/json"

	"github.com/fulldump/dequedb/service"
)

type itemLookupResponse struct {
	Index    int         `json:"index"`
	Document interface{} `json:"document"`
}

func getItem(ctx context.Context) (*itemLookupResponse, error) {

	s := GetServicer(ctx)
	w := box.GetResponse(ctx)

	queueName := box.GetUrlParameter(ctx, "queueName")
	itemIndex := box.GetUrlParameter(ctx, "itemIndex")

	i, err := strconv.Atoi(itemIndex)
	if err != nil || i < 0 {
		w.WriteHeader(http.StatusBadRequest)
		return nil, fmt.Errorf("item index must be a non-negative integer")
	}

	q, err := s.GetQueue(queueName)
	if err != nil {
		if err == service.ErrorQueueNotFound {
			w.WriteHeader(http.StatusNotFound)
		}
		return nil, err
	}

	payload := q.Item(i)
	if payload == nil {
		// empty marker: beyond the queue length
		w.WriteHeader(http.StatusNotFound)
		return nil, fmt.Errorf("item %d not found", i)
	}

	var document interface{}
	if err := jsonv2.Unmarshal(payload, &document); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	return &itemLookupResponse{
		Index:    i,
		Document: document,
	}, nil
}
