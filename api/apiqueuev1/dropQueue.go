package apiqueuev1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/dequedb/service"
)

func dropQueue(ctx context.Context, w http.ResponseWriter) error {

	s := GetServicer(ctx)

	queueName := box.GetUrlParameter(ctx, "queueName")

	err := s.DeleteQueue(queueName)
	if err == service.ErrorQueueNotFound {
		w.WriteHeader(http.StatusNotFound)
	}

	return err
}
