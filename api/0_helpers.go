package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/dequedb/darray"
	"github.com/fulldump/dequedb/service"
)

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		if err == service.ErrorQueueNotFound {
			writeError(w, http.StatusNotFound, err, "queue does not exist")
			return
		}

		if err == service.ErrorQueueAlreadyExists {
			writeError(w, http.StatusConflict, err, "choose a different queue name")
			return
		}

		if darray.ClassOf(err) == darray.ClassArgs {
			writeError(w, http.StatusBadRequest, err, "invalid store parameters")
			return
		}

		if err == box.ErrResourceNotFound {
			writeError(w, http.StatusNotFound, err, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == box.ErrMethodNotAllowed {
			writeError(w, http.StatusMethodNotAllowed, err, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		if _, ok := err.(*json.SyntaxError); ok {
			writeError(w, http.StatusBadRequest, err, "malformed JSON")
			return
		}

		writeError(w, http.StatusInternalServerError, err, "unexpected error")
	}
}

func writeError(w http.ResponseWriter, status int, err error, description string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"message":     err.Error(),
			"description": description,
		},
	})
}
