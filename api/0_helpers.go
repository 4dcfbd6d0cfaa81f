package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	goskema "github.com/reoring/goskema"

	"github.com/fulldump/devcheck/collection"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

// PrettyErrorInterceptor maps errors to HTTP statuses: schema rejections and
// missing arguments are the caller's fault (400), unknown records and
// resources are 404, everything else is 500.
func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		var issues goskema.Issues
		if errors.As(err, &issues) {
			w.WriteHeader(http.StatusBadRequest)
			PrettyError{
				Message:     err.Error(),
				Description: "the value was rejected by the schema",
			}.MarshalTo(w)
			return
		}

		if errors.Is(err, collection.ErrMissingQuery) ||
			errors.Is(err, collection.ErrMissingOperation) ||
			errors.Is(err, collection.ErrMissingCollection) {
			w.WriteHeader(http.StatusBadRequest)
			PrettyError{
				Message:     err.Error(),
				Description: "a required argument is absent",
			}.MarshalTo(w)
			return
		}

		if errors.Is(err, collection.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			PrettyError{
				Message:     err.Error(),
				Description: "no record carries the requested identifier",
			}.MarshalTo(w)
			return
		}

		if err == box.ErrResourceNotFound {
			w.WriteHeader(http.StatusNotFound)
			PrettyError{
				Message:     err.Error(),
				Description: fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()),
			}.MarshalTo(w)
			return
		}

		if err == box.ErrMethodNotAllowed {
			w.WriteHeader(http.StatusMethodNotAllowed)
			PrettyError{
				Message:     err.Error(),
				Description: fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method),
			}.MarshalTo(w)
			return
		}

		var syntaxError *json.SyntaxError
		if errors.As(err, &syntaxError) || errors.Is(err, io.ErrUnexpectedEOF) {
			w.WriteHeader(http.StatusBadRequest)
			PrettyError{
				Message:     err.Error(),
				Description: "Malformed JSON",
			}.MarshalTo(w)
			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		PrettyError{
			Message:     err.Error(),
			Description: "Unexpected error",
		}.MarshalTo(w)
	}
}
