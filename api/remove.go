package api

import (
	"context"
	"io"
	"net/http"

	jsonv2 "github.com/go-json-experiment/json"

	"github.com/fulldump/devcheck/service"
)

// remove drops every record matching the filter and writes the removed
// records back, one JSON object per line.
func remove(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	params := struct {
		Filter service.JSON `json:"filter"`
	}{
		Filter: service.JSON{},
	}
	err = jsonv2.Unmarshal(requestBody, &params)
	if err != nil {
		return err
	}

	s := GetServicer(ctx)
	removed, err := s.Remove(ctx, params.Filter)
	if err != nil {
		return err
	}

	writeRecords(w, removed)
	return nil
}
