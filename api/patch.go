package api

import (
	"context"
	"io"
	"net/http"

	jsonv2 "github.com/go-json-experiment/json"

	"github.com/fulldump/devcheck/service"
)

// patch merge-patches every record matching the filter and writes the
// patched records back, one JSON object per line.
func patch(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	params := struct {
		Filter service.JSON `json:"filter"`
		Patch  service.JSON `json:"patch"`
	}{
		Filter: service.JSON{},
	}
	err = jsonv2.Unmarshal(requestBody, &params)
	if err != nil {
		return err
	}

	s := GetServicer(ctx)
	patched, err := s.Patch(ctx, params.Filter, params.Patch)
	if err != nil {
		return err
	}

	writeRecords(w, patched)
	return nil
}
