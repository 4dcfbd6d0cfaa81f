package api

import (
	"context"
	"encoding/json"
	"net/http"
)

func listRecords(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)

	records, err := s.Records(ctx)
	if err != nil {
		return err
	}

	return json.NewEncoder(w).Encode(records)
}
