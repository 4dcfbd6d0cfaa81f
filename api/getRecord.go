package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"
)

func getRecord(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)
	id := box.GetUrlParameter(ctx, "recordId")

	record, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	return json.NewEncoder(w).Encode(record)
}
