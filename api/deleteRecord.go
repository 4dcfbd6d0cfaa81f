package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

func deleteRecord(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)
	id := box.GetUrlParameter(ctx, "recordId")

	err := s.Delete(ctx, id)
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
