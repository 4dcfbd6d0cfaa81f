package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/devcheck/service"
)

// insert accepts one or more JSON objects in the request body and appends
// them to the collection, gated through the schema.
func insert(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)

	records := []service.JSON{}
	jsonReader := json.NewDecoder(r.Body)
	for {
		item := service.JSON{}
		err := jsonReader.Decode(&item)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		records = append(records, item)
	}

	if len(records) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	inserted, err := s.Insert(ctx, records...)
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusCreated)
	jsonWriter := json.NewEncoder(w)
	for _, record := range inserted {
		jsonWriter.Encode(record)
	}

	return nil
}
