package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fulldump/box"
	jsonv2 "github.com/go-json-experiment/json"

	"github.com/fulldump/devcheck/service"
	"github.com/fulldump/devcheck/utils"
)

func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	input := struct {
		Mode string `json:"mode"`
	}{
		Mode: "filter",
	}
	err = jsonv2.Unmarshal(requestBody, &input)
	if err != nil {
		return err
	}

	f, exist := findModes[input.Mode]
	if !exist {
		box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
		return fmt.Errorf("bad mode '%s', must be [%s]", input.Mode, strings.Join(utils.GetKeys(findModes), "|"))
	}

	return f(ctx, requestBody, w)
}

var findModes = map[string]func(ctx context.Context, input []byte, w http.ResponseWriter) error{
	"filter": findByFilter,
	"ids":    findByIds,
}

func findByFilter(ctx context.Context, input []byte, w http.ResponseWriter) error {

	params := struct {
		Filter service.JSON `json:"filter"`
	}{
		Filter: service.JSON{},
	}
	err := jsonv2.Unmarshal(input, &params)
	if err != nil {
		return err
	}

	s := GetServicer(ctx)
	records, err := s.Find(ctx, params.Filter)
	if err != nil {
		return err
	}

	writeRecords(w, records)
	return nil
}

func findByIds(ctx context.Context, input []byte, w http.ResponseWriter) error {

	params := struct {
		Ids []string `json:"ids"`
	}{}
	err := jsonv2.Unmarshal(input, &params)
	if err != nil {
		return err
	}

	s := GetServicer(ctx)
	records := make([]service.JSON, 0, len(params.Ids))
	for _, id := range params.Ids {
		record, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	writeRecords(w, records)
	return nil
}

func writeRecords(w http.ResponseWriter, records []service.JSON) {
	jsonWriter := json.NewEncoder(w)
	for _, record := range records {
		jsonWriter.Encode(record)
	}
}
