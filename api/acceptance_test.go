package api

import (
	"net/http"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"
	"github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"

	"github.com/fulldump/devcheck"
	"github.com/fulldump/devcheck/service"
)

func recordSchema() goskema.Schema[map[string]any] {
	return g.Object().
		Field("id", g.StringOf[string]()).
		Field("name", g.StringOf[string]()).
		Field("age", g.IntOf[int]()).
		Require("id").
		UnknownStrip().
		MustBuild()
}

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		s := service.NewService(devcheck.Enabled(true), recordSchema(), "id")

		b := Build(s, "test")
		b.WithInterceptors(
			box.RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}

func TestAcceptanceValidation(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		s := service.NewService(devcheck.Enabled(true), recordSchema(), "id")

		b := Build(s, "test")
		b.WithInterceptors(
			box.RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		a.Alternative("Insert invalid record", func(a *biff.A) {
			resp := api.Request("POST", "/v1/records:insert").
				WithBodyJson(map[string]any{
					"id":  "my-id",
					"age": "not a number",
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Insert garbage body", func(a *biff.A) {
			resp := api.Request("POST", "/v1/records:insert").
				WithBodyString(`{"id": oops`).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})
}

func TestAcceptanceChecksDisabled(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		s := service.NewService(devcheck.Enabled(false), recordSchema(), "id")

		b := Build(s, "test")
		b.WithInterceptors(
			box.RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		a.Alternative("Insert record with wrong shape", func(a *biff.A) {
			resp := api.Request("POST", "/v1/records:insert").
				WithBodyJson(map[string]any{
					"id":    "my-id",
					"age":   "not a number",
					"extra": true,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		})
	})
}
