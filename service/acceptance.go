package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

// Acceptance exercises the whole record API through HTTP. It is shared by
// api tests so the same scenarios run against any wiring of the service.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Insert record", func(a *biff.A) {

		myRecord := JSON{
			"id":   "my-id",
			"name": "Fulanez",
			"age":  33,
		}
		resp := apiRequest("POST", "/records:insert").
			WithBodyJson(myRecord).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), myRecord)

		a.Alternative("List records", func(a *biff.A) {
			resp := apiRequest("GET", "/records").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{myRecord})
		})

		a.Alternative("Get record", func(a *biff.A) {
			resp := apiRequest("GET", "/records/my-id").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), myRecord)
		})

		a.Alternative("Get missing record", func(a *biff.A) {
			resp := apiRequest("GET", "/records/nope").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Find with filter", func(a *biff.A) {
			resp := apiRequest("POST", "/records:find").
				WithBodyJson(JSON{
					"filter": JSON{"name": "Fulanez"},
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), myRecord)
		})

		a.Alternative("Find by ids", func(a *biff.A) {
			resp := apiRequest("POST", "/records:find").
				WithBodyJson(JSON{
					"mode": "ids",
					"ids":  []string{"my-id"},
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), myRecord)
		})

		a.Alternative("Find with bad mode", func(a *biff.A) {
			resp := apiRequest("POST", "/records:find").
				WithBodyJson(JSON{
					"mode": "telepathy",
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Patch record", func(a *biff.A) {
			resp := apiRequest("POST", "/records:patch").
				WithBodyJson(JSON{
					"filter": JSON{"id": "my-id"},
					"patch":  JSON{"age": 34},
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"id":   "my-id",
				"name": "Fulanez",
				"age":  34,
			})
		})

		a.Alternative("Remove with filter", func(a *biff.A) {
			resp := apiRequest("POST", "/records:remove").
				WithBodyJson(JSON{
					"filter": JSON{"age": 33},
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), myRecord)

			a.Alternative("List after remove", func(a *biff.A) {
				resp := apiRequest("GET", "/records").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{})
			})
		})

		a.Alternative("Delete record", func(a *biff.A) {
			resp := apiRequest("DELETE", "/records/my-id").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			a.Alternative("Get deleted record", func(a *biff.A) {
				resp := apiRequest("GET", "/records/my-id").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})
	})

	a.Alternative("Insert record without id", func(a *biff.A) {

		resp := apiRequest("POST", "/records:insert").
			WithBodyJson(JSON{"name": "Anonymous"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)

		record := resp.BodyJson().(map[string]interface{})
		biff.AssertEqual(record["name"], "Anonymous")
		biff.AssertNotEqual(record["id"], "")
	})

	a.Alternative("Insert nothing", func(a *biff.A) {

		resp := apiRequest("POST", "/records:insert").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
	})
}
