package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create queue", func(a *biff.A) {
		resp := apiRequest("POST", "/queues").
			WithBodyJson(JSON{
				"name": "my-queue",
			}).Do()
		Save(resp, "Create queue", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		expectedBody := JSON{
			"name":     "my-queue",
			"total":    0,
			"capacity": 16,
			"pool":     4,
		}
		biff.AssertEqualJson(resp.BodyJson(), expectedBody)

		a.Alternative("Retrieve queue", func(a *biff.A) {
			resp := apiRequest("GET", "/queues/my-queue").Do()
			Save(resp, "Retrieve queue", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), expectedBody)
		})

		a.Alternative("List queues", func(a *biff.A) {
			resp := apiRequest("GET", "/queues").Do()
			Save(resp, "List queues", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{expectedBody})
		})

		a.Alternative("Create queue again", func(a *biff.A) {
			resp := apiRequest("POST", "/queues").
				WithBodyJson(JSON{
					"name": "my-queue",
				}).Do()
			Save(resp, "Create queue - conflict", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})

		a.Alternative("Drop queue", func(a *biff.A) {
			resp := apiRequest("POST", "/queues/my-queue:dropQueue").Do()
			Save(resp, "Drop queue", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			a.Alternative("Get dropped queue", func(a *biff.A) {
				resp := apiRequest("GET", "/queues/my-queue").Do()
				Save(resp, "Get queue - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})

		a.Alternative("Push one document", func(a *biff.A) {
			myDocument := JSON{
				"id":   "my-id",
				"name": "Fulanez",
			}
			resp := apiRequest("POST", "/queues/my-queue:push").
				WithBodyJson(myDocument).Do()
			Save(resp, "Push one", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqualJson(resp.BodyJson(), myDocument)

			a.Alternative("Stats", func(a *biff.A) {
				resp := apiRequest("POST", "/queues/my-queue:stats").Do()
				Save(resp, "Queue stats", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"length":   1,
					"capacity": 16,
					"pool":     4,
				})
			})

			a.Alternative("Get item by index", func(a *biff.A) {
				resp := apiRequest("GET", "/queues/my-queue/items/0").Do()
				Save(resp, "Get item", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"index":    0,
					"document": myDocument,
				})
			})

			a.Alternative("Get item out of range", func(a *biff.A) {
				resp := apiRequest("GET", "/queues/my-queue/items/5").Do()
				Save(resp, "Get item - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Find with fullscan", func(a *biff.A) {
				resp := apiRequest("POST", "/queues/my-queue:find").
					WithBodyJson(JSON{
						"mode":  "fullscan",
						"limit": 10,
						"filter": JSON{
							"name": "Fulanez",
						},
					}).Do()
				Save(resp, "Find - fullscan", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), myDocument)
			})

			a.Alternative("Find with bad mode", func(a *biff.A) {
				resp := apiRequest("POST", "/queues/my-queue:find").
					WithBodyJson(JSON{
						"mode": "telepathy",
					}).Do()
				Save(resp, "Find - bad mode", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Pop", func(a *biff.A) {
				resp := apiRequest("POST", "/queues/my-queue:pop").Do()
				Save(resp, "Pop", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), myDocument)

				a.Alternative("Pop empty", func(a *biff.A) {
					resp := apiRequest("POST", "/queues/my-queue:pop").Do()
					Save(resp, "Pop - empty", ``)

					biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
				})
			})

			a.Alternative("Shift", func(a *biff.A) {
				resp := apiRequest("POST", "/queues/my-queue:shift").Do()
				Save(resp, "Shift", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), myDocument)

				a.Alternative("Shift empty", func(a *biff.A) {
					resp := apiRequest("POST", "/queues/my-queue:shift").Do()
					Save(resp, "Shift - empty", ``)

					biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
				})
			})

			a.Alternative("Unshift another document", func(a *biff.A) {
				urgent := JSON{"id": "urgent"}
				resp := apiRequest("POST", "/queues/my-queue:unshift").
					WithBodyJson(urgent).Do()
				Save(resp, "Unshift", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusCreated)

				a.Alternative("Front is the unshifted document", func(a *biff.A) {
					resp := apiRequest("GET", "/queues/my-queue/items/0").Do()

					biff.AssertEqualJson(resp.BodyJson(), JSON{
						"index":    0,
						"document": urgent,
					})
				})

				a.Alternative("Shift returns the unshifted document", func(a *biff.A) {
					resp := apiRequest("POST", "/queues/my-queue:shift").Do()

					biff.AssertEqualJson(resp.BodyJson(), urgent)
				})
			})
		})

		a.Alternative("Push many documents", func(a *biff.A) {
			body := ""
			for _, id := range []string{"1", "2", "3"} {
				body += `{"id":"` + id + `"}` + "\n"
			}
			resp := apiRequest("POST", "/queues/my-queue:push").
				WithBodyString(body).Do()
			Save(resp, "Push many", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)

			a.Alternative("Shift returns the first pushed", func(a *biff.A) {
				resp := apiRequest("POST", "/queues/my-queue:shift").Do()

				biff.AssertEqualJson(resp.BodyJson(), JSON{"id": "1"})
			})

			a.Alternative("Pop returns the last pushed", func(a *biff.A) {
				resp := apiRequest("POST", "/queues/my-queue:pop").Do()

				biff.AssertEqualJson(resp.BodyJson(), JSON{"id": "3"})
			})

			a.Alternative("Find with range", func(a *biff.A) {
				resp := apiRequest("POST", "/queues/my-queue:find").
					WithBodyJson(JSON{
						"mode": "range",
						"from": 1,
						"to":   2,
					}).Do()
				Save(resp, "Find - range", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{"id": "2"})
			})
		})
	})

	a.Alternative("Create queue with custom store", func(a *biff.A) {
		resp := apiRequest("POST", "/queues").
			WithBodyJson(JSON{
				"name":          "tuned",
				"capacity":      10,
				"max_pool_size": 0.3,
				"expand_rate":   1.5,
				"pool_size":     2,
			}).Do()
		Save(resp, "Create queue - custom store", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"name":     "tuned",
			"total":    0,
			"capacity": 10,
			"pool":     2,
		})
	})

	a.Alternative("Create queue with bad expand rate", func(a *biff.A) {
		resp := apiRequest("POST", "/queues").
			WithBodyJson(JSON{
				"name":        "broken",
				"expand_rate": 0.5,
			}).Do()
		Save(resp, "Create queue - bad expand rate", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Operate on a missing queue", func(a *biff.A) {
		resp := apiRequest("POST", "/queues/nope:push").
			WithBodyJson(JSON{"id": "1"}).Do()
		Save(resp, "Push - queue not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})
}
