package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"workstack.io/tracker/internal/http/handler"
)

// The full schema is covered in the graph package; these tests exercise the
// transport concerns only, over a minimal schema.
func pingSchema() graphql.Schema {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"ping": &graphql.Field{
				Type: graphql.String,
				Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
					return "pong", nil
				},
			},
		},
	})
	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	Expect(err).NotTo(HaveOccurred())
	return schema
}

var _ = Describe("GraphQLHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewGraphQLHandler(pingSchema())
		router.POST("/graphql", h.Execute)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("executes a query and returns data", func() {
		w := post(`{"query": "{ ping }"}`)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp struct {
			Data map[string]interface{} `json:"data"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Data["ping"]).To(Equal("pong"))
	})

	It("returns 400 on a malformed body", func() {
		w := post(`{`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 when the query is missing", func() {
		w := post(`{"variables": {}}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("keeps HTTP 200 for resolver-level errors", func() {
		w := post(`{"query": "{ nope }"}`)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp struct {
			Errors []map[string]interface{} `json:"errors"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Errors).NotTo(BeEmpty())
	})
})
