package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"workstack.io/tracker/internal/graph"
)

// GraphQLHandler serves the single query/mutation endpoint. The schema is
// built once at startup and shared across requests.
type GraphQLHandler struct {
	schema graphql.Schema
}

func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

type graphqlRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Execute runs one GraphQL request. Resolver failures surface inside the
// response body per the GraphQL convention, so the HTTP status stays 200.
func (h *GraphQLHandler) Execute(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: query is required"})
		return
	}

	result := graph.Execute(c.Request.Context(), h.schema, req.Query, req.OperationName, req.Variables)

	c.JSON(http.StatusOK, result)
}
