package graphql

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

// Request is a GraphQL POST body
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GraphQL requests against the schema
type Handler struct {
	schema graphql.Schema
}

// NewHandler creates a new GraphQL handler
func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

// Execute runs a single query for the request's identity
// @Summary Execute a GraphQL query
// @Description Runs a query or mutation. Resolvers require a session; errors carry a kind extension.
// @Tags graphql
// @Accept json
// @Produce json
// @Param request body Request true "GraphQL request"
// @Success 200 {object} map[string]interface{} "GraphQL result"
// @Failure 400 {object} map[string]interface{} "Missing query"
// @Security SessionCookie
// @Router /graphql [post]
func (h *Handler) Execute(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{"message": "A query is required."}},
		})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})
	c.JSON(http.StatusOK, result)
}
