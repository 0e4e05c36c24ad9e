package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"

	"noticeboard/internal/shared/logger"
)

// GraphQLRequest is the standard GraphQL-over-HTTP request body.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type GraphQLHandler struct {
	schema     graphql.Schema
	playground bool
	logger     logger.Interface
}

func NewGraphQLHandler(schema graphql.Schema, playground bool, logger logger.Interface) *GraphQLHandler {
	return &GraphQLHandler{
		schema:     schema,
		playground: playground,
		logger:     logger,
	}
}

// Post handles POST /graphql
func (h *GraphQLHandler) Post(c *gin.Context) {
	var req GraphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid graphql request body", "error", err)
		c.JSON(http.StatusBadRequest, errorResult("request body must be a JSON GraphQL request"))
		return
	}

	h.execute(c, req)
}

// Get handles GET /graphql. Without a query it serves GraphiQL when the
// playground is enabled. Mutations are refused over GET.
func (h *GraphQLHandler) Get(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		if h.playground {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(graphiQLPage))
			return
		}
		c.JSON(http.StatusBadRequest, errorResult("missing query"))
		return
	}

	req := GraphQLRequest{
		Query:         query,
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			c.JSON(http.StatusBadRequest, errorResult("variables must be a JSON object"))
			return
		}
	}

	if containsMutation(req.Query, req.OperationName) {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, errorResult("mutations must use POST"))
		return
	}

	h.execute(c, req)
}

func (h *GraphQLHandler) execute(c *gin.Context, req GraphQLRequest) {
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})

	if result.HasErrors() && result.Data == nil {
		h.logger.Debugw("graphql request rejected", "errors", result.Errors)
	}

	c.JSON(http.StatusOK, result)
}

// containsMutation reports whether the operation that would run is a mutation.
// Unparseable documents return false and fail later with a syntax error.
func containsMutation(query, operationName string) bool {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return false
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if operationName != "" && (op.Name == nil || op.Name.Value != operationName) {
			continue
		}
		if op.Operation == ast.OperationTypeMutation {
			return true
		}
	}
	return false
}

func errorResult(message string) gin.H {
	return gin.H{"errors": []gin.H{{"message": message}}}
}
