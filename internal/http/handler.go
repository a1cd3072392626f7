package http

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/graphql"
	"taskboard.com/taskboard/internal/http/validators"
)

type Handler struct {
	executor *graphql.Executor
}

func NewHandler(executor *graphql.Executor) *Handler {
	return &Handler{
		executor: executor,
	}
}

// GraphQL executes a query sent as a JSON body (POST) or as query
// parameters (GET). GraphQL-level failures still answer 200 with errors in
// the body.
func (h *Handler) GraphQL(c echo.Context) error {
	var req graphql.Request
	if c.Request().Method == http.MethodGet {
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if raw := c.QueryParam("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid variables")
			}
		}
	} else if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := validators.ValidateGraphQLRequest(&req); err != nil {
		return err
	}

	result := h.executor.Execute(c.Request().Context(), req)
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
