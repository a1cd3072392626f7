package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/graphql"
)

const maxQueryLength = 64 << 10

func ValidateGraphQLRequest(r *graphql.Request) error {
	if strings.TrimSpace(r.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	if len(r.Query) > maxQueryLength {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "query is too large")
	}
	return nil
}
