package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"taskboard.com/taskboard/internal/constants"
	"taskboard.com/taskboard/internal/graphql"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/ratelimit"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
	"taskboard.com/taskboard/internal/testutil"
	"taskboard.com/taskboard/pkg/auth"
)

type server struct {
	echo   *echo.Echo
	fx     *testutil.Fixtures
	tokens *auth.TokenManager
}

func setupServer(t *testing.T, limit int) *server {
	t.Helper()

	db := testutil.NewDB(t)
	logger := zap.NewNop()

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	passwords := auth.NewPasswordManager(bcrypt.MinCost)
	tokens := auth.NewTokenManager("test-secret", time.Hour, "taskboard-test")
	authService := services.NewAuthService(userRepo, tokens, passwords, logger)

	executor, err := graphql.NewExecutor(graphql.NewResolver(
		services.NewUserService(userRepo, passwords, logger),
		authService,
		services.NewProjectService(projectRepo, taskRepo, userRepo, services.AdminsCreateProjects, logger),
		services.NewTaskService(taskRepo, projectRepo, userRepo, logger),
		services.NewDashboardService(projectRepo, taskRepo),
		logger,
	))
	require.NoError(t, err)

	e := echo.New()
	Register(e, NewHandler(executor), RouteConfig{
		AllowedOrigins: []string{"*"},
		Limiter:        ratelimit.NewMemoryLimiter(limit, time.Minute),
		Tokens:         authService,
		Logger:         logger,
	})

	return &server{echo: e, fx: testutil.NewFixtures(t, db), tokens: tokens}
}

func (s *server) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *server) bearer(t *testing.T, user *model.User) string {
	token, _, err := s.tokens.Generate(user.ID)
	require.NoError(t, err)
	return "Bearer " + token
}

func graphqlPost(query, authorization string) *http.Request {
	body, _ := json.Marshal(graphql.Request{Query: query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	return req
}

func TestHealth(t *testing.T) {
	s := setupServer(t, 10)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestGraphQL_BearerToken(t *testing.T) {
	s := setupServer(t, 10)
	user := s.fx.User("ursula", constants.LevelUser)

	rec := s.do(graphqlPost(`{ me { name } }`, s.bearer(t, user)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"me":{"name":"ursula"}}}`, rec.Body.String())
}

func TestGraphQL_InvalidTokenIsAnonymous(t *testing.T) {
	s := setupServer(t, 10)

	for _, header := range []string{"", "Bearer garbage", "Basic dXNlcjpwYXNz"} {
		rec := s.do(graphqlPost(`{ validate { success errors } }`, header))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"validate":{"success":false,"errors":["Unauthorized"]}}}`, rec.Body.String(), header)
	}
}

func TestGraphQL_DeletedUserTokenIsAnonymous(t *testing.T) {
	s := setupServer(t, 10)
	user := s.fx.User("ursula", constants.LevelUser)
	header := s.bearer(t, user)

	rec := s.do(graphqlPost(`mutation { deleteUser(id: "`+user.ID+`") { success } }`, header))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(graphqlPost(`{ validate { success } }`, header))
	assert.JSONEq(t, `{"data":{"validate":{"success":false}}}`, rec.Body.String())
}

func TestGraphQL_GetRequest(t *testing.T) {
	s := setupServer(t, 10)

	q := url.Values{}
	q.Set("query", `query Check { validate { success } }`)
	q.Set("operationName", "Check")
	rec := s.do(httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"validate":{"success":false}}}`, rec.Body.String())
}

func TestGraphQL_RejectsEmptyQuery(t *testing.T) {
	s := setupServer(t, 10)

	rec := s.do(graphqlPost("  ", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = s.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	s := setupServer(t, 2)

	for i := 0; i < 2; i++ {
		rec := s.do(graphqlPost(`{ validate { success } }`, ""))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	rec := s.do(graphqlPost(`{ validate { success } }`, ""))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS_Preflight(t *testing.T) {
	s := setupServer(t, 10)

	req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := s.do(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "600", rec.Header().Get(echo.HeaderAccessControlMaxAge))
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, assert.AnError
}

func TestRateLimit_FailsOpen(t *testing.T) {
	e := echo.New()
	e.Use(middleware.RateLimiter(failingLimiter{}, zap.NewNop()))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
