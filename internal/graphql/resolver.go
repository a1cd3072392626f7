// Package graphql exposes the services through a graphql-go schema.
//
// Queries answer with null or empty lists for anything outside the viewer's
// visibility. Mutations answer with a payload whose errors field carries
// validation and not-found messages. Authentication and authorization
// failures abort the field with a top-level error whose extensions.code is
// the error kind.
package graphql

import (
	"context"

	gql "github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"taskboard.com/taskboard/internal/services"
)

type Resolver struct {
	users     *services.UserService
	auth      *services.AuthService
	projects  *services.ProjectService
	tasks     *services.TaskService
	dashboard *services.DashboardService
	logger    *zap.Logger
}

func NewResolver(
	users *services.UserService,
	auth *services.AuthService,
	projects *services.ProjectService,
	tasks *services.TaskService,
	dashboard *services.DashboardService,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		users:     users,
		auth:      auth,
		projects:  projects,
		tasks:     tasks,
		dashboard: dashboard,
		logger:    logger,
	}
}

// Request is a GraphQL call as sent over HTTP.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type Executor struct {
	schema gql.Schema
	logger *zap.Logger
}

func NewExecutor(r *Resolver) (*Executor, error) {
	schema, err := NewSchema(r)
	if err != nil {
		return nil, err
	}
	return &Executor{schema: schema, logger: r.logger}, nil
}

// Execute runs req with the user attached to ctx, if any.
func (e *Executor) Execute(ctx context.Context, req Request) *gql.Result {
	result := gql.Do(gql.Params{
		Schema:         e.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
	if result.HasErrors() {
		e.logger.Debug("graphql request returned errors",
			zap.String("operation", req.OperationName),
			zap.Int("errors", len(result.Errors)),
		)
	}
	return result
}

func NewSchema(r *Resolver) (gql.Schema, error) {
	t := r.newTypes()
	return gql.NewSchema(gql.SchemaConfig{
		Query:    r.queryType(t),
		Mutation: r.mutationType(t),
	})
}
