package graphql

import (
	gql "github.com/graphql-go/graphql"

	apperrors "taskboard.com/taskboard/internal/errors"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
)

func (r *Resolver) queryType(t *types) *gql.Object {
	return gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"users": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(t.user))),
				Args: gql.FieldConfigArgument{
					"name":  &gql.ArgumentConfig{Type: gql.String},
					"email": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					users, err := r.users.List(p.Context, repository.UserFilter{
						Name:  stringArg(p.Args, "name"),
						Email: stringArg(p.Args, "email"),
					})
					return r.value(p, users, err)
				},
			},
			"user": &gql.Field{
				Type: t.user,
				Args: idArg(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					user, err := r.users.Get(p.Context, stringArg(p.Args, "id"))
					return r.value(p, user, err)
				},
			},
			"me": &gql.Field{
				Type: gql.NewNonNull(t.user),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					user, err := services.Authenticate(p.Context)
					return r.value(p, user, err)
				},
			},
			"projects": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(t.projectListItem))),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					projects, err := r.projects.List(p.Context)
					return r.value(p, projects, err)
				},
			},
			"project": &gql.Field{
				Type: t.project,
				Args: idArg(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					project, err := r.projects.Get(p.Context, stringArg(p.Args, "id"))
					return r.value(p, project, err)
				},
			},
			"tasks": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(t.task))),
				Args: gql.FieldConfigArgument{
					"projectId": &gql.ArgumentConfig{Type: gql.ID},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					tasks, err := r.tasks.List(p.Context, stringArg(p.Args, "projectId"))
					return r.value(p, tasks, err)
				},
			},
			"task": &gql.Field{
				Type: t.task,
				Args: idArg(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					task, err := r.tasks.Get(p.Context, stringArg(p.Args, "id"))
					return r.value(p, task, err)
				},
			},
			"dashboard": &gql.Field{
				Type: gql.NewNonNull(t.dashboard),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					dashboard, err := r.dashboard.Compute(p.Context)
					return r.value(p, dashboard, err)
				},
			},
			"validate": &gql.Field{
				Type:        gql.NewNonNull(t.validation),
				Description: "Reports whether the request carries a valid session.",
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					if _, err := services.Authenticate(p.Context); err != nil {
						return map[string]interface{}{"success": false, "errors": apperrors.Messages(err)}, nil
					}
					return map[string]interface{}{"success": true, "errors": []string{}}, nil
				},
			},
		},
	})
}

func idArg() gql.FieldConfigArgument {
	return gql.FieldConfigArgument{
		"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
	}
}
