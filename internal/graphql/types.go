package graphql

import (
	gql "github.com/graphql-go/graphql"

	model "taskboard.com/taskboard/internal/models"
)

const dateLayout = "02/01/2006"

type types struct {
	user            *gql.Object
	project         *gql.Object
	projectListItem *gql.Object
	task            *gql.Object
	board           *gql.Object
	dashboard       *gql.Object
	validation      *gql.Object

	userPayload    *gql.Object
	loginPayload   *gql.Object
	projectPayload *gql.Object
	taskPayload    *gql.Object
	deletePayload  *gql.Object
}

var errorList = gql.NewNonNull(gql.NewList(gql.NewNonNull(gql.String)))

func (r *Resolver) newTypes() *types {
	t := &types{}

	t.user = gql.NewObject(gql.ObjectConfig{
		Name: "User",
		Fields: gql.Fields{
			"id":    &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name":  &gql.Field{Type: gql.NewNonNull(gql.String)},
			"email": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"level": &gql.Field{
				Type: gql.NewNonNull(gql.String),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return string(source[model.User](p).Level), nil
				},
			},
			"createdAt": &gql.Field{Type: gql.NewNonNull(gql.DateTime)},
			"updatedAt": &gql.Field{Type: gql.NewNonNull(gql.DateTime)},
		},
	})

	t.task = gql.NewObject(gql.ObjectConfig{
		Name: "Task",
		Fields: gql.FieldsThunk(func() gql.Fields {
			return gql.Fields{
				"id":          &gql.Field{Type: gql.NewNonNull(gql.ID)},
				"title":       &gql.Field{Type: gql.NewNonNull(gql.String)},
				"description": &gql.Field{Type: gql.String},
				"status": &gql.Field{
					Type: gql.NewNonNull(gql.String),
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						return string(source[model.Task](p).Status), nil
					},
				},
				"date": &gql.Field{
					Type: gql.NewNonNull(gql.String),
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						return source[model.Task](p).CreatedAt.Format(dateLayout), nil
					},
				},
				"assigned": &gql.Field{
					Type:        gql.String,
					Description: "Name of the assignee.",
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						user, err := r.tasks.Assignee(p.Context, source[model.Task](p))
						if err != nil || user == nil {
							return r.value(p, nil, err)
						}
						return user.Name, nil
					},
				},
				"assignee": &gql.Field{
					Type: t.user,
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						user, err := r.tasks.Assignee(p.Context, source[model.Task](p))
						return r.value(p, user, err)
					},
				},
				"assigneeType": &gql.Field{
					Type: gql.String,
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						a, ok := source[model.Task](p).Assignee()
						if !ok {
							return nil, nil
						}
						return string(a.Kind), nil
					},
				},
				"assigneeId": &gql.Field{
					Type: gql.ID,
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						a, ok := source[model.Task](p).Assignee()
						if !ok {
							return nil, nil
						}
						return a.ID, nil
					},
				},
				"projectId": &gql.Field{Type: gql.NewNonNull(gql.ID)},
				"project": &gql.Field{
					Type: t.project,
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						project, err := r.tasks.Project(p.Context, source[model.Task](p))
						return r.value(p, project, err)
					},
				},
				"createdAt": &gql.Field{Type: gql.NewNonNull(gql.DateTime)},
				"updatedAt": &gql.Field{Type: gql.NewNonNull(gql.DateTime)},
			}
		}),
	})

	t.board = gql.NewObject(gql.ObjectConfig{
		Name: "Board",
		Fields: gql.Fields{
			"todo":       &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(t.task)))},
			"inProgress": &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(t.task)))},
			"done":       &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(t.task)))},
		},
	})

	owner := &gql.Field{
		Type: t.user,
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			user, err := r.projects.Owner(p.Context, source[model.Project](p))
			return r.value(p, user, err)
		},
	}
	date := &gql.Field{
		Type: gql.NewNonNull(gql.String),
		Resolve: func(p gql.ResolveParams) (interface{}, error) {
			return source[model.Project](p).CreatedAt.Format(dateLayout), nil
		},
	}

	t.project = gql.NewObject(gql.ObjectConfig{
		Name: "Project",
		Fields: gql.FieldsThunk(func() gql.Fields {
			return gql.Fields{
				"id":          &gql.Field{Type: gql.NewNonNull(gql.ID)},
				"name":        &gql.Field{Type: gql.NewNonNull(gql.String)},
				"description": &gql.Field{Type: gql.NewNonNull(gql.String)},
				"date":        date,
				"owner":       owner,
				"board": &gql.Field{
					Type:        gql.NewNonNull(t.board),
					Description: "The viewer's tasks in this project grouped by status.",
					Resolve: func(p gql.ResolveParams) (interface{}, error) {
						board, err := r.projects.Board(p.Context, source[model.Project](p))
						return r.value(p, board, err)
					},
				},
				"createdAt": &gql.Field{Type: gql.NewNonNull(gql.DateTime)},
				"updatedAt": &gql.Field{Type: gql.NewNonNull(gql.DateTime)},
			}
		}),
	})

	t.projectListItem = gql.NewObject(gql.ObjectConfig{
		Name: "ProjectListItem",
		Fields: gql.Fields{
			"id":   &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"title": &gql.Field{
				Type: gql.NewNonNull(gql.String),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return source[model.Project](p).Name, nil
				},
			},
			"description": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"tasks": &gql.Field{
				Type:        gql.NewNonNull(gql.Int),
				Description: "Number of the viewer's tasks in this project.",
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					count, err := r.projects.TaskCount(p.Context, source[model.Project](p))
					return r.value(p, count, err)
				},
			},
			"date":      date,
			"owner":     owner,
			"createdAt": &gql.Field{Type: gql.NewNonNull(gql.DateTime)},
			"updatedAt": &gql.Field{Type: gql.NewNonNull(gql.DateTime)},
		},
	})

	t.dashboard = gql.NewObject(gql.ObjectConfig{
		Name: "Dashboard",
		Fields: gql.Fields{
			"totalProjects": &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"totalTasks":    &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"completed":     &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"inProgress":    &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"toDo":          &gql.Field{Type: gql.NewNonNull(gql.Int)},
		},
	})

	t.validation = gql.NewObject(gql.ObjectConfig{
		Name: "Validation",
		Fields: gql.Fields{
			"success": &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
			"errors":  &gql.Field{Type: errorList},
		},
	})

	t.userPayload = entityPayload("UserPayload", "user", t.user)
	t.projectPayload = entityPayload("ProjectPayload", "project", t.project)
	t.taskPayload = entityPayload("TaskPayload", "task", t.task)

	t.loginPayload = gql.NewObject(gql.ObjectConfig{
		Name: "LoginPayload",
		Fields: gql.Fields{
			"token":  &gql.Field{Type: gql.String},
			"user":   &gql.Field{Type: t.user},
			"errors": &gql.Field{Type: errorList},
		},
	})

	t.deletePayload = gql.NewObject(gql.ObjectConfig{
		Name: "DeletePayload",
		Fields: gql.Fields{
			"success": &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
			"errors":  &gql.Field{Type: errorList},
		},
	})

	return t
}

func entityPayload(name, key string, entity *gql.Object) *gql.Object {
	return gql.NewObject(gql.ObjectConfig{
		Name: name,
		Fields: gql.Fields{
			key:      &gql.Field{Type: entity},
			"errors": &gql.Field{Type: errorList},
		},
	})
}
