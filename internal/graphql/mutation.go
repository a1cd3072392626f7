package graphql

import (
	gql "github.com/graphql-go/graphql"

	"taskboard.com/taskboard/internal/services"
)

func (r *Resolver) mutationType(t *types) *gql.Object {
	newUserArgs := gql.FieldConfigArgument{
		"name":                 &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
		"email":                &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
		"password":             &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
		"passwordConfirmation": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
	}

	return gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createUser": &gql.Field{
				Type: gql.NewNonNull(t.userPayload),
				Args: newUserArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					user, err := r.users.Register(p.Context, newUser(p.Args))
					return r.payload(p, "user", user, err)
				},
			},
			"createUserAdmin": &gql.Field{
				Type: gql.NewNonNull(t.userPayload),
				Args: newUserArgs,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					user, err := r.users.CreateAdmin(p.Context, newUser(p.Args))
					return r.payload(p, "user", user, err)
				},
			},
			"updateUser": &gql.Field{
				Type: gql.NewNonNull(t.userPayload),
				Args: gql.FieldConfigArgument{
					"id":                   &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"name":                 &gql.ArgumentConfig{Type: gql.String},
					"email":                &gql.ArgumentConfig{Type: gql.String},
					"currentPassword":      &gql.ArgumentConfig{Type: gql.String},
					"password":             &gql.ArgumentConfig{Type: gql.String},
					"passwordConfirmation": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					user, err := r.users.Update(p.Context, stringArg(p.Args, "id"), services.UserChanges{
						Name:                 optionalString(p.Args, "name"),
						Email:                optionalString(p.Args, "email"),
						CurrentPassword:      optionalString(p.Args, "currentPassword"),
						Password:             optionalString(p.Args, "password"),
						PasswordConfirmation: optionalString(p.Args, "passwordConfirmation"),
					})
					return r.payload(p, "user", user, err)
				},
			},
			"deleteUser": &gql.Field{
				Type: gql.NewNonNull(t.deletePayload),
				Args: idArg(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return r.deletion(p, r.users.Delete(p.Context, stringArg(p.Args, "id")))
				},
			},
			"loginUser": &gql.Field{
				Type: gql.NewNonNull(t.loginPayload),
				Args: gql.FieldConfigArgument{
					"email":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					session, err := r.auth.Login(p.Context, stringArg(p.Args, "email"), stringArg(p.Args, "password"))
					if err != nil {
						out, top := r.payload(p, "user", nil, err)
						if top != nil {
							return nil, top
						}
						out.(map[string]interface{})["token"] = nil
						return out, nil
					}
					return map[string]interface{}{
						"token":  session.Token,
						"user":   session.User,
						"errors": []string{},
					}, nil
				},
			},
			"createProject": &gql.Field{
				Type: gql.NewNonNull(t.projectPayload),
				Args: gql.FieldConfigArgument{
					"name":        &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"description": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					project, err := r.projects.Create(p.Context, services.NewProject{
						Name:        stringArg(p.Args, "name"),
						Description: stringArg(p.Args, "description"),
					})
					return r.payload(p, "project", project, err)
				},
			},
			"updateProject": &gql.Field{
				Type: gql.NewNonNull(t.projectPayload),
				Args: gql.FieldConfigArgument{
					"id":          &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"name":        &gql.ArgumentConfig{Type: gql.String},
					"description": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					project, err := r.projects.Update(p.Context, stringArg(p.Args, "id"), services.ProjectChanges{
						Name:        optionalString(p.Args, "name"),
						Description: optionalString(p.Args, "description"),
					})
					return r.payload(p, "project", project, err)
				},
			},
			"deleteProject": &gql.Field{
				Type: gql.NewNonNull(t.deletePayload),
				Args: idArg(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return r.deletion(p, r.projects.Delete(p.Context, stringArg(p.Args, "id")))
				},
			},
			"createTask": &gql.Field{
				Type: gql.NewNonNull(t.taskPayload),
				Args: gql.FieldConfigArgument{
					"projectId":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"title":        &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"description":  &gql.ArgumentConfig{Type: gql.String},
					"status":       &gql.ArgumentConfig{Type: gql.String},
					"assigneeType": &gql.ArgumentConfig{Type: gql.String},
					"assigneeId":   &gql.ArgumentConfig{Type: gql.ID},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					task, err := r.tasks.Create(p.Context, services.NewTask{
						ProjectID:    stringArg(p.Args, "projectId"),
						Title:        stringArg(p.Args, "title"),
						Description:  stringArg(p.Args, "description"),
						Status:       optionalString(p.Args, "status"),
						AssigneeType: optionalString(p.Args, "assigneeType"),
						AssigneeID:   optionalString(p.Args, "assigneeId"),
					})
					return r.payload(p, "task", task, err)
				},
			},
			"updateTask": &gql.Field{
				Type: gql.NewNonNull(t.taskPayload),
				Args: gql.FieldConfigArgument{
					"id":           &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"title":        &gql.ArgumentConfig{Type: gql.String},
					"description":  &gql.ArgumentConfig{Type: gql.String},
					"status":       &gql.ArgumentConfig{Type: gql.String},
					"assigneeType": &gql.ArgumentConfig{Type: gql.String},
					"assigneeId":   &gql.ArgumentConfig{Type: gql.ID},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					task, err := r.tasks.Update(p.Context, stringArg(p.Args, "id"), services.TaskChanges{
						Title:        optionalString(p.Args, "title"),
						Description:  optionalString(p.Args, "description"),
						Status:       optionalString(p.Args, "status"),
						AssigneeType: optionalString(p.Args, "assigneeType"),
						AssigneeID:   optionalString(p.Args, "assigneeId"),
					})
					return r.payload(p, "task", task, err)
				},
			},
			"deleteTask": &gql.Field{
				Type: gql.NewNonNull(t.deletePayload),
				Args: idArg(),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return r.deletion(p, r.tasks.Delete(p.Context, stringArg(p.Args, "id")))
				},
			},
		},
	})
}

func newUser(args map[string]interface{}) services.NewUser {
	return services.NewUser{
		Name:                 stringArg(args, "name"),
		Email:                stringArg(args, "email"),
		Password:             stringArg(args, "password"),
		PasswordConfirmation: stringArg(args, "passwordConfirmation"),
	}
}
