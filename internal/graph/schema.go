// Package graph exposes the work tracker as a single GraphQL endpoint. It is
// a pure translation layer: argument decoding, type shaping and error-code
// surfacing live here, everything else is delegated to the service layer.
package graph

import (
	"github.com/graphql-go/graphql"

	"workstack.io/tracker/internal/service"
)

type builder struct {
	svc *service.Services

	organizationType *graphql.Object
	projectType      *graphql.Object
	taskType         *graphql.Object
	commentType      *graphql.Object
}

// NewSchema builds the executable schema. Call it once at startup and share
// the returned schema across requests.
func NewSchema(svc *service.Services) (graphql.Schema, error) {
	b := &builder{svc: svc}
	b.buildTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryRoot(),
		Mutation: b.mutationRoot(),
	})
}

func (b *builder) queryRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"organization": &graphql.Field{
				Type: b.organizationType,
				Args: graphql.FieldConfigArgument{
					"slug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					slug, _ := p.Args["slug"].(string)
					org, err := b.svc.Query().GetOrganization(p.Context, slug)
					return org, wrapErr(err)
				},
			},
			"organizations": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.organizationType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					orgs, err := b.svc.Query().ListOrganizations(p.Context)
					if err != nil {
						return nil, wrapErr(err)
					}
					return ptrs(orgs), nil
				},
			},
			"project": &graphql.Field{
				Type: b.projectType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}
					pr, err := b.svc.Query().GetProject(p.Context, id)
					return pr, wrapErr(err)
				},
			},
			"projects": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.projectType))),
				Args: graphql.FieldConfigArgument{
					"organizationSlug": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var slug *string
					if s, ok := p.Args["organizationSlug"].(string); ok {
						slug = &s
					}
					projects, err := b.svc.Query().ListProjects(p.Context, slug)
					if err != nil {
						return nil, wrapErr(err)
					}
					return ptrs(projects), nil
				},
			},
			"task": &graphql.Field{
				Type: b.taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseID(p.Args["id"])
					if err != nil {
						return nil, err
					}
					t, err := b.svc.Query().GetTask(p.Context, id)
					return t, wrapErr(err)
				},
			},
			"tasks": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.taskType))),
				Args: graphql.FieldConfigArgument{
					"projectId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var projectID *int64
					if raw, ok := p.Args["projectId"]; ok && raw != nil {
						id, err := parseID(raw)
						if err != nil {
							return nil, err
						}
						projectID = &id
					}
					tasks, err := b.svc.Query().ListTasks(p.Context, projectID)
					if err != nil {
						return nil, wrapErr(err)
					}
					return ptrs(tasks), nil
				},
			},
			"comments": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.commentType))),
				Args: graphql.FieldConfigArgument{
					"taskId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var taskID *int64
					if raw, ok := p.Args["taskId"]; ok && raw != nil {
						id, err := parseID(raw)
						if err != nil {
							return nil, err
						}
						taskID = &id
					}
					comments, err := b.svc.Query().ListComments(p.Context, taskID)
					if err != nil {
						return nil, wrapErr(err)
					}
					return ptrs(comments), nil
				},
			},
		},
	})
}

func (b *builder) mutationRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createProject": &graphql.Field{
				Type: b.projectType,
				Args: graphql.FieldConfigArgument{
					"organizationSlug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"input":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProjectInput)},
				},
				Resolve: b.createProject,
			},
			"updateProject": &graphql.Field{
				Type: b.projectType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateProjectInput)},
				},
				Resolve: b.updateProject,
			},
			"deleteProject": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: b.deleteProject,
			},
			"createTask": &graphql.Field{
				Type: b.taskType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskInput)},
				},
				Resolve: b.createTask,
			},
			"updateTask": &graphql.Field{
				Type: b.taskType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskInput)},
				},
				Resolve: b.updateTask,
			},
			"deleteTask": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: b.deleteTask,
			},
			"createComment": &graphql.Field{
				Type: b.commentType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCommentInput)},
				},
				Resolve: b.createComment,
			},
		},
	})
}
