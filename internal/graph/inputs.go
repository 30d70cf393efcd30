package graph

import (
	"github.com/graphql-go/graphql"
)

var createProjectInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateProjectInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":      &graphql.InputObjectFieldConfig{Type: projectStatusEnum},
		"dueDate":     &graphql.InputObjectFieldConfig{Type: dateType},
	},
})

var updateProjectInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateProjectInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":      &graphql.InputObjectFieldConfig{Type: projectStatusEnum},
		"dueDate":     &graphql.InputObjectFieldConfig{Type: dateType},
	},
})

var createTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"projectId":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"title":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":        &graphql.InputObjectFieldConfig{Type: taskStatusEnum},
		"assigneeEmail": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"dueDate":       &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var updateTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":        &graphql.InputObjectFieldConfig{Type: taskStatusEnum},
		"assigneeEmail": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"dueDate":       &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var createCommentInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateCommentInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"taskId":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"content":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"authorEmail": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})
