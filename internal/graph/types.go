package graph

import (
	"fmt"
	"time"

	"github.com/graphql-go/graphql"

	"workstack.io/tracker/internal/model"
)

var projectStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "ProjectStatus",
	Values: graphql.EnumValueConfigMap{
		"ACTIVE":    &graphql.EnumValueConfig{Value: model.ProjectStatusActive},
		"COMPLETED": &graphql.EnumValueConfig{Value: model.ProjectStatusCompleted},
		"ON_HOLD":   &graphql.EnumValueConfig{Value: model.ProjectStatusOnHold},
		"ARCHIVED":  &graphql.EnumValueConfig{Value: model.ProjectStatusArchived},
	},
})

var taskStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TaskStatus",
	Values: graphql.EnumValueConfigMap{
		"TODO":        &graphql.EnumValueConfig{Value: model.TaskStatusTodo},
		"IN_PROGRESS": &graphql.EnumValueConfig{Value: model.TaskStatusInProgress},
		"DONE":        &graphql.EnumValueConfig{Value: model.TaskStatusDone},
	},
})

var taskStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TaskStats",
	Fields: graphql.Fields{
		"total": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return statsSource(p).Total, nil
			},
		},
		"completed": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return statsSource(p).Completed, nil
			},
		},
		"inProgress": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return statsSource(p).InProgress, nil
			},
		},
		"todo": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return statsSource(p).Todo, nil
			},
		},
		"completionRate": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return statsSource(p).CompletionRate, nil
			},
		},
	},
})

func statsSource(p graphql.ResolveParams) *model.TaskStats {
	if s, ok := p.Source.(*model.TaskStats); ok {
		return s
	}
	return &model.TaskStats{}
}

func orgSource(p graphql.ResolveParams) (*model.Organization, error) {
	if o, ok := p.Source.(*model.Organization); ok {
		return o, nil
	}
	return nil, fmt.Errorf("unexpected source %T for Organization field", p.Source)
}

func projectSource(p graphql.ResolveParams) (*model.Project, error) {
	if pr, ok := p.Source.(*model.Project); ok {
		return pr, nil
	}
	return nil, fmt.Errorf("unexpected source %T for Project field", p.Source)
}

func taskSource(p graphql.ResolveParams) (*model.Task, error) {
	if t, ok := p.Source.(*model.Task); ok {
		return t, nil
	}
	return nil, fmt.Errorf("unexpected source %T for Task field", p.Source)
}

func commentSource(p graphql.ResolveParams) (*model.TaskComment, error) {
	if c, ok := p.Source.(*model.TaskComment); ok {
		return c, nil
	}
	return nil, fmt.Errorf("unexpected source %T for TaskComment field", p.Source)
}

// buildTypes constructs the object types. The ownership hierarchy is
// navigable in both directions, so the cyclic fields are attached after all
// four types exist.
func (b *builder) buildTypes() {
	b.organizationType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Organization",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org, err := orgSource(p)
					if err != nil {
						return nil, err
					}
					return formatID(org.ID), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org, err := orgSource(p)
					if err != nil {
						return nil, err
					}
					return org.Name, nil
				},
			},
			"slug": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org, err := orgSource(p)
					if err != nil {
						return nil, err
					}
					return org.Slug, nil
				},
			},
			"contactEmail": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org, err := orgSource(p)
					if err != nil {
						return nil, err
					}
					return org.ContactEmail, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org, err := orgSource(p)
					if err != nil {
						return nil, err
					}
					return org.CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org, err := orgSource(p)
					if err != nil {
						return nil, err
					}
					return org.UpdatedAt, nil
				},
			},
			"projectCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org, err := orgSource(p)
					if err != nil {
						return nil, err
					}
					n, err := b.svc.Query().ProjectCount(p.Context, org.ID)
					return n, wrapErr(err)
				},
			},
			"taskCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org, err := orgSource(p)
					if err != nil {
						return nil, err
					}
					n, err := b.svc.Query().OrgTaskCount(p.Context, org.ID)
					return n, wrapErr(err)
				},
			},
		},
	})

	b.projectType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Project",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					return formatID(pr.ID), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					return pr.Name, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					return pr.Description, nil
				},
			},
			"status": &graphql.Field{
				Type: graphql.NewNonNull(projectStatusEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					return pr.Status, nil
				},
			},
			"dueDate": &graphql.Field{
				Type: dateType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					if pr.DueDate == nil {
						return nil, nil
					}
					return *pr.DueDate, nil
				},
			},
			"isOverdue": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					return pr.IsOverdue(time.Now()), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					return pr.CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					return pr.UpdatedAt, nil
				},
			},
			"taskStats": &graphql.Field{
				Type: graphql.NewNonNull(taskStatsType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					stats, err := b.svc.Query().TaskStats(p.Context, pr.ID)
					if err != nil {
						return nil, wrapErr(err)
					}
					return &stats, nil
				},
			},
			"taskCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					stats, err := b.svc.Query().TaskStats(p.Context, pr.ID)
					if err != nil {
						return nil, wrapErr(err)
					}
					return stats.Total, nil
				},
			},
			"completedTaskCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					stats, err := b.svc.Query().TaskStats(p.Context, pr.ID)
					if err != nil {
						return nil, wrapErr(err)
					}
					return stats.Completed, nil
				},
			},
			"completionRate": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr, err := projectSource(p)
					if err != nil {
						return nil, err
					}
					stats, err := b.svc.Query().TaskStats(p.Context, pr.ID)
					if err != nil {
						return nil, wrapErr(err)
					}
					return stats.CompletionRate, nil
				},
			},
		},
	})

	b.taskType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					return formatID(t.ID), nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					return t.Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					return t.Description, nil
				},
			},
			"status": &graphql.Field{
				Type: graphql.NewNonNull(taskStatusEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					return t.Status, nil
				},
			},
			"assigneeEmail": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					return t.AssigneeEmail, nil
				},
			},
			"dueDate": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					if t.DueDate == nil {
						return nil, nil
					}
					return *t.DueDate, nil
				},
			},
			"isOverdue": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					return t.IsOverdue(time.Now()), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					return t.CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					return t.UpdatedAt, nil
				},
			},
			"commentCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					t, err := taskSource(p)
					if err != nil {
						return nil, err
					}
					n, err := b.svc.Query().CommentCount(p.Context, t.ID)
					return n, wrapErr(err)
				},
			},
		},
	})

	b.commentType = graphql.NewObject(graphql.ObjectConfig{
		Name: "TaskComment",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, err := commentSource(p)
					if err != nil {
						return nil, err
					}
					return formatID(c.ID), nil
				},
			},
			"content": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, err := commentSource(p)
					if err != nil {
						return nil, err
					}
					return c.Content, nil
				},
			},
			"authorEmail": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, err := commentSource(p)
					if err != nil {
						return nil, err
					}
					return c.AuthorEmail, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, err := commentSource(p)
					if err != nil {
						return nil, err
					}
					return c.CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, err := commentSource(p)
					if err != nil {
						return nil, err
					}
					return c.UpdatedAt, nil
				},
			},
		},
	})

	b.attachRelations()
}

// attachRelations wires the cyclic fields between the four object types.
func (b *builder) attachRelations() {
	b.organizationType.AddFieldConfig("projects", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.projectType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			org, err := orgSource(p)
			if err != nil {
				return nil, err
			}
			projects, err := b.svc.Query().ListProjects(p.Context, &org.Slug)
			if err != nil {
				return nil, wrapErr(err)
			}
			return ptrs(projects), nil
		},
	})

	b.projectType.AddFieldConfig("organization", &graphql.Field{
		Type: graphql.NewNonNull(b.organizationType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			pr, err := projectSource(p)
			if err != nil {
				return nil, err
			}
			org, err := b.svc.Query().GetOrganizationByID(p.Context, pr.OrganizationID)
			return org, wrapErr(err)
		},
	})
	b.projectType.AddFieldConfig("tasks", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.taskType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			pr, err := projectSource(p)
			if err != nil {
				return nil, err
			}
			tasks, err := b.svc.Query().ListTasks(p.Context, &pr.ID)
			if err != nil {
				return nil, wrapErr(err)
			}
			return ptrs(tasks), nil
		},
	})

	b.taskType.AddFieldConfig("project", &graphql.Field{
		Type: graphql.NewNonNull(b.projectType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			t, err := taskSource(p)
			if err != nil {
				return nil, err
			}
			pr, err := b.svc.Query().GetProject(p.Context, t.ProjectID)
			return pr, wrapErr(err)
		},
	})
	b.taskType.AddFieldConfig("organization", &graphql.Field{
		Type: graphql.NewNonNull(b.organizationType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			t, err := taskSource(p)
			if err != nil {
				return nil, err
			}
			pr, err := b.svc.Query().GetProject(p.Context, t.ProjectID)
			if err != nil {
				return nil, wrapErr(err)
			}
			org, err := b.svc.Query().GetOrganizationByID(p.Context, pr.OrganizationID)
			return org, wrapErr(err)
		},
	})
	b.taskType.AddFieldConfig("comments", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.commentType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			t, err := taskSource(p)
			if err != nil {
				return nil, err
			}
			comments, err := b.svc.Query().ListComments(p.Context, &t.ID)
			if err != nil {
				return nil, wrapErr(err)
			}
			return ptrs(comments), nil
		},
	})

	b.commentType.AddFieldConfig("task", &graphql.Field{
		Type: graphql.NewNonNull(b.taskType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, err := commentSource(p)
			if err != nil {
				return nil, err
			}
			t, err := b.svc.Query().GetTask(p.Context, c.TaskID)
			return t, wrapErr(err)
		},
	})
	b.commentType.AddFieldConfig("organization", &graphql.Field{
		Type: graphql.NewNonNull(b.organizationType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, err := commentSource(p)
			if err != nil {
				return nil, err
			}
			t, err := b.svc.Query().GetTask(p.Context, c.TaskID)
			if err != nil {
				return nil, wrapErr(err)
			}
			pr, err := b.svc.Query().GetProject(p.Context, t.ProjectID)
			if err != nil {
				return nil, wrapErr(err)
			}
			org, err := b.svc.Query().GetOrganizationByID(p.Context, pr.OrganizationID)
			return org, wrapErr(err)
		},
	})
}
