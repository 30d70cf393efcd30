package graph

import (
	"github.com/graphql-go/graphql"

	"workstack.io/tracker/internal/service"
)

func (b *builder) createProject(p graphql.ResolveParams) (interface{}, error) {
	slug, _ := p.Args["organizationSlug"].(string)
	in, err := inputMap(p)
	if err != nil {
		return nil, err
	}

	params := service.CreateProjectParams{
		OrganizationSlug: slug,
		Description:      stringArg(in, "description"),
		Status:           projectStatusArg(in),
		DueDate:          timeArg(in, "dueDate"),
	}
	if name := stringArg(in, "name"); name != nil {
		params.Name = *name
	}

	project, err := b.svc.Projects().Create(p.Context, params)
	return project, wrapErr(err)
}

func (b *builder) updateProject(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	in, err := inputMap(p)
	if err != nil {
		return nil, err
	}

	var params service.UpdateProjectParams
	if params.Name, err = reqOptString(in, "name"); err != nil {
		return nil, err
	}
	if params.Status, err = optProjectStatus(in); err != nil {
		return nil, err
	}
	params.Description = optString(in, "description")
	params.DueDate = optDueDate(in, "dueDate")

	project, err := b.svc.Projects().Update(p.Context, id, params)
	return project, wrapErr(err)
}

func (b *builder) deleteProject(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	if err := b.svc.Projects().Delete(p.Context, id); err != nil {
		return nil, wrapErr(err)
	}
	return true, nil
}

func (b *builder) createTask(p graphql.ResolveParams) (interface{}, error) {
	in, err := inputMap(p)
	if err != nil {
		return nil, err
	}
	projectID, err := parseID(in["projectId"])
	if err != nil {
		return nil, err
	}

	params := service.CreateTaskParams{
		ProjectID:     projectID,
		Description:   stringArg(in, "description"),
		Status:        taskStatusArg(in),
		AssigneeEmail: stringArg(in, "assigneeEmail"),
		DueDate:       timeArg(in, "dueDate"),
	}
	if title := stringArg(in, "title"); title != nil {
		params.Title = *title
	}

	task, err := b.svc.Tasks().Create(p.Context, params)
	return task, wrapErr(err)
}

func (b *builder) updateTask(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	in, err := inputMap(p)
	if err != nil {
		return nil, err
	}

	var params service.UpdateTaskParams
	if params.Title, err = reqOptString(in, "title"); err != nil {
		return nil, err
	}
	if params.Status, err = optTaskStatus(in); err != nil {
		return nil, err
	}
	params.Description = optString(in, "description")
	params.AssigneeEmail = optString(in, "assigneeEmail")
	params.DueDate = optDueDate(in, "dueDate")

	task, err := b.svc.Tasks().Update(p.Context, id, params)
	return task, wrapErr(err)
}

func (b *builder) deleteTask(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	if err := b.svc.Tasks().Delete(p.Context, id); err != nil {
		return nil, wrapErr(err)
	}
	return true, nil
}

func (b *builder) createComment(p graphql.ResolveParams) (interface{}, error) {
	in, err := inputMap(p)
	if err != nil {
		return nil, err
	}
	taskID, err := parseID(in["taskId"])
	if err != nil {
		return nil, err
	}

	var content, authorEmail string
	if s := stringArg(in, "content"); s != nil {
		content = *s
	}
	if s := stringArg(in, "authorEmail"); s != nil {
		authorEmail = *s
	}

	comment, err := b.svc.Comments().Create(p.Context, taskID, content, authorEmail)
	return comment, wrapErr(err)
}
