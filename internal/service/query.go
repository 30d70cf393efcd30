package service

import (
	"context"
	"errors"
	"fmt"

	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/store"
)

// QueryService is the read-only surface. It performs no tenant isolation:
// list operations without a scoping argument deliberately return the
// cross-tenant set, and callers gate that behind their own authorization.
type QueryService interface {
	GetOrganization(ctx context.Context, slug string) (*model.Organization, error)
	GetOrganizationByID(ctx context.Context, id int64) (*model.Organization, error)
	ListOrganizations(ctx context.Context) ([]model.Organization, error)

	GetProject(ctx context.Context, id int64) (*model.Project, error)
	ListProjects(ctx context.Context, organizationSlug *string) ([]model.Project, error)
	SearchProjects(ctx context.Context, filter store.ProjectFilter) ([]model.Project, error)

	GetTask(ctx context.Context, id int64) (*model.Task, error)
	ListTasks(ctx context.Context, projectID *int64) ([]model.Task, error)
	SearchTasks(ctx context.Context, filter store.TaskFilter) ([]model.Task, error)

	ListComments(ctx context.Context, taskID *int64) ([]model.TaskComment, error)

	// Derived aggregates, always recomputed from current rows.
	TaskStats(ctx context.Context, projectID int64) (model.TaskStats, error)
	CommentCount(ctx context.Context, taskID int64) (int, error)
	ProjectCount(ctx context.Context, organizationID int64) (int, error)
	OrgTaskCount(ctx context.Context, organizationID int64) (int, error)
}

type queryService struct {
	stores StoreProvider
}

func NewQueryService(stores StoreProvider) QueryService {
	return &queryService{stores: stores}
}

func (s *queryService) GetOrganization(ctx context.Context, slug string) (*model.Organization, error) {
	org, err := s.stores.Organizations().GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("organization %q not found", slug)
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *queryService) GetOrganizationByID(ctx context.Context, id int64) (*model.Organization, error) {
	org, err := s.stores.Organizations().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("organization %d not found", id)
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *queryService) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	orgs, err := s.stores.Organizations().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return orgs, nil
}

func (s *queryService) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	project, err := s.stores.Projects().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("project %d not found", id)
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return project, nil
}

func (s *queryService) ListProjects(ctx context.Context, organizationSlug *string) ([]model.Project, error) {
	if organizationSlug == nil {
		projects, err := s.stores.Projects().List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing projects: %w", err)
		}
		return projects, nil
	}

	// An unknown slug filters down to an empty list, not an error.
	org, err := s.stores.Organizations().GetBySlug(ctx, *organizationSlug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []model.Project{}, nil
		}
		return nil, fmt.Errorf("resolving organization: %w", err)
	}

	projects, err := s.stores.Projects().ListByOrganization(ctx, org.ID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (s *queryService) SearchProjects(ctx context.Context, filter store.ProjectFilter) ([]model.Project, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, Invalid("unknown project status %q", *filter.Status)
	}
	projects, err := s.stores.Projects().Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("searching projects: %w", err)
	}
	return projects, nil
}

func (s *queryService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	task, err := s.stores.Tasks().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("task %d not found", id)
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return task, nil
}

func (s *queryService) ListTasks(ctx context.Context, projectID *int64) ([]model.Task, error) {
	var (
		tasks []model.Task
		err   error
	)
	if projectID == nil {
		tasks, err = s.stores.Tasks().List(ctx)
	} else {
		tasks, err = s.stores.Tasks().ListByProject(ctx, *projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

func (s *queryService) SearchTasks(ctx context.Context, filter store.TaskFilter) ([]model.Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, Invalid("unknown task status %q", *filter.Status)
	}
	tasks, err := s.stores.Tasks().Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("searching tasks: %w", err)
	}
	return tasks, nil
}

func (s *queryService) ListComments(ctx context.Context, taskID *int64) ([]model.TaskComment, error) {
	var (
		comments []model.TaskComment
		err      error
	)
	if taskID == nil {
		comments, err = s.stores.Comments().List(ctx)
	} else {
		comments, err = s.stores.Comments().ListByTask(ctx, *taskID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (s *queryService) TaskStats(ctx context.Context, projectID int64) (model.TaskStats, error) {
	tasks, err := s.stores.Tasks().ListByProject(ctx, projectID)
	if err != nil {
		return model.TaskStats{}, fmt.Errorf("listing tasks for stats: %w", err)
	}
	return model.NewTaskStats(tasks), nil
}

func (s *queryService) CommentCount(ctx context.Context, taskID int64) (int, error) {
	count, err := s.stores.Comments().CountByTask(ctx, taskID)
	if err != nil {
		return 0, fmt.Errorf("counting comments: %w", err)
	}
	return count, nil
}

func (s *queryService) ProjectCount(ctx context.Context, organizationID int64) (int, error) {
	count, err := s.stores.Projects().CountByOrganization(ctx, organizationID)
	if err != nil {
		return 0, fmt.Errorf("counting projects: %w", err)
	}
	return count, nil
}

func (s *queryService) OrgTaskCount(ctx context.Context, organizationID int64) (int, error) {
	count, err := s.stores.Tasks().CountByOrganization(ctx, organizationID)
	if err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return count, nil
}
